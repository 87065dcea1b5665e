package domain

import (
	"github.com/shopspring/decimal"

	"time"
)

type User struct {
	ID            int64
	CreatedAt     time.Time
	UpdatedAt     time.Time
	FirstName     string
	LastName      string
	Email         string
	Password      string
	ProfileImage  *string
	DepositAmount decimal.Decimal
	ProfitAmount  decimal.Decimal
	TotalAmount   decimal.Decimal
	Status        UserStatusType
	AccountStatus AccountStatusType
	Role          RoleType
	LockVersion   int64
}

// UserRef краткая ссылка на юзера для админских списков.
type UserRef struct {
	ID        int64
	FirstName string
	LastName  string
	Email     string
}

type Deposit struct {
	ID            int64
	CreatedAt     time.Time
	UpdatedAt     time.Time
	UserID        int64
	Amount        decimal.Decimal
	ScreenshotURL string
	Status        SettlementStatusType
	AdminNotes    string
}

type Withdrawal struct {
	ID            int64
	CreatedAt     time.Time
	UpdatedAt     time.Time
	UserID        int64
	Amount        decimal.Decimal
	Platform      PlatformType
	WalletAddress string
	Status        SettlementStatusType
	AdminNotes    string
}

// ProfitLog фиксирует разовое начисление ежедневной прибыли. Пара (UserID, AccruedOn)
// уникальна, повторное начисление за тот же день невозможно.
type ProfitLog struct {
	ID            int64
	CreatedAt     time.Time
	UserID        int64
	Amount        decimal.Decimal
	DepositAmount decimal.Decimal
	Rate          decimal.Decimal
	AccruedOn     time.Time
}

// Notification неизменяема после создания, кроме двух независимых флагов прочтения.
// UserID == nil означает широковещательное уведомление от администратора.
type Notification struct {
	ID          int64
	CreatedAt   time.Time
	UserID      *int64
	Message     string
	Type        NotificationType
	UserStatus  ReadStatusType
	AdminStatus ReadStatusType
	ActionURL   *string
}
