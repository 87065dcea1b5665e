package repoargs

import (
	"github.com/fsdevblog/safevault/internal/domain"
	"github.com/shopspring/decimal"
)

type CreateUser struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
	Role      domain.RoleType
}

type UpdateUserProfile struct {
	ID           int64
	FirstName    string
	LastName     string
	ProfileImage *string
}

// UpdateUserBalances обновляет денежные поля юзера с оптимистичной блокировкой:
// UPDATE выполнится только если lock_version в базе совпадает с LockVersion.
type UpdateUserBalances struct {
	ID            int64
	DepositAmount decimal.Decimal
	ProfitAmount  decimal.Decimal
	TotalAmount   decimal.Decimal
	LockVersion   int64
}

type UserFilter struct {
	AccountStatus *domain.AccountStatusType
	Status        *domain.UserStatusType
	Page          Page
}
