package repoargs

import (
	"time"

	"github.com/fsdevblog/safevault/internal/domain"
	"github.com/shopspring/decimal"
)

type CreateDeposit struct {
	UserID        int64
	Amount        decimal.Decimal
	ScreenshotURL string
}

type CreateWithdrawal struct {
	UserID        int64
	Amount        decimal.Decimal
	Platform      domain.PlatformType
	WalletAddress string
}

// SettleEntry переводит заявку из pending в терминальный статус.
type SettleEntry struct {
	ID         int64
	Status     domain.SettlementStatusType
	AdminNotes string
}

type LedgerFilter struct {
	Status *domain.SettlementStatusType
	Page   Page
}

type CreateProfitLog struct {
	UserID        int64
	Amount        decimal.Decimal
	DepositAmount decimal.Decimal
	Rate          decimal.Decimal
	AccruedOn     time.Time
}
