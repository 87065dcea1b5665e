package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/fsdevblog/safevault/internal/domain"
	"github.com/fsdevblog/safevault/internal/repository/repoargs"
	"github.com/fsdevblog/safevault/pkg/uow"
	"github.com/shopspring/decimal"
)

// TransactionKind тип записи в сводной ленте операций кошелька.
type TransactionKind string

const (
	TransactionKindDeposit    TransactionKind = "deposit"
	TransactionKindWithdrawal TransactionKind = "withdrawal"
	TransactionKindProfit     TransactionKind = "profit"
)

// Transaction унифицированная запись сводной ленты: пополнение, вывод или
// начисление прибыли. У начислений статус всегда approved.
type Transaction struct {
	ID        int64
	Kind      TransactionKind
	Amount    decimal.Decimal
	Status    domain.SettlementStatusType
	CreatedAt time.Time
}

// Balance снимок баланса кошелька.
type Balance struct {
	DepositAmount decimal.Decimal
	ProfitAmount  decimal.Decimal
	TotalAmount   decimal.Decimal
}

// DashboardStats агрегаты для админской панели.
type DashboardStats struct {
	TotalUsers         int64
	PendingUsers       int64
	PendingDeposits    int64
	PendingWithdrawals int64
	ApprovedDeposits   int64
	ApprovedWithdrawal int64
}

type WalletService struct {
	uow            uow.UOW
	userRepo       UserRepository
	depositRepo    DepositRepository
	withdrawalRepo WithdrawalRepository
	profitLogRepo  ProfitLogRepository
}

func NewWalletService(u uow.UOW) (*WalletService, error) {
	userRepo, userRepoErr := uow.GetRepositoryAs[UserRepository](u, uow.RepositoryName(repoargs.UserRepoName))
	if userRepoErr != nil {
		return nil, userRepoErr //nolint:wrapcheck
	}
	depositRepo, dRepoErr := uow.GetRepositoryAs[DepositRepository](u, uow.RepositoryName(repoargs.DepositRepoName))
	if dRepoErr != nil {
		return nil, dRepoErr //nolint:wrapcheck
	}
	withdrawalRepo, wRepoErr :=
		uow.GetRepositoryAs[WithdrawalRepository](u, uow.RepositoryName(repoargs.WithdrawalRepoName))
	if wRepoErr != nil {
		return nil, wRepoErr //nolint:wrapcheck
	}
	profitLogRepo, pRepoErr :=
		uow.GetRepositoryAs[ProfitLogRepository](u, uow.RepositoryName(repoargs.ProfitLogRepoName))
	if pRepoErr != nil {
		return nil, pRepoErr //nolint:wrapcheck
	}
	return &WalletService{
		uow:            u,
		userRepo:       userRepo,
		depositRepo:    depositRepo,
		withdrawalRepo: withdrawalRepo,
		profitLogRepo:  profitLogRepo,
	}, nil
}

// GetBalance всегда отдает total как сумму deposit и profit, не полагаясь
// на сохраненное значение.
func (s *WalletService) GetBalance(ctx context.Context, userID int64) (*Balance, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &Balance{
		DepositAmount: user.DepositAmount,
		ProfitAmount:  user.ProfitAmount,
		TotalAmount:   user.DepositAmount.Add(user.ProfitAmount),
	}, nil
}

// Transactions сводная лента всех операций юзера, новые сверху. Три источника
// сливаются в памяти, пагинация применяется к итоговому списку.
func (s *WalletService) Transactions(
	ctx context.Context,
	userID int64,
	page repoargs.Page,
) ([]Transaction, int64, error) {
	deposits, depositsErr := s.depositRepo.GetAllDepositsByUserID(ctx, userID)
	if depositsErr != nil {
		return nil, 0, fmt.Errorf("loading deposits for feed: %w", depositsErr)
	}
	withdrawals, withdrawalsErr := s.withdrawalRepo.GetAllWithdrawalsByUserID(ctx, userID)
	if withdrawalsErr != nil {
		return nil, 0, fmt.Errorf("loading withdrawals for feed: %w", withdrawalsErr)
	}
	profitLogs, profitsErr := s.profitLogRepo.GetAllProfitLogsByUserID(ctx, userID)
	if profitsErr != nil {
		return nil, 0, fmt.Errorf("loading profit logs for feed: %w", profitsErr)
	}

	feed := make([]Transaction, 0, len(deposits)+len(withdrawals)+len(profitLogs))
	for _, d := range deposits {
		feed = append(feed, Transaction{
			ID:        d.ID,
			Kind:      TransactionKindDeposit,
			Amount:    d.Amount,
			Status:    d.Status,
			CreatedAt: d.CreatedAt,
		})
	}
	for _, w := range withdrawals {
		feed = append(feed, Transaction{
			ID:        w.ID,
			Kind:      TransactionKindWithdrawal,
			Amount:    w.Amount,
			Status:    w.Status,
			CreatedAt: w.CreatedAt,
		})
	}
	for _, p := range profitLogs {
		feed = append(feed, Transaction{
			ID:        p.ID,
			Kind:      TransactionKindProfit,
			Amount:    p.Amount,
			Status:    domain.SettlementStatusApproved,
			CreatedAt: p.CreatedAt,
		})
	}

	sort.Slice(feed, func(i, j int) bool {
		return feed[i].CreatedAt.After(feed[j].CreatedAt)
	})

	total := int64(len(feed))
	limit, offset := page.Normalized()
	if offset >= len(feed) {
		return []Transaction{}, total, nil
	}
	end := offset + limit
	if end > len(feed) {
		end = len(feed)
	}
	return feed[offset:end], total, nil
}

// ProfitHistory постраничная история начислений прибыли.
func (s *WalletService) ProfitHistory(
	ctx context.Context,
	userID int64,
	page repoargs.Page,
) ([]domain.ProfitLog, int64, error) {
	logs, total, err := s.profitLogRepo.GetProfitLogsByUserID(ctx, userID, page)
	if err != nil {
		return nil, 0, err //nolint:wrapcheck
	}
	return logs, total, nil
}

// AdjustBalance админская установка deposit_amount. Дельта считается от текущего
// значения, тип уведомления зависит от знака: balance_increase, balance_decrease
// либо balance_adjustment при равенстве.
func (s *WalletService) AdjustBalance(
	ctx context.Context,
	userID int64,
	newDepositAmount decimal.Decimal,
	reason string,
) (*domain.User, error) {
	if newDepositAmount.IsNegative() {
		return nil, domain.ErrNotEnoughBalance
	}

	var updated *domain.User
	txErr := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		userRepo, userRepoErr := uow.GetAs[UserRepository](tx, uow.RepositoryName(repoargs.UserRepoName))
		if userRepoErr != nil {
			return userRepoErr //nolint:wrapcheck
		}
		user, findErr := userRepo.FindUserByID(c, userID)
		if findErr != nil {
			return findErr //nolint:wrapcheck
		}

		delta := newDepositAmount.Sub(user.DepositAmount)

		var messageType domain.NotificationType
		var message string
		switch {
		case delta.IsPositive():
			messageType = domain.NotificationTypeBalanceIncrease
			message = fmt.Sprintf(
				"Your balance has been increased by $%s. Reason: %s", delta.StringFixed(2), reason)
		case delta.IsNegative():
			messageType = domain.NotificationTypeBalanceDecrease
			message = fmt.Sprintf(
				"Your balance has been decreased by $%s. Reason: %s", delta.Abs().StringFixed(2), reason)
		default:
			messageType = domain.NotificationTypeBalanceAdjustment
			message = fmt.Sprintf("Your balance has been adjusted. Reason: %s", reason)
		}

		var mutateErr error
		updated, mutateErr = mutateBalance(c, tx, userID, balanceChange{
			depositDelta: delta,
			message:      message,
			messageType:  messageType,
		})
		return mutateErr
	})

	if txErr != nil {
		return nil, fmt.Errorf("adjusting balance of user %d: %w", userID, txErr)
	}
	return updated, nil
}

// GetDashboardStats агрегаты по юзерам и заявкам для главной страницы админки.
func (s *WalletService) GetDashboardStats(ctx context.Context) (*DashboardStats, error) {
	stats := &DashboardStats{}

	totalUsers, totalErr := s.userRepo.CountUsers(ctx, repoargs.UserFilter{})
	if totalErr != nil {
		return nil, fmt.Errorf("counting users: %w", totalErr)
	}
	stats.TotalUsers = totalUsers

	pendingStatus := domain.AccountStatusPending
	pendingUsers, pendingErr := s.userRepo.CountUsers(ctx, repoargs.UserFilter{AccountStatus: &pendingStatus})
	if pendingErr != nil {
		return nil, fmt.Errorf("counting pending users: %w", pendingErr)
	}
	stats.PendingUsers = pendingUsers

	pendingDeposits, pdErr := s.depositRepo.CountDepositsByStatus(ctx, domain.SettlementStatusPending)
	if pdErr != nil {
		return nil, fmt.Errorf("counting pending deposits: %w", pdErr)
	}
	stats.PendingDeposits = pendingDeposits

	approvedDeposits, adErr := s.depositRepo.CountDepositsByStatus(ctx, domain.SettlementStatusApproved)
	if adErr != nil {
		return nil, fmt.Errorf("counting approved deposits: %w", adErr)
	}
	stats.ApprovedDeposits = approvedDeposits

	pendingWithdrawals, pwErr := s.withdrawalRepo.CountWithdrawalsByStatus(ctx, domain.SettlementStatusPending)
	if pwErr != nil {
		return nil, fmt.Errorf("counting pending withdrawals: %w", pwErr)
	}
	stats.PendingWithdrawals = pendingWithdrawals

	approvedWithdrawals, awErr := s.withdrawalRepo.CountWithdrawalsByStatus(ctx, domain.SettlementStatusApproved)
	if awErr != nil {
		return nil, fmt.Errorf("counting approved withdrawals: %w", awErr)
	}
	stats.ApprovedWithdrawal = approvedWithdrawals

	return stats, nil
}
