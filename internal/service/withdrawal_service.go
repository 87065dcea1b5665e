package service

import (
	"context"
	"fmt"

	"github.com/fsdevblog/safevault/internal/domain"
	"github.com/fsdevblog/safevault/internal/repository/repoargs"
	"github.com/fsdevblog/safevault/pkg/uow"
	"github.com/shopspring/decimal"
)

type WithdrawalService struct {
	uow            uow.UOW
	withdrawalRepo WithdrawalRepository
	userRepo       UserRepository
}

func NewWithdrawalService(u uow.UOW) (*WithdrawalService, error) {
	withdrawalRepo, wRepoErr :=
		uow.GetRepositoryAs[WithdrawalRepository](u, uow.RepositoryName(repoargs.WithdrawalRepoName))
	if wRepoErr != nil {
		return nil, wRepoErr //nolint:wrapcheck
	}
	userRepo, userRepoErr := uow.GetRepositoryAs[UserRepository](u, uow.RepositoryName(repoargs.UserRepoName))
	if userRepoErr != nil {
		return nil, userRepoErr //nolint:wrapcheck
	}
	return &WithdrawalService{
		uow:            u,
		withdrawalRepo: withdrawalRepo,
		userRepo:       userRepo,
	}, nil
}

type RequestWithdrawalArgs struct {
	UserID        int64
	Amount        decimal.Decimal
	Platform      domain.PlatformType
	WalletAddress string
}

// Request создает заявку на вывод. При нехватке баланса возвращает
// ErrNotEnoughBalance, запись о попытке не создается.
func (s *WithdrawalService) Request(ctx context.Context, args RequestWithdrawalArgs) (*domain.Withdrawal, error) {
	var withdrawal *domain.Withdrawal
	txErr := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		userRepo, userRepoErr := uow.GetAs[UserRepository](tx, uow.RepositoryName(repoargs.UserRepoName))
		if userRepoErr != nil {
			return userRepoErr //nolint:wrapcheck
		}

		user, findErr := userRepo.FindUserByID(c, args.UserID)
		if findErr != nil {
			return findErr //nolint:wrapcheck
		}
		if user.TotalAmount.LessThan(args.Amount) {
			return domain.ErrNotEnoughBalance
		}

		withdrawalRepo, wRepoErr :=
			uow.GetAs[WithdrawalRepository](tx, uow.RepositoryName(repoargs.WithdrawalRepoName))
		if wRepoErr != nil {
			return wRepoErr //nolint:wrapcheck
		}

		var createErr error
		withdrawal, createErr = withdrawalRepo.CreateWithdrawal(c, repoargs.CreateWithdrawal{
			UserID:        args.UserID,
			Amount:        args.Amount,
			Platform:      args.Platform,
			WalletAddress: args.WalletAddress,
		})
		if createErr != nil {
			return createErr //nolint:wrapcheck
		}

		notificationRepo, nRepoErr :=
			uow.GetAs[NotificationRepository](tx, uow.RepositoryName(repoargs.NotificationRepoName))
		if nRepoErr != nil {
			return nRepoErr //nolint:wrapcheck
		}

		actionURL := fmt.Sprintf("/admin/withdrawals/%d", withdrawal.ID)
		_, nErr := notificationRepo.CreateNotification(c, repoargs.CreateNotification{
			UserID: &args.UserID,
			Message: fmt.Sprintf(
				"Your withdrawal request of $%s to %s has been submitted and is pending review",
				args.Amount.StringFixed(2), args.Platform),
			Type:      domain.NotificationTypeWithdrawal,
			ActionURL: &actionURL,
		})
		return nErr //nolint:wrapcheck
	})

	if txErr != nil {
		return nil, fmt.Errorf("requesting withdrawal: %w", txErr)
	}
	return withdrawal, nil
}

func (s *WithdrawalService) GetByUserID(
	ctx context.Context,
	userID int64,
	page repoargs.Page,
) ([]domain.Withdrawal, int64, error) {
	withdrawals, total, err := s.withdrawalRepo.GetWithdrawalsByUserID(ctx, userID, page)
	if err != nil {
		return nil, 0, err //nolint:wrapcheck
	}
	return withdrawals, total, nil
}

func (s *WithdrawalService) GetByIDForUser(ctx context.Context, id, userID int64) (*domain.Withdrawal, error) {
	withdrawal, err := s.withdrawalRepo.FindWithdrawalByIDForUser(ctx, id, userID)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return withdrawal, nil
}

// GetAll админская выборка заявок с краткими данными владельцев.
func (s *WithdrawalService) GetAll(
	ctx context.Context,
	filter repoargs.LedgerFilter,
) ([]domain.Withdrawal, map[int64]domain.UserRef, int64, error) {
	withdrawals, total, err := s.withdrawalRepo.GetWithdrawals(ctx, filter)
	if err != nil {
		return nil, nil, 0, err //nolint:wrapcheck
	}

	refs, refsErr := userRefsFor(ctx, s.userRepo, withdrawalUserIDs(withdrawals))
	if refsErr != nil {
		return nil, nil, 0, refsErr
	}
	return withdrawals, refs, total, nil
}

// Approve подтверждает вывод: перевод заявки в approved, списание и уведомление
// атомарны. Списание идет сначала из deposit_amount, остаток - из profit_amount;
// при нехватке total_amount транзакция откатывается с ErrNotEnoughBalance.
func (s *WithdrawalService) Approve(ctx context.Context, id int64, adminNotes string) (*domain.Withdrawal, error) {
	var withdrawal *domain.Withdrawal
	txErr := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		withdrawalRepo, wRepoErr :=
			uow.GetAs[WithdrawalRepository](tx, uow.RepositoryName(repoargs.WithdrawalRepoName))
		if wRepoErr != nil {
			return wRepoErr //nolint:wrapcheck
		}

		var settleErr error
		withdrawal, settleErr = withdrawalRepo.SettleWithdrawal(c, repoargs.SettleEntry{
			ID:         id,
			Status:     domain.SettlementStatusApproved,
			AdminNotes: adminNotes,
		})
		if settleErr != nil {
			return settleErr //nolint:wrapcheck
		}

		userRepo, userRepoErr := uow.GetAs[UserRepository](tx, uow.RepositoryName(repoargs.UserRepoName))
		if userRepoErr != nil {
			return userRepoErr //nolint:wrapcheck
		}
		user, findErr := userRepo.FindUserByID(c, withdrawal.UserID)
		if findErr != nil {
			return findErr //nolint:wrapcheck
		}
		if user.TotalAmount.LessThan(withdrawal.Amount) {
			return domain.ErrNotEnoughBalance
		}

		fromDeposit := decimal.Min(user.DepositAmount, withdrawal.Amount)
		fromProfit := withdrawal.Amount.Sub(fromDeposit)

		_, mutateErr := mutateBalance(c, tx, withdrawal.UserID, balanceChange{
			depositDelta: fromDeposit.Neg(),
			profitDelta:  fromProfit.Neg(),
			message: fmt.Sprintf(
				"Your withdrawal of $%s to %s has been approved",
				withdrawal.Amount.StringFixed(2), withdrawal.Platform),
			messageType: domain.NotificationTypeWithdrawal,
		})
		return mutateErr
	})

	if txErr != nil {
		return nil, fmt.Errorf("approving withdrawal %d: %w", id, txErr)
	}
	return withdrawal, nil
}

// Reject отклоняет заявку на вывод. Баланс не меняется.
func (s *WithdrawalService) Reject(ctx context.Context, id int64, adminNotes string) (*domain.Withdrawal, error) {
	var withdrawal *domain.Withdrawal
	txErr := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		withdrawalRepo, wRepoErr :=
			uow.GetAs[WithdrawalRepository](tx, uow.RepositoryName(repoargs.WithdrawalRepoName))
		if wRepoErr != nil {
			return wRepoErr //nolint:wrapcheck
		}

		var settleErr error
		withdrawal, settleErr = withdrawalRepo.SettleWithdrawal(c, repoargs.SettleEntry{
			ID:         id,
			Status:     domain.SettlementStatusRejected,
			AdminNotes: adminNotes,
		})
		if settleErr != nil {
			return settleErr //nolint:wrapcheck
		}

		notificationRepo, nRepoErr :=
			uow.GetAs[NotificationRepository](tx, uow.RepositoryName(repoargs.NotificationRepoName))
		if nRepoErr != nil {
			return nRepoErr //nolint:wrapcheck
		}

		message := fmt.Sprintf(
			"Your withdrawal of $%s to %s has been rejected",
			withdrawal.Amount.StringFixed(2), withdrawal.Platform)
		if adminNotes != "" {
			message += ". Reason: " + adminNotes
		}
		_, nErr := notificationRepo.CreateNotification(c, repoargs.CreateNotification{
			UserID:  &withdrawal.UserID,
			Message: message,
			Type:    domain.NotificationTypeWithdrawal,
		})
		return nErr //nolint:wrapcheck
	})

	if txErr != nil {
		return nil, fmt.Errorf("rejecting withdrawal %d: %w", id, txErr)
	}
	return withdrawal, nil
}

func withdrawalUserIDs(withdrawals []domain.Withdrawal) []int64 {
	ids := make([]int64, 0, len(withdrawals))
	seen := make(map[int64]struct{}, len(withdrawals))
	for _, w := range withdrawals {
		if _, ok := seen[w.UserID]; ok {
			continue
		}
		seen[w.UserID] = struct{}{}
		ids = append(ids, w.UserID)
	}
	return ids
}
