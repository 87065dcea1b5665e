package service

import (
	"context"
	"fmt"

	"github.com/fsdevblog/safevault/internal/domain"
	"github.com/fsdevblog/safevault/internal/media"
	"github.com/fsdevblog/safevault/internal/repository/repoargs"
	"github.com/fsdevblog/safevault/pkg/uow"
	"github.com/shopspring/decimal"
)

const depositProofsFolder = "deposit-proofs"

type DepositService struct {
	uow         uow.UOW
	depositRepo DepositRepository
	userRepo    UserRepository
	uploader    media.Uploader
}

func NewDepositService(u uow.UOW, uploader media.Uploader) (*DepositService, error) {
	depositRepo, depositRepoErr :=
		uow.GetRepositoryAs[DepositRepository](u, uow.RepositoryName(repoargs.DepositRepoName))
	if depositRepoErr != nil {
		return nil, depositRepoErr //nolint:wrapcheck
	}
	userRepo, userRepoErr := uow.GetRepositoryAs[UserRepository](u, uow.RepositoryName(repoargs.UserRepoName))
	if userRepoErr != nil {
		return nil, userRepoErr //nolint:wrapcheck
	}
	return &DepositService{
		uow:         u,
		depositRepo: depositRepo,
		userRepo:    userRepo,
		uploader:    uploader,
	}, nil
}

// Request создает заявку на пополнение: скриншот подтверждения уходит на медиахост,
// заявка и уведомление создаются в одной транзакции.
func (s *DepositService) Request(
	ctx context.Context,
	userID int64,
	amount decimal.Decimal,
	screenshot media.File,
) (*domain.Deposit, error) {
	screenshotURL, uploadErr := s.uploader.Upload(ctx, screenshot, depositProofsFolder)
	if uploadErr != nil {
		return nil, fmt.Errorf("requesting deposit: %w", uploadErr)
	}

	var deposit *domain.Deposit
	txErr := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		depositRepo, dRepoErr :=
			uow.GetAs[DepositRepository](tx, uow.RepositoryName(repoargs.DepositRepoName))
		if dRepoErr != nil {
			return dRepoErr //nolint:wrapcheck
		}

		var createErr error
		deposit, createErr = depositRepo.CreateDeposit(c, repoargs.CreateDeposit{
			UserID:        userID,
			Amount:        amount,
			ScreenshotURL: screenshotURL,
		})
		if createErr != nil {
			return createErr //nolint:wrapcheck
		}

		notificationRepo, nRepoErr :=
			uow.GetAs[NotificationRepository](tx, uow.RepositoryName(repoargs.NotificationRepoName))
		if nRepoErr != nil {
			return nRepoErr //nolint:wrapcheck
		}

		actionURL := fmt.Sprintf("/admin/deposits/%d", deposit.ID)
		_, nErr := notificationRepo.CreateNotification(c, repoargs.CreateNotification{
			UserID: &userID,
			Message: fmt.Sprintf(
				"Your deposit request of $%s has been submitted and is pending review",
				amount.StringFixed(2)),
			Type:      domain.NotificationTypeDeposit,
			ActionURL: &actionURL,
		})
		return nErr //nolint:wrapcheck
	})

	if txErr != nil {
		return nil, fmt.Errorf("requesting deposit: %w", txErr)
	}
	return deposit, nil
}

func (s *DepositService) GetByUserID(
	ctx context.Context,
	userID int64,
	page repoargs.Page,
) ([]domain.Deposit, int64, error) {
	deposits, total, err := s.depositRepo.GetDepositsByUserID(ctx, userID, page)
	if err != nil {
		return nil, 0, err //nolint:wrapcheck
	}
	return deposits, total, nil
}

func (s *DepositService) GetByIDForUser(ctx context.Context, id, userID int64) (*domain.Deposit, error) {
	deposit, err := s.depositRepo.FindDepositByIDForUser(ctx, id, userID)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return deposit, nil
}

// GetAll админская выборка заявок с краткими данными владельцев.
func (s *DepositService) GetAll(
	ctx context.Context,
	filter repoargs.LedgerFilter,
) ([]domain.Deposit, map[int64]domain.UserRef, int64, error) {
	deposits, total, err := s.depositRepo.GetDeposits(ctx, filter)
	if err != nil {
		return nil, nil, 0, err //nolint:wrapcheck
	}

	refs, refsErr := userRefsFor(ctx, s.userRepo, depositUserIDs(deposits))
	if refsErr != nil {
		return nil, nil, 0, refsErr
	}
	return deposits, refs, total, nil
}

// Approve подтверждает заявку: перевод в approved, зачисление на deposit_amount,
// пересчет total и уведомление - атомарно. Повторное подтверждение вернет
// ErrStateConflict, откатив транзакцию.
func (s *DepositService) Approve(ctx context.Context, id int64, adminNotes string) (*domain.Deposit, error) {
	var deposit *domain.Deposit
	txErr := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		depositRepo, dRepoErr :=
			uow.GetAs[DepositRepository](tx, uow.RepositoryName(repoargs.DepositRepoName))
		if dRepoErr != nil {
			return dRepoErr //nolint:wrapcheck
		}

		var settleErr error
		deposit, settleErr = depositRepo.SettleDeposit(c, repoargs.SettleEntry{
			ID:         id,
			Status:     domain.SettlementStatusApproved,
			AdminNotes: adminNotes,
		})
		if settleErr != nil {
			return settleErr //nolint:wrapcheck
		}

		_, mutateErr := mutateBalance(c, tx, deposit.UserID, balanceChange{
			depositDelta: deposit.Amount,
			message: fmt.Sprintf(
				"Your deposit of $%s has been approved and added to your account",
				deposit.Amount.StringFixed(2)),
			messageType: domain.NotificationTypeDeposit,
		})
		return mutateErr
	})

	if txErr != nil {
		return nil, fmt.Errorf("approving deposit %d: %w", id, txErr)
	}
	return deposit, nil
}

// Reject отклоняет заявку. Баланс не меняется, юзер получает уведомление с причиной.
func (s *DepositService) Reject(ctx context.Context, id int64, adminNotes string) (*domain.Deposit, error) {
	var deposit *domain.Deposit
	txErr := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		depositRepo, dRepoErr :=
			uow.GetAs[DepositRepository](tx, uow.RepositoryName(repoargs.DepositRepoName))
		if dRepoErr != nil {
			return dRepoErr //nolint:wrapcheck
		}

		var settleErr error
		deposit, settleErr = depositRepo.SettleDeposit(c, repoargs.SettleEntry{
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

		message := fmt.Sprintf("Your deposit of $%s has been rejected", deposit.Amount.StringFixed(2))
		if adminNotes != "" {
			message += ". Reason: " + adminNotes
		}
		_, nErr := notificationRepo.CreateNotification(c, repoargs.CreateNotification{
			UserID:  &deposit.UserID,
			Message: message,
			Type:    domain.NotificationTypeDeposit,
		})
		return nErr //nolint:wrapcheck
	})

	if txErr != nil {
		return nil, fmt.Errorf("rejecting deposit %d: %w", id, txErr)
	}
	return deposit, nil
}

func depositUserIDs(deposits []domain.Deposit) []int64 {
	ids := make([]int64, 0, len(deposits))
	seen := make(map[int64]struct{}, len(deposits))
	for _, d := range deposits {
		if _, ok := seen[d.UserID]; ok {
			continue
		}
		seen[d.UserID] = struct{}{}
		ids = append(ids, d.UserID)
	}
	return ids
}

// userRefsFor грузит краткие данные юзеров и раскладывает их по id.
func userRefsFor(
	ctx context.Context,
	userRepo UserRepository,
	ids []int64,
) (map[int64]domain.UserRef, error) {
	if len(ids) == 0 {
		return map[int64]domain.UserRef{}, nil
	}
	refs, err := userRepo.GetUserRefs(ctx, ids)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	byID := make(map[int64]domain.UserRef, len(refs))
	for _, ref := range refs {
		byID[ref.ID] = ref
	}
	return byID, nil
}
