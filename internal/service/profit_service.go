package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fsdevblog/safevault/internal/domain"
	"github.com/fsdevblog/safevault/internal/repository/repoargs"
	"github.com/fsdevblog/safevault/pkg/uow"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// dailyProfitRate ставка ежедневного начисления: 1% от deposit_amount.
var dailyProfitRate = decimal.NewFromFloat(0.01)

type ProfitService struct {
	uow           uow.UOW
	userRepo      UserRepository
	profitLogRepo ProfitLogRepository
	l             *logrus.Entry
}

func NewProfitService(u uow.UOW, l *logrus.Logger) (*ProfitService, error) {
	userRepo, userRepoErr := uow.GetRepositoryAs[UserRepository](u, uow.RepositoryName(repoargs.UserRepoName))
	if userRepoErr != nil {
		return nil, userRepoErr //nolint:wrapcheck
	}
	profitLogRepo, pRepoErr :=
		uow.GetRepositoryAs[ProfitLogRepository](u, uow.RepositoryName(repoargs.ProfitLogRepoName))
	if pRepoErr != nil {
		return nil, pRepoErr //nolint:wrapcheck
	}
	return &ProfitService{
		uow:           u,
		userRepo:      userRepo,
		profitLogRepo: profitLogRepo,
		l:             l.WithField("component", "profit_service"),
	}, nil
}

// AccrualReport итог прогона начисления по всем подходящим юзерам.
type AccrualReport struct {
	Eligible       int
	Credited       int
	AlreadyAccrued int
	Failed         int
}

// AccrualResult итог ручного начисления одному юзеру.
type AccrualResult struct {
	ProfitAmount   decimal.Decimal
	NewTotalAmount decimal.Decimal
}

// AccrueAll начисляет ежедневную прибыль всем подходящим юзерам: active и
// deposit_amount > 0. Каждый юзер обрабатывается в своей транзакции,
// ошибка по одному не прерывает остальных. Повторный прогон за тот же день
// безопасен: уникальность (user_id, accrued_on) превращает дубль в пропуск.
func (s *ProfitService) AccrueAll(ctx context.Context) (*AccrualReport, error) {
	users, usersErr := s.userRepo.GetEligibleForAccrual(ctx)
	if usersErr != nil {
		return nil, fmt.Errorf("loading users eligible for accrual: %w", usersErr)
	}

	report := &AccrualReport{Eligible: len(users)}
	accruedOn := accrualDate(time.Now())

	for i := range users {
		user := &users[i]
		_, accrueErr := s.accrue(ctx, user, accruedOn)
		switch {
		case accrueErr == nil:
			report.Credited++
		case errors.Is(accrueErr, domain.ErrDuplicateKey):
			report.AlreadyAccrued++
		default:
			report.Failed++
			s.l.WithError(accrueErr).WithField("userID", user.ID).Error("daily profit accrual failed")
		}
	}

	s.l.WithFields(logrus.Fields{
		"eligible":        report.Eligible,
		"credited":        report.Credited,
		"already_accrued": report.AlreadyAccrued,
		"failed":          report.Failed,
	}).Info("daily profit accrual finished")
	return report, nil
}

// AccrueUser ручное начисление одному юзеру. Юзер должен проходить по тем же
// критериям, что и плановый прогон, иначе ErrUserNotEligible. Повторное
// начисление за текущий день возвращает ErrAlreadyAccrued.
func (s *ProfitService) AccrueUser(ctx context.Context, userID int64) (*AccrualResult, error) {
	user, findErr := s.userRepo.FindUserByID(ctx, userID)
	if findErr != nil {
		return nil, findErr //nolint:wrapcheck
	}
	if !eligibleForAccrual(user) {
		return nil, domain.ErrUserNotEligible
	}

	accruedOn := accrualDate(time.Now())
	exists, existsErr := s.profitLogRepo.ProfitLogExists(ctx, userID, accruedOn)
	if existsErr != nil {
		return nil, fmt.Errorf("checking profit log for user %d: %w", userID, existsErr)
	}
	if exists {
		return nil, domain.ErrAlreadyAccrued
	}

	updated, accrueErr := s.accrue(ctx, user, accruedOn)
	if accrueErr != nil {
		if errors.Is(accrueErr, domain.ErrDuplicateKey) {
			return nil, domain.ErrAlreadyAccrued
		}
		return nil, fmt.Errorf("accruing profit for user %d: %w", userID, accrueErr)
	}

	return &AccrualResult{
		ProfitAmount:   user.DepositAmount.Mul(dailyProfitRate).Round(2),
		NewTotalAmount: updated.TotalAmount,
	}, nil
}

// accrue одна атомарная итерация начисления: лог прибыли, зачисление на
// profit_amount и уведомление. Вставка лога идет первой, ее конфликт по
// (user_id, accrued_on) откатывает транзакцию целиком.
func (s *ProfitService) accrue(ctx context.Context, user *domain.User, accruedOn time.Time) (*domain.User, error) {
	profit := user.DepositAmount.Mul(dailyProfitRate).Round(2)

	var updated *domain.User
	txErr := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		profitLogRepo, pRepoErr :=
			uow.GetAs[ProfitLogRepository](tx, uow.RepositoryName(repoargs.ProfitLogRepoName))
		if pRepoErr != nil {
			return pRepoErr //nolint:wrapcheck
		}

		if _, logErr := profitLogRepo.CreateProfitLog(c, repoargs.CreateProfitLog{
			UserID:        user.ID,
			Amount:        profit,
			DepositAmount: user.DepositAmount,
			Rate:          dailyProfitRate,
			AccruedOn:     accruedOn,
		}); logErr != nil {
			return logErr //nolint:wrapcheck
		}

		var mutateErr error
		updated, mutateErr = mutateBalance(c, tx, user.ID, balanceChange{
			profitDelta: profit,
			message: fmt.Sprintf(
				"Daily profit of $%s has been credited to your account", profit.StringFixed(2)),
			messageType: domain.NotificationTypeProfit,
		})
		return mutateErr
	})

	if txErr != nil {
		return nil, txErr
	}
	return updated, nil
}

// eligibleForAccrual критерии совпадают с выборкой GetEligibleForAccrual:
// статус аккаунта (pending/approved) на начисление не влияет.
func eligibleForAccrual(user *domain.User) bool {
	return user.Status == domain.UserStatusActive &&
		user.DepositAmount.IsPositive()
}

// accrualDate дата начисления: календарный день по UTC.
func accrualDate(now time.Time) time.Time {
	return now.UTC().Truncate(24 * time.Hour)
}
