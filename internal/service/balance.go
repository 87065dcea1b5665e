package service

import (
	"context"

	"github.com/fsdevblog/safevault/internal/domain"
	"github.com/fsdevblog/safevault/internal/repository/repoargs"
	"github.com/fsdevblog/safevault/pkg/uow"
	"github.com/shopspring/decimal"
)

// balanceChange дельты денежных полей юзера плюс уведомление, описывающее изменение.
type balanceChange struct {
	depositDelta decimal.Decimal
	profitDelta  decimal.Decimal
	message      string
	messageType  domain.NotificationType
	actionURL    *string
}

// mutateBalance единый контракт изменения баланса. Все вызывающие стороны
// (подтверждение пополнения, подтверждение вывода, начисление прибыли,
// админская корректировка) проходят через него:
//  1. проверка, что поля не уходят в минус;
//  2. применение дельт и пересчет total_amount = deposit_amount + profit_amount;
//  3. запись юзера с проверкой lock_version;
//  4. ровно одно уведомление об изменении.
//
// Вызывается только внутри uow.Do: откат транзакции отменяет все шаги разом.
func mutateBalance(ctx context.Context, tx uow.TX, userID int64, change balanceChange) (*domain.User, error) {
	userRepo, userRepoErr := uow.GetAs[UserRepository](tx, uow.RepositoryName(repoargs.UserRepoName))
	if userRepoErr != nil {
		return nil, userRepoErr //nolint:wrapcheck
	}

	user, findErr := userRepo.FindUserByID(ctx, userID)
	if findErr != nil {
		return nil, findErr //nolint:wrapcheck
	}

	newDeposit := user.DepositAmount.Add(change.depositDelta)
	newProfit := user.ProfitAmount.Add(change.profitDelta)
	if newDeposit.IsNegative() || newProfit.IsNegative() {
		return nil, domain.ErrNotEnoughBalance
	}

	updated, updateErr := userRepo.UpdateBalances(ctx, repoargs.UpdateUserBalances{
		ID:            user.ID,
		DepositAmount: newDeposit,
		ProfitAmount:  newProfit,
		TotalAmount:   newDeposit.Add(newProfit),
		LockVersion:   user.LockVersion,
	})
	if updateErr != nil {
		return nil, updateErr //nolint:wrapcheck
	}

	notificationRepo, nRepoErr :=
		uow.GetAs[NotificationRepository](tx, uow.RepositoryName(repoargs.NotificationRepoName))
	if nRepoErr != nil {
		return nil, nRepoErr //nolint:wrapcheck
	}

	if _, nErr := notificationRepo.CreateNotification(ctx, repoargs.CreateNotification{
		UserID:    &user.ID,
		Message:   change.message,
		Type:      change.messageType,
		ActionURL: change.actionURL,
	}); nErr != nil {
		return nil, nErr //nolint:wrapcheck
	}

	return updated, nil
}
