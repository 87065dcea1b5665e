package service

import (
	"context"
	"time"

	"github.com/fsdevblog/safevault/internal/domain"
	"github.com/fsdevblog/safevault/internal/repository/repoargs"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

type UserRepository interface {
	CreateUser(ctx context.Context, args repoargs.CreateUser) (*domain.User, error)
	FindUserByID(ctx context.Context, id int64) (*domain.User, error)
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)
	UpdateProfile(ctx context.Context, args repoargs.UpdateUserProfile) (*domain.User, error)
	UpdatePassword(ctx context.Context, id int64, hashedPassword string) error
	SetStatus(ctx context.Context, id int64, status domain.UserStatusType) (*domain.User, error)
	SetAccountStatus(ctx context.Context, id int64, status domain.AccountStatusType) (*domain.User, error)
	UpdateBalances(ctx context.Context, args repoargs.UpdateUserBalances) (*domain.User, error)
	GetEligibleForAccrual(ctx context.Context) ([]domain.User, error)
	GetUsers(ctx context.Context, filter repoargs.UserFilter) ([]domain.User, int64, error)
	GetUserRefs(ctx context.Context, ids []int64) ([]domain.UserRef, error)
	CountUsers(ctx context.Context, filter repoargs.UserFilter) (int64, error)
}

type DepositRepository interface {
	CreateDeposit(ctx context.Context, args repoargs.CreateDeposit) (*domain.Deposit, error)
	FindDepositByID(ctx context.Context, id int64) (*domain.Deposit, error)
	FindDepositByIDForUser(ctx context.Context, id, userID int64) (*domain.Deposit, error)
	GetDepositsByUserID(ctx context.Context, userID int64, page repoargs.Page) ([]domain.Deposit, int64, error)
	GetAllDepositsByUserID(ctx context.Context, userID int64) ([]domain.Deposit, error)
	GetDeposits(ctx context.Context, filter repoargs.LedgerFilter) ([]domain.Deposit, int64, error)
	SettleDeposit(ctx context.Context, args repoargs.SettleEntry) (*domain.Deposit, error)
	CountDepositsByStatus(ctx context.Context, status domain.SettlementStatusType) (int64, error)
}

type WithdrawalRepository interface {
	CreateWithdrawal(ctx context.Context, args repoargs.CreateWithdrawal) (*domain.Withdrawal, error)
	FindWithdrawalByID(ctx context.Context, id int64) (*domain.Withdrawal, error)
	FindWithdrawalByIDForUser(ctx context.Context, id, userID int64) (*domain.Withdrawal, error)
	GetWithdrawalsByUserID(ctx context.Context, userID int64, page repoargs.Page) ([]domain.Withdrawal, int64, error)
	GetAllWithdrawalsByUserID(ctx context.Context, userID int64) ([]domain.Withdrawal, error)
	GetWithdrawals(ctx context.Context, filter repoargs.LedgerFilter) ([]domain.Withdrawal, int64, error)
	SettleWithdrawal(ctx context.Context, args repoargs.SettleEntry) (*domain.Withdrawal, error)
	CountWithdrawalsByStatus(ctx context.Context, status domain.SettlementStatusType) (int64, error)
}

type ProfitLogRepository interface {
	CreateProfitLog(ctx context.Context, args repoargs.CreateProfitLog) (*domain.ProfitLog, error)
	GetProfitLogsByUserID(ctx context.Context, userID int64, page repoargs.Page) ([]domain.ProfitLog, int64, error)
	GetAllProfitLogsByUserID(ctx context.Context, userID int64) ([]domain.ProfitLog, error)
	ProfitLogExists(ctx context.Context, userID int64, accruedOn time.Time) (bool, error)
}

type NotificationRepository interface {
	CreateNotification(ctx context.Context, args repoargs.CreateNotification) (*domain.Notification, error)
	GetNotifications(ctx context.Context, filter repoargs.NotificationFilter) ([]domain.Notification, int64, error)
	MarkUserRead(ctx context.Context, id, userID int64) (*domain.Notification, error)
	MarkAllUserRead(ctx context.Context, userID int64) error
	MarkAdminRead(ctx context.Context, id int64) (*domain.Notification, error)
	MarkAllAdminRead(ctx context.Context) error
	DeleteNotificationForUser(ctx context.Context, id, userID int64) error
	DeleteAllNotificationsForUser(ctx context.Context, userID int64) error
	CountUserUnread(ctx context.Context, userID int64) (int64, error)
	CountAdminUnread(ctx context.Context) (int64, error)
}
