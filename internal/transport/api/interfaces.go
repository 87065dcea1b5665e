package api

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/fsdevblog/safevault/internal/domain"
	"github.com/fsdevblog/safevault/internal/media"
	"github.com/fsdevblog/safevault/internal/repository/repoargs"
	"github.com/fsdevblog/safevault/internal/scheduler"
	"github.com/fsdevblog/safevault/internal/service"
)

// UserServicer интерфейс исключительно для моков.
type UserServicer interface {
	Register(ctx context.Context, args service.RegisterUserArgs) (*domain.User, error)
	Login(ctx context.Context, args service.LoginUserArgs) (*domain.User, string, error)
	AdminLogin(ctx context.Context, args service.LoginUserArgs) (*domain.User, string, error)
	ChangePassword(ctx context.Context, userID int64, oldPassword, newPassword string) error
	GetByID(ctx context.Context, userID int64) (*domain.User, error)
	UpdateProfile(ctx context.Context, userID int64, args service.UpdateProfileArgs) (*domain.User, error)
	SetProfileImage(ctx context.Context, userID int64, file media.File) (*domain.User, error)
	RemoveProfileImage(ctx context.Context, userID int64) (*domain.User, error)
	GetUsers(ctx context.Context, filter repoargs.UserFilter) ([]domain.User, int64, error)
	SetBlocked(ctx context.Context, userID int64, blocked bool) (*domain.User, error)
	ApproveAccount(ctx context.Context, userID int64) (*domain.User, error)
	RejectAccount(ctx context.Context, userID int64, reason string) (*domain.User, error)
}

type WalletServicer interface {
	GetBalance(ctx context.Context, userID int64) (*service.Balance, error)
	Transactions(ctx context.Context, userID int64, page repoargs.Page) ([]service.Transaction, int64, error)
	ProfitHistory(ctx context.Context, userID int64, page repoargs.Page) ([]domain.ProfitLog, int64, error)
	AdjustBalance(
		ctx context.Context,
		userID int64,
		newDepositAmount decimal.Decimal,
		reason string,
	) (*domain.User, error)
	GetDashboardStats(ctx context.Context) (*service.DashboardStats, error)
}

type DepositServicer interface {
	Request(ctx context.Context, userID int64, amount decimal.Decimal, screenshot media.File) (*domain.Deposit, error)
	GetByUserID(ctx context.Context, userID int64, page repoargs.Page) ([]domain.Deposit, int64, error)
	GetByIDForUser(ctx context.Context, id, userID int64) (*domain.Deposit, error)
	GetAll(ctx context.Context, filter repoargs.LedgerFilter) ([]domain.Deposit, map[int64]domain.UserRef, int64, error)
	Approve(ctx context.Context, id int64, adminNotes string) (*domain.Deposit, error)
	Reject(ctx context.Context, id int64, adminNotes string) (*domain.Deposit, error)
}

type WithdrawalServicer interface {
	Request(ctx context.Context, args service.RequestWithdrawalArgs) (*domain.Withdrawal, error)
	GetByUserID(ctx context.Context, userID int64, page repoargs.Page) ([]domain.Withdrawal, int64, error)
	GetByIDForUser(ctx context.Context, id, userID int64) (*domain.Withdrawal, error)
	GetAll(
		ctx context.Context,
		filter repoargs.LedgerFilter,
	) ([]domain.Withdrawal, map[int64]domain.UserRef, int64, error)
	Approve(ctx context.Context, id int64, adminNotes string) (*domain.Withdrawal, error)
	Reject(ctx context.Context, id int64, adminNotes string) (*domain.Withdrawal, error)
}

type ProfitServicer interface {
	AccrueUser(ctx context.Context, userID int64) (*service.AccrualResult, error)
}

type NotificationServicer interface {
	Create(ctx context.Context, args service.CreateNotificationArgs) (*domain.Notification, error)
	GetForUser(ctx context.Context, userID int64, unreadOnly bool, page repoargs.Page) ([]domain.Notification, int64, error)
	GetForAdmin(ctx context.Context, unreadOnly bool, page repoargs.Page) ([]domain.Notification, int64, error)
	MarkRead(ctx context.Context, id, userID int64) (*domain.Notification, error)
	MarkAllRead(ctx context.Context, userID int64) error
	MarkAdminRead(ctx context.Context, id int64) (*domain.Notification, error)
	MarkAllAdminRead(ctx context.Context) error
	Delete(ctx context.Context, id, userID int64) error
	DeleteAll(ctx context.Context, userID int64) error
	CountUnread(ctx context.Context, userID int64) (int64, error)
	CountAdminUnread(ctx context.Context) (int64, error)
}

// SchedulerStatuser состояние планировщика начислений для админки.
type SchedulerStatuser interface {
	Status() scheduler.Status
}
