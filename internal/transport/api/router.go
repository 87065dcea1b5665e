package api

import (
	"fmt"
	"time"

	"github.com/fsdevblog/safevault/internal/transport/api/middlewares"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

const (
	DefaultServiceTimeout = 3 * time.Second
	// DefaultUploadTimeout покрывает загрузку файла на медиахост.
	DefaultUploadTimeout = 20 * time.Second
)

const (
	RouteGroup = "/api"

	RegisterRoute       = "/auth/register"
	LoginRoute          = "/auth/login"
	AdminLoginRoute     = "/auth/admin/login"
	ChangePasswordRoute = "/auth/change-password"

	ProfileRoute      = "/user/profile"
	ProfileImageRoute = "/user/profile-image"

	WalletRoute                  = "/wallet"
	TransactionsRoute            = "/wallet/transactions"
	TransactionsDepositsRoute    = "/wallet/transactions/deposits"
	TransactionsWithdrawalsRoute = "/wallet/transactions/withdrawals"
	TransactionsProfitsRoute     = "/wallet/transactions/profits"

	DepositRequestRoute = "/deposit/request"
	DepositHistoryRoute = "/deposit/history"
	DepositRoute        = "/deposit/:id"

	WithdrawRequestRoute = "/withdraw/request"
	WithdrawHistoryRoute = "/withdraw/history"
	WithdrawRoute        = "/withdraw/:id"

	NotificationsRoute            = "/notifications"
	NotificationsUnreadCountRoute = "/notifications/unread-count"
	NotificationReadRoute         = "/notifications/:id/read"
	NotificationsReadAllRoute     = "/notifications/read-all"
	NotificationRoute             = "/notifications/:id"
	NotificationsClearAllRoute    = "/notifications/clear-all"

	AdminStatsRoute                = "/admin/stats"
	AdminUsersRoute                = "/admin/users"
	AdminUsersPendingRoute         = "/admin/users/pending"
	AdminUserRoute                 = "/admin/users/:id"
	AdminUserBlockRoute            = "/admin/users/:id/block"
	AdminUserUnblockRoute          = "/admin/users/:id/unblock"
	AdminUserApproveRoute          = "/admin/users/:id/approve"
	AdminUserRejectRoute           = "/admin/users/:id/reject"
	AdminUserBalanceRoute          = "/admin/users/:id/balance"
	AdminDepositsRoute             = "/admin/deposits"
	AdminDepositApproveRoute       = "/admin/deposit/:id/approve"
	AdminDepositRejectRoute        = "/admin/deposit/:id/reject"
	AdminWithdrawalsRoute          = "/admin/withdrawals"
	AdminWithdrawApproveRoute      = "/admin/withdraw/:id/approve"
	AdminWithdrawRejectRoute       = "/admin/withdraw/:id/reject"
	AdminNotificationsRoute        = "/admin/notifications"
	AdminNotificationReadRoute     = "/admin/notifications/:id/read"
	AdminNotificationsReadAllRoute = "/admin/notifications/read-all"
	AdminAccrualStatusRoute        = "/admin/accrual/status"
	AdminAccrualRunRoute           = "/admin/accrual/run/:userID"
)

type RouterArgs struct {
	Logger              *logrus.Logger
	UserService         UserServicer
	WalletService       WalletServicer
	DepositService      DepositServicer
	WithdrawalService   WithdrawalServicer
	ProfitService       ProfitServicer
	NotificationService NotificationServicer
	SchedulerStatus     SchedulerStatuser
	JWTSecretKey        []byte
}

func New(args RouterArgs) (*gin.Engine, error) {
	if err := registerValidators(); err != nil {
		return nil, fmt.Errorf("router: %w", err)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	if args.Logger != nil {
		r.Use(middlewares.Logger(args.Logger))
	}
	r.Use(middlewares.Errors())

	authHandler := NewAuthHandler(args.UserService)
	userHandler := NewUserHandler(args.UserService)
	walletHandler := NewWalletHandler(args.WalletService, args.DepositService, args.WithdrawalService)
	depositHandler := NewDepositHandler(args.DepositService)
	withdrawHandler := NewWithdrawHandler(args.WithdrawalService)
	notificationsHandler := NewNotificationsHandler(args.NotificationService)
	adminHandler := NewAdminHandler(AdminHandlerArgs{
		UserService:         args.UserService,
		WalletService:       args.WalletService,
		DepositService:      args.DepositService,
		WithdrawalService:   args.WithdrawalService,
		ProfitService:       args.ProfitService,
		NotificationService: args.NotificationService,
		SchedulerStatus:     args.SchedulerStatus,
	})

	api := r.Group(RouteGroup)

	api.POST(RegisterRoute, middlewares.NonAuthRequired(args.JWTSecretKey), authHandler.Register)
	api.POST(LoginRoute, middlewares.NonAuthRequired(args.JWTSecretKey), authHandler.Login)
	api.POST(AdminLoginRoute, middlewares.NonAuthRequired(args.JWTSecretKey), authHandler.AdminLogin)

	api.Use(middlewares.AuthRequired(args.JWTSecretKey))
	// ниже все роуты группы требуют авторизованного пользователя.
	api.PUT(ChangePasswordRoute, authHandler.ChangePassword)

	api.GET(ProfileRoute, userHandler.Profile)
	api.PUT(ProfileRoute, userHandler.UpdateProfile)
	api.POST(ProfileImageRoute, userHandler.SetProfileImage)
	api.DELETE(ProfileImageRoute, userHandler.RemoveProfileImage)

	api.GET(WalletRoute, walletHandler.Balance)
	api.GET(TransactionsRoute, walletHandler.Transactions)
	api.GET(TransactionsDepositsRoute, walletHandler.DepositTransactions)
	api.GET(TransactionsWithdrawalsRoute, walletHandler.WithdrawalTransactions)
	api.GET(TransactionsProfitsRoute, walletHandler.ProfitTransactions)

	api.POST(DepositRequestRoute, depositHandler.Request)
	api.GET(DepositHistoryRoute, depositHandler.History)
	api.GET(DepositRoute, depositHandler.Show)

	api.POST(WithdrawRequestRoute, withdrawHandler.Request)
	api.GET(WithdrawHistoryRoute, withdrawHandler.History)
	api.GET(WithdrawRoute, withdrawHandler.Show)

	api.GET(NotificationsRoute, notificationsHandler.Index)
	api.GET(NotificationsUnreadCountRoute, notificationsHandler.UnreadCount)
	api.PUT(NotificationReadRoute, notificationsHandler.MarkRead)
	api.PUT(NotificationsReadAllRoute, notificationsHandler.MarkAllRead)
	api.DELETE(NotificationRoute, notificationsHandler.Delete)
	api.DELETE(NotificationsClearAllRoute, notificationsHandler.ClearAll)

	admin := api.Group("", middlewares.AdminRequired())
	admin.GET(AdminStatsRoute, adminHandler.Stats)
	admin.GET(AdminUsersRoute, adminHandler.Users)
	admin.GET(AdminUsersPendingRoute, adminHandler.PendingUsers)
	admin.GET(AdminUserRoute, adminHandler.ShowUser)
	admin.PUT(AdminUserBlockRoute, adminHandler.BlockUser)
	admin.PUT(AdminUserUnblockRoute, adminHandler.UnblockUser)
	admin.PUT(AdminUserApproveRoute, adminHandler.ApproveUser)
	admin.PUT(AdminUserRejectRoute, adminHandler.RejectUser)
	admin.PUT(AdminUserBalanceRoute, adminHandler.AdjustBalance)
	admin.GET(AdminDepositsRoute, adminHandler.Deposits)
	admin.PUT(AdminDepositApproveRoute, adminHandler.ApproveDeposit)
	admin.PUT(AdminDepositRejectRoute, adminHandler.RejectDeposit)
	admin.GET(AdminWithdrawalsRoute, adminHandler.Withdrawals)
	admin.PUT(AdminWithdrawApproveRoute, adminHandler.ApproveWithdrawal)
	admin.PUT(AdminWithdrawRejectRoute, adminHandler.RejectWithdrawal)
	admin.POST(AdminNotificationsRoute, adminHandler.CreateNotification)
	admin.GET(AdminNotificationsRoute, adminHandler.Notifications)
	admin.PUT(AdminNotificationReadRoute, adminHandler.MarkNotificationRead)
	admin.PUT(AdminNotificationsReadAllRoute, adminHandler.MarkAllNotificationsRead)
	admin.GET(AdminAccrualStatusRoute, adminHandler.AccrualStatus)
	admin.POST(AdminAccrualRunRoute, adminHandler.RunAccrual)

	return r, nil
}
