package domain

type UserStatusType string

const (
	UserStatusActive  UserStatusType = "active"
	UserStatusBlocked UserStatusType = "blocked"
)

type AccountStatusType string

const (
	AccountStatusPending  AccountStatusType = "pending"
	AccountStatusApproved AccountStatusType = "approved"
	AccountStatusRejected AccountStatusType = "rejected"
)

type RoleType string

const (
	RoleUser  RoleType = "user"
	RoleAdmin RoleType = "admin"
)

// SettlementStatusType статус заявки на пополнение/вывод. Переходы монотонны:
// pending -> approved|rejected, обратных переходов нет.
type SettlementStatusType string

const (
	SettlementStatusPending  SettlementStatusType = "pending"
	SettlementStatusApproved SettlementStatusType = "approved"
	SettlementStatusRejected SettlementStatusType = "rejected"
)

type PlatformType string

const (
	PlatformBinance     PlatformType = "Binance"
	PlatformTrustWallet PlatformType = "Trust Wallet"
	PlatformOther       PlatformType = "Other"
)

type NotificationType string

const (
	NotificationTypeDeposit           NotificationType = "deposit"
	NotificationTypeWithdrawal        NotificationType = "withdrawal"
	NotificationTypeProfit            NotificationType = "profit"
	NotificationTypeGeneral           NotificationType = "general"
	NotificationTypeBalanceIncrease   NotificationType = "balance_increase"
	NotificationTypeBalanceDecrease   NotificationType = "balance_decrease"
	NotificationTypeBalanceAdjustment NotificationType = "balance_adjustment"
)

type ReadStatusType string

const (
	ReadStatusRead   ReadStatusType = "read"
	ReadStatusUnread ReadStatusType = "unread"
)
