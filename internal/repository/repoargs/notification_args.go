package repoargs

import "github.com/fsdevblog/safevault/internal/domain"

type CreateNotification struct {
	UserID    *int64
	Message   string
	Type      domain.NotificationType
	ActionURL *string
}

// NotificationFilter выборка уведомлений. UserID == nil означает выборку
// по всем юзерам (админская лента).
type NotificationFilter struct {
	UserID      *int64
	UserStatus  *domain.ReadStatusType
	AdminStatus *domain.ReadStatusType
	Page        Page
}
