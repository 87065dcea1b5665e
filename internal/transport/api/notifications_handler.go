package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/fsdevblog/safevault/internal/domain"
	"github.com/gin-gonic/gin"
)

type NotificationsHandler struct {
	notificationService NotificationServicer
}

func NewNotificationsHandler(notificationService NotificationServicer) *NotificationsHandler {
	return &NotificationsHandler{
		notificationService: notificationService,
	}
}

type NotificationResponse struct {
	ID          int64     `json:"id"`
	UserID      *int64    `json:"userId,omitempty"`
	Message     string    `json:"message"`
	Type        string    `json:"type"`
	UserStatus  string    `json:"userStatus"`
	AdminStatus string    `json:"adminStatus"`
	ActionURL   *string   `json:"actionUrl,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

func newNotificationResponse(n *domain.Notification) NotificationResponse {
	return NotificationResponse{
		ID:          n.ID,
		UserID:      n.UserID,
		Message:     n.Message,
		Type:        string(n.Type),
		UserStatus:  string(n.UserStatus),
		AdminStatus: string(n.AdminStatus),
		ActionURL:   n.ActionURL,
		CreatedAt:   n.CreatedAt,
	}
}

func newNotificationResponses(notifications []domain.Notification) []NotificationResponse {
	items := make([]NotificationResponse, 0, len(notifications))
	for i := range notifications {
		items = append(items, newNotificationResponse(&notifications[i]))
	}
	return items
}

// Index GET RouteGroup + NotificationsRoute. Лента юзера вместе со счетчиком
// непрочитанных.
func (h *NotificationsHandler) Index(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	unreadOnly := c.Query("unread") == "true"
	notifications, total, err := h.notificationService.GetForUser(ctx, userID, unreadOnly, pageFromQuery(c))
	if err != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		return
	}

	unreadCount, countErr := h.notificationService.CountUnread(ctx, userID)
	if countErr != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, countErr).SetType(gin.ErrorTypePrivate)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"notifications": newNotificationResponses(notifications),
		"total":         total,
		"unreadCount":   unreadCount,
	})
}

// UnreadCount GET RouteGroup + NotificationsUnreadCountRoute.
func (h *NotificationsHandler) UnreadCount(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	count, err := h.notificationService.CountUnread(ctx, userID)
	if err != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		return
	}
	c.JSON(http.StatusOK, gin.H{"unreadCount": count})
}

// MarkRead PUT RouteGroup + NotificationReadRoute. Меняет только флаг юзера,
// админский флаг того же уведомления не трогается.
func (h *NotificationsHandler) MarkRead(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, idOk := pathID(c, "id")
	if !idOk {
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	notification, err := h.notificationService.MarkRead(ctx, id, userID)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "notification not found"})
			return
		}
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		return
	}
	c.JSON(http.StatusOK, gin.H{"notification": newNotificationResponse(notification)})
}

// MarkAllRead PUT RouteGroup + NotificationsReadAllRoute.
func (h *NotificationsHandler) MarkAllRead(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	if err := h.notificationService.MarkAllRead(ctx, userID); err != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "All notifications marked as read"})
}

// Delete DELETE RouteGroup + NotificationRoute. Убирает уведомление из ленты юзера.
func (h *NotificationsHandler) Delete(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, idOk := pathID(c, "id")
	if !idOk {
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	if err := h.notificationService.Delete(ctx, id, userID); err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "notification not found"})
			return
		}
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Notification deleted"})
}

// ClearAll DELETE RouteGroup + NotificationsClearAllRoute.
func (h *NotificationsHandler) ClearAll(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	if err := h.notificationService.DeleteAll(ctx, userID); err != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "All notifications cleared"})
}
