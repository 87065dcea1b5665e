package service

import (
	"context"
	"fmt"

	"github.com/fsdevblog/safevault/internal/domain"
	"github.com/fsdevblog/safevault/internal/repository/repoargs"
	"github.com/fsdevblog/safevault/pkg/uow"
)

// adminUnreadCacheID ключ счетчика непрочитанных админской ленты в общем кеше.
const adminUnreadCacheID int64 = 0

// UnreadCache горячий счетчик непрочитанных уведомлений. Кеш best-effort,
// источником истины остается база.
type UnreadCache interface {
	Get(ctx context.Context, userID int64) (int64, bool)
	Set(ctx context.Context, userID, count int64)
	Invalidate(ctx context.Context, userID int64)
}

type NotificationService struct {
	notificationRepo NotificationRepository
	cache            UnreadCache
}

// NewNotificationService создает сервис уведомлений. cache может быть nil,
// тогда счетчики всегда читаются из базы.
func NewNotificationService(u uow.UOW, cache UnreadCache) (*NotificationService, error) {
	notificationRepo, nRepoErr :=
		uow.GetRepositoryAs[NotificationRepository](u, uow.RepositoryName(repoargs.NotificationRepoName))
	if nRepoErr != nil {
		return nil, nRepoErr //nolint:wrapcheck
	}
	return &NotificationService{
		notificationRepo: notificationRepo,
		cache:            cache,
	}, nil
}

type CreateNotificationArgs struct {
	UserID    *int64
	Message   string
	Type      domain.NotificationType
	ActionURL *string
}

// Create создает уведомление. UserID == nil означает широковещательное
// уведомление от администратора.
func (s *NotificationService) Create(ctx context.Context, args CreateNotificationArgs) (*domain.Notification, error) {
	notification, err := s.notificationRepo.CreateNotification(ctx, repoargs.CreateNotification{
		UserID:    args.UserID,
		Message:   args.Message,
		Type:      args.Type,
		ActionURL: args.ActionURL,
	})
	if err != nil {
		return nil, fmt.Errorf("creating notification: %w", err)
	}

	if s.cache != nil {
		if args.UserID != nil {
			s.cache.Invalidate(ctx, *args.UserID)
		}
		s.cache.Invalidate(ctx, adminUnreadCacheID)
	}
	return notification, nil
}

// GetForUser лента юзера: только персональные уведомления, широковещательные
// видны лишь в админской ленте.
func (s *NotificationService) GetForUser(
	ctx context.Context,
	userID int64,
	unreadOnly bool,
	page repoargs.Page,
) ([]domain.Notification, int64, error) {
	filter := repoargs.NotificationFilter{UserID: &userID, Page: page}
	if unreadOnly {
		unread := domain.ReadStatusUnread
		filter.UserStatus = &unread
	}
	notifications, total, err := s.notificationRepo.GetNotifications(ctx, filter)
	if err != nil {
		return nil, 0, err //nolint:wrapcheck
	}
	return notifications, total, nil
}

// GetForAdmin админская лента по всем юзерам.
func (s *NotificationService) GetForAdmin(
	ctx context.Context,
	unreadOnly bool,
	page repoargs.Page,
) ([]domain.Notification, int64, error) {
	filter := repoargs.NotificationFilter{Page: page}
	if unreadOnly {
		unread := domain.ReadStatusUnread
		filter.AdminStatus = &unread
	}
	notifications, total, err := s.notificationRepo.GetNotifications(ctx, filter)
	if err != nil {
		return nil, 0, err //nolint:wrapcheck
	}
	return notifications, total, nil
}

// MarkRead помечает уведомление прочитанным для юзера. Админский флаг
// того же уведомления не меняется.
func (s *NotificationService) MarkRead(ctx context.Context, id, userID int64) (*domain.Notification, error) {
	notification, err := s.notificationRepo.MarkUserRead(ctx, id, userID)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	if s.cache != nil {
		s.cache.Invalidate(ctx, userID)
	}
	return notification, nil
}

func (s *NotificationService) MarkAllRead(ctx context.Context, userID int64) error {
	if err := s.notificationRepo.MarkAllUserRead(ctx, userID); err != nil {
		return err //nolint:wrapcheck
	}
	if s.cache != nil {
		s.cache.Invalidate(ctx, userID)
	}
	return nil
}

// MarkAdminRead помечает уведомление прочитанным в админской ленте.
// Пользовательский флаг не меняется.
func (s *NotificationService) MarkAdminRead(ctx context.Context, id int64) (*domain.Notification, error) {
	notification, err := s.notificationRepo.MarkAdminRead(ctx, id)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	if s.cache != nil {
		s.cache.Invalidate(ctx, adminUnreadCacheID)
	}
	return notification, nil
}

func (s *NotificationService) MarkAllAdminRead(ctx context.Context) error {
	if err := s.notificationRepo.MarkAllAdminRead(ctx); err != nil {
		return err //nolint:wrapcheck
	}
	if s.cache != nil {
		s.cache.Invalidate(ctx, adminUnreadCacheID)
	}
	return nil
}

// Delete убирает уведомление из ленты юзера. Широковещательные уведомления
// юзер удалить не может.
func (s *NotificationService) Delete(ctx context.Context, id, userID int64) error {
	if err := s.notificationRepo.DeleteNotificationForUser(ctx, id, userID); err != nil {
		return err //nolint:wrapcheck
	}
	if s.cache != nil {
		s.cache.Invalidate(ctx, userID)
	}
	return nil
}

func (s *NotificationService) DeleteAll(ctx context.Context, userID int64) error {
	if err := s.notificationRepo.DeleteAllNotificationsForUser(ctx, userID); err != nil {
		return err //nolint:wrapcheck
	}
	if s.cache != nil {
		s.cache.Invalidate(ctx, userID)
	}
	return nil
}

// CountUnread число непрочитанных у юзера. Сначала кеш, при промахе база
// с записью обратно в кеш.
func (s *NotificationService) CountUnread(ctx context.Context, userID int64) (int64, error) {
	if s.cache != nil {
		if count, ok := s.cache.Get(ctx, userID); ok {
			return count, nil
		}
	}
	count, err := s.notificationRepo.CountUserUnread(ctx, userID)
	if err != nil {
		return 0, err //nolint:wrapcheck
	}
	if s.cache != nil {
		s.cache.Set(ctx, userID, count)
	}
	return count, nil
}

// CountAdminUnread число непрочитанных в админской ленте.
func (s *NotificationService) CountAdminUnread(ctx context.Context) (int64, error) {
	if s.cache != nil {
		if count, ok := s.cache.Get(ctx, adminUnreadCacheID); ok {
			return count, nil
		}
	}
	count, err := s.notificationRepo.CountAdminUnread(ctx)
	if err != nil {
		return 0, err //nolint:wrapcheck
	}
	if s.cache != nil {
		s.cache.Set(ctx, adminUnreadCacheID, count)
	}
	return count, nil
}
