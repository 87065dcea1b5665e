package service

import (
	"context"
	"testing"

	"github.com/fsdevblog/safevault/internal/domain"
	"github.com/fsdevblog/safevault/internal/repository/repoargs"
	"github.com/fsdevblog/safevault/internal/service/mocks"
	"github.com/fsdevblog/safevault/pkg/uow"
	uowmocks "github.com/fsdevblog/safevault/pkg/uow/mocks"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"
)

// fakeUnreadCache кеш в памяти, фиксирующий инвалидации.
type fakeUnreadCache struct {
	values      map[int64]int64
	invalidated []int64
}

func newFakeUnreadCache() *fakeUnreadCache {
	return &fakeUnreadCache{values: make(map[int64]int64)}
}

func (f *fakeUnreadCache) Get(_ context.Context, userID int64) (int64, bool) {
	count, ok := f.values[userID]
	return count, ok
}

func (f *fakeUnreadCache) Set(_ context.Context, userID, count int64) {
	f.values[userID] = count
}

func (f *fakeUnreadCache) Invalidate(_ context.Context, userID int64) {
	delete(f.values, userID)
	f.invalidated = append(f.invalidated, userID)
}

type NotificationServiceTestSuite struct {
	suite.Suite
	mockCtrl      *gomock.Controller
	mockUOW       *uowmocks.MockUOW
	mockNotifRepo *mocks.MockNotificationRepository
	cache         *fakeUnreadCache
	service       *NotificationService
}

func TestNotificationServiceSuite(t *testing.T) {
	suite.Run(t, new(NotificationServiceTestSuite))
}

func (s *NotificationServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockUOW = uowmocks.NewMockUOW(s.mockCtrl)
	s.mockNotifRepo = mocks.NewMockNotificationRepository(s.mockCtrl)
	s.cache = newFakeUnreadCache()

	s.mockUOW.EXPECT().GetRepository(uow.RepositoryName(repoargs.NotificationRepoName)).
		Return(s.mockNotifRepo, nil).AnyTimes()

	var err error
	s.service, err = NewNotificationService(s.mockUOW, s.cache)
	s.Require().NoError(err)
}

func (s *NotificationServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func (s *NotificationServiceTestSuite) TestCreate_InvalidatesCaches() {
	var userID int64 = 5
	s.mockNotifRepo.EXPECT().CreateNotification(gomock.Any(), gomock.Any()).
		Return(&domain.Notification{ID: 1, UserID: &userID}, nil)

	_, err := s.service.Create(s.T().Context(), CreateNotificationArgs{
		UserID:  &userID,
		Message: "hello",
		Type:    domain.NotificationTypeGeneral,
	})
	s.Require().NoError(err)
	// Персональное уведомление сбрасывает счетчик юзера и админский.
	s.Equal([]int64{userID, adminUnreadCacheID}, s.cache.invalidated)
}

func (s *NotificationServiceTestSuite) TestCreate_Broadcast() {
	s.mockNotifRepo.EXPECT().CreateNotification(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, args repoargs.CreateNotification) (*domain.Notification, error) {
			s.Nil(args.UserID)
			return &domain.Notification{ID: 1}, nil
		})

	_, err := s.service.Create(s.T().Context(), CreateNotificationArgs{
		Message: "maintenance window",
		Type:    domain.NotificationTypeGeneral,
	})
	s.Require().NoError(err)
	s.Equal([]int64{adminUnreadCacheID}, s.cache.invalidated)
}

func (s *NotificationServiceTestSuite) TestGetForUser_UnreadOnly() {
	var userID int64 = 7
	s.mockNotifRepo.EXPECT().GetNotifications(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, filter repoargs.NotificationFilter) ([]domain.Notification, int64, error) {
			s.Require().NotNil(filter.UserID)
			s.Equal(userID, *filter.UserID)
			s.Require().NotNil(filter.UserStatus)
			s.Equal(domain.ReadStatusUnread, *filter.UserStatus)
			s.Nil(filter.AdminStatus)
			return []domain.Notification{{ID: 1}}, 1, nil
		})

	notifications, total, err := s.service.GetForUser(s.T().Context(), userID, true, repoargs.Page{})
	s.Require().NoError(err)
	s.Len(notifications, 1)
	s.Equal(int64(1), total)
}

func (s *NotificationServiceTestSuite) TestGetForAdmin_UnreadOnly() {
	s.mockNotifRepo.EXPECT().GetNotifications(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, filter repoargs.NotificationFilter) ([]domain.Notification, int64, error) {
			s.Nil(filter.UserID)
			s.Nil(filter.UserStatus)
			s.Require().NotNil(filter.AdminStatus)
			s.Equal(domain.ReadStatusUnread, *filter.AdminStatus)
			return []domain.Notification{}, 0, nil
		})

	_, _, err := s.service.GetForAdmin(s.T().Context(), true, repoargs.Page{})
	s.Require().NoError(err)
}

func (s *NotificationServiceTestSuite) TestMarkRead_IndependentFlags() {
	var userID int64 = 3

	// Пользовательский флаг прочитан, админский остается unread.
	s.mockNotifRepo.EXPECT().MarkUserRead(gomock.Any(), int64(1), userID).
		Return(&domain.Notification{
			ID:          1,
			UserID:      &userID,
			UserStatus:  domain.ReadStatusRead,
			AdminStatus: domain.ReadStatusUnread,
		}, nil)

	notification, err := s.service.MarkRead(s.T().Context(), 1, userID)
	s.Require().NoError(err)
	s.Equal(domain.ReadStatusRead, notification.UserStatus)
	s.Equal(domain.ReadStatusUnread, notification.AdminStatus)
	s.Equal([]int64{userID}, s.cache.invalidated)
}

func (s *NotificationServiceTestSuite) TestMarkAdminRead() {
	s.mockNotifRepo.EXPECT().MarkAdminRead(gomock.Any(), int64(1)).
		Return(&domain.Notification{
			ID:          1,
			UserStatus:  domain.ReadStatusUnread,
			AdminStatus: domain.ReadStatusRead,
		}, nil)

	notification, err := s.service.MarkAdminRead(s.T().Context(), 1)
	s.Require().NoError(err)
	s.Equal(domain.ReadStatusUnread, notification.UserStatus)
	s.Equal([]int64{adminUnreadCacheID}, s.cache.invalidated)
}

func (s *NotificationServiceTestSuite) TestCountUnread_CacheMissThenHit() {
	var userID int64 = 9

	// Промах: счетчик читается из базы и кладется в кеш.
	s.mockNotifRepo.EXPECT().CountUserUnread(gomock.Any(), userID).Return(int64(4), nil).Times(1)

	count, missErr := s.service.CountUnread(s.T().Context(), userID)
	s.Require().NoError(missErr)
	s.Equal(int64(4), count)

	// Попадание: база не вызывается повторно.
	count, hitErr := s.service.CountUnread(s.T().Context(), userID)
	s.Require().NoError(hitErr)
	s.Equal(int64(4), count)
}

func (s *NotificationServiceTestSuite) TestCountUnread_NilCache() {
	service, err := NewNotificationService(s.mockUOW, nil)
	s.Require().NoError(err)

	s.mockNotifRepo.EXPECT().CountUserUnread(gomock.Any(), int64(9)).Return(int64(2), nil).Times(2)

	for range 2 {
		count, countErr := service.CountUnread(s.T().Context(), 9)
		s.Require().NoError(countErr)
		s.Equal(int64(2), count)
	}
}

func (s *NotificationServiceTestSuite) TestDeleteAll() {
	var userID int64 = 2
	s.mockNotifRepo.EXPECT().DeleteAllNotificationsForUser(gomock.Any(), userID).Return(nil)

	s.Require().NoError(s.service.DeleteAll(s.T().Context(), userID))
	s.Equal([]int64{userID}, s.cache.invalidated)
}
