package api

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/fsdevblog/safevault/internal/domain"
	"github.com/fsdevblog/safevault/internal/logger"
	"github.com/fsdevblog/safevault/internal/scheduler"
	"github.com/fsdevblog/safevault/internal/service"
	"github.com/fsdevblog/safevault/internal/service/tokens"
	"github.com/fsdevblog/safevault/internal/transport/api/mocks"
	"github.com/fsdevblog/safevault/internal/transport/api/testutils"
	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type AdminHandlerTestSuite struct {
	suite.Suite
	mockCtrl              *gomock.Controller
	router                *gin.Engine
	mockUserService       *mocks.MockUserServicer
	mockWalletService     *mocks.MockWalletServicer
	mockDepositService    *mocks.MockDepositServicer
	mockWithdrawalService *mocks.MockWithdrawalServicer
	mockProfitService     *mocks.MockProfitServicer
	mockNotifService      *mocks.MockNotificationServicer
	mockSchedulerStatus   *mocks.MockSchedulerStatuser
	jwtSecret             []byte
	adminToken            string
	userToken             string
}

func TestAdminHandlerSuite(t *testing.T) {
	suite.Run(t, new(AdminHandlerTestSuite))
}

func (s *AdminHandlerTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockUserService = mocks.NewMockUserServicer(s.mockCtrl)
	s.mockWalletService = mocks.NewMockWalletServicer(s.mockCtrl)
	s.mockDepositService = mocks.NewMockDepositServicer(s.mockCtrl)
	s.mockWithdrawalService = mocks.NewMockWithdrawalServicer(s.mockCtrl)
	s.mockProfitService = mocks.NewMockProfitServicer(s.mockCtrl)
	s.mockNotifService = mocks.NewMockNotificationServicer(s.mockCtrl)
	s.mockSchedulerStatus = mocks.NewMockSchedulerStatuser(s.mockCtrl)
	s.jwtSecret = []byte("super secret key")

	var err error
	s.router, err = New(RouterArgs{
		Logger:              logger.New(os.Stdout),
		UserService:         s.mockUserService,
		WalletService:       s.mockWalletService,
		DepositService:      s.mockDepositService,
		WithdrawalService:   s.mockWithdrawalService,
		ProfitService:       s.mockProfitService,
		NotificationService: s.mockNotifService,
		SchedulerStatus:     s.mockSchedulerStatus,
		JWTSecretKey:        s.jwtSecret,
	})
	s.Require().NoError(err)

	s.adminToken, err = tokens.GenerateUserJWT(100, domain.RoleAdmin, time.Hour, s.jwtSecret)
	s.Require().NoError(err)
	s.userToken, err = tokens.GenerateUserJWT(1, domain.RoleUser, time.Hour, s.jwtSecret)
	s.Require().NoError(err)
}

func (s *AdminHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func (s *AdminHandlerTestSuite) makeRequest(method, url string, body []byte, jwtToken string) *http.Response {
	args := testutils.RequestArgs{
		Router: s.router,
		Method: method,
		URL:    url,
	}
	if body != nil {
		args.Body = bytes.NewReader(body)
	}
	var reqOpts []func(*testutils.RequestOptions)
	if jwtToken != "" {
		reqOpts = append(reqOpts, testutils.WithHeader("Authorization", fmt.Sprintf("Bearer %s", jwtToken)))
	}
	res, err := testutils.MakeRequest(args, reqOpts...)
	s.Require().NoError(err)
	s.Require().NoError(res.Body.Close())
	return res
}

func (s *AdminHandlerTestSuite) TestAdminRequired() {
	// Админская группа недоступна обычной роли и неавторизованным.
	cases := []struct {
		name       string
		jwtToken   string
		wantStatus int
	}{
		{name: "user role is forbidden", jwtToken: s.userToken, wantStatus: http.StatusForbidden},
		{name: "no token", jwtToken: "", wantStatus: http.StatusUnauthorized},
	}
	for _, t := range cases {
		s.Run(t.name, func() {
			res := s.makeRequest(http.MethodGet, RouteGroup+AdminStatsRoute, nil, t.jwtToken)
			s.Equal(t.wantStatus, res.StatusCode)
		})
	}
}

func (s *AdminHandlerTestSuite) TestStats() {
	s.mockWalletService.EXPECT().GetDashboardStats(gomock.Any()).
		Return(&service.DashboardStats{TotalUsers: 10, PendingDeposits: 4}, nil).Times(1)

	res := s.makeRequest(http.MethodGet, RouteGroup+AdminStatsRoute, nil, s.adminToken)
	s.Equal(http.StatusOK, res.StatusCode)
}

func (s *AdminHandlerTestSuite) TestApproveUser() {
	s.mockUserService.EXPECT().ApproveAccount(gomock.Any(), int64(5)).
		Return(&domain.User{ID: 5, AccountStatus: domain.AccountStatusApproved}, nil).Times(1)
	// Повторное одобрение уже решенного аккаунта.
	s.mockUserService.EXPECT().ApproveAccount(gomock.Any(), int64(6)).
		Return(nil, domain.ErrStateConflict).Times(1)
	s.mockUserService.EXPECT().ApproveAccount(gomock.Any(), int64(7)).
		Return(nil, domain.ErrRecordNotFound).Times(1)

	cases := []struct {
		name       string
		id         string
		wantStatus int
	}{
		{name: "all ok", id: "5", wantStatus: http.StatusOK},
		{name: "not pending", id: "6", wantStatus: http.StatusConflict},
		{name: "not found", id: "7", wantStatus: http.StatusNotFound},
	}
	for _, t := range cases {
		s.Run(t.name, func() {
			res := s.makeRequest(http.MethodPut, RouteGroup+"/admin/users/"+t.id+"/approve", nil, s.adminToken)
			s.Equal(t.wantStatus, res.StatusCode)
		})
	}
}

func (s *AdminHandlerTestSuite) TestRejectUser() {
	s.mockUserService.EXPECT().RejectAccount(gomock.Any(), int64(5), "fraud suspicion").
		Return(&domain.User{ID: 5, AccountStatus: domain.AccountStatusRejected}, nil).Times(1)

	cases := []struct {
		name       string
		payload    string
		wantStatus int
	}{
		{name: "all ok", payload: `{"reason":"fraud suspicion"}`, wantStatus: http.StatusOK},
		// Причина обязательна.
		{name: "missing reason", payload: `{}`, wantStatus: http.StatusBadRequest},
	}
	for _, t := range cases {
		s.Run(t.name, func() {
			res := s.makeRequest(http.MethodPut, RouteGroup+"/admin/users/5/reject", []byte(t.payload), s.adminToken)
			s.Equal(t.wantStatus, res.StatusCode)
		})
	}
}

func (s *AdminHandlerTestSuite) TestAdjustBalance() {
	s.mockWalletService.EXPECT().
		AdjustBalance(gomock.Any(), int64(5), gomock.Any(), "manual correction").
		DoAndReturn(func(_ context.Context, _ int64, amount decimal.Decimal, _ string) (*domain.User, error) {
			s.True(amount.Equal(decimal.RequireFromString("250.00")))
			return &domain.User{ID: 5, DepositAmount: amount}, nil
		}).Times(1)
	s.mockWalletService.EXPECT().
		AdjustBalance(gomock.Any(), int64(6), gomock.Any(), "manual correction").
		Return(nil, domain.ErrNotEnoughBalance).Times(1)

	cases := []struct {
		name       string
		id         string
		payload    string
		wantStatus int
	}{
		{
			name:       "all ok",
			id:         "5",
			payload:    `{"depositAmount":250.00,"reason":"manual correction"}`,
			wantStatus: http.StatusOK,
		}, {
			name:       "negative amount",
			id:         "6",
			payload:    `{"depositAmount":-1,"reason":"manual correction"}`,
			wantStatus: http.StatusUnprocessableEntity,
		}, {
			name:       "missing reason",
			id:         "5",
			payload:    `{"depositAmount":250.00}`,
			wantStatus: http.StatusBadRequest,
		},
	}
	for _, t := range cases {
		s.Run(t.name, func() {
			res := s.makeRequest(http.MethodPut, RouteGroup+"/admin/users/"+t.id+"/balance", []byte(t.payload), s.adminToken)
			s.Equal(t.wantStatus, res.StatusCode)
		})
	}
}

func (s *AdminHandlerTestSuite) TestSettleDeposit() {
	s.mockDepositService.EXPECT().Approve(gomock.Any(), int64(10), "looks good").
		Return(&domain.Deposit{ID: 10, Status: domain.SettlementStatusApproved}, nil).Times(1)
	// Заявка уже решена другим админом.
	s.mockDepositService.EXPECT().Approve(gomock.Any(), int64(11), "").
		Return(nil, &domain.SettlementConflictError{Status: domain.SettlementStatusRejected}).Times(1)
	s.mockDepositService.EXPECT().Reject(gomock.Any(), int64(10), "unreadable screenshot").
		Return(&domain.Deposit{ID: 10, Status: domain.SettlementStatusRejected}, nil).Times(1)
	s.mockDepositService.EXPECT().Approve(gomock.Any(), int64(12), "").
		Return(nil, domain.ErrRecordNotFound).Times(1)

	cases := []struct {
		name       string
		url        string
		payload    []byte
		wantStatus int
	}{
		{
			name:       "approve ok",
			url:        RouteGroup + "/admin/deposit/10/approve",
			payload:    []byte(`{"adminNotes":"looks good"}`),
			wantStatus: http.StatusOK,
		}, {
			name:       "already settled",
			url:        RouteGroup + "/admin/deposit/11/approve",
			wantStatus: http.StatusConflict,
		}, {
			name:       "reject ok",
			url:        RouteGroup + "/admin/deposit/10/reject",
			payload:    []byte(`{"adminNotes":"unreadable screenshot"}`),
			wantStatus: http.StatusOK,
		}, {
			name:       "not found",
			url:        RouteGroup + "/admin/deposit/12/approve",
			wantStatus: http.StatusNotFound,
		},
	}
	for _, t := range cases {
		s.Run(t.name, func() {
			res := s.makeRequest(http.MethodPut, t.url, t.payload, s.adminToken)
			s.Equal(t.wantStatus, res.StatusCode)
		})
	}
}

func (s *AdminHandlerTestSuite) TestSettleWithdrawal() {
	s.mockWithdrawalService.EXPECT().Approve(gomock.Any(), int64(20), "").
		Return(&domain.Withdrawal{ID: 20, Status: domain.SettlementStatusApproved}, nil).Times(1)
	// Баланс юзера успел уменьшиться между заявкой и одобрением.
	s.mockWithdrawalService.EXPECT().Approve(gomock.Any(), int64(21), "").
		Return(nil, domain.ErrNotEnoughBalance).Times(1)
	s.mockWithdrawalService.EXPECT().Reject(gomock.Any(), int64(20), "suspicious address").
		Return(&domain.Withdrawal{ID: 20, Status: domain.SettlementStatusRejected}, nil).Times(1)

	cases := []struct {
		name       string
		url        string
		payload    []byte
		wantStatus int
	}{
		{
			name:       "approve ok",
			url:        RouteGroup + "/admin/withdraw/20/approve",
			wantStatus: http.StatusOK,
		}, {
			name:       "insufficient balance",
			url:        RouteGroup + "/admin/withdraw/21/approve",
			wantStatus: http.StatusUnprocessableEntity,
		}, {
			name:       "reject ok",
			url:        RouteGroup + "/admin/withdraw/20/reject",
			payload:    []byte(`{"adminNotes":"suspicious address"}`),
			wantStatus: http.StatusOK,
		},
	}
	for _, t := range cases {
		s.Run(t.name, func() {
			res := s.makeRequest(http.MethodPut, t.url, t.payload, s.adminToken)
			s.Equal(t.wantStatus, res.StatusCode)
		})
	}
}

func (s *AdminHandlerTestSuite) TestCreateNotification() {
	var userID int64 = 5

	s.mockNotifService.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, args service.CreateNotificationArgs) (*domain.Notification, error) {
			s.Require().NotNil(args.UserID)
			s.Equal(userID, *args.UserID)
			s.Equal(domain.NotificationTypeGeneral, args.Type)
			return &domain.Notification{ID: 1, UserID: args.UserID, Message: args.Message}, nil
		}).Times(1)
	// Без userId уведомление широковещательное.
	s.mockNotifService.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, args service.CreateNotificationArgs) (*domain.Notification, error) {
			s.Nil(args.UserID)
			return &domain.Notification{ID: 2, Message: args.Message}, nil
		}).Times(1)

	cases := []struct {
		name       string
		payload    string
		wantStatus int
	}{
		{name: "personal", payload: `{"userId":5,"message":"your account was reviewed"}`, wantStatus: http.StatusCreated},
		{name: "broadcast", payload: `{"message":"maintenance window"}`, wantStatus: http.StatusCreated},
		{name: "empty message", payload: `{"userId":5}`, wantStatus: http.StatusBadRequest},
	}
	for _, t := range cases {
		s.Run(t.name, func() {
			res := s.makeRequest(http.MethodPost, RouteGroup+AdminNotificationsRoute, []byte(t.payload), s.adminToken)
			s.Equal(t.wantStatus, res.StatusCode)
		})
	}
}

func (s *AdminHandlerTestSuite) TestRunAccrual() {
	s.mockProfitService.EXPECT().AccrueUser(gomock.Any(), int64(1)).
		Return(&service.AccrualResult{
			ProfitAmount:   decimal.RequireFromString("1.00"),
			NewTotalAmount: decimal.RequireFromString("101.00"),
		}, nil).Times(1)
	s.mockProfitService.EXPECT().AccrueUser(gomock.Any(), int64(2)).
		Return(nil, domain.ErrRecordNotFound).Times(1)
	s.mockProfitService.EXPECT().AccrueUser(gomock.Any(), int64(3)).
		Return(nil, domain.ErrUserNotEligible).Times(1)
	s.mockProfitService.EXPECT().AccrueUser(gomock.Any(), int64(4)).
		Return(nil, domain.ErrAlreadyAccrued).Times(1)

	cases := []struct {
		name       string
		userID     string
		wantStatus int
	}{
		{name: "all ok", userID: "1", wantStatus: http.StatusOK},
		{name: "user not found", userID: "2", wantStatus: http.StatusNotFound},
		{name: "not eligible", userID: "3", wantStatus: http.StatusUnprocessableEntity},
		{name: "already accrued today", userID: "4", wantStatus: http.StatusConflict},
		{name: "invalid id", userID: "abc", wantStatus: http.StatusBadRequest},
	}
	for _, t := range cases {
		s.Run(t.name, func() {
			res := s.makeRequest(http.MethodPost, RouteGroup+"/admin/accrual/run/"+t.userID, nil, s.adminToken)
			s.Equal(t.wantStatus, res.StatusCode)
		})
	}
}

func (s *AdminHandlerTestSuite) TestAccrualStatus() {
	nextRun := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
	s.mockSchedulerStatus.EXPECT().Status().
		Return(scheduler.Status{Running: true, NextRun: nextRun}).Times(1)

	res := s.makeRequest(http.MethodGet, RouteGroup+AdminAccrualStatusRoute, nil, s.adminToken)
	s.Equal(http.StatusOK, res.StatusCode)
}
