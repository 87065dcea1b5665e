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
	"github.com/fsdevblog/safevault/internal/repository/repoargs"
	"github.com/fsdevblog/safevault/internal/service"
	"github.com/fsdevblog/safevault/internal/service/tokens"
	"github.com/fsdevblog/safevault/internal/transport/api/mocks"
	"github.com/fsdevblog/safevault/internal/transport/api/testutils"
	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type WithdrawHandlerTestSuite struct {
	suite.Suite
	mockCtrl              *gomock.Controller
	router                *gin.Engine
	mockWithdrawalService *mocks.MockWithdrawalServicer
	jwtSecret             []byte
}

func TestWithdrawHandlerSuite(t *testing.T) {
	suite.Run(t, new(WithdrawHandlerTestSuite))
}

func (s *WithdrawHandlerTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockWithdrawalService = mocks.NewMockWithdrawalServicer(s.mockCtrl)
	s.jwtSecret = []byte("super secret key")

	var err error
	s.router, err = New(RouterArgs{
		Logger:            logger.New(os.Stdout),
		WithdrawalService: s.mockWithdrawalService,
		JWTSecretKey:      s.jwtSecret,
	})
	s.Require().NoError(err)
}

func (s *WithdrawHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func (s *WithdrawHandlerTestSuite) userToken(userID int64) string {
	token, err := tokens.GenerateUserJWT(userID, domain.RoleUser, time.Hour, s.jwtSecret)
	s.Require().NoError(err)
	return token
}

func (s *WithdrawHandlerTestSuite) TestRequest() {
	var richUserID int64 = 1
	var poorUserID int64 = 2

	// Моки
	// Валидная заявка.
	s.mockWithdrawalService.EXPECT().
		Request(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, args service.RequestWithdrawalArgs) (*domain.Withdrawal, error) {
			s.Equal(richUserID, args.UserID)
			s.True(args.Amount.Equal(decimal.RequireFromString("100.50")))
			s.Equal(domain.PlatformBinance, args.Platform)
			s.Equal("0x1234567890abcdef", args.WalletAddress)
			return &domain.Withdrawal{
				ID:       10,
				UserID:   args.UserID,
				Amount:   args.Amount,
				Platform: args.Platform,
				Status:   domain.SettlementStatusPending,
			}, nil
		}).Times(1)
	// Нехватка баланса: 422, заявка не создается.
	s.mockWithdrawalService.EXPECT().
		Request(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, args service.RequestWithdrawalArgs) (*domain.Withdrawal, error) {
			s.Equal(poorUserID, args.UserID)
			return nil, domain.ErrNotEnoughBalance
		}).Times(1)

	validPayload := `{"amount":100.50,"platform":"Binance","walletAddress":"0x1234567890abcdef"}`

	cases := []struct {
		name       string
		payload    string
		userID     int64
		wantStatus int
	}{
		{
			name:       "all ok",
			payload:    validPayload,
			userID:     richUserID,
			wantStatus: http.StatusCreated,
		}, {
			name:       "insufficient balance",
			payload:    validPayload,
			userID:     poorUserID,
			wantStatus: http.StatusUnprocessableEntity,
		}, {
			name:       "negative amount",
			payload:    `{"amount":-5,"platform":"Binance","walletAddress":"0x1234567890abcdef"}`,
			userID:     richUserID,
			wantStatus: http.StatusUnprocessableEntity,
		}, {
			// Платформа вне списка поддерживаемых режется валидатором.
			name:       "unsupported platform",
			payload:    `{"amount":100,"platform":"PayPal","walletAddress":"0x1234567890abcdef"}`,
			userID:     richUserID,
			wantStatus: http.StatusBadRequest,
		}, {
			name:       "short wallet address",
			payload:    `{"amount":100,"platform":"Binance","walletAddress":"0x123"}`,
			userID:     richUserID,
			wantStatus: http.StatusBadRequest,
		}, {
			name:       "not authorized",
			payload:    validPayload,
			wantStatus: http.StatusUnauthorized,
		},
	}
	for _, t := range cases {
		s.Run(t.name, func() {
			args := testutils.RequestArgs{
				Router: s.router,
				Method: http.MethodPost,
				URL:    RouteGroup + WithdrawRequestRoute,
				Body:   bytes.NewReader([]byte(t.payload)),
			}
			var reqOpts []func(*testutils.RequestOptions)
			if t.userID != 0 {
				reqOpts = append(reqOpts, testutils.WithHeader("Authorization", fmt.Sprintf("Bearer %s", s.userToken(t.userID))))
			}
			res, err := testutils.MakeRequest(args, reqOpts...)
			s.Require().NoError(err)
			defer func() {
				closeErr := res.Body.Close()
				s.Require().NoError(closeErr)
			}()

			s.Equal(t.wantStatus, res.StatusCode)
		})
	}
}

func (s *WithdrawHandlerTestSuite) TestHistory() {
	var userID int64 = 1

	withdrawals := []domain.Withdrawal{
		{ID: 1, UserID: userID, Amount: decimal.NewFromInt(50), Status: domain.SettlementStatusApproved},
	}
	s.mockWithdrawalService.EXPECT().
		GetByUserID(gomock.Any(), userID, repoargs.Page{Number: 2, Limit: 5}).
		Return(withdrawals, int64(11), nil).Times(1)

	res, err := testutils.MakeRequest(testutils.RequestArgs{
		Router: s.router,
		Method: http.MethodGet,
		URL:    RouteGroup + WithdrawHistoryRoute + "?page=2&limit=5",
	}, testutils.WithHeader("Authorization", fmt.Sprintf("Bearer %s", s.userToken(userID))))
	s.Require().NoError(err)
	defer func() {
		closeErr := res.Body.Close()
		s.Require().NoError(closeErr)
	}()

	s.Equal(http.StatusOK, res.StatusCode)
}

func (s *WithdrawHandlerTestSuite) TestShow() {
	var userID int64 = 1

	s.mockWithdrawalService.EXPECT().
		GetByIDForUser(gomock.Any(), int64(10), userID).
		Return(&domain.Withdrawal{ID: 10, UserID: userID, Amount: decimal.NewFromInt(50)}, nil).Times(1)
	// Чужая заявка выглядит как несуществующая.
	s.mockWithdrawalService.EXPECT().
		GetByIDForUser(gomock.Any(), int64(11), userID).
		Return(nil, domain.ErrRecordNotFound).Times(1)

	cases := []struct {
		name       string
		id         string
		wantStatus int
	}{
		{name: "all ok", id: "10", wantStatus: http.StatusOK},
		{name: "not found", id: "11", wantStatus: http.StatusNotFound},
		{name: "invalid id", id: "abc", wantStatus: http.StatusBadRequest},
	}
	for _, t := range cases {
		s.Run(t.name, func() {
			res, err := testutils.MakeRequest(testutils.RequestArgs{
				Router: s.router,
				Method: http.MethodGet,
				URL:    RouteGroup + "/withdraw/" + t.id,
			}, testutils.WithHeader("Authorization", fmt.Sprintf("Bearer %s", s.userToken(userID))))
			s.Require().NoError(err)
			defer func() {
				closeErr := res.Body.Close()
				s.Require().NoError(closeErr)
			}()

			s.Equal(t.wantStatus, res.StatusCode)
		})
	}
}
