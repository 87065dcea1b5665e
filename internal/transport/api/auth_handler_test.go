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
	"github.com/fsdevblog/safevault/internal/service"
	"github.com/fsdevblog/safevault/internal/service/tokens"
	"github.com/fsdevblog/safevault/internal/transport/api/mocks"
	"github.com/fsdevblog/safevault/internal/transport/api/testutils"
	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"
)

type AuthHandlerTestSuite struct {
	suite.Suite
	mockCtrl        *gomock.Controller
	router          *gin.Engine
	mockUserService *mocks.MockUserServicer
	jwtSecret       []byte
}

func TestAuthHandlerSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}

func (s *AuthHandlerTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockUserService = mocks.NewMockUserServicer(s.mockCtrl)
	s.jwtSecret = []byte("super secret key")

	var err error
	s.router, err = New(RouterArgs{
		Logger:       logger.New(os.Stdout),
		UserService:  s.mockUserService,
		JWTSecretKey: s.jwtSecret,
	})
	s.Require().NoError(err)
}

func (s *AuthHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func (s *AuthHandlerTestSuite) TestRegister() {
	validPayload := []byte(`{"firstName":"John","lastName":"Doe","email":"john@example.com","password":"secret1"}`)
	dupPayload := []byte(`{"firstName":"Jane","lastName":"Doe","email":"taken@example.com","password":"secret1"}`)
	shortPassPayload := []byte(`{"firstName":"John","lastName":"Doe","email":"john@example.com","password":"123"}`)

	authorizedToken, tokenErr := tokens.GenerateUserJWT(1, domain.RoleUser, time.Hour, s.jwtSecret)
	s.Require().NoError(tokenErr)

	// Моки
	// Валидная регистрация: аккаунт создается в статусе pending.
	s.mockUserService.EXPECT().
		Register(gomock.Any(), service.RegisterUserArgs{
			FirstName: "John",
			LastName:  "Doe",
			Email:     "john@example.com",
			Password:  "secret1",
		}).
		Return(&domain.User{
			ID:            1,
			Email:         "john@example.com",
			AccountStatus: domain.AccountStatusPending,
			Role:          domain.RoleUser,
		}, nil).Times(1)
	// Email уже занят.
	s.mockUserService.EXPECT().
		Register(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, args service.RegisterUserArgs) (*domain.User, error) {
			s.Equal("taken@example.com", args.Email)
			return nil, domain.ErrDuplicateKey
		}).Times(1)

	cases := []struct {
		name       string
		payload    []byte
		jwtToken   string
		wantStatus int
	}{
		{
			name:       "all ok",
			payload:    validPayload,
			wantStatus: http.StatusCreated,
		}, {
			name:       "duplicate email",
			payload:    dupPayload,
			wantStatus: http.StatusConflict,
		}, {
			name:       "validation error",
			payload:    shortPassPayload,
			wantStatus: http.StatusUnprocessableEntity,
		}, {
			name:       "malformed json",
			payload:    []byte(`{"firstName":`),
			wantStatus: http.StatusBadRequest,
		}, {
			// Регистрация закрыта для уже авторизованных.
			name:       "already authorized",
			payload:    validPayload,
			jwtToken:   authorizedToken,
			wantStatus: http.StatusUnauthorized,
		},
	}
	for _, t := range cases {
		s.Run(t.name, func() {
			args := testutils.RequestArgs{
				Router: s.router,
				Method: http.MethodPost,
				URL:    RouteGroup + RegisterRoute,
				Body:   bytes.NewReader(t.payload),
			}
			var reqOpts []func(*testutils.RequestOptions)
			if t.jwtToken != "" {
				reqOpts = append(reqOpts, testutils.WithHeader("Authorization", fmt.Sprintf("Bearer %s", t.jwtToken)))
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

func (s *AuthHandlerTestSuite) TestLogin() {
	payload := func(email string) []byte {
		return []byte(fmt.Sprintf(`{"email":%q,"password":"secret1"}`, email))
	}

	approvedUser := &domain.User{ID: 1, Email: "ok@example.com", Role: domain.RoleUser}

	s.mockUserService.EXPECT().
		Login(gomock.Any(), service.LoginUserArgs{Email: "ok@example.com", Password: "secret1"}).
		Return(approvedUser, "jwt-token", nil).Times(1)
	s.mockUserService.EXPECT().
		Login(gomock.Any(), service.LoginUserArgs{Email: "wrong@example.com", Password: "secret1"}).
		Return(nil, "", domain.ErrPasswordMissMatch).Times(1)
	s.mockUserService.EXPECT().
		Login(gomock.Any(), service.LoginUserArgs{Email: "blocked@example.com", Password: "secret1"}).
		Return(nil, "", domain.ErrAccountBlocked).Times(1)
	s.mockUserService.EXPECT().
		Login(gomock.Any(), service.LoginUserArgs{Email: "pending@example.com", Password: "secret1"}).
		Return(nil, "", domain.ErrAccountPending).Times(1)
	s.mockUserService.EXPECT().
		Login(gomock.Any(), service.LoginUserArgs{Email: "rejected@example.com", Password: "secret1"}).
		Return(nil, "", domain.ErrAccountRejected).Times(1)

	cases := []struct {
		name       string
		email      string
		wantStatus int
		wantToken  bool
	}{
		{name: "all ok", email: "ok@example.com", wantStatus: http.StatusOK, wantToken: true},
		{name: "invalid credentials", email: "wrong@example.com", wantStatus: http.StatusUnauthorized},
		{name: "blocked account", email: "blocked@example.com", wantStatus: http.StatusForbidden},
		{name: "pending account", email: "pending@example.com", wantStatus: http.StatusForbidden},
		{name: "rejected account", email: "rejected@example.com", wantStatus: http.StatusForbidden},
	}
	for _, t := range cases {
		s.Run(t.name, func() {
			res, err := testutils.MakeRequest(testutils.RequestArgs{
				Router: s.router,
				Method: http.MethodPost,
				URL:    RouteGroup + LoginRoute,
				Body:   bytes.NewReader(payload(t.email)),
			})
			s.Require().NoError(err)
			defer func() {
				closeErr := res.Body.Close()
				s.Require().NoError(closeErr)
			}()

			s.Equal(t.wantStatus, res.StatusCode)
			if t.wantToken {
				s.Equal("Bearer jwt-token", res.Header.Get("Authorization"))
			} else {
				s.Empty(res.Header.Get("Authorization"))
			}
		})
	}
}

func (s *AuthHandlerTestSuite) TestAdminLogin() {
	s.mockUserService.EXPECT().
		AdminLogin(gomock.Any(), service.LoginUserArgs{Email: "admin@example.com", Password: "secret1"}).
		Return(&domain.User{ID: 1, Role: domain.RoleAdmin}, "admin-token", nil).Times(1)
	// Обычный юзер через админский вход не проходит.
	s.mockUserService.EXPECT().
		AdminLogin(gomock.Any(), service.LoginUserArgs{Email: "user@example.com", Password: "secret1"}).
		Return(nil, "", domain.ErrRecordNotFound).Times(1)

	cases := []struct {
		name       string
		email      string
		wantStatus int
	}{
		{name: "admin ok", email: "admin@example.com", wantStatus: http.StatusOK},
		{name: "not an admin", email: "user@example.com", wantStatus: http.StatusUnauthorized},
	}
	for _, t := range cases {
		s.Run(t.name, func() {
			payload := fmt.Sprintf(`{"email":%q,"password":"secret1"}`, t.email)
			res, err := testutils.MakeRequest(testutils.RequestArgs{
				Router: s.router,
				Method: http.MethodPost,
				URL:    RouteGroup + AdminLoginRoute,
				Body:   bytes.NewReader([]byte(payload)),
			})
			s.Require().NoError(err)
			defer func() {
				closeErr := res.Body.Close()
				s.Require().NoError(closeErr)
			}()

			s.Equal(t.wantStatus, res.StatusCode)
		})
	}
}

func (s *AuthHandlerTestSuite) TestChangePassword() {
	var userID int64 = 7
	jwtToken, tokenErr := tokens.GenerateUserJWT(userID, domain.RoleUser, time.Hour, s.jwtSecret)
	s.Require().NoError(tokenErr)

	s.mockUserService.EXPECT().
		ChangePassword(gomock.Any(), userID, "old-secret", "new-secret").
		Return(nil).Times(1)
	s.mockUserService.EXPECT().
		ChangePassword(gomock.Any(), userID, "bad-secret", "new-secret").
		Return(domain.ErrPasswordMissMatch).Times(1)

	cases := []struct {
		name        string
		oldPassword string
		jwtToken    string
		wantStatus  int
	}{
		{name: "all ok", oldPassword: "old-secret", jwtToken: jwtToken, wantStatus: http.StatusOK},
		{name: "wrong old password", oldPassword: "bad-secret", jwtToken: jwtToken, wantStatus: http.StatusUnauthorized},
		{name: "not authorized", oldPassword: "old-secret", wantStatus: http.StatusUnauthorized},
	}
	for _, t := range cases {
		s.Run(t.name, func() {
			payload := fmt.Sprintf(`{"oldPassword":%q,"newPassword":"new-secret"}`, t.oldPassword)
			args := testutils.RequestArgs{
				Router: s.router,
				Method: http.MethodPut,
				URL:    RouteGroup + ChangePasswordRoute,
				Body:   bytes.NewReader([]byte(payload)),
			}
			var reqOpts []func(*testutils.RequestOptions)
			if t.jwtToken != "" {
				reqOpts = append(reqOpts, testutils.WithHeader("Authorization", fmt.Sprintf("Bearer %s", t.jwtToken)))
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
