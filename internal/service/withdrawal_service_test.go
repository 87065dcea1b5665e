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
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type WithdrawalServiceTestSuite struct {
	suite.Suite
	mockCtrl           *gomock.Controller
	mockUOW            *uowmocks.MockUOW
	mockTX             *uowmocks.MockTX
	mockWithdrawalRepo *mocks.MockWithdrawalRepository
	mockUserRepo       *mocks.MockUserRepository
	mockNotifRepo      *mocks.MockNotificationRepository
	service            *WithdrawalService
}

func TestWithdrawalServiceSuite(t *testing.T) {
	suite.Run(t, new(WithdrawalServiceTestSuite))
}

func (s *WithdrawalServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockUOW = uowmocks.NewMockUOW(s.mockCtrl)
	s.mockTX = uowmocks.NewMockTX(s.mockCtrl)
	s.mockWithdrawalRepo = mocks.NewMockWithdrawalRepository(s.mockCtrl)
	s.mockUserRepo = mocks.NewMockUserRepository(s.mockCtrl)
	s.mockNotifRepo = mocks.NewMockNotificationRepository(s.mockCtrl)

	s.mockUOW.EXPECT().GetRepository(uow.RepositoryName(repoargs.WithdrawalRepoName)).
		Return(s.mockWithdrawalRepo, nil).AnyTimes()
	s.mockUOW.EXPECT().GetRepository(uow.RepositoryName(repoargs.UserRepoName)).
		Return(s.mockUserRepo, nil).AnyTimes()

	s.mockTX.EXPECT().Get(uow.RepositoryName(repoargs.WithdrawalRepoName)).
		Return(s.mockWithdrawalRepo, nil).AnyTimes()
	s.mockTX.EXPECT().Get(uow.RepositoryName(repoargs.UserRepoName)).
		Return(s.mockUserRepo, nil).AnyTimes()
	s.mockTX.EXPECT().Get(uow.RepositoryName(repoargs.NotificationRepoName)).
		Return(s.mockNotifRepo, nil).AnyTimes()

	s.mockUOW.EXPECT().Do(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context, uow.TX) error) error {
			return fn(ctx, s.mockTX)
		},
	).AnyTimes()

	var err error
	s.service, err = NewWithdrawalService(s.mockUOW)
	s.Require().NoError(err)
}

func (s *WithdrawalServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func (s *WithdrawalServiceTestSuite) TestRequest() {
	user := domain.User{
		ID:            1,
		DepositAmount: decimal.NewFromInt(70),
		ProfitAmount:  decimal.NewFromInt(30),
		TotalAmount:   decimal.NewFromInt(100),
		Status:        domain.UserStatusActive,
		AccountStatus: domain.AccountStatusApproved,
	}

	argsOk := RequestWithdrawalArgs{
		UserID:        user.ID,
		Amount:        decimal.NewFromInt(100), // вывод всего баланса допустим
		Platform:      domain.PlatformBinance,
		WalletAddress: "0x1111111111",
	}
	argsTooMuch := RequestWithdrawalArgs{
		UserID:        user.ID,
		Amount:        decimal.RequireFromString("100.01"),
		Platform:      domain.PlatformBinance,
		WalletAddress: "0x1111111111",
	}

	s.mockUserRepo.EXPECT().FindUserByID(gomock.Any(), user.ID).Return(&user, nil).Times(2)

	created := domain.Withdrawal{
		ID:            10,
		UserID:        user.ID,
		Amount:        argsOk.Amount,
		Platform:      argsOk.Platform,
		WalletAddress: argsOk.WalletAddress,
		Status:        domain.SettlementStatusPending,
	}
	s.mockWithdrawalRepo.EXPECT().CreateWithdrawal(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, args repoargs.CreateWithdrawal) (*domain.Withdrawal, error) {
			s.Equal(user.ID, args.UserID)
			s.True(args.Amount.Equal(argsOk.Amount))
			s.Equal(domain.PlatformBinance, args.Platform)
			return &created, nil
		}).Times(1)

	s.mockNotifRepo.EXPECT().CreateNotification(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, args repoargs.CreateNotification) (*domain.Notification, error) {
			s.Equal(domain.NotificationTypeWithdrawal, args.Type)
			s.Contains(args.Message, "pending review")
			s.Require().NotNil(args.ActionURL)
			s.Equal("/admin/withdrawals/10", *args.ActionURL)
			return &domain.Notification{ID: 1}, nil
		}).Times(1)

	withdrawal, okErr := s.service.Request(s.T().Context(), argsOk)
	s.Require().NoError(okErr)
	s.Equal(created.ID, withdrawal.ID)

	// При нехватке баланса запись о попытке не создается.
	_, tooMuchErr := s.service.Request(s.T().Context(), argsTooMuch)
	s.Require().ErrorIs(tooMuchErr, domain.ErrNotEnoughBalance)
}

func (s *WithdrawalServiceTestSuite) TestApprove_DebitsDepositFirst() {
	user := domain.User{
		ID:            1,
		DepositAmount: decimal.NewFromInt(30),
		ProfitAmount:  decimal.NewFromInt(80),
		TotalAmount:   decimal.NewFromInt(110),
		LockVersion:   1,
	}
	withdrawal := domain.Withdrawal{
		ID:       5,
		UserID:   user.ID,
		Amount:   decimal.NewFromInt(50),
		Platform: domain.PlatformTrustWallet,
		Status:   domain.SettlementStatusApproved,
	}

	s.mockWithdrawalRepo.EXPECT().SettleWithdrawal(gomock.Any(), repoargs.SettleEntry{
		ID:         withdrawal.ID,
		Status:     domain.SettlementStatusApproved,
		AdminNotes: "ok",
	}).Return(&withdrawal, nil)

	// Проверка баланса до списания и повторная загрузка внутри mutateBalance.
	s.mockUserRepo.EXPECT().FindUserByID(gomock.Any(), user.ID).Return(&user, nil).Times(2)

	// 50 списывается как 30 из депозита и 20 из прибыли.
	s.mockUserRepo.EXPECT().UpdateBalances(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, args repoargs.UpdateUserBalances) (*domain.User, error) {
			s.True(args.DepositAmount.IsZero())
			s.True(args.ProfitAmount.Equal(decimal.NewFromInt(60)))
			s.True(args.TotalAmount.Equal(decimal.NewFromInt(60)))
			updated := user
			updated.DepositAmount = args.DepositAmount
			updated.ProfitAmount = args.ProfitAmount
			updated.TotalAmount = args.TotalAmount
			return &updated, nil
		})

	s.mockNotifRepo.EXPECT().CreateNotification(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, args repoargs.CreateNotification) (*domain.Notification, error) {
			s.Equal(domain.NotificationTypeWithdrawal, args.Type)
			s.Contains(args.Message, "approved")
			return &domain.Notification{ID: 1}, nil
		})

	result, err := s.service.Approve(s.T().Context(), withdrawal.ID, "ok")
	s.Require().NoError(err)
	s.Equal(withdrawal.ID, result.ID)
}

func (s *WithdrawalServiceTestSuite) TestApprove_NotEnoughBalance() {
	user := domain.User{
		ID:            1,
		DepositAmount: decimal.NewFromInt(10),
		ProfitAmount:  decimal.NewFromInt(5),
		TotalAmount:   decimal.NewFromInt(15),
	}
	withdrawal := domain.Withdrawal{
		ID:     5,
		UserID: user.ID,
		Amount: decimal.NewFromInt(50),
		Status: domain.SettlementStatusApproved,
	}

	s.mockWithdrawalRepo.EXPECT().SettleWithdrawal(gomock.Any(), gomock.Any()).Return(&withdrawal, nil)
	s.mockUserRepo.EXPECT().FindUserByID(gomock.Any(), user.ID).Return(&user, nil)
	s.mockUserRepo.EXPECT().UpdateBalances(gomock.Any(), gomock.Any()).Times(0)

	_, err := s.service.Approve(s.T().Context(), withdrawal.ID, "")
	s.Require().ErrorIs(err, domain.ErrNotEnoughBalance)
}

func (s *WithdrawalServiceTestSuite) TestApprove_AlreadySettled() {
	s.mockWithdrawalRepo.EXPECT().SettleWithdrawal(gomock.Any(), gomock.Any()).
		Return(nil, &domain.SettlementConflictError{ID: 5, Status: domain.SettlementStatusRejected})

	_, err := s.service.Approve(s.T().Context(), 5, "")
	s.Require().ErrorIs(err, domain.ErrStateConflict)
}

func (s *WithdrawalServiceTestSuite) TestReject() {
	withdrawal := domain.Withdrawal{
		ID:       7,
		UserID:   1,
		Amount:   decimal.NewFromInt(25),
		Platform: domain.PlatformOther,
		Status:   domain.SettlementStatusRejected,
	}

	s.mockWithdrawalRepo.EXPECT().SettleWithdrawal(gomock.Any(), repoargs.SettleEntry{
		ID:         withdrawal.ID,
		Status:     domain.SettlementStatusRejected,
		AdminNotes: "suspicious address",
	}).Return(&withdrawal, nil)

	// Баланс при отклонении не трогается.
	s.mockUserRepo.EXPECT().UpdateBalances(gomock.Any(), gomock.Any()).Times(0)

	s.mockNotifRepo.EXPECT().CreateNotification(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, args repoargs.CreateNotification) (*domain.Notification, error) {
			s.Contains(args.Message, "rejected")
			s.Contains(args.Message, "Reason: suspicious address")
			return &domain.Notification{ID: 1}, nil
		})

	result, err := s.service.Reject(s.T().Context(), withdrawal.ID, "suspicious address")
	s.Require().NoError(err)
	s.Equal(withdrawal.ID, result.ID)
}
