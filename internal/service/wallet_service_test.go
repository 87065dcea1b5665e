package service

import (
	"context"
	"testing"
	"time"

	"github.com/fsdevblog/safevault/internal/domain"
	"github.com/fsdevblog/safevault/internal/repository/repoargs"
	"github.com/fsdevblog/safevault/internal/service/mocks"
	"github.com/fsdevblog/safevault/pkg/uow"
	uowmocks "github.com/fsdevblog/safevault/pkg/uow/mocks"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type WalletServiceTestSuite struct {
	suite.Suite
	mockCtrl           *gomock.Controller
	mockUOW            *uowmocks.MockUOW
	mockTX             *uowmocks.MockTX
	mockUserRepo       *mocks.MockUserRepository
	mockDepositRepo    *mocks.MockDepositRepository
	mockWithdrawalRepo *mocks.MockWithdrawalRepository
	mockProfitRepo     *mocks.MockProfitLogRepository
	mockNotifRepo      *mocks.MockNotificationRepository
	service            *WalletService
}

func TestWalletServiceSuite(t *testing.T) {
	suite.Run(t, new(WalletServiceTestSuite))
}

func (s *WalletServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockUOW = uowmocks.NewMockUOW(s.mockCtrl)
	s.mockTX = uowmocks.NewMockTX(s.mockCtrl)
	s.mockUserRepo = mocks.NewMockUserRepository(s.mockCtrl)
	s.mockDepositRepo = mocks.NewMockDepositRepository(s.mockCtrl)
	s.mockWithdrawalRepo = mocks.NewMockWithdrawalRepository(s.mockCtrl)
	s.mockProfitRepo = mocks.NewMockProfitLogRepository(s.mockCtrl)
	s.mockNotifRepo = mocks.NewMockNotificationRepository(s.mockCtrl)

	s.mockUOW.EXPECT().GetRepository(uow.RepositoryName(repoargs.UserRepoName)).
		Return(s.mockUserRepo, nil).AnyTimes()
	s.mockUOW.EXPECT().GetRepository(uow.RepositoryName(repoargs.DepositRepoName)).
		Return(s.mockDepositRepo, nil).AnyTimes()
	s.mockUOW.EXPECT().GetRepository(uow.RepositoryName(repoargs.WithdrawalRepoName)).
		Return(s.mockWithdrawalRepo, nil).AnyTimes()
	s.mockUOW.EXPECT().GetRepository(uow.RepositoryName(repoargs.ProfitLogRepoName)).
		Return(s.mockProfitRepo, nil).AnyTimes()

	var err error
	s.service, err = NewWalletService(s.mockUOW)
	s.Require().NoError(err)
}

func (s *WalletServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func (s *WalletServiceTestSuite) TestGetBalance() {
	// total пересчитывается из слагаемых, сохраненное значение игнорируется.
	user := domain.User{
		ID:            1,
		DepositAmount: decimal.NewFromInt(100),
		ProfitAmount:  decimal.NewFromInt(7),
		TotalAmount:   decimal.NewFromInt(999),
	}
	s.mockUserRepo.EXPECT().FindUserByID(gomock.Any(), user.ID).Return(&user, nil)

	balance, err := s.service.GetBalance(s.T().Context(), user.ID)
	s.Require().NoError(err)
	s.True(balance.TotalAmount.Equal(decimal.NewFromInt(107)))
}

func (s *WalletServiceTestSuite) TestTransactions() {
	var userID int64 = 1
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	deposits := []domain.Deposit{
		{ID: 1, UserID: userID, Amount: decimal.NewFromInt(100), Status: domain.SettlementStatusApproved, CreatedAt: base},
		{ID: 2, UserID: userID, Amount: decimal.NewFromInt(50), Status: domain.SettlementStatusPending, CreatedAt: base.Add(4 * time.Hour)},
	}
	withdrawals := []domain.Withdrawal{
		{ID: 3, UserID: userID, Amount: decimal.NewFromInt(30), Status: domain.SettlementStatusApproved, CreatedAt: base.Add(2 * time.Hour)},
	}
	profits := []domain.ProfitLog{
		{ID: 4, UserID: userID, Amount: decimal.NewFromInt(1), CreatedAt: base.Add(1 * time.Hour)},
		{ID: 5, UserID: userID, Amount: decimal.NewFromInt(1), CreatedAt: base.Add(3 * time.Hour)},
	}

	s.mockDepositRepo.EXPECT().GetAllDepositsByUserID(gomock.Any(), userID).Return(deposits, nil).Times(2)
	s.mockWithdrawalRepo.EXPECT().GetAllWithdrawalsByUserID(gomock.Any(), userID).Return(withdrawals, nil).Times(2)
	s.mockProfitRepo.EXPECT().GetAllProfitLogsByUserID(gomock.Any(), userID).Return(profits, nil).Times(2)

	// Полная лента: новые сверху, начисления получают статус approved.
	feed, total, err := s.service.Transactions(s.T().Context(), userID, repoargs.Page{})
	s.Require().NoError(err)
	s.Equal(int64(5), total)
	s.Require().Len(feed, 5)

	wantKinds := []TransactionKind{
		TransactionKindDeposit,    // base+4h
		TransactionKindProfit,     // base+3h
		TransactionKindWithdrawal, // base+2h
		TransactionKindProfit,     // base+1h
		TransactionKindDeposit,    // base
	}
	for i, kind := range wantKinds {
		s.Equal(kind, feed[i].Kind)
	}
	s.Equal(domain.SettlementStatusApproved, feed[1].Status)

	// Пагинация применяется к слитой ленте.
	page, total, pageErr := s.service.Transactions(s.T().Context(), userID, repoargs.Page{Number: 2, Limit: 2})
	s.Require().NoError(pageErr)
	s.Equal(int64(5), total)
	s.Require().Len(page, 2)
	s.Equal(TransactionKindWithdrawal, page[0].Kind)
	s.Equal(TransactionKindProfit, page[1].Kind)
}

func (s *WalletServiceTestSuite) TestAdjustBalance() {
	s.mockTX.EXPECT().Get(uow.RepositoryName(repoargs.UserRepoName)).
		Return(s.mockUserRepo, nil).AnyTimes()
	s.mockTX.EXPECT().Get(uow.RepositoryName(repoargs.NotificationRepoName)).
		Return(s.mockNotifRepo, nil).AnyTimes()
	s.mockUOW.EXPECT().Do(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context, uow.TX) error) error {
			return fn(ctx, s.mockTX)
		},
	).AnyTimes()

	cases := []struct {
		name       string
		newDeposit decimal.Decimal
		wantType   domain.NotificationType
	}{
		{name: "increase", newDeposit: decimal.NewFromInt(150), wantType: domain.NotificationTypeBalanceIncrease},
		{name: "decrease", newDeposit: decimal.NewFromInt(40), wantType: domain.NotificationTypeBalanceDecrease},
		{name: "same", newDeposit: decimal.NewFromInt(100), wantType: domain.NotificationTypeBalanceAdjustment},
	}

	for _, t := range cases {
		s.Run(t.name, func() {
			user := domain.User{
				ID:            1,
				DepositAmount: decimal.NewFromInt(100),
				ProfitAmount:  decimal.NewFromInt(10),
				TotalAmount:   decimal.NewFromInt(110),
			}
			// Два чтения: расчет дельты и mutateBalance.
			s.mockUserRepo.EXPECT().FindUserByID(gomock.Any(), user.ID).Return(&user, nil).Times(2)

			s.mockUserRepo.EXPECT().UpdateBalances(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, args repoargs.UpdateUserBalances) (*domain.User, error) {
					s.True(args.DepositAmount.Equal(t.newDeposit))
					s.True(args.TotalAmount.Equal(t.newDeposit.Add(user.ProfitAmount)))
					updated := user
					updated.DepositAmount = args.DepositAmount
					updated.TotalAmount = args.TotalAmount
					return &updated, nil
				})

			s.mockNotifRepo.EXPECT().CreateNotification(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, args repoargs.CreateNotification) (*domain.Notification, error) {
					s.Equal(t.wantType, args.Type)
					s.Contains(args.Message, "Reason: audit")
					return &domain.Notification{ID: 1}, nil
				})

			updated, err := s.service.AdjustBalance(s.T().Context(), user.ID, t.newDeposit, "audit")
			s.Require().NoError(err)
			s.True(updated.DepositAmount.Equal(t.newDeposit))
		})
	}
}

func (s *WalletServiceTestSuite) TestAdjustBalance_Negative() {
	_, err := s.service.AdjustBalance(s.T().Context(), 1, decimal.NewFromInt(-5), "oops")
	s.Require().ErrorIs(err, domain.ErrNotEnoughBalance)
}

func (s *WalletServiceTestSuite) TestGetDashboardStats() {
	pending := domain.AccountStatusPending

	s.mockUserRepo.EXPECT().CountUsers(gomock.Any(), repoargs.UserFilter{}).Return(int64(10), nil)
	s.mockUserRepo.EXPECT().CountUsers(gomock.Any(), repoargs.UserFilter{AccountStatus: &pending}).
		DoAndReturn(func(_ context.Context, filter repoargs.UserFilter) (int64, error) {
			s.Require().NotNil(filter.AccountStatus)
			return int64(3), nil
		})
	s.mockDepositRepo.EXPECT().CountDepositsByStatus(gomock.Any(), domain.SettlementStatusPending).
		Return(int64(4), nil)
	s.mockDepositRepo.EXPECT().CountDepositsByStatus(gomock.Any(), domain.SettlementStatusApproved).
		Return(int64(20), nil)
	s.mockWithdrawalRepo.EXPECT().CountWithdrawalsByStatus(gomock.Any(), domain.SettlementStatusPending).
		Return(int64(2), nil)
	s.mockWithdrawalRepo.EXPECT().CountWithdrawalsByStatus(gomock.Any(), domain.SettlementStatusApproved).
		Return(int64(7), nil)

	stats, err := s.service.GetDashboardStats(s.T().Context())
	s.Require().NoError(err)
	s.Equal(int64(10), stats.TotalUsers)
	s.Equal(int64(3), stats.PendingUsers)
	s.Equal(int64(4), stats.PendingDeposits)
	s.Equal(int64(20), stats.ApprovedDeposits)
	s.Equal(int64(2), stats.PendingWithdrawals)
	s.Equal(int64(7), stats.ApprovedWithdrawal)
}
