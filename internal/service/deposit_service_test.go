package service

import (
	"context"
	"testing"

	"github.com/fsdevblog/safevault/internal/domain"
	"github.com/fsdevblog/safevault/internal/media"
	mediamocks "github.com/fsdevblog/safevault/internal/media/mocks"
	"github.com/fsdevblog/safevault/internal/repository/repoargs"
	"github.com/fsdevblog/safevault/internal/service/mocks"
	"github.com/fsdevblog/safevault/pkg/uow"
	uowmocks "github.com/fsdevblog/safevault/pkg/uow/mocks"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type DepositServiceTestSuite struct {
	suite.Suite
	mockCtrl        *gomock.Controller
	mockUOW         *uowmocks.MockUOW
	mockTX          *uowmocks.MockTX
	mockDepositRepo *mocks.MockDepositRepository
	mockUserRepo    *mocks.MockUserRepository
	mockNotifRepo   *mocks.MockNotificationRepository
	mockUploader    *mediamocks.MockUploader
	service         *DepositService
}

func TestDepositServiceSuite(t *testing.T) {
	suite.Run(t, new(DepositServiceTestSuite))
}

func (s *DepositServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockUOW = uowmocks.NewMockUOW(s.mockCtrl)
	s.mockTX = uowmocks.NewMockTX(s.mockCtrl)
	s.mockDepositRepo = mocks.NewMockDepositRepository(s.mockCtrl)
	s.mockUserRepo = mocks.NewMockUserRepository(s.mockCtrl)
	s.mockNotifRepo = mocks.NewMockNotificationRepository(s.mockCtrl)
	s.mockUploader = mediamocks.NewMockUploader(s.mockCtrl)

	s.mockUOW.EXPECT().GetRepository(uow.RepositoryName(repoargs.DepositRepoName)).
		Return(s.mockDepositRepo, nil).AnyTimes()
	s.mockUOW.EXPECT().GetRepository(uow.RepositoryName(repoargs.UserRepoName)).
		Return(s.mockUserRepo, nil).AnyTimes()

	s.mockTX.EXPECT().Get(uow.RepositoryName(repoargs.DepositRepoName)).
		Return(s.mockDepositRepo, nil).AnyTimes()
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
	s.service, err = NewDepositService(s.mockUOW, s.mockUploader)
	s.Require().NoError(err)
}

func (s *DepositServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func (s *DepositServiceTestSuite) TestRequest() {
	var userID int64 = 1
	amount := decimal.RequireFromString("150.50")
	screenshot := media.File{Name: "proof.png", Data: []byte("png data")}
	screenshotURL := "https://cdn.example.com/deposit-proofs/proof.png"

	s.mockUploader.EXPECT().Upload(gomock.Any(), screenshot, "deposit-proofs").
		Return(screenshotURL, nil)

	created := domain.Deposit{
		ID:            42,
		UserID:        userID,
		Amount:        amount,
		ScreenshotURL: screenshotURL,
		Status:        domain.SettlementStatusPending,
	}
	s.mockDepositRepo.EXPECT().CreateDeposit(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, args repoargs.CreateDeposit) (*domain.Deposit, error) {
			s.Equal(userID, args.UserID)
			s.True(args.Amount.Equal(amount))
			s.Equal(screenshotURL, args.ScreenshotURL)
			return &created, nil
		})

	s.mockNotifRepo.EXPECT().CreateNotification(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, args repoargs.CreateNotification) (*domain.Notification, error) {
			s.Equal(domain.NotificationTypeDeposit, args.Type)
			s.Contains(args.Message, "$150.50")
			s.Require().NotNil(args.ActionURL)
			s.Equal("/admin/deposits/42", *args.ActionURL)
			return &domain.Notification{ID: 1}, nil
		})

	deposit, err := s.service.Request(s.T().Context(), userID, amount, screenshot)
	s.Require().NoError(err)
	s.Equal(created.ID, deposit.ID)
}

func (s *DepositServiceTestSuite) TestRequest_UploadFailed() {
	screenshot := media.File{Name: "proof.bmp", Data: []byte("bmp data")}

	s.mockUploader.EXPECT().Upload(gomock.Any(), screenshot, "deposit-proofs").
		Return("", media.ErrUnsupportedType)
	// Заявка без скриншота не создается.
	s.mockDepositRepo.EXPECT().CreateDeposit(gomock.Any(), gomock.Any()).Times(0)

	_, err := s.service.Request(s.T().Context(), 1, decimal.NewFromInt(100), screenshot)
	s.Require().ErrorIs(err, media.ErrUnsupportedType)
}

func (s *DepositServiceTestSuite) TestApprove() {
	user := domain.User{
		ID:            1,
		DepositAmount: decimal.NewFromInt(100),
		ProfitAmount:  decimal.NewFromInt(10),
		TotalAmount:   decimal.NewFromInt(110),
		LockVersion:   2,
	}
	deposit := domain.Deposit{
		ID:     3,
		UserID: user.ID,
		Amount: decimal.NewFromInt(50),
		Status: domain.SettlementStatusApproved,
	}

	s.mockDepositRepo.EXPECT().SettleDeposit(gomock.Any(), repoargs.SettleEntry{
		ID:         deposit.ID,
		Status:     domain.SettlementStatusApproved,
		AdminNotes: "",
	}).Return(&deposit, nil)

	s.mockUserRepo.EXPECT().FindUserByID(gomock.Any(), user.ID).Return(&user, nil)

	s.mockUserRepo.EXPECT().UpdateBalances(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, args repoargs.UpdateUserBalances) (*domain.User, error) {
			s.True(args.DepositAmount.Equal(decimal.NewFromInt(150)))
			s.True(args.ProfitAmount.Equal(user.ProfitAmount))
			s.True(args.TotalAmount.Equal(decimal.NewFromInt(160)))
			s.Equal(user.LockVersion, args.LockVersion)
			updated := user
			updated.DepositAmount = args.DepositAmount
			updated.TotalAmount = args.TotalAmount
			return &updated, nil
		})

	s.mockNotifRepo.EXPECT().CreateNotification(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, args repoargs.CreateNotification) (*domain.Notification, error) {
			s.Equal(domain.NotificationTypeDeposit, args.Type)
			s.Contains(args.Message, "approved")
			return &domain.Notification{ID: 1}, nil
		})

	result, err := s.service.Approve(s.T().Context(), deposit.ID, "")
	s.Require().NoError(err)
	s.Equal(deposit.ID, result.ID)
}

func (s *DepositServiceTestSuite) TestApprove_AlreadySettled() {
	s.mockDepositRepo.EXPECT().SettleDeposit(gomock.Any(), gomock.Any()).
		Return(nil, &domain.SettlementConflictError{ID: 3, Status: domain.SettlementStatusApproved})

	_, err := s.service.Approve(s.T().Context(), 3, "")
	s.Require().ErrorIs(err, domain.ErrStateConflict)
}

func (s *DepositServiceTestSuite) TestReject() {
	deposit := domain.Deposit{
		ID:     3,
		UserID: 1,
		Amount: decimal.NewFromInt(50),
		Status: domain.SettlementStatusRejected,
	}

	s.mockDepositRepo.EXPECT().SettleDeposit(gomock.Any(), repoargs.SettleEntry{
		ID:         deposit.ID,
		Status:     domain.SettlementStatusRejected,
		AdminNotes: "unreadable screenshot",
	}).Return(&deposit, nil)

	// Отклонение не меняет баланс.
	s.mockUserRepo.EXPECT().UpdateBalances(gomock.Any(), gomock.Any()).Times(0)

	s.mockNotifRepo.EXPECT().CreateNotification(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, args repoargs.CreateNotification) (*domain.Notification, error) {
			s.Contains(args.Message, "rejected")
			s.Contains(args.Message, "Reason: unreadable screenshot")
			return &domain.Notification{ID: 1}, nil
		})

	result, err := s.service.Reject(s.T().Context(), deposit.ID, "unreadable screenshot")
	s.Require().NoError(err)
	s.Equal(deposit.ID, result.ID)
}

func (s *DepositServiceTestSuite) TestGetAll() {
	deposits := []domain.Deposit{
		{ID: 1, UserID: 1, Amount: decimal.NewFromInt(10)},
		{ID: 2, UserID: 2, Amount: decimal.NewFromInt(20)},
		{ID: 3, UserID: 1, Amount: decimal.NewFromInt(30)},
	}
	refs := []domain.UserRef{
		{ID: 1, FirstName: "Alice", Email: "alice@example.com"},
		{ID: 2, FirstName: "Bob", Email: "bob@example.com"},
	}

	s.mockDepositRepo.EXPECT().GetDeposits(gomock.Any(), gomock.Any()).
		Return(deposits, int64(3), nil)
	// Дубликаты user_id схлопываются перед запросом.
	s.mockUserRepo.EXPECT().GetUserRefs(gomock.Any(), []int64{1, 2}).Return(refs, nil)

	result, byID, total, err := s.service.GetAll(s.T().Context(), repoargs.LedgerFilter{})
	s.Require().NoError(err)
	s.Len(result, 3)
	s.Equal(int64(3), total)
	s.Equal("Alice", byID[1].FirstName)
	s.Equal("Bob", byID[2].FirstName)
}
