package service

import (
	"fmt"

	"github.com/fsdevblog/safevault/internal/media"
	"github.com/fsdevblog/safevault/pkg/uow"
	"github.com/sirupsen/logrus"
)

type AppServices struct {
	UserService         *UserService
	WalletService       *WalletService
	DepositService      *DepositService
	WithdrawalService   *WithdrawalService
	ProfitService       *ProfitService
	NotificationService *NotificationService
}

func Factory(
	unitOfWork uow.UOW,
	uploader media.Uploader,
	unreadCache UnreadCache,
	jwtSecret []byte,
	l *logrus.Logger,
) (*AppServices, error) {
	userService, userServiceErr := NewUserService(unitOfWork, uploader, jwtSecret)
	if userServiceErr != nil {
		return nil, fmt.Errorf("service factory: %s", userServiceErr.Error())
	}

	walletService, walletServiceErr := NewWalletService(unitOfWork)
	if walletServiceErr != nil {
		return nil, fmt.Errorf("service factory: %s", walletServiceErr.Error())
	}

	depositService, depositServiceErr := NewDepositService(unitOfWork, uploader)
	if depositServiceErr != nil {
		return nil, fmt.Errorf("service factory: %s", depositServiceErr.Error())
	}

	withdrawalService, withdrawalServiceErr := NewWithdrawalService(unitOfWork)
	if withdrawalServiceErr != nil {
		return nil, fmt.Errorf("service factory: %s", withdrawalServiceErr.Error())
	}

	profitService, profitServiceErr := NewProfitService(unitOfWork, l)
	if profitServiceErr != nil {
		return nil, fmt.Errorf("service factory: %s", profitServiceErr.Error())
	}

	notificationService, notificationServiceErr := NewNotificationService(unitOfWork, unreadCache)
	if notificationServiceErr != nil {
		return nil, fmt.Errorf("service factory: %s", notificationServiceErr.Error())
	}

	return &AppServices{
		UserService:         userService,
		WalletService:       walletService,
		DepositService:      depositService,
		WithdrawalService:   withdrawalService,
		ProfitService:       profitService,
		NotificationService: notificationService,
	}, nil
}
