package app

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/fsdevblog/safevault/internal/cache"
	"github.com/fsdevblog/safevault/internal/config"
	"github.com/fsdevblog/safevault/internal/media"
	"github.com/fsdevblog/safevault/internal/repository/pgrepo"
	"github.com/fsdevblog/safevault/internal/repository/repoargs"
	"github.com/fsdevblog/safevault/internal/scheduler"
	"github.com/fsdevblog/safevault/internal/service"
	"github.com/fsdevblog/safevault/internal/transport/api"
	"github.com/fsdevblog/safevault/pkg/uow"
	"github.com/sirupsen/logrus"

	// driver for migration applying postgres.
	_ "github.com/golang-migrate/migrate/v4/database/postgres" //nolint:revive
	// driver to get migrations from files (*.sql in our case).
	_ "github.com/golang-migrate/migrate/v4/source/file" //nolint:revive
	"github.com/jackc/pgx/v5/pgxpool"
)

type App struct {
	Config *config.Config
	Logger *logrus.Logger
}

func New(conf *config.Config, l *logrus.Logger) *App {
	return &App{
		Config: conf,
		Logger: l,
	}
}

func (a *App) Run() error {
	notifyCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a.Logger.Infof("Starting app, run address %s", a.Config.RunAddress)
	conn, connErr := pgrepo.Connect(notifyCtx, a.Config.MigrationsDir, a.Config.DatabaseDSN, a.Logger)
	if connErr != nil {
		return fmt.Errorf("app run: %s", connErr.Error())
	}
	defer conn.Close()

	unitOfWork, uowErr := initUOW(conn)
	if uowErr != nil {
		return fmt.Errorf("app run: %s", uowErr.Error())
	}

	uploader := media.NewImageKitClient(a.Config.ImageKitPrivateKey, a.Config.ImageKitEndpoint)

	var unreadCache service.UnreadCache
	if a.Config.RedisAddr != "" {
		rdb := cache.NewRedisClient(a.Config.RedisAddr, a.Config.RedisPassword, 0)
		defer func() { _ = rdb.Close() }()
		unreadCache = cache.NewUnreadCounter(rdb, a.Logger)
	}

	services, sErr := service.Factory(unitOfWork, uploader, unreadCache, []byte(a.Config.JWTUserSecret), a.Logger)
	if sErr != nil {
		return fmt.Errorf("app run: %s", sErr.Error())
	}

	accrualScheduler := scheduler.New(services.ProfitService, a.Logger)

	router, routerErr := api.New(api.RouterArgs{
		Logger:              a.Logger,
		UserService:         services.UserService,
		WalletService:       services.WalletService,
		DepositService:      services.DepositService,
		WithdrawalService:   services.WithdrawalService,
		ProfitService:       services.ProfitService,
		NotificationService: services.NotificationService,
		SchedulerStatus:     accrualScheduler,
		JWTSecretKey:        []byte(a.Config.JWTUserSecret),
	})
	if routerErr != nil {
		return fmt.Errorf("app run: %s", routerErr.Error())
	}

	errChan := make(chan error, 1)

	go func() {
		if runErr := router.Run(a.Config.RunAddress); runErr != nil {
			errChan <- runErr
		}
	}()

	go accrualScheduler.Run(notifyCtx)

	select {
	case <-notifyCtx.Done():
		return notifyCtx.Err() //nolint:wrapcheck
	case err := <-errChan:
		return err
	}
}

func initUOW(conn *pgxpool.Pool) (*uow.UnitOfWork, error) {
	unitOfWork := uow.NewUnitOfWork(conn)

	factories := map[repoargs.RepositoryName]uow.RepositoryFactory{
		repoargs.UserRepoName: func(dbtx uow.DBTX) uow.Repository {
			return pgrepo.NewUserRepository(dbtx)
		},
		repoargs.DepositRepoName: func(dbtx uow.DBTX) uow.Repository {
			return pgrepo.NewDepositRepository(dbtx)
		},
		repoargs.WithdrawalRepoName: func(dbtx uow.DBTX) uow.Repository {
			return pgrepo.NewWithdrawalRepository(dbtx)
		},
		repoargs.ProfitLogRepoName: func(dbtx uow.DBTX) uow.Repository {
			return pgrepo.NewProfitLogRepository(dbtx)
		},
		repoargs.NotificationRepoName: func(dbtx uow.DBTX) uow.Repository {
			return pgrepo.NewNotificationRepository(dbtx)
		},
	}

	for name, factoryFn := range factories {
		if regErr := unitOfWork.Register(uow.RepositoryName(name), factoryFn); regErr != nil {
			return nil, fmt.Errorf("init UOW: %s", regErr.Error())
		}
	}

	return unitOfWork, nil
}
