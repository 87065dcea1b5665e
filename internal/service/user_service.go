package service

import (
	"context"
	"fmt"
	"time"

	"github.com/fsdevblog/safevault/internal/domain"
	"github.com/fsdevblog/safevault/internal/media"
	"github.com/fsdevblog/safevault/internal/repository/repoargs"
	"github.com/fsdevblog/safevault/internal/service/tokens"
	"github.com/fsdevblog/safevault/pkg/uow"
	"golang.org/x/crypto/bcrypt"
)

const JWTTokenExpire = 24 * time.Hour

const profileImagesFolder = "profile-images"

type UserService struct {
	uow            uow.UOW
	userRepo       UserRepository
	uploader       media.Uploader
	jwtTokenSecret []byte
}

func NewUserService(u uow.UOW, uploader media.Uploader, jwtTokenSecret []byte) (*UserService, error) {
	userRepo, userRepoErr := uow.GetRepositoryAs[UserRepository](u, uow.RepositoryName(repoargs.UserRepoName))
	if userRepoErr != nil {
		return nil, userRepoErr //nolint:wrapcheck
	}
	return &UserService{
		uow:            u,
		userRepo:       userRepo,
		uploader:       uploader,
		jwtTokenSecret: jwtTokenSecret,
	}, nil
}

type RegisterUserArgs struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
}

// Register создает юзера со статусом account_status=pending. Токен не выдается:
// доступ к аккаунту появляется после одобрения администратором.
func (s *UserService) Register(ctx context.Context, args RegisterUserArgs) (*domain.User, error) {
	password, hashErr := s.hashPassword(args.Password)
	if hashErr != nil {
		return nil, fmt.Errorf("registering user: %s", hashErr.Error())
	}

	user, createErr := s.userRepo.CreateUser(ctx, repoargs.CreateUser{
		FirstName: args.FirstName,
		LastName:  args.LastName,
		Email:     args.Email,
		Password:  password,
		Role:      domain.RoleUser,
	})
	if createErr != nil {
		return nil, fmt.Errorf("registering user: %w", createErr)
	}
	return user, nil
}

type LoginUserArgs struct {
	Email    string
	Password string
}

// Login аутентифицирует по паре email/пароль. Заблокированные и не одобренные
// аккаунты получают типизированные ошибки до проверки пароля.
func (s *UserService) Login(ctx context.Context, args LoginUserArgs) (*domain.User, string, error) {
	user, findErr := s.userRepo.FindUserByEmail(ctx, args.Email)
	if findErr != nil {
		return nil, "", findErr //nolint:wrapcheck
	}

	if user.Status == domain.UserStatusBlocked {
		return nil, "", domain.ErrAccountBlocked
	}
	switch user.AccountStatus {
	case domain.AccountStatusPending:
		return nil, "", domain.ErrAccountPending
	case domain.AccountStatusRejected:
		return nil, "", domain.ErrAccountRejected
	case domain.AccountStatusApproved:
	}

	if !s.comparePasswords(user.Password, args.Password) {
		return nil, "", domain.ErrPasswordMissMatch
	}

	token, tokenErr := tokens.GenerateUserJWT(user.ID, user.Role, JWTTokenExpire, s.jwtTokenSecret)
	if tokenErr != nil {
		return nil, "", fmt.Errorf("logging in: %s", tokenErr.Error())
	}
	return user, token, nil
}

// AdminLogin как Login, но принимает только юзеров с ролью admin. Для остальных
// возвращает ErrRecordNotFound, не раскрывая существование аккаунта.
func (s *UserService) AdminLogin(ctx context.Context, args LoginUserArgs) (*domain.User, string, error) {
	user, token, err := s.Login(ctx, args)
	if err != nil {
		return nil, "", err
	}
	if user.Role != domain.RoleAdmin {
		return nil, "", domain.ErrRecordNotFound
	}
	return user, token, nil
}

func (s *UserService) ChangePassword(ctx context.Context, userID int64, oldPassword, newPassword string) error {
	user, findErr := s.userRepo.FindUserByID(ctx, userID)
	if findErr != nil {
		return findErr //nolint:wrapcheck
	}
	if !s.comparePasswords(user.Password, oldPassword) {
		return domain.ErrPasswordMissMatch
	}

	hashed, hashErr := s.hashPassword(newPassword)
	if hashErr != nil {
		return fmt.Errorf("changing password: %s", hashErr.Error())
	}
	if updErr := s.userRepo.UpdatePassword(ctx, userID, hashed); updErr != nil {
		return updErr //nolint:wrapcheck
	}
	return nil
}

func (s *UserService) GetByID(ctx context.Context, userID int64) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return user, nil
}

type UpdateProfileArgs struct {
	FirstName string
	LastName  string
}

func (s *UserService) UpdateProfile(ctx context.Context, userID int64, args UpdateProfileArgs) (*domain.User, error) {
	user, findErr := s.userRepo.FindUserByID(ctx, userID)
	if findErr != nil {
		return nil, findErr //nolint:wrapcheck
	}
	updated, err := s.userRepo.UpdateProfile(ctx, repoargs.UpdateUserProfile{
		ID:           userID,
		FirstName:    args.FirstName,
		LastName:     args.LastName,
		ProfileImage: user.ProfileImage,
	})
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return updated, nil
}

// SetProfileImage загружает аватар на медиахост и сохраняет URL в профиле.
func (s *UserService) SetProfileImage(ctx context.Context, userID int64, file media.File) (*domain.User, error) {
	user, findErr := s.userRepo.FindUserByID(ctx, userID)
	if findErr != nil {
		return nil, findErr //nolint:wrapcheck
	}

	url, uploadErr := s.uploader.Upload(ctx, file, profileImagesFolder)
	if uploadErr != nil {
		return nil, fmt.Errorf("setting profile image: %w", uploadErr)
	}

	updated, err := s.userRepo.UpdateProfile(ctx, repoargs.UpdateUserProfile{
		ID:           userID,
		FirstName:    user.FirstName,
		LastName:     user.LastName,
		ProfileImage: &url,
	})
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return updated, nil
}

func (s *UserService) RemoveProfileImage(ctx context.Context, userID int64) (*domain.User, error) {
	user, findErr := s.userRepo.FindUserByID(ctx, userID)
	if findErr != nil {
		return nil, findErr //nolint:wrapcheck
	}
	updated, err := s.userRepo.UpdateProfile(ctx, repoargs.UpdateUserProfile{
		ID:           userID,
		FirstName:    user.FirstName,
		LastName:     user.LastName,
		ProfileImage: nil,
	})
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return updated, nil
}

func (s *UserService) GetUsers(ctx context.Context, filter repoargs.UserFilter) ([]domain.User, int64, error) {
	users, total, err := s.userRepo.GetUsers(ctx, filter)
	if err != nil {
		return nil, 0, err //nolint:wrapcheck
	}
	return users, total, nil
}

// SetBlocked блокирует либо разблокирует аккаунт.
func (s *UserService) SetBlocked(ctx context.Context, userID int64, blocked bool) (*domain.User, error) {
	status := domain.UserStatusActive
	if blocked {
		status = domain.UserStatusBlocked
	}
	user, err := s.userRepo.SetStatus(ctx, userID, status)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return user, nil
}

// ApproveAccount одобряет ожидающий аккаунт и уведомляет юзера. Для аккаунта
// не в статусе pending возвращает ErrStateConflict.
func (s *UserService) ApproveAccount(ctx context.Context, userID int64) (*domain.User, error) {
	return s.settleAccount(ctx, userID, domain.AccountStatusApproved,
		"Congratulations! Your account has been approved. You can now access all features of SafeVault.")
}

// RejectAccount отклоняет ожидающий аккаунт с указанием причины.
func (s *UserService) RejectAccount(ctx context.Context, userID int64, reason string) (*domain.User, error) {
	message := fmt.Sprintf(
		"Your account has been rejected. Reason: %s. Please contact support if you have any questions.", reason)
	return s.settleAccount(ctx, userID, domain.AccountStatusRejected, message)
}

func (s *UserService) settleAccount(
	ctx context.Context,
	userID int64,
	status domain.AccountStatusType,
	message string,
) (*domain.User, error) {
	var updated *domain.User
	txErr := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		userRepo, userRepoErr := uow.GetAs[UserRepository](tx, uow.RepositoryName(repoargs.UserRepoName))
		if userRepoErr != nil {
			return userRepoErr //nolint:wrapcheck
		}

		user, findErr := userRepo.FindUserByID(c, userID)
		if findErr != nil {
			return findErr //nolint:wrapcheck
		}
		if user.AccountStatus != domain.AccountStatusPending {
			return domain.ErrStateConflict
		}

		var setErr error
		updated, setErr = userRepo.SetAccountStatus(c, userID, status)
		if setErr != nil {
			return setErr //nolint:wrapcheck
		}

		notificationRepo, nRepoErr :=
			uow.GetAs[NotificationRepository](tx, uow.RepositoryName(repoargs.NotificationRepoName))
		if nRepoErr != nil {
			return nRepoErr //nolint:wrapcheck
		}
		_, nErr := notificationRepo.CreateNotification(c, repoargs.CreateNotification{
			UserID:  &userID,
			Message: message,
			Type:    domain.NotificationTypeGeneral,
		})
		return nErr //nolint:wrapcheck
	})

	if txErr != nil {
		return nil, fmt.Errorf("settling account %d: %w", userID, txErr)
	}
	return updated, nil
}

func (s *UserService) hashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hashing password: %s", err.Error())
	}
	return string(bytes), nil
}

func (s *UserService) comparePasswords(hashedPassword, password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
	return err == nil
}
