package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/fsdevblog/safevault/internal/domain"
	"github.com/fsdevblog/safevault/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

type AuthHandler struct {
	userService UserServicer
}

func NewAuthHandler(userService UserServicer) *AuthHandler {
	return &AuthHandler{
		userService: userService,
	}
}

type UserResponse struct {
	ID            int64     `json:"id"`
	FirstName     string    `json:"firstName"`
	LastName      string    `json:"lastName"`
	Email         string    `json:"email"`
	ProfileImage  *string   `json:"profileImage,omitempty"`
	DepositAmount string    `json:"depositAmount"`
	ProfitAmount  string    `json:"profitAmount"`
	TotalAmount   string    `json:"totalAmount"`
	Status        string    `json:"status"`
	AccountStatus string    `json:"accountStatus"`
	Role          string    `json:"role"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

func newUserResponse(user *domain.User) UserResponse {
	return UserResponse{
		ID:            user.ID,
		FirstName:     user.FirstName,
		LastName:      user.LastName,
		Email:         user.Email,
		ProfileImage:  user.ProfileImage,
		DepositAmount: user.DepositAmount.StringFixed(2),
		ProfitAmount:  user.ProfitAmount.StringFixed(2),
		TotalAmount:   user.TotalAmount.StringFixed(2),
		Status:        string(user.Status),
		AccountStatus: string(user.AccountStatus),
		Role:          string(user.Role),
		CreatedAt:     user.CreatedAt,
		UpdatedAt:     user.UpdatedAt,
	}
}

type RegisterParams struct {
	FirstName string `binding:"required,min=1,max=50"  json:"firstName"`
	LastName  string `binding:"required,min=1,max=50"  json:"lastName"`
	Email     string `binding:"required,email,max=255" json:"email"`
	Password  string `binding:"required,min=6,max=255" json:"password"`
}

// Register POST RouteGroup + RegisterRoute. Создает аккаунт в статусе pending.
// Токен не выдается: вход откроется после одобрения администратором.
func (h *AuthHandler) Register(c *gin.Context) {
	var params RegisterParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		var valErrs validator.ValidationErrors
		if errors.As(bindErr, &valErrs) {
			c.AbortWithStatusJSON(http.StatusUnprocessableEntity, gin.H{"error": valErrs.Error()})
			return
		}
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).
			SetType(gin.ErrorTypeBind)
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	user, createErr := h.userService.Register(ctx, service.RegisterUserArgs{
		FirstName: params.FirstName,
		LastName:  params.LastName,
		Email:     params.Email,
		Password:  params.Password,
	})
	if createErr != nil {
		if errors.Is(createErr, domain.ErrDuplicateKey) {
			_ = c.AbortWithError(http.StatusConflict, errors.New("user with this email already exists")).
				SetType(gin.ErrorTypePublic)
			return
		}
		_ = c.AbortWithError(http.StatusInternalServerError, createErr).
			SetType(gin.ErrorTypePrivate)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"user":    newUserResponse(user),
		"message": "Registration successful. Your account is pending admin approval.",
	})
}

type LoginParams struct {
	Email    string `binding:"required,email,max=255" json:"email"`
	Password string `binding:"required,min=6,max=255" json:"password"`
}

// Login POST RouteGroup + LoginRoute. Аутентификация по паре email/пароль.
// Заблокированные и не одобренные аккаунты получают различимые сообщения.
func (h *AuthHandler) Login(c *gin.Context) {
	h.login(c, h.userService.Login)
}

// AdminLogin POST RouteGroup + AdminLoginRoute. Как Login, но только для role=admin.
func (h *AuthHandler) AdminLogin(c *gin.Context) {
	h.login(c, h.userService.AdminLogin)
}

func (h *AuthHandler) login(
	c *gin.Context,
	loginFn func(ctx context.Context, args service.LoginUserArgs) (*domain.User, string, error),
) {
	var params LoginParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).
			SetType(gin.ErrorTypeBind)
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	user, token, err := loginFn(ctx, service.LoginUserArgs{
		Email:    params.Email,
		Password: params.Password,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound), errors.Is(err, domain.ErrPasswordMissMatch):
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
		case errors.Is(err, domain.ErrAccountBlocked):
			c.AbortWithStatusJSON(http.StatusForbidden,
				gin.H{"error": "Your account has been blocked. Please contact support."})
		case errors.Is(err, domain.ErrAccountPending):
			c.AbortWithStatusJSON(http.StatusForbidden,
				gin.H{"error": "Your account is pending admin approval."})
		case errors.Is(err, domain.ErrAccountRejected):
			c.AbortWithStatusJSON(http.StatusForbidden,
				gin.H{"error": "Your account registration has been rejected."})
		default:
			_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		}
		return
	}

	c.Header("Authorization", "Bearer "+token)
	c.JSON(http.StatusOK, gin.H{
		"user":  newUserResponse(user),
		"token": token,
	})
}

type ChangePasswordParams struct {
	OldPassword string `binding:"required,min=6,max=255" json:"oldPassword"`
	NewPassword string `binding:"required,min=6,max=255" json:"newPassword"`
}

// ChangePassword PUT RouteGroup + ChangePasswordRoute.
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var params ChangePasswordParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).
			SetType(gin.ErrorTypeBind)
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	if err := h.userService.ChangePassword(ctx, userID, params.OldPassword, params.NewPassword); err != nil {
		if errors.Is(err, domain.ErrPasswordMissMatch) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "old password is incorrect"})
			return
		}
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Password changed successfully"})
}
