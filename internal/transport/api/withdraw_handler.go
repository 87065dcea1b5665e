package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/fsdevblog/safevault/internal/domain"
	"github.com/fsdevblog/safevault/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type WithdrawHandler struct {
	withdrawalService WithdrawalServicer
}

func NewWithdrawHandler(withdrawalService WithdrawalServicer) *WithdrawHandler {
	return &WithdrawHandler{
		withdrawalService: withdrawalService,
	}
}

type WithdrawalResponse struct {
	ID            int64     `json:"id"`
	UserID        int64     `json:"userId"`
	Amount        string    `json:"amount"`
	Platform      string    `json:"platform"`
	WalletAddress string    `json:"walletAddress"`
	Status        string    `json:"status"`
	AdminNotes    string    `json:"adminNotes,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

func newWithdrawalResponse(withdrawal *domain.Withdrawal) WithdrawalResponse {
	return WithdrawalResponse{
		ID:            withdrawal.ID,
		UserID:        withdrawal.UserID,
		Amount:        withdrawal.Amount.StringFixed(2),
		Platform:      string(withdrawal.Platform),
		WalletAddress: withdrawal.WalletAddress,
		Status:        string(withdrawal.Status),
		AdminNotes:    withdrawal.AdminNotes,
		CreatedAt:     withdrawal.CreatedAt,
		UpdatedAt:     withdrawal.UpdatedAt,
	}
}

type RequestWithdrawalParams struct {
	Amount        decimal.Decimal `binding:"required"                 json:"amount"`
	Platform      string          `binding:"required,wallet_platform" json:"platform"`
	WalletAddress string          `binding:"required,min=10,max=255"  json:"walletAddress"`
}

// Request POST RouteGroup + WithdrawRequestRoute. При нехватке баланса заявка
// не создается и возвращается 422.
func (h *WithdrawHandler) Request(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var params RequestWithdrawalParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).
			SetType(gin.ErrorTypeBind)
		return
	}
	if !params.Amount.IsPositive() {
		c.AbortWithStatusJSON(http.StatusUnprocessableEntity, gin.H{"error": "amount must be positive"})
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	withdrawal, err := h.withdrawalService.Request(ctx, service.RequestWithdrawalArgs{
		UserID:        userID,
		Amount:        params.Amount,
		Platform:      domain.PlatformType(params.Platform),
		WalletAddress: params.WalletAddress,
	})
	if err != nil {
		if errors.Is(err, domain.ErrNotEnoughBalance) {
			c.AbortWithStatusJSON(http.StatusUnprocessableEntity, gin.H{"error": "insufficient balance"})
			return
		}
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"withdrawal": newWithdrawalResponse(withdrawal)})
}

// History GET RouteGroup + WithdrawHistoryRoute.
func (h *WithdrawHandler) History(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	withdrawals, total, err := h.withdrawalService.GetByUserID(ctx, userID, pageFromQuery(c))
	if err != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		return
	}

	items := make([]WithdrawalResponse, 0, len(withdrawals))
	for i := range withdrawals {
		items = append(items, newWithdrawalResponse(&withdrawals[i]))
	}
	c.JSON(http.StatusOK, gin.H{"withdrawals": items, "total": total})
}

// Show GET RouteGroup + WithdrawRoute. Только свои заявки.
func (h *WithdrawHandler) Show(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, idOk := pathID(c, "id")
	if !idOk {
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	withdrawal, err := h.withdrawalService.GetByIDForUser(ctx, id, userID)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "withdrawal not found"})
			return
		}
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		return
	}
	c.JSON(http.StatusOK, gin.H{"withdrawal": newWithdrawalResponse(withdrawal)})
}
