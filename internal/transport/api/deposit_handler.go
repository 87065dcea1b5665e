package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/fsdevblog/safevault/internal/domain"
	"github.com/fsdevblog/safevault/internal/media"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type DepositHandler struct {
	depositService DepositServicer
}

func NewDepositHandler(depositService DepositServicer) *DepositHandler {
	return &DepositHandler{
		depositService: depositService,
	}
}

type DepositResponse struct {
	ID            int64     `json:"id"`
	UserID        int64     `json:"userId"`
	Amount        string    `json:"amount"`
	ScreenshotURL string    `json:"screenshotUrl"`
	Status        string    `json:"status"`
	AdminNotes    string    `json:"adminNotes,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

func newDepositResponse(deposit *domain.Deposit) DepositResponse {
	return DepositResponse{
		ID:            deposit.ID,
		UserID:        deposit.UserID,
		Amount:        deposit.Amount.StringFixed(2),
		ScreenshotURL: deposit.ScreenshotURL,
		Status:        string(deposit.Status),
		AdminNotes:    deposit.AdminNotes,
		CreatedAt:     deposit.CreatedAt,
		UpdatedAt:     deposit.UpdatedAt,
	}
}

type RequestDepositParams struct {
	Amount string `binding:"required" form:"amount"`
}

// Request POST RouteGroup + DepositRequestRoute. Multipart: amount + screenshot.
func (h *DepositHandler) Request(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var params RequestDepositParams
	if bindErr := c.ShouldBind(&params); bindErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).
			SetType(gin.ErrorTypeBind)
		return
	}
	amount, amountErr := decimal.NewFromString(params.Amount)
	if amountErr != nil || !amount.IsPositive() {
		c.AbortWithStatusJSON(http.StatusUnprocessableEntity, gin.H{"error": "amount must be positive"})
		return
	}

	screenshot, fileOk := formFile(c, "screenshot")
	if !fileOk {
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultUploadTimeout)
	defer cancel()

	deposit, err := h.depositService.Request(ctx, userID, amount, screenshot)
	if err != nil {
		if errors.Is(err, media.ErrFileTooLarge) || errors.Is(err, media.ErrUnsupportedType) {
			_ = c.AbortWithError(http.StatusUnprocessableEntity, err).SetType(gin.ErrorTypePublic)
			return
		}
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"deposit": newDepositResponse(deposit)})
}

// History GET RouteGroup + DepositHistoryRoute.
func (h *DepositHandler) History(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	deposits, total, err := h.depositService.GetByUserID(ctx, userID, pageFromQuery(c))
	if err != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		return
	}

	items := make([]DepositResponse, 0, len(deposits))
	for i := range deposits {
		items = append(items, newDepositResponse(&deposits[i]))
	}
	c.JSON(http.StatusOK, gin.H{"deposits": items, "total": total})
}

// Show GET RouteGroup + DepositRoute. Только свои заявки.
func (h *DepositHandler) Show(c *gin.Context) {
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

	deposit, err := h.depositService.GetByIDForUser(ctx, id, userID)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "deposit not found"})
			return
		}
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deposit": newDepositResponse(deposit)})
}
