package api

import (
	"context"
	"net/http"
	"time"

	"github.com/fsdevblog/safevault/internal/domain"
	"github.com/fsdevblog/safevault/internal/service"
	"github.com/gin-gonic/gin"
)

type WalletHandler struct {
	walletService     WalletServicer
	depositService    DepositServicer
	withdrawalService WithdrawalServicer
}

func NewWalletHandler(
	walletService WalletServicer,
	depositService DepositServicer,
	withdrawalService WithdrawalServicer,
) *WalletHandler {
	return &WalletHandler{
		walletService:     walletService,
		depositService:    depositService,
		withdrawalService: withdrawalService,
	}
}

type BalanceResponse struct {
	DepositAmount string `json:"depositAmount"`
	ProfitAmount  string `json:"profitAmount"`
	TotalAmount   string `json:"totalAmount"`
}

// Balance GET RouteGroup + WalletRoute.
func (h *WalletHandler) Balance(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	balance, err := h.walletService.GetBalance(ctx, userID)
	if err != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		return
	}
	c.JSON(http.StatusOK, BalanceResponse{
		DepositAmount: balance.DepositAmount.StringFixed(2),
		ProfitAmount:  balance.ProfitAmount.StringFixed(2),
		TotalAmount:   balance.TotalAmount.StringFixed(2),
	})
}

type TransactionResponse struct {
	ID        int64     `json:"id"`
	Kind      string    `json:"kind"`
	Amount    string    `json:"amount"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

// Transactions GET RouteGroup + TransactionsRoute. Сводная лента операций.
func (h *WalletHandler) Transactions(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	feed, total, err := h.walletService.Transactions(ctx, userID, pageFromQuery(c))
	if err != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		return
	}

	items := make([]TransactionResponse, 0, len(feed))
	for _, t := range feed {
		items = append(items, TransactionResponse{
			ID:        t.ID,
			Kind:      string(t.Kind),
			Amount:    t.Amount.StringFixed(2),
			Status:    string(t.Status),
			CreatedAt: t.CreatedAt,
		})
	}
	c.JSON(http.StatusOK, gin.H{"transactions": items, "total": total})
}

// DepositTransactions GET RouteGroup + TransactionsDepositsRoute.
func (h *WalletHandler) DepositTransactions(c *gin.Context) {
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

	items := make([]TransactionResponse, 0, len(deposits))
	for _, d := range deposits {
		items = append(items, TransactionResponse{
			ID:        d.ID,
			Kind:      string(service.TransactionKindDeposit),
			Amount:    d.Amount.StringFixed(2),
			Status:    string(d.Status),
			CreatedAt: d.CreatedAt,
		})
	}
	c.JSON(http.StatusOK, gin.H{"transactions": items, "total": total})
}

// WithdrawalTransactions GET RouteGroup + TransactionsWithdrawalsRoute.
func (h *WalletHandler) WithdrawalTransactions(c *gin.Context) {
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

	items := make([]TransactionResponse, 0, len(withdrawals))
	for _, w := range withdrawals {
		items = append(items, TransactionResponse{
			ID:        w.ID,
			Kind:      string(service.TransactionKindWithdrawal),
			Amount:    w.Amount.StringFixed(2),
			Status:    string(w.Status),
			CreatedAt: w.CreatedAt,
		})
	}
	c.JSON(http.StatusOK, gin.H{"transactions": items, "total": total})
}

// ProfitTransactions GET RouteGroup + TransactionsProfitsRoute.
func (h *WalletHandler) ProfitTransactions(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	logs, total, err := h.walletService.ProfitHistory(ctx, userID, pageFromQuery(c))
	if err != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		return
	}

	items := make([]TransactionResponse, 0, len(logs))
	for _, p := range logs {
		items = append(items, TransactionResponse{
			ID:        p.ID,
			Kind:      string(service.TransactionKindProfit),
			Amount:    p.Amount.StringFixed(2),
			Status:    string(domain.SettlementStatusApproved),
			CreatedAt: p.CreatedAt,
		})
	}
	c.JSON(http.StatusOK, gin.H{"transactions": items, "total": total})
}
