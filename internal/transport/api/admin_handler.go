package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/fsdevblog/safevault/internal/domain"
	"github.com/fsdevblog/safevault/internal/repository/repoargs"
	"github.com/fsdevblog/safevault/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type AdminHandler struct {
	userService         UserServicer
	walletService       WalletServicer
	depositService      DepositServicer
	withdrawalService   WithdrawalServicer
	profitService       ProfitServicer
	notificationService NotificationServicer
	schedulerStatus     SchedulerStatuser
}

type AdminHandlerArgs struct {
	UserService         UserServicer
	WalletService       WalletServicer
	DepositService      DepositServicer
	WithdrawalService   WithdrawalServicer
	ProfitService       ProfitServicer
	NotificationService NotificationServicer
	SchedulerStatus     SchedulerStatuser
}

func NewAdminHandler(args AdminHandlerArgs) *AdminHandler {
	return &AdminHandler{
		userService:         args.UserService,
		walletService:       args.WalletService,
		depositService:      args.DepositService,
		withdrawalService:   args.WithdrawalService,
		profitService:       args.ProfitService,
		notificationService: args.NotificationService,
		schedulerStatus:     args.SchedulerStatus,
	}
}

// Stats GET RouteGroup + AdminStatsRoute.
func (h *AdminHandler) Stats(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	stats, err := h.walletService.GetDashboardStats(ctx)
	if err != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"totalUsers":          stats.TotalUsers,
		"pendingUsers":        stats.PendingUsers,
		"pendingDeposits":     stats.PendingDeposits,
		"approvedDeposits":    stats.ApprovedDeposits,
		"pendingWithdrawals":  stats.PendingWithdrawals,
		"approvedWithdrawals": stats.ApprovedWithdrawal,
	})
}

// Users GET RouteGroup + AdminUsersRoute. Фильтры по статусам через query string.
func (h *AdminHandler) Users(c *gin.Context) {
	filter := repoargs.UserFilter{Page: pageFromQuery(c)}
	if raw := c.Query("accountStatus"); raw != "" {
		status := domain.AccountStatusType(raw)
		filter.AccountStatus = &status
	}
	if raw := c.Query("status"); raw != "" {
		status := domain.UserStatusType(raw)
		filter.Status = &status
	}

	h.listUsers(c, filter)
}

// PendingUsers GET RouteGroup + AdminUsersPendingRoute.
func (h *AdminHandler) PendingUsers(c *gin.Context) {
	pending := domain.AccountStatusPending
	h.listUsers(c, repoargs.UserFilter{AccountStatus: &pending, Page: pageFromQuery(c)})
}

func (h *AdminHandler) listUsers(c *gin.Context, filter repoargs.UserFilter) {
	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	users, total, err := h.userService.GetUsers(ctx, filter)
	if err != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		return
	}

	items := make([]UserResponse, 0, len(users))
	for i := range users {
		items = append(items, newUserResponse(&users[i]))
	}
	c.JSON(http.StatusOK, gin.H{"users": items, "total": total})
}

// ShowUser GET RouteGroup + AdminUserRoute.
func (h *AdminHandler) ShowUser(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	user, err := h.userService.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		}
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": newUserResponse(user)})
}

// BlockUser PUT RouteGroup + AdminUserBlockRoute.
func (h *AdminHandler) BlockUser(c *gin.Context) {
	h.setUserBlocked(c, true)
}

// UnblockUser PUT RouteGroup + AdminUserUnblockRoute.
func (h *AdminHandler) UnblockUser(c *gin.Context) {
	h.setUserBlocked(c, false)
}

func (h *AdminHandler) setUserBlocked(c *gin.Context, blocked bool) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	user, err := h.userService.SetBlocked(ctx, id, blocked)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		}
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": newUserResponse(user)})
}

// ApproveUser PUT RouteGroup + AdminUserApproveRoute. Только для pending-аккаунтов.
func (h *AdminHandler) ApproveUser(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	user, err := h.userService.ApproveAccount(ctx, id)
	if err != nil {
		h.renderUserSettleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": newUserResponse(user)})
}

type RejectUserParams struct {
	Reason string `binding:"required,min=1,max=500" json:"reason"`
}

// RejectUser PUT RouteGroup + AdminUserRejectRoute.
func (h *AdminHandler) RejectUser(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var params RejectUserParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).
			SetType(gin.ErrorTypeBind)
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	user, err := h.userService.RejectAccount(ctx, id, params.Reason)
	if err != nil {
		h.renderUserSettleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": newUserResponse(user)})
}

func (h *AdminHandler) renderUserSettleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrRecordNotFound):
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "user not found"})
	case errors.Is(err, domain.ErrStateConflict):
		c.AbortWithStatusJSON(http.StatusConflict, gin.H{"error": "account is not pending"})
	default:
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
	}
}

type AdjustBalanceParams struct {
	DepositAmount decimal.Decimal `binding:"required"               json:"depositAmount"`
	Reason        string          `binding:"required,min=1,max=500" json:"reason"`
}

// AdjustBalance PUT RouteGroup + AdminUserBalanceRoute. Устанавливает новый
// deposit_amount; тип уведомления зависит от знака дельты.
func (h *AdminHandler) AdjustBalance(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var params AdjustBalanceParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).
			SetType(gin.ErrorTypeBind)
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	user, err := h.walletService.AdjustBalance(ctx, id, params.DepositAmount, params.Reason)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "user not found"})
		case errors.Is(err, domain.ErrNotEnoughBalance):
			c.AbortWithStatusJSON(http.StatusUnprocessableEntity, gin.H{"error": "deposit amount must not be negative"})
		default:
			_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": newUserResponse(user)})
}

// AdminDepositResponse заявка вместе с краткими данными владельца.
type AdminDepositResponse struct {
	DepositResponse
	User *AdminUserRef `json:"user,omitempty"`
}

type AdminWithdrawalResponse struct {
	WithdrawalResponse
	User *AdminUserRef `json:"user,omitempty"`
}

type AdminUserRef struct {
	ID        int64  `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
}

func newAdminUserRef(refs map[int64]domain.UserRef, userID int64) *AdminUserRef {
	ref, ok := refs[userID]
	if !ok {
		return nil
	}
	return &AdminUserRef{
		ID:        ref.ID,
		FirstName: ref.FirstName,
		LastName:  ref.LastName,
		Email:     ref.Email,
	}
}

func ledgerFilterFromQuery(c *gin.Context) repoargs.LedgerFilter {
	filter := repoargs.LedgerFilter{Page: pageFromQuery(c)}
	if raw := c.Query("status"); raw != "" {
		status := domain.SettlementStatusType(raw)
		filter.Status = &status
	}
	return filter
}

// Deposits GET RouteGroup + AdminDepositsRoute.
func (h *AdminHandler) Deposits(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	deposits, refs, total, err := h.depositService.GetAll(ctx, ledgerFilterFromQuery(c))
	if err != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		return
	}

	items := make([]AdminDepositResponse, 0, len(deposits))
	for i := range deposits {
		items = append(items, AdminDepositResponse{
			DepositResponse: newDepositResponse(&deposits[i]),
			User:            newAdminUserRef(refs, deposits[i].UserID),
		})
	}
	c.JSON(http.StatusOK, gin.H{"deposits": items, "total": total})
}

// Withdrawals GET RouteGroup + AdminWithdrawalsRoute.
func (h *AdminHandler) Withdrawals(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	withdrawals, refs, total, err := h.withdrawalService.GetAll(ctx, ledgerFilterFromQuery(c))
	if err != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		return
	}

	items := make([]AdminWithdrawalResponse, 0, len(withdrawals))
	for i := range withdrawals {
		items = append(items, AdminWithdrawalResponse{
			WithdrawalResponse: newWithdrawalResponse(&withdrawals[i]),
			User:               newAdminUserRef(refs, withdrawals[i].UserID),
		})
	}
	c.JSON(http.StatusOK, gin.H{"withdrawals": items, "total": total})
}

type SettleParams struct {
	AdminNotes string `binding:"max=500" json:"adminNotes"`
}

func bindSettleParams(c *gin.Context) (SettleParams, bool) {
	var params SettleParams
	if c.Request.ContentLength > 0 {
		if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
			_ = c.AbortWithError(http.StatusBadRequest, bindErr).
				SetType(gin.ErrorTypeBind)
			return params, false
		}
	}
	return params, true
}

func (h *AdminHandler) renderSettleError(c *gin.Context, err error, entity string) {
	var conflictErr *domain.SettlementConflictError
	switch {
	case errors.Is(err, domain.ErrRecordNotFound):
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": entity + " not found"})
	case errors.As(err, &conflictErr):
		c.AbortWithStatusJSON(http.StatusConflict,
			gin.H{"error": entity + " already " + string(conflictErr.Status)})
	case errors.Is(err, domain.ErrStateConflict):
		c.AbortWithStatusJSON(http.StatusConflict, gin.H{"error": entity + " is not pending"})
	case errors.Is(err, domain.ErrNotEnoughBalance):
		c.AbortWithStatusJSON(http.StatusUnprocessableEntity, gin.H{"error": "insufficient balance"})
	default:
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
	}
}

// ApproveDeposit PUT RouteGroup + AdminDepositApproveRoute.
func (h *AdminHandler) ApproveDeposit(c *gin.Context) {
	h.settleDeposit(c, h.depositService.Approve)
}

// RejectDeposit PUT RouteGroup + AdminDepositRejectRoute.
func (h *AdminHandler) RejectDeposit(c *gin.Context) {
	h.settleDeposit(c, h.depositService.Reject)
}

func (h *AdminHandler) settleDeposit(
	c *gin.Context,
	settleFn func(ctx context.Context, id int64, adminNotes string) (*domain.Deposit, error),
) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	params, paramsOk := bindSettleParams(c)
	if !paramsOk {
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	deposit, err := settleFn(ctx, id, params.AdminNotes)
	if err != nil {
		h.renderSettleError(c, err, "deposit")
		return
	}
	c.JSON(http.StatusOK, gin.H{"deposit": newDepositResponse(deposit)})
}

// ApproveWithdrawal PUT RouteGroup + AdminWithdrawApproveRoute.
func (h *AdminHandler) ApproveWithdrawal(c *gin.Context) {
	h.settleWithdrawal(c, h.withdrawalService.Approve)
}

// RejectWithdrawal PUT RouteGroup + AdminWithdrawRejectRoute.
func (h *AdminHandler) RejectWithdrawal(c *gin.Context) {
	h.settleWithdrawal(c, h.withdrawalService.Reject)
}

func (h *AdminHandler) settleWithdrawal(
	c *gin.Context,
	settleFn func(ctx context.Context, id int64, adminNotes string) (*domain.Withdrawal, error),
) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	params, paramsOk := bindSettleParams(c)
	if !paramsOk {
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	withdrawal, err := settleFn(ctx, id, params.AdminNotes)
	if err != nil {
		h.renderSettleError(c, err, "withdrawal")
		return
	}
	c.JSON(http.StatusOK, gin.H{"withdrawal": newWithdrawalResponse(withdrawal)})
}

type CreateNotificationParams struct {
	UserID    *int64  `json:"userId"`
	Message   string  `binding:"required,min=1,max=500" json:"message"`
	ActionURL *string `binding:"omitempty,max=500"      json:"actionUrl"`
}

// CreateNotification POST RouteGroup + AdminNotificationsRoute. Без userId
// уведомление широковещательное.
func (h *AdminHandler) CreateNotification(c *gin.Context) {
	var params CreateNotificationParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).
			SetType(gin.ErrorTypeBind)
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	notification, err := h.notificationService.Create(ctx, service.CreateNotificationArgs{
		UserID:    params.UserID,
		Message:   params.Message,
		Type:      domain.NotificationTypeGeneral,
		ActionURL: params.ActionURL,
	})
	if err != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"notification": newNotificationResponse(notification)})
}

// Notifications GET RouteGroup + AdminNotificationsRoute. Лента по всем юзерам.
func (h *AdminHandler) Notifications(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	unreadOnly := c.Query("unread") == "true"
	notifications, total, err := h.notificationService.GetForAdmin(ctx, unreadOnly, pageFromQuery(c))
	if err != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		return
	}

	unreadCount, countErr := h.notificationService.CountAdminUnread(ctx)
	if countErr != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, countErr).SetType(gin.ErrorTypePrivate)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"notifications": newNotificationResponses(notifications),
		"total":         total,
		"unreadCount":   unreadCount,
	})
}

// MarkNotificationRead PUT RouteGroup + AdminNotificationReadRoute. Меняет
// только админский флаг.
func (h *AdminHandler) MarkNotificationRead(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	notification, err := h.notificationService.MarkAdminRead(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "notification not found"})
			return
		}
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		return
	}
	c.JSON(http.StatusOK, gin.H{"notification": newNotificationResponse(notification)})
}

// MarkAllNotificationsRead PUT RouteGroup + AdminNotificationsReadAllRoute.
func (h *AdminHandler) MarkAllNotificationsRead(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	if err := h.notificationService.MarkAllAdminRead(ctx); err != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "All notifications marked as read"})
}

// AccrualStatus GET RouteGroup + AdminAccrualStatusRoute.
func (h *AdminHandler) AccrualStatus(c *gin.Context) {
	status := h.schedulerStatus.Status()
	c.JSON(http.StatusOK, gin.H{
		"running": status.Running,
		"nextRun": status.NextRun.UTC().Format(time.RFC3339),
	})
}

// RunAccrual POST RouteGroup + AdminAccrualRunRoute. Ручное начисление одному юзеру.
func (h *AdminHandler) RunAccrual(c *gin.Context) {
	userID, ok := pathID(c, "userID")
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	result, err := h.profitService.AccrueUser(ctx, userID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "user not found"})
		case errors.Is(err, domain.ErrUserNotEligible):
			c.AbortWithStatusJSON(http.StatusUnprocessableEntity,
				gin.H{"error": "user is not eligible for profit accrual"})
		case errors.Is(err, domain.ErrAlreadyAccrued):
			c.AbortWithStatusJSON(http.StatusConflict,
				gin.H{"error": "profit has already been credited today"})
		default:
			_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"profitAmount":   result.ProfitAmount.StringFixed(2),
		"newTotalAmount": result.NewTotalAmount.StringFixed(2),
	})
}
