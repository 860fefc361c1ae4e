package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/SscSPs/autoinvest_app/internal/core/domain"
	portssvc "github.com/SscSPs/autoinvest_app/internal/core/ports/services"
	"github.com/SscSPs/autoinvest_app/internal/dto"
	"github.com/SscSPs/autoinvest_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// AccrualTrigger runs one accrual pass for the current day.
type AccrualTrigger interface {
	Trigger(ctx context.Context) (domain.AccrualReport, error)
}

// adminHandler serves operator-only routes.
type adminHandler struct {
	walletService portssvc.WalletSvcFacade
	trigger       AccrualTrigger
}

func registerAdminRoutes(rg *gin.RouterGroup, walletService portssvc.WalletSvcFacade, trigger AccrualTrigger) {
	h := &adminHandler{walletService: walletService, trigger: trigger}

	withdrawals := rg.Group("/withdrawals/:transactionID")
	{
		withdrawals.POST("/approve", h.approveWithdrawal)
		withdrawals.POST("/reject", h.rejectWithdrawal)
	}
	rg.POST("/accrual/run", h.runAccrual)
	rg.GET("/accounts/:accountID/reconcile", h.reconcileAccount)
}

// approveWithdrawal godoc
// @Summary Mark a pending withdrawal as paid out
// @Tags admin
// @Produce  json
// @Param   transactionID path string true "Withdrawal transaction ID"
// @Success 200 {object} dto.TransactionResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Already resolved"
// @Router /admin/withdrawals/{transactionID}/approve [post]
func (h *adminHandler) approveWithdrawal(c *gin.Context) {
	h.resolveWithdrawal(c, true)
}

// rejectWithdrawal godoc
// @Summary Reject a pending withdrawal and release the reserved funds
// @Tags admin
// @Produce  json
// @Param   transactionID path string true "Withdrawal transaction ID"
// @Success 200 {object} dto.TransactionResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Already resolved"
// @Router /admin/withdrawals/{transactionID}/reject [post]
func (h *adminHandler) rejectWithdrawal(c *gin.Context) {
	h.resolveWithdrawal(c, false)
}

func (h *adminHandler) resolveWithdrawal(c *gin.Context, approve bool) {
	transactionID := c.Param("transactionID")
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(
		slog.String("transaction_id", transactionID),
		slog.Bool("approve", approve),
	)

	txn, err := h.walletService.ResolveWithdrawal(c.Request.Context(), transactionID, approve)
	if err != nil {
		respondWithError(c, logger, err, "Failed to resolve withdrawal")
		return
	}

	logger.Info("Withdrawal resolved", slog.String("status", string(txn.Status)))
	c.JSON(http.StatusOK, dto.ToTransactionResponse(txn))
}

// runAccrual godoc
// @Summary Run the daily accrual pass now
// @Description Safe to repeat: assets already paid for today are skipped.
// @Tags admin
// @Produce  json
// @Success 200 {object} dto.AccrualReportResponse
// @Failure 503 {object} ErrorResponse
// @Router /admin/accrual/run [post]
func (h *adminHandler) runAccrual(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	report, err := h.trigger.Trigger(c.Request.Context())
	if err != nil {
		respondWithError(c, logger, err, "Failed to run accrual")
		return
	}

	c.JSON(http.StatusOK, dto.ToAccrualReportResponse(report))
}

// reconcileAccount godoc
// @Summary Check any account's balance against its transaction history
// @Tags admin
// @Produce  json
// @Param   accountID path string true "Account ID"
// @Success 200 {object} dto.ReconciliationResponse
// @Failure 404 {object} ErrorResponse
// @Router /admin/accounts/{accountID}/reconcile [get]
func (h *adminHandler) reconcileAccount(c *gin.Context) {
	accountID := c.Param("accountID")
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("target_account_id", accountID))

	rec, err := h.walletService.ReconcileAccount(c.Request.Context(), accountID)
	if err != nil {
		respondWithError(c, logger, err, "Failed to reconcile account")
		return
	}

	c.JSON(http.StatusOK, dto.ToReconciliationResponse(rec))
}
