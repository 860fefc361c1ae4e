package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/autoinvest_app/internal/core/ports/services"
	"github.com/SscSPs/autoinvest_app/internal/dto"
	"github.com/SscSPs/autoinvest_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// walletHandler handles deposits, withdrawals and the transaction log.
type walletHandler struct {
	walletService portssvc.WalletSvc
}

func registerWalletRoutes(rg *gin.RouterGroup, walletService portssvc.WalletSvc) {
	h := &walletHandler{walletService: walletService}

	wallet := rg.Group("/wallet")
	{
		wallet.POST("/deposit", h.deposit)
		wallet.POST("/withdraw", h.withdraw)
		wallet.GET("/transactions", h.listTransactions)
	}
}

// deposit godoc
// @Summary Deposit funds
// @Tags wallet
// @Accept  json
// @Produce  json
// @Param   deposit body dto.DepositRequest true "Amount to deposit"
// @Success 200 {object} dto.BalanceResponse
// @Failure 400 {object} ErrorResponse "Invalid amount"
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Account not found"
// @Security BearerAuth
// @Router /wallet/deposit [post]
func (h *walletHandler) deposit(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	accountID, ok := middleware.GetAccountIDFromContext(c)
	if !ok {
		logger.Error("Account ID not found in context")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.DepositRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for Deposit", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	balance, err := h.walletService.Deposit(c.Request.Context(), accountID, req.Amount)
	if err != nil {
		respondWithError(c, logger, err, "Failed to deposit")
		return
	}

	c.JSON(http.StatusOK, dto.BalanceResponse{AccountID: accountID, Balance: balance})
}

// withdraw godoc
// @Summary Request a withdrawal
// @Description Reserves the amount immediately; the withdrawal stays pending until an operator resolves it.
// @Tags wallet
// @Accept  json
// @Produce  json
// @Param   withdrawal body dto.WithdrawRequest true "Amount and destination"
// @Success 202 {object} dto.WithdrawResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Insufficient funds"
// @Security BearerAuth
// @Router /wallet/withdraw [post]
func (h *walletHandler) withdraw(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	accountID, ok := middleware.GetAccountIDFromContext(c)
	if !ok {
		logger.Error("Account ID not found in context")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.WithdrawRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for Withdraw", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	txn, balance, err := h.walletService.Withdraw(c.Request.Context(), accountID, req.Amount, req.Destination)
	if err != nil {
		respondWithError(c, logger, err, "Failed to withdraw")
		return
	}

	c.JSON(http.StatusAccepted, dto.WithdrawResponse{
		Transaction: dto.ToTransactionResponse(txn),
		Balance:     balance,
	})
}

// listTransactions godoc
// @Summary List the logged-in account's transactions
// @Description Returns records in insertion order; pass nextToken to continue.
// @Tags wallet
// @Produce  json
// @Param   limit query int false "Page size (1-500)" default(50)
// @Param   nextToken query string false "Continuation token"
// @Success 200 {object} dto.ListTransactionsResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /wallet/transactions [get]
func (h *walletHandler) listTransactions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	accountID, ok := middleware.GetAccountIDFromContext(c)
	if !ok {
		logger.Error("Account ID not found in context")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var params dto.ListTransactionsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query parameters for ListTransactions", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	txns, nextToken, err := h.walletService.ListTransactions(c.Request.Context(), accountID, params.Limit, params.NextToken)
	if err != nil {
		respondWithError(c, logger, err, "Failed to list transactions")
		return
	}

	c.JSON(http.StatusOK, dto.ToListTransactionsResponse(txns, nextToken))
}
