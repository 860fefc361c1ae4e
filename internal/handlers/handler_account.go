package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/autoinvest_app/internal/core/ports/services"
	"github.com/SscSPs/autoinvest_app/internal/dto"
	"github.com/SscSPs/autoinvest_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// accountHandler serves the authenticated account's own profile.
type accountHandler struct {
	accountService portssvc.AccountSvcFacade
	walletService  portssvc.ReconcilerSvc
}

func registerAccountRoutes(rg *gin.RouterGroup, accountService portssvc.AccountSvcFacade, walletService portssvc.ReconcilerSvc) {
	h := &accountHandler{accountService: accountService, walletService: walletService}

	me := rg.Group("/me")
	{
		me.GET("", h.getMe)
		me.GET("/reconcile", h.reconcileMe)
	}
}

// getMe godoc
// @Summary Get the logged-in account
// @Tags account
// @Produce  json
// @Success 200 {object} dto.AccountResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /me [get]
func (h *accountHandler) getMe(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	accountID, ok := middleware.GetAccountIDFromContext(c)
	if !ok {
		logger.Error("Account ID not found in context")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	account, err := h.accountService.GetAccount(c.Request.Context(), accountID)
	if err != nil {
		respondWithError(c, logger, err, "Failed to retrieve account")
		return
	}

	c.JSON(http.StatusOK, dto.ToAccountResponse(account))
}

// reconcileMe godoc
// @Summary Check the logged-in account's balance against its transaction history
// @Tags account
// @Produce  json
// @Success 200 {object} dto.ReconciliationResponse
// @Security BearerAuth
// @Router /me/reconcile [get]
func (h *accountHandler) reconcileMe(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	accountID, ok := middleware.GetAccountIDFromContext(c)
	if !ok {
		logger.Error("Account ID not found in context")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	rec, err := h.walletService.ReconcileAccount(c.Request.Context(), accountID)
	if err != nil {
		respondWithError(c, logger, err, "Failed to reconcile account")
		return
	}

	c.JSON(http.StatusOK, dto.ToReconciliationResponse(rec))
}
