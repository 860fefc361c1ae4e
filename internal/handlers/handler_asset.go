package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/autoinvest_app/internal/core/ports/services"
	"github.com/SscSPs/autoinvest_app/internal/dto"
	"github.com/SscSPs/autoinvest_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// assetHandler handles the catalog and asset purchases.
type assetHandler struct {
	assetService portssvc.AssetSvcFacade
}

func registerAssetRoutes(rg *gin.RouterGroup, assetService portssvc.AssetSvcFacade) {
	h := &assetHandler{assetService: assetService}

	rg.GET("/catalog", h.listCatalog)

	assets := rg.Group("/assets")
	{
		assets.POST("", h.purchase)
		assets.GET("", h.listAssets)
	}
}

// listCatalog godoc
// @Summary List the purchasable tiers
// @Tags assets
// @Produce  json
// @Success 200 {array} dto.TierResponse
// @Security BearerAuth
// @Router /catalog [get]
func (h *assetHandler) listCatalog(c *gin.Context) {
	c.JSON(http.StatusOK, dto.ToListTierResponse(h.assetService.ListTiers(c.Request.Context())))
}

// purchase godoc
// @Summary Buy an asset from the catalog
// @Tags assets
// @Accept  json
// @Produce  json
// @Param   purchase body dto.PurchaseRequest true "Tier to buy"
// @Success 201 {object} dto.PurchaseResponse
// @Failure 400 {object} ErrorResponse "Unknown tier"
// @Failure 409 {object} ErrorResponse "Insufficient funds"
// @Security BearerAuth
// @Router /assets [post]
func (h *assetHandler) purchase(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	accountID, ok := middleware.GetAccountIDFromContext(c)
	if !ok {
		logger.Error("Account ID not found in context")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.PurchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for Purchase", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	asset, balance, err := h.assetService.Purchase(c.Request.Context(), accountID, req.TierID)
	if err != nil {
		respondWithError(c, logger, err, "Failed to purchase asset")
		return
	}

	c.JSON(http.StatusCreated, dto.PurchaseResponse{
		Asset:   dto.ToAssetResponse(asset),
		Balance: balance,
	})
}

// listAssets godoc
// @Summary List the logged-in account's assets
// @Tags assets
// @Produce  json
// @Success 200 {array} dto.AssetResponse
// @Security BearerAuth
// @Router /assets [get]
func (h *assetHandler) listAssets(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	accountID, ok := middleware.GetAccountIDFromContext(c)
	if !ok {
		logger.Error("Account ID not found in context")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	assets, err := h.assetService.ListAssets(c.Request.Context(), accountID)
	if err != nil {
		respondWithError(c, logger, err, "Failed to list assets")
		return
	}

	c.JSON(http.StatusOK, dto.ToListAssetResponse(assets))
}
