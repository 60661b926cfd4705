package http

import (
	"net/http"

	"marketplace-service/internal/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	gifts      *services.GiftService
	moderation *services.ModerationService
	sessions   SessionResolver
	logger     *zap.Logger
}

func NewHandler(g *services.GiftService, m *services.ModerationService, sessions SessionResolver, logger *zap.Logger) *Handler {
	return &Handler{gifts: g, moderation: m, sessions: sessions, logger: logger}
}

func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.GET("/health", h.Health)

	api := r.Group("/api", h.Authenticate())
	{
		api.POST("/gift-orders/verify", h.VerifyGiftOrder)
		api.POST("/gift-orders/redeem", h.RedeemGiftOrder)

		admin := api.Group("/admin")
		admin.POST("/users/ban", h.BanUser)
		admin.POST("/businesses/suspend", h.SuspendBusiness)
	}
}

func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *Handler) VerifyGiftOrder(c *gin.Context) {
	var req GiftOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeBindError(c, err)
		return
	}

	view, err := h.gifts.Verify(c.Request.Context(), currentUser(c), req.OrderID, req.RedemptionCode)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h *Handler) RedeemGiftOrder(c *gin.Context) {
	var req GiftOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeBindError(c, err)
		return
	}

	view, err := h.gifts.Redeem(c.Request.Context(), currentUser(c), req.OrderID, req.RedemptionCode)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h *Handler) BanUser(c *gin.Context) {
	var req BanUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeBindError(c, err)
		return
	}

	user, err := h.moderation.BanUser(c.Request.Context(), currentUser(c), req.UserID)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *Handler) SuspendBusiness(c *gin.Context) {
	var req SuspendBusinessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeBindError(c, err)
		return
	}

	business, err := h.moderation.SuspendBusiness(c.Request.Context(), currentUser(c), req.BusinessID)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, business)
}
