package handlers

import (
	"net/http"

	"colectivo/internal/domain/models"
	"colectivo/internal/pricing"
	"colectivo/internal/services"

	"github.com/gin-gonic/gin"
)

type createOrderResponse struct {
	Order       models.Order  `json:"order"`
	Quote       pricing.Quote `json:"quote"`
	NeedsReview bool          `json:"needs_review"`
}

// IntakeOrder receives form submissions from the external integration.
func (h *Handler) IntakeOrder(c *gin.Context) {
	h.createOrder(c, services.SourceIntake)
}

// CreateOrder is the dashboard variant of IntakeOrder.
func (h *Handler) CreateOrder(c *gin.Context) {
	h.createOrder(c, services.SourceStaff)
}

func (h *Handler) createOrder(c *gin.Context, source string) {
	var req models.IntakeRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	order, quote, err := h.orderService(c).Create(c.Request.Context(), req, source)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, createOrderResponse{
		Order:       order,
		Quote:       quote,
		NeedsReview: quote.NeedsReview(),
	})
}

func (h *Handler) ListOrders(c *gin.Context) {
	orders, err := h.orderService(c).List(c.Request.Context())
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	if orders == nil {
		orders = []models.Order{}
	}
	c.JSON(http.StatusOK, orders)
}

func (h *Handler) GetOrder(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	order, err := h.orderService(c).Get(c.Request.Context(), id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

func (h *Handler) UpdateOrder(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var in models.OrderUpdate
	if !BindJSONOrError(c, &in) {
		return
	}
	order, err := h.orderService(c).Update(c.Request.Context(), id, in)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

func (h *Handler) DeleteOrder(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.orderService(c).Delete(c.Request.Context(), id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": id})
}

func (h *Handler) ToggleDiscount(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	order, err := h.orderService(c).ToggleDiscount(c.Request.Context(), id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

func (h *Handler) AddPayment(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var in models.PaymentInput
	if !BindJSONOrError(c, &in) {
		return
	}
	order, err := h.orderService(c).AddPayment(c.Request.Context(), id, in)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

func (h *Handler) ResetPayment(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	order, err := h.orderService(c).ResetPayment(c.Request.Context(), id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

type extraTextBody struct {
	TextoExtra string `json:"texto_extra"`
}

func (h *Handler) GetExtraText(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	text, err := h.orderService(c).ExtraText(c.Request.Context(), id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, extraTextBody{TextoExtra: text})
}

func (h *Handler) SetExtraText(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var body extraTextBody
	if !BindJSONOrError(c, &body) {
		return
	}
	order, err := h.orderService(c).SetExtraText(c.Request.Context(), id, body.TextoExtra)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, extraTextBody{TextoExtra: order.TextoExtra})
}

// ClearExtraText removes the voucher's second page.
func (h *Handler) ClearExtraText(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if _, err := h.orderService(c).SetExtraText(c.Request.Context(), id, ""); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, extraTextBody{})
}

func (h *Handler) OrderStats(c *gin.Context) {
	stats, err := h.orderService(c).Stats(c.Request.Context())
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}
