package handlers

import (
	"net/http"

	"colectivo/internal/domain/models"

	"github.com/gin-gonic/gin"
)

func (h *Handler) ListServices(c *gin.Context) {
	list, err := h.catalogService(c).ListServices(c.Request.Context())
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	if list == nil {
		list = []models.Service{}
	}
	c.JSON(http.StatusOK, list)
}

func (h *Handler) CreateService(c *gin.Context) {
	var in models.ServiceInput
	if !BindJSONOrError(c, &in) {
		return
	}
	svc, err := h.catalogService(c).CreateService(c.Request.Context(), in)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, svc)
}

type activeBody struct {
	Active *bool `json:"active"`
}

func (h *Handler) SetServiceActive(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var body activeBody
	if !BindJSONOrError(c, &body) {
		return
	}
	if body.Active == nil {
		respondError(c, http.StatusBadRequest, "validation_error", "active is required", nil)
		return
	}
	svc, err := h.catalogService(c).SetServiceActive(c.Request.Context(), id, *body.Active)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, svc)
}

func (h *Handler) ListPrices(c *gin.Context) {
	list, err := h.catalogService(c).ListPrices(c.Request.Context())
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	if list == nil {
		list = []models.PriceTier{}
	}
	c.JSON(http.StatusOK, list)
}

func (h *Handler) CreatePrice(c *gin.Context) {
	var in models.PriceTierInput
	if !BindJSONOrError(c, &in) {
		return
	}
	tier, err := h.catalogService(c).CreatePrice(c.Request.Context(), in)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, tier)
}

func (h *Handler) UpdatePrice(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var in models.PriceTierInput
	if !BindJSONOrError(c, &in) {
		return
	}
	tier, err := h.catalogService(c).UpdatePrice(c.Request.Context(), id, in)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, tier)
}

func (h *Handler) DeletePrice(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.catalogService(c).DeletePrice(c.Request.Context(), id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": id})
}
