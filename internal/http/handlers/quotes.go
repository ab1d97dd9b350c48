package handlers

import (
	"net/http"

	"colectivo/internal/pricing"

	"github.com/gin-gonic/gin"
)

type quoteResponse struct {
	pricing.Quote
	NeedsReview bool `json:"needs_review"`
}

// Quote prices a trip without storing anything.
func (h *Handler) Quote(c *gin.Context) {
	var req pricing.QuoteRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	q, err := h.quoteService(c).Quote(c.Request.Context(), req)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, quoteResponse{Quote: q, NeedsReview: q.NeedsReview()})
}
