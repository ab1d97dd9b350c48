package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Seed loads the starting catalog. Safe to call repeatedly.
func (h *Handler) Seed(c *gin.Context) {
	report, err := h.seedService(c).Run(c.Request.Context())
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}
