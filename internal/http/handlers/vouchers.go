package handlers

import (
	"github.com/gin-gonic/gin"
)

// OrderVoucher renders the stored order as a PDF (inline).
func (h *Handler) OrderVoucher(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	pdf, filename, err := h.voucherService(c).ForOrder(c.Request.Context(), id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	sendPDF(c, filename, pdf)
}

// VoucherFromData renders an ad-hoc voucher from a raw field map.
func (h *Handler) VoucherFromData(c *gin.Context) {
	var data map[string]any
	if !BindJSONOrError(c, &data) {
		return
	}
	pdf, filename, err := h.voucherService(c).FromData(data)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	sendPDF(c, filename, pdf)
}
