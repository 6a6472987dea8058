package api

import (
	"errors"
	"net/http"

	resdto "salonflow/internal/handler/dto/response"
	"salonflow/internal/pkg/errs"
	"salonflow/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type VoucherHandler struct {
	voucherCommands commands.VoucherCommands
}

func NewVoucherHandler(voucherCommands commands.VoucherCommands) *VoucherHandler {
	return &VoucherHandler{voucherCommands: voucherCommands}
}

// @Summary Check voucher
// @Description Validate a voucher code without consuming it
// @Tags vouchers
// @Produce json
// @Security BearerAuth
// @Param code path string true "Voucher code"
// @Success 200 {object} resdto.VoucherCheckResponse
// @Failure 400 {object} map[string]string
// @Router /vouchers/{code} [get]
func (h *VoucherHandler) Check(c *gin.Context) {
	result, err := h.voucherCommands.Check(c.Request.Context(), c.Param("code"))
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrInvalidCode):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid or already used voucher code"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromVoucherCheck(result))
}
