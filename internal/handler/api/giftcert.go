package api

import (
	"errors"
	"net/http"

	reqdto "salonflow/internal/handler/dto/request"
	resdto "salonflow/internal/handler/dto/response"
	"salonflow/internal/pkg/errs"
	"salonflow/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type GiftCertificateHandler struct {
	certCommands commands.GiftCertificateCommands
}

func NewGiftCertificateHandler(certCommands commands.GiftCertificateCommands) *GiftCertificateHandler {
	return &GiftCertificateHandler{certCommands: certCommands}
}

// @Summary Check gift certificate
// @Description Validate a gift certificate code and return its bundle contents
// @Tags gift-certificates
// @Produce json
// @Security BearerAuth
// @Param code path string true "Certificate code"
// @Success 200 {object} resdto.GiftCertificateCheckResponse
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /gift-certificates/{code} [get]
func (h *GiftCertificateHandler) Check(c *gin.Context) {
	result, err := h.certCommands.Check(c.Request.Context(), c.Param("code"))
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromGiftCertificateCheck(result))
}

// @Summary Claim gift certificate
// @Description Redeem a gift certificate into a new booking; the code is consumed atomically
// @Tags gift-certificates
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.ClaimGiftCertificateRequest true "Claim request"
// @Success 201 {object} resdto.CreatedResponse
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /gift-certificates/claim [post]
func (h *GiftCertificateHandler) Claim(c *gin.Context) {
	var req reqdto.ClaimGiftCertificateRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	id, err := h.certCommands.Claim(c.Request.Context(), commands.ClaimGiftCertificateParams{
		Code:          req.Code,
		CustomerID:    req.CustomerID,
		WalkInName:    req.GetWalkInName(),
		Branch:        req.Branch,
		AppointmentAt: req.AppointmentAt,
		Notes:         req.Notes,
	})
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.CreatedResponse{ID: id})
}

func (h *GiftCertificateHandler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, errs.ErrInvalidCode):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid gift certificate code"})
	case errors.Is(err, errs.ErrNotClaimable):
		c.JSON(http.StatusConflict, gin.H{"error": "Gift certificate is not claimable"})
	case errors.Is(err, errs.ErrServiceNotFound), errors.Is(err, errs.ErrServiceSetNotFound):
		c.JSON(http.StatusConflict, gin.H{"error": "Certificate bundle references an unknown catalog item"})
	case errors.Is(err, errs.ErrDomainValidation):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Domain validation failed"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
