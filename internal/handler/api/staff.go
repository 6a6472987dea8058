package api

import (
	"net/http"
	"time"

	resdto "salonflow/internal/handler/dto/response"
	"salonflow/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type StaffHandler struct {
	commissionQueries queries.CommissionQueries
}

func NewStaffHandler(commissionQueries queries.CommissionQueries) *StaffHandler {
	return &StaffHandler{commissionQueries: commissionQueries}
}

// @Summary Staff commission report
// @Description List served instances and their commission basis for one staff member
// @Tags staff
// @Produce json
// @Security BearerAuth
// @Param id path string true "Staff ID"
// @Param from query string false "RFC3339 start of range"
// @Param to query string false "RFC3339 end of range"
// @Success 200 {object} resdto.CommissionReportResponse
// @Failure 400 {object} map[string]string
// @Router /staff/{id}/commissions [get]
func (h *StaffHandler) Commissions(c *gin.Context) {
	staffID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid staff ID format"})
		return
	}

	from, to, err := parseRange(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid time range"})
		return
	}

	report, err := h.commissionQueries.StaffReport(c.Request.Context(), staffID, from, to)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, resdto.FromCommissionReport(report))
}

// parseRange defaults to the current calendar month.
func parseRange(c *gin.Context) (time.Time, time.Time, error) {
	now := time.Now()
	from := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	to := from.AddDate(0, 1, 0)

	if raw := c.Query("from"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		from = parsed
	}
	if raw := c.Query("to"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		to = parsed
	}
	return from, to, nil
}
