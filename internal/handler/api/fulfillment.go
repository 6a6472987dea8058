package api

import (
	"errors"
	"net/http"

	"salonflow/internal/domain/fulfillment"
	reqdto "salonflow/internal/handler/dto/request"
	resdto "salonflow/internal/handler/dto/response"
	"salonflow/internal/handler/middleware"
	"salonflow/internal/pkg/errs"
	"salonflow/internal/usecase/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type FulfillmentHandler struct {
	coordinator commands.FulfillmentCoordinator
}

func NewFulfillmentHandler(coordinator commands.FulfillmentCoordinator) *FulfillmentHandler {
	return &FulfillmentHandler{coordinator: coordinator}
}

// @Summary Transition service instance
// @Description Apply claim, unclaim, serve or unserve to one service instance
// @Tags instances
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Instance ID"
// @Param request body reqdto.TransitionRequest true "Transition"
// @Success 200 {object} resdto.InstanceResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /instances/{id}/transition [post]
func (h *FulfillmentHandler) Transition(c *gin.Context) {
	staffID, ok := middleware.GetStaffID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	instanceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid instance ID format"})
		return
	}

	var req reqdto.TransitionRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	instance, err := h.coordinator.Transition(c.Request.Context(), commands.TransitionParams{
		InstanceID: instanceID,
		Action:     fulfillment.Action(req.Action),
		ActorID:    staffID,
	})
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrInstanceNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Service instance not found"})
		case errors.Is(err, errs.ErrAlreadyClaimed):
			c.JSON(http.StatusConflict, gin.H{"error": "Instance already claimed by another staff member"})
		case errors.Is(err, errs.ErrStaleState):
			c.JSON(http.StatusConflict, gin.H{"error": "Instance state changed, refresh and retry"})
		case errors.Is(err, errs.ErrNotOwner):
			c.JSON(http.StatusForbidden, gin.H{"error": "You do not hold the claim on this instance"})
		case errors.Is(err, errs.ErrInvalidTransition):
			c.JSON(http.StatusConflict, gin.H{"error": "Transition not allowed from current state"})
		case errors.Is(err, errs.ErrTransientIO):
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Temporary store failure, please retry"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromInstance(instance))
}

// @Summary Watch booking
// @Description Subscribe this server to the change feed for one booking and return its current progress
// @Tags instances
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingProgressResponse
// @Failure 404 {object} map[string]string
// @Router /bookings/{id}/watch [post]
func (h *FulfillmentHandler) WatchBooking(c *gin.Context) {
	bookingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid booking ID format"})
		return
	}

	if err := h.coordinator.WatchBooking(c.Request.Context(), bookingID); err != nil {
		switch {
		case errors.Is(err, errs.ErrBookingNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
		case errors.Is(err, errs.ErrTransientIO):
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Change feed unavailable"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	snapshot, err := h.coordinator.SnapshotBooking(c.Request.Context(), bookingID)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrBookingNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingSnapshot(snapshot))
}
