//go:build unit

package api_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"salonflow/internal/domain/booking"
	"salonflow/internal/domain/fulfillment"
	"salonflow/internal/domain/staff"
	"salonflow/internal/handler/api"
	"salonflow/internal/handler/dto/response"
	"salonflow/internal/pkg/errs"
	"salonflow/internal/usecase/commands"
	commandsmock "salonflow/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type FulfillmentHandlerTestSuite struct {
	suite.Suite
	router          *gin.Engine
	mockCtrl        *gomock.Controller
	mockCoordinator *commandsmock.MockFulfillmentCoordinator
	handler         *api.FulfillmentHandler
	staffID         uuid.UUID
}

func (s *FulfillmentHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCoordinator = commandsmock.NewMockFulfillmentCoordinator(s.mockCtrl)
	s.handler = api.NewFulfillmentHandler(s.mockCoordinator)
	s.staffID = uuid.New()

	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
			return
		}
		c.Set("staff_id", s.staffID)
		c.Set("staff_role", staff.RoleStylist)
		c.Next()
	}

	s.router.POST("/instances/:id/transition", authMiddleware, s.handler.Transition)
	s.router.POST("/bookings/:id/watch", authMiddleware, s.handler.WatchBooking)
}

func (s *FulfillmentHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestFulfillmentHandlerSuite(t *testing.T) {
	suite.Run(t, new(FulfillmentHandlerTestSuite))
}

func (s *FulfillmentHandlerTestSuite) transition(instanceID uuid.UUID, action string) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	s.Require().NoError(json.NewEncoder(&buf).Encode(map[string]string{"action": action}))
	req := httptest.NewRequest(http.MethodPost, "/instances/"+instanceID.String()+"/transition", &buf)
	req.Header.Set("Authorization", "Bearer test-token")
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *FulfillmentHandlerTestSuite) TestTransition() {
	instanceID := uuid.New()

	s.Run("claim succeeds", func() {
		now := time.Now()
		claimed := &fulfillment.Instance{
			ID:         instanceID,
			BookingID:  uuid.New(),
			ServiceID:  uuid.New(),
			PriceCents: 1500,
			Sequence:   1,
			Status:     fulfillment.StatusClaimed,
			ClaimedBy:  &s.staffID,
			ClaimedAt:  &now,
			Version:    2,
			UpdatedAt:  now,
		}
		s.mockCoordinator.EXPECT().
			Transition(gomock.Any(), commands.TransitionParams{
				InstanceID: instanceID,
				Action:     fulfillment.ActionClaim,
				ActorID:    s.staffID,
			}).
			Return(claimed, nil)

		w := s.transition(instanceID, "claim")

		s.Equal(http.StatusOK, w.Code)
		s.Contains(w.Body.String(), `"claimed"`)
		s.Contains(w.Body.String(), s.staffID.String())
	})

	s.Run("lost claim race", func() {
		s.mockCoordinator.EXPECT().
			Transition(gomock.Any(), gomock.Any()).
			Return(nil, errs.ErrAlreadyClaimed)

		w := s.transition(instanceID, "claim")

		s.Equal(http.StatusConflict, w.Code)
	})

	s.Run("stale state", func() {
		s.mockCoordinator.EXPECT().
			Transition(gomock.Any(), gomock.Any()).
			Return(nil, errs.ErrStaleState)

		w := s.transition(instanceID, "serve")

		s.Equal(http.StatusConflict, w.Code)
	})

	s.Run("not owner", func() {
		s.mockCoordinator.EXPECT().
			Transition(gomock.Any(), gomock.Any()).
			Return(nil, errs.ErrNotOwner)

		w := s.transition(instanceID, "serve")

		s.Equal(http.StatusForbidden, w.Code)
	})

	s.Run("transient store failure", func() {
		s.mockCoordinator.EXPECT().
			Transition(gomock.Any(), gomock.Any()).
			Return(nil, errs.ErrTransientIO)

		w := s.transition(instanceID, "claim")

		s.Equal(http.StatusServiceUnavailable, w.Code)
	})

	s.Run("missing instance", func() {
		s.mockCoordinator.EXPECT().
			Transition(gomock.Any(), gomock.Any()).
			Return(nil, errs.ErrInstanceNotFound)

		w := s.transition(instanceID, "claim")

		s.Equal(http.StatusNotFound, w.Code)
	})

	s.Run("unknown action rejected by binding", func() {
		w := s.transition(instanceID, "finish")
		s.Equal(http.StatusBadRequest, w.Code)
	})
}

func (s *FulfillmentHandlerTestSuite) TestWatchBooking() {
	bookingID := uuid.New()

	s.Run("subscribed returns current progress", func() {
		customerID := uuid.New()
		served := uuid.New()
		now := time.Now()
		b := booking.ReconstructBooking(
			bookingID, &customerID, nil, booking.BranchMain, now,
			booking.StatusInProgress, "",
			[]booking.ServiceLine{{ServiceID: uuid.New(), UnitPriceCents: 3000, Quantity: 2}},
			nil, nil, 0,
			[]fulfillment.Instance{
				{ID: uuid.New(), BookingID: bookingID, Status: fulfillment.StatusServed, ServedBy: &served, Version: 2},
				{ID: uuid.New(), BookingID: bookingID, Status: fulfillment.StatusUnclaimed, Version: 1},
			},
			now, now,
		)

		s.mockCoordinator.EXPECT().
			WatchBooking(gomock.Any(), bookingID).
			Return(nil)
		s.mockCoordinator.EXPECT().
			SnapshotBooking(gomock.Any(), bookingID).
			Return(b, nil)

		req := httptest.NewRequest(http.MethodPost, "/bookings/"+bookingID.String()+"/watch", nil)
		req.Header.Set("Authorization", "Bearer test-token")
		w := httptest.NewRecorder()
		s.router.ServeHTTP(w, req)

		s.Equal(http.StatusOK, w.Code)

		var resp response.BookingProgressResponse
		s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
		s.Equal(bookingID, resp.BookingID)
		s.Equal(int64(6000), resp.SubtotalCents)
		s.Equal(1, resp.ServedCount)
		s.Equal(1, resp.RemainingCount)
		s.Len(resp.Instances, 2)
	})

	s.Run("missing booking", func() {
		s.mockCoordinator.EXPECT().
			WatchBooking(gomock.Any(), bookingID).
			Return(errs.ErrBookingNotFound)

		req := httptest.NewRequest(http.MethodPost, "/bookings/"+bookingID.String()+"/watch", nil)
		req.Header.Set("Authorization", "Bearer test-token")
		w := httptest.NewRecorder()
		s.router.ServeHTTP(w, req)

		s.Equal(http.StatusNotFound, w.Code)
	})
}
