//go:build unit

package api_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"salonflow/internal/domain/staff"
	"salonflow/internal/handler/api"
	"salonflow/internal/pkg/errs"
	"salonflow/internal/usecase/commands"
	"salonflow/internal/usecase/queries"
	commandsmock "salonflow/tests/mock/commands"
	queriesmock "salonflow/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockBookingCommands
	mockQueries  *queriesmock.MockBookingQueries
	handler      *api.BookingHandler
	staffID      uuid.UUID
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockBookingQueries(s.mockCtrl)
	s.handler = api.NewBookingHandler(s.mockCommands, s.mockQueries)
	s.staffID = uuid.New()

	// Mock authentication middleware for testing
	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
			return
		}
		c.Set("staff_id", s.staffID)
		c.Set("staff_role", staff.RoleStylist)
		c.Next()
	}

	s.router.POST("/bookings", authMiddleware, s.handler.CreateBooking)
	s.router.GET("/bookings", authMiddleware, s.handler.ListBookings)
	s.router.GET("/bookings/:id", authMiddleware, s.handler.GetBooking)
	s.router.DELETE("/bookings/:id", authMiddleware, s.handler.CancelBooking)
	s.router.POST("/bookings/:id/confirm", authMiddleware, s.handler.ConfirmBooking)
	s.router.POST("/bookings/:id/complete", authMiddleware, s.handler.CompleteBooking)
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

func (s *BookingHandlerTestSuite) request(method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		s.Require().NoError(json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Authorization", "Bearer test-token")
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *BookingHandlerTestSuite) validCreateBody() map[string]any {
	return map[string]any{
		"customer_id":    uuid.New().String(),
		"branch":         "main",
		"appointment_at": time.Now().Add(24 * time.Hour).Format(time.RFC3339),
		"services": []map[string]any{
			{"service_id": uuid.New().String(), "quantity": 2},
		},
	}
}

func (s *BookingHandlerTestSuite) TestCreateBooking() {
	s.Run("created", func() {
		id := uuid.New()
		s.mockCommands.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			Return(id, nil)

		w := s.request(http.MethodPost, "/bookings", s.validCreateBody())

		s.Equal(http.StatusCreated, w.Code)
		s.Contains(w.Body.String(), id.String())
	})

	s.Run("unknown service", func() {
		s.mockCommands.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			Return(uuid.Nil, errs.ErrServiceNotFound)

		w := s.request(http.MethodPost, "/bookings", s.validCreateBody())

		s.Equal(http.StatusNotFound, w.Code)
	})

	s.Run("used voucher", func() {
		s.mockCommands.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			Return(uuid.Nil, errs.ErrInvalidCode)

		body := s.validCreateBody()
		body["voucher_code"] = "BF1234"
		w := s.request(http.MethodPost, "/bookings", body)

		s.Equal(http.StatusBadRequest, w.Code)
	})

	s.Run("domain validation failure", func() {
		s.mockCommands.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			Return(uuid.Nil, errs.ErrDomainValidation)

		w := s.request(http.MethodPost, "/bookings", s.validCreateBody())

		s.Equal(http.StatusUnprocessableEntity, w.Code)
	})

	s.Run("malformed body", func() {
		req := httptest.NewRequest(http.MethodPost, "/bookings", bytes.NewBufferString("{"))
		req.Header.Set("Authorization", "Bearer test-token")
		w := httptest.NewRecorder()
		s.router.ServeHTTP(w, req)

		s.Equal(http.StatusBadRequest, w.Code)
	})

	s.Run("unauthenticated", func() {
		req := httptest.NewRequest(http.MethodPost, "/bookings", bytes.NewBufferString("{}"))
		w := httptest.NewRecorder()
		s.router.ServeHTTP(w, req)

		s.Equal(http.StatusUnauthorized, w.Code)
	})
}

func (s *BookingHandlerTestSuite) TestGetBooking() {
	s.Run("found", func() {
		id := uuid.New()
		view := &queries.BookingView{
			ID:     id,
			Branch: "main",
			Status: "pending",
			Totals: queries.TotalsView{SubtotalCents: 1500, GrandTotalCents: 1500},
		}
		s.mockQueries.EXPECT().
			GetByID(gomock.Any(), id).
			Return(view, nil)

		w := s.request(http.MethodGet, "/bookings/"+id.String(), nil)

		s.Equal(http.StatusOK, w.Code)
		s.Contains(w.Body.String(), id.String())
	})

	s.Run("missing", func() {
		id := uuid.New()
		s.mockQueries.EXPECT().
			GetByID(gomock.Any(), id).
			Return(nil, errs.ErrBookingNotFound)

		w := s.request(http.MethodGet, "/bookings/"+id.String(), nil)

		s.Equal(http.StatusNotFound, w.Code)
	})

	s.Run("malformed id", func() {
		w := s.request(http.MethodGet, "/bookings/not-a-uuid", nil)
		s.Equal(http.StatusBadRequest, w.Code)
	})
}

func (s *BookingHandlerTestSuite) TestListBookings() {
	s.Run("listed by branch", func() {
		s.mockQueries.EXPECT().
			ListByBranch(gomock.Any(), "annex", 0).
			Return([]*queries.BookingListItem{{ID: uuid.New(), Branch: "annex", Status: "pending"}}, nil)

		w := s.request(http.MethodGet, "/bookings?branch=annex", nil)

		s.Equal(http.StatusOK, w.Code)
		s.Contains(w.Body.String(), "annex")
	})

	s.Run("branch required", func() {
		w := s.request(http.MethodGet, "/bookings", nil)
		s.Equal(http.StatusBadRequest, w.Code)
	})
}

func (s *BookingHandlerTestSuite) TestCancelBooking() {
	s.Run("cancelled", func() {
		id := uuid.New()
		s.mockCommands.EXPECT().
			Cancel(gomock.Any(), id).
			Return(nil)

		w := s.request(http.MethodDelete, "/bookings/"+id.String(), nil)

		s.Equal(http.StatusNoContent, w.Code)
	})

	s.Run("blocked by served instance", func() {
		id := uuid.New()
		s.mockCommands.EXPECT().
			Cancel(gomock.Any(), id).
			Return(errs.ErrCancelBlocked)

		w := s.request(http.MethodDelete, "/bookings/"+id.String(), nil)

		s.Equal(http.StatusConflict, w.Code)
	})
}

func (s *BookingHandlerTestSuite) TestStatusTransitions() {
	s.Run("confirm", func() {
		id := uuid.New()
		s.mockCommands.EXPECT().
			Confirm(gomock.Any(), id).
			Return(nil)

		w := s.request(http.MethodPost, "/bookings/"+id.String()+"/confirm", nil)

		s.Equal(http.StatusNoContent, w.Code)
	})

	s.Run("complete with unserved instances", func() {
		id := uuid.New()
		s.mockCommands.EXPECT().
			Complete(gomock.Any(), id).
			Return(errs.ErrInvalidStatus)

		w := s.request(http.MethodPost, "/bookings/"+id.String()+"/complete", nil)

		s.Equal(http.StatusConflict, w.Code)
	})
}

var _ commands.BookingCommands = (*commandsmock.MockBookingCommands)(nil)
