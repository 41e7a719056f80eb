package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"pawspa/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// stubCalendarService returns canned values so handler tests only exercise
// routing, binding, and status mapping.
type stubCalendarService struct {
	transitionErr error
}

func (s *stubCalendarService) DayView(ctx context.Context, date string) (*models.DayViewResponse, error) {
	if date == "bad" {
		return nil, fmt.Errorf("invalid date %q", date)
	}
	return &models.DayViewResponse{
		Times: []string{"09:00", "10:00"},
		Day: models.CalendarDay{
			Date: date,
			Slots: []models.DerivedSlot{
				{Time: "09:00", Available: true, Appointments: []models.Appointment{}},
				{Time: "10:00", Available: false, Appointments: []models.Appointment{{ID: "a1"}}},
			},
			WithinSchedule: []bool{true, true},
		},
	}, nil
}

func (s *stubCalendarService) WeekView(ctx context.Context, weekStart string) (*models.WeekViewResponse, error) {
	return &models.WeekViewResponse{Times: []string{"09:00"}, Days: make([]models.CalendarDay, 7)}, nil
}

func (s *stubCalendarService) BlockSlot(ctx context.Context, req models.BlockSlotRequest) (*models.BlockedSlot, error) {
	return &models.BlockedSlot{ID: "b1", Date: req.Date, StartTime: req.Time + ":00"}, nil
}

func (s *stubCalendarService) UnblockSlot(ctx context.Context, id string) error { return nil }

func (s *stubCalendarService) TransitionStatus(ctx context.Context, appointmentID string, newStatus models.AppointmentStatus) (*models.Appointment, error) {
	if s.transitionErr != nil {
		return nil, s.transitionErr
	}
	return &models.Appointment{ID: appointmentID, Status: newStatus}, nil
}

func newCalendarRouter(svc *stubCalendarService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewCalendarHandler(svc, zap.NewNop())

	r := gin.New()
	r.GET("/api/admin/calendar/day/:date", h.DayViewHandler)
	r.GET("/api/admin/calendar/week/:date", h.WeekViewHandler)
	r.POST("/api/admin/calendar/blocked-slots", h.BlockSlotHandler)
	r.DELETE("/api/admin/calendar/blocked-slots/:id", h.UnblockSlotHandler)
	r.PUT("/api/admin/appointments/:id/status", h.UpdateAppointmentStatusHandler)
	return r
}

func TestDayViewHandler(t *testing.T) {
	r := newCalendarRouter(&stubCalendarService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/admin/calendar/day/2026-03-03", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}
	var view models.DayViewResponse
	if err := json.Unmarshal(w.Body.Bytes(), &view); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if len(view.Times) != 2 || view.Day.Date != "2026-03-03" {
		t.Fatalf("unexpected view: %+v", view)
	}
}

func TestDayViewHandlerError(t *testing.T) {
	r := newCalendarRouter(&stubCalendarService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/admin/calendar/day/bad", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", w.Code)
	}
}

func TestBlockSlotHandler(t *testing.T) {
	r := newCalendarRouter(&stubCalendarService{})

	body := `{"date":"2026-03-03","time":"10:00","reason":"maintenance"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/admin/calendar/blocked-slots", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}
	var slot models.BlockedSlot
	if err := json.Unmarshal(w.Body.Bytes(), &slot); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if slot.StartTime != "10:00:00" {
		t.Fatalf("start time = %q", slot.StartTime)
	}
}

func TestBlockSlotHandlerRejectsMissingFields(t *testing.T) {
	r := newCalendarRouter(&stubCalendarService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/admin/calendar/blocked-slots", strings.NewReader(`{"date":"2026-03-03"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestUpdateAppointmentStatusHandler(t *testing.T) {
	r := newCalendarRouter(&stubCalendarService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/admin/appointments/a1/status", strings.NewReader(`{"status":"confirmed"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}
}

func TestUpdateAppointmentStatusHandlerRejected(t *testing.T) {
	r := newCalendarRouter(&stubCalendarService{
		transitionErr: fmt.Errorf("cannot transition appointment from completed to cancelled"),
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/admin/appointments/a1/status", strings.NewReader(`{"status":"cancelled"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", w.Code)
	}
}
