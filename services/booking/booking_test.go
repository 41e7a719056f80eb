package booking

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"pawspa/models"

	"github.com/google/uuid"
)

type fakeAppointmentRepo struct {
	appts map[string]*models.Appointment
}

func (r *fakeAppointmentRepo) Create(ctx context.Context, appt models.Appointment) (string, error) {
	appt.ID = uuid.NewString()
	r.appts[appt.ID] = &appt
	return appt.ID, nil
}

func (r *fakeAppointmentRepo) GetByID(ctx context.Context, id string) (*models.Appointment, error) {
	a, ok := r.appts[id]
	if !ok {
		return nil, fmt.Errorf("no appointment %s", id)
	}
	copied := *a
	return &copied, nil
}

func (r *fakeAppointmentRepo) GetByDate(ctx context.Context, date string) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, a := range r.appts {
		if a.Date == date {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (r *fakeAppointmentRepo) GetByDateRange(ctx context.Context, from, to string) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, a := range r.appts {
		if a.Date >= from && a.Date <= to {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (r *fakeAppointmentRepo) GetByUser(ctx context.Context, userID string) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, a := range r.appts {
		if a.UserID == userID {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (r *fakeAppointmentRepo) GetByDateAndStatuses(ctx context.Context, date string, statuses []models.AppointmentStatus) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, a := range r.appts {
		if a.Date != date {
			continue
		}
		for _, s := range statuses {
			if a.Status == s {
				out = append(out, *a)
				break
			}
		}
	}
	return out, nil
}

func (r *fakeAppointmentRepo) UpdateStatus(ctx context.Context, id string, status models.AppointmentStatus) error {
	a, ok := r.appts[id]
	if !ok {
		return fmt.Errorf("no appointment %s", id)
	}
	a.Status = status
	return nil
}

type fakeBlockedSlotRepo struct {
	slots []models.BlockedSlot
}

func (r *fakeBlockedSlotRepo) Create(ctx context.Context, slot models.BlockedSlot) (string, error) {
	slot.ID = uuid.NewString()
	r.slots = append(r.slots, slot)
	return slot.ID, nil
}

func (r *fakeBlockedSlotRepo) DeleteByID(ctx context.Context, id string) error { return nil }

func (r *fakeBlockedSlotRepo) GetByID(ctx context.Context, id string) (*models.BlockedSlot, error) {
	return nil, fmt.Errorf("no blocked slot %s", id)
}

func (r *fakeBlockedSlotRepo) GetByDate(ctx context.Context, date string) ([]models.BlockedSlot, error) {
	var out []models.BlockedSlot
	for _, b := range r.slots {
		if b.Date == date {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r *fakeBlockedSlotRepo) GetByDateRange(ctx context.Context, from, to string) ([]models.BlockedSlot, error) {
	var out []models.BlockedSlot
	for _, b := range r.slots {
		if b.Date >= from && b.Date <= to {
			out = append(out, b)
		}
	}
	return out, nil
}

type fakePetRepo struct {
	pets map[string]*models.Pet
}

func (r *fakePetRepo) Create(ctx context.Context, pet models.Pet) (string, error) {
	pet.ID = uuid.NewString()
	r.pets[pet.ID] = &pet
	return pet.ID, nil
}

func (r *fakePetRepo) GetByID(ctx context.Context, id string) (*models.Pet, error) {
	p, ok := r.pets[id]
	if !ok {
		return nil, fmt.Errorf("no pet %s", id)
	}
	copied := *p
	return &copied, nil
}

func (r *fakePetRepo) GetByOwner(ctx context.Context, ownerID string) ([]models.Pet, error) {
	var out []models.Pet
	for _, p := range r.pets {
		if p.OwnerID == ownerID {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *fakePetRepo) Update(ctx context.Context, id string, pet models.Pet) error { return nil }

func (r *fakePetRepo) SetPhotoURL(ctx context.Context, id, url string) error { return nil }

func (r *fakePetRepo) DeleteByID(ctx context.Context, ownerID, id string) error { return nil }

type fakeServiceRepo struct {
	services map[string]*models.GroomService
}

func (r *fakeServiceRepo) Create(ctx context.Context, svc models.GroomService) (string, error) {
	svc.ID = uuid.NewString()
	r.services[svc.ID] = &svc
	return svc.ID, nil
}

func (r *fakeServiceRepo) GetByID(ctx context.Context, id string) (*models.GroomService, error) {
	s, ok := r.services[id]
	if !ok {
		return nil, fmt.Errorf("no service %s", id)
	}
	copied := *s
	return &copied, nil
}

func (r *fakeServiceRepo) GetAll(ctx context.Context, activeOnly bool) ([]models.GroomService, error) {
	var out []models.GroomService
	for _, s := range r.services {
		if !activeOnly || s.Active {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (r *fakeServiceRepo) Update(ctx context.Context, id string, svc models.GroomService) error {
	return nil
}

func (r *fakeServiceRepo) DeleteByID(ctx context.Context, id string) error { return nil }

type fakeSettingsRepo struct {
	schedule     models.WeeklySchedule
	slotDuration int
}

func (r *fakeSettingsRepo) GetBusinessHours(ctx context.Context) (models.WeeklySchedule, error) {
	return r.schedule, nil
}

func (r *fakeSettingsRepo) SetBusinessHours(ctx context.Context, hours models.BusinessHours) error {
	r.schedule = hours.Weekly()
	return nil
}

func (r *fakeSettingsRepo) GetSlotDuration(ctx context.Context) (int, error) {
	return r.slotDuration, nil
}

func (r *fakeSettingsRepo) SetSlotDuration(ctx context.Context, minutes int) error {
	r.slotDuration = minutes
	return nil
}

type fakeSubscriptionRepo struct {
	subs map[string]*models.Subscription
}

func (r *fakeSubscriptionRepo) Create(ctx context.Context, sub models.Subscription) (string, error) {
	sub.ID = uuid.NewString()
	r.subs[sub.ID] = &sub
	return sub.ID, nil
}

func (r *fakeSubscriptionRepo) GetByID(ctx context.Context, id string) (*models.Subscription, error) {
	s, ok := r.subs[id]
	if !ok {
		return nil, fmt.Errorf("no subscription %s", id)
	}
	copied := *s
	return &copied, nil
}

func (r *fakeSubscriptionRepo) GetByUser(ctx context.Context, userID string) ([]models.Subscription, error) {
	var out []models.Subscription
	for _, s := range r.subs {
		if s.UserID == userID {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (r *fakeSubscriptionRepo) GetAll(ctx context.Context) ([]models.Subscription, error) {
	var out []models.Subscription
	for _, s := range r.subs {
		out = append(out, *s)
	}
	return out, nil
}

func (r *fakeSubscriptionRepo) UpdateStatus(ctx context.Context, id string, status models.SubscriptionStatus) error {
	s, ok := r.subs[id]
	if !ok {
		return fmt.Errorf("no subscription %s", id)
	}
	s.Status = status
	return nil
}

// newTestService wires a booking service over in-memory repos with Tuesday
// hours 09:00-17:00 at 60 minute slots. 2026-03-03 is a Tuesday.
func newTestService() (*DefaultBookingService, string, string) {
	pets := &fakePetRepo{pets: make(map[string]*models.Pet)}
	services := &fakeServiceRepo{services: make(map[string]*models.GroomService)}

	petID, _ := pets.Create(context.Background(), models.Pet{OwnerID: "client-1", Name: "Rex", Species: "dog"})
	svcID, _ := services.Create(context.Background(), models.GroomService{Name: "Full Groom", Active: true})

	return &DefaultBookingService{
		Appointments: &fakeAppointmentRepo{appts: make(map[string]*models.Appointment)},
		BlockedSlots: &fakeBlockedSlotRepo{},
		Pets:         pets,
		Services:     services,
		Settings: &fakeSettingsRepo{
			schedule: models.WeeklySchedule{
				2: {Enabled: true, Start: "09:00", End: "17:00"},
			},
			slotDuration: 60,
		},
		Subscriptions: &fakeSubscriptionRepo{subs: make(map[string]*models.Subscription)},
	}, petID, svcID
}

func TestBookAppointment(t *testing.T) {
	svc, petID, svcID := newTestService()
	ctx := context.Background()

	appt, err := svc.BookAppointment(ctx, "client-1", models.BookAppointmentRequest{
		PetID: petID, ServiceID: svcID, Date: "2026-03-03", Time: "10:00:00",
	})
	if err != nil {
		t.Fatalf("BookAppointment: %v", err)
	}
	if appt.Status != models.AppointmentPending {
		t.Errorf("status = %s, want pending", appt.Status)
	}
	if appt.Time != "10:00" {
		t.Errorf("time = %q, want normalized 10:00", appt.Time)
	}

	// Same slot again: the first booking occupies it.
	_, err = svc.BookAppointment(ctx, "client-1", models.BookAppointmentRequest{
		PetID: petID, ServiceID: svcID, Date: "2026-03-03", Time: "10:00",
	})
	if err == nil || !strings.Contains(err.Error(), "no longer available") {
		t.Fatalf("expected double-booking rejection, got %v", err)
	}
}

func TestBookAppointmentOutsideBusinessHours(t *testing.T) {
	svc, petID, svcID := newTestService()

	cases := []struct {
		date, time string
	}{
		{"2026-03-03", "08:00"}, // before opening
		{"2026-03-03", "17:00"}, // end is exclusive
		{"2026-03-02", "10:00"}, // Monday is not configured
	}
	for _, c := range cases {
		_, err := svc.BookAppointment(context.Background(), "client-1", models.BookAppointmentRequest{
			PetID: petID, ServiceID: svcID, Date: c.date, Time: c.time,
		})
		if err == nil || !strings.Contains(err.Error(), "outside business hours") {
			t.Errorf("%s %s: expected rejection, got %v", c.date, c.time, err)
		}
	}
}

func TestBookAppointmentBlockedSlot(t *testing.T) {
	svc, petID, svcID := newTestService()
	ctx := context.Background()

	blocks := svc.BlockedSlots.(*fakeBlockedSlotRepo)
	blocks.Create(ctx, models.BlockedSlot{Date: "2026-03-03", StartTime: "10:00:00", EndTime: "11:00:00"})

	_, err := svc.BookAppointment(ctx, "client-1", models.BookAppointmentRequest{
		PetID: petID, ServiceID: svcID, Date: "2026-03-03", Time: "10:00",
	})
	if err == nil || !strings.Contains(err.Error(), "no longer available") {
		t.Fatalf("expected blocked-slot rejection, got %v", err)
	}

	// The block only covers its own start label, not the rest of its range.
	if _, err := svc.BookAppointment(ctx, "client-1", models.BookAppointmentRequest{
		PetID: petID, ServiceID: svcID, Date: "2026-03-03", Time: "11:00",
	}); err != nil {
		t.Fatalf("11:00 should be bookable: %v", err)
	}
}

func TestBookAppointmentOwnershipAndCatalog(t *testing.T) {
	svc, petID, svcID := newTestService()
	ctx := context.Background()

	if _, err := svc.BookAppointment(ctx, "client-2", models.BookAppointmentRequest{
		PetID: petID, ServiceID: svcID, Date: "2026-03-03", Time: "10:00",
	}); err == nil {
		t.Fatal("booking someone else's pet must be rejected")
	}

	services := svc.Services.(*fakeServiceRepo)
	retiredID, _ := services.Create(ctx, models.GroomService{Name: "Old Package", Active: false})
	if _, err := svc.BookAppointment(ctx, "client-1", models.BookAppointmentRequest{
		PetID: petID, ServiceID: retiredID, Date: "2026-03-03", Time: "10:00",
	}); err == nil || !strings.Contains(err.Error(), "not currently offered") {
		t.Fatalf("retired service must be rejected, got %v", err)
	}
}

func TestCancelAppointment(t *testing.T) {
	svc, petID, svcID := newTestService()
	ctx := context.Background()

	appt, err := svc.BookAppointment(ctx, "client-1", models.BookAppointmentRequest{
		PetID: petID, ServiceID: svcID, Date: "2026-03-03", Time: "10:00",
	})
	if err != nil {
		t.Fatalf("BookAppointment: %v", err)
	}

	if err := svc.CancelAppointment(ctx, "client-2", appt.ID); err == nil {
		t.Fatal("cancelling someone else's appointment must be rejected")
	}

	if err := svc.CancelAppointment(ctx, "client-1", appt.ID); err != nil {
		t.Fatalf("CancelAppointment: %v", err)
	}
	got, _ := svc.Appointments.GetByID(ctx, appt.ID)
	if got.Status != models.AppointmentCancelled {
		t.Fatalf("status = %s, want cancelled", got.Status)
	}

	// Completed appointments cannot be cancelled.
	svc.Appointments.UpdateStatus(ctx, appt.ID, models.AppointmentConfirmed)
	svc.Appointments.UpdateStatus(ctx, appt.ID, models.AppointmentCompleted)
	if err := svc.CancelAppointment(ctx, "client-1", appt.ID); err == nil {
		t.Fatal("cancelling a completed appointment must be rejected")
	}
}

func TestSubscriptionLifecycle(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	sub, err := svc.Subscribe(ctx, "client-1", models.SubscribeRequest{PlanName: "Monthly Bath", Price: 49.99})
	if err != nil {
		t.Fatalf("Subscribe: %v", err)
	}
	if sub.Status != models.SubscriptionActive {
		t.Errorf("status = %s, want active", sub.Status)
	}

	subs, err := svc.ListSubscriptions(ctx, "client-1")
	if err != nil || len(subs) != 1 {
		t.Fatalf("ListSubscriptions = %v, %v", subs, err)
	}

	if _, err := svc.Subscribe(ctx, "client-2", models.SubscribeRequest{PlanName: "Weekly Wash", Price: 89.99}); err != nil {
		t.Fatalf("Subscribe: %v", err)
	}
	all, err := svc.ListAllSubscriptions(ctx)
	if err != nil || len(all) != 2 {
		t.Fatalf("ListAllSubscriptions = %v, %v; want both clients' plans", all, err)
	}

	if err := svc.CancelSubscription(ctx, "client-2", sub.ID); err == nil {
		t.Fatal("cancelling someone else's subscription must be rejected")
	}
	if err := svc.CancelSubscription(ctx, "client-1", sub.ID); err != nil {
		t.Fatalf("CancelSubscription: %v", err)
	}
	if err := svc.CancelSubscription(ctx, "client-1", sub.ID); err == nil {
		t.Fatal("double cancel must be rejected")
	}
}
