package booking

import (
	"context"
	"errors"
	"testing"

	"pawcare/models"
	"pawcare/services/pricing"
)

type fakePersister struct {
	createdPayload *models.BookingPayload
	updatedID      string
	updatedStatus  string
	err            error
}

func (f *fakePersister) CreateBooking(ctx context.Context, payload models.BookingPayload) (*models.Booking, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.createdPayload = &payload
	petIDs := make([]string, 0, len(payload.Pets))
	for _, p := range payload.Pets {
		petIDs = append(petIDs, p.ID)
	}
	return &models.Booking{
		ID:            "bk-1",
		SitterID:      payload.SitterID,
		ServiceID:     payload.Service,
		Date:          payload.Date,
		DurationUnits: payload.Duration,
		PetIDs:        petIDs,
		TotalPrice:    payload.Price,
		Status:        StatusPending.String(),
	}, nil
}

func (f *fakePersister) GetBooking(ctx context.Context, bookingID string) (*models.Booking, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &models.Booking{ID: bookingID, Status: StatusPending.String()}, nil
}

func (f *fakePersister) UpdateBookingStatus(ctx context.Context, bookingID, status string) (*models.Booking, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.updatedID = bookingID
	f.updatedStatus = status
	return &models.Booking{ID: bookingID, Status: status}, nil
}

func testCatalog() *pricing.Catalog {
	return pricing.NewCatalog([]models.Service{
		{
			ID: "svc-walk", Name: "Dog Walking", BasePrice: 15.00,
			Currency: models.CurrencyEUR, PriceType: models.PriceTypeHourly,
			CommissionPercent: 10, Active: true,
		},
		{
			ID: "svc-sit", Name: "Overnight Sitting", BasePrice: 35.00,
			Currency: models.CurrencyEUR, PriceType: models.PriceTypeDaily,
			CommissionPercent: 12, Active: true,
		},
	})
}

func validRequest() models.BookingRequest {
	return models.BookingRequest{
		SitterID:  "sitter-1",
		ServiceID: "svc-walk",
		Pets:      []models.Pet{{ID: "pet-1", Name: "Rex", Type: "dog"}, {ID: "pet-2", Name: "Mia", Type: "cat"}},
		Date:      "2026-09-14",
		StartTime: "09:00",
		EndTime:   "11:00",
	}
}

func TestQuote(t *testing.T) {
	svc := &DefaultBookingService{Catalog: testCatalog()}

	t.Run("hourly happy path", func(t *testing.T) {
		quote, err := svc.Quote(validRequest())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if quote.DurationUnits != 2.0 {
			t.Fatalf("expected 2 hours, got %v", quote.DurationUnits)
		}
		// 15.00 * 2h * 2 pets
		if quote.TotalPrice != 60.00 {
			t.Fatalf("expected 60.00, got %v", quote.TotalPrice)
		}
		if quote.Currency != models.CurrencyEUR {
			t.Fatalf("expected EUR, got %s", quote.Currency)
		}
		if quote.ServiceUnit != "hour" {
			t.Fatalf("expected hour, got %q", quote.ServiceUnit)
		}
		if quote.Display != "60.00€" {
			t.Fatalf("expected 60.00€, got %q", quote.Display)
		}
	})

	t.Run("daily uses day count", func(t *testing.T) {
		req := validRequest()
		req.ServiceID = "svc-sit"
		req.StartTime, req.EndTime = "", ""
		req.Days = 3
		quote, err := svc.Quote(req)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		// 35.00 * 3d * 2 pets
		if quote.TotalPrice != 210.00 {
			t.Fatalf("expected 210.00, got %v", quote.TotalPrice)
		}
	})

	t.Run("unknown service is a hard error", func(t *testing.T) {
		req := validRequest()
		req.ServiceID = "svc-nope"
		if _, err := svc.Quote(req); !errors.Is(err, pricing.ErrServiceNotFound) {
			t.Fatalf("expected ErrServiceNotFound, got %v", err)
		}
	})

	t.Run("reversed time range blocks submission", func(t *testing.T) {
		req := validRequest()
		req.StartTime, req.EndTime = "11:00", "09:00"
		if _, err := svc.Quote(req); !errors.Is(err, pricing.ErrInvalidTimeRange) {
			t.Fatalf("expected ErrInvalidTimeRange, got %v", err)
		}
	})

	t.Run("missing pets fails validation", func(t *testing.T) {
		req := validRequest()
		req.Pets = nil
		if _, err := svc.Quote(req); err == nil {
			t.Fatal("expected validation error")
		}
	})
}

func TestCreate(t *testing.T) {
	t.Run("persists a pending booking", func(t *testing.T) {
		api := &fakePersister{}
		svc := &DefaultBookingService{Catalog: testCatalog(), API: api}

		created, err := svc.Create(context.Background(), "owner-1", validRequest())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created.Status != StatusPending.String() {
			t.Fatalf("expected PENDING, got %s", created.Status)
		}
		if api.createdPayload == nil {
			t.Fatal("expected a persisted payload")
		}
		if api.createdPayload.Price != 60.00 {
			t.Fatalf("expected payload price 60.00, got %v", api.createdPayload.Price)
		}
		if api.createdPayload.StartTime == nil || *api.createdPayload.StartTime != "09:00" {
			t.Fatalf("expected startTime 09:00, got %v", api.createdPayload.StartTime)
		}
		if created.OwnerID != "owner-1" {
			t.Fatalf("expected owner-1, got %s", created.OwnerID)
		}
	})

	t.Run("daily booking sends null times", func(t *testing.T) {
		api := &fakePersister{}
		svc := &DefaultBookingService{Catalog: testCatalog(), API: api}

		req := validRequest()
		req.ServiceID = "svc-sit"
		req.StartTime, req.EndTime = "", ""
		if _, err := svc.Create(context.Background(), "owner-1", req); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if api.createdPayload.StartTime != nil || api.createdPayload.EndTime != nil {
			t.Fatal("expected null start/end times for a daily booking")
		}
	})

	t.Run("validation failure never reaches the transport", func(t *testing.T) {
		api := &fakePersister{err: errors.New("transport must not be called")}
		svc := &DefaultBookingService{Catalog: testCatalog(), API: api}

		req := validRequest()
		req.StartTime, req.EndTime = "11:00", "09:00"
		if _, err := svc.Create(context.Background(), "owner-1", req); !errors.Is(err, pricing.ErrInvalidTimeRange) {
			t.Fatalf("expected ErrInvalidTimeRange, got %v", err)
		}
		if api.createdPayload != nil {
			t.Fatal("persister was called despite a local validation failure")
		}
	})

	t.Run("persistence failure surfaces", func(t *testing.T) {
		api := &fakePersister{err: errors.New("boom")}
		svc := &DefaultBookingService{Catalog: testCatalog(), API: api}
		if _, err := svc.Create(context.Background(), "owner-1", validRequest()); err == nil {
			t.Fatal("expected error")
		}
	})
}

func TestFetch(t *testing.T) {
	t.Run("returns the booking", func(t *testing.T) {
		svc := &DefaultBookingService{Catalog: testCatalog(), API: &fakePersister{}}
		b, err := svc.Fetch(context.Background(), "bk-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if b.ID != "bk-1" {
			t.Fatalf("expected bk-1, got %s", b.ID)
		}
	})

	t.Run("unknown id surfaces ErrBookingNotFound", func(t *testing.T) {
		svc := &DefaultBookingService{Catalog: testCatalog(), API: &fakePersister{err: ErrBookingNotFound}}
		if _, err := svc.Fetch(context.Background(), "bk-nope"); !errors.Is(err, ErrBookingNotFound) {
			t.Fatalf("expected ErrBookingNotFound, got %v", err)
		}
	})
}

func TestUpdateStatus(t *testing.T) {
	t.Run("valid transition persists", func(t *testing.T) {
		api := &fakePersister{}
		svc := &DefaultBookingService{Catalog: testCatalog(), API: api}

		b := &models.Booking{ID: "bk-1", Status: StatusPending.String()}
		updated, err := svc.UpdateStatus(context.Background(), b, StatusAccepted)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if updated.Status != StatusAccepted.String() {
			t.Fatalf("expected ACCEPTED, got %s", updated.Status)
		}
		if api.updatedID != "bk-1" || api.updatedStatus != "ACCEPTED" {
			t.Fatalf("unexpected persist call: %s %s", api.updatedID, api.updatedStatus)
		}
	})

	t.Run("terminal booking is immutable", func(t *testing.T) {
		api := &fakePersister{}
		svc := &DefaultBookingService{Catalog: testCatalog(), API: api}

		b := &models.Booking{ID: "bk-1", Status: StatusCompleted.String()}
		if _, err := svc.UpdateStatus(context.Background(), b, StatusAccepted); !errors.Is(err, ErrInvalidTransition) {
			t.Fatalf("expected ErrInvalidTransition, got %v", err)
		}
		if api.updatedID != "" {
			t.Fatal("persister must not be called for an invalid transition")
		}
	})

	t.Run("corrupt stored status is rejected at the boundary", func(t *testing.T) {
		svc := &DefaultBookingService{Catalog: testCatalog(), API: &fakePersister{}}
		b := &models.Booking{ID: "bk-1", Status: "Unknown"}
		if _, err := svc.UpdateStatus(context.Background(), b, StatusAccepted); err == nil {
			t.Fatal("expected error for corrupt status")
		}
	})
}
