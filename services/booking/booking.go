package booking

import (
	"context"
	"fmt"
	"time"

	"pawcare/models"
	"pawcare/services/pricing"
	"pawcare/utils"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

var validate = validator.New()

// Quote is the computed duration and total price for a candidate booking,
// before persistence.
type Quote struct {
	ServiceID     string          `json:"serviceId"`
	DurationUnits float64         `json:"durationUnits"`
	ServiceUnit   string          `json:"serviceUnit"` // "hour", "day" or "service"
	PricePerUnit  float64         `json:"pricePerUnit"`
	TotalPrice    float64         `json:"totalPrice"`
	Currency      models.Currency `json:"currency"`
	Display       string          `json:"display"` // formatted total, e.g. "31.00€"
}

// Persister is the slice of the API client the booking flows need.
type Persister interface {
	CreateBooking(ctx context.Context, payload models.BookingPayload) (*models.Booking, error)
	GetBooking(ctx context.Context, bookingID string) (*models.Booking, error)
	UpdateBookingStatus(ctx context.Context, bookingID, status string) (*models.Booking, error)
}

// BookingService composes the pricing catalog, the quote calculator and the
// status state machine with the persistence client.
type BookingService interface {
	Quote(req models.BookingRequest) (*Quote, error)
	Create(ctx context.Context, ownerID string, req models.BookingRequest) (*models.Booking, error)
	Fetch(ctx context.Context, bookingID string) (*models.Booking, error)
	UpdateStatus(ctx context.Context, b *models.Booking, requested BookingStatus) (*models.Booking, error)
}

// DefaultBookingService implements BookingService.
type DefaultBookingService struct {
	Catalog *pricing.Catalog
	API     Persister
}

// Quote validates the request and derives a price quote from the catalog.
// Validation failures are local: they block submission and never reach the
// transport layer.
func (s *DefaultBookingService) Quote(req models.BookingRequest) (*Quote, error) {
	if err := validate.Struct(req); err != nil {
		return nil, fmt.Errorf("invalid booking request: %w", err)
	}
	if len(req.Pets) == 0 {
		return nil, ErrNoPets
	}

	svc, err := s.Catalog.Lookup(req.ServiceID)
	if err != nil {
		return nil, err
	}

	duration, err := pricing.ComputeDuration(req.StartTime, req.EndTime, svc.PriceType, req.Days)
	if err != nil {
		return nil, err
	}
	if duration <= 0 {
		return nil, ErrInvalidDuration
	}

	total := pricing.ComputeTotal(svc.BasePrice, duration, len(req.Pets))
	return &Quote{
		ServiceID:     svc.ID,
		DurationUnits: duration,
		ServiceUnit:   serviceUnit(svc.PriceType),
		PricePerUnit:  svc.BasePrice,
		TotalPrice:    total,
		Currency:      svc.Currency,
		Display:       pricing.FormatPrice(total, svc.Currency),
	}, nil
}

// Create quotes the request, builds a PENDING booking with the currency
// snapshotted from the service, and persists it through the API client.
func (s *DefaultBookingService) Create(ctx context.Context, ownerID string, req models.BookingRequest) (*models.Booking, error) {
	quote, err := s.Quote(req)
	if err != nil {
		return nil, err
	}

	payload := models.BookingPayload{
		SitterID:         req.SitterID,
		Service:          req.ServiceID,
		Pets:             req.Pets,
		Date:             req.Date,
		StartTime:        optional(req.StartTime),
		EndTime:          optional(req.EndTime),
		Duration:         quote.DurationUnits,
		ServiceUnit:      quote.ServiceUnit,
		Price:            quote.TotalPrice,
		SpecialRequests:  req.SpecialRequests,
		EmergencyContact: req.EmergencyContact,
	}

	created, err := s.API.CreateBooking(ctx, payload)
	if err != nil {
		return nil, fmt.Errorf("failed to persist booking: %w", err)
	}

	if created.ID == "" {
		created.ID = uuid.New().String()
	}
	if created.OwnerID == "" {
		created.OwnerID = ownerID
	}
	if created.CreatedAt.IsZero() {
		created.CreatedAt = time.Now()
	}

	utils.GetLogger().Info("Booking created",
		zap.String("bookingID", created.ID),
		zap.String("serviceID", quote.ServiceID),
		zap.Float64("total", quote.TotalPrice),
	)
	return created, nil
}

// Fetch retrieves one booking by id. An unknown id fails with
// ErrBookingNotFound.
func (s *DefaultBookingService) Fetch(ctx context.Context, bookingID string) (*models.Booking, error) {
	return s.API.GetBooking(ctx, bookingID)
}

// UpdateStatus validates the requested transition against the state machine
// and persists the new status. A booking in a terminal status is immutable.
func (s *DefaultBookingService) UpdateStatus(ctx context.Context, b *models.Booking, requested BookingStatus) (*models.Booking, error) {
	current, err := ParseBookingStatus(b.Status)
	if err != nil {
		return nil, fmt.Errorf("corrupt booking status: %w", err)
	}

	next, err := Transition(current, requested)
	if err != nil {
		return nil, err
	}

	updated, err := s.API.UpdateBookingStatus(ctx, b.ID, next.String())
	if err != nil {
		return nil, fmt.Errorf("failed to persist status change: %w", err)
	}

	utils.GetLogger().Info("Booking status updated",
		zap.String("bookingID", b.ID),
		zap.String("from", current.String()),
		zap.String("to", next.String()),
	)
	return updated, nil
}

func serviceUnit(pt models.PriceType) string {
	switch pt {
	case models.PriceTypeHourly:
		return "hour"
	case models.PriceTypeDaily:
		return "day"
	default:
		return "service"
	}
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
