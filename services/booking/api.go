package booking

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"pawcare/client"
	"pawcare/models"
)

// APIPersister persists bookings through the resilient API client.
type APIPersister struct {
	Client *client.Client
}

var _ Persister = (*APIPersister)(nil)

func (p *APIPersister) CreateBooking(ctx context.Context, payload models.BookingPayload) (*models.Booking, error) {
	resp, err := p.Client.Post(ctx, "/api/bookings", payload)
	if err != nil {
		return nil, err
	}
	var created models.Booking
	if err := resp.DecodeJSON(&created); err != nil {
		return nil, fmt.Errorf("failed to decode booking response: %w", err)
	}
	return &created, nil
}

func (p *APIPersister) GetBooking(ctx context.Context, bookingID string) (*models.Booking, error) {
	resp, err := p.Client.Get(ctx, "/api/bookings/"+bookingID)
	if err != nil {
		var serverErr *client.ServerError
		if errors.As(err, &serverErr) && serverErr.Status == http.StatusNotFound {
			return nil, fmt.Errorf("booking %q: %w", bookingID, ErrBookingNotFound)
		}
		return nil, err
	}
	var b models.Booking
	if err := resp.DecodeJSON(&b); err != nil {
		return nil, fmt.Errorf("failed to decode booking response: %w", err)
	}
	return &b, nil
}

func (p *APIPersister) UpdateBookingStatus(ctx context.Context, bookingID, status string) (*models.Booking, error) {
	resp, err := p.Client.Patch(ctx, "/api/bookings/"+bookingID+"/status", map[string]string{
		"status": status,
	})
	if err != nil {
		return nil, err
	}
	var updated models.Booking
	if err := resp.DecodeJSON(&updated); err != nil {
		return nil, fmt.Errorf("failed to decode booking response: %w", err)
	}
	return &updated, nil
}
