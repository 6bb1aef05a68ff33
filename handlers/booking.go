package handlers

import (
	"net/http"
	"time"

	"pawcare/models"
	"pawcare/services/booking"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CreateBookingHandler accepts a booking payload and stores it in PENDING.
func CreateBookingHandler(c *gin.Context) {
	var payload models.BookingPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	svc, ok := store.serviceByID(payload.Service)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "service not found"})
		return
	}
	if payload.Duration <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "booking duration is invalid"})
		return
	}
	if len(payload.Pets) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "at least one pet is required"})
		return
	}

	petIDs := make([]string, 0, len(payload.Pets))
	for _, pet := range payload.Pets {
		petIDs = append(petIDs, pet.ID)
	}

	b := models.Booking{
		ID:               uuid.New().String(),
		OwnerID:          c.GetString("userID"),
		SitterID:         payload.SitterID,
		ServiceID:        payload.Service,
		Date:             payload.Date,
		DurationUnits:    payload.Duration,
		PetIDs:           petIDs,
		PricePerUnit:     svc.BasePrice,
		TotalPrice:       payload.Price,
		Currency:         svc.Currency,
		Status:           booking.StatusPending.String(),
		SpecialRequests:  payload.SpecialRequests,
		EmergencyContact: payload.EmergencyContact,
		CreatedAt:        time.Now(),
	}
	if payload.StartTime != nil {
		b.StartTime = *payload.StartTime
	}
	if payload.EndTime != nil {
		b.EndTime = *payload.EndTime
	}

	store.saveBooking(b)
	c.JSON(http.StatusCreated, b)
}

// GetBookingHandler returns one booking by id.
func GetBookingHandler(c *gin.Context) {
	b, ok := store.bookingByID(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "booking not found"})
		return
	}
	c.JSON(http.StatusOK, b)
}

// UpdateBookingStatusHandler applies a status change, enforcing the same
// state machine the client validates against.
func UpdateBookingStatusHandler(c *gin.Context) {
	var input struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	b, ok := store.bookingByID(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "booking not found"})
		return
	}

	requested, err := booking.ParseBookingStatus(input.Status)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	current, err := booking.ParseBookingStatus(b.Status)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "stored booking status is corrupt"})
		return
	}

	next, err := booking.Transition(current, requested)
	if err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	}

	b.Status = next.String()
	store.saveBooking(b)
	c.JSON(http.StatusOK, b)
}
