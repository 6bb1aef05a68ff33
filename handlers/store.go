package handlers

import (
	"sync"
	"time"

	"pawcare/models"

	"golang.org/x/crypto/bcrypt"
)

// The stub backend keeps everything in memory: it exists so the client can
// be exercised end to end locally against the same JSON boundary the real
// backend exposes.

type stubUser struct {
	ID           string
	Email        string
	PasswordHash string
}

type memoryStore struct {
	mu            sync.Mutex
	users         map[string]stubUser  // keyed by email
	refreshTokens map[string]string    // refresh token -> user id
	bookings      map[string]models.Booking
	services      map[string]models.Service
}

var store = &memoryStore{
	users:         make(map[string]stubUser),
	refreshTokens: make(map[string]string),
	bookings:      make(map[string]models.Booking),
	services:      make(map[string]models.Service),
}

// SeedDemoData loads the demo owner account and the mock service catalog.
func SeedDemoData() {
	hash, _ := bcrypt.GenerateFromPassword([]byte("Password1!"), bcrypt.DefaultCost)
	now := time.Now()

	store.mu.Lock()
	defer store.mu.Unlock()

	store.users["owner@pawcare.dev"] = stubUser{
		ID:           "user-demo-owner",
		Email:        "owner@pawcare.dev",
		PasswordHash: string(hash),
	}

	for _, svc := range []models.Service{
		{
			ID: "svc-dog-walking", Name: "Dog Walking", Category: "walking",
			BasePrice: 15.00, Currency: models.CurrencyEUR, PriceType: models.PriceTypeHourly,
			CommissionPercent: 10, Active: true, AverageMarketPrice: 16.50,
			PopularityScore: 92, LastUpdated: now,
		},
		{
			ID: "svc-overnight-sitting", Name: "Overnight Sitting", Category: "sitting",
			BasePrice: 35.00, Currency: models.CurrencyEUR, PriceType: models.PriceTypeDaily,
			CommissionPercent: 12, Active: true, AverageMarketPrice: 39.20,
			PopularityScore: 87, LastUpdated: now,
		},
		{
			ID: "svc-grooming", Name: "Full Grooming", Category: "grooming",
			BasePrice: 85000, Currency: models.CurrencyCOP, PriceType: models.PriceTypeFixed,
			CommissionPercent: 15, Active: true, AverageMarketPrice: 97750,
			PopularityScore: 64, LastUpdated: now,
		},
		{
			ID: "svc-vet-transport", Name: "Vet Transport", Category: "transport",
			BasePrice: 20.00, Currency: models.CurrencyGBP, PriceType: models.PriceTypeFixed,
			CommissionPercent: 8, Active: false, AverageMarketPrice: 21.60,
			PopularityScore: 31, LastUpdated: now,
		},
	} {
		store.services[svc.ID] = svc
	}
}

func (s *memoryStore) userByEmail(email string) (stubUser, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[email]
	return u, ok
}

func (s *memoryStore) registerRefreshToken(token, userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.refreshTokens[token] = userID
}

// consumeRefreshToken removes and returns the owner of a refresh token.
// Tokens are single-use; each refresh rotates the pair.
func (s *memoryStore) consumeRefreshToken(token string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	userID, ok := s.refreshTokens[token]
	if ok {
		delete(s.refreshTokens, token)
	}
	return userID, ok
}

func (s *memoryStore) revokeUserTokens(userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for token, owner := range s.refreshTokens {
		if owner == userID {
			delete(s.refreshTokens, token)
		}
	}
}

func (s *memoryStore) activeServices() []models.Service {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Service, 0, len(s.services))
	for _, svc := range s.services {
		if svc.Active {
			out = append(out, svc)
		}
	}
	return out
}

func (s *memoryStore) serviceByID(id string) (models.Service, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	svc, ok := s.services[id]
	return svc, ok
}

func (s *memoryStore) saveBooking(b models.Booking) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bookings[b.ID] = b
}

func (s *memoryStore) bookingByID(id string) (models.Booking, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.bookings[id]
	return b, ok
}
