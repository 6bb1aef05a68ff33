package session

import (
	"context"
	"testing"
	"time"

	"pawcare/models"
	"pawcare/utils"
)

func mustToken(t *testing.T, ttl time.Duration) string {
	t.Helper()
	token, err := utils.GenerateToken("user-1", "access", ttl)
	if err != nil {
		t.Fatalf("failed to mint token: %v", err)
	}
	return token
}

func TestIsExpired(t *testing.T) {
	m := NewManager(NewMemoryStore())

	t.Run("fresh token", func(t *testing.T) {
		if m.IsExpired(mustToken(t, time.Hour)) {
			t.Fatal("fresh token reported expired")
		}
	})

	t.Run("expired token", func(t *testing.T) {
		if !m.IsExpired(mustToken(t, -time.Hour)) {
			t.Fatal("expired token reported usable")
		}
	})

	t.Run("token inside the skew window", func(t *testing.T) {
		if !m.IsExpired(mustToken(t, 2*time.Second)) {
			t.Fatal("token about to expire must count as expired")
		}
	})

	t.Run("undecodable token fails closed", func(t *testing.T) {
		if !m.IsExpired("not-a-jwt") {
			t.Fatal("undecodable token must count as expired")
		}
	})

	t.Run("empty token", func(t *testing.T) {
		if !m.IsExpired("") {
			t.Fatal("empty token must count as expired")
		}
	})
}

func TestSetAndLoadRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	m := NewManager(store)
	pair := models.TokenPair{AccessToken: "access-1", RefreshToken: "refresh-1"}
	if err := m.Set(ctx, pair); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.AccessToken() != "access-1" || m.RefreshToken() != "refresh-1" {
		t.Fatal("pair not held in memory after Set")
	}

	// A fresh manager over the same store sees the persisted pair.
	restored := NewManager(store)
	if err := restored.Load(ctx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if restored.AccessToken() != "access-1" || restored.RefreshToken() != "refresh-1" {
		t.Fatal("pair did not survive a reload")
	}
}

func TestSetReplacesPairWholesale(t *testing.T) {
	ctx := context.Background()
	m := NewManager(NewMemoryStore())

	_ = m.Set(ctx, models.TokenPair{AccessToken: "old-a", RefreshToken: "old-r"})
	_ = m.Set(ctx, models.TokenPair{AccessToken: "new-a", RefreshToken: "new-r"})

	if m.AccessToken() != "new-a" || m.RefreshToken() != "new-r" {
		t.Fatal("stale tokens visible after replacement")
	}
}

func TestClearDropsBothSlots(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	m := NewManager(store)

	_ = m.Set(ctx, models.TokenPair{AccessToken: "a", RefreshToken: "r"})
	if err := m.Clear(ctx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.AccessToken() != "" || m.RefreshToken() != "" {
		t.Fatal("tokens still held after Clear")
	}

	pair, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if pair.AccessToken != "" || pair.RefreshToken != "" {
		t.Fatal("tokens still persisted after Clear")
	}
}
