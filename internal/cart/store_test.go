package cart

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestStoreCreatesCartOnFirstUse(t *testing.T) {
	s := NewStore(time.Hour)
	err := s.With("sess-1", func(c *Cart) error {
		if c.Len() != 0 {
			t.Fatal("expected fresh cart")
		}
		return nil
	})
	if err != nil {
		t.Fatalf("with: %v", err)
	}
	if s.Len() != 1 {
		t.Fatalf("expected one session, got %d", s.Len())
	}
}

func TestStoreSweepEvictsIdleSessions(t *testing.T) {
	s := NewStore(time.Minute)
	now := time.Now()
	s.now = func() time.Time { return now }

	discrete, _, _ := testProducts(t)
	_ = s.With("stale", func(c *Cart) error {
		return c.SetItem(discrete, decimal.NewFromInt(1))
	})

	now = now.Add(30 * time.Second)
	_ = s.With("fresh", func(c *Cart) error { return nil })

	now = now.Add(45 * time.Second)
	if removed := s.Sweep(); removed != 1 {
		t.Fatalf("expected 1 eviction, got %d", removed)
	}
	if s.Len() != 1 {
		t.Fatalf("expected 1 session left, got %d", s.Len())
	}

	// Touching the stale session id again starts an empty cart.
	_ = s.With("stale", func(c *Cart) error {
		if c.Len() != 0 {
			t.Fatal("expected evicted cart to restart empty")
		}
		return nil
	})
}

func TestStoreZeroTTLNeverSweeps(t *testing.T) {
	s := NewStore(0)
	now := time.Now()
	s.now = func() time.Time { return now }

	_ = s.With("sess-1", func(c *Cart) error { return nil })
	now = now.Add(365 * 24 * time.Hour)
	if removed := s.Sweep(); removed != 0 {
		t.Fatalf("expected no evictions with zero ttl, got %d", removed)
	}
}

func TestStoreDrop(t *testing.T) {
	s := NewStore(time.Hour)
	_ = s.With("sess-1", func(c *Cart) error { return nil })
	s.Drop("sess-1")
	if s.Len() != 0 {
		t.Fatal("expected session removed")
	}
	s.Drop("sess-1")
}
