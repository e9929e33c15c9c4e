package mcp

import (
	"context"
	"testing"
	"time"
)

// TestUserIDFromContextDefault verifies the default user ID (1) when no value
// is set in the context.
func TestUserIDFromContextDefault(t *testing.T) {
	ctx := context.Background()
	if id := UserIDFromContext(ctx); id != 1 {
		t.Errorf("UserIDFromContext(empty) = %d, want 1", id)
	}
}

// TestUserIDFromContextSet verifies the user ID is extracted from context
// after being set by WithUserID.
func TestUserIDFromContextSet(t *testing.T) {
	ctx := WithUserID(context.Background(), 42)
	if id := UserIDFromContext(ctx); id != 42 {
		t.Errorf("UserIDFromContext = %d, want 42", id)
	}
}

// TestDateOrToday verifies date parsing and the today default.
func TestDateOrToday(t *testing.T) {
	// Empty → today
	d, err := dateOrToday("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	now := time.Now()
	if d.Year() != now.Year() || d.Month() != now.Month() || d.Day() != now.Day() {
		t.Errorf("dateOrToday(\"\") = %v, want today", d)
	}

	// Explicit date
	d, err = dateOrToday("2026-02-02")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.String() != "2026-02-02" {
		t.Errorf("dateOrToday = %q, want %q", d.String(), "2026-02-02")
	}

	// Invalid
	if _, err := dateOrToday("02/02/2026"); err == nil {
		t.Error("expected error for invalid date format")
	}
}
