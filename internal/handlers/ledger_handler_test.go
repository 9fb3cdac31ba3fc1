package handlers

import (
	"net/http/httptest"
	"testing"
	"time"

	"bullion-backend/internal/timeutil"
)

func TestParseLedgerFilter(t *testing.T) {
	r := httptest.NewRequest("GET", "/api/ledger?type=payment&from=2026-03-01&to=2026-03-05", nil)

	filter, err := parseLedgerFilter(r)
	if err != nil {
		t.Fatalf("parseLedgerFilter failed: %v", err)
	}
	if filter.Category != "payment" {
		t.Errorf("Category = %q, want payment", filter.Category)
	}

	wantFrom := time.Date(2026, time.March, 1, 0, 0, 0, 0, timeutil.IST)
	if filter.From == nil || !filter.From.Equal(wantFrom) {
		t.Errorf("From = %v, want %v", filter.From, wantFrom)
	}
	// The to bound covers the whole day.
	if filter.To == nil || filter.To.Day() != 5 || filter.To.Hour() != 23 {
		t.Errorf("To = %v, want end of 2026-03-05", filter.To)
	}
}

func TestParseLedgerFilterDefaults(t *testing.T) {
	r := httptest.NewRequest("GET", "/api/ledger", nil)

	filter, err := parseLedgerFilter(r)
	if err != nil {
		t.Fatalf("parseLedgerFilter failed: %v", err)
	}
	if filter.Category != "" || filter.From != nil || filter.To != nil {
		t.Errorf("expected unconstrained filter, got %+v", filter)
	}
}

func TestParseLedgerFilterRejectsBadInput(t *testing.T) {
	for _, query := range []string{"type=bogus", "from=03/01/2026", "to=yesterday"} {
		r := httptest.NewRequest("GET", "/api/ledger?"+query, nil)
		if _, err := parseLedgerFilter(r); err == nil {
			t.Errorf("query %q: expected error", query)
		}
	}
}
