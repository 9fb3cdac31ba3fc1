package models

import "testing"

func TestStatusFor(t *testing.T) {
	tests := []struct {
		name  string
		total float64
		paid  float64
		want  PaymentStatus
	}{
		{"fully paid", 1000, 1000, PaymentStatusPaid},
		{"partially paid", 1000, 400, PaymentStatusPartial},
		{"nothing paid", 1000, 0, PaymentStatusPending},
		{"zero total zero paid", 0, 0, PaymentStatusPaid},
		{"overpaid counts as partial", 1000, 1200, PaymentStatusPartial},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := StatusFor(tc.total, tc.paid); got != tc.want {
				t.Errorf("StatusFor(%v, %v) = %q, want %q", tc.total, tc.paid, got, tc.want)
			}
		})
	}
}
