package money

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestPayment(t *testing.T) {
	tests := []struct {
		name  string
		hours string
		rate  string
		want  string
	}{
		{"whole numbers", "10", "150", "1500"},
		{"fractional hours", "10.5", "200", "2100"},
		{"fractional both", "0.1", "0.2", "0.02"},
		{"no float drift", "1.1", "1.1", "1.21"},
		{"zero hours", "0", "150", "0"},
		{"zero rate", "120", "0", "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hours := decimal.RequireFromString(tt.hours)
			rate := decimal.RequireFromString(tt.rate)
			want := decimal.RequireFromString(tt.want)

			got := Payment(hours, rate)
			if !got.Equal(want) {
				t.Errorf("Payment(%s, %s) = %s, want %s", tt.hours, tt.rate, got, want)
			}
		})
	}
}

func TestPaymentIsDeterministic(t *testing.T) {
	hours := decimal.RequireFromString("37.5")
	rate := decimal.RequireFromString("123.45")

	first := Payment(hours, rate)
	for i := 0; i < 10; i++ {
		if got := Payment(hours, rate); !got.Equal(first) {
			t.Fatalf("Payment drifted on call %d: %s != %s", i, got, first)
		}
	}
}

func TestFormat(t *testing.T) {
	if got := Format(decimal.RequireFromString("2100")); got != "2100.00" {
		t.Errorf("Format(2100) = %q, want %q", got, "2100.00")
	}
	if got := Format(decimal.RequireFromString("0.5")); got != "0.50" {
		t.Errorf("Format(0.5) = %q, want %q", got, "0.50")
	}
}
