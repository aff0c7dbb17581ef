package finsight

import (
	"math"
	"testing"
)

// simulatePayoff replays the month-by-month recurrence: interest accrues on
// the running balance, then the payment applies. It is the ground truth the
// closed form must agree with.
func simulatePayoff(balance, annualRate, payment float64) (months int, ok bool) {
	r := annualRate / 100 / 12
	for b := balance; b > 0; months++ {
		b = b*(1+r) - payment
		if months > 10000 {
			return 0, false
		}
	}
	return months, true
}

func TestEstimatePayoff(t *testing.T) {
	tests := []struct {
		name       string
		debt       Debt
		wantMonths int
		wantNever  bool
	}{
		{"credit card", Debt{Balance: 3200, InterestRate: 21.99, MinimumPayment: 85}, 65, false},
		{"personal loan", Debt{Balance: 5000, InterestRate: 18, MinimumPayment: 150}, 47, false},
		{"car loan", Debt{Balance: 9000, InterestRate: 6.5, MinimumPayment: 300}, 33, false},
		{"zero interest", Debt{Balance: 1200, InterestRate: 0, MinimumPayment: 100}, 12, false},
		{"zero interest partial month", Debt{Balance: 500, InterestRate: 0, MinimumPayment: 150}, 4, false},
		{"payment equals interest", Debt{Balance: 10000, InterestRate: 24, MinimumPayment: 200}, 0, true},
		{"payment below interest", Debt{Balance: 10000, InterestRate: 24, MinimumPayment: 150}, 0, true},
		{"no payment", Debt{Balance: 10000, InterestRate: 24, MinimumPayment: 0}, 0, true},
		{"no balance", Debt{Balance: 0, InterestRate: 24, MinimumPayment: 50}, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EstimatePayoff(tt.debt)
			if got.Never != tt.wantNever {
				t.Fatalf("EstimatePayoff(%+v).Never = %v, want %v", tt.debt, got.Never, tt.wantNever)
			}
			if got.Never {
				return
			}
			if got.Months != tt.wantMonths {
				t.Errorf("EstimatePayoff(%+v).Months = %d, want %d", tt.debt, got.Months, tt.wantMonths)
			}
		})
	}
}

// The closed form must agree with the month-by-month recurrence over a grid
// of amortizable debts.
func TestEstimatePayoffMatchesSimulation(t *testing.T) {
	for _, balance := range []float64{500, 3200, 14200, 28500} {
		for _, rate := range []float64{1, 4.99, 12, 21.99} {
			for _, payment := range []float64{85, 320, 900} {
				r := rate / 100 / 12
				if payment <= balance*r {
					continue
				}
				got := EstimatePayoff(Debt{Balance: balance, InterestRate: rate, MinimumPayment: payment})
				want, ok := simulatePayoff(balance, rate, payment)
				if !ok {
					t.Fatalf("simulation did not terminate for %v/%v/%v", balance, rate, payment)
				}
				if got.Never || got.Months != want {
					t.Errorf("EstimatePayoff(%v, %v%%, %v) = %+v, simulation says %d months",
						balance, rate, payment, got, want)
				}
			}
		}
	}
}

func TestEstimatePayoffTotalInterest(t *testing.T) {
	got := EstimatePayoff(Debt{Balance: 3200, InterestRate: 21.99, MinimumPayment: 85})
	want := 85*float64(got.Months) - 3200
	if math.Abs(got.TotalInterest-want) > 1e-9 {
		t.Errorf("TotalInterest = %v, want %v", got.TotalInterest, want)
	}

	// Interest-free debts report no interest.
	if p := EstimatePayoff(Debt{Balance: 1200, MinimumPayment: 100}); p.TotalInterest != 0 {
		t.Errorf("zero-rate TotalInterest = %v, want 0", p.TotalInterest)
	}
}

func TestEstimatePayoffs(t *testing.T) {
	debts := SampleDebts()
	got := EstimatePayoffs(debts)
	if len(got) != len(debts) {
		t.Fatalf("EstimatePayoffs returned %d entries, want %d", len(got), len(debts))
	}
	for i, dp := range got {
		if dp.Debt.ID != debts[i].ID {
			t.Errorf("entry %d is %q, want collection order preserved", i, dp.Debt.Name)
		}
	}
}
