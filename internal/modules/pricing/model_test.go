// README: Fare formula tests covering all four zone-flag combinations.
package pricing

import "testing"

func TestPriceZoneCombinations(t *testing.T) {
	// start 10, 3/min, 10 extra, 10 discount; 60 s trip -> base 13.
	p := Pricing{StartFee: 10, MinuteFee: 3, ExtraFee: 10, Discount: 10}

	cases := []struct {
		name          string
		startedInZone bool
		endedInZone   bool
		want          float64
	}{
		// ended outside always adds the extra fee; the discount only
		// applies to trips that started outside and ended inside.
		{"outside to outside", false, false, 23},
		{"outside to inside", false, true, 3},
		{"inside to inside", true, true, 13},
		{"inside to outside", true, false, 23},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Price(p, 60, tc.startedInZone, tc.endedInZone)
			if got != tc.want {
				t.Errorf("Price = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestPriceZeroDuration(t *testing.T) {
	p := Pricing{StartFee: 10, MinuteFee: 3, ExtraFee: 10, Discount: 10}

	if got := Price(p, 0, true, true); got != 10 {
		t.Errorf("zero duration in zone = %v, want start fee 10", got)
	}
	if got := Price(p, 0, true, false); got != 20 {
		t.Errorf("zero duration ended outside = %v, want 20", got)
	}
}

func TestPriceRounding(t *testing.T) {
	// 10 s at 3/min is 0.5 exactly, no rounding needed.
	p := Pricing{StartFee: 0, MinuteFee: 3}
	if got := Price(p, 10, true, true); got != 0.5 {
		t.Errorf("Price = %v, want 0.5", got)
	}

	// 0.125 is exact in binary, so this exercises the half-away-from-
	// zero branch deterministically (12.5 -> 13 cents).
	p = Pricing{StartFee: 0.125, MinuteFee: 0}
	if got := Price(p, 60, true, true); got != 0.13 {
		t.Errorf("Price = %v, want 0.13", got)
	}
}

func TestRound2(t *testing.T) {
	// Exact binary fractions (x/8) keep the *100 product exact, so the
	// half-away-from-zero behavior is observable without float noise.
	cases := []struct {
		in   float64
		want float64
	}{
		{0.125, 0.13},
		{-0.125, -0.13},
		{0.375, 0.38},
		{1.006, 1.01},
		{1.004, 1.0},
		{0, 0},
		{3.999, 4.0},
	}
	for _, tc := range cases {
		if got := Round2(tc.in); got != tc.want {
			t.Errorf("Round2(%v) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestPriceDiscountCanGoNegative(t *testing.T) {
	// A large discount may push the fare below zero; the calculator
	// does not floor it, settlement handles whatever comes out.
	p := Pricing{StartFee: 1, MinuteFee: 1, Discount: 10}
	if got := Price(p, 60, false, true); got != -8 {
		t.Errorf("Price = %v, want -8", got)
	}
}
