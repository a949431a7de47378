// README: City pricing model and the trip fare formula.
package pricing

import "math"

// Pricing is one row per city. extra_fee penalizes ending a trip outside
// any parking zone; discount rewards ending inside one when the trip
// started outside.
type Pricing struct {
	ID        int64   `json:"id"`
	CityID    int64   `json:"city_id" form:"city_id"`
	StartFee  float64 `json:"start_fee" form:"start_fee"`
	MinuteFee float64 `json:"minute_fee" form:"minute_fee"`
	ExtraFee  float64 `json:"extra_fee" form:"extra_fee"`
	Discount  float64 `json:"discount" form:"discount"`
}

// Price computes the fare for a trip of durationSec whole seconds.
//
//	base = start_fee + minute_fee * durationSec / 60
//	started outside a zone, ended inside  -> base - discount
//	ended outside a zone                  -> base + extra_fee
//
// The two adjustments are mutually exclusive: the discount requires
// ending inside a zone, the extra fee requires ending outside one.
// The result is rounded to 2 decimals, half away from zero.
func Price(p Pricing, durationSec float64, startedInZone, endedInZone bool) float64 {
	price := p.StartFee + p.MinuteFee*durationSec/60

	if !startedInZone && endedInZone {
		price -= p.Discount
	}
	if !endedInZone {
		price += p.ExtraFee
	}

	return Round2(price)
}

// Round2 rounds to 2 decimal places, half away from zero (math.Round
// semantics).
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
