// README: Charging station model.
package station

// Station capacity bookkeeping: num_free should stay within
// [0, num_total], but the store applies relative updates without a clamp
// (see the charging lifecycle notes).
type Station struct {
	ID       int64   `json:"id" form:"id"`
	CityID   int64   `json:"city_id" form:"city_id"`
	NumFree  int64   `json:"num_free" form:"num_free"`
	NumTotal int64   `json:"num_total" form:"num_total"`
	Lat      float64 `json:"lat" form:"lat"`
	Lon      float64 `json:"lon" form:"lon"`
}
