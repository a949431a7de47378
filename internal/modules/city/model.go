// README: City model; owns zones, stations, bikes, users and pricing.
package city

// City carries its own catch-all bounding box (center + half-extents);
// the per-zone geofences are what lifecycle decisions actually use.
type City struct {
	ID   int64   `json:"id" form:"id"`
	Name string  `json:"name" form:"name"`
	Lat  float64 `json:"lat" form:"lat"`
	Lon  float64 `json:"lon" form:"lon"`
	DLat float64 `json:"dlat" form:"dlat"`
	DLon float64 `json:"dlon" form:"dlon"`
}
