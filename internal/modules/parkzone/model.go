// README: Parking zone model and the geofence containment test.
package parkzone

import "velo/internal/types"

// Zone is a rectangular parking area: center point plus half-extents in
// decimal degrees. NumBikes caches the number of bikes whose park_id
// points at this zone.
type Zone struct {
	ID       int64   `json:"id" form:"id"`
	CityID   int64   `json:"city_id" form:"city_id"`
	Lat      float64 `json:"lat" form:"lat"`
	Lon      float64 `json:"lon" form:"lon"`
	DLat     float64 `json:"dlat" form:"dlat"`
	DLon     float64 `json:"dlon" form:"dlon"`
	NumBikes int64   `json:"num_bikes" form:"num_bikes"`
}

// Contains reports whether the point lies inside the zone's bounding box.
// Bounds are inclusive on all four sides, so a point exactly on the edge
// counts as inside.
func (z Zone) Contains(p types.Point) bool {
	return p.Lat >= z.Lat-z.DLat && p.Lat <= z.Lat+z.DLat &&
		p.Lon >= z.Lon-z.DLon && p.Lon <= z.Lon+z.DLon
}

// Locate returns the id of the first zone in the slice containing the
// point, or 0 when none does. Overlapping zones tie-break on slice order;
// the store always retrieves zones in ascending id order, so the result
// is deterministic.
func Locate(zones []Zone, p types.Point) int64 {
	for _, z := range zones {
		if z.Contains(p) {
			return z.ID
		}
	}
	return 0
}
