// README: Bike aggregate and status definitions.
package bike

// Bike status values. 2 is reserved (maintenance in a later iteration).
const (
	StatusIdle     int64 = 0
	StatusInUse    int64 = 1
	StatusCharging int64 = 3
)

// Bike uses 0 as the "absent" sentinel for user_id, station_id and
// park_id; that convention is part of the wire contract. park_id is the
// zone the bike was last confirmed inside, cached rather than computed,
// and every state transition that moves the bike must keep it in sync
// with the zones' num_bikes counters.
type Bike struct {
	ID        int64   `json:"id" form:"id"`
	CityID    int64   `json:"city_id" form:"city_id"`
	UserID    int64   `json:"user_id" form:"user_id"`
	StatusID  int64   `json:"status_id" form:"status_id"`
	StationID int64   `json:"station_id" form:"station_id"`
	ParkID    int64   `json:"park_id" form:"park_id"`
	Lat       float64 `json:"lat" form:"lat"`
	Lon       float64 `json:"lon" form:"lon"`
	Speed     float64 `json:"speed" form:"speed"`
	Battery   float64 `json:"battery" form:"battery"`
}

// Position is the reduced row served to the city map view.
type Position struct {
	ID       int64   `json:"id"`
	StatusID int64   `json:"status_id"`
	Lat      float64 `json:"lat"`
	Lon      float64 `json:"lon"`
}
