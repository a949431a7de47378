// README: Ride aggregate; open until duration/price are set.
package ride

import "time"

// Ride records one rental. A ride is open while the owning user's
// ride_id still points at it; Duration, stop position and Price are only
// set when the ride is finished. The row is kept after finishing,
// deletion is a separate explicit operation.
type Ride struct {
	ID          int64     `json:"id"`
	StartTime   time.Time `json:"start_time"`
	Duration    *float64  `json:"duration"` // minutes, 2 decimals
	StartLat    float64   `json:"start_lat"`
	StartLon    float64   `json:"start_lon"`
	StartParkID int64     `json:"start_park_id"` // 0 = started outside any zone
	StopLat     *float64  `json:"stop_lat"`
	StopLon     *float64  `json:"stop_lon"`
	Price       *float64  `json:"price"`
	UserID      int64     `json:"user_id"`
	BikeID      int64     `json:"bike_id"`
}

// BikeInfo is the slice of a bike's row the lifecycle needs.
type BikeInfo struct {
	ID       int64
	CityID   int64
	StatusID int64
	ParkID   int64
	Lat      float64
	Lon      float64
}
