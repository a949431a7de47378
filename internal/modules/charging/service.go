// README: Charging lifecycle: dock a bike at a station, undock it.
package charging

import (
	"context"

	"velo/internal/modules/bike"
	"velo/internal/types"
)

// BikeDock is the bike-side state the lifecycle reads.
type BikeDock struct {
	ID        int64
	StatusID  int64
	StationID int64
}

// Store is what the lifecycle needs from persistence; tests substitute
// an in-memory fake.
type Store interface {
	WithTx(ctx context.Context, fn func(Store) error) error

	GetBikeDock(ctx context.Context, bikeID int64) (BikeDock, error)
	// AddStationFree applies a relative change to the station's free
	// slot counter and reports whether the station row exists.
	AddStationFree(ctx context.Context, stationID int64, delta int64) (bool, error)
	SetBikeCharging(ctx context.Context, bikeID, stationID int64) error
	ClearBikeCharging(ctx context.Context, bikeID int64) error
}

type Service struct {
	store Store
}

func NewService(store Store) *Service {
	return &Service{store: store}
}

// Start puts a bike on a charger. The num_free decrement doubles as the
// station existence probe: zero rows affected means no such station.
// num_free is deliberately not clamped at 0; see the design notes.
func (s *Service) Start(ctx context.Context, bikeID, stationID int64) error {
	return s.store.WithTx(ctx, func(tx Store) error {
		b, err := tx.GetBikeDock(ctx, bikeID)
		if err != nil {
			return err
		}
		if b.StatusID == bike.StatusCharging {
			return types.InvalidState("bike is already charging")
		}

		ok, err := tx.AddStationFree(ctx, stationID, -1)
		if err != nil {
			return err
		}
		if !ok {
			return types.NotFound("station_id")
		}
		return tx.SetBikeCharging(ctx, bikeID, stationID)
	})
}

// Stop takes a bike off its charger and frees the slot.
func (s *Service) Stop(ctx context.Context, bikeID int64) error {
	return s.store.WithTx(ctx, func(tx Store) error {
		b, err := tx.GetBikeDock(ctx, bikeID)
		if err != nil {
			return err
		}
		if b.StatusID != bike.StatusCharging {
			return types.InvalidState("bike is not charging")
		}

		ok, err := tx.AddStationFree(ctx, b.StationID, 1)
		if err != nil {
			return err
		}
		if !ok {
			return types.NotFound("station_id")
		}
		return tx.ClearBikeCharging(ctx, bikeID)
	})
}
