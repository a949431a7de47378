// README: Bike service: CRUD, telemetry updates, and the zone re-check.
package bike

import (
	"context"

	"velo/internal/modules/parkzone"
	"velo/internal/types"
)

// Store is what the service needs from persistence; *SQLStore satisfies
// it, tests substitute an in-memory fake. The transaction-scoped store
// handed out by WithTx must also satisfy parkzone.TrackerStore so the
// zone re-check can reassign counters in the same transaction.
type Store interface {
	WithTx(ctx context.Context, fn func(Store) error) error

	Get(ctx context.Context, id int64) (Bike, error)
	GetForUpdate(ctx context.Context, id int64) (Bike, error)
	GetByUser(ctx context.Context, userID int64) (Bike, error)
	ListByCity(ctx context.Context, cityID int64) ([]Bike, error)
	ListByCityStatus(ctx context.Context, cityID, statusID int64) ([]Bike, error)
	ListByCityStation(ctx context.Context, cityID, stationID int64) ([]Bike, error)
	ListByCityPark(ctx context.Context, cityID, parkID int64) ([]Bike, error)
	ListPositions(ctx context.Context, cityID int64) ([]Position, error)
	ListZones(ctx context.Context, cityID int64) ([]parkzone.Zone, error)

	Add(ctx context.Context, b Bike) (int64, error)
	Update(ctx context.Context, b Bike) error
	UpdatePosSpeedBatt(ctx context.Context, id int64, lat, lon, speed, battery float64) error
	UpdateUserStatusStationPark(ctx context.Context, id, userID, statusID, stationID, parkID int64) error
	AddZoneBikes(ctx context.Context, zoneID int64, delta int64) error
	SetBikeParkZone(ctx context.Context, bikeID, parkID int64) error
	Delete(ctx context.Context, id int64) error
}

// PositionCache is the optional read-side cache for the map view.
type PositionCache interface {
	GetPositions(ctx context.Context, cityID int64) ([]Position, bool)
	SetPositions(ctx context.Context, cityID int64, positions []Position)
}

type Service struct {
	store Store
	cache PositionCache
}

func NewService(store Store, cache PositionCache) *Service {
	return &Service{store: store, cache: cache}
}

// CheckParkZone recomputes which zone the bike's current position falls
// in and, when it changed, moves the bike between zone counters in one
// transaction. Telemetry ingestion is expected to call this after every
// position update; it is what keeps the cached park_id honest. Returns
// the resulting park_id (0 = outside every zone).
func (s *Service) CheckParkZone(ctx context.Context, bikeID int64) (int64, error) {
	var parkID int64
	err := s.store.WithTx(ctx, func(tx Store) error {
		b, err := tx.GetForUpdate(ctx, bikeID)
		if err != nil {
			return err
		}
		zones, err := tx.ListZones(ctx, b.CityID)
		if err != nil {
			return err
		}
		parkID = parkzone.Locate(zones, types.Point{Lat: b.Lat, Lon: b.Lon})
		if parkID == b.ParkID {
			return nil
		}
		return parkzone.Reassign(ctx, tx, bikeID, b.ParkID, parkID)
	})
	if err != nil {
		return 0, err
	}
	return parkID, nil
}

func (s *Service) Get(ctx context.Context, id int64) (Bike, error) {
	return s.store.Get(ctx, id)
}

func (s *Service) GetByUser(ctx context.Context, userID int64) (Bike, error) {
	return s.store.GetByUser(ctx, userID)
}

func (s *Service) ListByCity(ctx context.Context, cityID int64) ([]Bike, error) {
	return s.store.ListByCity(ctx, cityID)
}

func (s *Service) ListByCityStatus(ctx context.Context, cityID, statusID int64) ([]Bike, error) {
	return s.store.ListByCityStatus(ctx, cityID, statusID)
}

func (s *Service) ListByCityStation(ctx context.Context, cityID, stationID int64) ([]Bike, error) {
	return s.store.ListByCityStation(ctx, cityID, stationID)
}

func (s *Service) ListByCityPark(ctx context.Context, cityID, parkID int64) ([]Bike, error) {
	return s.store.ListByCityPark(ctx, cityID, parkID)
}

// ListPositions serves the polled map view through the short-TTL cache.
func (s *Service) ListPositions(ctx context.Context, cityID int64) ([]Position, error) {
	if s.cache != nil {
		if positions, ok := s.cache.GetPositions(ctx, cityID); ok {
			return positions, nil
		}
	}
	positions, err := s.store.ListPositions(ctx, cityID)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		s.cache.SetPositions(ctx, cityID, positions)
	}
	return positions, nil
}

func (s *Service) Add(ctx context.Context, b Bike) (int64, error) {
	return s.store.Add(ctx, b)
}

func (s *Service) Update(ctx context.Context, b Bike) error {
	return s.store.Update(ctx, b)
}

func (s *Service) UpdatePosSpeedBatt(ctx context.Context, id int64, lat, lon, speed, battery float64) error {
	return s.store.UpdatePosSpeedBatt(ctx, id, lat, lon, speed, battery)
}

func (s *Service) UpdateUserStatusStationPark(ctx context.Context, id, userID, statusID, stationID, parkID int64) error {
	return s.store.UpdateUserStatusStationPark(ctx, id, userID, statusID, stationID, parkID)
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.store.Delete(ctx, id)
}
