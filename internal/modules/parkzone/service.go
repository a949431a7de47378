// README: Parking zone service: CRUD plus the geofence lookup.
package parkzone

import (
	"context"

	"velo/internal/types"
)

// ZoneStore is what the service needs from persistence; *Store satisfies
// it, tests substitute an in-memory fake.
type ZoneStore interface {
	ListByCity(ctx context.Context, cityID int64) ([]Zone, error)
	Get(ctx context.Context, id int64) (Zone, error)
	Add(ctx context.Context, z Zone) (int64, error)
	Update(ctx context.Context, z Zone) error
	Delete(ctx context.Context, id int64) error
}

// ZoneCache is the optional read-side cache for per-city zone lists.
type ZoneCache interface {
	GetZones(ctx context.Context, cityID int64) ([]Zone, bool)
	SetZones(ctx context.Context, cityID int64, zones []Zone)
	Invalidate(ctx context.Context, cityID int64)
}

type Service struct {
	store ZoneStore
	cache ZoneCache
}

// NewService wires the zone store and an optional cache (nil disables
// caching).
func NewService(store ZoneStore, cache ZoneCache) *Service {
	return &Service{store: store, cache: cache}
}

// ListByCity serves the map view; reads go through the cache when one is
// configured. num_bikes may lag by up to the cache TTL.
func (s *Service) ListByCity(ctx context.Context, cityID int64) ([]Zone, error) {
	if s.cache != nil {
		if zones, ok := s.cache.GetZones(ctx, cityID); ok {
			return zones, nil
		}
	}
	zones, err := s.store.ListByCity(ctx, cityID)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		s.cache.SetZones(ctx, cityID, zones)
	}
	return zones, nil
}

func (s *Service) Get(ctx context.Context, id int64) (Zone, error) {
	return s.store.Get(ctx, id)
}

func (s *Service) Add(ctx context.Context, z Zone) (int64, error) {
	id, err := s.store.Add(ctx, z)
	if err != nil {
		return 0, err
	}
	if s.cache != nil {
		s.cache.Invalidate(ctx, z.CityID)
	}
	return id, nil
}

func (s *Service) Update(ctx context.Context, z Zone) error {
	if err := s.store.Update(ctx, z); err != nil {
		return err
	}
	if s.cache != nil {
		s.cache.Invalidate(ctx, z.CityID)
	}
	return nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	z, err := s.store.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := s.store.Delete(ctx, id); err != nil {
		return err
	}
	if s.cache != nil {
		s.cache.Invalidate(ctx, z.CityID)
	}
	return nil
}

// LocateZone answers "which zone is this point in" for a city, bypassing
// the cache so lifecycle decisions always see fresh geometry.
func (s *Service) LocateZone(ctx context.Context, cityID int64, p types.Point) (int64, error) {
	zones, err := s.store.ListByCity(ctx, cityID)
	if err != nil {
		return 0, err
	}
	return Locate(zones, p), nil
}
