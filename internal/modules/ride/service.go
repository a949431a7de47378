// README: Ride lifecycle: start and finish, each inside one transaction.
package ride

import (
	"context"
	"time"

	"velo/internal/modules/parkzone"
	"velo/internal/modules/pricing"
	"velo/internal/types"
)

// Store is everything the lifecycle needs from persistence. WithTx runs
// fn against a transaction-scoped store and commits only if fn returns
// nil, so a failed step rolls back every earlier write (no compensating
// deletes). Tests substitute an in-memory fake.
type Store interface {
	WithTx(ctx context.Context, fn func(Store) error) error

	GetBikeForRide(ctx context.Context, bikeID int64) (BikeInfo, error)
	CreateRide(ctx context.Context, r *Ride) (int64, error)
	SetUserRide(ctx context.Context, userID, rideID int64) (bool, error)
	ClaimBike(ctx context.Context, bikeID, userID int64) error
	CloseRide(ctx context.Context, rideID int64, durationMin, stopLat, stopLon, price float64) error
	SettleUser(ctx context.Context, userID int64, price float64) error
	ReleaseBike(ctx context.Context, bikeID, parkID int64) error
	AddZoneBikes(ctx context.Context, zoneID int64, delta int64) error

	GetUserRideID(ctx context.Context, userID int64) (int64, error)
	GetOpenRide(ctx context.Context, rideID int64) (Ride, error)
	GetPricing(ctx context.Context, cityID int64) (pricing.Pricing, error)
	ListZones(ctx context.Context, cityID int64) ([]parkzone.Zone, error)

	Get(ctx context.Context, id int64) (Ride, error)
	ListByUser(ctx context.Context, userID int64) ([]Ride, error)
	ListByBike(ctx context.Context, bikeID int64) ([]Ride, error)
	Delete(ctx context.Context, id int64) error
}

type Service struct {
	store Store
	now   func() time.Time
}

func NewService(store Store) *Service {
	return &Service{store: store, now: time.Now}
}

type StartCommand struct {
	UserID int64
	BikeID int64
}

type FinishCommand struct {
	UserID int64
}

// Start leases a bike to a user. The bike must exist and be idle
// (status 0). Inside one transaction: create the ride, point the user's
// ride_id at it (zero rows means the user does not exist and the whole
// transaction rolls back), claim the bike, and if the bike was parked in
// a zone, decrement that zone's occupancy counter.
func (s *Service) Start(ctx context.Context, cmd StartCommand) (int64, error) {
	var rideID int64
	err := s.store.WithTx(ctx, func(tx Store) error {
		bike, err := tx.GetBikeForRide(ctx, cmd.BikeID)
		if err != nil {
			return err
		}
		if bike.StatusID != 0 {
			return types.InvalidState("bike is not available for lease")
		}

		r := &Ride{
			StartTime:   s.now().UTC().Truncate(time.Second),
			StartLat:    bike.Lat,
			StartLon:    bike.Lon,
			StartParkID: bike.ParkID,
			UserID:      cmd.UserID,
			BikeID:      cmd.BikeID,
		}
		id, err := tx.CreateRide(ctx, r)
		if err != nil {
			return err
		}

		ok, err := tx.SetUserRide(ctx, cmd.UserID, id)
		if err != nil {
			return err
		}
		if !ok {
			return types.NotFound("user_id")
		}

		if err := tx.ClaimBike(ctx, cmd.BikeID, cmd.UserID); err != nil {
			return err
		}
		if bike.ParkID != 0 {
			if err := tx.AddZoneBikes(ctx, bike.ParkID, -1); err != nil {
				return err
			}
		}

		rideID = id
		return nil
	})
	if err != nil {
		return 0, err
	}
	return rideID, nil
}

// Finish closes the user's open ride and settles it. Elapsed time is
// compared at whole-second resolution against the stored start time. The
// end zone is recomputed from the bike's current position, not the ride's
// stop fields, which are only written here.
func (s *Service) Finish(ctx context.Context, cmd FinishCommand) (float64, error) {
	var price float64
	err := s.store.WithTx(ctx, func(tx Store) error {
		rideID, err := tx.GetUserRideID(ctx, cmd.UserID)
		if err != nil {
			return err
		}
		if rideID == 0 {
			return types.NotFound("no matching ride for user_id")
		}

		r, err := tx.GetOpenRide(ctx, rideID)
		if err != nil {
			return err
		}
		bike, err := tx.GetBikeForRide(ctx, r.BikeID)
		if err != nil {
			return types.NotFound("bike_id for ride")
		}
		p, err := tx.GetPricing(ctx, bike.CityID)
		if err != nil {
			return err
		}

		elapsedSec := s.now().Unix() - r.StartTime.Unix()

		zones, err := tx.ListZones(ctx, bike.CityID)
		if err != nil {
			return err
		}
		endZone := parkzone.Locate(zones, types.Point{Lat: bike.Lat, Lon: bike.Lon})

		startedInZone := r.StartParkID != 0
		price = pricing.Price(p, float64(elapsedSec), startedInZone, endZone != 0)
		durationMin := pricing.Round2(float64(elapsedSec) / 60)

		if err := tx.CloseRide(ctx, rideID, durationMin, bike.Lat, bike.Lon, price); err != nil {
			return err
		}
		// Balance may go negative; there is no floor.
		if err := tx.SettleUser(ctx, cmd.UserID, price); err != nil {
			return err
		}
		if err := tx.ReleaseBike(ctx, r.BikeID, endZone); err != nil {
			return err
		}
		// The bike carried park_id = 0 while in use, so entering the end
		// zone is a pure increment.
		if endZone != 0 {
			if err := tx.AddZoneBikes(ctx, endZone, 1); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return price, nil
}

func (s *Service) Get(ctx context.Context, id int64) (Ride, error) {
	return s.store.Get(ctx, id)
}

func (s *Service) ListByUser(ctx context.Context, userID int64) ([]Ride, error) {
	return s.store.ListByUser(ctx, userID)
}

func (s *Service) ListByBike(ctx context.Context, bikeID int64) ([]Ride, error) {
	return s.store.ListByBike(ctx, bikeID)
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.store.Delete(ctx, id)
}
