// README: Ride store backed by PostgreSQL; lifecycle writes run in one tx.
package ride

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"velo/internal/infra"
	"velo/internal/modules/parkzone"
	"velo/internal/modules/pricing"
	"velo/internal/types"
)

// querier is satisfied by both *pgxpool.Pool and pgx.Tx, so the same
// statement methods serve plain calls and transaction-scoped ones.
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type SQLStore struct {
	db *pgxpool.Pool
	q  querier
}

func NewStore(db *pgxpool.Pool) *SQLStore {
	return &SQLStore{db: db, q: db}
}

// WithTx begins a transaction and hands fn a store whose statements run
// inside it. Commit happens only when fn returns nil; the deferred
// rollback is a no-op after a successful commit.
func (s *SQLStore) WithTx(ctx context.Context, fn func(Store) error) error {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if err := fn(&SQLStore{db: s.db, q: tx}); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

// GetBikeForRide locks the bike row for the duration of the transaction
// so two concurrent starts cannot both see it idle.
func (s *SQLStore) GetBikeForRide(ctx context.Context, bikeID int64) (BikeInfo, error) {
	var b BikeInfo
	err := s.q.QueryRow(ctx, `
		SELECT id, city_id, status_id, park_id, lat, lon
		FROM bikes
		WHERE id = $1
		FOR UPDATE`, bikeID,
	).Scan(&b.ID, &b.CityID, &b.StatusID, &b.ParkID, &b.Lat, &b.Lon)
	if errors.Is(err, pgx.ErrNoRows) {
		return BikeInfo{}, types.NotFound("bike_id")
	}
	if err != nil {
		return BikeInfo{}, err
	}
	return b, nil
}

func (s *SQLStore) CreateRide(ctx context.Context, r *Ride) (int64, error) {
	var id int64
	err := s.q.QueryRow(ctx, `
		INSERT INTO rides (start_time, start_lat, start_lon, start_park_id, user_id, bike_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`,
		r.StartTime, r.StartLat, r.StartLon, r.StartParkID, r.UserID, r.BikeID,
	).Scan(&id)
	if err != nil {
		return 0, infra.StoreError(err)
	}
	return id, nil
}

func (s *SQLStore) SetUserRide(ctx context.Context, userID, rideID int64) (bool, error) {
	tag, err := s.q.Exec(ctx, `UPDATE users SET ride_id = $1 WHERE id = $2`, rideID, userID)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

func (s *SQLStore) ClaimBike(ctx context.Context, bikeID, userID int64) error {
	_, err := s.q.Exec(ctx, `
		UPDATE bikes SET user_id = $1, status_id = 1, park_id = 0 WHERE id = $2`,
		userID, bikeID)
	return err
}

func (s *SQLStore) CloseRide(ctx context.Context, rideID int64, durationMin, stopLat, stopLon, price float64) error {
	_, err := s.q.Exec(ctx, `
		UPDATE rides SET duration = $1, stop_lat = $2, stop_lon = $3, price = $4
		WHERE id = $5`,
		durationMin, stopLat, stopLon, price, rideID)
	return err
}

func (s *SQLStore) SettleUser(ctx context.Context, userID int64, price float64) error {
	_, err := s.q.Exec(ctx, `
		UPDATE users SET balance = balance - $1, ride_id = 0 WHERE id = $2`,
		price, userID)
	return err
}

func (s *SQLStore) ReleaseBike(ctx context.Context, bikeID, parkID int64) error {
	_, err := s.q.Exec(ctx, `
		UPDATE bikes SET user_id = 0, status_id = 0, park_id = $1 WHERE id = $2`,
		parkID, bikeID)
	return err
}

func (s *SQLStore) AddZoneBikes(ctx context.Context, zoneID int64, delta int64) error {
	_, err := s.q.Exec(ctx, `
		UPDATE park_zones SET num_bikes = num_bikes + $1 WHERE id = $2`,
		delta, zoneID)
	return err
}

func (s *SQLStore) GetUserRideID(ctx context.Context, userID int64) (int64, error) {
	var rideID int64
	err := s.q.QueryRow(ctx, `
		SELECT ride_id FROM users WHERE id = $1 FOR UPDATE`, userID,
	).Scan(&rideID)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, types.NotFound("user_id")
	}
	if err != nil {
		return 0, err
	}
	return rideID, nil
}

func (s *SQLStore) GetOpenRide(ctx context.Context, rideID int64) (Ride, error) {
	r, err := s.get(ctx, rideID)
	if errors.Is(err, types.ErrNotFound) {
		return Ride{}, types.NotFound("no matching ride for user_id")
	}
	return r, err
}

func (s *SQLStore) GetPricing(ctx context.Context, cityID int64) (pricing.Pricing, error) {
	var p pricing.Pricing
	err := s.q.QueryRow(ctx, `
		SELECT id, city_id, start_fee, minute_fee, extra_fee, discount
		FROM pricing
		WHERE city_id = $1`, cityID,
	).Scan(&p.ID, &p.CityID, &p.StartFee, &p.MinuteFee, &p.ExtraFee, &p.Discount)
	if errors.Is(err, pgx.ErrNoRows) {
		return pricing.Pricing{}, types.NotFound("pricing for city_id")
	}
	if err != nil {
		return pricing.Pricing{}, err
	}
	return p, nil
}

// ListZones reads zone geometry inside the transaction so the geofence
// decision and the counter update see the same zone set.
func (s *SQLStore) ListZones(ctx context.Context, cityID int64) ([]parkzone.Zone, error) {
	rows, err := s.q.Query(ctx, `
		SELECT id, city_id, lat, lon, dlat, dlon, num_bikes
		FROM park_zones
		WHERE city_id = $1
		ORDER BY id`, cityID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	zones := []parkzone.Zone{}
	for rows.Next() {
		var z parkzone.Zone
		if err := rows.Scan(&z.ID, &z.CityID, &z.Lat, &z.Lon, &z.DLat, &z.DLon, &z.NumBikes); err != nil {
			return nil, err
		}
		zones = append(zones, z)
	}
	return zones, rows.Err()
}

func (s *SQLStore) Get(ctx context.Context, id int64) (Ride, error) {
	return s.get(ctx, id)
}

func (s *SQLStore) get(ctx context.Context, id int64) (Ride, error) {
	row := s.q.QueryRow(ctx, `
		SELECT id, start_time, duration, start_lat, start_lon, start_park_id,
		       stop_lat, stop_lon, price, user_id, bike_id
		FROM rides
		WHERE id = $1`, id)
	r, err := scanRide(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return Ride{}, types.NotFound("id")
	}
	return r, err
}

func (s *SQLStore) ListByUser(ctx context.Context, userID int64) ([]Ride, error) {
	return s.list(ctx, `
		SELECT id, start_time, duration, start_lat, start_lon, start_park_id,
		       stop_lat, stop_lon, price, user_id, bike_id
		FROM rides
		WHERE user_id = $1
		ORDER BY id`, userID)
}

func (s *SQLStore) ListByBike(ctx context.Context, bikeID int64) ([]Ride, error) {
	return s.list(ctx, `
		SELECT id, start_time, duration, start_lat, start_lon, start_park_id,
		       stop_lat, stop_lon, price, user_id, bike_id
		FROM rides
		WHERE bike_id = $1
		ORDER BY id`, bikeID)
}

func (s *SQLStore) list(ctx context.Context, sqlText string, arg any) ([]Ride, error) {
	rows, err := s.q.Query(ctx, sqlText, arg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	rides := []Ride{}
	for rows.Next() {
		r, err := scanRide(rows)
		if err != nil {
			return nil, err
		}
		rides = append(rides, r)
	}
	return rides, rows.Err()
}

func (s *SQLStore) Delete(ctx context.Context, id int64) error {
	tag, err := s.q.Exec(ctx, `DELETE FROM rides WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return types.NotFound("id")
	}
	return nil
}

func scanRide(row pgx.Row) (Ride, error) {
	var r Ride
	var startTime time.Time
	var duration, stopLat, stopLon, price sql.NullFloat64

	err := row.Scan(
		&r.ID, &startTime, &duration, &r.StartLat, &r.StartLon, &r.StartParkID,
		&stopLat, &stopLon, &price, &r.UserID, &r.BikeID,
	)
	if err != nil {
		return Ride{}, err
	}
	r.StartTime = startTime
	r.Duration = toFloatPtr(duration)
	r.StopLat = toFloatPtr(stopLat)
	r.StopLon = toFloatPtr(stopLon)
	r.Price = toFloatPtr(price)
	return r, nil
}

func toFloatPtr(v sql.NullFloat64) *float64 {
	if !v.Valid {
		return nil
	}
	f := v.Float64
	return &f
}
