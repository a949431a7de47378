// README: Bike store backed by PostgreSQL.
package bike

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"velo/internal/infra"
	"velo/internal/modules/parkzone"
	"velo/internal/types"
)

const bikeColumns = `id, city_id, user_id, status_id, station_id, park_id, lat, lon, speed, battery`

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

func (s *SQLStore) Get(ctx context.Context, id int64) (Bike, error) {
	return s.scanOne(s.q.QueryRow(ctx, `SELECT `+bikeColumns+` FROM bikes WHERE id = $1`, id))
}

// GetForUpdate locks the bike row; used by the zone re-check so a
// concurrent lifecycle operation cannot move the bike mid-check.
func (s *SQLStore) GetForUpdate(ctx context.Context, id int64) (Bike, error) {
	return s.scanOne(s.q.QueryRow(ctx, `SELECT `+bikeColumns+` FROM bikes WHERE id = $1 FOR UPDATE`, id))
}

func (s *SQLStore) GetByUser(ctx context.Context, userID int64) (Bike, error) {
	return s.scanOne(s.q.QueryRow(ctx, `SELECT `+bikeColumns+` FROM bikes WHERE user_id = $1`, userID))
}

func (s *SQLStore) ListByCity(ctx context.Context, cityID int64) ([]Bike, error) {
	return s.list(ctx, `SELECT `+bikeColumns+` FROM bikes WHERE city_id = $1 ORDER BY id`, cityID)
}

func (s *SQLStore) ListByCityStatus(ctx context.Context, cityID, statusID int64) ([]Bike, error) {
	return s.list(ctx, `SELECT `+bikeColumns+` FROM bikes WHERE city_id = $1 AND status_id = $2 ORDER BY id`, cityID, statusID)
}

func (s *SQLStore) ListByCityStation(ctx context.Context, cityID, stationID int64) ([]Bike, error) {
	return s.list(ctx, `SELECT `+bikeColumns+` FROM bikes WHERE city_id = $1 AND station_id = $2 ORDER BY id`, cityID, stationID)
}

func (s *SQLStore) ListByCityPark(ctx context.Context, cityID, parkID int64) ([]Bike, error) {
	return s.list(ctx, `SELECT `+bikeColumns+` FROM bikes WHERE city_id = $1 AND park_id = $2 ORDER BY id`, cityID, parkID)
}

func (s *SQLStore) ListPositions(ctx context.Context, cityID int64) ([]Position, error) {
	rows, err := s.q.Query(ctx, `
		SELECT id, status_id, lat, lon FROM bikes WHERE city_id = $1 ORDER BY id`, cityID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	positions := []Position{}
	for rows.Next() {
		var p Position
		if err := rows.Scan(&p.ID, &p.StatusID, &p.Lat, &p.Lon); err != nil {
			return nil, err
		}
		positions = append(positions, p)
	}
	return positions, rows.Err()
}

func (s *SQLStore) Add(ctx context.Context, b Bike) (int64, error) {
	var id int64
	err := s.q.QueryRow(ctx, `
		INSERT INTO bikes (city_id, user_id, status_id, station_id, park_id, lat, lon, speed, battery)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id`,
		b.CityID, b.UserID, b.StatusID, b.StationID, b.ParkID, b.Lat, b.Lon, b.Speed, b.Battery,
	).Scan(&id)
	if err != nil {
		return 0, infra.StoreError(err)
	}
	return id, nil
}

func (s *SQLStore) Update(ctx context.Context, b Bike) error {
	tag, err := s.q.Exec(ctx, `
		UPDATE bikes
		SET city_id = $1, user_id = $2, status_id = $3, station_id = $4, park_id = $5,
		    lat = $6, lon = $7, speed = $8, battery = $9
		WHERE id = $10`,
		b.CityID, b.UserID, b.StatusID, b.StationID, b.ParkID, b.Lat, b.Lon, b.Speed, b.Battery, b.ID)
	if err != nil {
		return infra.StoreError(err)
	}
	if tag.RowsAffected() == 0 {
		return types.NotFound("id")
	}
	return nil
}

func (s *SQLStore) UpdatePosSpeedBatt(ctx context.Context, id int64, lat, lon, speed, battery float64) error {
	tag, err := s.q.Exec(ctx, `
		UPDATE bikes SET lat = $1, lon = $2, speed = $3, battery = $4 WHERE id = $5`,
		lat, lon, speed, battery, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return types.NotFound("id")
	}
	return nil
}

func (s *SQLStore) UpdateUserStatusStationPark(ctx context.Context, id, userID, statusID, stationID, parkID int64) error {
	tag, err := s.q.Exec(ctx, `
		UPDATE bikes SET user_id = $1, status_id = $2, station_id = $3, park_id = $4
		WHERE id = $5`,
		userID, statusID, stationID, parkID, id)
	if err != nil {
		return infra.StoreError(err)
	}
	if tag.RowsAffected() == 0 {
		return types.NotFound("id")
	}
	return nil
}

func (s *SQLStore) SetBikeParkZone(ctx context.Context, bikeID, parkID int64) error {
	_, err := s.q.Exec(ctx, `UPDATE bikes SET park_id = $1 WHERE id = $2`, parkID, bikeID)
	return err
}

func (s *SQLStore) AddZoneBikes(ctx context.Context, zoneID int64, delta int64) error {
	_, err := s.q.Exec(ctx, `
		UPDATE park_zones SET num_bikes = num_bikes + $1 WHERE id = $2`, delta, zoneID)
	return err
}

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

func (s *SQLStore) Delete(ctx context.Context, id int64) error {
	tag, err := s.q.Exec(ctx, `DELETE FROM bikes WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return types.NotFound("id")
	}
	return nil
}

func (s *SQLStore) scanOne(row pgx.Row) (Bike, error) {
	var b Bike
	err := row.Scan(&b.ID, &b.CityID, &b.UserID, &b.StatusID, &b.StationID, &b.ParkID,
		&b.Lat, &b.Lon, &b.Speed, &b.Battery)
	if errors.Is(err, pgx.ErrNoRows) {
		return Bike{}, types.NotFound("id")
	}
	if err != nil {
		return Bike{}, err
	}
	return b, nil
}

func (s *SQLStore) list(ctx context.Context, sqlText string, args ...any) ([]Bike, error) {
	rows, err := s.q.Query(ctx, sqlText, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	bikes := []Bike{}
	for rows.Next() {
		var b Bike
		if err := rows.Scan(&b.ID, &b.CityID, &b.UserID, &b.StatusID, &b.StationID, &b.ParkID,
			&b.Lat, &b.Lon, &b.Speed, &b.Battery); err != nil {
			return nil, err
		}
		bikes = append(bikes, b)
	}
	return bikes, rows.Err()
}
