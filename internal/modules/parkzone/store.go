// README: Parking zone store backed by PostgreSQL.
package parkzone

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"velo/internal/infra"
	"velo/internal/types"
)

type Store struct {
	db *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

// ListByCity returns the city's zones in ascending id order. Locate
// relies on this order for its tie-break, so keep the ORDER BY.
func (s *Store) ListByCity(ctx context.Context, cityID int64) ([]Zone, error) {
	rows, err := s.db.Query(ctx, `
		SELECT id, city_id, lat, lon, dlat, dlon, num_bikes
		FROM park_zones
		WHERE city_id = $1
		ORDER BY id`, cityID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	zones := []Zone{}
	for rows.Next() {
		var z Zone
		if err := rows.Scan(&z.ID, &z.CityID, &z.Lat, &z.Lon, &z.DLat, &z.DLon, &z.NumBikes); err != nil {
			return nil, err
		}
		zones = append(zones, z)
	}
	return zones, rows.Err()
}

func (s *Store) Get(ctx context.Context, id int64) (Zone, error) {
	var z Zone
	err := s.db.QueryRow(ctx, `
		SELECT id, city_id, lat, lon, dlat, dlon, num_bikes
		FROM park_zones
		WHERE id = $1`, id,
	).Scan(&z.ID, &z.CityID, &z.Lat, &z.Lon, &z.DLat, &z.DLon, &z.NumBikes)
	if errors.Is(err, pgx.ErrNoRows) {
		return Zone{}, types.NotFound("id")
	}
	if err != nil {
		return Zone{}, err
	}
	return z, nil
}

func (s *Store) Add(ctx context.Context, z Zone) (int64, error) {
	var id int64
	err := s.db.QueryRow(ctx, `
		INSERT INTO park_zones (city_id, lat, lon, dlat, dlon)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`,
		z.CityID, z.Lat, z.Lon, z.DLat, z.DLon,
	).Scan(&id)
	if err != nil {
		return 0, infra.StoreError(err)
	}
	return id, nil
}

func (s *Store) Update(ctx context.Context, z Zone) error {
	tag, err := s.db.Exec(ctx, `
		UPDATE park_zones
		SET city_id = $1, lat = $2, lon = $3, dlat = $4, dlon = $5, num_bikes = $6
		WHERE id = $7`,
		z.CityID, z.Lat, z.Lon, z.DLat, z.DLon, z.NumBikes, z.ID)
	if err != nil {
		return infra.StoreError(err)
	}
	if tag.RowsAffected() == 0 {
		return types.NotFound("id")
	}
	return nil
}

func (s *Store) Delete(ctx context.Context, id int64) error {
	tag, err := s.db.Exec(ctx, `DELETE FROM park_zones WHERE id = $1`, id)
	if err != nil {
		return infra.StoreError(err)
	}
	if tag.RowsAffected() == 0 {
		return types.NotFound("id")
	}
	return nil
}
