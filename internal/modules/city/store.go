// README: City store backed by PostgreSQL.
package city

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

func (s *Store) List(ctx context.Context) ([]City, error) {
	rows, err := s.db.Query(ctx, `SELECT id, name, lat, lon, dlat, dlon FROM cities ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	cities := []City{}
	for rows.Next() {
		var c City
		if err := rows.Scan(&c.ID, &c.Name, &c.Lat, &c.Lon, &c.DLat, &c.DLon); err != nil {
			return nil, err
		}
		cities = append(cities, c)
	}
	return cities, rows.Err()
}

func (s *Store) Get(ctx context.Context, id int64) (City, error) {
	var c City
	err := s.db.QueryRow(ctx, `
		SELECT id, name, lat, lon, dlat, dlon FROM cities WHERE id = $1`, id,
	).Scan(&c.ID, &c.Name, &c.Lat, &c.Lon, &c.DLat, &c.DLon)
	if errors.Is(err, pgx.ErrNoRows) {
		return City{}, types.NotFound("id")
	}
	if err != nil {
		return City{}, err
	}
	return c, nil
}

// Add relies on the unique constraint on name.
func (s *Store) Add(ctx context.Context, c City) (int64, error) {
	var id int64
	err := s.db.QueryRow(ctx, `
		INSERT INTO cities (name, lat, lon, dlat, dlon)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`,
		c.Name, c.Lat, c.Lon, c.DLat, c.DLon,
	).Scan(&id)
	if err != nil {
		return 0, infra.StoreError(err)
	}
	return id, nil
}

func (s *Store) Update(ctx context.Context, c City) error {
	tag, err := s.db.Exec(ctx, `
		UPDATE cities SET name = $1, lat = $2, lon = $3, dlat = $4, dlon = $5
		WHERE id = $6`,
		c.Name, c.Lat, c.Lon, c.DLat, c.DLon, c.ID)
	if err != nil {
		return infra.StoreError(err)
	}
	if tag.RowsAffected() == 0 {
		return types.NotFound("id")
	}
	return nil
}

func (s *Store) Delete(ctx context.Context, id int64) error {
	tag, err := s.db.Exec(ctx, `DELETE FROM cities WHERE id = $1`, id)
	if err != nil {
		return infra.StoreError(err)
	}
	if tag.RowsAffected() == 0 {
		return types.NotFound("id")
	}
	return nil
}
