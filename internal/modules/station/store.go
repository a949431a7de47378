// README: Charging station store backed by PostgreSQL.
package station

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

func (s *Store) ListByCity(ctx context.Context, cityID int64) ([]Station, error) {
	rows, err := s.db.Query(ctx, `
		SELECT id, city_id, num_free, num_total, lat, lon
		FROM stations
		WHERE city_id = $1
		ORDER BY id`, cityID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	stations := []Station{}
	for rows.Next() {
		var st Station
		if err := rows.Scan(&st.ID, &st.CityID, &st.NumFree, &st.NumTotal, &st.Lat, &st.Lon); err != nil {
			return nil, err
		}
		stations = append(stations, st)
	}
	return stations, rows.Err()
}

func (s *Store) Get(ctx context.Context, id int64) (Station, error) {
	var st Station
	err := s.db.QueryRow(ctx, `
		SELECT id, city_id, num_free, num_total, lat, lon
		FROM stations
		WHERE id = $1`, id,
	).Scan(&st.ID, &st.CityID, &st.NumFree, &st.NumTotal, &st.Lat, &st.Lon)
	if errors.Is(err, pgx.ErrNoRows) {
		return Station{}, types.NotFound("id")
	}
	if err != nil {
		return Station{}, err
	}
	return st, nil
}

func (s *Store) Add(ctx context.Context, st Station) (int64, error) {
	var id int64
	err := s.db.QueryRow(ctx, `
		INSERT INTO stations (city_id, num_free, num_total, lat, lon)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`,
		st.CityID, st.NumFree, st.NumTotal, st.Lat, st.Lon,
	).Scan(&id)
	if err != nil {
		return 0, infra.StoreError(err)
	}
	return id, nil
}

func (s *Store) Update(ctx context.Context, st Station) error {
	tag, err := s.db.Exec(ctx, `
		UPDATE stations SET city_id = $1, num_free = $2, num_total = $3, lat = $4, lon = $5
		WHERE id = $6`,
		st.CityID, st.NumFree, st.NumTotal, st.Lat, st.Lon, st.ID)
	if err != nil {
		return infra.StoreError(err)
	}
	if tag.RowsAffected() == 0 {
		return types.NotFound("id")
	}
	return nil
}

func (s *Store) Delete(ctx context.Context, id int64) error {
	tag, err := s.db.Exec(ctx, `DELETE FROM stations WHERE id = $1`, id)
	if err != nil {
		return infra.StoreError(err)
	}
	if tag.RowsAffected() == 0 {
		return types.NotFound("id")
	}
	return nil
}
