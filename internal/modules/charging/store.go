// README: Charging store backed by PostgreSQL; touches bikes and stations.
package charging

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"velo/internal/modules/bike"
	"velo/internal/types"
)

type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
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

func (s *SQLStore) GetBikeDock(ctx context.Context, bikeID int64) (BikeDock, error) {
	var b BikeDock
	err := s.q.QueryRow(ctx, `
		SELECT id, status_id, station_id FROM bikes WHERE id = $1 FOR UPDATE`, bikeID,
	).Scan(&b.ID, &b.StatusID, &b.StationID)
	if errors.Is(err, pgx.ErrNoRows) {
		return BikeDock{}, types.NotFound("bike_id")
	}
	if err != nil {
		return BikeDock{}, err
	}
	return b, nil
}

func (s *SQLStore) AddStationFree(ctx context.Context, stationID int64, delta int64) (bool, error) {
	tag, err := s.q.Exec(ctx, `
		UPDATE stations SET num_free = num_free + $1 WHERE id = $2`, delta, stationID)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

func (s *SQLStore) SetBikeCharging(ctx context.Context, bikeID, stationID int64) error {
	_, err := s.q.Exec(ctx, `
		UPDATE bikes SET status_id = $1, station_id = $2 WHERE id = $3`,
		bike.StatusCharging, stationID, bikeID)
	return err
}

func (s *SQLStore) ClearBikeCharging(ctx context.Context, bikeID int64) error {
	_, err := s.q.Exec(ctx, `
		UPDATE bikes SET status_id = $1, station_id = 0 WHERE id = $2`,
		bike.StatusIdle, bikeID)
	return err
}
