// README: Pricing store backed by PostgreSQL; one row per city.
package pricing

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

func (s *Store) GetByCity(ctx context.Context, cityID int64) (Pricing, error) {
	var p Pricing
	err := s.db.QueryRow(ctx, `
		SELECT id, city_id, start_fee, minute_fee, extra_fee, discount
		FROM pricing
		WHERE city_id = $1`, cityID,
	).Scan(&p.ID, &p.CityID, &p.StartFee, &p.MinuteFee, &p.ExtraFee, &p.Discount)
	if errors.Is(err, pgx.ErrNoRows) {
		return Pricing{}, types.NotFound("pricing for city_id")
	}
	if err != nil {
		return Pricing{}, err
	}
	return p, nil
}

// Add relies on the unique index on city_id to reject a second pricing
// row for the same city.
func (s *Store) Add(ctx context.Context, p Pricing) (int64, error) {
	var id int64
	err := s.db.QueryRow(ctx, `
		INSERT INTO pricing (city_id, start_fee, minute_fee, extra_fee, discount)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`,
		p.CityID, p.StartFee, p.MinuteFee, p.ExtraFee, p.Discount,
	).Scan(&id)
	if err != nil {
		return 0, infra.StoreError(err)
	}
	return id, nil
}

func (s *Store) UpdateByCity(ctx context.Context, p Pricing) error {
	tag, err := s.db.Exec(ctx, `
		UPDATE pricing
		SET start_fee = $1, minute_fee = $2, extra_fee = $3, discount = $4
		WHERE city_id = $5`,
		p.StartFee, p.MinuteFee, p.ExtraFee, p.Discount, p.CityID)
	if err != nil {
		return infra.StoreError(err)
	}
	if tag.RowsAffected() == 0 {
		return types.NotFound("city_id")
	}
	return nil
}

func (s *Store) DeleteByCity(ctx context.Context, cityID int64) error {
	tag, err := s.db.Exec(ctx, `DELETE FROM pricing WHERE city_id = $1`, cityID)
	if err != nil {
		return infra.StoreError(err)
	}
	if tag.RowsAffected() == 0 {
		return types.NotFound("city_id")
	}
	return nil
}
