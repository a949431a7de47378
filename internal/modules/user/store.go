// README: User store backed by PostgreSQL.
package user

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

// List intentionally returns id and name only; full rows are per-id.
func (s *Store) List(ctx context.Context) ([]Summary, error) {
	rows, err := s.db.Query(ctx, `SELECT id, name FROM users ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := []Summary{}
	for rows.Next() {
		var u Summary
		if err := rows.Scan(&u.ID, &u.Name); err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

func (s *Store) Get(ctx context.Context, id int64) (User, error) {
	var u User
	err := s.db.QueryRow(ctx, `
		SELECT id, name, balance, bank_account, recurring_withdraw, ride_id
		FROM users
		WHERE id = $1`, id,
	).Scan(&u.ID, &u.Name, &u.Balance, &u.BankAccount, &u.RecurringWithdraw, &u.RideID)
	if errors.Is(err, pgx.ErrNoRows) {
		return User{}, types.NotFound("id")
	}
	if err != nil {
		return User{}, err
	}
	return u, nil
}

// Add relies on the unique constraint on name.
func (s *Store) Add(ctx context.Context, u User) (int64, error) {
	var id int64
	err := s.db.QueryRow(ctx, `
		INSERT INTO users (name, balance, bank_account, recurring_withdraw)
		VALUES ($1, $2, $3, $4)
		RETURNING id`,
		u.Name, u.Balance, u.BankAccount, u.RecurringWithdraw,
	).Scan(&id)
	if err != nil {
		return 0, infra.StoreError(err)
	}
	return id, nil
}

func (s *Store) Update(ctx context.Context, u User) error {
	tag, err := s.db.Exec(ctx, `
		UPDATE users SET name = $1, balance = $2, bank_account = $3, recurring_withdraw = $4
		WHERE id = $5`,
		u.Name, u.Balance, u.BankAccount, u.RecurringWithdraw, u.ID)
	if err != nil {
		return infra.StoreError(err)
	}
	if tag.RowsAffected() == 0 {
		return types.NotFound("id")
	}
	return nil
}

// Withdraw debits amount from the balance; a negative amount is a
// deposit. The balance is allowed to go negative.
func (s *Store) Withdraw(ctx context.Context, id int64, amount float64) error {
	tag, err := s.db.Exec(ctx, `
		UPDATE users SET balance = balance - $1 WHERE id = $2`, amount, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return types.NotFound("id")
	}
	return nil
}

func (s *Store) Delete(ctx context.Context, id int64) error {
	tag, err := s.db.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return infra.StoreError(err)
	}
	if tag.RowsAffected() == 0 {
		return types.NotFound("id")
	}
	return nil
}
