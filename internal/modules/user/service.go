// README: User service; thin CRUD plus balance withdrawal.
package user

import "context"

type UserStore interface {
	List(ctx context.Context) ([]Summary, error)
	Get(ctx context.Context, id int64) (User, error)
	Add(ctx context.Context, u User) (int64, error)
	Update(ctx context.Context, u User) error
	Withdraw(ctx context.Context, id int64, amount float64) error
	Delete(ctx context.Context, id int64) error
}

type Service struct {
	store UserStore
}

func NewService(store UserStore) *Service {
	return &Service{store: store}
}

func (s *Service) List(ctx context.Context) ([]Summary, error) {
	return s.store.List(ctx)
}

func (s *Service) Get(ctx context.Context, id int64) (User, error) {
	return s.store.Get(ctx, id)
}

func (s *Service) Add(ctx context.Context, u User) (int64, error) {
	return s.store.Add(ctx, u)
}

func (s *Service) Update(ctx context.Context, u User) error {
	return s.store.Update(ctx, u)
}

func (s *Service) Withdraw(ctx context.Context, id int64, amount float64) error {
	return s.store.Withdraw(ctx, id, amount)
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.store.Delete(ctx, id)
}
