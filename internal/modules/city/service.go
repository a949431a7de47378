// README: City service; thin CRUD.
package city

import "context"

type CityStore interface {
	List(ctx context.Context) ([]City, error)
	Get(ctx context.Context, id int64) (City, error)
	Add(ctx context.Context, c City) (int64, error)
	Update(ctx context.Context, c City) error
	Delete(ctx context.Context, id int64) error
}

type Service struct {
	store CityStore
}

func NewService(store CityStore) *Service {
	return &Service{store: store}
}

func (s *Service) List(ctx context.Context) ([]City, error) {
	return s.store.List(ctx)
}

func (s *Service) Get(ctx context.Context, id int64) (City, error) {
	return s.store.Get(ctx, id)
}

func (s *Service) Add(ctx context.Context, c City) (int64, error) {
	return s.store.Add(ctx, c)
}

func (s *Service) Update(ctx context.Context, c City) error {
	return s.store.Update(ctx, c)
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.store.Delete(ctx, id)
}
