// README: Charging station service; thin CRUD.
package station

import "context"

type StationStore interface {
	ListByCity(ctx context.Context, cityID int64) ([]Station, error)
	Get(ctx context.Context, id int64) (Station, error)
	Add(ctx context.Context, st Station) (int64, error)
	Update(ctx context.Context, st Station) error
	Delete(ctx context.Context, id int64) error
}

type Service struct {
	store StationStore
}

func NewService(store StationStore) *Service {
	return &Service{store: store}
}

func (s *Service) ListByCity(ctx context.Context, cityID int64) ([]Station, error) {
	return s.store.ListByCity(ctx, cityID)
}

func (s *Service) Get(ctx context.Context, id int64) (Station, error) {
	return s.store.Get(ctx, id)
}

func (s *Service) Add(ctx context.Context, st Station) (int64, error) {
	return s.store.Add(ctx, st)
}

func (s *Service) Update(ctx context.Context, st Station) error {
	return s.store.Update(ctx, st)
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.store.Delete(ctx, id)
}
