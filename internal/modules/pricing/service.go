// README: Pricing service; thin CRUD over the per-city pricing rows.
package pricing

import "context"

type PricingStore interface {
	GetByCity(ctx context.Context, cityID int64) (Pricing, error)
	Add(ctx context.Context, p Pricing) (int64, error)
	UpdateByCity(ctx context.Context, p Pricing) error
	DeleteByCity(ctx context.Context, cityID int64) error
}

type Service struct {
	store PricingStore
}

func NewService(store PricingStore) *Service {
	return &Service{store: store}
}

func (s *Service) GetByCity(ctx context.Context, cityID int64) (Pricing, error) {
	return s.store.GetByCity(ctx, cityID)
}

func (s *Service) Add(ctx context.Context, p Pricing) (int64, error) {
	return s.store.Add(ctx, p)
}

func (s *Service) UpdateByCity(ctx context.Context, p Pricing) error {
	return s.store.UpdateByCity(ctx, p)
}

func (s *Service) DeleteByCity(ctx context.Context, cityID int64) error {
	return s.store.DeleteByCity(ctx, cityID)
}
