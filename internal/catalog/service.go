package catalog

import (
	"context"
	"sync"

	"golang.org/x/sync/singleflight"
)

// Service fronts the repository with an in-memory read-through cache.
// The catalog is read-only after seeding, so entries never expire.
type Service struct {
	repo RepoInterface
	sfg  singleflight.Group // Prevents concurrent misses hitting the DB for the same key

	mu       sync.RWMutex
	byID     map[string]*Product
	listings map[string][]*Product // category ("" = all) -> products
}

func NewService(repo RepoInterface) *Service {
	return &Service{
		repo:     repo,
		byID:     make(map[string]*Product),
		listings: make(map[string][]*Product),
	}
}

func (s *Service) ListProducts(ctx context.Context, category string) ([]*Product, error) {
	s.mu.RLock()
	cached, ok := s.listings[category]
	s.mu.RUnlock()
	if ok {
		return cached, nil
	}

	v, err, _ := s.sfg.Do("list:"+category, func() (interface{}, error) {
		products, err := s.repo.ListProducts(ctx, category)
		if err != nil {
			return nil, err
		}

		s.mu.Lock()
		s.listings[category] = products
		for _, p := range products {
			s.byID[p.ID] = p
		}
		s.mu.Unlock()

		return products, nil
	})
	if err != nil {
		return nil, err
	}

	return v.([]*Product), nil
}

func (s *Service) GetProduct(ctx context.Context, id string) (*Product, error) {
	s.mu.RLock()
	cached, ok := s.byID[id]
	s.mu.RUnlock()
	if ok {
		return cached, nil
	}

	v, err, _ := s.sfg.Do("product:"+id, func() (interface{}, error) {
		p, err := s.repo.GetProduct(ctx, id)
		if err != nil {
			return nil, err
		}

		s.mu.Lock()
		s.byID[p.ID] = p
		s.mu.Unlock()

		return p, nil
	})
	if err != nil {
		return nil, err
	}

	return v.(*Product), nil
}
