package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countingRepo tracks how often each query reaches the backing store.
type countingRepo struct {
	products  []*Product
	listCalls int
	getCalls  int
}

func (c *countingRepo) ListProducts(_ context.Context, category string) ([]*Product, error) {
	c.listCalls++
	if category == "" {
		return c.products, nil
	}
	var out []*Product
	for _, p := range c.products {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out, nil
}

func (c *countingRepo) GetProduct(_ context.Context, id string) (*Product, error) {
	c.getCalls++
	for _, p := range c.products {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, ErrProductNotFound
}

func testProducts() []*Product {
	return []*Product{
		{ID: "dp-1", Name: "Dehydrated Chicken Jerky", Category: CategoryTreats, Variants: []Variant{{Size: "50g", Price: 15}}},
		{ID: "dp-2", Name: "Chicken Feet (Naked)", Category: CategoryChews, Variants: []Variant{{Size: "5 pcs", Price: 10}}},
	}
}

func TestServiceListCachesResult(t *testing.T) {
	repo := &countingRepo{products: testProducts()}
	svc := NewService(repo)

	first, err := svc.ListProducts(context.Background(), "")
	require.NoError(t, err)
	require.Len(t, first, 2)

	second, err := svc.ListProducts(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, repo.listCalls)

	// A different category is a separate cache entry.
	_, err = svc.ListProducts(context.Background(), CategoryChews)
	require.NoError(t, err)
	assert.Equal(t, 2, repo.listCalls)
}

func TestServiceListWarmsByIDCache(t *testing.T) {
	repo := &countingRepo{products: testProducts()}
	svc := NewService(repo)

	_, err := svc.ListProducts(context.Background(), "")
	require.NoError(t, err)

	p, err := svc.GetProduct(context.Background(), "dp-2")
	require.NoError(t, err)
	assert.Equal(t, "Chicken Feet (Naked)", p.Name)
	assert.Equal(t, 0, repo.getCalls)
}

func TestServiceGetCachesResult(t *testing.T) {
	repo := &countingRepo{products: testProducts()}
	svc := NewService(repo)

	_, err := svc.GetProduct(context.Background(), "dp-1")
	require.NoError(t, err)
	_, err = svc.GetProduct(context.Background(), "dp-1")
	require.NoError(t, err)
	assert.Equal(t, 1, repo.getCalls)
}

func TestServiceGetNotFoundIsNotCached(t *testing.T) {
	repo := &countingRepo{products: testProducts()}
	svc := NewService(repo)

	_, err := svc.GetProduct(context.Background(), "dp-404")
	assert.ErrorIs(t, err, ErrProductNotFound)

	_, err = svc.GetProduct(context.Background(), "dp-404")
	assert.ErrorIs(t, err, ErrProductNotFound)
	assert.Equal(t, 2, repo.getCalls)
}
