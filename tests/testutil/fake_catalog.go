package testutil

import (
	"context"

	"github.com/light-bringer/pricing-service/internal/app/pricing/domain"
	"github.com/light-bringer/pricing-service/internal/pkg/committer"
)

// FakeCatalog is an in-memory CatalogReader for unit tests.
// Unset products/tables surface the same sentinel errors the Spanner
// store returns, so error paths can be exercised without an emulator.
type FakeCatalog struct {
	Products map[string]*domain.Product
	Tiers    map[string]*domain.TierTable
	Options  map[string]*domain.ProductOptions
}

// NewFakeCatalog creates an empty in-memory catalog.
func NewFakeCatalog() *FakeCatalog {
	return &FakeCatalog{
		Products: make(map[string]*domain.Product),
		Tiers:    make(map[string]*domain.TierTable),
		Options:  make(map[string]*domain.ProductOptions),
	}
}

// AddProduct registers a product snapshot.
func (f *FakeCatalog) AddProduct(p *domain.Product) {
	f.Products[p.ID()] = p
}

// SetTierTable registers a tier table for a product.
func (f *FakeCatalog) SetTierTable(productID string, table *domain.TierTable) {
	f.Tiers[productID] = table
}

// SetOptions registers a capability set for a product.
func (f *FakeCatalog) SetOptions(productID string, opts *domain.ProductOptions) {
	f.Options[productID] = opts
}

func (f *FakeCatalog) GetProduct(_ context.Context, productID string) (*domain.Product, error) {
	p, ok := f.Products[productID]
	if !ok {
		return nil, domain.ErrProductNotFound
	}
	return p, nil
}

func (f *FakeCatalog) GetTierTable(_ context.Context, productID string) (*domain.TierTable, error) {
	table, ok := f.Tiers[productID]
	if !ok {
		return nil, domain.ErrNoTiersDefined
	}
	return table, nil
}

func (f *FakeCatalog) GetProductOptions(_ context.Context, productID string) (*domain.ProductOptions, error) {
	opts, ok := f.Options[productID]
	if !ok {
		return domain.NewProductOptions(nil, nil, nil)
	}
	return opts, nil
}

// RecordingApplier captures commit plans instead of applying them.
type RecordingApplier struct {
	Plans []*committer.CommitPlan

	// Err is returned from Apply when set.
	Err error
}

func (r *RecordingApplier) Apply(_ context.Context, plan *committer.CommitPlan) error {
	if r.Err != nil {
		return r.Err
	}
	r.Plans = append(r.Plans, plan)
	return nil
}

// LastPlan returns the most recently applied plan, or nil.
func (r *RecordingApplier) LastPlan() *committer.CommitPlan {
	if len(r.Plans) == 0 {
		return nil
	}
	return r.Plans[len(r.Plans)-1]
}
