package resolve_tier

import (
	"context"

	"github.com/light-bringer/pricing-service/internal/app/pricing/contracts"
	"github.com/light-bringer/pricing-service/internal/app/pricing/domain"
)

// Request contains the tier resolution parameters.
type Request struct {
	ProductID string
	Quantity  int64

	// FallbackLowest opts into best-effort resolution: quantities below the
	// table resolve to the lowest band instead of failing.
	FallbackLowest bool
}

// Query handles the resolve tier use case.
type Query struct {
	catalog contracts.CatalogReader
}

// NewQuery creates a new resolve tier query.
func NewQuery(catalog contracts.CatalogReader) *Query {
	return &Query{catalog: catalog}
}

// Execute resolves the price tier covering the requested quantity.
func (q *Query) Execute(ctx context.Context, req *Request) (*domain.PriceTier, error) {
	table, err := q.catalog.GetTierTable(ctx, req.ProductID)
	if err != nil {
		return nil, err
	}

	policy := domain.Strict
	if req.FallbackLowest {
		policy = domain.FallbackLowest
	}

	return table.Resolve(req.Quantity, policy)
}
