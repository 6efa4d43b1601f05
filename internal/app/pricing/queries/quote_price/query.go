package quote_price

import (
	"context"

	"github.com/light-bringer/pricing-service/internal/app/pricing/contracts"
	"github.com/light-bringer/pricing-service/internal/app/pricing/domain"
)

// Request contains the quote parameters.
type Request struct {
	ProductID        string
	Quantity         int64
	SelectedValueIDs []string

	// AllowInvalid opts into a best-effort quote annotated with validation
	// errors instead of a hard failure.
	AllowInvalid bool

	// FallbackLowest opts into best-effort tier resolution.
	FallbackLowest bool
}

// Query handles the quote price use case.
type Query struct {
	catalog    contracts.CatalogReader
	calculator *domain.QuoteCalculator
}

// NewQuery creates a new quote price query.
func NewQuery(catalog contracts.CatalogReader) *Query {
	return &Query{
		catalog:    catalog,
		calculator: domain.NewQuoteCalculator(),
	}
}

// Execute prices the requested quantity and configuration.
// Enforces the product's minimum order quantity before tier resolution, so a
// too-small order fails the same way regardless of how the tier table was
// generated.
func (q *Query) Execute(ctx context.Context, req *Request) (*domain.Quote, error) {
	product, err := q.catalog.GetProduct(ctx, req.ProductID)
	if err != nil {
		return nil, err
	}

	if req.Quantity < 1 {
		return nil, domain.ErrInvalidQuantity
	}

	if req.Quantity < product.MinOrderQuantity() && !req.FallbackLowest {
		return nil, domain.ErrNoMatchingTier
	}

	table, err := q.catalog.GetTierTable(ctx, req.ProductID)
	if err != nil {
		return nil, err
	}

	opts, err := q.catalog.GetProductOptions(ctx, req.ProductID)
	if err != nil {
		return nil, err
	}

	policy := domain.Strict
	if req.FallbackLowest {
		policy = domain.FallbackLowest
	}

	return q.calculator.Quote(table, opts, req.Quantity, req.SelectedValueIDs, domain.QuoteOptions{
		AllowInvalid: req.AllowInvalid,
		Fallback:     policy,
	})
}
