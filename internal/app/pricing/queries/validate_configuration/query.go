package validate_configuration

import (
	"context"

	"github.com/light-bringer/pricing-service/internal/app/pricing/contracts"
	"github.com/light-bringer/pricing-service/internal/app/pricing/domain"
)

// Request contains the configuration to validate.
type Request struct {
	ProductID        string
	SelectedValueIDs []string
}

// Query handles the validate configuration use case.
type Query struct {
	catalog contracts.CatalogReader
}

// NewQuery creates a new validate configuration query.
func NewQuery(catalog contracts.CatalogReader) *Query {
	return &Query{catalog: catalog}
}

// Execute checks the selected values against the product's capability set.
func (q *Query) Execute(ctx context.Context, req *Request) (*domain.ValidationResult, error) {
	opts, err := q.catalog.GetProductOptions(ctx, req.ProductID)
	if err != nil {
		return nil, err
	}

	result := domain.Validate(opts, req.SelectedValueIDs)
	return &result, nil
}
