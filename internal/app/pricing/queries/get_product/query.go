package get_product

import (
	"context"

	"github.com/light-bringer/pricing-service/internal/app/pricing/contracts"
)

// Request contains the product ID to retrieve.
type Request struct {
	ProductID string
}

// Query handles the get product query use case.
type Query struct {
	readModel contracts.ReadModel
}

// NewQuery creates a new get product query.
func NewQuery(readModel contracts.ReadModel) *Query {
	return &Query{
		readModel: readModel,
	}
}

// Execute retrieves a product with its tier table for display.
func (q *Query) Execute(ctx context.Context, req *Request) (*contracts.ProductDetail, error) {
	return q.readModel.GetProductDetail(ctx, req.ProductID)
}
