package list_products

import (
	"context"

	"github.com/light-bringer/pricing-service/internal/app/pricing/contracts"
)

// Request contains the list filter parameters.
type Request struct {
	Category string
	Status   string
	PageSize int
}

// Query handles the list products query use case.
type Query struct {
	readModel contracts.ReadModel
}

// NewQuery creates a new list products query.
func NewQuery(readModel contracts.ReadModel) *Query {
	return &Query{
		readModel: readModel,
	}
}

// Execute retrieves a filtered product list with tier summaries.
func (q *Query) Execute(ctx context.Context, req *Request) (*contracts.ListResult, error) {
	return q.readModel.ListProducts(ctx, &contracts.ListFilter{
		Category: req.Category,
		Status:   req.Status,
		PageSize: req.PageSize,
	})
}
