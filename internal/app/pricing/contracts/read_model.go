package contracts

import (
	"context"
	"time"
)

// TierDTO is a display representation of one price tier.
// A nil MaxQuantity means the tier is unbounded.
type TierDTO struct {
	MinQuantity     int64
	MaxQuantity     *int64
	UnitPrice       float64 // Approximate representation for display
	DiscountPercent int64
}

// ProductDTO is a data transfer object for product listing queries.
type ProductDTO struct {
	ProductID        string
	Name             string
	Category         string
	MinOrderQuantity int64
	Status           string
	TierCount        int64
	LowestUnitPrice  float64 // Cheapest per-unit price across tiers, for display
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// ProductDetail pairs a product with its tier table for display.
type ProductDetail struct {
	Product ProductDTO
	Tiers   []TierDTO
}

// ListFilter defines filtering options for listing products.
type ListFilter struct {
	Category string
	Status   string
	PageSize int
}

// ListResult contains product list results.
type ListResult struct {
	Products   []*ProductDTO
	TotalCount int64
}

// ReadModel defines the query interface for catalog display.
// Read models can bypass the domain layer for performance.
type ReadModel interface {
	// GetProductDetail retrieves a product with its tiers for display.
	GetProductDetail(ctx context.Context, productID string) (*ProductDetail, error)

	// ListProducts retrieves a filtered list of products with tier summaries.
	ListProducts(ctx context.Context, filter *ListFilter) (*ListResult, error)
}
