package contracts

import (
	"context"

	"github.com/light-bringer/pricing-service/internal/app/pricing/domain"
)

// CatalogReader is the read interface the pricing engine consumes from the
// catalog store. All returned values are immutable snapshots for the duration
// of a single price computation; the engine never writes through this
// interface.
type CatalogReader interface {
	// GetProduct retrieves product metadata (minimum order quantity, category).
	GetProduct(ctx context.Context, productID string) (*domain.Product, error)

	// GetTierTable retrieves the product's validated tier table.
	// Returns domain.ErrNoTiersDefined when the product has no tiers.
	GetTierTable(ctx context.Context, productID string) (*domain.TierTable, error)

	// GetProductOptions retrieves the product's per-product capability set:
	// its variants with the referenced options and offered values.
	GetProductOptions(ctx context.Context, productID string) (*domain.ProductOptions, error)
}
