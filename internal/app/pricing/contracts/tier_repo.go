package contracts

import (
	"cloud.google.com/go/spanner"

	"github.com/light-bringer/pricing-service/internal/app/pricing/domain"
)

// PriceTierRepository persists generated tier tables.
// Repositories return mutations, they don't apply them; the generate-tiers
// interactor collects them into a commit plan and applies the whole table
// replacement atomically.
type PriceTierRepository interface {
	// InsertMut creates a mutation for inserting one generated tier.
	// Tier IDs are deterministic over (productID, min quantity), so
	// re-running the generator with identical parameters rewrites the
	// same rows. Returns an error if money values exceed int64 bounds.
	InsertMut(productID string, tier *domain.PriceTier) (*spanner.Mutation, error)

	// DeleteAllMut creates a mutation removing every tier of the product.
	DeleteAllMut(productID string) *spanner.Mutation
}
