package repo

import (
	"fmt"

	"cloud.google.com/go/spanner"
	"github.com/google/uuid"

	"github.com/light-bringer/pricing-service/internal/app/pricing/contracts"
	"github.com/light-bringer/pricing-service/internal/app/pricing/domain"
	"github.com/light-bringer/pricing-service/internal/models/m_price_tier"
)

// PriceTierRepo implements PriceTierRepository for Spanner.
type PriceTierRepo struct {
	model *m_price_tier.Model
}

// NewPriceTierRepo creates a new PriceTierRepo.
func NewPriceTierRepo() contracts.PriceTierRepository {
	return &PriceTierRepo{
		model: m_price_tier.NewModel(),
	}
}

// InsertMut creates a mutation for inserting a generated tier.
func (r *PriceTierRepo) InsertMut(productID string, tier *domain.PriceTier) (*spanner.Mutation, error) {
	unitPrice := tier.UnitPrice().Normalize()
	if !unitPrice.IsSafeForStorage() {
		return nil, fmt.Errorf("unit price exceeds storage capacity: %w", domain.ErrMoneyOverflow)
	}

	num, err := unitPrice.Numerator()
	if err != nil {
		return nil, err
	}
	denom, err := unitPrice.Denominator()
	if err != nil {
		return nil, err
	}

	data := &m_price_tier.Data{
		ProductID:            productID,
		TierID:               tierID(productID, tier.MinQuantity()),
		MinQuantity:          tier.MinQuantity(),
		MaxQuantity:          tier.MaxQuantity(),
		UnitPriceNumerator:   num,
		UnitPriceDenominator: denom,
		DiscountPercent:      tier.DiscountPercent(),
	}

	return r.model.InsertMut(data), nil
}

// DeleteAllMut creates a mutation removing every tier of the product.
func (r *PriceTierRepo) DeleteAllMut(productID string) *spanner.Mutation {
	return r.model.DeleteAllMut(productID)
}

// tierID derives a deterministic UUID from product and tier band, so
// regenerating with identical parameters rewrites the same rows instead of
// accumulating new ones.
func tierID(productID string, minQuantity int64) string {
	name := fmt.Sprintf("%s/%d", productID, minQuantity)
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte(name)).String()
}
