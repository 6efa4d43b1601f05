package domain

import (
	"fmt"
	"math/big"
)

// priceIncrement is the 0.50 granularity cost-plus sale prices are ceiled to.
// The tiered-margin model takes its curated prices verbatim; the asymmetry
// matches the business rules this engine was built against.
var priceIncrement = NewMoneyFromRat(big.NewRat(1, 2))

// TierGenerator produces a product's tier table from a cost model.
// Stateless; generation is deterministic, so identical parameters always
// yield an identical table.
type TierGenerator struct{}

// NewTierGenerator creates a new TierGenerator instance.
func NewTierGenerator() *TierGenerator {
	return &TierGenerator{}
}

// Generate validates the model and builds the tier table. The first tier's
// lower bound is lowered to the product's minimum order quantity when that
// minimum is below the first target, so the table covers every orderable
// quantity; below the minimum, resolution fails under the strict policy.
func (g *TierGenerator) Generate(minOrderQuantity int64, model CostModel) (*TierTable, error) {
	if minOrderQuantity < 1 {
		return nil, ErrInvalidMinOrder
	}

	if err := model.Validate(); err != nil {
		return nil, err
	}

	switch m := model.(type) {
	case TieredMargin:
		return g.generateTieredMargin(minOrderQuantity, m)
	case CostPlusFixedBatch:
		return g.generateCostPlus(minOrderQuantity, m)
	default:
		return nil, fmt.Errorf("unknown cost model %T: %w", model, ErrInvalidCostModelConfig)
	}
}

func (g *TierGenerator) generateTieredMargin(minOrderQuantity int64, m TieredMargin) (*TierTable, error) {
	unitPrices := make([]*Money, len(m.Points))
	mins := make([]int64, len(m.Points))
	for i, p := range m.Points {
		unitPrices[i] = p.TargetUnitPrice
		mins[i] = p.MinQuantity
	}
	return g.buildTable(minOrderQuantity, mins, unitPrices)
}

func (g *TierGenerator) generateCostPlus(minOrderQuantity int64, m CostPlusFixedBatch) (*TierTable, error) {
	ladder := m.QuantityLadder()

	unitPrices := make([]*Money, len(ladder))
	for i, quantity := range ladder {
		cost := m.ProductionCost(quantity)
		rawPrice := cost.Add(m.ManagementFee).Add(m.UnitMarkup.MultiplyByInt(quantity))
		salePrice := rawPrice.CeilToIncrement(priceIncrement)

		unitPrice, err := salePrice.DivideByInt(quantity)
		if err != nil {
			return nil, err
		}
		unitPrices[i] = unitPrice
	}

	return g.buildTable(minOrderQuantity, ladder, unitPrices)
}

// buildTable assembles tiers from parallel (min quantity, unit price) slices:
// each tier's max quantity is the next tier's min minus one, the last tier is
// unbounded, and discount percentages are derived against the first tier.
func (g *TierGenerator) buildTable(minOrderQuantity int64, mins []int64, unitPrices []*Money) (*TierTable, error) {
	first := unitPrices[0]

	tiers := make([]*PriceTier, len(mins))
	for i := range mins {
		minQuantity := mins[i]
		if i == 0 && minOrderQuantity < minQuantity {
			minQuantity = minOrderQuantity
		}

		maxQuantity := UnboundedQuantity
		if i < len(mins)-1 {
			maxQuantity = mins[i+1] - 1
		}

		percent, err := discountPercent(first, unitPrices[i])
		if err != nil {
			return nil, err
		}

		tier, err := NewPriceTier(minQuantity, maxQuantity, unitPrices[i], percent)
		if err != nil {
			return nil, err
		}
		tiers[i] = tier
	}

	table, err := NewTierTable(tiers)
	if err != nil {
		return nil, fmt.Errorf("generated tiers: %w", err)
	}
	return table, nil
}

// discountPercent computes round((1 - price/first) * 100), half up.
// The first tier's price anchors the ratio, so it must be positive; a model
// whose parameters produce a zero price is a configuration error.
func discountPercent(first, price *Money) (int64, error) {
	if !first.IsPositive() {
		return 0, fmt.Errorf("first tier unit price must be positive: %w", ErrInvalidCostModelConfig)
	}

	ratio := new(big.Rat).Quo(price.Rat(), first.Rat())
	pct := new(big.Rat).Sub(big.NewRat(1, 1), ratio)
	pct.Mul(pct, big.NewRat(100, 1))

	rounded := NewMoneyFromRat(pct).RoundHalfUp(0)
	return rounded.Numerator()
}
