package domain

import (
	"fmt"
	"math"
	"sort"
)

// UnboundedQuantity is the sentinel max quantity of a table's last tier.
const UnboundedQuantity int64 = math.MaxInt64

// FallbackPolicy controls what Resolve does when no tier covers the quantity.
type FallbackPolicy int

const (
	// Strict surfaces ErrNoMatchingTier to the caller.
	Strict FallbackPolicy = iota
	// FallbackLowest falls back to the tier with the smallest min quantity.
	// Best-effort mode, opt-in only.
	FallbackLowest
)

// PriceTier maps an inclusive quantity range to a per-unit price.
type PriceTier struct {
	minQuantity     int64
	maxQuantity     int64
	unitPrice       *Money
	discountPercent int64
}

// NewPriceTier creates a PriceTier with validation.
// Use UnboundedQuantity as maxQuantity for the last tier of a table.
func NewPriceTier(minQuantity, maxQuantity int64, unitPrice *Money, discountPercent int64) (*PriceTier, error) {
	if minQuantity < 1 {
		return nil, fmt.Errorf("tier min quantity must be at least 1, got %d: %w", minQuantity, ErrInvalidQuantity)
	}

	if maxQuantity < minQuantity {
		return nil, ErrInvalidTierRange
	}

	if unitPrice == nil || unitPrice.IsNegative() {
		return nil, fmt.Errorf("tier unit price must be non-negative")
	}

	return &PriceTier{
		minQuantity:     minQuantity,
		maxQuantity:     maxQuantity,
		unitPrice:       unitPrice.Copy(),
		discountPercent: discountPercent,
	}, nil
}

// Getters
func (t *PriceTier) MinQuantity() int64     { return t.minQuantity }
func (t *PriceTier) MaxQuantity() int64     { return t.maxQuantity }
func (t *PriceTier) UnitPrice() *Money      { return t.unitPrice.Copy() }
func (t *PriceTier) DiscountPercent() int64 { return t.discountPercent }

// IsUnbounded returns true if the tier has no upper quantity bound.
func (t *PriceTier) IsUnbounded() bool {
	return t.maxQuantity == UnboundedQuantity
}

// Covers returns true if the quantity falls inside the tier's inclusive range.
func (t *PriceTier) Covers(quantity int64) bool {
	return quantity >= t.minQuantity && quantity <= t.maxQuantity
}

// TierTable is a product's complete, validated set of price tiers.
// Invariants: tiers are sorted by min quantity, non-overlapping and contiguous
// from the first tier's min quantity to infinity, the last tier is unbounded,
// and unit price never increases as min quantity increases.
type TierTable struct {
	tiers []*PriceTier
}

// NewTierTable validates the tier set and returns a TierTable.
// Input order does not matter; tiers are sorted by min quantity.
func NewTierTable(tiers []*PriceTier) (*TierTable, error) {
	if len(tiers) == 0 {
		return nil, ErrNoTiersDefined
	}

	sorted := make([]*PriceTier, len(tiers))
	copy(sorted, tiers)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].minQuantity < sorted[j].minQuantity
	})

	for i := 1; i < len(sorted); i++ {
		prev, cur := sorted[i-1], sorted[i]

		if cur.minQuantity <= prev.maxQuantity {
			return nil, fmt.Errorf("tier starting at %d overlaps tier ending at %d: %w",
				cur.minQuantity, prev.maxQuantity, ErrTierOverlap)
		}

		if cur.minQuantity != prev.maxQuantity+1 {
			return nil, fmt.Errorf("gap between quantity %d and %d: %w",
				prev.maxQuantity, cur.minQuantity, ErrTierGap)
		}

		if cur.unitPrice.GreaterThan(prev.unitPrice) {
			return nil, fmt.Errorf("unit price rises at quantity %d: %w",
				cur.minQuantity, ErrPriceNotMonotone)
		}
	}

	if !sorted[len(sorted)-1].IsUnbounded() {
		return nil, ErrTierNotUnbounded
	}

	return &TierTable{tiers: sorted}, nil
}

// Tiers returns the tiers in ascending min-quantity order.
func (tt *TierTable) Tiers() []*PriceTier {
	out := make([]*PriceTier, len(tt.tiers))
	copy(out, tt.tiers)
	return out
}

// First returns the lowest-quantity tier. All discount percentages and savings
// figures are benchmarked against this tier.
func (tt *TierTable) First() *PriceTier {
	return tt.tiers[0]
}

// Len returns the number of tiers.
func (tt *TierTable) Len() int {
	return len(tt.tiers)
}

// Resolve selects the tier covering the quantity.
// Under Strict it returns ErrNoMatchingTier when the quantity is below the
// first tier's min quantity; under FallbackLowest it returns the first tier
// instead. Quantities above the table are always covered because the last
// tier is unbounded.
func (tt *TierTable) Resolve(quantity int64, policy FallbackPolicy) (*PriceTier, error) {
	if quantity < 1 {
		return nil, ErrInvalidQuantity
	}

	for _, tier := range tt.tiers {
		if tier.Covers(quantity) {
			return tier, nil
		}
	}

	if policy == FallbackLowest {
		return tt.First(), nil
	}

	return nil, fmt.Errorf("quantity %d: %w", quantity, ErrNoMatchingTier)
}
