package domain

import "fmt"

// CostModel is the tagged variant selecting how a product's tier table is
// derived. Exactly two models exist: TieredMargin and CostPlusFixedBatch.
// The generator dispatches on the concrete type.
type CostModel interface {
	// Validate rejects bad parameters before generation. Configuration
	// errors must never be discovered via silently wrong prices.
	Validate() error

	isCostModel()
}

// PricePoint is one curated (min quantity, target unit price) pair of the
// tiered-margin model.
type PricePoint struct {
	MinQuantity     int64
	TargetUnitPrice *Money
}

// TieredMargin derives tiers from an ordered list of curated price points.
// The points are produced upstream from a base production cost and a target
// gross margin per quantity band; this model performs no further computation.
type TieredMargin struct {
	Points []PricePoint
}

func (TieredMargin) isCostModel() {}

// Validate checks the point list: non-empty, strictly ascending min
// quantities starting at 1 or above, positive non-increasing target prices.
func (m TieredMargin) Validate() error {
	if len(m.Points) == 0 {
		return fmt.Errorf("tiered margin model needs at least one price point: %w", ErrInvalidCostModelConfig)
	}

	for i, p := range m.Points {
		if p.MinQuantity < 1 {
			return fmt.Errorf("price point %d: min quantity must be positive: %w", i, ErrInvalidCostModelConfig)
		}

		if p.TargetUnitPrice == nil || !p.TargetUnitPrice.IsPositive() {
			return fmt.Errorf("price point %d: target unit price must be positive: %w", i, ErrInvalidCostModelConfig)
		}

		if i > 0 {
			prev := m.Points[i-1]
			if p.MinQuantity <= prev.MinQuantity {
				return fmt.Errorf("price point %d: min quantities must be strictly ascending: %w", i, ErrInvalidCostModelConfig)
			}
			if p.TargetUnitPrice.GreaterThan(prev.TargetUnitPrice) {
				return fmt.Errorf("price point %d: target unit price must not increase with quantity: %w", i, ErrInvalidCostModelConfig)
			}
		}
	}

	return nil
}

// DefaultQuantityLadder is the target quantity list cost-plus tiers are
// emitted for when the model does not supply its own.
var DefaultQuantityLadder = []int64{10, 20, 50, 100, 500, 1000}

// CostPlusFixedBatch derives tiers from raw production batch economics.
// Production runs come in exactly two sizes: a full batch of FullUnits and a
// half batch of HalfUnits. An order is covered by as many full batches as
// fit, then at most one top-up batch for the remainder.
type CostPlusFixedBatch struct {
	FullUnits     int64
	HalfUnits     int64
	FullBatchCost *Money
	HalfBatchCost *Money

	// ManagementFee is added once per order.
	ManagementFee *Money

	// UnitMarkup is the variable profit added per unit.
	UnitMarkup *Money

	// Quantities is the target quantity ladder; DefaultQuantityLadder when empty.
	Quantities []int64
}

func (CostPlusFixedBatch) isCostModel() {}

// Validate rejects degenerate batch geometry and negative money parameters.
// The two-batch-size policy is only cost-optimal when a half batch is
// cheaper than a full one; that precondition is enforced here rather than
// assumed.
func (m CostPlusFixedBatch) Validate() error {
	if m.FullUnits <= 0 {
		return fmt.Errorf("full batch units must be positive, got %d: %w", m.FullUnits, ErrInvalidCostModelConfig)
	}

	if m.HalfUnits <= 0 {
		return fmt.Errorf("half batch units must be positive, got %d: %w", m.HalfUnits, ErrInvalidCostModelConfig)
	}

	if m.HalfUnits >= m.FullUnits {
		return fmt.Errorf("half batch units (%d) must be smaller than full batch units (%d): %w",
			m.HalfUnits, m.FullUnits, ErrInvalidCostModelConfig)
	}

	if m.FullBatchCost == nil || m.FullBatchCost.IsNegative() {
		return fmt.Errorf("full batch cost must be non-negative: %w", ErrInvalidCostModelConfig)
	}

	if m.HalfBatchCost == nil || m.HalfBatchCost.IsNegative() {
		return fmt.Errorf("half batch cost must be non-negative: %w", ErrInvalidCostModelConfig)
	}

	if m.HalfBatchCost.GreaterThanOrEqual(m.FullBatchCost) {
		return fmt.Errorf("half batch cost must be below full batch cost: %w", ErrInvalidCostModelConfig)
	}

	if m.ManagementFee == nil || m.ManagementFee.IsNegative() {
		return fmt.Errorf("management fee must be non-negative: %w", ErrInvalidCostModelConfig)
	}

	if m.UnitMarkup == nil || m.UnitMarkup.IsNegative() {
		return fmt.Errorf("unit markup must be non-negative: %w", ErrInvalidCostModelConfig)
	}

	for i, q := range m.Quantities {
		if q < 1 {
			return fmt.Errorf("target quantity %d must be positive: %w", q, ErrInvalidCostModelConfig)
		}
		if i > 0 && q <= m.Quantities[i-1] {
			return fmt.Errorf("target quantities must be strictly ascending: %w", ErrInvalidCostModelConfig)
		}
	}

	return nil
}

// QuantityLadder returns the model's target quantities, defaulted when unset.
func (m CostPlusFixedBatch) QuantityLadder() []int64 {
	if len(m.Quantities) > 0 {
		return m.Quantities
	}
	return DefaultQuantityLadder
}

// ProductionCost computes the minimal cost of producing the quantity under
// the two-batch-size policy: as many full batches as fit, then one top-up
// batch for the remainder (half if it fits, full otherwise). The remainder is
// never split across multiple half batches.
func (m CostPlusFixedBatch) ProductionCost(quantity int64) *Money {
	numFull := quantity / m.FullUnits
	remainder := quantity % m.FullUnits

	cost := m.FullBatchCost.MultiplyByInt(numFull)
	if remainder > 0 {
		if remainder <= m.HalfUnits {
			cost = cost.Add(m.HalfBatchCost)
		} else {
			cost = cost.Add(m.FullBatchCost)
		}
	}

	return cost
}
