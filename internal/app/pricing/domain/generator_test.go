package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func leatherBatchModel(t *testing.T) CostPlusFixedBatch {
	t.Helper()
	return CostPlusFixedBatch{
		FullUnits:     500,
		HalfUnits:     250,
		FullBatchCost: mustMoney(t, "45.00"),
		HalfBatchCost: mustMoney(t, "25.00"),
		ManagementFee: mustMoney(t, "12.00"),
		UnitMarkup:    mustMoney(t, "0.15"),
	}
}

func TestTieredMargin_Validate(t *testing.T) {
	t.Run("valid points", func(t *testing.T) {
		m := TieredMargin{Points: []PricePoint{
			{MinQuantity: 1, TargetUnitPrice: mustMoney(t, "67.00")},
			{MinQuantity: 12, TargetUnitPrice: mustMoney(t, "62.00")},
		}}
		assert.NoError(t, m.Validate())
	})

	t.Run("empty points rejected", func(t *testing.T) {
		assert.ErrorIs(t, TieredMargin{}.Validate(), ErrInvalidCostModelConfig)
	})

	t.Run("descending min quantities rejected", func(t *testing.T) {
		m := TieredMargin{Points: []PricePoint{
			{MinQuantity: 12, TargetUnitPrice: mustMoney(t, "62.00")},
			{MinQuantity: 1, TargetUnitPrice: mustMoney(t, "67.00")},
		}}
		assert.ErrorIs(t, m.Validate(), ErrInvalidCostModelConfig)
	})

	t.Run("rising target price rejected", func(t *testing.T) {
		m := TieredMargin{Points: []PricePoint{
			{MinQuantity: 1, TargetUnitPrice: mustMoney(t, "62.00")},
			{MinQuantity: 12, TargetUnitPrice: mustMoney(t, "67.00")},
		}}
		assert.ErrorIs(t, m.Validate(), ErrInvalidCostModelConfig)
	})
}

func TestCostPlusFixedBatch_Validate(t *testing.T) {
	t.Run("valid model", func(t *testing.T) {
		assert.NoError(t, leatherBatchModel(t).Validate())
	})

	t.Run("zero full units rejected", func(t *testing.T) {
		m := leatherBatchModel(t)
		m.FullUnits = 0
		assert.ErrorIs(t, m.Validate(), ErrInvalidCostModelConfig)
	})

	t.Run("zero half units rejected", func(t *testing.T) {
		m := leatherBatchModel(t)
		m.HalfUnits = 0
		assert.ErrorIs(t, m.Validate(), ErrInvalidCostModelConfig)
	})

	t.Run("half units at or above full units rejected", func(t *testing.T) {
		m := leatherBatchModel(t)
		m.HalfUnits = 500
		assert.ErrorIs(t, m.Validate(), ErrInvalidCostModelConfig)
	})

	t.Run("half batch pricier than full batch rejected", func(t *testing.T) {
		m := leatherBatchModel(t)
		m.HalfBatchCost = mustMoney(t, "50.00")
		assert.ErrorIs(t, m.Validate(), ErrInvalidCostModelConfig)
	})

	t.Run("unsorted quantity ladder rejected", func(t *testing.T) {
		m := leatherBatchModel(t)
		m.Quantities = []int64{100, 50}
		assert.ErrorIs(t, m.Validate(), ErrInvalidCostModelConfig)
	})
}

func TestCostPlusFixedBatch_ProductionCost(t *testing.T) {
	m := leatherBatchModel(t)

	tests := []struct {
		name     string
		quantity int64
		want     string
	}{
		{"remainder fits half batch", 600, "70.00"},  // 1 full + 1 half
		{"remainder needs full batch", 900, "90.00"}, // 1 full + 1 full top-up
		{"exact full batches", 1000, "90.00"},
		{"small order uses one half batch", 10, "25.00"},
		{"just above half batch", 251, "45.00"},
		{"exactly half batch", 250, "25.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, m.ProductionCost(tt.quantity).String())
		})
	}
}

func TestTierGenerator_CostPlus(t *testing.T) {
	g := NewTierGenerator()

	t.Run("sale price for 600 units", func(t *testing.T) {
		m := leatherBatchModel(t)
		m.Quantities = []int64{600, 1200}

		table, err := g.Generate(1, m)
		require.NoError(t, err)

		// cost 70 + fee 12 + markup 0.15*600 = 172.00, already on the
		// 0.50 grid, so the ceiling step leaves it alone.
		first := table.First()
		assert.Equal(t, "0.2867", first.UnitPrice().FloatString(4))
		assert.Equal(t, "172.00", first.UnitPrice().MultiplyByInt(600).String())
	})

	t.Run("default ladder produces contiguous monotone table", func(t *testing.T) {
		table, err := g.Generate(1, leatherBatchModel(t))
		require.NoError(t, err)

		tiers := table.Tiers()
		require.Len(t, tiers, len(DefaultQuantityLadder))

		// 25+12+1.5 = 38.50 for 10 units.
		assert.Equal(t, int64(1), tiers[0].MinQuantity())
		assert.Equal(t, int64(19), tiers[0].MaxQuantity())
		assert.Equal(t, "3.85", tiers[0].UnitPrice().String())

		// 25+12+3 = 40.00 for 20 units.
		assert.Equal(t, int64(20), tiers[1].MinQuantity())
		assert.Equal(t, "2.00", tiers[1].UnitPrice().String())
		assert.Equal(t, int64(48), tiers[1].DiscountPercent())

		last := tiers[len(tiers)-1]
		assert.True(t, last.IsUnbounded())
		// Two full batches: 90+12+150 = 252.00 for 1000 units.
		assert.Equal(t, "252.00", last.UnitPrice().MultiplyByInt(1000).RoundHalfUp(2).String())
	})

	t.Run("ceiling step rounds up to the next 0.50", func(t *testing.T) {
		m := leatherBatchModel(t)
		m.UnitMarkup = mustMoney(t, "0.17")
		m.Quantities = []int64{30}

		table, err := g.Generate(1, m)
		require.NoError(t, err)

		// 25+12+5.10 = 42.10 rounds up to 42.50.
		total := table.First().UnitPrice().MultiplyByInt(30)
		assert.Equal(t, "42.50", total.String())
	})

	t.Run("min order quantity lowers the first bound", func(t *testing.T) {
		m := leatherBatchModel(t)

		table, err := g.Generate(5, m)
		require.NoError(t, err)
		assert.Equal(t, int64(5), table.First().MinQuantity())

		_, err = table.Resolve(3, Strict)
		assert.ErrorIs(t, err, ErrNoMatchingTier)
	})

	t.Run("invalid model fails before generation", func(t *testing.T) {
		m := leatherBatchModel(t)
		m.HalfUnits = 700

		_, err := g.Generate(1, m)
		assert.ErrorIs(t, err, ErrInvalidCostModelConfig)
	})

	t.Run("free first band is a configuration error, not a panic", func(t *testing.T) {
		m := leatherBatchModel(t)
		m.HalfBatchCost = mustMoney(t, "0.00")
		m.ManagementFee = mustMoney(t, "0.00")
		m.UnitMarkup = mustMoney(t, "0.00")

		// The smallest ladder quantity fits a half batch, so its unit
		// price collapses to zero and no discount ratio exists.
		_, err := g.Generate(1, m)
		assert.ErrorIs(t, err, ErrInvalidCostModelConfig)
	})
}

func TestTierGenerator_TieredMargin(t *testing.T) {
	g := NewTierGenerator()

	model := TieredMargin{Points: []PricePoint{
		{MinQuantity: 1, TargetUnitPrice: mustMoney(t, "67.00")},
		{MinQuantity: 12, TargetUnitPrice: mustMoney(t, "62.00")},
		{MinQuantity: 50, TargetUnitPrice: mustMoney(t, "56.00")},
	}}

	t.Run("points map to contiguous tiers", func(t *testing.T) {
		table, err := g.Generate(1, model)
		require.NoError(t, err)

		tiers := table.Tiers()
		require.Len(t, tiers, 3)

		assert.Equal(t, int64(11), tiers[0].MaxQuantity())
		assert.Equal(t, int64(49), tiers[1].MaxQuantity())
		assert.True(t, tiers[2].IsUnbounded())

		// Target prices are taken verbatim; no ceiling step in this model.
		assert.Equal(t, "67.00", tiers[0].UnitPrice().String())
		assert.Equal(t, "62.00", tiers[1].UnitPrice().String())
		assert.Equal(t, "56.00", tiers[2].UnitPrice().String())
	})

	t.Run("discount percentages derive from the first point", func(t *testing.T) {
		table, err := g.Generate(1, model)
		require.NoError(t, err)

		tiers := table.Tiers()
		assert.Equal(t, int64(0), tiers[0].DiscountPercent())
		assert.Equal(t, int64(7), tiers[1].DiscountPercent())  // round(7.46)
		assert.Equal(t, int64(16), tiers[2].DiscountPercent()) // round(16.42)
	})
}

func TestTierGenerator_Idempotence(t *testing.T) {
	g := NewTierGenerator()
	m := leatherBatchModel(t)

	first, err := g.Generate(1, m)
	require.NoError(t, err)
	second, err := g.Generate(1, m)
	require.NoError(t, err)

	require.Equal(t, first.Len(), second.Len())
	for i := range first.Tiers() {
		a, b := first.Tiers()[i], second.Tiers()[i]
		assert.Equal(t, a.MinQuantity(), b.MinQuantity())
		assert.Equal(t, a.MaxQuantity(), b.MaxQuantity())
		assert.True(t, a.UnitPrice().Equals(b.UnitPrice()))
		assert.Equal(t, a.DiscountPercent(), b.DiscountPercent())
	}
}
