package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/pricing-service/internal/app/pricing/domain"
)

const sampleRules = `
categories:
  business-cards:
    model: tiered_margin
    tiered_margin:
      points:
        - min_quantity: 1
          unit_price: "67.00"
        - min_quantity: 12
          unit_price: "62.00"
        - min_quantity: 50
          unit_price: "56.00"
  leather-labels:
    model: cost_plus_fixed_batch
    cost_plus_fixed_batch:
      full_batch_units: 500
      half_batch_units: 250
      full_batch_cost: "45.00"
      half_batch_cost: "25.00"
      management_fee: "12.00"
      unit_markup: "0.15"
      quantities: [100, 250, 500, 1000]
`

func TestParseRules(t *testing.T) {
	t.Run("parses both model kinds", func(t *testing.T) {
		models, err := ParseRules([]byte(sampleRules))
		require.NoError(t, err)
		require.Len(t, models, 2)

		margin, ok := models["business-cards"].(domain.TieredMargin)
		require.True(t, ok)
		require.Len(t, margin.Points, 3)
		assert.Equal(t, int64(12), margin.Points[1].MinQuantity)
		assert.Equal(t, "62.00", margin.Points[1].TargetUnitPrice.FloatString(2))

		costPlus, ok := models["leather-labels"].(domain.CostPlusFixedBatch)
		require.True(t, ok)
		assert.Equal(t, int64(500), costPlus.FullUnits)
		assert.Equal(t, int64(250), costPlus.HalfUnits)
		assert.Equal(t, "0.15", costPlus.UnitMarkup.FloatString(2))
		assert.Equal(t, []int64{100, 250, 500, 1000}, costPlus.Quantities)
	})

	t.Run("rejects unknown model tag", func(t *testing.T) {
		_, err := ParseRules([]byte(`
categories:
  posters:
    model: flat_rate
`))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown cost model")
	})

	t.Run("rejects missing model section", func(t *testing.T) {
		_, err := ParseRules([]byte(`
categories:
  posters:
    model: tiered_margin
`))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "tiered_margin section missing")
	})

	t.Run("rejects invalid decimal", func(t *testing.T) {
		_, err := ParseRules([]byte(`
categories:
  posters:
    model: tiered_margin
    tiered_margin:
      points:
        - min_quantity: 1
          unit_price: "abc"
`))
		require.Error(t, err)
	})

	t.Run("validates the decoded model", func(t *testing.T) {
		_, err := ParseRules([]byte(`
categories:
  posters:
    model: tiered_margin
    tiered_margin:
      points:
        - min_quantity: 1
          unit_price: "10.00"
        - min_quantity: 10
          unit_price: "12.00"
`))
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrInvalidCostModelConfig)
	})

	t.Run("rejects empty document", func(t *testing.T) {
		_, err := ParseRules([]byte("categories: {}"))
		require.Error(t, err)
	})
}
