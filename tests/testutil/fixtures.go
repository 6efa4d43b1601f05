package testutil

import (
	"context"
	"testing"

	"cloud.google.com/go/spanner"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/pricing-service/internal/models/m_option"
	"github.com/light-bringer/pricing-service/internal/models/m_option_value"
	"github.com/light-bringer/pricing-service/internal/models/m_price_tier"
	"github.com/light-bringer/pricing-service/internal/models/m_product"
	"github.com/light-bringer/pricing-service/internal/models/m_product_variant"
)

// CreateTestProduct creates a product row directly in the database.
func CreateTestProduct(t *testing.T, client *spanner.Client, name string) string {
	t.Helper()

	ctx := context.Background()
	productID := uuid.New().String()

	model := m_product.NewModel()
	data := &m_product.Data{
		ProductID:        productID,
		Name:             name,
		Category:         "business-cards",
		MinOrderQuantity: 1,
		Status:           "active",
	}

	_, err := client.Apply(ctx, []*spanner.Mutation{model.InsertMut(data)})
	require.NoError(t, err, "failed to create test product")

	return productID
}

// TierRow describes one tier fixture row.
type TierRow struct {
	MinQuantity          int64
	MaxQuantity          int64
	UnitPriceNumerator   int64
	UnitPriceDenominator int64
	DiscountPercent      int64
}

// CreateTestTiers inserts tier rows for a product.
func CreateTestTiers(t *testing.T, client *spanner.Client, productID string, rows []TierRow) {
	t.Helper()

	ctx := context.Background()
	model := m_price_tier.NewModel()

	muts := make([]*spanner.Mutation, 0, len(rows))
	for _, row := range rows {
		muts = append(muts, model.InsertMut(&m_price_tier.Data{
			ProductID:            productID,
			TierID:               uuid.New().String(),
			MinQuantity:          row.MinQuantity,
			MaxQuantity:          row.MaxQuantity,
			UnitPriceNumerator:   row.UnitPriceNumerator,
			UnitPriceDenominator: row.UnitPriceDenominator,
			DiscountPercent:      row.DiscountPercent,
		}))
	}

	_, err := client.Apply(ctx, muts)
	require.NoError(t, err, "failed to create test tiers")
}

// CreateTestOption inserts a global option definition.
func CreateTestOption(t *testing.T, client *spanner.Client, key, displayName string, required bool, selectionType string) {
	t.Helper()

	ctx := context.Background()
	model := m_option.NewModel()

	_, err := client.Apply(ctx, []*spanner.Mutation{model.InsertMut(&m_option.Data{
		OptionKey:     key,
		DisplayName:   displayName,
		IsRequired:    required,
		SelectionType: selectionType,
	})})
	require.NoError(t, err, "failed to create test option")
}

// CreateTestOptionValue inserts one value under an option and returns its ID.
func CreateTestOptionValue(t *testing.T, client *spanner.Client, optionKey, displayName string, surchargeNum, surchargeDenom int64) string {
	t.Helper()

	ctx := context.Background()
	valueID := uuid.New().String()
	model := m_option_value.NewModel()

	_, err := client.Apply(ctx, []*spanner.Mutation{model.InsertMut(&m_option_value.Data{
		ValueID:              valueID,
		OptionKey:            optionKey,
		DisplayName:          displayName,
		SurchargeNumerator:   surchargeNum,
		SurchargeDenominator: surchargeDenom,
	})})
	require.NoError(t, err, "failed to create test option value")

	return valueID
}

// CreateTestVariant links a product to an option with an offered value subset.
func CreateTestVariant(t *testing.T, client *spanner.Client, productID, optionKey string, valueIDs []string) {
	t.Helper()

	ctx := context.Background()
	model := m_product_variant.NewModel()

	_, err := client.Apply(ctx, []*spanner.Mutation{model.InsertMut(&m_product_variant.Data{
		ProductID:         productID,
		OptionKey:         optionKey,
		AvailableValueIDs: valueIDs,
	})})
	require.NoError(t, err, "failed to create test variant")
}
