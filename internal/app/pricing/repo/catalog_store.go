package repo

import (
	"context"
	"fmt"

	"cloud.google.com/go/spanner"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"

	"github.com/light-bringer/pricing-service/internal/app/pricing/contracts"
	"github.com/light-bringer/pricing-service/internal/app/pricing/domain"
	"github.com/light-bringer/pricing-service/internal/models/m_option"
	"github.com/light-bringer/pricing-service/internal/models/m_option_value"
	"github.com/light-bringer/pricing-service/internal/models/m_price_tier"
	"github.com/light-bringer/pricing-service/internal/models/m_product"
	"github.com/light-bringer/pricing-service/internal/models/m_product_variant"
	"github.com/light-bringer/pricing-service/internal/pkg/query"
)

// CatalogStore implements CatalogReader for Spanner.
// All reads are single-use snapshots; the engine never writes through it.
type CatalogStore struct {
	client *spanner.Client
}

// NewCatalogStore creates a new CatalogStore.
func NewCatalogStore(client *spanner.Client) contracts.CatalogReader {
	return &CatalogStore{client: client}
}

// GetProduct retrieves product metadata by ID.
func (s *CatalogStore) GetProduct(ctx context.Context, productID string) (*domain.Product, error) {
	row, err := s.client.Single().ReadRow(ctx, m_product.TableName, spanner.Key{productID}, []string{
		m_product.ProductID,
		m_product.Name,
		m_product.Category,
		m_product.MinOrderQuantity,
		m_product.Status,
		m_product.CreatedAt,
		m_product.UpdatedAt,
	})
	if err != nil {
		if spanner.ErrCode(err) == codes.NotFound {
			return nil, domain.ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to read product: %w", err)
	}

	var data m_product.Data
	if err := row.ToStruct(&data); err != nil {
		return nil, fmt.Errorf("failed to parse product: %w", err)
	}

	return domain.ReconstructProduct(
		data.ProductID,
		data.Name,
		data.Category,
		data.MinOrderQuantity,
		domain.ProductStatus(data.Status),
		data.CreatedAt,
		data.UpdatedAt,
	), nil
}

// GetTierTable retrieves and validates the product's tier set.
func (s *CatalogStore) GetTierTable(ctx context.Context, productID string) (*domain.TierTable, error) {
	stmt := query.From(m_price_tier.TableName).
		Select(
			m_price_tier.ProductID,
			m_price_tier.TierID,
			m_price_tier.MinQuantity,
			m_price_tier.MaxQuantity,
			m_price_tier.UnitPriceNumerator,
			m_price_tier.UnitPriceDenominator,
			m_price_tier.DiscountPercent,
			m_price_tier.CreatedAt,
			m_price_tier.UpdatedAt,
		).
		Where(query.Eq(m_price_tier.ProductID, productID)).
		OrderBy(m_price_tier.MinQuantity, query.Asc).
		Build()

	iter := s.client.Single().Query(ctx, stmt)
	defer iter.Stop()

	var tiers []*domain.PriceTier
	for {
		row, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate price tiers: %w", err)
		}

		var data m_price_tier.Data
		if err := row.ToStruct(&data); err != nil {
			return nil, fmt.Errorf("failed to parse price tier: %w", err)
		}

		tier, err := dataToTier(&data)
		if err != nil {
			return nil, err
		}
		tiers = append(tiers, tier)
	}

	if len(tiers) == 0 {
		return nil, domain.ErrNoTiersDefined
	}

	return domain.NewTierTable(tiers)
}

// GetProductOptions builds the product's capability set from its variants
// and the referenced options and values.
func (s *CatalogStore) GetProductOptions(ctx context.Context, productID string) (*domain.ProductOptions, error) {
	variants, optionKeys, err := s.readVariants(ctx, productID)
	if err != nil {
		return nil, err
	}

	if len(variants) == 0 {
		// Product with no configurable axes; every selection validates
		// against an empty capability set.
		return domain.NewProductOptions(nil, nil, nil)
	}

	options, err := s.readOptions(ctx, optionKeys)
	if err != nil {
		return nil, err
	}

	values, err := s.readValues(ctx, optionKeys)
	if err != nil {
		return nil, err
	}

	return domain.NewProductOptions(options, values, variants)
}

func (s *CatalogStore) readVariants(ctx context.Context, productID string) ([]domain.Variant, []string, error) {
	stmt := query.From(m_product_variant.TableName).
		Select(
			m_product_variant.ProductID,
			m_product_variant.OptionKey,
			m_product_variant.AvailableValueIDs,
			m_product_variant.CreatedAt,
			m_product_variant.UpdatedAt,
		).
		Where(query.Eq(m_product_variant.ProductID, productID)).
		OrderBy(m_product_variant.OptionKey, query.Asc).
		Build()

	iter := s.client.Single().Query(ctx, stmt)
	defer iter.Stop()

	var variants []domain.Variant
	var optionKeys []string
	for {
		row, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, nil, fmt.Errorf("failed to iterate product variants: %w", err)
		}

		var data m_product_variant.Data
		if err := row.ToStruct(&data); err != nil {
			return nil, nil, fmt.Errorf("failed to parse product variant: %w", err)
		}

		variants = append(variants, domain.Variant{
			OptionKey:         data.OptionKey,
			AvailableValueIDs: data.AvailableValueIDs,
		})
		optionKeys = append(optionKeys, data.OptionKey)
	}

	return variants, optionKeys, nil
}

func (s *CatalogStore) readOptions(ctx context.Context, optionKeys []string) ([]domain.Option, error) {
	stmt := query.From(m_option.TableName).
		Select(
			m_option.OptionKey,
			m_option.DisplayName,
			m_option.IsRequired,
			m_option.SelectionType,
			m_option.CreatedAt,
			m_option.UpdatedAt,
		).
		Where(query.In(m_option.OptionKey, optionKeys)).
		Build()

	iter := s.client.Single().Query(ctx, stmt)
	defer iter.Stop()

	var options []domain.Option
	for {
		row, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate options: %w", err)
		}

		var data m_option.Data
		if err := row.ToStruct(&data); err != nil {
			return nil, fmt.Errorf("failed to parse option: %w", err)
		}

		options = append(options, domain.Option{
			Key:           data.OptionKey,
			DisplayName:   data.DisplayName,
			Required:      data.IsRequired,
			SelectionType: domain.SelectionType(data.SelectionType),
		})
	}

	return options, nil
}

func (s *CatalogStore) readValues(ctx context.Context, optionKeys []string) ([]domain.OptionValue, error) {
	stmt := query.From(m_option_value.TableName).
		Select(
			m_option_value.ValueID,
			m_option_value.OptionKey,
			m_option_value.DisplayName,
			m_option_value.SurchargeNumerator,
			m_option_value.SurchargeDenominator,
			m_option_value.Swatch,
			m_option_value.CreatedAt,
			m_option_value.UpdatedAt,
		).
		Where(query.In(m_option_value.OptionKey, optionKeys)).
		Build()

	iter := s.client.Single().Query(ctx, stmt)
	defer iter.Stop()

	var values []domain.OptionValue
	for {
		row, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate option values: %w", err)
		}

		var data m_option_value.Data
		if err := row.ToStruct(&data); err != nil {
			return nil, fmt.Errorf("failed to parse option value: %w", err)
		}

		surcharge, err := domain.NewMoney(data.SurchargeNumerator, data.SurchargeDenominator)
		if err != nil {
			return nil, fmt.Errorf("invalid surcharge for value %s: %w", data.ValueID, err)
		}

		values = append(values, domain.OptionValue{
			ID:          data.ValueID,
			OptionKey:   data.OptionKey,
			DisplayName: data.DisplayName,
			Surcharge:   surcharge,
			Swatch:      data.Swatch,
		})
	}

	return values, nil
}

// dataToTier converts a price tier row to the domain value object.
func dataToTier(data *m_price_tier.Data) (*domain.PriceTier, error) {
	unitPrice, err := domain.NewMoney(data.UnitPriceNumerator, data.UnitPriceDenominator)
	if err != nil {
		return nil, fmt.Errorf("invalid unit price for tier %s: %w", data.TierID, err)
	}

	return domain.NewPriceTier(data.MinQuantity, data.MaxQuantity, unitPrice, data.DiscountPercent)
}
