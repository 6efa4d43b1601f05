package repo

import (
	"context"
	"fmt"

	"cloud.google.com/go/spanner"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"

	"github.com/light-bringer/pricing-service/internal/app/pricing/contracts"
	"github.com/light-bringer/pricing-service/internal/app/pricing/domain"
	"github.com/light-bringer/pricing-service/internal/models/m_price_tier"
	"github.com/light-bringer/pricing-service/internal/models/m_product"
	"github.com/light-bringer/pricing-service/internal/pkg/query"
)

// ReadModelImpl implements ReadModel for Spanner.
// Queries bypass the domain layer; prices are approximated as float64 for
// display only.
type ReadModelImpl struct {
	client *spanner.Client
}

// NewReadModel creates a new ReadModel implementation.
func NewReadModel(client *spanner.Client) contracts.ReadModel {
	return &ReadModelImpl{client: client}
}

// tierSummary aggregates a product's tiers for listing.
type tierSummary struct {
	count  int64
	lowest float64
}

// GetProductDetail retrieves a product with its tiers for display.
func (rm *ReadModelImpl) GetProductDetail(ctx context.Context, productID string) (*contracts.ProductDetail, error) {
	row, err := rm.client.Single().ReadRow(ctx, m_product.TableName, spanner.Key{productID}, []string{
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

	tiers, err := rm.tiersFor(ctx, []string{productID})
	if err != nil {
		return nil, err
	}

	detail := &contracts.ProductDetail{
		Product: *productToDTO(&data),
	}

	for _, tier := range tiers {
		detail.Tiers = append(detail.Tiers, tierToDTO(tier))
		detail.Product.TierCount++
	}

	if n := len(tiers); n > 0 {
		// Monotonicity puts the cheapest unit price in the last band.
		detail.Product.LowestUnitPrice = detail.Tiers[n-1].UnitPrice
	}

	return detail, nil
}

// ListProducts retrieves a filtered list of products with tier summaries.
func (rm *ReadModelImpl) ListProducts(ctx context.Context, filter *contracts.ListFilter) (*contracts.ListResult, error) {
	builder := query.From(m_product.TableName).
		Select(
			m_product.ProductID,
			m_product.Name,
			m_product.Category,
			m_product.MinOrderQuantity,
			m_product.Status,
			m_product.CreatedAt,
			m_product.UpdatedAt,
		)

	if filter.Category != "" {
		builder = builder.Where(query.Eq(m_product.Category, filter.Category))
	}

	if filter.Status != "" {
		builder = builder.Where(query.Eq(m_product.Status, filter.Status))
	}

	pageSize := filter.PageSize
	if pageSize <= 0 {
		pageSize = 50 // Default page size
	}
	if pageSize > 100 {
		pageSize = 100 // Max page size
	}

	stmt := builder.
		OrderBy(m_product.CreatedAt, query.Desc).
		Limit(int64(pageSize)).
		Build()

	iter := rm.client.Single().Query(ctx, stmt)
	defer iter.Stop()

	products := make([]*contracts.ProductDTO, 0, pageSize)
	productIDs := make([]string, 0, pageSize)

	for {
		row, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate products: %w", err)
		}

		var data m_product.Data
		if err := row.ToStruct(&data); err != nil {
			return nil, fmt.Errorf("failed to parse product: %w", err)
		}

		products = append(products, productToDTO(&data))
		productIDs = append(productIDs, data.ProductID)
	}

	if len(productIDs) > 0 {
		summaries, err := rm.tierSummaries(ctx, productIDs)
		if err != nil {
			return nil, err
		}
		for _, dto := range products {
			if s, ok := summaries[dto.ProductID]; ok {
				dto.TierCount = s.count
				dto.LowestUnitPrice = s.lowest
			}
		}
	}

	return &contracts.ListResult{
		Products:   products,
		TotalCount: int64(len(products)),
	}, nil
}

// tiersFor fetches tier rows for the given products, ordered by band.
func (rm *ReadModelImpl) tiersFor(ctx context.Context, productIDs []string) ([]*m_price_tier.Data, error) {
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
		Where(query.In(m_price_tier.ProductID, productIDs)).
		OrderBy(m_price_tier.MinQuantity, query.Asc).
		Build()

	iter := rm.client.Single().Query(ctx, stmt)
	defer iter.Stop()

	var tiers []*m_price_tier.Data
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
		tiers = append(tiers, &data)
	}

	return tiers, nil
}

// tierSummaries aggregates tier count and cheapest unit price per product.
func (rm *ReadModelImpl) tierSummaries(ctx context.Context, productIDs []string) (map[string]tierSummary, error) {
	tiers, err := rm.tiersFor(ctx, productIDs)
	if err != nil {
		return nil, err
	}

	summaries := make(map[string]tierSummary, len(productIDs))
	for _, tier := range tiers {
		s := summaries[tier.ProductID]
		s.count++

		unit := unitPriceFloat(tier)
		if s.count == 1 || unit < s.lowest {
			s.lowest = unit
		}
		summaries[tier.ProductID] = s
	}

	return summaries, nil
}

func productToDTO(data *m_product.Data) *contracts.ProductDTO {
	return &contracts.ProductDTO{
		ProductID:        data.ProductID,
		Name:             data.Name,
		Category:         data.Category,
		MinOrderQuantity: data.MinOrderQuantity,
		Status:           data.Status,
		CreatedAt:        data.CreatedAt,
		UpdatedAt:        data.UpdatedAt,
	}
}

func tierToDTO(data *m_price_tier.Data) contracts.TierDTO {
	dto := contracts.TierDTO{
		MinQuantity:     data.MinQuantity,
		UnitPrice:       unitPriceFloat(data),
		DiscountPercent: data.DiscountPercent,
	}

	if data.MaxQuantity != domain.UnboundedQuantity {
		max := data.MaxQuantity
		dto.MaxQuantity = &max
	}

	return dto
}

func unitPriceFloat(data *m_price_tier.Data) float64 {
	return float64(data.UnitPriceNumerator) / float64(data.UnitPriceDenominator)
}
