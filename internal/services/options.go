package services

import (
	"context"
	"fmt"

	"cloud.google.com/go/spanner"
	"github.com/sirupsen/logrus"

	"github.com/light-bringer/pricing-service/internal/app/pricing/queries/get_product"
	"github.com/light-bringer/pricing-service/internal/app/pricing/queries/list_products"
	"github.com/light-bringer/pricing-service/internal/app/pricing/queries/quote_price"
	"github.com/light-bringer/pricing-service/internal/app/pricing/queries/resolve_tier"
	"github.com/light-bringer/pricing-service/internal/app/pricing/queries/validate_configuration"
	"github.com/light-bringer/pricing-service/internal/app/pricing/repo"
	"github.com/light-bringer/pricing-service/internal/app/pricing/usecases/generate_tiers"
	"github.com/light-bringer/pricing-service/internal/pkg/committer"
	"github.com/light-bringer/pricing-service/internal/transport/http/pricing"
)

// ServiceOptions holds all dependencies for the application.
type ServiceOptions struct {
	SpannerClient  *spanner.Client
	PricingHandler *pricing.Handler
}

// NewServiceOptions creates and wires up all application dependencies.
func NewServiceOptions(ctx context.Context, spannerDB string, log *logrus.Logger) (*ServiceOptions, error) {
	// 1. Initialize Spanner client
	spannerClient, err := spanner.NewClient(ctx, spannerDB)
	if err != nil {
		return nil, fmt.Errorf("failed to create Spanner client: %w", err)
	}

	// 2. Create infrastructure components
	comm := committer.NewCommitter(spannerClient)

	// 3. Create repositories
	catalogStore := repo.NewCatalogStore(spannerClient)
	tierRepo := repo.NewPriceTierRepo()
	readModel := repo.NewReadModel(spannerClient)

	// 4. Create the write use case
	generateTiersUseCase := generate_tiers.NewInteractor(catalogStore, tierRepo, comm)

	// 5. Create query use cases
	resolveTierQuery := resolve_tier.NewQuery(catalogStore)
	validateConfigQuery := validate_configuration.NewQuery(catalogStore)
	quotePriceQuery := quote_price.NewQuery(catalogStore)
	getProductQuery := get_product.NewQuery(readModel)
	listProductsQuery := list_products.NewQuery(readModel)

	// 6. Create HTTP handler
	pricingHandler := pricing.NewHandler(
		resolveTierQuery,
		validateConfigQuery,
		quotePriceQuery,
		getProductQuery,
		listProductsQuery,
		generateTiersUseCase,
		log,
	)

	return &ServiceOptions{
		SpannerClient:  spannerClient,
		PricingHandler: pricingHandler,
	}, nil
}

// Close closes all resources.
func (s *ServiceOptions) Close() {
	if s.SpannerClient != nil {
		s.SpannerClient.Close()
	}
}
