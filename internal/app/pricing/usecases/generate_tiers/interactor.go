package generate_tiers

import (
	"context"
	"fmt"

	"github.com/light-bringer/pricing-service/internal/app/pricing/contracts"
	"github.com/light-bringer/pricing-service/internal/app/pricing/domain"
	"github.com/light-bringer/pricing-service/internal/pkg/committer"
)

// Request contains the generation parameters. The cost model is passed in
// explicitly by the caller; there is no registry keyed by category slug.
type Request struct {
	ProductID string
	Model     domain.CostModel

	// DryRun computes the table without persisting it.
	DryRun bool
}

// Interactor handles the generate tiers use case.
type Interactor struct {
	catalog   contracts.CatalogReader
	tierRepo  contracts.PriceTierRepository
	committer committer.Applier
}

// NewInteractor creates a new generate tiers interactor.
func NewInteractor(
	catalog contracts.CatalogReader,
	tierRepo contracts.PriceTierRepository,
	comm committer.Applier,
) *Interactor {
	return &Interactor{
		catalog:   catalog,
		tierRepo:  tierRepo,
		committer: comm,
	}
}

// Execute generates the product's tier table from the cost model and
// replaces the persisted set atomically. Generation is deterministic, so
// re-running with identical parameters rewrites identical rows.
func (i *Interactor) Execute(ctx context.Context, req *Request) (*domain.TierTable, error) {
	// 1. Load product metadata (existence check + minimum order quantity)
	product, err := i.catalog.GetProduct(ctx, req.ProductID)
	if err != nil {
		return nil, err
	}

	// 2. Run the generator (pure domain logic, validates the model)
	generator := domain.NewTierGenerator()
	table, err := generator.Generate(product.MinOrderQuantity(), req.Model)
	if err != nil {
		return nil, err
	}

	if req.DryRun {
		return table, nil
	}

	// 3. Build the commit plan: drop the old set, insert the new one
	plan := committer.NewPlan()
	plan.Add(i.tierRepo.DeleteAllMut(req.ProductID))

	for _, tier := range table.Tiers() {
		mut, err := i.tierRepo.InsertMut(req.ProductID, tier)
		if err != nil {
			return nil, err
		}
		plan.Add(mut)
	}

	// 4. Apply the whole replacement atomically
	if err := i.committer.Apply(ctx, plan); err != nil {
		return nil, fmt.Errorf("failed to commit tier table: %w", err)
	}

	return table, nil
}
