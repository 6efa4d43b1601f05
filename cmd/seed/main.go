package main

import (
	"context"
	"flag"
	"fmt"

	"cloud.google.com/go/spanner"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/light-bringer/pricing-service/internal/app/pricing/domain"
	"github.com/light-bringer/pricing-service/internal/app/pricing/repo"
	"github.com/light-bringer/pricing-service/internal/app/pricing/usecases/generate_tiers"
	"github.com/light-bringer/pricing-service/internal/config"
	"github.com/light-bringer/pricing-service/internal/models/m_option"
	"github.com/light-bringer/pricing-service/internal/models/m_option_value"
	"github.com/light-bringer/pricing-service/internal/models/m_product"
	"github.com/light-bringer/pricing-service/internal/models/m_product_variant"
	"github.com/light-bringer/pricing-service/internal/pkg/clock"
	"github.com/light-bringer/pricing-service/internal/pkg/committer"
)

var rulesPath = flag.String("rules", "configs/pricing_rules.yaml", "Pricing rules YAML file")

// Seeds a demo catalog for local development: a couple of products with
// options, values, variants, and generated tier tables.
func main() {
	flag.Parse()

	log := logrus.New()

	if err := run(context.Background(), log); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}

	log.Info("Demo catalog seeded.")
}

type seedProduct struct {
	name     string
	category string
	minOrder int64
}

func run(ctx context.Context, log *logrus.Logger) error {
	cfg := config.Load()

	rules, err := config.LoadRules(*rulesPath)
	if err != nil {
		return err
	}

	client, err := spanner.NewClient(ctx, cfg.Spanner.Database)
	if err != nil {
		return fmt.Errorf("failed to create Spanner client: %w", err)
	}
	defer client.Close()

	comm := committer.NewCommitter(client)
	clk := clock.NewRealClock()

	if err := seedOptions(ctx, comm); err != nil {
		return err
	}

	catalog := repo.NewCatalogStore(client)
	interactor := generate_tiers.NewInteractor(catalog, repo.NewPriceTierRepo(), comm)

	products := []seedProduct{
		{name: "Embossed Business Cards", category: "business-cards", minOrder: 1},
		{name: "Stamped Leather Labels", category: "leather-labels", minOrder: 50},
	}

	for _, sp := range products {
		product, err := domain.NewProduct(uuid.New().String(), sp.name, sp.category, sp.minOrder, clk.Now())
		if err != nil {
			return err
		}

		plan := committer.NewPlan()
		plan.Add(m_product.NewModel().InsertMut(&m_product.Data{
			ProductID:        product.ID(),
			Name:             product.Name(),
			Category:         product.Category(),
			MinOrderQuantity: product.MinOrderQuantity(),
			Status:           string(product.Status()),
		}))
		plan.Add(m_product_variant.NewModel().InsertMut(&m_product_variant.Data{
			ProductID:         product.ID(),
			OptionKey:         "color",
			AvailableValueIDs: []string{"val-black", "val-brown"},
		}))

		if err := comm.Apply(ctx, plan); err != nil {
			return fmt.Errorf("failed to seed product %q: %w", sp.name, err)
		}

		model, ok := rules[sp.category]
		if !ok {
			return fmt.Errorf("no pricing rule defined for category %q", sp.category)
		}

		table, err := interactor.Execute(ctx, &generate_tiers.Request{
			ProductID: product.ID(),
			Model:     model,
		})
		if err != nil {
			return err
		}

		log.Infof("seeded %q (%s) with %d tiers", sp.name, product.ID(), table.Len())
	}

	return nil
}

// seedOptions writes the shared option dictionary: a required single-select
// color with two values.
func seedOptions(ctx context.Context, comm *committer.Committer) error {
	plan := committer.NewPlan()

	plan.Add(m_option.NewModel().InsertMut(&m_option.Data{
		OptionKey:     "color",
		DisplayName:   "Color",
		IsRequired:    true,
		SelectionType: string(domain.SelectSingle),
	}))

	values := []m_option_value.Data{
		{ValueID: "val-black", OptionKey: "color", DisplayName: "Black", SurchargeNumerator: 0, SurchargeDenominator: 1, Swatch: "#000000"},
		{ValueID: "val-brown", OptionKey: "color", DisplayName: "Brown", SurchargeNumerator: 5, SurchargeDenominator: 2, Swatch: "#5b3a29"},
	}
	for i := range values {
		plan.Add(m_option_value.NewModel().InsertMut(&values[i]))
	}

	if err := comm.Apply(ctx, plan); err != nil {
		return fmt.Errorf("failed to seed options: %w", err)
	}
	return nil
}
