package main

import (
	"context"
	"flag"
	"fmt"

	"cloud.google.com/go/spanner"
	"github.com/sirupsen/logrus"

	"github.com/light-bringer/pricing-service/internal/app/pricing/repo"
	"github.com/light-bringer/pricing-service/internal/app/pricing/usecases/generate_tiers"
	"github.com/light-bringer/pricing-service/internal/config"
	"github.com/light-bringer/pricing-service/internal/pkg/committer"
)

var (
	productID = flag.String("product", "", "Product ID to generate tiers for")
	rulesPath = flag.String("rules", "configs/pricing_rules.yaml", "Pricing rules YAML file")
	category  = flag.String("category", "", "Rules category to apply (defaults to the product's own category)")
	dryRun    = flag.Bool("dry-run", false, "Print the generated table without persisting it")
)

func main() {
	flag.Parse()

	log := logrus.New()

	if *productID == "" {
		log.Fatal("-product is required")
	}

	if err := run(context.Background(), log); err != nil {
		log.Fatalf("Tier generation failed: %v", err)
	}
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

	catalog := repo.NewCatalogStore(client)
	interactor := generate_tiers.NewInteractor(catalog, repo.NewPriceTierRepo(), committer.NewCommitter(client))

	// The rules category defaults to the product's catalog category.
	ruleCategory := *category
	if ruleCategory == "" {
		product, err := catalog.GetProduct(ctx, *productID)
		if err != nil {
			return err
		}
		ruleCategory = product.Category()
	}

	model, ok := rules[ruleCategory]
	if !ok {
		return fmt.Errorf("no pricing rule defined for category %q", ruleCategory)
	}

	table, err := interactor.Execute(ctx, &generate_tiers.Request{
		ProductID: *productID,
		Model:     model,
		DryRun:    *dryRun,
	})
	if err != nil {
		return err
	}

	for _, tier := range table.Tiers() {
		upper := "∞"
		if !tier.IsUnbounded() {
			upper = fmt.Sprintf("%d", tier.MaxQuantity())
		}
		log.Infof("%6d - %6s  unit %s  (-%d%%)",
			tier.MinQuantity(), upper, tier.UnitPrice().FloatString(4), tier.DiscountPercent())
	}

	if *dryRun {
		log.Info("dry run, nothing was written")
	} else {
		log.Infof("replaced tier table for product %s (%d tiers)", *productID, table.Len())
	}

	return nil
}
