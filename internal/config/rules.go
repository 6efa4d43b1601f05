package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/light-bringer/pricing-service/internal/app/pricing/domain"
)

// RulesFile is the on-disk shape of a pricing rules document. Each category
// maps to exactly one cost model; money amounts are decimal strings so the
// file never carries binary-float rounding artifacts.
type RulesFile struct {
	Categories map[string]ModelSpec `yaml:"categories"`
}

// ModelSpec is a tagged cost model definition. Exactly one of the model
// sections must be present, matching Model. The same shape is accepted as
// JSON by the tier generation endpoint.
type ModelSpec struct {
	Model string `yaml:"model" json:"model"`

	TieredMargin *TieredMarginSpec `yaml:"tiered_margin,omitempty" json:"tiered_margin,omitempty"`
	CostPlus     *CostPlusSpec     `yaml:"cost_plus_fixed_batch,omitempty" json:"cost_plus_fixed_batch,omitempty"`
}

type TieredMarginSpec struct {
	Points []PricePointSpec `yaml:"points" json:"points"`
}

type PricePointSpec struct {
	MinQuantity int64  `yaml:"min_quantity" json:"min_quantity"`
	UnitPrice   string `yaml:"unit_price" json:"unit_price"`
}

type CostPlusSpec struct {
	FullUnits     int64   `yaml:"full_batch_units" json:"full_batch_units"`
	HalfUnits     int64   `yaml:"half_batch_units" json:"half_batch_units"`
	FullBatchCost string  `yaml:"full_batch_cost" json:"full_batch_cost"`
	HalfBatchCost string  `yaml:"half_batch_cost" json:"half_batch_cost"`
	ManagementFee string  `yaml:"management_fee" json:"management_fee"`
	UnitMarkup    string  `yaml:"unit_markup" json:"unit_markup"`
	Quantities    []int64 `yaml:"quantities,omitempty" json:"quantities,omitempty"`
}

// LoadRules parses a pricing rules YAML file into validated domain cost
// models keyed by category.
func LoadRules(path string) (map[string]domain.CostModel, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read rules file: %w", err)
	}

	return ParseRules(raw)
}

// ParseRules decodes and validates a pricing rules document.
func ParseRules(raw []byte) (map[string]domain.CostModel, error) {
	var file RulesFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("failed to parse rules file: %w", err)
	}

	if len(file.Categories) == 0 {
		return nil, fmt.Errorf("rules file defines no categories")
	}

	models := make(map[string]domain.CostModel, len(file.Categories))
	for category, spec := range file.Categories {
		model, err := spec.ToDomain()
		if err != nil {
			return nil, fmt.Errorf("category %q: %w", category, err)
		}
		if err := model.Validate(); err != nil {
			return nil, fmt.Errorf("category %q: %w", category, err)
		}
		models[category] = model
	}

	return models, nil
}

// ToDomain converts the tagged definition into a domain cost model.
func (s ModelSpec) ToDomain() (domain.CostModel, error) {
	switch s.Model {
	case "tiered_margin":
		if s.TieredMargin == nil {
			return nil, fmt.Errorf("tiered_margin section missing")
		}
		return s.TieredMargin.toDomain()
	case "cost_plus_fixed_batch":
		if s.CostPlus == nil {
			return nil, fmt.Errorf("cost_plus_fixed_batch section missing")
		}
		return s.CostPlus.toDomain()
	default:
		return nil, fmt.Errorf("unknown cost model %q", s.Model)
	}
}

func (s TieredMarginSpec) toDomain() (domain.CostModel, error) {
	points := make([]domain.PricePoint, len(s.Points))
	for i, p := range s.Points {
		price, err := domain.NewMoneyFromDecimal(p.UnitPrice)
		if err != nil {
			return nil, fmt.Errorf("point %d: %w", i, err)
		}
		points[i] = domain.PricePoint{
			MinQuantity:     p.MinQuantity,
			TargetUnitPrice: price,
		}
	}
	return domain.TieredMargin{Points: points}, nil
}

func (s CostPlusSpec) toDomain() (domain.CostModel, error) {
	fullCost, err := domain.NewMoneyFromDecimal(s.FullBatchCost)
	if err != nil {
		return nil, fmt.Errorf("full_batch_cost: %w", err)
	}

	halfCost, err := domain.NewMoneyFromDecimal(s.HalfBatchCost)
	if err != nil {
		return nil, fmt.Errorf("half_batch_cost: %w", err)
	}

	fee, err := domain.NewMoneyFromDecimal(s.ManagementFee)
	if err != nil {
		return nil, fmt.Errorf("management_fee: %w", err)
	}

	markup, err := domain.NewMoneyFromDecimal(s.UnitMarkup)
	if err != nil {
		return nil, fmt.Errorf("unit_markup: %w", err)
	}

	return domain.CostPlusFixedBatch{
		FullUnits:     s.FullUnits,
		HalfUnits:     s.HalfUnits,
		FullBatchCost: fullCost,
		HalfBatchCost: halfCost,
		ManagementFee: fee,
		UnitMarkup:    markup,
		Quantities:    s.Quantities,
	}, nil
}
