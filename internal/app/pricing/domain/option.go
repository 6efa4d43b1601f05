package domain

import "fmt"

// SelectionType describes how many values may be selected for an option.
type SelectionType string

const (
	SelectSingle   SelectionType = "single"
	SelectMultiple SelectionType = "multiple"
)

// Option is a configurable product axis, e.g. "color" or "print size".
type Option struct {
	Key           string
	DisplayName   string
	Required      bool
	SelectionType SelectionType
}

// OptionValue is one selectable value of an option. Surcharge is added to the
// tier's base price per unit when the value is selected.
type OptionValue struct {
	ID          string
	OptionKey   string
	DisplayName string
	Surcharge   *Money
	Swatch      string
}

// Variant associates a product with one option and the subset of that
// option's values actually offered for the product.
type Variant struct {
	OptionKey         string
	AvailableValueIDs []string
}

// capability is the per-product view of one option: the option itself plus
// the values offered for this product.
type capability struct {
	option  Option
	allowed map[string]*OptionValue
}

// ProductOptions is the explicit per-product capability set: a map from
// option key to the allowed value set. The validator and calculator work
// against this snapshot only, never against global value tables.
type ProductOptions struct {
	capabilities map[string]*capability
	valueToKey   map[string]string
}

// NewProductOptions builds the capability set from a product's variants and
// the referenced options and values. Every variant must reference a known
// option, and every available value must belong to that option.
func NewProductOptions(options []Option, values []OptionValue, variants []Variant) (*ProductOptions, error) {
	optionsByKey := make(map[string]Option, len(options))
	for _, opt := range options {
		if _, ok := optionsByKey[opt.Key]; ok {
			return nil, fmt.Errorf("option %q: %w", opt.Key, ErrDuplicateOptionKey)
		}
		optionsByKey[opt.Key] = opt
	}

	valuesByID := make(map[string]OptionValue, len(values))
	for _, val := range values {
		if _, ok := valuesByID[val.ID]; ok {
			return nil, fmt.Errorf("value %q: %w", val.ID, ErrDuplicateValueID)
		}
		valuesByID[val.ID] = val
	}

	po := &ProductOptions{
		capabilities: make(map[string]*capability, len(variants)),
		valueToKey:   make(map[string]string),
	}

	for _, variant := range variants {
		opt, ok := optionsByKey[variant.OptionKey]
		if !ok {
			return nil, fmt.Errorf("option %q: %w", variant.OptionKey, ErrVariantUnknownOption)
		}

		entry := &capability{
			option:  opt,
			allowed: make(map[string]*OptionValue, len(variant.AvailableValueIDs)),
		}

		for _, valueID := range variant.AvailableValueIDs {
			val, ok := valuesByID[valueID]
			if !ok || val.OptionKey != opt.Key {
				return nil, fmt.Errorf("value %q for option %q: %w", valueID, opt.Key, ErrVariantUnknownValue)
			}
			v := val
			entry.allowed[valueID] = &v
			po.valueToKey[valueID] = opt.Key
		}

		po.capabilities[opt.Key] = entry
	}

	return po, nil
}

// Options returns the options offered for the product.
func (po *ProductOptions) Options() []Option {
	out := make([]Option, 0, len(po.capabilities))
	for _, entry := range po.capabilities {
		out = append(out, entry.option)
	}
	return out
}

// Value looks up a selected value by ID within the product's capability set.
// The second return is false when the value is not offered for this product,
// regardless of whether it exists globally.
func (po *ProductOptions) Value(valueID string) (*OptionValue, bool) {
	key, ok := po.valueToKey[valueID]
	if !ok {
		return nil, false
	}
	val, ok := po.capabilities[key].allowed[valueID]
	return val, ok
}

// OptionFor returns the option a product-scoped value belongs to.
func (po *ProductOptions) OptionFor(valueID string) (Option, bool) {
	key, ok := po.valueToKey[valueID]
	if !ok {
		return Option{}, false
	}
	return po.capabilities[key].option, true
}

// Surcharge sums the additional per-unit price of the given selected values.
// Values outside the capability set contribute nothing; validation reports
// them separately. Repeating a value ID does not charge it twice.
func (po *ProductOptions) Surcharge(selectedValueIDs []string) *Money {
	total := Zero()
	for _, id := range dedupeValueIDs(selectedValueIDs) {
		if val, ok := po.Value(id); ok {
			total = total.Add(val.Surcharge)
		}
	}
	return total
}

// dedupeValueIDs drops repeated IDs, keeping first-occurrence order. Selecting
// the same value twice means the same thing as selecting it once.
func dedupeValueIDs(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
