package domain

import (
	"fmt"
	"sort"
)

// ValidationResult reports how a set of selected option values measures up
// against a product's capability set.
type ValidationResult struct {
	Valid             bool
	MissingRequired   []string // option keys of required options left unselected
	InvalidValues     []string // value IDs not offered for this product
	TooManySelections []string // option keys of single-select options with multiple values
	Errors            []error
}

// Validate checks the selected values against the product's capability set.
// Pure function over the supplied snapshot; no side effects.
//
// A value is invalid when it is not in the product's per-product capability
// set, even if the value exists globally. Required options with no selected
// value are reported in MissingRequired, and single-select options with more
// than one selected value in TooManySelections.
func Validate(opts *ProductOptions, selectedValueIDs []string) ValidationResult {
	result := ValidationResult{Valid: true}

	selectedPerOption := make(map[string]int)

	for _, valueID := range dedupeValueIDs(selectedValueIDs) {
		opt, ok := opts.OptionFor(valueID)
		if !ok {
			result.InvalidValues = append(result.InvalidValues, valueID)
			result.Errors = append(result.Errors, fmt.Errorf("value %q: %w", valueID, ErrInvalidSelection))
			continue
		}
		selectedPerOption[opt.Key]++
	}

	for _, opt := range opts.Options() {
		count := selectedPerOption[opt.Key]

		if opt.Required && count == 0 {
			result.MissingRequired = append(result.MissingRequired, opt.Key)
			result.Errors = append(result.Errors, fmt.Errorf("option %q: %w", opt.Key, ErrMissingRequiredOption))
		}

		if opt.SelectionType == SelectSingle && count > 1 {
			result.TooManySelections = append(result.TooManySelections, opt.Key)
			result.Errors = append(result.Errors, fmt.Errorf("option %q: %w", opt.Key, ErrTooManySelections))
		}
	}

	// Map iteration order is random; keep output stable for callers and tests.
	sort.Strings(result.MissingRequired)
	sort.Strings(result.TooManySelections)

	result.Valid = len(result.Errors) == 0
	return result
}
