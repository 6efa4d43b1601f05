package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// shirtOptions is the canonical options fixture: a required single-select
// "size", an optional multi-select "finish", and a "color" value that exists
// globally but is not offered for this product.
func shirtOptions(t *testing.T) *ProductOptions {
	t.Helper()

	options := []Option{
		{Key: "size", DisplayName: "Size", Required: true, SelectionType: SelectSingle},
		{Key: "finish", DisplayName: "Finish", Required: false, SelectionType: SelectMultiple},
	}

	values := []OptionValue{
		{ID: "size-s", OptionKey: "size", DisplayName: "Small", Surcharge: mustMoney(t, "0.00")},
		{ID: "size-l", OptionKey: "size", DisplayName: "Large", Surcharge: mustMoney(t, "9.00")},
		{ID: "size-xxl", OptionKey: "size", DisplayName: "XXL", Surcharge: mustMoney(t, "14.00")},
		{ID: "finish-gloss", OptionKey: "finish", DisplayName: "Gloss", Surcharge: mustMoney(t, "2.50")},
		{ID: "finish-matte", OptionKey: "finish", DisplayName: "Matte", Surcharge: mustMoney(t, "1.50")},
	}

	variants := []Variant{
		{OptionKey: "size", AvailableValueIDs: []string{"size-s", "size-l"}},
		{OptionKey: "finish", AvailableValueIDs: []string{"finish-gloss", "finish-matte"}},
	}

	opts, err := NewProductOptions(options, values, variants)
	require.NoError(t, err)
	return opts
}

func TestNewProductOptions(t *testing.T) {
	t.Run("builds capability set", func(t *testing.T) {
		opts := shirtOptions(t)

		val, ok := opts.Value("size-l")
		require.True(t, ok)
		assert.Equal(t, "9.00", val.Surcharge.String())

		opt, ok := opts.OptionFor("finish-gloss")
		require.True(t, ok)
		assert.Equal(t, "finish", opt.Key)
	})

	t.Run("value outside variant subset is not offered", func(t *testing.T) {
		opts := shirtOptions(t)

		// size-xxl exists globally but the product's variant does not offer it.
		_, ok := opts.Value("size-xxl")
		assert.False(t, ok)
	})

	t.Run("variant referencing unknown option rejected", func(t *testing.T) {
		_, err := NewProductOptions(nil, nil, []Variant{
			{OptionKey: "paper", AvailableValueIDs: nil},
		})
		assert.ErrorIs(t, err, ErrVariantUnknownOption)
	})

	t.Run("variant referencing foreign value rejected", func(t *testing.T) {
		options := []Option{{Key: "size", SelectionType: SelectSingle}}
		values := []OptionValue{{ID: "gloss", OptionKey: "finish", Surcharge: Zero()}}

		_, err := NewProductOptions(options, values, []Variant{
			{OptionKey: "size", AvailableValueIDs: []string{"gloss"}},
		})
		assert.ErrorIs(t, err, ErrVariantUnknownValue)
	})

	t.Run("duplicate option key rejected", func(t *testing.T) {
		options := []Option{
			{Key: "size", SelectionType: SelectSingle},
			{Key: "size", SelectionType: SelectMultiple},
		}
		_, err := NewProductOptions(options, nil, nil)
		assert.ErrorIs(t, err, ErrDuplicateOptionKey)
	})
}

func TestValidate(t *testing.T) {
	opts := shirtOptions(t)

	t.Run("valid selection", func(t *testing.T) {
		result := Validate(opts, []string{"size-l", "finish-gloss", "finish-matte"})
		assert.True(t, result.Valid)
		assert.Empty(t, result.Errors)
	})

	t.Run("missing required option", func(t *testing.T) {
		result := Validate(opts, []string{"finish-gloss"})
		assert.False(t, result.Valid)
		assert.Equal(t, []string{"size"}, result.MissingRequired)
	})

	t.Run("two values on a single-select option", func(t *testing.T) {
		result := Validate(opts, []string{"size-s", "size-l"})
		assert.False(t, result.Valid)
		assert.Equal(t, []string{"size"}, result.TooManySelections)
	})

	t.Run("repeated value id counts as one selection", func(t *testing.T) {
		result := Validate(opts, []string{"size-l", "size-l"})
		assert.True(t, result.Valid)
		assert.Empty(t, result.TooManySelections)
		assert.Empty(t, result.Errors)
	})

	t.Run("value not offered for product is invalid even if it exists globally", func(t *testing.T) {
		result := Validate(opts, []string{"size-l", "size-xxl"})
		assert.False(t, result.Valid)
		assert.Equal(t, []string{"size-xxl"}, result.InvalidValues)
	})

	t.Run("unknown value id is invalid", func(t *testing.T) {
		result := Validate(opts, []string{"size-l", "no-such-value"})
		assert.False(t, result.Valid)
		assert.Equal(t, []string{"no-such-value"}, result.InvalidValues)
	})

	t.Run("empty selection only misses required options", func(t *testing.T) {
		result := Validate(opts, nil)
		assert.False(t, result.Valid)
		assert.Equal(t, []string{"size"}, result.MissingRequired)
		assert.Empty(t, result.InvalidValues)
		assert.Empty(t, result.TooManySelections)
	})

	t.Run("errors carry sentinel types", func(t *testing.T) {
		result := Validate(opts, []string{"no-such-value"})
		require.Len(t, result.Errors, 2) // invalid value + missing size
		assert.ErrorIs(t, result.Errors[0], ErrInvalidSelection)
	})
}
