package domain

import "errors"

// Domain errors as sentinel values
var (
	// Catalog errors
	ErrProductNotFound = errors.New("product not found")
	ErrOptionNotFound  = errors.New("option not found")
	ErrValueNotFound   = errors.New("option value not found")
	ErrEmptyName       = errors.New("product name cannot be empty")
	ErrInvalidCategory = errors.New("product category cannot be empty")
	ErrInvalidMinOrder = errors.New("minimum order quantity must be positive")

	// Tier errors
	ErrInvalidQuantity  = errors.New("quantity must be positive")
	ErrNoTiersDefined   = errors.New("product has no price tiers")
	ErrNoMatchingTier   = errors.New("no price tier matches the requested quantity")
	ErrInvalidTierRange = errors.New("tier max quantity must not be below min quantity")
	ErrTierOverlap      = errors.New("price tiers must not overlap")
	ErrTierGap          = errors.New("price tiers must be contiguous")
	ErrTierNotUnbounded = errors.New("last price tier must be unbounded")
	ErrPriceNotMonotone = errors.New("unit price must not increase with quantity")

	// Configuration errors
	ErrInvalidSelection       = errors.New("option value is not offered for this product")
	ErrMissingRequiredOption  = errors.New("required option has no selected value")
	ErrTooManySelections      = errors.New("single-select option has more than one selected value")
	ErrInvalidConfiguration   = errors.New("selected configuration is invalid")
	ErrDuplicateOptionKey     = errors.New("duplicate option key")
	ErrDuplicateValueID       = errors.New("duplicate option value identifier")
	ErrVariantUnknownOption   = errors.New("variant references an unknown option")
	ErrVariantUnknownValue    = errors.New("variant references a value outside its option")

	// Cost model errors
	ErrInvalidCostModelConfig = errors.New("invalid cost model configuration")

	// Storage errors
	ErrMoneyOverflow = errors.New("money value exceeds int64 storage bounds")
)
