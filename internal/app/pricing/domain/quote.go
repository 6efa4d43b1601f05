package domain

// Quote is the priced result of a (product, quantity, configuration) request.
// All monetary figures are exact; rounding happens at the display boundary.
type Quote struct {
	UnitPrice       *Money
	Subtotal        *Money
	TotalPrice      *Money
	DiscountPercent int64
	Savings         *Money
	Validation      ValidationResult
}

// QuoteOptions controls quote behavior.
type QuoteOptions struct {
	// AllowInvalid produces a best-effort quote annotated with validation
	// errors instead of failing, so interactive callers can show a live
	// estimate. Explicit opt-in; the default is to reject invalid
	// configurations.
	AllowInvalid bool

	// Fallback is the tier resolution policy (Strict by default).
	Fallback FallbackPolicy
}

// QuoteCalculator is a domain service combining tier resolution, option
// surcharges, and savings figures into a Quote. It is stateless and safe for
// concurrent use.
type QuoteCalculator struct{}

// NewQuoteCalculator creates a new QuoteCalculator instance.
func NewQuoteCalculator() *QuoteCalculator {
	return &QuoteCalculator{}
}

// Quote prices a quantity of a product with the selected option values.
//
// unit price = tier unit price + per-unit surcharge of valid selected values
// subtotal   = tier unit price x quantity
// total      = unit price x quantity
//
// Savings is benchmarked against the first (lowest-quantity) tier of the same
// product plus the same surcharge, not against a theoretical undiscounted
// price. It is only reported when the resolved tier carries a discount.
func (qc *QuoteCalculator) Quote(
	table *TierTable,
	opts *ProductOptions,
	quantity int64,
	selectedValueIDs []string,
	qopts QuoteOptions,
) (*Quote, error) {
	validation := Validate(opts, selectedValueIDs)
	if !validation.Valid && !qopts.AllowInvalid {
		return nil, ErrInvalidConfiguration
	}

	tier, err := table.Resolve(quantity, qopts.Fallback)
	if err != nil {
		return nil, err
	}

	surcharge := opts.Surcharge(selectedValueIDs)

	unitPrice := tier.UnitPrice().Add(surcharge)
	subtotal := tier.UnitPrice().MultiplyByInt(quantity)
	total := unitPrice.MultiplyByInt(quantity)

	savings := Zero()
	if tier.DiscountPercent() > 0 {
		benchmark := table.First().UnitPrice().Add(surcharge).MultiplyByInt(quantity)
		savings = benchmark.Subtract(total)
	}

	return &Quote{
		UnitPrice:       unitPrice,
		Subtotal:        subtotal,
		TotalPrice:      total,
		DiscountPercent: tier.DiscountPercent(),
		Savings:         savings,
		Validation:      validation,
	}, nil
}
