package pricing

import (
	"net/http"
	"strconv"
	"time"

	"github.com/light-bringer/pricing-service/internal/app/pricing/contracts"
	"github.com/light-bringer/pricing-service/internal/app/pricing/domain"
)

// Unit prices carry four decimal places because cost-plus generation yields
// sub-cent amounts; aggregate figures are plain currency.
const (
	unitPricePlaces = 4
	totalPlaces     = 2
)

type tierResponse struct {
	MinQuantity     int64  `json:"min_quantity"`
	MaxQuantity     *int64 `json:"max_quantity,omitempty"`
	UnitPrice       string `json:"unit_price"`
	DiscountPercent int64  `json:"discount_percent"`
}

func toTierResponse(tier *domain.PriceTier) tierResponse {
	resp := tierResponse{
		MinQuantity:     tier.MinQuantity(),
		UnitPrice:       tier.UnitPrice().FloatString(unitPricePlaces),
		DiscountPercent: tier.DiscountPercent(),
	}
	if !tier.IsUnbounded() {
		max := tier.MaxQuantity()
		resp.MaxQuantity = &max
	}
	return resp
}

type validationResponse struct {
	Valid             bool     `json:"valid"`
	MissingRequired   []string `json:"missing_required,omitempty"`
	InvalidValues     []string `json:"invalid_values,omitempty"`
	TooManySelections []string `json:"too_many_selections,omitempty"`
}

func toValidationResponse(result domain.ValidationResult) validationResponse {
	return validationResponse{
		Valid:             result.Valid,
		MissingRequired:   result.MissingRequired,
		InvalidValues:     result.InvalidValues,
		TooManySelections: result.TooManySelections,
	}
}

type quoteResponse struct {
	UnitPrice       string             `json:"unit_price"`
	Subtotal        string             `json:"subtotal"`
	TotalPrice      string             `json:"total_price"`
	DiscountPercent int64              `json:"discount_percent"`
	Savings         string             `json:"savings"`
	Validation      validationResponse `json:"validation"`
}

func toQuoteResponse(quote *domain.Quote) quoteResponse {
	return quoteResponse{
		UnitPrice:       quote.UnitPrice.FloatString(unitPricePlaces),
		Subtotal:        quote.Subtotal.FloatString(totalPlaces),
		TotalPrice:      quote.TotalPrice.FloatString(totalPlaces),
		DiscountPercent: quote.DiscountPercent,
		Savings:         quote.Savings.FloatString(totalPlaces),
		Validation:      toValidationResponse(quote.Validation),
	}
}

type productResponse struct {
	ProductID        string    `json:"product_id"`
	Name             string    `json:"name"`
	Category         string    `json:"category"`
	MinOrderQuantity int64     `json:"min_order_quantity"`
	Status           string    `json:"status"`
	TierCount        int64     `json:"tier_count"`
	LowestUnitPrice  float64   `json:"lowest_unit_price"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

func toProductResponse(dto *contracts.ProductDTO) productResponse {
	return productResponse{
		ProductID:        dto.ProductID,
		Name:             dto.Name,
		Category:         dto.Category,
		MinOrderQuantity: dto.MinOrderQuantity,
		Status:           dto.Status,
		TierCount:        dto.TierCount,
		LowestUnitPrice:  dto.LowestUnitPrice,
		CreatedAt:        dto.CreatedAt,
		UpdatedAt:        dto.UpdatedAt,
	}
}

type productDetailResponse struct {
	Product productResponse   `json:"product"`
	Tiers   []tierDTOResponse `json:"tiers"`
}

type tierDTOResponse struct {
	MinQuantity     int64   `json:"min_quantity"`
	MaxQuantity     *int64  `json:"max_quantity,omitempty"`
	UnitPrice       float64 `json:"unit_price"`
	DiscountPercent int64   `json:"discount_percent"`
}

func toProductDetailResponse(detail *contracts.ProductDetail) productDetailResponse {
	tiers := make([]tierDTOResponse, len(detail.Tiers))
	for i, t := range detail.Tiers {
		tiers[i] = tierDTOResponse{
			MinQuantity:     t.MinQuantity,
			MaxQuantity:     t.MaxQuantity,
			UnitPrice:       t.UnitPrice,
			DiscountPercent: t.DiscountPercent,
		}
	}
	return productDetailResponse{
		Product: toProductResponse(&detail.Product),
		Tiers:   tiers,
	}
}

type listResponse struct {
	Products   []productResponse `json:"products"`
	TotalCount int64             `json:"total_count"`
}

func toListResponse(result *contracts.ListResult) listResponse {
	products := make([]productResponse, len(result.Products))
	for i, p := range result.Products {
		products[i] = toProductResponse(p)
	}
	return listResponse{
		Products:   products,
		TotalCount: result.TotalCount,
	}
}

type generatedTiersResponse struct {
	DryRun bool           `json:"dry_run"`
	Tiers  []tierResponse `json:"tiers"`
}

func toGeneratedTiersResponse(table *domain.TierTable, dryRun bool) generatedTiersResponse {
	tiers := make([]tierResponse, 0, table.Len())
	for _, tier := range table.Tiers() {
		tiers = append(tiers, toTierResponse(tier))
	}
	return generatedTiersResponse{DryRun: dryRun, Tiers: tiers}
}

func queryInt(r *http.Request, key string, fallback int) int {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return v
}

func queryBool(r *http.Request, key string) bool {
	v, err := strconv.ParseBool(r.URL.Query().Get(key))
	return err == nil && v
}

// requireQueryInt parses a mandatory positive integer query parameter,
// writing a 400 response when absent or malformed.
func (h *Handler) requireQueryInt(w http.ResponseWriter, r *http.Request, key string) (int64, bool) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		h.writeJSON(w, http.StatusBadRequest, errorResponse{Error: key + " query parameter is required"})
		return 0, false
	}

	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		h.writeJSON(w, http.StatusBadRequest, errorResponse{Error: key + " must be an integer"})
		return 0, false
	}

	return v, true
}
