package pricing

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"github.com/light-bringer/pricing-service/internal/app/pricing/queries/get_product"
	"github.com/light-bringer/pricing-service/internal/app/pricing/queries/list_products"
	"github.com/light-bringer/pricing-service/internal/app/pricing/queries/quote_price"
	"github.com/light-bringer/pricing-service/internal/app/pricing/queries/resolve_tier"
	"github.com/light-bringer/pricing-service/internal/app/pricing/queries/validate_configuration"
	"github.com/light-bringer/pricing-service/internal/app/pricing/usecases/generate_tiers"
	"github.com/light-bringer/pricing-service/internal/config"
)

// Handler exposes the pricing engine over a JSON HTTP API.
type Handler struct {
	resolveTier   *resolve_tier.Query
	validateCfg   *validate_configuration.Query
	quotePrice    *quote_price.Query
	getProduct    *get_product.Query
	listProducts  *list_products.Query
	generateTiers *generate_tiers.Interactor

	validate *validator.Validate
	log      *logrus.Logger
}

// NewHandler creates a new pricing HTTP handler.
func NewHandler(
	resolveTier *resolve_tier.Query,
	validateCfg *validate_configuration.Query,
	quotePrice *quote_price.Query,
	getProduct *get_product.Query,
	listProducts *list_products.Query,
	generateTiers *generate_tiers.Interactor,
	log *logrus.Logger,
) *Handler {
	return &Handler{
		resolveTier:   resolveTier,
		validateCfg:   validateCfg,
		quotePrice:    quotePrice,
		getProduct:    getProduct,
		listProducts:  listProducts,
		generateTiers: generateTiers,
		validate:      validator.New(),
		log:           log,
	}
}

// handleListProducts handles GET /api/v1/products.
func (h *Handler) handleListProducts(w http.ResponseWriter, r *http.Request) {
	req := &list_products.Request{
		Category: r.URL.Query().Get("category"),
		Status:   r.URL.Query().Get("status"),
		PageSize: queryInt(r, "page_size", 0),
	}

	result, err := h.listProducts.Execute(r.Context(), req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, toListResponse(result))
}

// handleGetProduct handles GET /api/v1/products/{productID}.
func (h *Handler) handleGetProduct(w http.ResponseWriter, r *http.Request) {
	detail, err := h.getProduct.Execute(r.Context(), &get_product.Request{
		ProductID: chi.URLParam(r, "productID"),
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, toProductDetailResponse(detail))
}

// handleResolveTier handles GET /api/v1/products/{productID}/tier.
func (h *Handler) handleResolveTier(w http.ResponseWriter, r *http.Request) {
	quantity, ok := h.requireQueryInt(w, r, "quantity")
	if !ok {
		return
	}

	tier, err := h.resolveTier.Execute(r.Context(), &resolve_tier.Request{
		ProductID:      chi.URLParam(r, "productID"),
		Quantity:       quantity,
		FallbackLowest: queryBool(r, "fallback"),
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, toTierResponse(tier))
}

type validateRequest struct {
	SelectedValueIDs []string `json:"selected_value_ids"`
}

// handleValidateConfiguration handles POST /api/v1/products/{productID}/validate.
func (h *Handler) handleValidateConfiguration(w http.ResponseWriter, r *http.Request) {
	var body validateRequest
	if !h.decode(w, r, &body) {
		return
	}

	result, err := h.validateCfg.Execute(r.Context(), &validate_configuration.Request{
		ProductID:        chi.URLParam(r, "productID"),
		SelectedValueIDs: body.SelectedValueIDs,
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, toValidationResponse(*result))
}

type quoteRequest struct {
	Quantity         int64    `json:"quantity" validate:"required,min=1"`
	SelectedValueIDs []string `json:"selected_value_ids"`
	AllowInvalid     bool     `json:"allow_invalid"`
	Fallback         bool     `json:"fallback"`
}

// handleQuotePrice handles POST /api/v1/products/{productID}/quote.
func (h *Handler) handleQuotePrice(w http.ResponseWriter, r *http.Request) {
	var body quoteRequest
	if !h.decode(w, r, &body) {
		return
	}

	quote, err := h.quotePrice.Execute(r.Context(), &quote_price.Request{
		ProductID:        chi.URLParam(r, "productID"),
		Quantity:         body.Quantity,
		SelectedValueIDs: body.SelectedValueIDs,
		AllowInvalid:     body.AllowInvalid,
		FallbackLowest:   body.Fallback,
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, toQuoteResponse(quote))
}

type generateTiersRequest struct {
	Model  config.ModelSpec `json:"model" validate:"required"`
	DryRun bool             `json:"dry_run"`
}

// handleGenerateTiers handles POST /api/v1/products/{productID}/tiers/generate.
func (h *Handler) handleGenerateTiers(w http.ResponseWriter, r *http.Request) {
	var body generateTiersRequest
	if !h.decode(w, r, &body) {
		return
	}

	model, err := body.Model.ToDomain()
	if err != nil {
		h.writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	table, err := h.generateTiers.Execute(r.Context(), &generate_tiers.Request{
		ProductID: chi.URLParam(r, "productID"),
		Model:     model,
		DryRun:    body.DryRun,
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, toGeneratedTiersResponse(table, body.DryRun))
}

// handleHealth handles GET /healthz.
func (h *Handler) handleHealth(w http.ResponseWriter, _ *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// decode parses and validates a JSON request body. Writes the error response
// itself and returns false on failure.
func (h *Handler) decode(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		h.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON body"})
		return false
	}

	if err := h.validate.Struct(dst); err != nil {
		h.writeJSON(w, http.StatusBadRequest, errorResponse{
			Error:  "validation failed",
			Fields: validationFieldErrors(err),
		})
		return false
	}

	return true
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.log.WithError(err).Error("failed to encode response")
	}
}
