package pricing

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/pricing-service/internal/app/pricing/contracts"
	"github.com/light-bringer/pricing-service/internal/app/pricing/domain"
	"github.com/light-bringer/pricing-service/internal/app/pricing/queries/get_product"
	"github.com/light-bringer/pricing-service/internal/app/pricing/queries/list_products"
	"github.com/light-bringer/pricing-service/internal/app/pricing/queries/quote_price"
	"github.com/light-bringer/pricing-service/internal/app/pricing/queries/resolve_tier"
	"github.com/light-bringer/pricing-service/internal/app/pricing/queries/validate_configuration"
	"github.com/light-bringer/pricing-service/internal/app/pricing/repo"
	"github.com/light-bringer/pricing-service/internal/app/pricing/usecases/generate_tiers"
	"github.com/light-bringer/pricing-service/tests/testutil"
)

type testEnv struct {
	catalog   *testutil.FakeCatalog
	readModel *testutil.FakeReadModel
	applier   *testutil.RecordingApplier
	server    *httptest.Server
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	catalog := testutil.NewFakeCatalog()
	readModel := testutil.NewFakeReadModel()
	applier := &testutil.RecordingApplier{}

	log := logrus.New()
	log.SetOutput(io.Discard)

	handler := NewHandler(
		resolve_tier.NewQuery(catalog),
		validate_configuration.NewQuery(catalog),
		quote_price.NewQuery(catalog),
		get_product.NewQuery(readModel),
		list_products.NewQuery(readModel),
		generate_tiers.NewInteractor(catalog, repo.NewPriceTierRepo(), applier),
		log,
	)

	server := httptest.NewServer(NewRouter(handler, log))
	t.Cleanup(server.Close)

	return &testEnv{catalog: catalog, readModel: readModel, applier: applier, server: server}
}

func mustMoney(t *testing.T, num, denom int64) *domain.Money {
	t.Helper()
	m, err := domain.NewMoney(num, denom)
	require.NoError(t, err)
	return m
}

func mustTier(t *testing.T, min, max int64, price *domain.Money, discount int64) *domain.PriceTier {
	t.Helper()
	tier, err := domain.NewPriceTier(min, max, price, discount)
	require.NoError(t, err)
	return tier
}

// volumeTable builds the standard three-band fixture: 1-11 at 67, 12-49 at
// 62, 50+ at 56.
func volumeTable(t *testing.T) *domain.TierTable {
	t.Helper()
	table, err := domain.NewTierTable([]*domain.PriceTier{
		mustTier(t, 1, 11, mustMoney(t, 67, 1), 0),
		mustTier(t, 12, 49, mustMoney(t, 62, 1), 7),
		mustTier(t, 50, domain.UnboundedQuantity, mustMoney(t, 56, 1), 16),
	})
	require.NoError(t, err)
	return table
}

func seedProduct(t *testing.T, env *testEnv, id string, minOrder int64) {
	t.Helper()
	product, err := domain.NewProduct(id, "Embossed Cards", "business-cards", minOrder, time.Now())
	require.NoError(t, err)
	env.catalog.AddProduct(product)
}

func shirtOptions(t *testing.T) *domain.ProductOptions {
	t.Helper()
	opts, err := domain.NewProductOptions(
		[]domain.Option{
			{Key: "color", DisplayName: "Color", Required: true, SelectionType: domain.SelectSingle},
			{Key: "finish", DisplayName: "Finish", Required: false, SelectionType: domain.SelectMultiple},
		},
		[]domain.OptionValue{
			{ID: "val-red", OptionKey: "color", DisplayName: "Red", Surcharge: domain.Zero()},
			{ID: "val-blue", OptionKey: "color", DisplayName: "Blue", Surcharge: domain.Zero()},
			{ID: "val-gloss", OptionKey: "finish", DisplayName: "Gloss", Surcharge: mustMoney(t, 9, 1)},
		},
		[]domain.Variant{
			{OptionKey: "color", AvailableValueIDs: []string{"val-red", "val-blue"}},
			{OptionKey: "finish", AvailableValueIDs: []string{"val-gloss"}},
		},
	)
	require.NoError(t, err)
	return opts
}

func getJSON(t *testing.T, url string, dst interface{}) int {
	t.Helper()
	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()
	if dst != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(dst))
	}
	return resp.StatusCode
}

func postJSON(t *testing.T, url, body string, dst interface{}) int {
	t.Helper()
	resp, err := http.Post(url, "application/json", strings.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()
	if dst != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(dst))
	}
	return resp.StatusCode
}

func TestHandler_ResolveTier(t *testing.T) {
	env := newTestEnv(t)
	seedProduct(t, env, "prod-1", 1)
	env.catalog.SetTierTable("prod-1", volumeTable(t))

	t.Run("resolves covering tier", func(t *testing.T) {
		var body tierResponse
		status := getJSON(t, env.server.URL+"/api/v1/products/prod-1/tier?quantity=20", &body)
		require.Equal(t, http.StatusOK, status)
		assert.Equal(t, int64(12), body.MinQuantity)
		require.NotNil(t, body.MaxQuantity)
		assert.Equal(t, int64(49), *body.MaxQuantity)
		assert.Equal(t, "62.0000", body.UnitPrice)
		assert.Equal(t, int64(7), body.DiscountPercent)
	})

	t.Run("unbounded tier omits max quantity", func(t *testing.T) {
		var body tierResponse
		status := getJSON(t, env.server.URL+"/api/v1/products/prod-1/tier?quantity=5000", &body)
		require.Equal(t, http.StatusOK, status)
		assert.Nil(t, body.MaxQuantity)
	})

	t.Run("missing quantity parameter", func(t *testing.T) {
		status := getJSON(t, env.server.URL+"/api/v1/products/prod-1/tier", nil)
		assert.Equal(t, http.StatusBadRequest, status)
	})

	t.Run("no tiers", func(t *testing.T) {
		status := getJSON(t, env.server.URL+"/api/v1/products/ghost/tier?quantity=5", nil)
		assert.Equal(t, http.StatusNotFound, status)
	})
}

func TestHandler_ResolveTier_Fallback(t *testing.T) {
	env := newTestEnv(t)
	seedProduct(t, env, "prod-1", 1)

	// Table starting above 1, so small quantities have no covering band
	table, err := domain.NewTierTable([]*domain.PriceTier{
		mustTier(t, 10, 99, mustMoney(t, 20, 1), 0),
		mustTier(t, 100, domain.UnboundedQuantity, mustMoney(t, 15, 1), 25),
	})
	require.NoError(t, err)
	env.catalog.SetTierTable("prod-1", table)

	t.Run("strict resolution fails below table", func(t *testing.T) {
		status := getJSON(t, env.server.URL+"/api/v1/products/prod-1/tier?quantity=5", nil)
		assert.Equal(t, http.StatusUnprocessableEntity, status)
	})

	t.Run("fallback resolves to lowest band", func(t *testing.T) {
		var body tierResponse
		status := getJSON(t, env.server.URL+"/api/v1/products/prod-1/tier?quantity=5&fallback=true", &body)
		require.Equal(t, http.StatusOK, status)
		assert.Equal(t, int64(10), body.MinQuantity)
	})
}

func TestHandler_ValidateConfiguration(t *testing.T) {
	env := newTestEnv(t)
	seedProduct(t, env, "prod-1", 1)
	env.catalog.SetOptions("prod-1", shirtOptions(t))

	t.Run("valid selection", func(t *testing.T) {
		var body validationResponse
		status := postJSON(t, env.server.URL+"/api/v1/products/prod-1/validate",
			`{"selected_value_ids":["val-red","val-gloss"]}`, &body)
		require.Equal(t, http.StatusOK, status)
		assert.True(t, body.Valid)
	})

	t.Run("missing required option", func(t *testing.T) {
		var body validationResponse
		status := postJSON(t, env.server.URL+"/api/v1/products/prod-1/validate",
			`{"selected_value_ids":[]}`, &body)
		require.Equal(t, http.StatusOK, status)
		assert.False(t, body.Valid)
		assert.Equal(t, []string{"color"}, body.MissingRequired)
	})

	t.Run("unknown value", func(t *testing.T) {
		var body validationResponse
		status := postJSON(t, env.server.URL+"/api/v1/products/prod-1/validate",
			`{"selected_value_ids":["val-red","val-neon"]}`, &body)
		require.Equal(t, http.StatusOK, status)
		assert.False(t, body.Valid)
		assert.Equal(t, []string{"val-neon"}, body.InvalidValues)
	})

	t.Run("malformed body", func(t *testing.T) {
		status := postJSON(t, env.server.URL+"/api/v1/products/prod-1/validate", `{`, nil)
		assert.Equal(t, http.StatusBadRequest, status)
	})
}

func TestHandler_QuotePrice(t *testing.T) {
	env := newTestEnv(t)
	seedProduct(t, env, "prod-1", 1)
	env.catalog.SetTierTable("prod-1", volumeTable(t))
	env.catalog.SetOptions("prod-1", shirtOptions(t))

	t.Run("quote with surcharge", func(t *testing.T) {
		var body quoteResponse
		status := postJSON(t, env.server.URL+"/api/v1/products/prod-1/quote",
			`{"quantity":20,"selected_value_ids":["val-red","val-gloss"]}`, &body)
		require.Equal(t, http.StatusOK, status)
		assert.Equal(t, "71.0000", body.UnitPrice)
		assert.Equal(t, "1240.00", body.Subtotal)
		assert.Equal(t, "1420.00", body.TotalPrice)
		assert.Equal(t, "100.00", body.Savings)
		assert.Equal(t, int64(7), body.DiscountPercent)
		assert.True(t, body.Validation.Valid)
	})

	t.Run("invalid configuration rejected by default", func(t *testing.T) {
		status := postJSON(t, env.server.URL+"/api/v1/products/prod-1/quote",
			`{"quantity":20,"selected_value_ids":[]}`, nil)
		assert.Equal(t, http.StatusUnprocessableEntity, status)
	})

	t.Run("allow_invalid yields annotated best-effort quote", func(t *testing.T) {
		var body quoteResponse
		status := postJSON(t, env.server.URL+"/api/v1/products/prod-1/quote",
			`{"quantity":20,"selected_value_ids":[],"allow_invalid":true}`, &body)
		require.Equal(t, http.StatusOK, status)
		assert.False(t, body.Validation.Valid)
		assert.Equal(t, "62.0000", body.UnitPrice)
	})

	t.Run("quantity is required", func(t *testing.T) {
		status := postJSON(t, env.server.URL+"/api/v1/products/prod-1/quote",
			`{"selected_value_ids":["val-red"]}`, nil)
		assert.Equal(t, http.StatusBadRequest, status)
	})

	t.Run("unknown product", func(t *testing.T) {
		status := postJSON(t, env.server.URL+"/api/v1/products/ghost/quote",
			`{"quantity":20}`, nil)
		assert.Equal(t, http.StatusNotFound, status)
	})
}

func TestHandler_QuotePrice_MinOrder(t *testing.T) {
	env := newTestEnv(t)
	seedProduct(t, env, "prod-1", 12)
	env.catalog.SetTierTable("prod-1", volumeTable(t))
	env.catalog.SetOptions("prod-1", shirtOptions(t))

	t.Run("below minimum order fails", func(t *testing.T) {
		status := postJSON(t, env.server.URL+"/api/v1/products/prod-1/quote",
			`{"quantity":5,"selected_value_ids":["val-red"]}`, nil)
		assert.Equal(t, http.StatusUnprocessableEntity, status)
	})

	t.Run("fallback overrides minimum order", func(t *testing.T) {
		var body quoteResponse
		status := postJSON(t, env.server.URL+"/api/v1/products/prod-1/quote",
			`{"quantity":5,"selected_value_ids":["val-red"],"fallback":true}`, &body)
		require.Equal(t, http.StatusOK, status)
		assert.Equal(t, "67.0000", body.UnitPrice)
	})
}

func TestHandler_GenerateTiers(t *testing.T) {
	env := newTestEnv(t)
	seedProduct(t, env, "prod-1", 1)

	modelJSON := `{
		"model": {
			"model": "tiered_margin",
			"tiered_margin": {
				"points": [
					{"min_quantity": 1, "unit_price": "67.00"},
					{"min_quantity": 12, "unit_price": "62.00"},
					{"min_quantity": 50, "unit_price": "56.00"}
				]
			}
		}
	}`

	t.Run("generates and persists", func(t *testing.T) {
		var body generatedTiersResponse
		status := postJSON(t, env.server.URL+"/api/v1/products/prod-1/tiers/generate", modelJSON, &body)
		require.Equal(t, http.StatusOK, status)
		require.Len(t, body.Tiers, 3)
		assert.False(t, body.DryRun)
		assert.Equal(t, "67.0000", body.Tiers[0].UnitPrice)
		assert.Equal(t, int64(16), body.Tiers[2].DiscountPercent)

		require.NotNil(t, env.applier.LastPlan())
		assert.Equal(t, 4, env.applier.LastPlan().Count())
	})

	t.Run("dry run does not persist", func(t *testing.T) {
		env := newTestEnv(t)
		seedProduct(t, env, "prod-1", 1)

		dryRunJSON := strings.Replace(modelJSON, `"model": {`, `"dry_run": true, "model": {`, 1)
		var body generatedTiersResponse
		status := postJSON(t, env.server.URL+"/api/v1/products/prod-1/tiers/generate", dryRunJSON, &body)
		require.Equal(t, http.StatusOK, status)
		assert.True(t, body.DryRun)
		assert.Empty(t, env.applier.Plans)
	})

	t.Run("unknown cost model tag", func(t *testing.T) {
		status := postJSON(t, env.server.URL+"/api/v1/products/prod-1/tiers/generate",
			`{"model":{"model":"flat_rate"}}`, nil)
		assert.Equal(t, http.StatusBadRequest, status)
	})

	t.Run("invalid model parameters", func(t *testing.T) {
		status := postJSON(t, env.server.URL+"/api/v1/products/prod-1/tiers/generate",
			`{"model":{"model":"tiered_margin","tiered_margin":{"points":[]}}}`, nil)
		assert.Equal(t, http.StatusBadRequest, status)
	})
}

func TestHandler_GetProduct(t *testing.T) {
	env := newTestEnv(t)

	maxQ := int64(49)
	env.readModel.Details["prod-1"] = &contracts.ProductDetail{
		Product: contracts.ProductDTO{
			ProductID:        "prod-1",
			Name:             "Embossed Cards",
			Category:         "business-cards",
			MinOrderQuantity: 1,
			Status:           "active",
			TierCount:        2,
			LowestUnitPrice:  62,
		},
		Tiers: []contracts.TierDTO{
			{MinQuantity: 12, MaxQuantity: &maxQ, UnitPrice: 62, DiscountPercent: 7},
			{MinQuantity: 50, UnitPrice: 56, DiscountPercent: 16},
		},
	}

	t.Run("found", func(t *testing.T) {
		var body productDetailResponse
		status := getJSON(t, env.server.URL+"/api/v1/products/prod-1", &body)
		require.Equal(t, http.StatusOK, status)
		assert.Equal(t, "Embossed Cards", body.Product.Name)
		require.Len(t, body.Tiers, 2)
		assert.Nil(t, body.Tiers[1].MaxQuantity)
	})

	t.Run("not found", func(t *testing.T) {
		status := getJSON(t, env.server.URL+"/api/v1/products/ghost", nil)
		assert.Equal(t, http.StatusNotFound, status)
	})
}

func TestHandler_ListProducts(t *testing.T) {
	env := newTestEnv(t)
	env.readModel.List = &contracts.ListResult{
		Products: []*contracts.ProductDTO{
			{ProductID: "prod-1", Name: "Embossed Cards", Status: "active"},
		},
		TotalCount: 1,
	}

	var body listResponse
	status := getJSON(t, env.server.URL+"/api/v1/products?category=business-cards&page_size=10", &body)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, int64(1), body.TotalCount)
	require.Len(t, body.Products, 1)

	require.NotNil(t, env.readModel.LastFilter)
	assert.Equal(t, "business-cards", env.readModel.LastFilter.Category)
	assert.Equal(t, 10, env.readModel.LastFilter.PageSize)
}

func TestHandler_Health(t *testing.T) {
	env := newTestEnv(t)
	status := getJSON(t, env.server.URL+"/healthz", nil)
	assert.Equal(t, http.StatusOK, status)
}
