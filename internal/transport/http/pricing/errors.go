package pricing

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/light-bringer/pricing-service/internal/app/pricing/domain"
)

type errorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
}

// writeError converts a domain error to an HTTP response. Unknown errors are
// logged and masked as 500.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status, message := mapDomainError(err)

	if status == http.StatusInternalServerError {
		h.log.WithError(err).WithField("path", r.URL.Path).Error("request failed")
		message = "internal server error"
	}

	h.writeJSON(w, status, errorResponse{Error: message})
}

// mapDomainError converts domain errors to HTTP status codes.
func mapDomainError(err error) (int, string) {
	switch {
	case errors.Is(err, domain.ErrProductNotFound):
		return http.StatusNotFound, "product not found"

	case errors.Is(err, domain.ErrOptionNotFound):
		return http.StatusNotFound, "option not found"

	case errors.Is(err, domain.ErrValueNotFound):
		return http.StatusNotFound, "option value not found"

	case errors.Is(err, domain.ErrNoTiersDefined):
		return http.StatusNotFound, "product has no price tiers"

	case errors.Is(err, domain.ErrNoMatchingTier):
		return http.StatusUnprocessableEntity, "no tier covers the requested quantity"

	case errors.Is(err, domain.ErrInvalidConfiguration):
		return http.StatusUnprocessableEntity, "selected configuration is invalid"

	case errors.Is(err, domain.ErrInvalidQuantity):
		return http.StatusBadRequest, "quantity must be positive"

	case errors.Is(err, domain.ErrInvalidMinOrder):
		return http.StatusBadRequest, "minimum order quantity must be positive"

	case errors.Is(err, domain.ErrInvalidCostModelConfig):
		return http.StatusBadRequest, err.Error()

	case errors.Is(err, domain.ErrInvalidSelection):
		return http.StatusBadRequest, "invalid option selection"

	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

// validationFieldErrors flattens validator errors into a field -> message map.
func validationFieldErrors(err error) map[string]string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}

	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		name := strings.ToLower(fe.Field())
		switch fe.Tag() {
		case "required":
			fields[name] = name + " is required"
		case "min":
			fields[name] = name + " must be at least " + fe.Param()
		default:
			fields[name] = name + " is invalid"
		}
	}
	return fields
}
