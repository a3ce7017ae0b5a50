package middleware

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"

	"cadcam-storefront/internal/delivery/dto"
	"cadcam-storefront/pkg/response"
	"cadcam-storefront/pkg/validator"
)

const maxBodyBytes = 1 << 20

// ValidationMiddleware checks the supplied members of a product body before
// the handler runs. Absent members pass; the handler decides what is required.
type ValidationMiddleware struct {
	validator *validator.CustomValidator
}

func NewValidationMiddleware(validator *validator.CustomValidator) *ValidationMiddleware {
	return &ValidationMiddleware{validator: validator}
}

func (m *ValidationMiddleware) ValidateProduct(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
		if err != nil {
			response.BadRequest(w, "Invalid request body", nil)
			return
		}
		r.Body = io.NopCloser(bytes.NewReader(body))

		if len(bytes.TrimSpace(body)) == 0 {
			next.ServeHTTP(w, r)
			return
		}

		var req dto.ProductRequest
		if err := json.Unmarshal(body, &req); err != nil {
			response.BadRequest(w, "Invalid request body", nil)
			return
		}

		rules := req.Rules()
		if err := m.validator.Validate(&rules); err != nil {
			response.ValidationError(w, m.validator.FormatValidationErrors(err))
			return
		}

		next.ServeHTTP(w, r)
	})
}
