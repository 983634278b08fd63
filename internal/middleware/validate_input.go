package middleware

import (
	"errors"
	"net/http"

	"github.com/cinelog/cinelog/internal/pkg/message"
	"github.com/cinelog/cinelog/internal/pkg/web"
	"github.com/cinelog/cinelog/internal/platform/validation"
)

// ValidateInput validates the decoded payload of type T against its validate tags.
func ValidateInput[T any](validator validation.Validator) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			params, err := web.ParamsFromContext[T](r.Context())
			if err != nil {
				web.RespondBadRequest(w, err, message.InvalidInput, nil)
				return
			}

			if fields := validator.ValidateStruct(params); fields != nil {
				web.RespondBadRequest(w, errors.New("invalid input"), message.InvalidInput, fields)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
