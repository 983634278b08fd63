package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/cinelog/cinelog/internal/pkg/message"
	"github.com/cinelog/cinelog/internal/pkg/web"
)

// CheckContentType rejects body-carrying requests whose Content-Type is not JSON.
func CheckContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPost, http.MethodPut, http.MethodPatch:
			contentType := r.Header.Get(web.HeaderContentType)
			if !strings.HasPrefix(contentType, web.MimeJSON) {
				web.RespondNotAcceptable(w, fmt.Errorf("invalid content-type: %s", contentType), message.InvalidInput, nil)
				return
			}
		}

		next.ServeHTTP(w, r)
	})
}
