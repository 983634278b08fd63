package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/cinelog/cinelog/internal/middleware"
	"github.com/cinelog/cinelog/internal/pkg/message"
	"github.com/cinelog/cinelog/internal/pkg/web"
)

func TestCheckContentType(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		method      string
		contentType string
		wantCode    int
	}{
		{"json post", http.MethodPost, web.MimeJSON, http.StatusOK},
		{"json with charset", http.MethodPatch, "application/json; charset=utf-8", http.StatusOK},
		{"form post", http.MethodPost, "application/x-www-form-urlencoded", http.StatusNotAcceptable},
		{"missing content type", http.MethodPut, "", http.StatusNotAcceptable},
		{"get without content type", http.MethodGet, "", http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(tt.method, "/", nil)
			if tt.contentType != "" {
				req.Header.Set(web.HeaderContentType, tt.contentType)
			}
			rec := httptest.NewRecorder()
			middleware.CheckContentType(next).ServeHTTP(rec, req)

			if rec.Code != tt.wantCode {
				t.Errorf(message.FmtErrStatusCode, rec.Code, tt.wantCode)
			}
		})
	}
}
