package auth

import (
	"errors"
	"net/http"
	"strings"

	"github.com/cinelog/cinelog/internal/pkg/message"
	"github.com/cinelog/cinelog/internal/pkg/web"
	"github.com/cinelog/cinelog/internal/platform/jwt"
)

var ErrInvalidToken = errors.New("invalid token")

// RequireToken guards a route behind a valid bearer token and puts the
// asserted user ID into the request context.
func RequireToken(signer jwt.Signer) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, err := extractBearerToken(r)
			if err != nil {
				web.RespondUnauthorized(w, err, message.InvalidToken, nil)
				return
			}

			claims, err := signer.Verify(token)
			if err != nil {
				web.RespondUnauthorized(w, err, message.InvalidToken, nil)
				return
			}

			ctx := ContextWithUser(r.Context(), claims.UserID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func extractBearerToken(r *http.Request) (string, error) {
	const prefix = "Bearer "
	header := r.Header.Get("Authorization")
	token, ok := strings.CutPrefix(header, prefix)
	if !ok || token == "" {
		return "", ErrInvalidToken
	}
	return token, nil
}

// VerifyResetToken validates the reset token and user id carried in the url
// query string, then attaches the resolved token record to the request
// context for the next handler.
func VerifyResetToken(svc AuthService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			query := r.URL.Query()
			plaintext := query.Get("token")
			userID := query.Get("id")
			if plaintext == "" || userID == "" {
				web.RespondUnauthorized(w, ErrInvalidToken, message.InvalidToken, nil)
				return
			}

			token, err := svc.CheckResetToken(r.Context(), userID, plaintext)
			if err != nil {
				if errors.Is(err, ErrTokenInvalid) || errors.Is(err, ErrInvalidUser) {
					web.RespondUnauthorized(w, err, message.InvalidToken, nil)
					return
				}
				web.RespondInternalServerError(w, err)
				return
			}

			ctx := ContextWithResetToken(r.Context(), token)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
