package jwt

import (
	"net/http"
	"strings"

	"github.com/inkwellhq/inkwell/pkg/response"
)

// TokenExtractorFunc extracts a token string from an HTTP request.
type TokenExtractorFunc func(r *http.Request) (string, error)

// Middleware authenticates requests with the default transport: the
// Authorization header first, then the "token" query parameter.
func Middleware(service *Service) func(next http.Handler) http.Handler {
	return MiddlewareWithExtractor(service, FallbackExtractor(
		BearerTokenExtractor,
		QueryTokenExtractor("token"),
	))
}

// MiddlewareWithExtractor authenticates requests using a custom token
// transport. Requests without a verifiable token are answered with a 401
// envelope and never reach the next handler.
func MiddlewareWithExtractor(service *Service, extractor TokenExtractorFunc) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenString, err := extractor(r)
			if err != nil {
				response.Fail(w, http.StatusUnauthorized, "Invalid token")
				return
			}

			claims, err := service.Verify(tokenString)
			if err != nil {
				response.Fail(w, http.StatusUnauthorized, "Invalid token")
				return
			}

			ctx := SetIdentity(r.Context(), Identity{
				UserID:  claims.UserID,
				Email:   claims.Email,
				IsAdmin: claims.IsAdmin,
				Token:   tokenString,
			})

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// BearerTokenExtractor reads "Authorization: Bearer <token>" per RFC 6750.
func BearerTokenExtractor(r *http.Request) (string, error) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", ErrInvalidToken
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return "", ErrInvalidToken
	}

	return parts[1], nil
}

// QueryTokenExtractor reads the token from a URL query parameter. Tokens in
// URLs leak through logs and referrers, so this exists only as a fallback
// for clients that cannot set headers (magic-link redirects).
func QueryTokenExtractor(paramName string) TokenExtractorFunc {
	return func(r *http.Request) (string, error) {
		token := r.URL.Query().Get(paramName)
		if token == "" {
			return "", ErrInvalidToken
		}
		return token, nil
	}
}

// FallbackExtractor tries extractors in order and returns the first token
// found. Order is the precedence: earlier transports win.
func FallbackExtractor(extractors ...TokenExtractorFunc) TokenExtractorFunc {
	return func(r *http.Request) (string, error) {
		for _, extract := range extractors {
			if token, err := extract(r); err == nil {
				return token, nil
			}
		}
		return "", ErrInvalidToken
	}
}
