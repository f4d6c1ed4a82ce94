// Package middleware provides HTTP middleware for the API.
package middleware

import (
	"net/http"
	"strings"

	"github.com/hector00/bloglist-api/internal/api/shared"
)

// TokenExtractor pulls a bearer token out of the Authorization header and
// stores the raw string in the request context. It never rejects requests:
// verification happens in the handlers that gate on authentication, so
// read-only routes stay open and write routes choose their own failure
// shape.
func TokenExtractor(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader != "" {
			parts := strings.SplitN(authHeader, " ", 2)
			// The scheme comparison is case-insensitive per RFC 7235
			if len(parts) == 2 && strings.EqualFold(parts[0], "bearer") {
				ctx := shared.SetToken(r.Context(), parts[1])
				r = r.WithContext(ctx)
			}
		}

		next.ServeHTTP(w, r)
	})
}
