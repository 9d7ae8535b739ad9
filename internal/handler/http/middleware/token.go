package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/zano-5702/worktime-backend-go/internal/handler/http/response"
)

// AdminToken guards configuration writes with a static bearer token. An
// empty expected token leaves the routes open, which is the local
// development default.
func AdminToken(expected string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		hfn := func(w http.ResponseWriter, r *http.Request) {
			if expected == "" {
				next.ServeHTTP(w, r)
				return
			}

			header := r.Header.Get("Authorization")
			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok {
				response.Unauthorized(w, "Missing bearer token")
				return
			}

			if subtle.ConstantTimeCompare([]byte(token), []byte(expected)) != 1 {
				response.Unauthorized(w, "Invalid token")
				return
			}

			next.ServeHTTP(w, r)
		}
		return http.HandlerFunc(hfn)
	}
}
