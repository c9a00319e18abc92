package middleware

import (
	"net/http"

	"github.com/heartmarshall/bizcrm-backend/pkg/ctxutil"
)

// Identity returns middleware that makes every request act as the given
// account. There is no authentication; the id is resolved once at start-up.
// Install it outside Logger so access logs carry the user id.
func Identity(userID int64) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := ctxutil.WithUserID(r.Context(), userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
