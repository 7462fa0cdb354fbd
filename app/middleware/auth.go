package middleware

import (
	"encoding/json"
	"net/http"

	"boardapp/app/auth"
)

// Authenticator resolves an Authorization header to an account id.
type Authenticator interface {
	Authenticate(header string) (string, error)
}

// RequireAuth rejects requests without a valid bearer token with 401 and
// stores the authenticated subject in the request context otherwise.
func RequireAuth(authn Authenticator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			subject, err := authn.Authenticate(r.Header.Get("Authorization"))
			if err != nil {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				json.NewEncoder(w).Encode(map[string]string{
					"message": "Authentication required",
					"error":   err.Error(),
				})
				return
			}
			next.ServeHTTP(w, r.WithContext(auth.WithSubject(r.Context(), subject)))
		})
	}
}
