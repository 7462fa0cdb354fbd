package middleware

import (
	"net/http"
	"time"

	"github.com/rs/cors"
)

// CORS allows any origin to call the API. Tokens travel in the Authorization
// header, so credentials (cookies) stay disabled.
func CORS(next http.Handler) http.Handler {
	return cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions, http.MethodHead},
		AllowedHeaders:   []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposedHeaders:   []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           int((12 * time.Hour).Seconds()),
	}).Handler(next)
}
