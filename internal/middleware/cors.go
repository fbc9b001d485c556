package middleware

import (
	"net/http"

	"github.com/rs/cors"
)

// Cors allows any origin: the solver has no credentials or user state
// worth protecting, and the UI that calls it is served from elsewhere.
func Cors() func(http.Handler) http.Handler {
	options := cors.Options{
		AllowOriginFunc: func(origin string) bool {
			return true
		},
		AllowedMethods: []string{
			http.MethodHead,
			http.MethodGet,
			http.MethodPost,
		},
		AllowedHeaders: []string{"*"},
	}
	return cors.New(options).Handler
}
