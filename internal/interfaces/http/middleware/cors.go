package middleware

import (
	"net/http"
	"strconv"
	"strings"
)

// CORSConfig holds configuration for the CORS middleware.
type CORSConfig struct {
	// AllowedOrigins lists origins allowed to make cross-origin requests.
	// ["*"] allows all origins.
	AllowedOrigins []string

	AllowedMethods []string
	AllowedHeaders []string

	// MaxAge is how long (in seconds) preflight results may be cached.
	MaxAge int
}

// DefaultCORSConfig returns the default CORS configuration used when the
// config file leaves the cors section empty.
func DefaultCORSConfig() CORSConfig {
	return CORSConfig{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodOptions,
		},
		AllowedHeaders: []string{
			"Accept",
			"Content-Type",
			"X-Request-ID",
		},
		MaxAge: 300,
	}
}

// CORS returns middleware that handles cross-origin resource sharing.
// Preflight OPTIONS requests are answered with 204; other requests get the
// allow-origin header when their Origin matches.
func CORS(config CORSConfig) func(http.Handler) http.Handler {
	allowedMethodsStr := strings.Join(config.AllowedMethods, ", ")
	allowedHeadersStr := strings.Join(config.AllowedHeaders, ", ")
	maxAgeStr := strconv.Itoa(config.MaxAge)

	originSet := make(map[string]bool, len(config.AllowedOrigins))
	allowAll := false
	for _, origin := range config.AllowedOrigins {
		if origin == "*" {
			allowAll = true
			continue
		}
		originSet[strings.ToLower(origin)] = true
	}

	isOriginAllowed := func(origin string) bool {
		return allowAll || originSet[strings.ToLower(origin)]
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")
			if origin == "" {
				next.ServeHTTP(w, r)
				return
			}

			w.Header().Add("Vary", "Origin")
			if !isOriginAllowed(origin) {
				next.ServeHTTP(w, r)
				return
			}

			allowOrigin := origin
			if allowAll {
				allowOrigin = "*"
			}
			w.Header().Set("Access-Control-Allow-Origin", allowOrigin)

			if r.Method == http.MethodOptions {
				w.Header().Set("Access-Control-Allow-Methods", allowedMethodsStr)
				w.Header().Set("Access-Control-Allow-Headers", allowedHeadersStr)
				w.Header().Set("Access-Control-Max-Age", maxAgeStr)
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
