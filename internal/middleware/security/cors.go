package security

import (
	"net/http"
	"strconv"
	"strings"
	"time"
)

// CORSConfig lists the browser origins allowed to call the API.
type CORSConfig struct {
	AllowedOrigins []string
	AllowedMethods []string
	AllowedHeaders []string
	ExposedHeaders []string
	MaxAge         time.Duration
}

func DefaultCORSConfig(origins []string) CORSConfig {
	return CORSConfig{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders: []string{"Content-Disposition", "X-Request-ID"},
		MaxAge:         10 * time.Minute,
	}
}

// CORS answers preflight requests and stamps allowed origins with credentials
// support. Requests from other origins pass through without CORS headers, so
// browsers block them.
type CORS struct {
	origins map[string]struct{}
	methods string
	headers string
	exposed string
	maxAge  string
}

func NewCORS(config CORSConfig) *CORS {
	origins := make(map[string]struct{}, len(config.AllowedOrigins))
	for _, o := range config.AllowedOrigins {
		origins[strings.TrimRight(o, "/")] = struct{}{}
	}
	return &CORS{
		origins: origins,
		methods: strings.Join(config.AllowedMethods, ", "),
		headers: strings.Join(config.AllowedHeaders, ", "),
		exposed: strings.Join(config.ExposedHeaders, ", "),
		maxAge:  strconv.Itoa(int(config.MaxAge.Seconds())),
	}
}

func (c *CORS) allowed(origin string) bool {
	_, ok := c.origins[origin]
	return ok
}

func (c *CORS) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		h := w.Header()
		h.Add("Vary", "Origin")

		if origin == "" || !c.allowed(origin) {
			if r.Method == http.MethodOptions && origin != "" {
				w.WriteHeader(http.StatusForbidden)
				return
			}
			next.ServeHTTP(w, r)
			return
		}

		h.Set("Access-Control-Allow-Origin", origin)
		h.Set("Access-Control-Allow-Credentials", "true")
		if c.exposed != "" {
			h.Set("Access-Control-Expose-Headers", c.exposed)
		}

		if r.Method == http.MethodOptions && r.Header.Get("Access-Control-Request-Method") != "" {
			h.Set("Access-Control-Allow-Methods", c.methods)
			h.Set("Access-Control-Allow-Headers", c.headers)
			h.Set("Access-Control-Max-Age", c.maxAge)
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}
