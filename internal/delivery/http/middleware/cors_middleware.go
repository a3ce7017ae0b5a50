package middleware

import (
	"net/http"
	"strings"
)

type CORSMiddleware struct {
	allowed map[string]struct{}
	any     bool
}

// NewCORSMiddleware allows the listed origins. A "*" entry allows every origin.
func NewCORSMiddleware(allowedOrigins []string) *CORSMiddleware {
	m := &CORSMiddleware{allowed: make(map[string]struct{}, len(allowedOrigins))}
	for _, origin := range allowedOrigins {
		origin = strings.TrimRight(strings.TrimSpace(origin), "/")
		if origin == "*" {
			m.any = true
			continue
		}
		if origin != "" {
			m.allowed[origin] = struct{}{}
		}
	}
	return m
}

func (m *CORSMiddleware) Handle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		w.Header().Add("Vary", "Origin")

		origin := req.Header.Get("Origin")
		allowed := origin != "" && m.allows(origin)
		if allowed {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
			w.Header().Set("Access-Control-Max-Age", "600")
		}

		// Only real preflights are answered here; other OPTIONS requests
		// reach the router and get its 404 or 405.
		if req.Method == http.MethodOptions && allowed && req.Header.Get("Access-Control-Request-Method") != "" {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, req)
	})
}

func (m *CORSMiddleware) allows(origin string) bool {
	if m.any {
		return true
	}
	_, ok := m.allowed[origin]
	return ok
}
