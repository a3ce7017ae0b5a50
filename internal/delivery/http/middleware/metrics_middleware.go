package middleware

import (
	"net/http"
	"strconv"
	"time"

	"cadcam-storefront/internal/infrastructure/metrics"

	"github.com/gorilla/mux"
)

// Metrics records request counts and latency labelled by route template, so
// /api/products/{id} is one series regardless of the id. It has to be
// installed with mux.Router.Use for the matched route to be known; requests
// without a route are labelled "unmatched".
func Metrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := newStatusRecorder(w)

		next.ServeHTTP(rec, r)

		route := "unmatched"
		if current := mux.CurrentRoute(r); current != nil {
			if tpl, err := current.GetPathTemplate(); err == nil {
				route = tpl
			}
		}

		metrics.HTTPRequestCounter.WithLabelValues(r.Method, route, strconv.Itoa(rec.status)).Inc()
		metrics.HTTPRequestDuration.WithLabelValues(r.Method, route).Observe(time.Since(start).Seconds())
	})
}
