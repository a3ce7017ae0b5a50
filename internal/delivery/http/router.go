package http

import (
	"net/http"

	"cadcam-storefront/internal/delivery/http/handler"
	"cadcam-storefront/internal/delivery/http/middleware"
	"cadcam-storefront/pkg/response"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Router struct {
	router               *mux.Router
	productHandler       *handler.ProductHandler
	authMiddleware       *middleware.AuthMiddleware
	validationMiddleware *middleware.ValidationMiddleware
	corsMiddleware       *middleware.CORSMiddleware
	loggingMiddleware    *middleware.LoggingMiddleware
	recoveryMiddleware   *middleware.RecoveryMiddleware
}

func NewRouter(
	productHandler *handler.ProductHandler,
	authMiddleware *middleware.AuthMiddleware,
	validationMiddleware *middleware.ValidationMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
	loggingMiddleware *middleware.LoggingMiddleware,
	recoveryMiddleware *middleware.RecoveryMiddleware,
) *Router {
	return &Router{
		router:               mux.NewRouter(),
		productHandler:       productHandler,
		authMiddleware:       authMiddleware,
		validationMiddleware: validationMiddleware,
		corsMiddleware:       corsMiddleware,
		loggingMiddleware:    loggingMiddleware,
		recoveryMiddleware:   recoveryMiddleware,
	}
}

// Setup registers the catalog routes and returns the full handler chain.
// Recovery, logging and CORS wrap the router itself so they also see
// preflights and unmatched paths, which mux middleware never reaches.
func (r *Router) Setup() http.Handler {
	r.router.Use(middleware.Metrics)

	api := r.router.PathPrefix("/api").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Catalog routes (public)
	products := api.PathPrefix("/products").Subrouter()
	products.HandleFunc("", r.productHandler.GetAll).Methods(http.MethodGet)
	products.HandleFunc("/", r.productHandler.GetAll).Methods(http.MethodGet)
	products.HandleFunc("/search", r.productHandler.Search).Methods(http.MethodGet)
	products.HandleFunc("/categories", r.productHandler.GetCategories).Methods(http.MethodGet)
	products.HandleFunc("/{id}", r.productHandler.GetByID).Methods(http.MethodGet)

	// Catalog management (protected - admin only)
	products.Handle("", r.protected(r.productHandler.Create, true)).Methods(http.MethodPost)
	products.Handle("/", r.protected(r.productHandler.Create, true)).Methods(http.MethodPost)
	products.Handle("/{id}", r.protected(r.productHandler.Update, true)).Methods(http.MethodPut)
	products.Handle("/{id}", r.protected(r.productHandler.Delete, false)).Methods(http.MethodDelete)

	r.router.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	// mux skips Use middleware for these, so they are counted here.
	r.router.NotFoundHandler = middleware.Metrics(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		response.NotFound(w, "Route not found")
	}))
	r.router.MethodNotAllowedHandler = middleware.Metrics(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		response.MethodNotAllowed(w)
	}))

	var h http.Handler = r.router
	h = r.corsMiddleware.Handle(h)
	h = r.loggingMiddleware.Handle(h)
	h = r.recoveryMiddleware.Handle(h)
	return h
}

func (r *Router) protected(fn http.HandlerFunc, validateBody bool) http.Handler {
	var h http.Handler = fn
	if validateBody {
		h = r.validationMiddleware.ValidateProduct(h)
	}
	return r.authMiddleware.Authenticate(middleware.RequireAdmin(h))
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	response.Success(w, http.StatusOK, "Catalog API is running", map[string]string{"status": "ok"})
}
