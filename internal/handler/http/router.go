package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/dReyko-sff/herreria-backend1/internal/service"
	"github.com/dReyko-sff/herreria-backend1/pkg/health"
	"github.com/dReyko-sff/herreria-backend1/pkg/middleware"
)

// NewRouter creates a chi router with all routes registered.
func NewRouter(
	productService *service.ProductService,
	cartService *service.CartService,
	healthHandler *health.Handler,
	logger *slog.Logger,
	environment string,
) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	corsCfg := middleware.DefaultCORSConfig()
	corsCfg.Environment = environment
	r.Use(middleware.CORS(corsCfg))
	r.Use(middleware.Recovery(logger))
	r.Use(chimw.Compress(5))
	r.Use(chimw.Timeout(30 * time.Second))
	r.Use(middleware.RequestLogging(logger))
	r.Use(middleware.PrometheusMetrics("herreria-backend"))
	r.Use(middleware.RequestLogger(logger))

	// Health check endpoints
	r.Get("/health/live", healthHandler.LivenessHandler())
	r.Get("/health/ready", healthHandler.ReadinessHandler())
	r.Get("/metrics", func(w http.ResponseWriter, r *http.Request) {
		promhttp.Handler().ServeHTTP(w, r)
	})

	// Product API endpoints
	productHandler := NewProductHandler(productService, logger)

	r.Route("/api/products", func(r chi.Router) {
		r.Use(ContentTypeJSON)

		r.Get("/", productHandler.ListProducts)
		r.Get("/{pid}", productHandler.GetProduct)
		r.Post("/", productHandler.CreateProduct)
		r.Put("/{pid}", productHandler.UpdateProduct)
		r.Delete("/{pid}", productHandler.DeleteProduct)
	})

	// Cart API endpoints
	cartHandler := NewCartHandler(cartService, logger)

	r.Route("/api/carts", func(r chi.Router) {
		r.Use(ContentTypeJSON)

		r.Post("/", cartHandler.CreateCart)
		r.Get("/{cid}", cartHandler.GetCart)
		r.Post("/{cid}/product/{pid}", cartHandler.AddProduct)
	})

	return r
}
