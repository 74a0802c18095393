package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/shopvista/storefront-backend/api/controllers"
	cartcontrollers "github.com/shopvista/storefront-backend/api/controllers/cart"
	"github.com/shopvista/storefront-backend/api/middleware"
	cartsvc "github.com/shopvista/storefront-backend/internal/cart"
	"github.com/shopvista/storefront-backend/internal/catalog"
	"github.com/shopvista/storefront-backend/pkg/config"
	"github.com/shopvista/storefront-backend/pkg/logger"
)

// RouterParams carries everything the HTTP surface depends on.
type RouterParams struct {
	Config         *config.Config
	Logger         *logger.Logger
	DBPinger       controllers.Pinger
	RedisPinger    controllers.Pinger
	CatalogService catalog.Service
	CartService    cartsvc.Service
	Gatherer       prometheus.Gatherer
}

func NewRouter(params RouterParams) http.Handler {
	cfg := params.Config
	logg := params.Logger

	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(cfg.App.CORSOrigins),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, params.DBPinger, params.RedisPinger))
	})

	if params.Gatherer != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(params.Gatherer, promhttp.HandlerOpts{}))
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/products", func(r chi.Router) {
			r.Get("/", controllers.ProductList(params.CatalogService, logg))
			r.Get("/{productId}", controllers.ProductDetail(params.CatalogService, logg))
		})

		r.Route("/cart", func(r chi.Router) {
			r.Use(middleware.CartID(logg))

			r.Get("/", cartcontrollers.CartFetch(params.CartService, logg))
			r.Delete("/", cartcontrollers.CartClear(params.CartService, logg))
			r.Get("/summary", cartcontrollers.CartSummary(params.CartService, logg))
			r.Get("/count", cartcontrollers.CartCount(params.CartService, logg))

			r.Route("/items", func(r chi.Router) {
				r.Post("/", cartcontrollers.CartAddItem(params.CartService, logg))
				r.Route("/{productId}", func(r chi.Router) {
					r.Put("/", cartcontrollers.CartSetQuantity(params.CartService, logg))
					r.Delete("/", cartcontrollers.CartRemoveItem(params.CartService, logg))
					r.Post("/increase", cartcontrollers.CartIncreaseItem(params.CartService, logg))
					r.Post("/decrease", cartcontrollers.CartDecreaseItem(params.CartService, logg))
				})
			})
		})
	})

	return r
}
