package http

import (
	"net/http"

	_ "github.com/DRSN-tech/storefront/docs" // Импорт сгенерированных файлов
	"github.com/DRSN-tech/storefront/internal/cfg"
	"github.com/DRSN-tech/storefront/internal/usecase"
	"github.com/DRSN-tech/storefront/pkg/logger"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

type Router struct {
	router     *chi.Mux
	logger     logger.Logger
	httpCfg    *cfg.HTTPConfig
	sessionCfg *cfg.SessionCfg
}

func NewRouter(router *chi.Mux, logger logger.Logger, httpCfg *cfg.HTTPConfig, sessionCfg *cfg.SessionCfg) *Router {
	return &Router{router: router, logger: logger, httpCfg: httpCfg, sessionCfg: sessionCfg}
}

func (r *Router) Init(catalogUC usecase.CatalogUC, cartUC usecase.CartUC, checkoutUC usecase.CheckoutUC) {
	r.router.Use(middleware.RequestID)
	r.router.Use(middleware.RealIP)
	r.router.Use(RequestLogger(r.logger))
	r.router.Use(middleware.Recoverer)

	r.router.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(r.httpCfg.SwaggerURL), // ссылка на JSON
	))

	r.router.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		WriteSuccess(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.router.Route("/api/v1", func(v1 chi.Router) {
		registerCatalogRoutes(v1, NewCatalogHandler(catalogUC, r.logger))

		v1.Group(func(sess chi.Router) {
			sess.Use(SessionMiddleware(r.sessionCfg))
			registerCartRoutes(sess, NewCartHandler(cartUC, r.logger))
			registerCheckoutRoutes(sess, NewCheckoutHandler(checkoutUC, r.logger))
		})
	})
}

func registerCatalogRoutes(router chi.Router, h *CatalogHandler) {
	router.Route("/products", func(pr chi.Router) {
		pr.Get("/", h.listProducts)
		pr.Get("/{id}", h.getProduct)
	})
	router.Get("/categories", h.listCategories)
}

func registerCartRoutes(router chi.Router, h *CartHandler) {
	router.Route("/cart", func(cart chi.Router) {
		cart.Get("/", h.getCart)
		cart.Delete("/", h.clearCart)
		cart.Route("/items/{id}", func(item chi.Router) {
			item.Put("/", h.setQuantity)
			item.Delete("/", h.removeItem)
			item.Post("/increment", h.increment)
			item.Post("/decrement", h.decrement)
		})
	})
}

func registerCheckoutRoutes(router chi.Router, h *CheckoutHandler) {
	router.Route("/checkout", func(co chi.Router) {
		co.Get("/", h.getCheckout)
		co.Post("/", h.openCheckout)
		co.Delete("/", h.closeCheckout)
		co.Patch("/draft", h.updateDraft)
		co.Post("/submit", h.submitOrder)
	})
}
