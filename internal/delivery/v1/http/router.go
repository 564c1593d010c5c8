package http

import (
	"time"

	_ "github.com/DRSN-tech/catalog-backend/docs" // Импорт сгенерированных файлов
	"github.com/DRSN-tech/catalog-backend/internal/cfg"
	"github.com/DRSN-tech/catalog-backend/internal/usecase"
	"github.com/DRSN-tech/catalog-backend/pkg/logger"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

const requestTimeout = 60 * time.Second

type Router struct {
	router *chi.Mux
	cfg    *cfg.HTTPConfig
	logger logger.Logger
}

func NewRouter(router *chi.Mux, cfg *cfg.HTTPConfig, logger logger.Logger) *Router {
	return &Router{router: router, cfg: cfg, logger: logger}
}

func (r *Router) Init(catalogUC usecase.CatalogUC, authUC usecase.AuthUC, images usecase.ImagesInfra) {
	r.router.Use(middleware.RequestID)
	r.router.Use(middleware.RealIP)
	r.router.Use(middleware.Recoverer)
	r.router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   r.cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))
	r.router.Use(middleware.Timeout(requestTimeout))

	r.router.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(r.cfg.SwaggerURL),
	))

	r.router.Route("/api/v1", func(v1 chi.Router) {
		categoryHandler := NewCategoryHandler(catalogUC, r.logger)
		productHandler := NewProductHandler(catalogUC, r.logger)
		authHandler := NewAuthHandler(authUC, r.logger)
		uploadHandler := NewUploadHandler(images, r.logger)

		registerPublicRoutes(v1, categoryHandler, productHandler)
		registerAuthRoutes(v1, authHandler, authUC, r.logger)

		v1.Route("/admin", func(admin chi.Router) {
			admin.Use(AdminOnly(authUC, r.logger))
			admin.Get("/me", authHandler.me)
			admin.Get("/dashboard", productHandler.dashboard)
			registerAdminCategoryRoutes(admin, categoryHandler)
			registerAdminProductRoutes(admin, productHandler)
			admin.Post("/uploads/{folder}", uploadHandler.upload)
		})
	})
}

func registerPublicRoutes(router chi.Router, categoryHandler *CategoryHandler, productHandler *ProductHandler) {
	router.Route("/categories", func(c chi.Router) {
		c.Get("/", categoryHandler.listPublic)
		c.Get("/{slug}", categoryHandler.getBySlug)
	})
	router.Route("/products", func(pr chi.Router) {
		pr.Get("/", productHandler.listPublished)
		pr.Get("/{slug}", productHandler.getPublished)
	})
	router.Get("/search", productHandler.search)
}

func registerAuthRoutes(router chi.Router, authHandler *AuthHandler, authUC usecase.AuthUC, logger logger.Logger) {
	router.Route("/auth", func(a chi.Router) {
		a.Post("/login", authHandler.login)
		a.With(AdminOnly(authUC, logger)).Post("/logout", authHandler.logout)
	})
}

func registerAdminCategoryRoutes(router chi.Router, categoryHandler *CategoryHandler) {
	router.Route("/categories", func(c chi.Router) {
		c.Get("/", categoryHandler.list)
		c.Post("/", categoryHandler.create)
		c.Get("/{id}", categoryHandler.get)
		c.Patch("/{id}", categoryHandler.update)
		c.Delete("/{id}", categoryHandler.delete)
	})
}

func registerAdminProductRoutes(router chi.Router, productHandler *ProductHandler) {
	router.Route("/products", func(pr chi.Router) {
		pr.Get("/", productHandler.list)
		pr.Post("/", productHandler.create)
		pr.Get("/{id}", productHandler.get)
		pr.Patch("/{id}", productHandler.update)
		pr.Delete("/{id}", productHandler.delete)
		pr.Post("/{id}/publish", productHandler.togglePublish)
		pr.Post("/{id}/content/{field}/images", productHandler.insertContentImages)
	})
}
