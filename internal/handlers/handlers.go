package handlers

import (
	"Wardrobe/internal/config"
	"Wardrobe/internal/middleware"
	"Wardrobe/internal/service"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"
)

type Handler struct {
	Router chi.Router
}

// NewHandler разводящий для хендлеров
func NewHandler(
	itemService *service.ClothingItemService,
	logger *zap.SugaredLogger,
	config *config.Config,
) *Handler {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	r := chi.NewRouter()

	r.Use(chimw.Recoverer)
	r.Use(middleware.WithCORS(config.CORSOrigins))
	r.Use(chimw.Compress(5))
	r.Use(middleware.WithLogging)

	// Handlers
	itemHandler := NewClothingItemHandler(itemService, logger, config)

	// Clothes routes
	r.Route("/api/clothes", func(r chi.Router) {
		r.Get("/", itemHandler.List)
		r.Post("/", itemHandler.Create)
		r.Get("/{id}", itemHandler.Get)
		r.Put("/{id}", itemHandler.Update)
		r.Delete("/{id}", itemHandler.Delete)
	})

	r.Get("/api/health", Health)

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	return &Handler{Router: r}
}
