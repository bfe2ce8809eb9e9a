package api

import (
	"log"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/example/products-slider/internal/api/middleware"
	"github.com/example/products-slider/internal/auth"
)

// RouterConfig holds all handlers and services needed by the router
type RouterConfig struct {
	Handlers      *Handlers
	AdminHandlers *AdminHandlers
	JWTService    *auth.JWTService
}

func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	r.HandleFunc("/health", cfg.Handlers.Health).Methods(http.MethodGet)

	// Sliders
	r.HandleFunc("/sliders/render", cfg.Handlers.RenderSlider).Methods(http.MethodPost)
	r.HandleFunc("/sliders/{tag}", cfg.Handlers.GetSlider).Methods(http.MethodGet)

	// Recently viewed
	r.HandleFunc("/products/{id}/views", cfg.Handlers.RecordView).Methods(http.MethodPost)
	r.HandleFunc("/recently-viewed", cfg.Handlers.GetRecentlyViewed).Methods(http.MethodGet)

	// Admin
	adminOnly := middleware.AdminOnly(cfg.JWTService)
	r.HandleFunc("/admin/login", cfg.AdminHandlers.Login).Methods(http.MethodPost)
	r.Handle("/admin/shortcodes", adminOnly(http.HandlerFunc(cfg.AdminHandlers.GenerateShortcode))).Methods(http.MethodPost)
	r.Handle("/admin/shortcodes/preview", adminOnly(http.HandlerFunc(cfg.AdminHandlers.PreviewShortcode))).Methods(http.MethodPost)

	return withLogging(r)
}

func withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log.Println("[API]", r.Method, r.URL.Path)
		next.ServeHTTP(w, r)
	})
}
