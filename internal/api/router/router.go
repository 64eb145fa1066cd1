package router

import (
	"fmt"
	"net/http"

	_ "github.com/RoyceAzure/lab/stadiumorder/docs"
	"github.com/RoyceAzure/lab/stadiumorder/internal/api"
	m "github.com/RoyceAzure/lab/stadiumorder/internal/api/middleware"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
	httpSwagger "github.com/swaggo/http-swagger"
)

func SetupRouter(server *api.Server, logger *zerolog.Logger) *chi.Mux {
	r := chi.NewRouter()

	// 全局中間件
	r.Use(m.RequestIdMiddleware)
	r.Use(m.IdentityMiddleware)
	r.Use(middleware.RealIP)
	r.Use(m.LoggerMiddleware(logger))
	r.Use(m.RecoverMiddleware)

	// Swagger 文檔
	r.Get("/swagger", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/swagger/", http.StatusMovedPermanently)
	})
	r.Get("/swagger/*", httpSwagger.Handler())

	// API 路由
	r.Route("/api", func(r chi.Router) {
		r.Route("/products", func(r chi.Router) {
			r.Get("/", server.CatalogHandler.ListProducts)
			r.Get("/{id}", server.CatalogHandler.GetProduct)
		})

		r.Route("/sections", func(r chi.Router) {
			r.Get("/", server.CatalogHandler.ListSections)
			r.With(m.AdminMiddleware).Patch("/{id}", server.CatalogHandler.UpdateSection)
		})

		r.Route("/orders", func(r chi.Router) {
			r.Post("/", server.OrderHandler.CreateOrder)
			r.Get("/", server.OrderHandler.ListOrders)
			r.Get("/{id}", server.OrderHandler.GetOrder)
			r.Patch("/{id}/status", server.OrderHandler.UpdateOrderStatus)
		})
	})

	// 在設置完所有路由後打印路由樹
	fmt.Println(chi.Walk(r, func(method string, route string, handler http.Handler, middlewares ...func(http.Handler) http.Handler) error {
		fmt.Printf("%s %s\n", method, route)
		return nil
	}))
	return r
}
