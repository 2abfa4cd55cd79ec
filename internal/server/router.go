package server

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	ordercontroller "emporium/internal/order/controller"
	"emporium/internal/product"
)

func NewRouter(productCtrl *product.Controller, orderCtrl *ordercontroller.OrderController, logger *zap.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RealIP)
	r.Use(requestLogger(logger))
	r.Use(middleware.Recoverer)

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/orders", func(r chi.Router) {
			r.Post("/", orderCtrl.HandleCreateOrder)
			r.Get("/", orderCtrl.HandleListOrders)
			r.Get("/{orderId}", orderCtrl.HandleGetOrder)
			r.Patch("/{orderId}/status", orderCtrl.HandleUpdateStatus)
			r.Patch("/{orderId}/payment-status", orderCtrl.HandleUpdatePaymentStatus)
		})

		r.Get("/products/{productId}", productCtrl.HandleGetProduct)
	})

	return r
}

func requestLogger(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			logger.Info("request completed",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Duration("duration", time.Since(start)),
			)
		})
	}
}
