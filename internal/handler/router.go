package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	custommiddleware "github.com/mmeshcher/farmshop-system/internal/middleware"
)

// SetupRouter настраивает HTTP-маршруты и middleware сервиса лавки.
func (h *Handler) SetupRouter() *chi.Mux {
	r := chi.NewRouter()

	r.Use(custommiddleware.GzipMiddleware)
	r.Use(custommiddleware.Logger(h.logger))

	r.Route("/api", func(r chi.Router) {
		r.Post("/customers", h.RegisterCustomer)
		r.Get("/customers", h.GetCustomers)

		r.Post("/stock", h.StockProduct)
		r.Get("/stock", h.GetStock)

		r.Post("/transactions", h.StartTransaction)
		r.Post("/transactions/items", h.AddToCart)
		r.Post("/transactions/checkout", h.Checkout)

		r.Get("/receipts/last", h.GetLastReceipt)

		r.Get("/stats", h.GetStats)
		r.Get("/stats/products/{code}", h.GetProductStats)
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
	})

	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
	})

	return r
}

func productCodeParam(r *http.Request) string {
	return chi.URLParam(r, "code")
}
