// Package handler содержит HTTP-обработчики API сервиса лавки.
package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/mmeshcher/farmshop-system/internal/catalog"
	"github.com/mmeshcher/farmshop-system/internal/customer"
	"github.com/mmeshcher/farmshop-system/internal/inventory"
	"github.com/mmeshcher/farmshop-system/internal/sales"
	"github.com/mmeshcher/farmshop-system/internal/store"
)

// Service определяет контракт лавки, используемый HTTP-обработчиками.
type Service interface {
	SaveCustomer(c *customer.Customer) error
	Customer(name, phone string) (*customer.Customer, error)
	Customers() []*customer.Customer
	StockProduct(code catalog.Code, quality catalog.Quality)
	StockProducts(code catalog.Code, quality catalog.Quality, quantity int) error
	Stock() []catalog.Product
	StartTransaction(t *sales.Transaction) error
	AddToCart(code catalog.Code) (int, error)
	AddToCartMany(code catalog.Code, quantity int) (int, error)
	Checkout() (bool, error)
	LastReceipt() (string, error)
	GrossEarnings() int
	GrossEarningsFor(code catalog.Code) int
	TransactionCount() int
	ProductsSold() int
	ProductsSoldFor(code catalog.Code) int
	MostPopularProduct() catalog.Code
	AverageSpendPerVisit() float64
	AverageProductDiscount(code catalog.Code) float64
}

// Handler реализует HTTP-обработчики API сервиса лавки.
type Handler struct {
	service Service
	logger  *zap.Logger
}

// NewHandler создаёт новый экземпляр обработчика HTTP-запросов.
func NewHandler(s Service, logger *zap.Logger) *Handler {
	return &Handler{
		service: s,
		logger:  logger,
	}
}

type customerRequest struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// RegisterCustomer сохраняет нового покупателя в адресной книге лавки.
func (h *Handler) RegisterCustomer(w http.ResponseWriter, r *http.Request) {
	var req customerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	c, err := customer.New(req.Name, req.Phone, req.Address)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.service.SaveCustomer(c); err != nil {
		if errors.Is(err, customer.ErrDuplicateCustomer) {
			http.Error(w, http.StatusText(http.StatusConflict), http.StatusConflict)
			return
		}
		h.logger.Error("save customer error", zap.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
}

type customerResponse struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// GetCustomers возвращает всех покупателей из адресной книги.
func (h *Handler) GetCustomers(w http.ResponseWriter, r *http.Request) {
	customers := h.service.Customers()

	resp := make([]customerResponse, 0, len(customers))
	for _, c := range customers {
		resp = append(resp, customerResponse{
			Name:    c.Name(),
			Phone:   c.Phone(),
			Address: c.Address(),
		})
	}

	writeJSON(w, h.logger, resp)
}

type stockRequest struct {
	Product  string `json:"product"`
	Quality  string `json:"quality"`
	Quantity *int   `json:"quantity,omitempty"`
}

// StockProduct принимает товар (или партию товара) на склад лавки.
func (h *Handler) StockProduct(w http.ResponseWriter, r *http.Request) {
	var req stockRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	code, err := catalog.ParseCode(req.Product)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	quality := catalog.Regular
	if req.Quality != "" {
		quality, err = catalog.ParseQuality(req.Quality)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
	}

	if req.Quantity == nil || *req.Quantity == 1 {
		h.service.StockProduct(code, quality)
		w.WriteHeader(http.StatusOK)
		return
	}

	if err := h.service.StockProducts(code, quality, *req.Quantity); err != nil {
		switch {
		case errors.Is(err, inventory.ErrBulkUnsupported):
			http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		case errors.Is(err, inventory.ErrNegativeQuantity):
			http.Error(w, err.Error(), http.StatusBadRequest)
		default:
			h.logger.Error("stock product error", zap.Error(err), zap.String("product", req.Product))
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		}
		return
	}

	w.WriteHeader(http.StatusOK)
}

type stockItemResponse struct {
	Product string `json:"product"`
	Quality string `json:"quality"`
	Price   int    `json:"price"`
}

// GetStock возвращает снимок текущего запаса склада.
func (h *Handler) GetStock(w http.ResponseWriter, r *http.Request) {
	products := h.service.Stock()

	resp := make([]stockItemResponse, 0, len(products))
	for _, p := range products {
		resp = append(resp, stockItemResponse{
			Product: p.DisplayName(),
			Quality: p.Quality().String(),
			Price:   p.BasePrice(),
		})
	}

	writeJSON(w, h.logger, resp)
}

type startTransactionRequest struct {
	Name      string         `json:"name"`
	Phone     string         `json:"phone"`
	Kind      string         `json:"kind"`
	Discounts map[string]int `json:"discounts,omitempty"`
}

// StartTransaction открывает транзакцию для указанного покупателя.
func (h *Handler) StartTransaction(w http.ResponseWriter, r *http.Request) {
	var req startTransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	c, err := h.service.Customer(req.Name, req.Phone)
	if err != nil {
		if errors.Is(err, customer.ErrCustomerNotFound) {
			http.Error(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
			return
		}
		h.logger.Error("find customer error", zap.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	t, err := buildTransaction(c, req.Kind, req.Discounts)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.service.StartTransaction(t); err != nil {
		if errors.Is(err, sales.ErrTransactionInProgress) {
			http.Error(w, http.StatusText(http.StatusConflict), http.StatusConflict)
			return
		}
		h.logger.Error("start transaction error", zap.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
}

type cartRequest struct {
	Product  string `json:"product"`
	Quantity *int   `json:"quantity,omitempty"`
}

type cartResponse struct {
	Added int `json:"added"`
}

// AddToCart переносит товар со склада в корзину покупателя текущей
// транзакции и сообщает, сколько товаров удалось перенести.
func (h *Handler) AddToCart(w http.ResponseWriter, r *http.Request) {
	var req cartRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	code, err := catalog.ParseCode(req.Product)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var added int
	if req.Quantity == nil || *req.Quantity == 1 {
		added, err = h.service.AddToCart(code)
	} else {
		added, err = h.service.AddToCartMany(code, *req.Quantity)
	}
	if err != nil {
		switch {
		case errors.Is(err, sales.ErrNoTransaction):
			http.Error(w, err.Error(), http.StatusConflict)
		case errors.Is(err, inventory.ErrBulkUnsupported):
			http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		case errors.Is(err, store.ErrInvalidQuantity):
			http.Error(w, err.Error(), http.StatusBadRequest)
		default:
			h.logger.Error("add to cart error", zap.Error(err), zap.String("product", req.Product))
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		}
		return
	}

	writeJSON(w, h.logger, cartResponse{Added: added})
}

type checkoutResponse struct {
	Recorded bool `json:"recorded"`
}

// Checkout закрывает текущую транзакцию и сообщает, была ли продажа
// записана в историю (пустая корзина в историю не попадает).
func (h *Handler) Checkout(w http.ResponseWriter, r *http.Request) {
	recorded, err := h.service.Checkout()
	if err != nil {
		if errors.Is(err, sales.ErrNoTransaction) {
			http.Error(w, err.Error(), http.StatusConflict)
			return
		}
		h.logger.Error("checkout error", zap.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	writeJSON(w, h.logger, checkoutResponse{Recorded: recorded})
}

// GetLastReceipt возвращает чек последней записанной продажи.
func (h *Handler) GetLastReceipt(w http.ResponseWriter, r *http.Request) {
	text, err := h.service.LastReceipt()
	if err != nil {
		if errors.Is(err, sales.ErrEmptyHistory) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		h.logger.Error("last receipt error", zap.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	if _, err := w.Write([]byte(text)); err != nil {
		h.logger.Error("write receipt error", zap.Error(err))
	}
}

type statsResponse struct {
	GrossEarnings      int     `json:"gross_earnings"`
	Transactions       int     `json:"transactions"`
	ProductsSold       int     `json:"products_sold"`
	MostPopularProduct string  `json:"most_popular_product"`
	AverageSpend       float64 `json:"average_spend"`
}

// GetStats возвращает сводную статистику продаж лавки.
func (h *Handler) GetStats(w http.ResponseWriter, r *http.Request) {
	resp := statsResponse{
		GrossEarnings:      h.service.GrossEarnings(),
		Transactions:       h.service.TransactionCount(),
		ProductsSold:       h.service.ProductsSold(),
		MostPopularProduct: h.service.MostPopularProduct().DisplayName(),
		AverageSpend:       h.service.AverageSpendPerVisit(),
	}

	writeJSON(w, h.logger, resp)
}

type productStatsResponse struct {
	Product         string  `json:"product"`
	GrossEarnings   int     `json:"gross_earnings"`
	ProductsSold    int     `json:"products_sold"`
	AverageDiscount float64 `json:"average_discount"`
}

// GetProductStats возвращает статистику продаж одного типа товара.
func (h *Handler) GetProductStats(w http.ResponseWriter, r *http.Request) {
	code, err := catalog.ParseCode(productCodeParam(r))
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}

	resp := productStatsResponse{
		Product:         code.DisplayName(),
		GrossEarnings:   h.service.GrossEarningsFor(code),
		ProductsSold:    h.service.ProductsSoldFor(code),
		AverageDiscount: h.service.AverageProductDiscount(code),
	}

	writeJSON(w, h.logger, resp)
}

func buildTransaction(c *customer.Customer, kind string, discounts map[string]int) (*sales.Transaction, error) {
	switch kind {
	case "", "base":
		return sales.New(c), nil
	case "categorised":
		return sales.NewCategorised(c), nil
	case "special":
		parsed := make(map[catalog.Code]int, len(discounts))
		for name, percent := range discounts {
			code, err := catalog.ParseCode(name)
			if err != nil {
				return nil, err
			}
			if percent < 0 || percent > 100 {
				return nil, errors.New("discount percent must be between 0 and 100")
			}
			parsed[code] = percent
		}
		return sales.NewSpecialSale(c, parsed), nil
	}
	return nil, errors.New("unknown transaction kind: " + kind)
}

func writeJSON(w http.ResponseWriter, logger *zap.Logger, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("encode response error", zap.Error(err))
	}
}
