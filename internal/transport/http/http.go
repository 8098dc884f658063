package httptransport

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/jortega-dev/tienda-admin/internal/service/models/customer"
	"github.com/jortega-dev/tienda-admin/internal/service/models/order"
	"github.com/jortega-dev/tienda-admin/internal/service/models/orderline"
	"github.com/jortega-dev/tienda-admin/internal/service/models/product"
	"github.com/jortega-dev/tienda-admin/pkg/http/middleware/trace"
	"github.com/jortega-dev/tienda-admin/pkg/logger"
	"github.com/spf13/viper"
)

// service is an interface for the service layer.
type service interface {
	ListCustomers(ctx context.Context) ([]customer.Customer, error)
	CreateCustomer(ctx context.Context, c customer.Customer) error
	UpdateCustomer(ctx context.Context, id int64, c customer.Customer) error
	DeleteCustomer(ctx context.Context, id int64) error

	ListProducts(ctx context.Context) ([]product.Product, error)
	CreateProduct(ctx context.Context, p product.Product) error
	UpdateProduct(ctx context.Context, id int64, p product.Product) error
	DeleteProduct(ctx context.Context, id int64) error

	ListOrders(ctx context.Context) ([]order.Order, error)
	CreateOrder(ctx context.Context, customerID int64, orderDate time.Time) error
	UpdateOrder(ctx context.Context, id, customerID int64, orderDate time.Time) error
	DeleteOrder(ctx context.Context, id int64) error

	ListOrderLines(ctx context.Context) ([]orderline.OrderLine, error)
	CreateOrderLine(ctx context.Context, orderID, productID int64, quantity int) error
	UpdateOrderLine(ctx context.Context, id, orderID, productID int64, quantity int) error
	DeleteOrderLine(ctx context.Context, id int64) error
}

// HTTPTransport serves the record store API.
type HTTPTransport struct {
	server  *http.Server
	router  *chi.Mux
	service service
}

// NewHTTPTransport creates the store transport over the given service.
func NewHTTPTransport(service service) *HTTPTransport {
	router := newRouter()
	server := newServer(router)

	return &HTTPTransport{
		server:  server,
		router:  router,
		service: service,
	}
}

// Run starts the HTTP server.
func (h *HTTPTransport) Run() error {
	return h.server.ListenAndServe()
}

// Shutdown gracefully stops the HTTP server.
func (h *HTTPTransport) Shutdown(ctx context.Context) error {
	return h.server.Shutdown(ctx)
}

// RegisterRoutes registers the routes for the HTTPTransport.
func (h *HTTPTransport) RegisterRoutes() {
	h.router.Route("/api", func(r chi.Router) {
		r.Route("/clientes", func(r chi.Router) {
			r.Get("/", h.listCustomers)
			r.Post("/", h.createCustomer)
			r.Put("/{id}", h.updateCustomer)
			r.Delete("/{id}", h.deleteCustomer)
		})
		r.Route("/productos", func(r chi.Router) {
			r.Get("/", h.listProducts)
			r.Post("/", h.createProduct)
			r.Put("/{id}", h.updateProduct)
			r.Delete("/{id}", h.deleteProduct)
		})
		r.Route("/pedidos", func(r chi.Router) {
			r.Get("/", h.listOrders)
			r.Post("/", h.createOrder)
			r.Put("/{id}", h.updateOrder)
			r.Delete("/{id}", h.deleteOrder)
		})
		r.Route("/detalles-pedidos", func(r chi.Router) {
			r.Get("/", h.listOrderLines)
			r.Post("/", h.createOrderLine)
			r.Put("/{id}", h.updateOrderLine)
			r.Delete("/{id}", h.deleteOrderLine)
		})
	})
}

func newRouter() *chi.Mux {
	router := chi.NewMux()
	router.Use(middleware.RequestID)
	router.Use(logger.NewLoggerMiddleware(slog.Default()))

	if viper.GetBool("tracing.enabled") {
		router.Use(trace.NewTraceMiddleware)
	}

	allowedOrigins := viper.GetStringSlice("server.http.cors.allowed_origins")
	allowedMethods := viper.GetStringSlice("server.http.cors.allowed_methods")
	allowedHeaders := viper.GetStringSlice("server.http.cors.allowed_headers")
	exposedHeaders := viper.GetStringSlice("server.http.cors.exposed_headers")
	allowCredentials := viper.GetBool("server.http.cors.allow_credentials")
	maxAge := viper.GetInt("server.http.cors.max_age")

	c := cors.New(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   allowedMethods,
		AllowedHeaders:   allowedHeaders,
		ExposedHeaders:   exposedHeaders,
		AllowCredentials: allowCredentials,
		MaxAge:           maxAge,
	})

	router.Use(c.Handler)

	return router
}

func newServer(router http.Handler) *http.Server {
	return &http.Server{
		Addr:    "0.0.0.0:" + viper.GetString("server.http.port"),
		Handler: router,
	}
}
