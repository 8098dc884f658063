package storesvc

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jortega-dev/tienda-admin/internal/dal/postgres"
	customerrepo "github.com/jortega-dev/tienda-admin/internal/dal/repositories/customer/postgres"
	orderrepo "github.com/jortega-dev/tienda-admin/internal/dal/repositories/order/postgres"
	orderlinerepo "github.com/jortega-dev/tienda-admin/internal/dal/repositories/orderline/postgres"
	outboxrepo "github.com/jortega-dev/tienda-admin/internal/dal/repositories/outbox/postgres"
	productrepo "github.com/jortega-dev/tienda-admin/internal/dal/repositories/product/postgres"
	"github.com/jortega-dev/tienda-admin/internal/service/models/audit"
	"github.com/jortega-dev/tienda-admin/internal/service/models/customer"
	"github.com/jortega-dev/tienda-admin/internal/service/models/order"
	"github.com/jortega-dev/tienda-admin/internal/service/models/orderline"
	"github.com/jortega-dev/tienda-admin/internal/service/models/product"
	"github.com/spf13/viper"
)

// ErrInvalidReference reports a foreign key pointing at a row that does
// not exist.
var ErrInvalidReference = errors.New("referenced record does not exist")

// StoreService implements the record store semantics over Postgres. Every
// successful mutation leaves an audit event in the outbox within the same
// transaction.
type StoreService struct {
	pgClient      *postgres.Client
	auditEnabled  bool
	auditExchange string
}

// option is a function that configures the StoreService.
type option func(*StoreService)

// WithPostgresClient sets the Postgres client for the StoreService.
//
//goland:noinspection GoExportedFuncWithUnexportedType
func WithPostgresClient(pgClient *postgres.Client) option {
	return func(s *StoreService) {
		s.pgClient = pgClient
	}
}

// WithAudit enables audit event recording.
//
//goland:noinspection GoExportedFuncWithUnexportedType
func WithAudit() option {
	return func(s *StoreService) {
		s.auditEnabled = true
	}
}

// MustNewStoreService creates a new StoreService.
func MustNewStoreService(opts ...option) *StoreService {
	s := &StoreService{
		auditExchange: viper.GetString("rabbitmq.audit.exchange"),
	}
	if s.auditExchange == "" {
		s.auditExchange = "tienda.audit"
	}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

func (s *StoreService) withTx(ctx context.Context, fn func(q postgres.Querier) error) error {
	tx, err := s.pgClient.Pool().Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(tx); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func (s *StoreService) recordAudit(ctx context.Context, q postgres.Querier, entity, action string, id int64) error {
	if !s.auditEnabled {
		return nil
	}

	event := audit.Event{
		Entity:   entity,
		Action:   action,
		EntityID: id,
		At:       time.Now().UTC(),
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to encode audit event: %w", err)
	}

	return outboxrepo.NewPostgresOutboxRepository(q).Insert(ctx, audit.Message{
		ExchangeName: s.auditExchange,
		RoutingKey:   fmt.Sprintf("tienda.%s.%s", entity, action),
		ContentType:  "application/json",
		Payload:      payload,
	})
}

// mapConstraint converts foreign key violations into ErrInvalidReference.
func mapConstraint(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23503" {
		return ErrInvalidReference
	}

	return err
}

// ListCustomers retrieves all customers.
func (s *StoreService) ListCustomers(ctx context.Context) ([]customer.Customer, error) {
	return customerrepo.NewPostgresCustomerRepository(s.pgClient.Pool()).List(ctx)
}

// CreateCustomer stores a new customer.
func (s *StoreService) CreateCustomer(ctx context.Context, c customer.Customer) error {
	return s.withTx(ctx, func(q postgres.Querier) error {
		id, err := customerrepo.NewPostgresCustomerRepository(q).Insert(ctx, c)
		if err != nil {
			return err
		}

		return s.recordAudit(ctx, q, "cliente", audit.ActionCreate, id)
	})
}

// UpdateCustomer replaces an existing customer's fields.
func (s *StoreService) UpdateCustomer(ctx context.Context, id int64, c customer.Customer) error {
	return s.withTx(ctx, func(q postgres.Querier) error {
		if err := customerrepo.NewPostgresCustomerRepository(q).Update(ctx, id, c); err != nil {
			return err
		}

		return s.recordAudit(ctx, q, "cliente", audit.ActionUpdate, id)
	})
}

// DeleteCustomer removes a customer and, by cascade, its orders.
func (s *StoreService) DeleteCustomer(ctx context.Context, id int64) error {
	return s.withTx(ctx, func(q postgres.Querier) error {
		if err := customerrepo.NewPostgresCustomerRepository(q).Delete(ctx, id); err != nil {
			return err
		}

		return s.recordAudit(ctx, q, "cliente", audit.ActionDelete, id)
	})
}

// ListProducts retrieves all products.
func (s *StoreService) ListProducts(ctx context.Context) ([]product.Product, error) {
	return productrepo.NewPostgresProductRepository(s.pgClient.Pool()).List(ctx)
}

// CreateProduct stores a new product.
func (s *StoreService) CreateProduct(ctx context.Context, p product.Product) error {
	return s.withTx(ctx, func(q postgres.Querier) error {
		id, err := productrepo.NewPostgresProductRepository(q).Insert(ctx, p)
		if err != nil {
			return err
		}

		return s.recordAudit(ctx, q, "producto", audit.ActionCreate, id)
	})
}

// UpdateProduct replaces an existing product's fields.
func (s *StoreService) UpdateProduct(ctx context.Context, id int64, p product.Product) error {
	return s.withTx(ctx, func(q postgres.Querier) error {
		if err := productrepo.NewPostgresProductRepository(q).Update(ctx, id, p); err != nil {
			return err
		}

		return s.recordAudit(ctx, q, "producto", audit.ActionUpdate, id)
	})
}

// DeleteProduct removes a product and, by cascade, its order lines.
func (s *StoreService) DeleteProduct(ctx context.Context, id int64) error {
	return s.withTx(ctx, func(q postgres.Querier) error {
		if err := productrepo.NewPostgresProductRepository(q).Delete(ctx, id); err != nil {
			return err
		}

		return s.recordAudit(ctx, q, "producto", audit.ActionDelete, id)
	})
}

// ListOrders retrieves all orders with their customer snapshot.
func (s *StoreService) ListOrders(ctx context.Context) ([]order.Order, error) {
	return orderrepo.NewPostgresOrderRepository(s.pgClient.Pool()).List(ctx)
}

// CreateOrder stores a new order for an existing customer.
func (s *StoreService) CreateOrder(ctx context.Context, customerID int64, orderDate time.Time) error {
	return s.withTx(ctx, func(q postgres.Querier) error {
		id, err := orderrepo.NewPostgresOrderRepository(q).Insert(ctx, customerID, orderDate)
		if err != nil {
			return mapConstraint(err)
		}

		return s.recordAudit(ctx, q, "pedido", audit.ActionCreate, id)
	})
}

// UpdateOrder replaces an existing order's fields.
func (s *StoreService) UpdateOrder(ctx context.Context, id, customerID int64, orderDate time.Time) error {
	return s.withTx(ctx, func(q postgres.Querier) error {
		if err := orderrepo.NewPostgresOrderRepository(q).Update(ctx, id, customerID, orderDate); err != nil {
			return mapConstraint(err)
		}

		return s.recordAudit(ctx, q, "pedido", audit.ActionUpdate, id)
	})
}

// DeleteOrder removes an order and, by cascade, its lines.
func (s *StoreService) DeleteOrder(ctx context.Context, id int64) error {
	return s.withTx(ctx, func(q postgres.Querier) error {
		if err := orderrepo.NewPostgresOrderRepository(q).Delete(ctx, id); err != nil {
			return err
		}

		return s.recordAudit(ctx, q, "pedido", audit.ActionDelete, id)
	})
}

// ListOrderLines retrieves all order lines with their snapshots.
func (s *StoreService) ListOrderLines(ctx context.Context) ([]orderline.OrderLine, error) {
	return orderlinerepo.NewPostgresOrderLineRepository(s.pgClient.Pool()).List(ctx)
}

// CreateOrderLine stores a new line for an existing order and product.
func (s *StoreService) CreateOrderLine(ctx context.Context, orderID, productID int64, quantity int) error {
	return s.withTx(ctx, func(q postgres.Querier) error {
		id, err := orderlinerepo.NewPostgresOrderLineRepository(q).Insert(ctx, orderID, productID, quantity)
		if err != nil {
			return mapConstraint(err)
		}

		return s.recordAudit(ctx, q, "detalle-pedido", audit.ActionCreate, id)
	})
}

// UpdateOrderLine replaces an existing line's fields.
func (s *StoreService) UpdateOrderLine(ctx context.Context, id, orderID, productID int64, quantity int) error {
	return s.withTx(ctx, func(q postgres.Querier) error {
		if err := orderlinerepo.NewPostgresOrderLineRepository(q).Update(ctx, id, orderID, productID, quantity); err != nil {
			return mapConstraint(err)
		}

		return s.recordAudit(ctx, q, "detalle-pedido", audit.ActionUpdate, id)
	})
}

// DeleteOrderLine removes a line.
func (s *StoreService) DeleteOrderLine(ctx context.Context, id int64) error {
	return s.withTx(ctx, func(q postgres.Querier) error {
		if err := orderlinerepo.NewPostgresOrderLineRepository(q).Delete(ctx, id); err != nil {
			return err
		}

		return s.recordAudit(ctx, q, "detalle-pedido", audit.ActionDelete, id)
	})
}
