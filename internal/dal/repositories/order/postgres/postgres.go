package postgresrepo

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jortega-dev/tienda-admin/internal/dal/postgres"
	"github.com/jortega-dev/tienda-admin/internal/service/models/order"
)

var qb = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// dateTimeWire is how timestamps leave the store on the wire.
const dateTimeWire = "2006-01-02 15:04:05"

// PedidoDal represents order data access layer model, including the
// customer snapshot joined in by List.
type PedidoDal struct {
	Id            int64     `db:"id"`
	ClienteId     int64     `db:"cliente_id"`
	FechaPedido   time.Time `db:"fecha_pedido"`
	ClienteNombre string    `db:"nombre"`
	ClienteEmail  string    `db:"email"`
}

// ToModel converts PedidoDal to service layer Order model
func (d *PedidoDal) ToModel() order.Order {
	return order.Order{
		ID:         d.Id,
		CustomerID: d.ClienteId,
		OrderDate:  d.FechaPedido.Format(dateTimeWire),
		Customer: order.CustomerInfo{
			Name:  d.ClienteNombre,
			Email: d.ClienteEmail,
		},
	}
}

type PostgresOrderRepository struct {
	conn postgres.Querier
}

func NewPostgresOrderRepository(conn postgres.Querier) *PostgresOrderRepository {
	return &PostgresOrderRepository{
		conn: conn,
	}
}

// List retrieves all orders with their customer snapshot.
func (r *PostgresOrderRepository) List(ctx context.Context) ([]order.Order, error) {
	sql, args, err := qb.
		Select("p.id", "p.cliente_id", "p.fecha_pedido", "c.nombre", "c.email").
		From("pedidos p").
		Join("clientes c ON c.id = p.cliente_id").
		OrderBy("p.id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build orders query: %w", err)
	}

	rows, err := r.conn.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query orders: %w", err)
	}
	defer rows.Close()

	result := []order.Order{}
	for rows.Next() {
		var dal PedidoDal
		if err := rows.Scan(&dal.Id, &dal.ClienteId, &dal.FechaPedido, &dal.ClienteNombre, &dal.ClienteEmail); err != nil {
			return nil, fmt.Errorf("failed to scan order: %w", err)
		}
		result = append(result, dal.ToModel())
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return result, nil
}

// Insert creates an order and returns its assigned id.
func (r *PostgresOrderRepository) Insert(ctx context.Context, customerID int64, orderDate time.Time) (int64, error) {
	sql, args, err := qb.
		Insert("pedidos").
		Columns("cliente_id", "fecha_pedido").
		Values(customerID, orderDate).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build order insert: %w", err)
	}

	var id int64
	if err := r.conn.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		return 0, fmt.Errorf("failed to insert order: %w", err)
	}

	return id, nil
}

// Update replaces an order's fields.
func (r *PostgresOrderRepository) Update(ctx context.Context, id, customerID int64, orderDate time.Time) error {
	sql, args, err := qb.
		Update("pedidos").
		Set("cliente_id", customerID).
		Set("fecha_pedido", orderDate).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build order update: %w", err)
	}

	tag, err := r.conn.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("failed to update order: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return postgres.ErrNotFound
	}

	return nil
}

// Delete removes an order. Lines belonging to it cascade in the schema.
func (r *PostgresOrderRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := qb.
		Delete("pedidos").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build order delete: %w", err)
	}

	tag, err := r.conn.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("failed to delete order: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return postgres.ErrNotFound
	}

	return nil
}
