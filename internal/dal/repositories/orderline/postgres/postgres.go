package postgresrepo

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jortega-dev/tienda-admin/internal/dal/postgres"
	"github.com/jortega-dev/tienda-admin/internal/service/models/orderline"
)

var qb = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

const dateTimeWire = "2006-01-02 15:04:05"

// DetalleDal represents order line data access layer model, including the
// product and order snapshots joined in by List.
type DetalleDal struct {
	Id             int64     `db:"id"`
	PedidoId       int64     `db:"pedido_id"`
	ProductoId     int64     `db:"producto_id"`
	Cantidad       int       `db:"cantidad"`
	ProductoNombre string    `db:"producto_nombre"`
	ProductoPrecio float64   `db:"producto_precio"`
	FechaPedido    time.Time `db:"fecha_pedido"`
	ClienteNombre  string    `db:"cliente_nombre"`
	Subtotal       float64   `db:"subtotal"`
}

// ToModel converts DetalleDal to service layer OrderLine model
func (d *DetalleDal) ToModel() orderline.OrderLine {
	return orderline.OrderLine{
		ID:        d.Id,
		OrderID:   d.PedidoId,
		ProductID: d.ProductoId,
		Quantity:  d.Cantidad,
		Product: orderline.ProductInfo{
			Name:  d.ProductoNombre,
			Price: d.ProductoPrecio,
		},
		Order: orderline.OrderInfo{
			OrderDate:    d.FechaPedido.Format(dateTimeWire),
			CustomerName: d.ClienteNombre,
		},
		Subtotal: d.Subtotal,
	}
}

type PostgresOrderLineRepository struct {
	conn postgres.Querier
}

func NewPostgresOrderLineRepository(conn postgres.Querier) *PostgresOrderLineRepository {
	return &PostgresOrderLineRepository{
		conn: conn,
	}
}

// List retrieves all order lines with product and order snapshots. The
// subtotal is computed here, not stored.
func (r *PostgresOrderLineRepository) List(ctx context.Context) ([]orderline.OrderLine, error) {
	sql, args, err := qb.
		Select(
			"d.id",
			"d.pedido_id",
			"d.producto_id",
			"d.cantidad",
			"pr.nombre AS producto_nombre",
			"pr.precio AS producto_precio",
			"p.fecha_pedido",
			"c.nombre AS cliente_nombre",
			"d.cantidad * pr.precio AS subtotal",
		).
		From("detalles_pedidos d").
		Join("productos pr ON pr.id = d.producto_id").
		Join("pedidos p ON p.id = d.pedido_id").
		Join("clientes c ON c.id = p.cliente_id").
		OrderBy("d.id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build order lines query: %w", err)
	}

	rows, err := r.conn.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query order lines: %w", err)
	}
	defer rows.Close()

	result := []orderline.OrderLine{}
	for rows.Next() {
		var dal DetalleDal
		err := rows.Scan(
			&dal.Id,
			&dal.PedidoId,
			&dal.ProductoId,
			&dal.Cantidad,
			&dal.ProductoNombre,
			&dal.ProductoPrecio,
			&dal.FechaPedido,
			&dal.ClienteNombre,
			&dal.Subtotal,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan order line: %w", err)
		}
		result = append(result, dal.ToModel())
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return result, nil
}

// Insert creates an order line and returns its assigned id.
func (r *PostgresOrderLineRepository) Insert(ctx context.Context, orderID, productID int64, quantity int) (int64, error) {
	sql, args, err := qb.
		Insert("detalles_pedidos").
		Columns("pedido_id", "producto_id", "cantidad").
		Values(orderID, productID, quantity).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build order line insert: %w", err)
	}

	var id int64
	if err := r.conn.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		return 0, fmt.Errorf("failed to insert order line: %w", err)
	}

	return id, nil
}

// Update replaces an order line's fields.
func (r *PostgresOrderLineRepository) Update(ctx context.Context, id, orderID, productID int64, quantity int) error {
	sql, args, err := qb.
		Update("detalles_pedidos").
		Set("pedido_id", orderID).
		Set("producto_id", productID).
		Set("cantidad", quantity).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build order line update: %w", err)
	}

	tag, err := r.conn.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("failed to update order line: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return postgres.ErrNotFound
	}

	return nil
}

// Delete removes an order line.
func (r *PostgresOrderLineRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := qb.
		Delete("detalles_pedidos").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build order line delete: %w", err)
	}

	tag, err := r.conn.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("failed to delete order line: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return postgres.ErrNotFound
	}

	return nil
}
