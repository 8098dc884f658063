package postgresrepo

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jortega-dev/tienda-admin/internal/dal/postgres"
	"github.com/jortega-dev/tienda-admin/internal/service/models/product"
)

var qb = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// ProductoDal represents product data access layer model
type ProductoDal struct {
	Id          int64   `db:"id"`
	Nombre      string  `db:"nombre"`
	Precio      float64 `db:"precio"`
	Descripcion string  `db:"descripcion"`
}

// ToModel converts ProductoDal to service layer Product model
func (d *ProductoDal) ToModel() product.Product {
	return product.Product{
		ID:          d.Id,
		Name:        d.Nombre,
		Price:       d.Precio,
		Description: d.Descripcion,
	}
}

type PostgresProductRepository struct {
	conn postgres.Querier
}

func NewPostgresProductRepository(conn postgres.Querier) *PostgresProductRepository {
	return &PostgresProductRepository{
		conn: conn,
	}
}

// List retrieves all products ordered by id.
func (r *PostgresProductRepository) List(ctx context.Context) ([]product.Product, error) {
	sql, args, err := qb.
		Select("id", "nombre", "precio", "descripcion").
		From("productos").
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build products query: %w", err)
	}

	rows, err := r.conn.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	defer rows.Close()

	result := []product.Product{}
	for rows.Next() {
		var dal ProductoDal
		if err := rows.Scan(&dal.Id, &dal.Nombre, &dal.Precio, &dal.Descripcion); err != nil {
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		result = append(result, dal.ToModel())
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return result, nil
}

// Insert creates a product and returns its assigned id.
func (r *PostgresProductRepository) Insert(ctx context.Context, p product.Product) (int64, error) {
	sql, args, err := qb.
		Insert("productos").
		Columns("nombre", "precio", "descripcion").
		Values(p.Name, p.Price, p.Description).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build product insert: %w", err)
	}

	var id int64
	if err := r.conn.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		return 0, fmt.Errorf("failed to insert product: %w", err)
	}

	return id, nil
}

// Update replaces a product's fields.
func (r *PostgresProductRepository) Update(ctx context.Context, id int64, p product.Product) error {
	sql, args, err := qb.
		Update("productos").
		Set("nombre", p.Name).
		Set("precio", p.Price).
		Set("descripcion", p.Description).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build product update: %w", err)
	}

	tag, err := r.conn.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("failed to update product: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return postgres.ErrNotFound
	}

	return nil
}

// Delete removes a product.
func (r *PostgresProductRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := qb.
		Delete("productos").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build product delete: %w", err)
	}

	tag, err := r.conn.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return postgres.ErrNotFound
	}

	return nil
}
