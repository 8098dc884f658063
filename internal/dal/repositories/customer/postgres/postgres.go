package postgresrepo

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jortega-dev/tienda-admin/internal/dal/postgres"
	"github.com/jortega-dev/tienda-admin/internal/service/models/customer"
)

var qb = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// ClienteDal represents customer data access layer model
type ClienteDal struct {
	Id       int64  `db:"id"`
	Nombre   string `db:"nombre"`
	Email    string `db:"email"`
	Telefono string `db:"telefono"`
}

// ToModel converts ClienteDal to service layer Customer model
func (d *ClienteDal) ToModel() customer.Customer {
	return customer.Customer{
		ID:    d.Id,
		Name:  d.Nombre,
		Email: d.Email,
		Phone: d.Telefono,
	}
}

type PostgresCustomerRepository struct {
	conn postgres.Querier
}

func NewPostgresCustomerRepository(conn postgres.Querier) *PostgresCustomerRepository {
	return &PostgresCustomerRepository{
		conn: conn,
	}
}

// List retrieves all customers ordered by id.
func (r *PostgresCustomerRepository) List(ctx context.Context) ([]customer.Customer, error) {
	sql, args, err := qb.
		Select("id", "nombre", "email", "telefono").
		From("clientes").
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build customers query: %w", err)
	}

	rows, err := r.conn.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query customers: %w", err)
	}
	defer rows.Close()

	result := []customer.Customer{}
	for rows.Next() {
		var dal ClienteDal
		if err := rows.Scan(&dal.Id, &dal.Nombre, &dal.Email, &dal.Telefono); err != nil {
			return nil, fmt.Errorf("failed to scan customer: %w", err)
		}
		result = append(result, dal.ToModel())
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return result, nil
}

// Insert creates a customer and returns its assigned id.
func (r *PostgresCustomerRepository) Insert(ctx context.Context, c customer.Customer) (int64, error) {
	sql, args, err := qb.
		Insert("clientes").
		Columns("nombre", "email", "telefono").
		Values(c.Name, c.Email, c.Phone).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build customer insert: %w", err)
	}

	var id int64
	if err := r.conn.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		return 0, fmt.Errorf("failed to insert customer: %w", err)
	}

	return id, nil
}

// Update replaces a customer's fields.
func (r *PostgresCustomerRepository) Update(ctx context.Context, id int64, c customer.Customer) error {
	sql, args, err := qb.
		Update("clientes").
		Set("nombre", c.Name).
		Set("email", c.Email).
		Set("telefono", c.Phone).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build customer update: %w", err)
	}

	tag, err := r.conn.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("failed to update customer: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return postgres.ErrNotFound
	}

	return nil
}

// Delete removes a customer.
func (r *PostgresCustomerRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := qb.
		Delete("clientes").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build customer delete: %w", err)
	}

	tag, err := r.conn.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("failed to delete customer: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return postgres.ErrNotFound
	}

	return nil
}
