package postgresrepo

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jortega-dev/tienda-admin/internal/dal/postgres"
	"github.com/jortega-dev/tienda-admin/internal/service/models/audit"
)

var qb = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

type PostgresOutboxRepository struct {
	conn postgres.Querier
}

func NewPostgresOutboxRepository(conn postgres.Querier) *PostgresOutboxRepository {
	return &PostgresOutboxRepository{
		conn: conn,
	}
}

// Insert stores a message for later publishing. Called inside the same
// transaction as the mutation it describes.
func (r *PostgresOutboxRepository) Insert(ctx context.Context, msg audit.Message) error {
	sql, args, err := qb.
		Insert("audit_outbox").
		Columns("exchange_name", "routing_key", "content_type", "payload").
		Values(msg.ExchangeName, msg.RoutingKey, msg.ContentType, msg.Payload).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build outbox insert: %w", err)
	}

	if _, err := r.conn.Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("failed to insert outbox message: %w", err)
	}

	return nil
}

// GetPendingMessages retrieves messages due for publishing.
func (r *PostgresOutboxRepository) GetPendingMessages(ctx context.Context, limit int) ([]audit.Message, error) {
	sql, args, err := qb.
		Select("id", "exchange_name", "routing_key", "content_type", "payload", "retry_count").
		From("audit_outbox").
		Where("next_retry_at IS NULL OR next_retry_at <= now()").
		OrderBy("id").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build outbox query: %w", err)
	}

	rows, err := r.conn.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query outbox: %w", err)
	}
	defer rows.Close()

	result := []audit.Message{}
	for rows.Next() {
		var msg audit.Message
		err := rows.Scan(
			&msg.ID,
			&msg.ExchangeName,
			&msg.RoutingKey,
			&msg.ContentType,
			&msg.Payload,
			&msg.RetryCount,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan outbox message: %w", err)
		}
		result = append(result, msg)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return result, nil
}

// UpdateRetry records a failed publish attempt and when to retry next.
func (r *PostgresOutboxRepository) UpdateRetry(ctx context.Context, id int64, retryCount int, lastError string, nextRetryAt time.Time) error {
	sql, args, err := qb.
		Update("audit_outbox").
		Set("retry_count", retryCount).
		Set("last_error", lastError).
		Set("next_retry_at", nextRetryAt).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build outbox retry update: %w", err)
	}

	if _, err := r.conn.Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("failed to update outbox retry: %w", err)
	}

	return nil
}

// Delete removes a message after successful publishing.
func (r *PostgresOutboxRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := qb.
		Delete("audit_outbox").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build outbox delete: %w", err)
	}

	if _, err := r.conn.Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("failed to delete outbox message: %w", err)
	}

	return nil
}
