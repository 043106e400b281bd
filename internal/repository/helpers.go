package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"atelier/internal/storage"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
)

// updateFields applies a partial update. Only fields present in the map
// change; everything else keeps its prior value. updated_at is always
// refreshed.
func updateFields(ctx context.Context, db *pgxpool.Pool, sb sq.StatementBuilderType, table, op string, id uuid.UUID, updates map[string]interface{}, allowed map[string]bool) error {
	if len(updates) == 0 {
		return fmt.Errorf("%s: no fields to update", op)
	}

	builder := sb.Update(table).
		Set("updated_at", time.Now().UTC())

	for field, value := range updates {
		if !allowed[field] {
			return fmt.Errorf("%s: field '%s' is not allowed for update", op, field)
		}
		builder = builder.Set(field, value)
	}

	query, args, err := builder.Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	result, err := db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%s: %w", op, mapError(err))
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	return nil
}

func deleteByID(ctx context.Context, db *pgxpool.Pool, sb sq.StatementBuilderType, table, op string, id uuid.UUID) error {
	query, args, err := sb.Delete(table).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	result, err := db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	return nil
}

func countRows(ctx context.Context, db *pgxpool.Pool, sb sq.StatementBuilderType, table, op string) (int, error) {
	query, args, err := sb.Select("COUNT(*)").
		From(table).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	var count int
	if err := db.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, nil
		}
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return count, nil
}
