package repository

import (
	"context"
	"errors"
	"fmt"

	"atelier/internal/domain/models"
	"atelier/internal/storage"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
)

const serviceTable = "services"

var serviceColumns = []string{
	"id", "title", "short_description", "long_description", "features",
	"image_url", "details", "created_at", "updated_at",
}

type ServiceRepo struct {
	db *pgxpool.Pool
	sb sq.StatementBuilderType
}

func NewServiceRepository(db *pgxpool.Pool) *ServiceRepo {
	return &ServiceRepo{
		db: db,
		sb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *ServiceRepo) List(ctx context.Context) ([]models.Service, error) {
	const op = "repository.service_repository.List"

	query, args, err := r.sb.Select(serviceColumns...).
		From(serviceTable).
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var services []models.Service
	for rows.Next() {
		var s models.Service
		if err := scanService(rows, &s); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		services = append(services, s)
	}

	return services, rows.Err()
}

func (r *ServiceRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Service, error) {
	const op = "repository.service_repository.GetByID"

	query, args, err := r.sb.Select(serviceColumns...).
		From(serviceTable).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var s models.Service
	if err := scanService(r.db.QueryRow(ctx, query, args...), &s); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &s, nil
}

func (r *ServiceRepo) Create(ctx context.Context, service models.Service) (uuid.UUID, error) {
	const op = "repository.service_repository.Create"

	query, args, err := r.sb.Insert(serviceTable).
		Columns(
			"title", "short_description", "long_description", "features",
			"image_url", "details", "created_at", "updated_at",
		).
		Values(
			service.Title,
			service.ShortDescription,
			service.LongDescription,
			service.Features,
			service.ImageURL,
			service.Details,
			service.CreatedAt,
			service.UpdatedAt,
		).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return uuid.Nil, fmt.Errorf("%s: %w", op, err)
	}

	var id uuid.UUID
	if err := r.db.QueryRow(ctx, query, args...).Scan(&id); err != nil {
		return uuid.Nil, fmt.Errorf("%s: %w", op, mapError(err))
	}

	return id, nil
}

func (r *ServiceRepo) UpdateFields(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error {
	const op = "repository.service_repository.UpdateFields"

	allowedFields := map[string]bool{
		"title":             true,
		"short_description": true,
		"long_description":  true,
		"features":          true,
		"image_url":         true,
		"details":           true,
		"updated_at":        true,
	}

	return updateFields(ctx, r.db, r.sb, serviceTable, op, id, updates, allowedFields)
}

func (r *ServiceRepo) Delete(ctx context.Context, id uuid.UUID) error {
	const op = "repository.service_repository.Delete"
	return deleteByID(ctx, r.db, r.sb, serviceTable, op, id)
}

func (r *ServiceRepo) Count(ctx context.Context) (int, error) {
	const op = "repository.service_repository.Count"
	return countRows(ctx, r.db, r.sb, serviceTable, op)
}

func scanService(row pgx.Row, s *models.Service) error {
	return row.Scan(
		&s.ID,
		&s.Title,
		&s.ShortDescription,
		&s.LongDescription,
		&s.Features,
		&s.ImageURL,
		&s.Details,
		&s.CreatedAt,
		&s.UpdatedAt,
	)
}
