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

const projectTable = "projects"

var projectColumns = []string{
	"id", "title", "caption", "image_url", "category", "location", "year",
	"is_featured", "vision_title", "full_description", "palette", "gallery",
	"walkthrough_url", "created_at", "updated_at",
}

type ProjectRepo struct {
	db *pgxpool.Pool
	sb sq.StatementBuilderType
}

func NewProjectRepository(db *pgxpool.Pool) *ProjectRepo {
	return &ProjectRepo{
		db: db,
		sb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *ProjectRepo) List(ctx context.Context) ([]models.Project, error) {
	const op = "repository.project_repository.List"

	query, args, err := r.sb.Select(projectColumns...).
		From(projectTable).
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

	var projects []models.Project
	for rows.Next() {
		var p models.Project
		if err := scanProject(rows, &p); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		projects = append(projects, p)
	}

	return projects, rows.Err()
}

func (r *ProjectRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Project, error) {
	const op = "repository.project_repository.GetByID"

	query, args, err := r.sb.Select(projectColumns...).
		From(projectTable).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var p models.Project
	if err := scanProject(r.db.QueryRow(ctx, query, args...), &p); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &p, nil
}

func (r *ProjectRepo) Create(ctx context.Context, project models.Project) (uuid.UUID, error) {
	const op = "repository.project_repository.Create"

	query, args, err := r.sb.Insert(projectTable).
		Columns(
			"title", "caption", "image_url", "category", "location", "year",
			"is_featured", "vision_title", "full_description", "palette",
			"gallery", "walkthrough_url", "created_at", "updated_at",
		).
		Values(
			project.Title,
			project.Caption,
			project.ImageURL,
			project.Category,
			project.Location,
			project.Year,
			project.IsFeatured,
			project.VisionTitle,
			project.FullDescription,
			project.Palette,
			project.Gallery,
			project.WalkthroughURL,
			project.CreatedAt,
			project.UpdatedAt,
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

func (r *ProjectRepo) UpdateFields(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error {
	const op = "repository.project_repository.UpdateFields"

	allowedFields := map[string]bool{
		"title":            true,
		"caption":          true,
		"image_url":        true,
		"category":         true,
		"location":         true,
		"year":             true,
		"is_featured":      true,
		"vision_title":     true,
		"full_description": true,
		"palette":          true,
		"gallery":          true,
		"walkthrough_url":  true,
		"updated_at":       true,
	}

	return updateFields(ctx, r.db, r.sb, projectTable, op, id, updates, allowedFields)
}

func (r *ProjectRepo) Delete(ctx context.Context, id uuid.UUID) error {
	const op = "repository.project_repository.Delete"
	return deleteByID(ctx, r.db, r.sb, projectTable, op, id)
}

func (r *ProjectRepo) Count(ctx context.Context) (int, error) {
	const op = "repository.project_repository.Count"
	return countRows(ctx, r.db, r.sb, projectTable, op)
}

func scanProject(row pgx.Row, p *models.Project) error {
	return row.Scan(
		&p.ID,
		&p.Title,
		&p.Caption,
		&p.ImageURL,
		&p.Category,
		&p.Location,
		&p.Year,
		&p.IsFeatured,
		&p.VisionTitle,
		&p.FullDescription,
		&p.Palette,
		&p.Gallery,
		&p.WalkthroughURL,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
}
