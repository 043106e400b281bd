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

const blogTable = "blogs"

var blogColumns = []string{
	"id", "slug", "title", "excerpt", "full_content", "quote", "quote_author",
	"category", "date", "author", "image_url", "read_time", "tags",
	"created_at", "updated_at",
}

type BlogRepo struct {
	db *pgxpool.Pool
	sb sq.StatementBuilderType
}

func NewBlogRepository(db *pgxpool.Pool) *BlogRepo {
	return &BlogRepo{
		db: db,
		sb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *BlogRepo) List(ctx context.Context) ([]models.BlogPost, error) {
	const op = "repository.blog_repository.List"

	query, args, err := r.sb.Select(blogColumns...).
		From(blogTable).
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

	var posts []models.BlogPost
	for rows.Next() {
		var p models.BlogPost
		if err := scanBlogPost(rows, &p); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		posts = append(posts, p)
	}

	return posts, rows.Err()
}

func (r *BlogRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.BlogPost, error) {
	const op = "repository.blog_repository.GetByID"
	return r.getOne(ctx, op, sq.Eq{"id": id})
}

// GetBySlug is the public lookup path; posts are addressed by slug, not id.
func (r *BlogRepo) GetBySlug(ctx context.Context, slug string) (*models.BlogPost, error) {
	const op = "repository.blog_repository.GetBySlug"
	return r.getOne(ctx, op, sq.Eq{"slug": slug})
}

func (r *BlogRepo) getOne(ctx context.Context, op string, where sq.Eq) (*models.BlogPost, error) {
	query, args, err := r.sb.Select(blogColumns...).
		From(blogTable).
		Where(where).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var p models.BlogPost
	if err := scanBlogPost(r.db.QueryRow(ctx, query, args...), &p); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &p, nil
}

func (r *BlogRepo) Create(ctx context.Context, post models.BlogPost) (uuid.UUID, error) {
	const op = "repository.blog_repository.Create"

	query, args, err := r.sb.Insert(blogTable).
		Columns(
			"slug", "title", "excerpt", "full_content", "quote", "quote_author",
			"category", "date", "author", "image_url", "read_time", "tags",
			"created_at", "updated_at",
		).
		Values(
			post.Slug,
			post.Title,
			post.Excerpt,
			post.FullContent,
			post.Quote,
			post.QuoteAuthor,
			post.Category,
			post.Date,
			post.Author,
			post.ImageURL,
			post.ReadTime,
			post.Tags,
			post.CreatedAt,
			post.UpdatedAt,
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

func (r *BlogRepo) UpdateFields(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error {
	const op = "repository.blog_repository.UpdateFields"

	allowedFields := map[string]bool{
		"slug":         true,
		"title":        true,
		"excerpt":      true,
		"full_content": true,
		"quote":        true,
		"quote_author": true,
		"category":     true,
		"date":         true,
		"author":       true,
		"image_url":    true,
		"read_time":    true,
		"tags":         true,
		"updated_at":   true,
	}

	return updateFields(ctx, r.db, r.sb, blogTable, op, id, updates, allowedFields)
}

func (r *BlogRepo) Delete(ctx context.Context, id uuid.UUID) error {
	const op = "repository.blog_repository.Delete"
	return deleteByID(ctx, r.db, r.sb, blogTable, op, id)
}

func (r *BlogRepo) Count(ctx context.Context) (int, error) {
	const op = "repository.blog_repository.Count"
	return countRows(ctx, r.db, r.sb, blogTable, op)
}

func scanBlogPost(row pgx.Row, p *models.BlogPost) error {
	return row.Scan(
		&p.ID,
		&p.Slug,
		&p.Title,
		&p.Excerpt,
		&p.FullContent,
		&p.Quote,
		&p.QuoteAuthor,
		&p.Category,
		&p.Date,
		&p.Author,
		&p.ImageURL,
		&p.ReadTime,
		&p.Tags,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
}
