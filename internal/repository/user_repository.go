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

// Table name normalized from the original store's singular "user";
// Postgres reserves that identifier.
const userTable = "users"

var userColumns = []string{
	"id", "username", "email", "role", "password", "created_at", "updated_at",
}

type UserRepo struct {
	db *pgxpool.Pool
	sb sq.StatementBuilderType
}

func NewUserRepository(db *pgxpool.Pool) *UserRepo {
	return &UserRepo{
		db: db,
		sb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *UserRepo) List(ctx context.Context) ([]models.User, error) {
	const op = "repository.user_repository.List"

	query, args, err := r.sb.Select(userColumns...).
		From(userTable).
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

	var users []models.User
	for rows.Next() {
		var u models.User
		if err := scanUser(rows, &u); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		users = append(users, u)
	}

	return users, rows.Err()
}

func (r *UserRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	const op = "repository.user_repository.GetByID"
	return r.getOne(ctx, op, sq.Eq{"id": id})
}

func (r *UserRepo) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	const op = "repository.user_repository.GetByUsername"
	return r.getOne(ctx, op, sq.Eq{"username": username})
}

func (r *UserRepo) getOne(ctx context.Context, op string, where sq.Eq) (*models.User, error) {
	query, args, err := r.sb.Select(userColumns...).
		From(userTable).
		Where(where).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var u models.User
	if err := scanUser(r.db.QueryRow(ctx, query, args...), &u); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &u, nil
}

func (r *UserRepo) Create(ctx context.Context, user models.User) (uuid.UUID, error) {
	const op = "repository.user_repository.Create"

	query, args, err := r.sb.Insert(userTable).
		Columns("username", "email", "role", "password", "created_at", "updated_at").
		Values(
			user.Username,
			user.Email,
			user.Role,
			user.Password,
			user.CreatedAt,
			user.UpdatedAt,
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

func (r *UserRepo) UpdateFields(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error {
	const op = "repository.user_repository.UpdateFields"

	allowedFields := map[string]bool{
		"username":   true,
		"email":      true,
		"role":       true,
		"password":   true,
		"updated_at": true,
	}

	return updateFields(ctx, r.db, r.sb, userTable, op, id, updates, allowedFields)
}

func (r *UserRepo) Delete(ctx context.Context, id uuid.UUID) error {
	const op = "repository.user_repository.Delete"
	return deleteByID(ctx, r.db, r.sb, userTable, op, id)
}

func (r *UserRepo) Count(ctx context.Context) (int, error) {
	const op = "repository.user_repository.Count"
	return countRows(ctx, r.db, r.sb, userTable, op)
}

func scanUser(row pgx.Row, u *models.User) error {
	return row.Scan(
		&u.ID,
		&u.Username,
		&u.Email,
		&u.Role,
		&u.Password,
		&u.CreatedAt,
		&u.UpdatedAt,
	)
}
