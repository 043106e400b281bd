package repository

import (
	"errors"

	"atelier/internal/storage"

	"github.com/jackc/pgconn"
	"github.com/jackc/pgx/v4/pgxpool"
)

type Repository struct {
	Project ProjectRepository
	Service ServiceRepository
	Blog    BlogRepository
	User    UserRepository
}

func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{
		Project: NewProjectRepository(db),
		Service: NewServiceRepository(db),
		Blog:    NewBlogRepository(db),
		User:    NewUserRepository(db),
	}
}

// mapError translates driver failures into the shared taxonomy.
func mapError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return storage.ErrConflict
	}
	return err
}
