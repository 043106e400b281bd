package http

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"atelier/internal/authz"
	"atelier/internal/domain/models"
	"atelier/internal/lib/logger/sl"
	"atelier/internal/storage"
	"atelier/internal/transport/http/dto"
	"atelier/internal/transport/http/dto/response"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	_ "atelier/docs"
)

// RoleContextKey is where the session middleware stores the verified
// role for the current request. Handlers read it and pass it down;
// they never inspect the cookie themselves.
const RoleContextKey = "role"

type ProjectService interface {
	ListProjects(ctx context.Context) ([]dto.ProjectResponse, error)
	GetProjectByID(ctx context.Context, id uuid.UUID) (*dto.ProjectResponse, error)
	CreateProject(ctx context.Context, role models.Role, req dto.CreateProjectRequest) (*dto.ProjectResponse, error)
	UpdateProject(ctx context.Context, role models.Role, id uuid.UUID, req dto.UpdateProjectRequest) (*dto.ProjectResponse, error)
	DeleteProject(ctx context.Context, role models.Role, id uuid.UUID) error
}

type ServiceService interface {
	ListServices(ctx context.Context) ([]dto.ServiceResponse, error)
	GetServiceByID(ctx context.Context, id uuid.UUID) (*dto.ServiceResponse, error)
	CreateService(ctx context.Context, role models.Role, req dto.CreateServiceRequest) (*dto.ServiceResponse, error)
	UpdateService(ctx context.Context, role models.Role, id uuid.UUID, req dto.UpdateServiceRequest) (*dto.ServiceResponse, error)
	DeleteService(ctx context.Context, role models.Role, id uuid.UUID) error
}

type BlogService interface {
	ListPosts(ctx context.Context) ([]dto.BlogPostResponse, error)
	GetPostBySlug(ctx context.Context, slug string) (*dto.BlogPostResponse, error)
	GetPostByID(ctx context.Context, id uuid.UUID) (*dto.BlogPostResponse, error)
	CreatePost(ctx context.Context, role models.Role, req dto.CreateBlogPostRequest) (*dto.BlogPostResponse, error)
	UpdatePost(ctx context.Context, role models.Role, id uuid.UUID, req dto.UpdateBlogPostRequest) (*dto.BlogPostResponse, error)
	DeletePost(ctx context.Context, role models.Role, id uuid.UUID) error
}

type UserService interface {
	Login(ctx context.Context, username, password string) (string, *dto.UserResponse, error)
	ListUsers(ctx context.Context, role models.Role) ([]dto.UserResponse, error)
	GetUserByID(ctx context.Context, role models.Role, id uuid.UUID) (*dto.UserResponse, error)
	CreateUser(ctx context.Context, role models.Role, req dto.CreateUserRequest) (*dto.UserResponse, error)
	UpdateUser(ctx context.Context, role models.Role, id uuid.UUID, req dto.UpdateUserRequest) (*dto.UserResponse, error)
	DeleteUser(ctx context.Context, role models.Role, id uuid.UUID) error
}

type SeedService interface {
	Seed(ctx context.Context, role models.Role) (*dto.SeedResponse, error)
}

type Routers struct {
	log            *slog.Logger
	ProjectService ProjectService
	ServiceService ServiceService
	BlogService    BlogService
	UserService    UserService
	SeedService    SeedService
}

func NewRouter(
	log *slog.Logger,
	projectService ProjectService,
	serviceService ServiceService,
	blogService BlogService,
	userService UserService,
	seedService SeedService,
) *Routers {
	return &Routers{
		log:            log,
		ProjectService: projectService,
		ServiceService: serviceService,
		BlogService:    blogService,
		UserService:    userService,
		SeedService:    seedService,
	}
}

// roleFrom reads the verified role placed in the context by the
// session middleware. Absent or mistyped values read as RoleNone.
func roleFrom(c echo.Context) models.Role {
	if v, ok := c.Get(RoleContextKey).(models.Role); ok {
		return v
	}
	return models.RoleNone
}

// writeError maps service errors onto the canonical envelopes. Anything
// outside the known set is reported as a storage failure with no driver
// detail leaked to the client.
func (r *Routers) writeError(c echo.Context, op string, err error) error {
	log := r.log.With(slog.String("op", op))

	switch {
	case errors.Is(err, authz.ErrUnauthorized):
		if roleFrom(c).Authenticated() {
			return c.JSON(http.StatusForbidden, response.Unauthorized())
		}
		return c.JSON(http.StatusUnauthorized, response.Unauthorized())
	case errors.Is(err, storage.ErrNotFound):
		return c.JSON(http.StatusNotFound, response.NotFound())
	case errors.Is(err, storage.ErrConflict):
		return c.JSON(http.StatusConflict, response.Conflict("resource already exists"))
	case errors.Is(err, models.ErrValidation):
		return c.JSON(http.StatusBadRequest, response.ValidationFailed("invalid payload"))
	default:
		log.Error("storage failure", sl.Err(err))
		return c.JSON(http.StatusServiceUnavailable, response.StorageUnavailable())
	}
}

func parseIDParam(c echo.Context) (uuid.UUID, error) {
	return uuid.Parse(c.Param("id"))
}
