package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"atelier/internal/authz"
	"atelier/internal/domain/models"
	"atelier/internal/lib/jwt"
	"atelier/internal/lib/logger/sl"
	"atelier/internal/repository"
	"atelier/internal/revalidate"
	"atelier/internal/storage"
	"atelier/internal/transport/http/dto"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// UserService handles account management and login. Every management
// operation, reads included, is limited to super-admin; Login is the
// only entry point open to anonymous callers.
type UserService struct {
	log         *slog.Logger
	repo        repository.UserRepository
	reval       *revalidate.Revalidator
	tokenSecret string
	tokenTTL    time.Duration
}

func NewUserService(log *slog.Logger, repo repository.UserRepository, reval *revalidate.Revalidator, tokenSecret string, tokenTTL time.Duration) *UserService {
	return &UserService{
		log:         log,
		repo:        repo,
		reval:       reval,
		tokenSecret: tokenSecret,
		tokenTTL:    tokenTTL,
	}
}

// Login verifies credentials and mints the signed role token stored in
// the session. A missing user and a wrong password are indistinguishable
// to the caller.
func (s *UserService) Login(ctx context.Context, username, password string) (string, *dto.UserResponse, error) {
	const op = "user_service.Login"
	log := s.log.With(slog.String("op", op), slog.String("username", username))

	user, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			log.Warn("login for unknown user")
			return "", nil, fmt.Errorf("%s: %w", op, authz.ErrUnauthorized)
		}
		log.Error("failed to fetch user", sl.Err(err))
		return "", nil, fmt.Errorf("%s: %w", op, err)
	}

	if err := bcrypt.CompareHashAndPassword(user.Password, []byte(password)); err != nil {
		log.Warn("invalid credentials")
		return "", nil, fmt.Errorf("%s: %w", op, authz.ErrUnauthorized)
	}

	token, err := jwt.NewToken(*user, s.tokenSecret, s.tokenTTL)
	if err != nil {
		log.Error("failed to mint token", sl.Err(err))
		return "", nil, fmt.Errorf("%s: %w", op, err)
	}

	log.Info("user logged in", slog.String("role", user.Role.String()))
	return token, mapUserResponse(user), nil
}

func (s *UserService) ListUsers(ctx context.Context, role models.Role) ([]dto.UserResponse, error) {
	const op = "user_service.ListUsers"
	log := s.log.With(slog.String("op", op))

	if _, err := authz.RequireRole(role, authz.UserManageRoles...); err != nil {
		log.Warn("user list rejected", slog.String("role", role.String()))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	users, err := s.repo.List(ctx)
	if err != nil {
		log.Error("failed to list users", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	out := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, *mapUserResponse(&u))
	}

	return out, nil
}

func (s *UserService) GetUserByID(ctx context.Context, role models.Role, id uuid.UUID) (*dto.UserResponse, error) {
	const op = "user_service.GetUserByID"

	if _, err := authz.RequireRole(role, authz.UserManageRoles...); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return mapUserResponse(user), nil
}

func (s *UserService) CreateUser(ctx context.Context, role models.Role, req dto.CreateUserRequest) (*dto.UserResponse, error) {
	const op = "user_service.CreateUser"
	log := s.log.With(slog.String("op", op), slog.String("username", req.Username))

	if _, err := authz.RequireRole(role, authz.UserManageRoles...); err != nil {
		log.Warn("user create rejected", slog.String("role", role.String()))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	// Lookup-then-insert keeps the conflict message friendly; the unique
	// index on username still backstops the race.
	if _, err := s.repo.GetByUsername(ctx, req.Username); err == nil {
		log.Warn("username already taken")
		return nil, fmt.Errorf("%s: username already exists: %w", op, storage.ErrConflict)
	} else if !errors.Is(err, storage.ErrNotFound) {
		log.Error("failed to check username", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Error("failed to hash password", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	now := time.Now().UTC()
	user := models.User{
		Username:  req.Username,
		Email:     req.Email,
		Role:      models.ParseRole(req.Role),
		Password:  hash,
		CreatedAt: now,
		UpdatedAt: now,
	}

	id, err := s.repo.Create(ctx, user)
	if err != nil {
		log.Error("failed to create user", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s.reval.Invalidate(ctx, revalidate.KindUser)

	log.Info("user created", slog.String("user_id", id.String()))
	return s.toUserResponse(ctx, id)
}

func (s *UserService) UpdateUser(ctx context.Context, role models.Role, id uuid.UUID, req dto.UpdateUserRequest) (*dto.UserResponse, error) {
	const op = "user_service.UpdateUser"
	log := s.log.With(slog.String("op", op), slog.String("user_id", id.String()))

	if _, err := authz.RequireRole(role, authz.UserManageRoles...); err != nil {
		log.Warn("user update rejected", slog.String("role", role.String()))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	updates := make(map[string]interface{})
	if req.Username != nil {
		updates["username"] = *req.Username
	}
	if req.Email != nil {
		updates["email"] = *req.Email
	}
	if req.Role != nil {
		updates["role"] = models.ParseRole(*req.Role).String()
	}
	if req.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			log.Error("failed to hash password", sl.Err(err))
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		updates["password"] = hash
	}

	if len(updates) == 0 {
		return nil, fmt.Errorf("%s: no fields to update: %w", op, models.ErrValidation)
	}

	if err := s.repo.UpdateFields(ctx, id, updates); err != nil {
		log.Error("failed to update user", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s.reval.Invalidate(ctx, revalidate.KindUser)

	log.Info("user updated")
	return s.toUserResponse(ctx, id)
}

func (s *UserService) DeleteUser(ctx context.Context, role models.Role, id uuid.UUID) error {
	const op = "user_service.DeleteUser"
	log := s.log.With(slog.String("op", op), slog.String("user_id", id.String()))

	if _, err := authz.RequireRole(role, authz.UserManageRoles...); err != nil {
		log.Warn("user delete rejected", slog.String("role", role.String()))
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		log.Error("failed to delete user", sl.Err(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	s.reval.Invalidate(ctx, revalidate.KindUser)

	log.Info("user deleted")
	return nil
}

func (s *UserService) toUserResponse(ctx context.Context, id uuid.UUID) (*dto.UserResponse, error) {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return mapUserResponse(user), nil
}

func mapUserResponse(u *models.User) *dto.UserResponse {
	return &dto.UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		Role:      u.Role.String(),
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
