package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"atelier/internal/authz"
	"atelier/internal/domain/models"
	"atelier/internal/lib/logger/sl"
	"atelier/internal/repository"
	"atelier/internal/revalidate"
	"atelier/internal/seed"
	"atelier/internal/transport/http/dto"

	"golang.org/x/crypto/bcrypt"
)

// Bootstrap credentials for the first super-admin. The password must be
// rotated after the first login; the seed endpoint only exists to make
// a fresh environment usable.
const (
	bootstrapUsername = "admin"
	bootstrapEmail    = "admin@atelier.studio"
	bootstrapPassword = "change-me-on-first-login"
)

// SeedService loads starter content into empty collections. Each
// collection is checked independently, so re-running the seed after a
// partial wipe fills only what is missing.
type SeedService struct {
	log      *slog.Logger
	projects repository.ProjectRepository
	services repository.ServiceRepository
	blogs    repository.BlogRepository
	users    repository.UserRepository
	reval    *revalidate.Revalidator
}

func NewSeedService(
	log *slog.Logger,
	projects repository.ProjectRepository,
	services repository.ServiceRepository,
	blogs repository.BlogRepository,
	users repository.UserRepository,
	reval *revalidate.Revalidator,
) *SeedService {
	return &SeedService{
		log:      log,
		projects: projects,
		services: services,
		blogs:    blogs,
		users:    users,
		reval:    reval,
	}
}

// Seed is restricted to super-admin. A collection is seeded only when
// it is completely empty; existing data is never touched.
func (s *SeedService) Seed(ctx context.Context, role models.Role) (*dto.SeedResponse, error) {
	const op = "seed_service.Seed"
	log := s.log.With(slog.String("op", op))

	if _, err := authz.RequireRole(role, authz.SeedRoles...); err != nil {
		log.Warn("seed rejected", slog.String("role", role.String()))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	resp := &dto.SeedResponse{}

	n, err := s.seedProjects(ctx)
	if err != nil {
		log.Error("failed to seed projects", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	resp.Projects = n

	n, err = s.seedServices(ctx)
	if err != nil {
		log.Error("failed to seed services", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	resp.Services = n

	n, err = s.seedBlogs(ctx)
	if err != nil {
		log.Error("failed to seed blogs", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	resp.Blogs = n

	n, err = s.seedUsers(ctx)
	if err != nil {
		log.Error("failed to seed users", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	resp.Users = n

	if resp.Projects+resp.Services+resp.Blogs+resp.Users > 0 {
		s.reval.Invalidate(ctx, revalidate.KindProject)
		s.reval.Invalidate(ctx, revalidate.KindService)
		s.reval.Invalidate(ctx, revalidate.KindBlog)
		s.reval.Invalidate(ctx, revalidate.KindUser)
	}

	log.Info("seed complete",
		slog.Int("projects", resp.Projects),
		slog.Int("services", resp.Services),
		slog.Int("blogs", resp.Blogs),
		slog.Int("users", resp.Users),
	)
	return resp, nil
}

func (s *SeedService) seedProjects(ctx context.Context) (int, error) {
	count, err := s.projects.Count(ctx)
	if err != nil {
		return 0, err
	}
	if count > 0 {
		return 0, nil
	}

	now := time.Now().UTC()
	for _, p := range seed.Projects {
		p.CreatedAt = now
		p.UpdatedAt = now
		if _, err := s.projects.Create(ctx, p); err != nil {
			return 0, err
		}
	}
	return len(seed.Projects), nil
}

func (s *SeedService) seedServices(ctx context.Context) (int, error) {
	count, err := s.services.Count(ctx)
	if err != nil {
		return 0, err
	}
	if count > 0 {
		return 0, nil
	}

	now := time.Now().UTC()
	for _, svc := range seed.Services {
		svc.CreatedAt = now
		svc.UpdatedAt = now
		if _, err := s.services.Create(ctx, svc); err != nil {
			return 0, err
		}
	}
	return len(seed.Services), nil
}

func (s *SeedService) seedBlogs(ctx context.Context) (int, error) {
	count, err := s.blogs.Count(ctx)
	if err != nil {
		return 0, err
	}
	if count > 0 {
		return 0, nil
	}

	now := time.Now().UTC()
	for _, post := range seed.BlogPosts {
		post.CreatedAt = now
		post.UpdatedAt = now
		if _, err := s.blogs.Create(ctx, post); err != nil {
			return 0, err
		}
	}
	return len(seed.BlogPosts), nil
}

func (s *SeedService) seedUsers(ctx context.Context) (int, error) {
	count, err := s.users.Count(ctx)
	if err != nil {
		return 0, err
	}
	if count > 0 {
		return 0, nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(bootstrapPassword), bcrypt.DefaultCost)
	if err != nil {
		return 0, err
	}

	now := time.Now().UTC()
	user := models.User{
		Username:  bootstrapUsername,
		Email:     bootstrapEmail,
		Role:      models.RoleSuperAdmin,
		Password:  hash,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if _, err := s.users.Create(ctx, user); err != nil {
		return 0, err
	}
	return 1, nil
}
