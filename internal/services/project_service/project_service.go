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
	"atelier/internal/transport/http/dto"

	"github.com/google/uuid"
)

type ProjectService struct {
	log   *slog.Logger
	repo  repository.ProjectRepository
	reval *revalidate.Revalidator
}

func NewProjectService(log *slog.Logger, repo repository.ProjectRepository, reval *revalidate.Revalidator) *ProjectService {
	return &ProjectService{log: log, repo: repo, reval: reval}
}

// ListProjects is public; no role required.
func (s *ProjectService) ListProjects(ctx context.Context) ([]dto.ProjectResponse, error) {
	const op = "project_service.ListProjects"

	projects, err := s.repo.List(ctx)
	if err != nil {
		s.log.Error("failed to list projects", slog.String("op", op), sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	out := make([]dto.ProjectResponse, 0, len(projects))
	for _, p := range projects {
		out = append(out, *mapProjectResponse(&p))
	}

	return out, nil
}

func (s *ProjectService) GetProjectByID(ctx context.Context, id uuid.UUID) (*dto.ProjectResponse, error) {
	const op = "project_service.GetProjectByID"

	project, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return mapProjectResponse(project), nil
}

func (s *ProjectService) CreateProject(ctx context.Context, role models.Role, req dto.CreateProjectRequest) (*dto.ProjectResponse, error) {
	const op = "project_service.CreateProject"
	log := s.log.With(slog.String("op", op), slog.String("role", role.String()))

	if _, err := authz.RequireAnyRole(role); err != nil {
		log.Warn("project create rejected")
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if req.Title == "" {
		return nil, fmt.Errorf("%s: project title is required: %w", op, models.ErrValidation)
	}
	if req.FullDescription != nil && len(req.FullDescription) == 0 {
		return nil, fmt.Errorf("%s: full description must not be empty: %w", op, models.ErrValidation)
	}

	now := time.Now().UTC()
	project := models.Project{
		Title:           req.Title,
		Caption:         req.Caption,
		ImageURL:        req.ImageURL,
		Category:        req.Category,
		Location:        req.Location,
		Year:            req.Year,
		IsFeatured:      req.IsFeatured,
		VisionTitle:     req.VisionTitle,
		FullDescription: req.FullDescription,
		Palette:         req.Palette,
		Gallery:         req.Gallery,
		WalkthroughURL:  req.WalkthroughURL,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	id, err := s.repo.Create(ctx, project)
	if err != nil {
		log.Error("failed to create project", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s.reval.Invalidate(ctx, revalidate.KindProject)

	log.Info("project created", slog.String("project_id", id.String()))
	return s.toProjectResponse(ctx, id)
}

func (s *ProjectService) UpdateProject(ctx context.Context, role models.Role, id uuid.UUID, req dto.UpdateProjectRequest) (*dto.ProjectResponse, error) {
	const op = "project_service.UpdateProject"
	log := s.log.With(slog.String("op", op), slog.String("project_id", id.String()))

	if _, err := authz.RequireAnyRole(role); err != nil {
		log.Warn("project update rejected")
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	updates := make(map[string]interface{})
	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.Caption != nil {
		updates["caption"] = *req.Caption
	}
	if req.ImageURL != nil {
		updates["image_url"] = *req.ImageURL
	}
	if req.Category != nil {
		updates["category"] = *req.Category
	}
	if req.Location != nil {
		updates["location"] = *req.Location
	}
	if req.Year != nil {
		updates["year"] = *req.Year
	}
	if req.IsFeatured != nil {
		updates["is_featured"] = *req.IsFeatured
	}
	if req.VisionTitle != nil {
		updates["vision_title"] = *req.VisionTitle
	}
	if req.FullDescription != nil {
		if len(req.FullDescription) == 0 {
			return nil, fmt.Errorf("%s: full description must not be empty: %w", op, models.ErrValidation)
		}
		updates["full_description"] = models.StringList(req.FullDescription)
	}
	if req.Palette != nil {
		updates["palette"] = models.StringList(req.Palette)
	}
	if req.Gallery != nil {
		updates["gallery"] = models.StringList(req.Gallery)
	}
	if req.WalkthroughURL != nil {
		updates["walkthrough_url"] = *req.WalkthroughURL
	}

	if len(updates) == 0 {
		return nil, fmt.Errorf("%s: no fields to update: %w", op, models.ErrValidation)
	}

	if err := s.repo.UpdateFields(ctx, id, updates); err != nil {
		log.Error("failed to update project", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s.reval.Invalidate(ctx, revalidate.KindProject)

	log.Info("project updated")
	return s.toProjectResponse(ctx, id)
}

func (s *ProjectService) DeleteProject(ctx context.Context, role models.Role, id uuid.UUID) error {
	const op = "project_service.DeleteProject"
	log := s.log.With(slog.String("op", op), slog.String("project_id", id.String()))

	if _, err := authz.RequireRole(role, authz.ProjectDeleteRoles...); err != nil {
		log.Warn("project delete rejected", slog.String("role", role.String()))
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		log.Error("failed to delete project", sl.Err(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	s.reval.Invalidate(ctx, revalidate.KindProject)

	log.Info("project deleted")
	return nil
}

func (s *ProjectService) toProjectResponse(ctx context.Context, id uuid.UUID) (*dto.ProjectResponse, error) {
	project, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return mapProjectResponse(project), nil
}

func mapProjectResponse(p *models.Project) *dto.ProjectResponse {
	return &dto.ProjectResponse{
		ID:              p.ID,
		Title:           p.Title,
		Caption:         p.Caption,
		ImageURL:        p.ImageURL,
		Category:        p.Category,
		Location:        p.Location,
		Year:            p.Year,
		IsFeatured:      p.IsFeatured,
		VisionTitle:     p.VisionTitle,
		FullDescription: p.FullDescription,
		Palette:         p.Palette,
		Gallery:         p.Gallery,
		WalkthroughURL:  p.WalkthroughURL,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
}
