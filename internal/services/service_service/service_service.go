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

// ServiceService manages the studio's design offerings. Creating and
// updating needs any authenticated role; deleting is limited to
// super-admin and admin.
type ServiceService struct {
	log   *slog.Logger
	repo  repository.ServiceRepository
	reval *revalidate.Revalidator
}

func NewServiceService(log *slog.Logger, repo repository.ServiceRepository, reval *revalidate.Revalidator) *ServiceService {
	return &ServiceService{log: log, repo: repo, reval: reval}
}

// ListServices is public; no role required.
func (s *ServiceService) ListServices(ctx context.Context) ([]dto.ServiceResponse, error) {
	const op = "service_service.ListServices"

	services, err := s.repo.List(ctx)
	if err != nil {
		s.log.Error("failed to list services", slog.String("op", op), sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	out := make([]dto.ServiceResponse, 0, len(services))
	for _, svc := range services {
		out = append(out, *mapServiceResponse(&svc))
	}

	return out, nil
}

func (s *ServiceService) GetServiceByID(ctx context.Context, id uuid.UUID) (*dto.ServiceResponse, error) {
	const op = "service_service.GetServiceByID"

	service, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return mapServiceResponse(service), nil
}

func (s *ServiceService) CreateService(ctx context.Context, role models.Role, req dto.CreateServiceRequest) (*dto.ServiceResponse, error) {
	const op = "service_service.CreateService"
	log := s.log.With(slog.String("op", op), slog.String("role", role.String()))

	if _, err := authz.RequireAnyRole(role); err != nil {
		log.Warn("service create rejected")
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if req.Title == "" {
		return nil, fmt.Errorf("%s: service title is required: %w", op, models.ErrValidation)
	}

	now := time.Now().UTC()
	service := models.Service{
		Title:            req.Title,
		ShortDescription: req.ShortDescription,
		LongDescription:  req.LongDescription,
		Features:         mapFeatures(req.Features),
		ImageURL:         req.ImageURL,
		Details:          mapDetails(req.Details),
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	id, err := s.repo.Create(ctx, service)
	if err != nil {
		log.Error("failed to create service", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s.reval.Invalidate(ctx, revalidate.KindService)

	log.Info("service created", slog.String("service_id", id.String()))
	return s.toServiceResponse(ctx, id)
}

func (s *ServiceService) UpdateService(ctx context.Context, role models.Role, id uuid.UUID, req dto.UpdateServiceRequest) (*dto.ServiceResponse, error) {
	const op = "service_service.UpdateService"
	log := s.log.With(slog.String("op", op), slog.String("service_id", id.String()))

	if _, err := authz.RequireAnyRole(role); err != nil {
		log.Warn("service update rejected")
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	updates := make(map[string]interface{})
	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.ShortDescription != nil {
		updates["short_description"] = *req.ShortDescription
	}
	if req.LongDescription != nil {
		updates["long_description"] = *req.LongDescription
	}
	if req.Features != nil {
		updates["features"] = mapFeatures(req.Features)
	}
	if req.ImageURL != nil {
		updates["image_url"] = *req.ImageURL
	}
	if req.Details != nil {
		updates["details"] = mapDetails(req.Details)
	}

	if len(updates) == 0 {
		return nil, fmt.Errorf("%s: no fields to update: %w", op, models.ErrValidation)
	}

	if err := s.repo.UpdateFields(ctx, id, updates); err != nil {
		log.Error("failed to update service", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s.reval.Invalidate(ctx, revalidate.KindService)

	log.Info("service updated")
	return s.toServiceResponse(ctx, id)
}

func (s *ServiceService) DeleteService(ctx context.Context, role models.Role, id uuid.UUID) error {
	const op = "service_service.DeleteService"
	log := s.log.With(slog.String("op", op), slog.String("service_id", id.String()))

	if _, err := authz.RequireRole(role, authz.ServiceDeleteRoles...); err != nil {
		log.Warn("service delete rejected", slog.String("role", role.String()))
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		log.Error("failed to delete service", sl.Err(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	s.reval.Invalidate(ctx, revalidate.KindService)

	log.Info("service deleted")
	return nil
}

func (s *ServiceService) toServiceResponse(ctx context.Context, id uuid.UUID) (*dto.ServiceResponse, error) {
	service, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return mapServiceResponse(service), nil
}

func mapFeatures(in []dto.FeaturePayload) models.FeatureList {
	out := make(models.FeatureList, 0, len(in))
	for _, f := range in {
		out = append(out, models.Feature{Title: f.Title, Detail: f.Detail})
	}
	return out
}

func mapDetails(in *dto.ServiceDetailsPayload) models.ServiceDetails {
	if in == nil {
		return models.ServiceDetails{}
	}
	return models.ServiceDetails{
		Included:    in.Included,
		Approach:    in.Approach,
		Materials:   in.Materials,
		Timeline:    in.Timeline,
		SuitableFor: in.SuitableFor,
	}
}

func mapServiceResponse(svc *models.Service) *dto.ServiceResponse {
	features := make([]dto.FeaturePayload, 0, len(svc.Features))
	for _, f := range svc.Features {
		features = append(features, dto.FeaturePayload{Title: f.Title, Detail: f.Detail})
	}

	return &dto.ServiceResponse{
		ID:               svc.ID,
		Title:            svc.Title,
		ShortDescription: svc.ShortDescription,
		LongDescription:  svc.LongDescription,
		Features:         features,
		ImageURL:         svc.ImageURL,
		Details: dto.ServiceDetailsPayload{
			Included:    svc.Details.Included,
			Approach:    svc.Details.Approach,
			Materials:   svc.Details.Materials,
			Timeline:    svc.Details.Timeline,
			SuitableFor: svc.Details.SuitableFor,
		},
		CreatedAt: svc.CreatedAt,
		UpdatedAt: svc.UpdatedAt,
	}
}
