package services

import (
	"context"
	"log/slog"
	"testing"

	"atelier/internal/authz"
	"atelier/internal/domain/models"
	"atelier/internal/revalidate"
	"atelier/internal/transport/http/dto"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockServiceRepository struct {
	mock.Mock
}

func (m *MockServiceRepository) List(ctx context.Context) ([]models.Service, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.Service), args.Error(1)
}

func (m *MockServiceRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Service, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Service), args.Error(1)
}

func (m *MockServiceRepository) Create(ctx context.Context, service models.Service) (uuid.UUID, error) {
	args := m.Called(ctx, service)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *MockServiceRepository) UpdateFields(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error {
	args := m.Called(ctx, id, updates)
	return args.Error(0)
}

func (m *MockServiceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockServiceRepository) Count(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func newTestServiceService(repo *MockServiceRepository) *ServiceService {
	log := slog.Default()
	return NewServiceService(log, repo, revalidate.New(log, nil))
}

func TestServiceService_CreateService(t *testing.T) {
	ctx := context.Background()
	newID := uuid.New()
	stored := &models.Service{ID: newID, Title: "Full Interior Design"}

	tests := []struct {
		name      string
		role      models.Role
		req       dto.CreateServiceRequest
		mockSetup func(repo *MockServiceRepository)
		wantError error
	}{
		{
			name: "agent may create",
			role: models.RoleAgent,
			req:  dto.CreateServiceRequest{Title: "Full Interior Design"},
			mockSetup: func(repo *MockServiceRepository) {
				repo.On("Create", ctx, mock.AnythingOfType("models.Service")).Return(newID, nil).Once()
				repo.On("GetByID", ctx, newID).Return(stored, nil).Once()
			},
		},
		{
			name:      "anonymous may not create",
			role:      models.RoleNone,
			req:       dto.CreateServiceRequest{Title: "Full Interior Design"},
			mockSetup: func(repo *MockServiceRepository) {},
			wantError: authz.ErrUnauthorized,
		},
		{
			name:      "missing title",
			role:      models.RoleAdmin,
			req:       dto.CreateServiceRequest{},
			mockSetup: func(repo *MockServiceRepository) {},
			wantError: models.ErrValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockServiceRepository)
			tt.mockSetup(repo)
			svc := newTestServiceService(repo)

			service, err := svc.CreateService(ctx, tt.role, tt.req)

			if tt.wantError != nil {
				assert.ErrorIs(t, err, tt.wantError)
				assert.Nil(t, service)
			} else {
				require.NoError(t, err)
				assert.Equal(t, "Full Interior Design", service.Title)
			}
			repo.AssertExpectations(t)
		})
	}
}

func TestServiceService_DeleteService_RoleMatrix(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	tests := []struct {
		name      string
		role      models.Role
		wantError bool
	}{
		{name: "super-admin deletes", role: models.RoleSuperAdmin},
		{name: "admin deletes", role: models.RoleAdmin},
		{name: "agent is refused", role: models.RoleAgent, wantError: true},
		{name: "anonymous is refused", role: models.RoleNone, wantError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockServiceRepository)
			if !tt.wantError {
				repo.On("Delete", ctx, id).Return(nil).Once()
			}
			svc := newTestServiceService(repo)

			err := svc.DeleteService(ctx, tt.role, id)

			if tt.wantError {
				assert.ErrorIs(t, err, authz.ErrUnauthorized)
			} else {
				assert.NoError(t, err)
			}
			repo.AssertExpectations(t)
		})
	}
}

func TestServiceService_UpdateService_PartialFields(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()
	stored := &models.Service{ID: id, Title: "Renamed"}

	repo := new(MockServiceRepository)
	repo.On("UpdateFields", ctx, id, mock.MatchedBy(func(updates map[string]interface{}) bool {
		if len(updates) != 1 {
			return false
		}
		return updates["title"] == "Renamed"
	})).Return(nil).Once()
	repo.On("GetByID", ctx, id).Return(stored, nil).Once()

	svc := newTestServiceService(repo)

	title := "Renamed"
	service, err := svc.UpdateService(ctx, models.RoleAgent, id, dto.UpdateServiceRequest{Title: &title})
	require.NoError(t, err)
	assert.Equal(t, "Renamed", service.Title)
	repo.AssertExpectations(t)
}

func TestServiceService_UpdateService_NoFields(t *testing.T) {
	ctx := context.Background()

	repo := new(MockServiceRepository)
	svc := newTestServiceService(repo)

	_, err := svc.UpdateService(ctx, models.RoleAgent, uuid.New(), dto.UpdateServiceRequest{})
	assert.ErrorIs(t, err, models.ErrValidation)
	repo.AssertExpectations(t)
}
