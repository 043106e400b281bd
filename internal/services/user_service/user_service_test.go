package services

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"atelier/internal/authz"
	"atelier/internal/domain/models"
	"atelier/internal/revalidate"
	"atelier/internal/storage"
	"atelier/internal/transport/http/dto"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) List(ctx context.Context) ([]models.User, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.User), args.Error(1)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) Create(ctx context.Context, user models.User) (uuid.UUID, error) {
	args := m.Called(ctx, user)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *MockUserRepository) UpdateFields(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error {
	args := m.Called(ctx, id, updates)
	return args.Error(0)
}

func (m *MockUserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockUserRepository) Count(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func newTestUserService(repo *MockUserRepository) *UserService {
	log := slog.Default()
	return NewUserService(log, repo, revalidate.New(log, nil), "test-secret", time.Hour)
}

func hashedUser(t *testing.T, username, password string, role models.Role) *models.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return &models.User{
		ID:       uuid.New(),
		Username: username,
		Email:    username + "@atelier.studio",
		Role:     role,
		Password: hash,
	}
}

func TestUserService_Login(t *testing.T) {
	ctx := context.Background()
	stored := hashedUser(t, "marta", "correct-horse", models.RoleSuperAdmin)

	tests := []struct {
		name      string
		username  string
		password  string
		mockSetup func(repo *MockUserRepository)
		wantError error
	}{
		{
			name:     "valid credentials",
			username: "marta",
			password: "correct-horse",
			mockSetup: func(repo *MockUserRepository) {
				repo.On("GetByUsername", ctx, "marta").Return(stored, nil).Once()
			},
		},
		{
			name:     "wrong password",
			username: "marta",
			password: "wrong",
			mockSetup: func(repo *MockUserRepository) {
				repo.On("GetByUsername", ctx, "marta").Return(stored, nil).Once()
			},
			wantError: authz.ErrUnauthorized,
		},
		{
			name:     "unknown user",
			username: "ghost",
			password: "whatever",
			mockSetup: func(repo *MockUserRepository) {
				repo.On("GetByUsername", ctx, "ghost").Return(nil, storage.ErrNotFound).Once()
			},
			wantError: authz.ErrUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockUserRepository)
			tt.mockSetup(repo)
			svc := newTestUserService(repo)

			token, user, err := svc.Login(ctx, tt.username, tt.password)

			if tt.wantError != nil {
				assert.ErrorIs(t, err, tt.wantError)
				assert.Empty(t, token)
				assert.Nil(t, user)
			} else {
				require.NoError(t, err)
				assert.NotEmpty(t, token)
				assert.Equal(t, "marta", user.Username)
				assert.Equal(t, "super-admin", user.Role)
			}
			repo.AssertExpectations(t)
		})
	}
}

func TestUserService_ListUsers_RoleMatrix(t *testing.T) {
	ctx := context.Background()
	stored := []models.User{*hashedUser(t, "marta", "pw-one-one", models.RoleSuperAdmin)}

	tests := []struct {
		name      string
		role      models.Role
		wantError bool
	}{
		{name: "super-admin reads users", role: models.RoleSuperAdmin},
		{name: "admin is refused", role: models.RoleAdmin, wantError: true},
		{name: "agent is refused", role: models.RoleAgent, wantError: true},
		{name: "anonymous is refused", role: models.RoleNone, wantError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockUserRepository)
			if !tt.wantError {
				repo.On("List", ctx).Return(stored, nil).Once()
			}
			svc := newTestUserService(repo)

			users, err := svc.ListUsers(ctx, tt.role)

			if tt.wantError {
				assert.ErrorIs(t, err, authz.ErrUnauthorized)
				assert.Nil(t, users)
			} else {
				require.NoError(t, err)
				require.Len(t, users, 1)
				assert.Equal(t, "marta", users[0].Username)
			}
			repo.AssertExpectations(t)
		})
	}
}

func TestUserService_CreateUser(t *testing.T) {
	ctx := context.Background()
	newID := uuid.New()
	created := hashedUser(t, "tomas", "pw-eight-ch", models.RoleAgent)
	created.ID = newID

	tests := []struct {
		name      string
		role      models.Role
		req       dto.CreateUserRequest
		mockSetup func(repo *MockUserRepository)
		wantError error
	}{
		{
			name: "super-admin creates a user",
			role: models.RoleSuperAdmin,
			req:  dto.CreateUserRequest{Username: "tomas", Email: "tomas@atelier.studio", Password: "pw-eight-ch", Role: "agent"},
			mockSetup: func(repo *MockUserRepository) {
				repo.On("GetByUsername", ctx, "tomas").Return(nil, storage.ErrNotFound).Once()
				repo.On("Create", ctx, mock.AnythingOfType("models.User")).Return(newID, nil).Once()
				repo.On("GetByID", ctx, newID).Return(created, nil).Once()
			},
		},
		{
			name: "duplicate username conflicts",
			role: models.RoleSuperAdmin,
			req:  dto.CreateUserRequest{Username: "tomas", Email: "tomas@atelier.studio", Password: "pw-eight-ch", Role: "agent"},
			mockSetup: func(repo *MockUserRepository) {
				repo.On("GetByUsername", ctx, "tomas").Return(created, nil).Once()
			},
			wantError: storage.ErrConflict,
		},
		{
			name:      "admin may not create users",
			role:      models.RoleAdmin,
			req:       dto.CreateUserRequest{Username: "tomas", Password: "pw-eight-ch", Role: "agent"},
			mockSetup: func(repo *MockUserRepository) {},
			wantError: authz.ErrUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockUserRepository)
			tt.mockSetup(repo)
			svc := newTestUserService(repo)

			user, err := svc.CreateUser(ctx, tt.role, tt.req)

			if tt.wantError != nil {
				assert.ErrorIs(t, err, tt.wantError)
				assert.Nil(t, user)
			} else {
				require.NoError(t, err)
				assert.Equal(t, "tomas", user.Username)
			}
			repo.AssertExpectations(t)
		})
	}
}

func TestUserService_UpdateUser_RehashesPassword(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()
	stored := hashedUser(t, "marta", "old-password", models.RoleSuperAdmin)
	stored.ID = id

	repo := new(MockUserRepository)
	repo.On("UpdateFields", ctx, id, mock.MatchedBy(func(updates map[string]interface{}) bool {
		hash, ok := updates["password"].([]byte)
		if !ok {
			return false
		}
		return bcrypt.CompareHashAndPassword(hash, []byte("new-password")) == nil
	})).Return(nil).Once()
	repo.On("GetByID", ctx, id).Return(stored, nil).Once()

	svc := newTestUserService(repo)

	pw := "new-password"
	_, err := svc.UpdateUser(ctx, models.RoleSuperAdmin, id, dto.UpdateUserRequest{Password: &pw})
	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestUserService_DeleteUser_RoleMatrix(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	for _, role := range []models.Role{models.RoleAdmin, models.RoleAgent, models.RoleNone} {
		t.Run("refused for "+string(role), func(t *testing.T) {
			repo := new(MockUserRepository)
			svc := newTestUserService(repo)

			err := svc.DeleteUser(ctx, role, id)
			assert.ErrorIs(t, err, authz.ErrUnauthorized)
			repo.AssertExpectations(t)
		})
	}

	t.Run("super-admin deletes", func(t *testing.T) {
		repo := new(MockUserRepository)
		repo.On("Delete", ctx, id).Return(nil).Once()
		svc := newTestUserService(repo)

		err := svc.DeleteUser(ctx, models.RoleSuperAdmin, id)
		assert.NoError(t, err)
		repo.AssertExpectations(t)
	})
}
