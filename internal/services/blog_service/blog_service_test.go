package services

import (
	"context"
	"log/slog"
	"testing"

	"atelier/internal/authz"
	"atelier/internal/domain/models"
	"atelier/internal/revalidate"
	"atelier/internal/storage"
	"atelier/internal/transport/http/dto"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockBlogRepository struct {
	mock.Mock
}

func (m *MockBlogRepository) List(ctx context.Context) ([]models.BlogPost, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.BlogPost), args.Error(1)
}

func (m *MockBlogRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.BlogPost, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.BlogPost), args.Error(1)
}

func (m *MockBlogRepository) GetBySlug(ctx context.Context, slug string) (*models.BlogPost, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.BlogPost), args.Error(1)
}

func (m *MockBlogRepository) Create(ctx context.Context, post models.BlogPost) (uuid.UUID, error) {
	args := m.Called(ctx, post)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *MockBlogRepository) UpdateFields(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error {
	args := m.Called(ctx, id, updates)
	return args.Error(0)
}

func (m *MockBlogRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockBlogRepository) Count(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func newTestBlogService(repo *MockBlogRepository) *BlogService {
	log := slog.Default()
	return NewBlogService(log, repo, revalidate.New(log, nil))
}

func TestBlogService_CreatePost(t *testing.T) {
	ctx := context.Background()
	newID := uuid.New()
	stored := &models.BlogPost{ID: newID, Title: "Lighting Before Furniture", Slug: "lighting-before-furniture"}

	tests := []struct {
		name      string
		role      models.Role
		req       dto.CreateBlogPostRequest
		mockSetup func(repo *MockBlogRepository)
		wantError error
	}{
		{
			name: "slug derived from title",
			role: models.RoleAgent,
			req:  dto.CreateBlogPostRequest{Title: "Lighting Before Furniture", FullContent: "body"},
			mockSetup: func(repo *MockBlogRepository) {
				repo.On("Create", ctx, mock.MatchedBy(func(p models.BlogPost) bool {
					return p.Slug == "lighting-before-furniture"
				})).Return(newID, nil).Once()
				repo.On("GetByID", ctx, newID).Return(stored, nil).Once()
			},
		},
		{
			name: "duplicate slug conflicts",
			role: models.RoleAgent,
			req:  dto.CreateBlogPostRequest{Title: "Lighting Before Furniture", FullContent: "body"},
			mockSetup: func(repo *MockBlogRepository) {
				repo.On("Create", ctx, mock.AnythingOfType("models.BlogPost")).
					Return(uuid.Nil, storage.ErrConflict).Once()
			},
			wantError: storage.ErrConflict,
		},
		{
			name:      "anonymous may not create",
			role:      models.RoleNone,
			req:       dto.CreateBlogPostRequest{Title: "Lighting Before Furniture", FullContent: "body"},
			mockSetup: func(repo *MockBlogRepository) {},
			wantError: authz.ErrUnauthorized,
		},
		{
			name:      "missing content",
			role:      models.RoleAgent,
			req:       dto.CreateBlogPostRequest{Title: "Lighting Before Furniture"},
			mockSetup: func(repo *MockBlogRepository) {},
			wantError: models.ErrValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockBlogRepository)
			tt.mockSetup(repo)
			svc := newTestBlogService(repo)

			post, err := svc.CreatePost(ctx, tt.role, tt.req)

			if tt.wantError != nil {
				assert.ErrorIs(t, err, tt.wantError)
				assert.Nil(t, post)
			} else {
				require.NoError(t, err)
				assert.Equal(t, "lighting-before-furniture", post.Slug)
			}
			repo.AssertExpectations(t)
		})
	}
}

func TestBlogService_GetPostBySlug(t *testing.T) {
	ctx := context.Background()
	stored := &models.BlogPost{ID: uuid.New(), Slug: "stone-guide", Title: "Choosing Stone That Ages Well"}

	t.Run("found", func(t *testing.T) {
		repo := new(MockBlogRepository)
		repo.On("GetBySlug", ctx, "stone-guide").Return(stored, nil).Once()
		svc := newTestBlogService(repo)

		post, err := svc.GetPostBySlug(ctx, "stone-guide")
		require.NoError(t, err)
		assert.Equal(t, "Choosing Stone That Ages Well", post.Title)
		repo.AssertExpectations(t)
	})

	t.Run("missing slug", func(t *testing.T) {
		repo := new(MockBlogRepository)
		repo.On("GetBySlug", ctx, "nope").Return(nil, storage.ErrNotFound).Once()
		svc := newTestBlogService(repo)

		post, err := svc.GetPostBySlug(ctx, "nope")
		assert.ErrorIs(t, err, storage.ErrNotFound)
		assert.Nil(t, post)
		repo.AssertExpectations(t)
	})
}

func TestBlogService_DeletePost_RoleMatrix(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	t.Run("agent is refused", func(t *testing.T) {
		repo := new(MockBlogRepository)
		svc := newTestBlogService(repo)

		err := svc.DeletePost(ctx, models.RoleAgent, id)
		assert.ErrorIs(t, err, authz.ErrUnauthorized)
		repo.AssertExpectations(t)
	})

	t.Run("admin deletes", func(t *testing.T) {
		repo := new(MockBlogRepository)
		repo.On("Delete", ctx, id).Return(nil).Once()
		svc := newTestBlogService(repo)

		err := svc.DeletePost(ctx, models.RoleAdmin, id)
		assert.NoError(t, err)
		repo.AssertExpectations(t)
	})
}

func TestGenerateSlug(t *testing.T) {
	tests := []struct {
		title string
		want  string
	}{
		{title: "Lighting Before Furniture", want: "lighting-before-furniture"},
		{title: "  Trimmed Title ", want: "trimmed-title"},
		{title: "It's A Test", want: "its-a-test"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, generateSlug(tt.title))
	}
}
