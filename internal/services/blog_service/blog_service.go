package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"atelier/internal/authz"
	"atelier/internal/domain/models"
	"atelier/internal/lib/logger/sl"
	"atelier/internal/repository"
	"atelier/internal/revalidate"
	"atelier/internal/transport/http/dto"

	"github.com/google/uuid"
)

type BlogService struct {
	log   *slog.Logger
	repo  repository.BlogRepository
	reval *revalidate.Revalidator
}

func NewBlogService(log *slog.Logger, repo repository.BlogRepository, reval *revalidate.Revalidator) *BlogService {
	return &BlogService{log: log, repo: repo, reval: reval}
}

// ListPosts is public; no role required.
func (s *BlogService) ListPosts(ctx context.Context) ([]dto.BlogPostResponse, error) {
	const op = "blog_service.ListPosts"

	posts, err := s.repo.List(ctx)
	if err != nil {
		s.log.Error("failed to list posts", slog.String("op", op), sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	out := make([]dto.BlogPostResponse, 0, len(posts))
	for _, p := range posts {
		out = append(out, *mapPostResponse(&p))
	}

	return out, nil
}

// GetPostBySlug is the public lookup; the slug, not the id, is the key.
func (s *BlogService) GetPostBySlug(ctx context.Context, slug string) (*dto.BlogPostResponse, error) {
	const op = "blog_service.GetPostBySlug"

	post, err := s.repo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return mapPostResponse(post), nil
}

func (s *BlogService) GetPostByID(ctx context.Context, id uuid.UUID) (*dto.BlogPostResponse, error) {
	const op = "blog_service.GetPostByID"

	post, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return mapPostResponse(post), nil
}

func (s *BlogService) CreatePost(ctx context.Context, role models.Role, req dto.CreateBlogPostRequest) (*dto.BlogPostResponse, error) {
	const op = "blog_service.CreatePost"
	log := s.log.With(slog.String("op", op), slog.String("role", role.String()))

	if _, err := authz.RequireAnyRole(role); err != nil {
		log.Warn("post create rejected")
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if req.Title == "" {
		return nil, fmt.Errorf("%s: post title is required: %w", op, models.ErrValidation)
	}
	if req.FullContent == "" {
		return nil, fmt.Errorf("%s: post content is required: %w", op, models.ErrValidation)
	}

	now := time.Now().UTC()
	post := models.BlogPost{
		Slug:        req.Slug,
		Title:       req.Title,
		Excerpt:     req.Excerpt,
		FullContent: req.FullContent,
		Quote:       req.Quote,
		QuoteAuthor: req.QuoteAuthor,
		Category:    req.Category,
		Date:        req.Date,
		Author:      req.Author,
		ImageURL:    req.ImageURL,
		ReadTime:    req.ReadTime,
		Tags:        req.Tags,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if post.Slug == "" {
		post.Slug = generateSlug(post.Title)
		log.Debug("generated slug", slog.String("slug", post.Slug))
	}

	id, err := s.repo.Create(ctx, post)
	if err != nil {
		log.Error("failed to create post", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s.reval.Invalidate(ctx, revalidate.KindBlog)

	log.Info("post created", slog.String("post_id", id.String()))
	return s.toPostResponse(ctx, id)
}

func (s *BlogService) UpdatePost(ctx context.Context, role models.Role, id uuid.UUID, req dto.UpdateBlogPostRequest) (*dto.BlogPostResponse, error) {
	const op = "blog_service.UpdatePost"
	log := s.log.With(slog.String("op", op), slog.String("post_id", id.String()))

	if _, err := authz.RequireAnyRole(role); err != nil {
		log.Warn("post update rejected")
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	updates := make(map[string]interface{})
	if req.Slug != nil {
		updates["slug"] = *req.Slug
	}
	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.Excerpt != nil {
		updates["excerpt"] = *req.Excerpt
	}
	if req.FullContent != nil {
		updates["full_content"] = *req.FullContent
	}
	if req.Quote != nil {
		updates["quote"] = *req.Quote
	}
	if req.QuoteAuthor != nil {
		updates["quote_author"] = *req.QuoteAuthor
	}
	if req.Category != nil {
		updates["category"] = *req.Category
	}
	if req.Date != nil {
		updates["date"] = *req.Date
	}
	if req.Author != nil {
		updates["author"] = *req.Author
	}
	if req.ImageURL != nil {
		updates["image_url"] = *req.ImageURL
	}
	if req.ReadTime != nil {
		updates["read_time"] = *req.ReadTime
	}
	if req.Tags != nil {
		updates["tags"] = models.StringList(req.Tags)
	}

	if len(updates) == 0 {
		return nil, fmt.Errorf("%s: no fields to update: %w", op, models.ErrValidation)
	}

	if err := s.repo.UpdateFields(ctx, id, updates); err != nil {
		log.Error("failed to update post", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s.reval.Invalidate(ctx, revalidate.KindBlog)

	log.Info("post updated")
	return s.toPostResponse(ctx, id)
}

func (s *BlogService) DeletePost(ctx context.Context, role models.Role, id uuid.UUID) error {
	const op = "blog_service.DeletePost"
	log := s.log.With(slog.String("op", op), slog.String("post_id", id.String()))

	if _, err := authz.RequireRole(role, authz.BlogDeleteRoles...); err != nil {
		log.Warn("post delete rejected", slog.String("role", role.String()))
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		log.Error("failed to delete post", sl.Err(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	s.reval.Invalidate(ctx, revalidate.KindBlog)

	log.Info("post deleted")
	return nil
}

func (s *BlogService) toPostResponse(ctx context.Context, id uuid.UUID) (*dto.BlogPostResponse, error) {
	post, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return mapPostResponse(post), nil
}

func mapPostResponse(p *models.BlogPost) *dto.BlogPostResponse {
	return &dto.BlogPostResponse{
		ID:          p.ID,
		Slug:        p.Slug,
		Title:       p.Title,
		Excerpt:     p.Excerpt,
		FullContent: p.FullContent,
		Quote:       p.Quote,
		QuoteAuthor: p.QuoteAuthor,
		Category:    p.Category,
		Date:        p.Date,
		Author:      p.Author,
		ImageURL:    p.ImageURL,
		ReadTime:    p.ReadTime,
		Tags:        p.Tags,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func generateSlug(title string) string {
	slug := strings.ToLower(strings.TrimSpace(title))
	slug = strings.ReplaceAll(slug, " ", "-")
	slug = strings.ReplaceAll(slug, "'", "")
	slug = strings.ReplaceAll(slug, `"`, "")
	return slug
}
