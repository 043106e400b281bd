package http

import (
	"log/slog"
	"net/http"

	"atelier/internal/lib/logger/sl"
	"atelier/internal/transport/http/dto"
	"atelier/internal/transport/http/dto/response"

	"github.com/labstack/echo/v4"
)

// ListPosts godoc
// @Summary List all blog posts
// @Description Returns every post, newest first
// @Tags blog
// @Produce json
// @Success 200 {object} response.Response{data=[]dto.BlogPostResponse}
// @Failure 503 {object} response.ErrorResponse
// @Router /api/v1/blogs [get]
func (r *Routers) ListPosts(c echo.Context) error {
	const op = "http.routers.ListPosts"

	posts, err := r.BlogService.ListPosts(c.Request().Context())
	if err != nil {
		return r.writeError(c, op, err)
	}

	return c.JSON(http.StatusOK, response.SuccessResponse(posts))
}

// GetPostBySlug godoc
// @Summary Get a blog post by slug
// @Tags blog
// @Produce json
// @Param slug path string true "Post slug"
// @Success 200 {object} response.Response{data=dto.BlogPostResponse}
// @Failure 404 {object} response.ErrorResponse
// @Failure 503 {object} response.ErrorResponse
// @Router /api/v1/blogs/{slug} [get]
func (r *Routers) GetPostBySlug(c echo.Context) error {
	const op = "http.routers.GetPostBySlug"

	slug := c.Param("slug")
	if slug == "" {
		return c.JSON(http.StatusBadRequest, response.ValidationFailed("slug is required"))
	}

	post, err := r.BlogService.GetPostBySlug(c.Request().Context(), slug)
	if err != nil {
		return r.writeError(c, op, err)
	}

	return c.JSON(http.StatusOK, response.SuccessResponse(post))
}

// CreatePost godoc
// @Summary Create a blog post
// @Description Requires any authenticated role. The slug is derived from the title when omitted
// @Tags blog
// @Accept json
// @Produce json
// @Param request body dto.CreateBlogPostRequest true "Post payload"
// @Success 201 {object} response.Response{data=dto.BlogPostResponse}
// @Failure 400 {object} response.ErrorResponse
// @Failure 401 {object} response.ErrorResponse
// @Failure 409 {object} response.ErrorResponse
// @Failure 503 {object} response.ErrorResponse
// @Security ApiKeyAuth
// @Router /api/v1/dashboard/blogs [post]
func (r *Routers) CreatePost(c echo.Context) error {
	const op = "http.routers.CreatePost"
	log := r.log.With(slog.String("op", op))

	var req dto.CreateBlogPostRequest
	if err := c.Bind(&req); err != nil {
		log.Warn("failed to bind post payload", sl.Err(err))
		return c.JSON(http.StatusBadRequest, response.ValidationFailed("invalid request format"))
	}

	if err := c.Validate(req); err != nil {
		return c.JSON(http.StatusBadRequest, response.ValidationFailed(err.Error()))
	}

	post, err := r.BlogService.CreatePost(c.Request().Context(), roleFrom(c), req)
	if err != nil {
		return r.writeError(c, op, err)
	}

	return c.JSON(http.StatusCreated, response.SuccessResponse(post))
}

// UpdatePost godoc
// @Summary Update a blog post
// @Description Partial update; only supplied fields change. Requires any authenticated role
// @Tags blog
// @Accept json
// @Produce json
// @Param id path string true "Post UUID" format(uuid)
// @Param request body dto.UpdateBlogPostRequest true "Fields to update"
// @Success 200 {object} response.Response{data=dto.BlogPostResponse}
// @Failure 400 {object} response.ErrorResponse
// @Failure 401 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Failure 409 {object} response.ErrorResponse
// @Failure 503 {object} response.ErrorResponse
// @Security ApiKeyAuth
// @Router /api/v1/dashboard/blogs/{id} [patch]
func (r *Routers) UpdatePost(c echo.Context) error {
	const op = "http.routers.UpdatePost"

	id, err := parseIDParam(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, response.ValidationFailed("invalid post id"))
	}

	var req dto.UpdateBlogPostRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, response.ValidationFailed("invalid request format"))
	}

	if err := c.Validate(req); err != nil {
		return c.JSON(http.StatusBadRequest, response.ValidationFailed(err.Error()))
	}

	post, err := r.BlogService.UpdatePost(c.Request().Context(), roleFrom(c), id, req)
	if err != nil {
		return r.writeError(c, op, err)
	}

	return c.JSON(http.StatusOK, response.SuccessResponse(post))
}

// DeletePost godoc
// @Summary Delete a blog post
// @Description Requires super-admin or admin
// @Tags blog
// @Param id path string true "Post UUID" format(uuid)
// @Success 204
// @Failure 401 {object} response.ErrorResponse
// @Failure 403 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Failure 503 {object} response.ErrorResponse
// @Security ApiKeyAuth
// @Router /api/v1/dashboard/blogs/{id} [delete]
func (r *Routers) DeletePost(c echo.Context) error {
	const op = "http.routers.DeletePost"

	id, err := parseIDParam(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, response.ValidationFailed("invalid post id"))
	}

	if err := r.BlogService.DeletePost(c.Request().Context(), roleFrom(c), id); err != nil {
		return r.writeError(c, op, err)
	}

	return c.NoContent(http.StatusNoContent)
}
