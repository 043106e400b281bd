package http

import (
	"log/slog"
	"net/http"

	"atelier/internal/lib/logger/sl"
	"atelier/internal/transport/http/dto"
	"atelier/internal/transport/http/dto/response"

	"github.com/labstack/echo/v4"
)

// ListProjects godoc
// @Summary List all projects
// @Description Returns every project, newest first
// @Tags projects
// @Produce json
// @Success 200 {object} response.Response{data=[]dto.ProjectResponse}
// @Failure 503 {object} response.ErrorResponse
// @Router /api/v1/projects [get]
func (r *Routers) ListProjects(c echo.Context) error {
	const op = "http.routers.ListProjects"

	projects, err := r.ProjectService.ListProjects(c.Request().Context())
	if err != nil {
		return r.writeError(c, op, err)
	}

	return c.JSON(http.StatusOK, response.SuccessResponse(projects))
}

// GetProject godoc
// @Summary Get a project by id
// @Tags projects
// @Produce json
// @Param id path string true "Project UUID" format(uuid)
// @Success 200 {object} response.Response{data=dto.ProjectResponse}
// @Failure 404 {object} response.ErrorResponse
// @Failure 503 {object} response.ErrorResponse
// @Router /api/v1/projects/{id} [get]
func (r *Routers) GetProject(c echo.Context) error {
	const op = "http.routers.GetProject"

	// Malformed ids on public reads answer not-found so the caller can
	// render the same state as a missing document.
	id, err := parseIDParam(c)
	if err != nil {
		return c.JSON(http.StatusNotFound, response.NotFound())
	}

	project, err := r.ProjectService.GetProjectByID(c.Request().Context(), id)
	if err != nil {
		return r.writeError(c, op, err)
	}

	return c.JSON(http.StatusOK, response.SuccessResponse(project))
}

// CreateProject godoc
// @Summary Create a project
// @Description Requires any authenticated role
// @Tags projects
// @Accept json
// @Produce json
// @Param request body dto.CreateProjectRequest true "Project payload"
// @Success 201 {object} response.Response{data=dto.ProjectResponse}
// @Failure 400 {object} response.ErrorResponse
// @Failure 401 {object} response.ErrorResponse
// @Failure 503 {object} response.ErrorResponse
// @Security ApiKeyAuth
// @Router /api/v1/dashboard/projects [post]
func (r *Routers) CreateProject(c echo.Context) error {
	const op = "http.routers.CreateProject"
	log := r.log.With(slog.String("op", op))

	var req dto.CreateProjectRequest
	if err := c.Bind(&req); err != nil {
		log.Warn("failed to bind project payload", sl.Err(err))
		return c.JSON(http.StatusBadRequest, response.ValidationFailed("invalid request format"))
	}

	if err := c.Validate(req); err != nil {
		return c.JSON(http.StatusBadRequest, response.ValidationFailed(err.Error()))
	}

	project, err := r.ProjectService.CreateProject(c.Request().Context(), roleFrom(c), req)
	if err != nil {
		return r.writeError(c, op, err)
	}

	return c.JSON(http.StatusCreated, response.SuccessResponse(project))
}

// UpdateProject godoc
// @Summary Update a project
// @Description Partial update; only supplied fields change. Requires any authenticated role
// @Tags projects
// @Accept json
// @Produce json
// @Param id path string true "Project UUID" format(uuid)
// @Param request body dto.UpdateProjectRequest true "Fields to update"
// @Success 200 {object} response.Response{data=dto.ProjectResponse}
// @Failure 400 {object} response.ErrorResponse
// @Failure 401 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Failure 503 {object} response.ErrorResponse
// @Security ApiKeyAuth
// @Router /api/v1/dashboard/projects/{id} [patch]
func (r *Routers) UpdateProject(c echo.Context) error {
	const op = "http.routers.UpdateProject"

	id, err := parseIDParam(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, response.ValidationFailed("invalid project id"))
	}

	var req dto.UpdateProjectRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, response.ValidationFailed("invalid request format"))
	}

	if err := c.Validate(req); err != nil {
		return c.JSON(http.StatusBadRequest, response.ValidationFailed(err.Error()))
	}

	project, err := r.ProjectService.UpdateProject(c.Request().Context(), roleFrom(c), id, req)
	if err != nil {
		return r.writeError(c, op, err)
	}

	return c.JSON(http.StatusOK, response.SuccessResponse(project))
}

// DeleteProject godoc
// @Summary Delete a project
// @Description Requires super-admin or admin
// @Tags projects
// @Param id path string true "Project UUID" format(uuid)
// @Success 204
// @Failure 401 {object} response.ErrorResponse
// @Failure 403 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Failure 503 {object} response.ErrorResponse
// @Security ApiKeyAuth
// @Router /api/v1/dashboard/projects/{id} [delete]
func (r *Routers) DeleteProject(c echo.Context) error {
	const op = "http.routers.DeleteProject"

	id, err := parseIDParam(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, response.ValidationFailed("invalid project id"))
	}

	if err := r.ProjectService.DeleteProject(c.Request().Context(), roleFrom(c), id); err != nil {
		return r.writeError(c, op, err)
	}

	return c.NoContent(http.StatusNoContent)
}
