package http

import (
	"log/slog"
	"net/http"

	"atelier/internal/lib/logger/sl"
	"atelier/internal/transport/http/dto"
	"atelier/internal/transport/http/dto/response"

	"github.com/labstack/echo/v4"
)

// ListServices godoc
// @Summary List all services
// @Description Returns every service offering, newest first
// @Tags services
// @Produce json
// @Success 200 {object} response.Response{data=[]dto.ServiceResponse}
// @Failure 503 {object} response.ErrorResponse
// @Router /api/v1/services [get]
func (r *Routers) ListServices(c echo.Context) error {
	const op = "http.routers.ListServices"

	services, err := r.ServiceService.ListServices(c.Request().Context())
	if err != nil {
		return r.writeError(c, op, err)
	}

	return c.JSON(http.StatusOK, response.SuccessResponse(services))
}

// GetService godoc
// @Summary Get a service by id
// @Tags services
// @Produce json
// @Param id path string true "Service UUID" format(uuid)
// @Success 200 {object} response.Response{data=dto.ServiceResponse}
// @Failure 404 {object} response.ErrorResponse
// @Failure 503 {object} response.ErrorResponse
// @Router /api/v1/services/{id} [get]
func (r *Routers) GetService(c echo.Context) error {
	const op = "http.routers.GetService"

	// Malformed ids on public reads answer not-found so the caller can
	// render the same state as a missing document.
	id, err := parseIDParam(c)
	if err != nil {
		return c.JSON(http.StatusNotFound, response.NotFound())
	}

	service, err := r.ServiceService.GetServiceByID(c.Request().Context(), id)
	if err != nil {
		return r.writeError(c, op, err)
	}

	return c.JSON(http.StatusOK, response.SuccessResponse(service))
}

// CreateService godoc
// @Summary Create a service
// @Description Requires any authenticated role
// @Tags services
// @Accept json
// @Produce json
// @Param request body dto.CreateServiceRequest true "Service payload"
// @Success 201 {object} response.Response{data=dto.ServiceResponse}
// @Failure 400 {object} response.ErrorResponse
// @Failure 401 {object} response.ErrorResponse
// @Failure 503 {object} response.ErrorResponse
// @Security ApiKeyAuth
// @Router /api/v1/dashboard/services [post]
func (r *Routers) CreateService(c echo.Context) error {
	const op = "http.routers.CreateService"
	log := r.log.With(slog.String("op", op))

	var req dto.CreateServiceRequest
	if err := c.Bind(&req); err != nil {
		log.Warn("failed to bind service payload", sl.Err(err))
		return c.JSON(http.StatusBadRequest, response.ValidationFailed("invalid request format"))
	}

	if err := c.Validate(req); err != nil {
		return c.JSON(http.StatusBadRequest, response.ValidationFailed(err.Error()))
	}

	service, err := r.ServiceService.CreateService(c.Request().Context(), roleFrom(c), req)
	if err != nil {
		return r.writeError(c, op, err)
	}

	return c.JSON(http.StatusCreated, response.SuccessResponse(service))
}

// UpdateService godoc
// @Summary Update a service
// @Description Partial update; only supplied fields change. Requires any authenticated role
// @Tags services
// @Accept json
// @Produce json
// @Param id path string true "Service UUID" format(uuid)
// @Param request body dto.UpdateServiceRequest true "Fields to update"
// @Success 200 {object} response.Response{data=dto.ServiceResponse}
// @Failure 400 {object} response.ErrorResponse
// @Failure 401 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Failure 503 {object} response.ErrorResponse
// @Security ApiKeyAuth
// @Router /api/v1/dashboard/services/{id} [patch]
func (r *Routers) UpdateService(c echo.Context) error {
	const op = "http.routers.UpdateService"

	id, err := parseIDParam(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, response.ValidationFailed("invalid service id"))
	}

	var req dto.UpdateServiceRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, response.ValidationFailed("invalid request format"))
	}

	if err := c.Validate(req); err != nil {
		return c.JSON(http.StatusBadRequest, response.ValidationFailed(err.Error()))
	}

	service, err := r.ServiceService.UpdateService(c.Request().Context(), roleFrom(c), id, req)
	if err != nil {
		return r.writeError(c, op, err)
	}

	return c.JSON(http.StatusOK, response.SuccessResponse(service))
}

// DeleteService godoc
// @Summary Delete a service
// @Description Requires super-admin or admin; agents cannot delete services
// @Tags services
// @Param id path string true "Service UUID" format(uuid)
// @Success 204
// @Failure 401 {object} response.ErrorResponse
// @Failure 403 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Failure 503 {object} response.ErrorResponse
// @Security ApiKeyAuth
// @Router /api/v1/dashboard/services/{id} [delete]
func (r *Routers) DeleteService(c echo.Context) error {
	const op = "http.routers.DeleteService"

	id, err := parseIDParam(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, response.ValidationFailed("invalid service id"))
	}

	if err := r.ServiceService.DeleteService(c.Request().Context(), roleFrom(c), id); err != nil {
		return r.writeError(c, op, err)
	}

	return c.NoContent(http.StatusNoContent)
}
