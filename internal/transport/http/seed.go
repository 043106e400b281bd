package http

import (
	"net/http"

	"atelier/internal/transport/http/dto/response"

	"github.com/labstack/echo/v4"
)

// Seed godoc
// @Summary Load starter content
// @Description Super-admin only. Fills each empty collection with the fixed starter dataset; populated collections are left untouched, so repeat calls are safe
// @Tags seed
// @Produce json
// @Success 200 {object} response.Response{data=dto.SeedResponse}
// @Failure 401 {object} response.ErrorResponse
// @Failure 403 {object} response.ErrorResponse
// @Failure 503 {object} response.ErrorResponse
// @Security ApiKeyAuth
// @Router /api/v1/dashboard/seed [post]
func (r *Routers) Seed(c echo.Context) error {
	const op = "http.routers.Seed"

	result, err := r.SeedService.Seed(c.Request().Context(), roleFrom(c))
	if err != nil {
		return r.writeError(c, op, err)
	}

	return c.JSON(http.StatusOK, response.SuccessResponse(result))
}
