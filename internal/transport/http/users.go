package http

import (
	"log/slog"
	"net/http"

	"atelier/internal/lib/logger/sl"
	"atelier/internal/transport/http/dto"
	"atelier/internal/transport/http/dto/request"
	"atelier/internal/transport/http/dto/response"

	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
)

// SessionName is the cookie holding the signed role token.
const (
	SessionName     = "session"
	sessionTokenKey = "role_token"
)

// Login godoc
// @Summary Authenticate
// @Description Verifies credentials and stores a signed role token in the session cookie
// @Tags auth
// @Accept json
// @Produce json
// @Param request body request.LoginRequest true "Credentials"
// @Success 200 {object} response.Response{data=dto.UserResponse}
// @Failure 400 {object} response.ErrorResponse
// @Failure 401 {object} response.ErrorResponse
// @Failure 503 {object} response.ErrorResponse
// @Router /api/v1/login [post]
func (r *Routers) Login(c echo.Context) error {
	const op = "http.routers.Login"
	log := r.log.With(slog.String("op", op))

	var req request.LoginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, response.ValidationFailed("invalid request format"))
	}

	if err := c.Validate(req); err != nil {
		log.Warn("invalid login payload", slog.String("username", req.Username))
		return c.JSON(http.StatusBadRequest, response.ValidationFailed(err.Error()))
	}

	token, user, err := r.UserService.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		return r.writeError(c, op, err)
	}

	sess, _ := session.Get(SessionName, c)
	sess.Options.HttpOnly = true
	sess.Options.SameSite = http.SameSiteLaxMode
	sess.Values[sessionTokenKey] = token
	if err := sess.Save(c.Request(), c.Response()); err != nil {
		log.Error("failed to save session", sl.Err(err))
		return c.JSON(http.StatusServiceUnavailable, response.StorageUnavailable())
	}

	return c.JSON(http.StatusOK, response.SuccessResponse(user))
}

// Logout godoc
// @Summary End the session
// @Description Drops the role token from the session cookie
// @Tags auth
// @Produce json
// @Success 200 {object} response.Response
// @Router /api/v1/logout [post]
func (r *Routers) Logout(c echo.Context) error {
	const op = "http.routers.Logout"
	log := r.log.With(slog.String("op", op))

	sess, _ := session.Get(SessionName, c)
	delete(sess.Values, sessionTokenKey)
	sess.Options.MaxAge = -1
	if err := sess.Save(c.Request(), c.Response()); err != nil {
		log.Error("failed to clear session", sl.Err(err))
	}

	return c.JSON(http.StatusOK, response.Response{Status: "success", Message: "logged out"})
}

// ListUsers godoc
// @Summary List users
// @Description Super-admin only. Responses never include password hashes
// @Tags users
// @Produce json
// @Success 200 {object} response.Response{data=[]dto.UserResponse}
// @Failure 401 {object} response.ErrorResponse
// @Failure 403 {object} response.ErrorResponse
// @Failure 503 {object} response.ErrorResponse
// @Security ApiKeyAuth
// @Router /api/v1/dashboard/users [get]
func (r *Routers) ListUsers(c echo.Context) error {
	const op = "http.routers.ListUsers"

	users, err := r.UserService.ListUsers(c.Request().Context(), roleFrom(c))
	if err != nil {
		return r.writeError(c, op, err)
	}

	return c.JSON(http.StatusOK, response.SuccessResponse(users))
}

// GetUser godoc
// @Summary Get a user by id
// @Description Super-admin only
// @Tags users
// @Produce json
// @Param id path string true "User UUID" format(uuid)
// @Success 200 {object} response.Response{data=dto.UserResponse}
// @Failure 401 {object} response.ErrorResponse
// @Failure 403 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Failure 503 {object} response.ErrorResponse
// @Security ApiKeyAuth
// @Router /api/v1/dashboard/users/{id} [get]
func (r *Routers) GetUser(c echo.Context) error {
	const op = "http.routers.GetUser"

	id, err := parseIDParam(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, response.ValidationFailed("invalid user id"))
	}

	user, err := r.UserService.GetUserByID(c.Request().Context(), roleFrom(c), id)
	if err != nil {
		return r.writeError(c, op, err)
	}

	return c.JSON(http.StatusOK, response.SuccessResponse(user))
}

// CreateUser godoc
// @Summary Create a user
// @Description Super-admin only. Duplicate usernames are rejected with a conflict
// @Tags users
// @Accept json
// @Produce json
// @Param request body dto.CreateUserRequest true "User payload"
// @Success 201 {object} response.Response{data=dto.UserResponse}
// @Failure 400 {object} response.ErrorResponse
// @Failure 401 {object} response.ErrorResponse
// @Failure 403 {object} response.ErrorResponse
// @Failure 409 {object} response.ErrorResponse
// @Failure 503 {object} response.ErrorResponse
// @Security ApiKeyAuth
// @Router /api/v1/dashboard/users [post]
func (r *Routers) CreateUser(c echo.Context) error {
	const op = "http.routers.CreateUser"
	log := r.log.With(slog.String("op", op))

	var req dto.CreateUserRequest
	if err := c.Bind(&req); err != nil {
		log.Warn("failed to bind user payload", sl.Err(err))
		return c.JSON(http.StatusBadRequest, response.ValidationFailed("invalid request format"))
	}

	if err := c.Validate(req); err != nil {
		return c.JSON(http.StatusBadRequest, response.ValidationFailed(err.Error()))
	}

	user, err := r.UserService.CreateUser(c.Request().Context(), roleFrom(c), req)
	if err != nil {
		return r.writeError(c, op, err)
	}

	return c.JSON(http.StatusCreated, response.SuccessResponse(user))
}

// UpdateUser godoc
// @Summary Update a user
// @Description Super-admin only. Partial update; a supplied password is re-hashed
// @Tags users
// @Accept json
// @Produce json
// @Param id path string true "User UUID" format(uuid)
// @Param request body dto.UpdateUserRequest true "Fields to update"
// @Success 200 {object} response.Response{data=dto.UserResponse}
// @Failure 400 {object} response.ErrorResponse
// @Failure 401 {object} response.ErrorResponse
// @Failure 403 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Failure 503 {object} response.ErrorResponse
// @Security ApiKeyAuth
// @Router /api/v1/dashboard/users/{id} [patch]
func (r *Routers) UpdateUser(c echo.Context) error {
	const op = "http.routers.UpdateUser"

	id, err := parseIDParam(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, response.ValidationFailed("invalid user id"))
	}

	var req dto.UpdateUserRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, response.ValidationFailed("invalid request format"))
	}

	if err := c.Validate(req); err != nil {
		return c.JSON(http.StatusBadRequest, response.ValidationFailed(err.Error()))
	}

	user, err := r.UserService.UpdateUser(c.Request().Context(), roleFrom(c), id, req)
	if err != nil {
		return r.writeError(c, op, err)
	}

	return c.JSON(http.StatusOK, response.SuccessResponse(user))
}

// DeleteUser godoc
// @Summary Delete a user
// @Description Super-admin only
// @Tags users
// @Param id path string true "User UUID" format(uuid)
// @Success 204
// @Failure 401 {object} response.ErrorResponse
// @Failure 403 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Failure 503 {object} response.ErrorResponse
// @Security ApiKeyAuth
// @Router /api/v1/dashboard/users/{id} [delete]
func (r *Routers) DeleteUser(c echo.Context) error {
	const op = "http.routers.DeleteUser"

	id, err := parseIDParam(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, response.ValidationFailed("invalid user id"))
	}

	if err := r.UserService.DeleteUser(c.Request().Context(), roleFrom(c), id); err != nil {
		return r.writeError(c, op, err)
	}

	return c.NoContent(http.StatusNoContent)
}
