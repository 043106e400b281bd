package http

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"atelier/internal/authz"
	"atelier/internal/domain/models"
	"atelier/internal/storage"
	"atelier/internal/transport/http/dto"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubValidator struct {
	validate *validator.Validate
}

func (v *stubValidator) Validate(i interface{}) error {
	return v.validate.Struct(i)
}

type fakeProjectService struct {
	listFn   func(ctx context.Context) ([]dto.ProjectResponse, error)
	getFn    func(ctx context.Context, id uuid.UUID) (*dto.ProjectResponse, error)
	createFn func(ctx context.Context, role models.Role, req dto.CreateProjectRequest) (*dto.ProjectResponse, error)
	updateFn func(ctx context.Context, role models.Role, id uuid.UUID, req dto.UpdateProjectRequest) (*dto.ProjectResponse, error)
	deleteFn func(ctx context.Context, role models.Role, id uuid.UUID) error
}

func (f *fakeProjectService) ListProjects(ctx context.Context) ([]dto.ProjectResponse, error) {
	return f.listFn(ctx)
}

func (f *fakeProjectService) GetProjectByID(ctx context.Context, id uuid.UUID) (*dto.ProjectResponse, error) {
	return f.getFn(ctx, id)
}

func (f *fakeProjectService) CreateProject(ctx context.Context, role models.Role, req dto.CreateProjectRequest) (*dto.ProjectResponse, error) {
	return f.createFn(ctx, role, req)
}

func (f *fakeProjectService) UpdateProject(ctx context.Context, role models.Role, id uuid.UUID, req dto.UpdateProjectRequest) (*dto.ProjectResponse, error) {
	return f.updateFn(ctx, role, id, req)
}

func (f *fakeProjectService) DeleteProject(ctx context.Context, role models.Role, id uuid.UUID) error {
	return f.deleteFn(ctx, role, id)
}

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = &stubValidator{validate: validator.New()}
	return e
}

func newTestRouters(project ProjectService) *Routers {
	return &Routers{log: slog.Default(), ProjectService: project}
}

func doRequest(t *testing.T, e *echo.Echo, method, target, body string, role models.Role, handler echo.HandlerFunc, pathParam ...string) *httptest.ResponseRecorder {
	t.Helper()

	var reqBody *strings.Reader
	if body == "" {
		reqBody = strings.NewReader("")
	} else {
		reqBody = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reqBody)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	c := e.NewContext(req, rec)
	if role != models.RoleNone {
		c.Set(RoleContextKey, role)
	}
	if len(pathParam) == 2 {
		c.SetParamNames(pathParam[0])
		c.SetParamValues(pathParam[1])
	}

	require.NoError(t, handler(c))
	return rec
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func TestListProjects_SuccessEnvelope(t *testing.T) {
	e := newTestEcho()
	r := newTestRouters(&fakeProjectService{
		listFn: func(ctx context.Context) ([]dto.ProjectResponse, error) {
			return []dto.ProjectResponse{{Title: "Villa Serenity"}}, nil
		},
	})

	rec := doRequest(t, e, http.MethodGet, "/api/v1/projects", "", models.RoleNone, r.ListProjects)

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeEnvelope(t, rec)
	assert.Equal(t, "success", body["status"])
}

func TestGetProject_NotFound(t *testing.T) {
	e := newTestEcho()
	r := newTestRouters(&fakeProjectService{
		getFn: func(ctx context.Context, id uuid.UUID) (*dto.ProjectResponse, error) {
			return nil, storage.ErrNotFound
		},
	})

	rec := doRequest(t, e, http.MethodGet, "/api/v1/projects/x", "", models.RoleNone, r.GetProject, "id", uuid.NewString())

	assert.Equal(t, http.StatusNotFound, rec.Code)
	body := decodeEnvelope(t, rec)
	assert.Equal(t, "NotFound", body["error"])
}

func TestCreateProject_AnonymousGets401(t *testing.T) {
	e := newTestEcho()
	r := newTestRouters(&fakeProjectService{
		createFn: func(ctx context.Context, role models.Role, req dto.CreateProjectRequest) (*dto.ProjectResponse, error) {
			return nil, authz.ErrUnauthorized
		},
	})

	rec := doRequest(t, e, http.MethodPost, "/api/v1/dashboard/projects", `{"title":"Villa"}`, models.RoleNone, r.CreateProject)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	body := decodeEnvelope(t, rec)
	assert.Equal(t, "Unauthorized", body["error"])
}

func TestDeleteProject_WrongRoleGets403(t *testing.T) {
	e := newTestEcho()
	r := newTestRouters(&fakeProjectService{
		deleteFn: func(ctx context.Context, role models.Role, id uuid.UUID) error {
			return authz.ErrUnauthorized
		},
	})

	rec := doRequest(t, e, http.MethodDelete, "/api/v1/dashboard/projects/x", "", models.RoleAgent, r.DeleteProject, "id", uuid.NewString())

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestCreateProject_StorageFailureHidesDetail(t *testing.T) {
	e := newTestEcho()
	r := newTestRouters(&fakeProjectService{
		createFn: func(ctx context.Context, role models.Role, req dto.CreateProjectRequest) (*dto.ProjectResponse, error) {
			return nil, errors.New("pq: connection refused on host db-primary")
		},
	})

	rec := doRequest(t, e, http.MethodPost, "/api/v1/dashboard/projects", `{"title":"Villa"}`, models.RoleAdmin, r.CreateProject)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	body := decodeEnvelope(t, rec)
	assert.Equal(t, "StorageUnavailable", body["error"])
	assert.NotContains(t, rec.Body.String(), "db-primary")
}

func TestGetProject_BadUUIDReadsAsNotFound(t *testing.T) {
	e := newTestEcho()
	r := newTestRouters(&fakeProjectService{})

	rec := doRequest(t, e, http.MethodGet, "/api/v1/projects/x", "", models.RoleNone, r.GetProject, "id", "not-a-uuid")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	body := decodeEnvelope(t, rec)
	assert.Equal(t, "NotFound", body["error"])
}
