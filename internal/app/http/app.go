package httpapp

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"atelier/internal/lib/jwt"
	custommw "atelier/internal/middleware"
	"atelier/internal/revalidate"
	httprouters "atelier/internal/transport/http"

	"github.com/arl/statsviz"
	"github.com/go-playground/validator/v10"
	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	echoSwagger "github.com/swaggo/echo-swagger"
)

type CustomValidator struct {
	validator *validator.Validate
}

func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

type Server struct {
	m           *http.ServeMux
	log         *slog.Logger
	e           *echo.Echo
	routers     *httprouters.Routers
	reval       *revalidate.Revalidator
	host        string
	port        string
	tokenSecret string
}

func New(log *slog.Logger, sessionSecret, tokenSecret, host, port string, routers *httprouters.Routers, reval *revalidate.Revalidator) *Server {
	e := echo.New()
	e.HideBanner = true

	validate := validator.New()
	e.Validator = &CustomValidator{validator: validate}

	e.Use(session.Middleware(sessions.NewCookieStore([]byte(sessionSecret))))

	e.Use(middleware.CORS())
	e.Use(middleware.Recover())

	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:      true,
		LogStatus:   true,
		LogRemoteIP: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			log.Info("request",
				slog.String("URI", v.URI),
				slog.Int("status", v.Status),
				slog.String("remote ip", v.RemoteIP),
			)

			return nil
		},
	}))

	e.Use(custommw.PrometheusMetrics)

	mux := http.NewServeMux()
	err := statsviz.Register(mux)
	if err != nil {
		log.Info("Statsviz start with error", slog.Any("error:", err.Error()))
	}

	return &Server{
		m:           mux,
		log:         log,
		e:           e,
		routers:     routers,
		reval:       reval,
		host:        host,
		port:        port,
		tokenSecret: tokenSecret,
	}
}

func (s *Server) MustRun() {
	const op = "http.Server.MustRun"

	s.log.Info(op, slog.String("Start", "server"))

	if err := s.Start(); err != nil {
		panic(err)
	}
}

func (s *Server) Start() error {
	const op = "http.Server.Start"

	if err := s.e.Start(fmt.Sprintf(":%s", s.port)); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("%s server stopped: %w", op, err)
	}

	return nil
}

func (s *Server) Stop() error {
	const op = "http.Server.Stop"

	optCtx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()

	s.log.Info("stopping", op, "http server")

	if err := s.e.Shutdown(optCtx); err != nil {
		return fmt.Errorf("%s could not shutdown server gracefuly: %w", op, err)
	}

	return nil
}

// roleMiddleware resolves the caller's role once per request. A missing
// session or a bad token simply yields no role; the guard layer decides
// what that means per operation.
func (s *Server) roleMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		sess, err := session.Get(httprouters.SessionName, c)
		if err != nil {
			return next(c)
		}

		token, ok := sess.Values["role_token"].(string)
		if !ok || token == "" {
			return next(c)
		}

		role, err := jwt.VerifyRole(token, s.tokenSecret)
		if err != nil {
			s.log.Debug("rejected role token", slog.String("remote ip", c.RealIP()))
			return next(c)
		}

		c.Set(httprouters.RoleContextKey, role)
		return next(c)
	}
}

func (s *Server) BuildRouters() {
	api := s.e.Group("/api/v1", s.roleMiddleware)
	{
		api.POST("/login", s.routers.Login)
		api.POST("/logout", s.routers.Logout)

		debug := s.e.Group("/debug")
		{
			debug.GET("/statsviz/", echo.WrapHandler(s.m))
			debug.GET("/statsviz/*", echo.WrapHandler(s.m))
		}

		swagger := s.e.Group("/swag")
		{
			swagger.GET("/swagger/*", echoSwagger.WrapHandler)
		}

		s.e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

		public := api.Group("", custommw.PageCache(s.reval))
		{
			public.GET("/projects", s.routers.ListProjects)
			public.GET("/projects/:id", s.routers.GetProject)
			public.GET("/services", s.routers.ListServices)
			public.GET("/services/:id", s.routers.GetService)
			public.GET("/blogs", s.routers.ListPosts)
			public.GET("/blogs/:slug", s.routers.GetPostBySlug)
		}

		dashboard := api.Group("/dashboard")
		{
			dashboard.POST("/projects", s.routers.CreateProject)
			dashboard.PATCH("/projects/:id", s.routers.UpdateProject)
			dashboard.DELETE("/projects/:id", s.routers.DeleteProject)

			dashboard.POST("/services", s.routers.CreateService)
			dashboard.PATCH("/services/:id", s.routers.UpdateService)
			dashboard.DELETE("/services/:id", s.routers.DeleteService)

			dashboard.POST("/blogs", s.routers.CreatePost)
			dashboard.PATCH("/blogs/:id", s.routers.UpdatePost)
			dashboard.DELETE("/blogs/:id", s.routers.DeletePost)

			dashboard.GET("/users", s.routers.ListUsers)
			dashboard.GET("/users/:id", s.routers.GetUser)
			dashboard.POST("/users", s.routers.CreateUser)
			dashboard.PATCH("/users/:id", s.routers.UpdateUser)
			dashboard.DELETE("/users/:id", s.routers.DeleteUser)

			dashboard.POST("/seed", s.routers.Seed)
		}
	}
}
