package app

import (
	"context"
	"fmt"
	"log/slog"

	httpapp "atelier/internal/app/http"
	"atelier/internal/config"
	"atelier/internal/lib/logger/sl"
	"atelier/internal/repository"
	"atelier/internal/revalidate"
	blogservice "atelier/internal/services/blog_service"
	projectservice "atelier/internal/services/project_service"
	seedservice "atelier/internal/services/seed_service"
	serviceservice "atelier/internal/services/service_service"
	userservice "atelier/internal/services/user_service"
	"atelier/internal/storage/postgresql"
	redisstorage "atelier/internal/storage/redis"
	httprouters "atelier/internal/transport/http"

	"github.com/redis/go-redis/v9"
)

type App struct {
	HTTPServer *httpapp.Server
	storage    *postgresql.Storage
}

func New(ctx context.Context, log *slog.Logger, cfg *config.Config) (*App, error) {
	const op = "app.New"

	storage := postgresql.New(cfg.DSN())

	if err := storage.Migrate(cfg.MigrationsPath); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	pool, err := storage.Pool(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	repo := repository.NewRepository(pool)

	var rdb redis.Cmdable
	if cfg.Redis.RedisAddr != "" {
		client := redisstorage.NewClient(cfg.Redis.RedisAddr, cfg.Redis.RedisPassword, cfg.Redis.RedisDB)
		if err := client.HealthCheck(ctx); err != nil {
			log.Warn("redis unreachable, shared page keys disabled", sl.Err(err))
		} else {
			rdb = client.Client
		}
	}

	reval := revalidate.New(log, rdb)

	projectSvc := projectservice.NewProjectService(log, repo.Project, reval)
	serviceSvc := serviceservice.NewServiceService(log, repo.Service, reval)
	blogSvc := blogservice.NewBlogService(log, repo.Blog, reval)
	userSvc := userservice.NewUserService(log, repo.User, reval, cfg.SessionSecret, cfg.TokenTTL)
	seedSvc := seedservice.NewSeedService(log, repo.Project, repo.Service, repo.Blog, repo.User, reval)

	routers := httprouters.NewRouter(log, projectSvc, serviceSvc, blogSvc, userSvc, seedSvc)

	server := httpapp.New(log, cfg.SessionSecret, cfg.SessionSecret, cfg.HTTP.Host, cfg.HTTP.Port, routers, reval)
	server.BuildRouters()

	return &App{
		HTTPServer: server,
		storage:    storage,
	}, nil
}

func (a *App) Stop() error {
	if err := a.HTTPServer.Stop(); err != nil {
		return err
	}

	a.storage.Stop()
	return nil
}
