package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	"github.com/njprem/ProjectBoard_APP_BackEnd/internal/config"
	"github.com/njprem/ProjectBoard_APP_BackEnd/internal/logging"
	"github.com/njprem/ProjectBoard_APP_BackEnd/internal/media"
	"github.com/njprem/ProjectBoard_APP_BackEnd/internal/metrics"
	"github.com/njprem/ProjectBoard_APP_BackEnd/internal/repository/memory"
	miniostore "github.com/njprem/ProjectBoard_APP_BackEnd/internal/repository/minio"
	"github.com/njprem/ProjectBoard_APP_BackEnd/internal/repository/postgres"
	"github.com/njprem/ProjectBoard_APP_BackEnd/internal/service"
	transport "github.com/njprem/ProjectBoard_APP_BackEnd/internal/transport/http"
)

// Build information, set via ldflags.
var (
	Version = "dev"
	Commit  = "unknown"
)

func main() {
	app := &cli.App{
		Name:    "projectboard-api",
		Usage:   "ProjectBoard REST backend",
		Version: fmt.Sprintf("%s (commit: %s)", Version, Commit),
		Commands: []*cli.Command{
			serveCommand(),
			migrateCommand(),
		},
		Action: serve,
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal().Err(err).Msg("projectboard-api exited")
	}
}

func serveCommand() *cli.Command {
	return &cli.Command{
		Name:   "serve",
		Usage:  "Run the HTTP API (default)",
		Action: serve,
	}
}

func migrateCommand() *cli.Command {
	return &cli.Command{
		Name:  "migrate",
		Usage: "Create the database tables if they do not exist",
		Action: func(c *cli.Context) error {
			cfg, logger, closer, err := bootstrap()
			if err != nil {
				return err
			}
			defer closer.Close()

			db, err := postgres.New(cfg.DatabaseURL)
			if err != nil {
				return fmt.Errorf("connect database: %w", err)
			}
			defer db.Close()

			if err := postgres.Migrate(c.Context, db); err != nil {
				return err
			}
			logger.Info().Msg("schema applied")
			return nil
		},
	}
}

func bootstrap() (config.Config, zerolog.Logger, io.Closer, error) {
	cfg, err := config.Load()
	if err != nil {
		return config.Config{}, zerolog.Nop(), nil, err
	}
	logger, closer, err := logging.New(logging.Config{
		Level:        cfg.LogLevel,
		Pretty:       cfg.LogPretty,
		LogstashAddr: cfg.LogstashTCPAddr,
	})
	if err != nil {
		return config.Config{}, zerolog.Nop(), nil, fmt.Errorf("init logging: %w", err)
	}
	return cfg, logger, closer, nil
}

func serve(c *cli.Context) error {
	cfg, logger, closer, err := bootstrap()
	if err != nil {
		return err
	}
	defer closer.Close()

	db, err := postgres.New(cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer db.Close()

	m := metrics.New()

	sessions := service.NewSessionService(memory.NewSessionStore(), service.WithSessionMetrics(m))
	sweeper, err := service.NewSessionSweeper(sessions, cfg.SessionSweepSchedule, logger)
	if err != nil {
		return err
	}

	storyboardCfg := service.StoryboardServiceConfig{
		Inspector: media.NewInspector(cfg.StoryboardImageMaxBytes, cfg.StoryboardImageMaxDimension),
		Logger:    logger,
	}
	if cfg.StorageEnabled() {
		client, err := miniostore.NewClient(cfg.MinIOEndpoint, cfg.MinIOAccessKey, cfg.MinIOSecretKey, cfg.MinIOUseSSL)
		if err != nil {
			return fmt.Errorf("init minio: %w", err)
		}
		storage := miniostore.NewStorage(client, cfg.MinIOPublicURL)
		if err := storage.EnsureBucket(c.Context, cfg.MinIOBucketStoryboards); err != nil {
			return err
		}
		storyboardCfg.Storage = storage
		storyboardCfg.Bucket = cfg.MinIOBucketStoryboards
	} else {
		logger.Warn().Msg("MINIO_ENDPOINT not set; storyboard image upload disabled")
	}

	users := service.NewUserService(postgres.NewUserRepo(db))
	projects := service.NewProjectService(postgres.NewProjectRepo(db))
	storyboards := service.NewStoryboardService(postgres.NewStoryboardRepo(db), storyboardCfg)
	tags := service.NewTagService(postgres.NewTagRepo(db))
	taskLogs := service.NewTaskLogService(postgres.NewTaskLogRepo(db))

	e := transport.NewRouter(transport.RouterConfig{
		AllowOrigins: cfg.AllowOrigins,
		Logger:       logger,
		Metrics:      m,
	})
	resp := transport.NewResponder(logger, m)
	requireSession := transport.RequireSession(sessions)

	transport.RegisterAuth(e, users, sessions, resp, transport.AuthConfig{
		TTLMinutes:   cfg.SessionTTLMinutes,
		SecureCookie: cfg.SessionCookieSecure,
	})
	transport.RegisterUsers(e, users, resp, requireSession)
	transport.RegisterProjects(e, projects, resp, requireSession)
	transport.RegisterStoryboards(e, storyboards, resp, requireSession)
	transport.RegisterTags(e, tags, resp, requireSession)
	transport.RegisterTaskLogs(e, taskLogs, resp, requireSession)
	transport.RegisterSwagger(e)

	ctx, stop := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
	defer stop()

	sweeper.Start()

	errCh := make(chan error, 1)
	go func() {
		logger.Info().Str("port", cfg.Port).Msg("http server listening")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case <-ctx.Done():
	case err := <-errCh:
		if err != nil {
			sweeper.Stop(context.Background())
			return fmt.Errorf("http server: %w", err)
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	logger.Info().Msg("shutting down")
	sweeper.Stop(shutdownCtx)
	if err := e.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http shutdown: %w", err)
	}
	return nil
}
