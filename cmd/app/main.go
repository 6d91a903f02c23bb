package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net"
	"net/http"
	"os"
	"strconv"
	"time"

	"deliverytracking/cmd"
	httpin "deliverytracking/internal/adapters/in/http"
	"deliverytracking/internal/adapters/out/postgres"
	"deliverytracking/internal/jobs"

	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"gorm.io/gorm"
)

const poolMonitorInterval = 30 * time.Second

func main() {
	configFile := flag.String("config", os.Getenv("CONFIG_FILE"), "path to an optional YAML config file")
	flag.Parse()

	cfg, err := cmd.LoadConfig(*configFile)
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	fx.New(
		fx.Supply(cfg),
		fx.Provide(
			newLogger,
			newDatabase,
			cmd.NewCompositionRoot,
			newEcho,
			newJobManager,
		),
		fx.WithLogger(func(logger *slog.Logger) fxevent.Logger {
			return &fxevent.SlogLogger{Logger: logger}
		}),
		fx.Invoke(startWebServer, startJobs),
	).Run()
}

func newLogger(cfg cmd.Config) (*slog.Logger, error) {
	logger, err := cmd.NewLogger(cfg.Log, os.Stdout)
	if err != nil {
		return nil, err
	}
	slog.SetDefault(logger)
	return logger, nil
}

func newDatabase(lc fx.Lifecycle, cfg cmd.Config, logger *slog.Logger) (*gorm.DB, error) {
	db, err := postgres.Open(cfg.DB, logger)
	if err != nil {
		return nil, err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	monitorCtx, stopMonitor := context.WithCancel(context.Background())
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := sqlDB.PingContext(ctx); err != nil {
				return err
			}
			if cfg.DB.AutoMigrate {
				if err := postgres.Migrate(db.WithContext(ctx)); err != nil {
					return err
				}
				logger.Info("Database schema migrated")
			}
			go postgres.MonitorPool(monitorCtx, logger, sqlDB, poolMonitorInterval)
			return nil
		},
		OnStop: func(context.Context) error {
			stopMonitor()
			return sqlDB.Close()
		},
	})

	return db, nil
}

func newEcho(root *cmd.CompositionRoot, logger *slog.Logger) (*echo.Echo, error) {
	return httpin.NewEcho(httpin.NewServer(root.Handlers()), root.HealthCheck(), logger)
}

func newJobManager(root *cmd.CompositionRoot) *jobs.JobManager {
	return root.CreateJobManager()
}

func startWebServer(lc fx.Lifecycle, e *echo.Echo, cfg cmd.Config, logger *slog.Logger, shutdowner fx.Shutdowner) {
	address := net.JoinHostPort("0.0.0.0", strconv.Itoa(cfg.HTTP.Port))

	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			logger.Info("Starting HTTP server", slog.String("address", address))
			go func() {
				if err := e.Start(address); err != nil && !errors.Is(err, http.ErrServerClosed) {
					logger.Error("HTTP server failed", slog.Any("error", err))
					_ = shutdowner.Shutdown(fx.ExitCode(1))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			shutdownCtx, cancel := context.WithTimeout(ctx, cfg.HTTP.ShutdownTimeout)
			defer cancel()

			logger.Info("Shutting down HTTP server")
			return e.Shutdown(shutdownCtx)
		},
	})
}

func startJobs(lc fx.Lifecycle, jm *jobs.JobManager) {
	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			return jm.StartAll()
		},
		OnStop: func(context.Context) error {
			jm.StopAll()
			return nil
		},
	})
}
