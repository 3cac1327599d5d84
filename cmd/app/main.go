package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"proofparcel/cmd"
	"proofparcel/internal/adapters/out/checkpoint"
	"proofparcel/internal/adapters/out/kafka"
	"proofparcel/internal/adapters/out/postgres"
	"proofparcel/internal/adapters/out/postgres/checkpointrepo"
	"proofparcel/internal/core/application/usecases/commands"
	"proofparcel/internal/core/ports"

	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
)

const (
	shutdownTimeout   = 10 * time.Second
	checkpointsRetain = 5
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	configs, err := cmd.LoadConfig(os.Args[1:])
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	if err = run(configs, logger); err != nil {
		logger.Error("service stopped with error", "error", err)
		os.Exit(1)
	}
}

func run(configs cmd.Config, logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := checkpointStore(ctx, configs)
	if err != nil {
		return err
	}

	publisher, closePublisher, err := notificationPublisher(configs, logger)
	if err != nil {
		return err
	}
	defer closePublisher()

	app, err := cmd.NewCompositionRoot(configs, store, publisher, logger)
	if err != nil {
		return fmt.Errorf("build composition root: %w", err)
	}

	restore := app.CreateRestoreCheckpointCommandHandler()
	found, err := restore.Handle(ctx, commands.NewRestoreCheckpointCommand())
	if err != nil {
		return fmt.Errorf("restore checkpoint: %w", err)
	}
	logger.Info("state loaded", "from_checkpoint", found, "backend", configs.CheckpointBackend)

	jobManager := app.CreateJobManager()
	if err = jobManager.StartAll(); err != nil {
		return err
	}

	e, err := startWebServer(ctx, app, configs.HTTPPort, stop, logger)
	if err != nil {
		jobManager.StopAll()
		return err
	}

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err = e.Shutdown(shutdownCtx); err != nil {
		logger.Error("failed to stop web server", "error", err)
	}
	jobManager.StopAll()

	save := app.CreateSaveCheckpointCommandHandler()
	if err = save.Handle(shutdownCtx, commands.NewSaveCheckpointCommand()); err != nil {
		return fmt.Errorf("save checkpoint: %w", err)
	}
	logger.Info("checkpoint saved")
	return nil
}

func checkpointStore(ctx context.Context, configs cmd.Config) (ports.CheckpointStore, error) {
	if configs.CheckpointBackend == cmd.CheckpointBackendFile {
		return checkpoint.NewFileStore(configs.CheckpointFile), nil
	}

	dsn := postgres.DSN(configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)
	if err := postgres.Migrate(ctx, dsn); err != nil {
		return nil, fmt.Errorf("migrate checkpoint schema: %w", err)
	}
	db, err := postgres.Open(dsn)
	if err != nil {
		return nil, err
	}
	return checkpointrepo.NewGormCheckpointStore(db, checkpointsRetain), nil
}

func notificationPublisher(configs cmd.Config, logger *slog.Logger) (ports.NotificationPublisher, func(), error) {
	if configs.KafkaHost == "" {
		return kafka.NopPublisher{}, func() {}, nil
	}

	publisher, err := kafka.NewNotificationPublisher(
		strings.Split(configs.KafkaHost, ","), configs.KafkaNotificationsTopic, logger)
	if err != nil {
		return nil, nil, fmt.Errorf("connect kafka: %w", err)
	}
	return publisher, func() {
		if err := publisher.Close(); err != nil {
			logger.Error("failed to close kafka producer", "error", err)
		}
	}, nil
}

// startWebServer serves in the background; a listener failure calls onFail so
// the process still saves its checkpoint before exiting.
func startWebServer(
	ctx context.Context,
	app *cmd.CompositionRoot,
	port string,
	onFail func(),
	logger *slog.Logger,
) (*echo.Echo, error) {
	server, err := app.CreateHTTPServer(ctx)
	if err != nil {
		return nil, fmt.Errorf("build http server: %w", err)
	}

	e := echo.New()
	e.HideBanner = true
	e.Logger.SetLevel(log.INFO)
	server.Register(e)

	go func() {
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", port)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("web server failed", "error", err)
			onFail()
		}
	}()
	return e, nil
}
