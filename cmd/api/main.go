package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	chirouter "github.com/ccheever/cho-upload/internal/adapters/handlers/http/chi"
	uploadhandler "github.com/ccheever/cho-upload/internal/adapters/handlers/http/chi/v1/upload"
	"github.com/ccheever/cho-upload/internal/adapters/storage/disk"
	"github.com/ccheever/cho-upload/internal/adapters/watcher/fsnotify"
	"github.com/ccheever/cho-upload/internal/config"
	"github.com/ccheever/cho-upload/internal/core/service/notify"
	"github.com/ccheever/cho-upload/internal/core/service/upload"
)

func main() {

	ctx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
	)
	defer stop()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	//storage
	diskAdapter, err := disk.NewAdapter(cfg.Uploads.Dir, logger)
	if err != nil {
		logger.Error("failed to init uploads directory", "error", err)
		os.Exit(1)
	}
	logger.Info("uploads directory ready", "dir", diskAdapter.Dir())

	//services
	uploadService := upload.NewUploadService(diskAdapter, diskAdapter.Dir(), logger)
	notifier := notify.NewNotifier(cfg.Watch.Debounce, logger)
	defer notifier.Close()

	//filesystem watch feeds the debounced notifier; a watch failure is
	//a degraded mode, not a startup failure
	watch, err := fsnotify.NewWatcher(logger)
	if err != nil {
		logger.Warn("filesystem watcher unavailable, live refresh limited to uploads", "error", err)
	} else {
		defer watch.Close()
		if err := watch.Watch(ctx, diskAdapter.Dir(), notifier.Signal); err != nil {
			logger.Warn("failed to watch uploads directory", "error", err)
		}
	}

	//http
	handler := uploadhandler.NewUploadHandlerV1(uploadService, notifier, cfg.Uploads.MaxMultipartBytes, logger)
	router := chirouter.NewRouter(logger, handler)
	server := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler: router,
		// Uploads over slow links and open event streams both take a
		// long time; keep idle handling generous and no read deadline.
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       90 * time.Second,
	}

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		logger.Info("starting server", "addr", server.Addr, "dir", diskAdapter.Dir())
		servErr := server.ListenAndServe()
		if servErr != nil && !errors.Is(servErr, http.ErrServerClosed) {
			logger.Error("failed to start server", "error", servErr)
			stop()
		}
	}()

	//wait for context cancel
	<-ctx.Done()
	logger.Info("gracefully shutting down app")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("failed to shutdown server", "error", err)
	} else {
		logger.Info("server gracefully shutdown complete")
	}

	wg.Wait()
	logger.Info("app shutdown complete")

}
