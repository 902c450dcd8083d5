package main

import (
	"context"
	"log"
	"time"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"
	"golang.org/x/text/language"

	apiHandler "github.com/dailytasks/backend/api/handler"
	"github.com/dailytasks/backend/internal/config"
	"github.com/dailytasks/backend/internal/infrastructure/monitor"
	"github.com/dailytasks/backend/internal/middleware"
	"github.com/dailytasks/backend/internal/router"
	"github.com/dailytasks/backend/internal/services"
	"github.com/dailytasks/backend/internal/services/lifecycle"
	"github.com/dailytasks/backend/internal/state"
	"github.com/dailytasks/backend/pipeline"
	"github.com/dailytasks/backend/pkg/httpcontext"
	"github.com/dailytasks/backend/pkg/logger"
	boltstore "github.com/dailytasks/backend/repository/bolt"
	boardUC "github.com/dailytasks/backend/usecase/board"
	tasksUC "github.com/dailytasks/backend/usecase/tasks"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	zapLogger, err := logger.New(logger.Config{
		Level:    cfg.Logger.Level,
		Encoding: cfg.Logger.Encoding,
	})
	if err != nil {
		log.Fatalf("logger error: %v", err)
	}
	defer zapLogger.Sync()

	appCtx, cancel := context.WithCancel(context.Background())
	defer cancel()

	manager := lifecycle.New(cfg.Context.ShutdownTimeout, zapLogger)
	manager.Listen(cancel)

	store, err := boltstore.Open(cfg.Store.Path, zapLogger)
	if err != nil {
		zapLogger.Fatal("failed to open task store", zap.Error(err))
	}
	manager.Register("store", func(ctx context.Context) error {
		return store.Close()
	})

	tasks, err := store.LoadTasks(appCtx)
	if err != nil {
		zapLogger.Fatal("failed to load tasks", zap.Error(err))
	}
	lists, err := store.LoadLists(appCtx)
	if err != nil {
		zapLogger.Fatal("failed to load lists", zap.Error(err))
	}

	container := state.NewContainer()
	container.ReplaceAll(tasks, lists)
	zapLogger.Info("state loaded", zap.Int("tasks", len(tasks)), zap.Int("lists", len(lists)))

	mirror := services.NewMirror(store, container, zapLogger, services.MirrorConfig{
		Interval: cfg.Mirror.FlushInterval,
	})
	mirror.Start()
	manager.Register("mirror", func(ctx context.Context) error {
		return mirror.Stop(ctx)
	})

	mon := monitor.New(store, mirror, cfg.Mirror.MonitorInterval, zapLogger)
	mon.Start()
	manager.Register("monitor", func(ctx context.Context) error {
		mon.Stop()
		return nil
	})

	cal := pipeline.Calendar{
		Location:  loadLocation(cfg.Calendar.Timezone, zapLogger),
		WeekStart: time.Weekday(cfg.Calendar.WeekStart),
	}
	pipe := pipeline.New(cal, parseLanguage(cfg.Calendar.Language, zapLogger))

	boardUseCase := boardUC.New(container, pipe, zapLogger)
	tasksUseCase := tasksUC.New(container, zapLogger)

	ctxAdapter := httpcontext.NewAdapter(cfg.Context.RequestTimeout)

	handlers := router.Handlers{
		Board:  apiHandler.NewBoardHandler(boardUseCase, ctxAdapter, zapLogger),
		Task:   apiHandler.NewTaskHandler(tasksUseCase, boardUseCase, ctxAdapter, zapLogger),
		List:   apiHandler.NewListHandler(tasksUseCase, boardUseCase, ctxAdapter, zapLogger),
		Health: apiHandler.NewHealthHandler(mon, ctxAdapter, zapLogger),
	}

	r := router.New(handlers)
	handler := middleware.Chain(r.Handler,
		middleware.RequestID,
		middleware.AccessLog(zapLogger),
	)

	server := &fasthttp.Server{
		Handler:      handler,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  cfg.HTTP.IdleTimeout,
		Name:         cfg.AppName,
	}

	go func() {
		zapLogger.Info("server started", zap.String("address", cfg.Address()))
		if err := server.ListenAndServe(cfg.Address()); err != nil {
			zapLogger.Fatal("server crashed", zap.Error(err))
		}
	}()

	manager.Register("http_server", func(ctx context.Context) error {
		return server.Shutdown()
	})

	<-appCtx.Done()

	if err := manager.Shutdown(context.Background()); err != nil {
		zapLogger.Error("graceful shutdown error", zap.Error(err))
	}
}

func loadLocation(name string, logger *zap.Logger) *time.Location {
	if name == "" {
		return time.Local
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		logger.Warn("invalid timezone, using local", zap.String("timezone", name), zap.Error(err))
		return time.Local
	}
	return loc
}

func parseLanguage(tag string, logger *zap.Logger) language.Tag {
	parsed, err := language.Parse(tag)
	if err != nil {
		logger.Warn("invalid sort language, using English", zap.String("language", tag), zap.Error(err))
		return language.English
	}
	return parsed
}
