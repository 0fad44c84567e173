// Command server runs the questionnaire HTTP API.
//
// @title                       Questionnaire API
// @version                     1.0
// @description                 Users, questions, answers and reports.
// @BasePath                    /
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/surveykit/questionnaire/internal/api"
	"github.com/surveykit/questionnaire/internal/api/handler"
	"github.com/surveykit/questionnaire/internal/core/service"
	"github.com/surveykit/questionnaire/internal/infrastructure/db/redis"
	"github.com/surveykit/questionnaire/internal/pkg/config"
	"github.com/surveykit/questionnaire/pkg/logger"
)

const shutdownTimeout = 15 * time.Second

func main() {
	migrateOnly := flag.Bool("migrate-only", false, "apply the schema and exit")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, *migrateOnly); err != nil {
		log := logger.Get()
		log.Error().Err(err).Msg("server stopped")
		os.Exit(1)
	}
}

func run(ctx context.Context, migrateOnly bool) error {
	cfg, err := config.Load(ctx)
	if err != nil {
		logger.Init(logger.Options{Service: "questionnaire"})
		return err
	}

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.IsDevelopment(),
		Service: "questionnaire",
	})

	store, err := openStorage(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := store.close(closeCtx); err != nil {
			log.Warn().Err(err).Msg("failed to close storage")
		}
	}()

	if err := store.migrate(ctx); err != nil {
		return err
	}
	log.Info().Str("driver", cfg.StorageDriver).Msg("schema ready")
	if migrateOnly {
		return nil
	}

	health := map[string]handler.PingFunc{store.name: store.ping}

	var cache service.QuestionCache
	if cfg.Redis.Addr != "" {
		rdb, err := redis.Connect(ctx, redis.Config{
			Addr:      cfg.Redis.Addr,
			Password:  cfg.Redis.Password,
			DB:        cfg.Redis.DB,
			PoolSize:  cfg.Redis.PoolSize,
			OpTimeout: cfg.Redis.OpTimeout,
		})
		if err != nil {
			return err
		}
		defer rdb.Close()

		cache = redis.NewQuestionCache(rdb, cfg.Redis.CacheTTL)
		health["redis"] = func(ctx context.Context) error { return rdb.Ping(ctx).Err() }
		log.Info().Str("addr", cfg.Redis.Addr).Msg("question cache enabled")
	}

	users := service.NewUserService(store.users, cfg.JWTSecret, cfg.TokenTTL, logger.For("users"))
	questions := service.NewQuestionService(store.questions, cache, logger.For("questions"))
	answers := service.NewAnswerService(store.answers, questions, logger.For("answers"))
	reports := service.NewReportService(store.reports, store.answers, logger.For("reports"))

	e := api.NewRouter(api.Dependencies{
		Users:     users,
		Questions: questions,
		Answers:   answers,
		Reports:   reports,
		Health:    health,
		JWTSecret: cfg.JWTSecret,
		Log:       logger.For("http"),
	})

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("port", cfg.Port).Msg("listening")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}
