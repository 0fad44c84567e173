package main

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/surveykit/questionnaire/internal/api/handler"
	"github.com/surveykit/questionnaire/internal/core/ports"
	"github.com/surveykit/questionnaire/internal/infrastructure/db/gormstore"
	mongostore "github.com/surveykit/questionnaire/internal/infrastructure/db/mongo"
	"github.com/surveykit/questionnaire/internal/pkg/config"
)

// storage bundles the repositories of one backend with its lifecycle hooks.
type storage struct {
	users     ports.UserRepository
	questions ports.QuestionRepository
	answers   ports.AnswerRepository
	reports   ports.ReportRepository

	name    string
	migrate func(ctx context.Context) error
	ping    handler.PingFunc
	close   func(ctx context.Context) error
}

func openStorage(ctx context.Context, cfg *config.Config) (*storage, error) {
	switch cfg.StorageDriver {
	case config.DriverMongo:
		client, db, err := mongostore.Connect(ctx, mongostore.Config{
			URI:      cfg.Mongo.URI,
			Database: cfg.Mongo.Database,
		})
		if err != nil {
			return nil, err
		}
		return &storage{
			users:     mongostore.NewUserRepository(db),
			questions: mongostore.NewQuestionRepository(db),
			answers:   mongostore.NewAnswerRepository(db),
			reports:   mongostore.NewReportRepository(db),
			name:      "mongodb",
			migrate:   func(ctx context.Context) error { return mongostore.EnsureIndexes(ctx, db) },
			ping:      func(ctx context.Context) error { return client.Ping(ctx, nil) },
			close:     client.Disconnect,
		}, nil

	case config.DriverPostgres:
		db, err := gormstore.Open(ctx, gormstore.Config{
			URL:          cfg.Postgres.URL,
			MaxOpenConns: cfg.Postgres.MaxOpenConns,
			MaxIdleConns: cfg.Postgres.MaxIdleConns,
		})
		if err != nil {
			return nil, err
		}
		return gormStorage(db, "postgres"), nil

	case config.DriverSQLite:
		db, err := gormstore.OpenSQLite(ctx, cfg.SQLite.DSN)
		if err != nil {
			return nil, err
		}
		return gormStorage(db, "sqlite"), nil
	}
	return nil, fmt.Errorf("unknown storage driver %q", cfg.StorageDriver)
}

func gormStorage(db *gorm.DB, name string) *storage {
	return &storage{
		users:     gormstore.NewUserRepository(db),
		questions: gormstore.NewQuestionRepository(db),
		answers:   gormstore.NewAnswerRepository(db),
		reports:   gormstore.NewReportRepository(db),
		name:      name,
		migrate:   func(ctx context.Context) error { return gormstore.Migrate(ctx, db) },
		ping:      func(ctx context.Context) error { return gormstore.Ping(ctx, db) },
		close:     func(context.Context) error { return gormstore.Close(db) },
	}
}
