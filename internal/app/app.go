// Package app wires the domain services over one MongoDB client. The
// registry CLI and any embedding application build their object graph here
// so every writer shares the same codec registry and the configured
// transaction retry policy.
package app

import (
	"context"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/wellnecity/edm/internal/config"
	"github.com/wellnecity/edm/internal/domain/benefits"
	"github.com/wellnecity/edm/internal/domain/healthrecord"
	"github.com/wellnecity/edm/internal/domain/org"
	"github.com/wellnecity/edm/internal/domain/person"
	"github.com/wellnecity/edm/internal/domain/portfolio"
	"github.com/wellnecity/edm/internal/integrity"
	"github.com/wellnecity/edm/internal/platform/db"
	"github.com/wellnecity/edm/internal/registry"
	"github.com/wellnecity/edm/internal/schema"
)

type App struct {
	Client       *mongo.Client
	Database     *mongo.Database
	Registry     *schema.Registry
	Org          *org.Service
	Portfolio    *portfolio.Service
	Person       *person.Service
	Benefits     *benefits.Service
	HealthRecord *healthrecord.Service
}

// New connects to the store and builds every domain service over a shared
// transactor carrying cfg's retry budget.
func New(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*App, error) {
	client, err := db.Connect(ctx, cfg.MongoURL)
	if err != nil {
		return nil, err
	}
	database := client.Database(cfg.MongoDatabase)
	tx := db.NewTransactor(client, cfg.RetryPolicy())
	return &App{
		Client:       client,
		Database:     database,
		Registry:     registry.New(),
		Org:          org.NewService(org.NewMongoRepository(database), tx, log),
		Portfolio:    portfolio.NewService(portfolio.NewMongoRepository(database), tx, log),
		Person:       person.NewService(person.NewMongoRepository(database), tx, log),
		Benefits:     benefits.NewService(benefits.NewMongoRepository(database), tx, log),
		HealthRecord: healthrecord.NewService(healthrecord.NewMongoRepository(database), tx, log),
	}, nil
}

// Checker builds an integrity checker reading the app's database.
func (a *App) Checker(mode integrity.Mode, log zerolog.Logger) *integrity.Checker {
	return integrity.NewChecker(a.Registry, integrity.NewMongoSource(a.Database), mode, log)
}

func (a *App) Close() {
	db.Disconnect(a.Client)
}
