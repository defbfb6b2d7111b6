// Package data manages the MongoDB connection and the repositories built on it.
package data

import (
	"context"
	"fmt"
	"time"

	"github.com/ncobase/workforce/config"
	"github.com/ncobase/workforce/data/mongodb"
	"github.com/ncobase/workforce/data/repository"
	"github.com/ncobase/workforce/logging/logger"
)

// Data encapsulates all data layer dependencies.
type Data struct {
	manager *mongodb.Manager
	logger  *logger.Logger

	EmployeeRepo repository.EmployeeRepository
	UserRepo     repository.UserRepository
}

// New connects to MongoDB and builds the repositories.
func New(ctx context.Context, conf *config.MongoDB, logger *logger.Logger) (*Data, func(), error) {
	manager, err := mongodb.NewManager(ctx, conf)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	logger.Info(ctx, "Connected to MongoDB successfully", "database", conf.Database)

	d := NewWithManager(manager, logger)
	cleanup := func() {
		if err := d.Close(); err != nil {
			logger.Error(context.Background(), "failed to close MongoDB connection", "error", err)
		}
	}
	return d, cleanup, nil
}

// NewWithManager builds the data layer on an existing manager.
func NewWithManager(manager *mongodb.Manager, logger *logger.Logger) *Data {
	db := manager.Database()
	return &Data{
		manager:      manager,
		logger:       logger,
		EmployeeRepo: repository.NewEmployeeRepository(db, logger),
		UserRepo:     repository.NewUserRepository(db, logger),
	}
}

// EnsureIndexes creates the indexes the repositories rely on.
func (d *Data) EnsureIndexes(ctx context.Context) error {
	for _, repo := range []any{d.EmployeeRepo, d.UserRepo} {
		ie, ok := repo.(repository.IndexEnsurer)
		if !ok {
			continue
		}
		if err := ie.EnsureIndexes(ctx); err != nil {
			return err
		}
	}
	return nil
}

// Ping checks the database connection.
func (d *Data) Ping(ctx context.Context) error {
	return d.manager.Health(ctx)
}

// Health reports the state of the data layer.
func (d *Data) Health(ctx context.Context) map[string]any {
	start := time.Now()
	mongo := map[string]any{"status": "healthy"}
	status := "healthy"

	if err := d.Ping(ctx); err != nil {
		mongo["status"] = "unhealthy"
		mongo["error"] = err.Error()
		status = "degraded"
	}
	mongo["latency"] = time.Since(start).String()

	return map[string]any{
		"status":    status,
		"timestamp": time.Now().UTC(),
		"services":  map[string]any{"mongodb": mongo},
	}
}

// Close closes the MongoDB connection.
func (d *Data) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return d.manager.Close(ctx)
}
