// Package mongodb owns the MongoDB client used by the repositories.
package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ncobase/workforce/config"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const defaultConnectTimeout = 10 * time.Second

// Manager wraps a connected client and the application database.
type Manager struct {
	client *mongo.Client
	db     *mongo.Database
}

// NewManager connects to MongoDB and verifies the connection with a ping.
func NewManager(ctx context.Context, conf *config.MongoDB) (*Manager, error) {
	if conf == nil || conf.URI == "" {
		return nil, errors.New("mongodb configuration is nil or empty")
	}

	timeout := conf.ConnectTimeout
	if timeout <= 0 {
		timeout = defaultConnectTimeout
	}

	clientOptions := options.Client().
		ApplyURI(conf.URI).
		SetConnectTimeout(timeout).
		SetServerSelectionTimeout(timeout)
	if conf.MaxPoolSize > 0 {
		clientOptions.SetMaxPoolSize(conf.MaxPoolSize)
	}

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("mongodb connect error: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("mongodb ping error: %w", err)
	}

	return NewManagerWithClient(client, conf.Database), nil
}

// NewManagerWithClient wraps an already connected client.
func NewManagerWithClient(client *mongo.Client, database string) *Manager {
	return &Manager{
		client: client,
		db:     client.Database(database),
	}
}

// Client returns the underlying client.
func (m *Manager) Client() *mongo.Client {
	if m == nil {
		return nil
	}
	return m.client
}

// Database returns the application database.
func (m *Manager) Database() *mongo.Database {
	if m == nil {
		return nil
	}
	return m.db
}

// Collection returns a collection of the application database.
func (m *Manager) Collection(name string) *mongo.Collection {
	return m.db.Collection(name)
}

// Health pings the primary.
func (m *Manager) Health(ctx context.Context) error {
	if m == nil || m.client == nil {
		return errors.New("mongodb manager not available")
	}
	if err := m.client.Ping(ctx, readpref.Primary()); err != nil {
		return fmt.Errorf("mongodb health check failed: %w", err)
	}
	return nil
}

// Close disconnects the client.
func (m *Manager) Close(ctx context.Context) error {
	if m == nil || m.client == nil {
		return nil
	}
	if err := m.client.Disconnect(ctx); err != nil {
		return fmt.Errorf("error closing mongodb connection: %w", err)
	}
	return nil
}
