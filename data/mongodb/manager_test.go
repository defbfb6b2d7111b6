package mongodb

import (
	"context"
	"testing"

	"github.com/ncobase/workforce/config"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func TestNewManagerRejectsEmptyConfig(t *testing.T) {
	if _, err := NewManager(context.Background(), nil); err == nil {
		t.Error("NewManager(nil) should fail")
	}
	if _, err := NewManager(context.Background(), &config.MongoDB{}); err == nil {
		t.Error("NewManager(empty uri) should fail")
	}
}

func TestManagerHealth(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("healthy", func(mt *mtest.T) {
		m := NewManagerWithClient(mt.Client, "workforce")
		if m.Database().Name() != "workforce" {
			t.Errorf("Database().Name() = %q", m.Database().Name())
		}
		if m.Collection("employees").Name() != "employees" {
			t.Error("Collection() returned the wrong collection")
		}

		mt.AddMockResponses(mtest.CreateSuccessResponse())
		if err := m.Health(context.Background()); err != nil {
			mt.Errorf("Health() error = %v", err)
		}
	})

	mt.Run("ping fails", func(mt *mtest.T) {
		m := NewManagerWithClient(mt.Client, "workforce")
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{
			Code:    2,
			Name:    "BadValue",
			Message: "ping rejected",
		}))
		if err := m.Health(context.Background()); err == nil {
			mt.Error("Health() should fail when ping errors")
		}
	})

	var nilManager *Manager
	if err := nilManager.Health(context.Background()); err == nil {
		t.Error("nil manager Health() should fail")
	}
	if err := nilManager.Close(context.Background()); err != nil {
		t.Errorf("nil manager Close() error = %v", err)
	}
}
