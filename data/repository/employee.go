// Package repository provides MongoDB-backed employee and user persistence.
package repository

import (
	"context"
	"errors"
	"time"

	"github.com/ncobase/workforce/ecode"
	"github.com/ncobase/workforce/logging/logger"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const employeeCollection = "employees"

var errEmployeeNotFound = ecode.NotExist("Employee")

// Employee represents an employee record.
type Employee struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	FirstName     string             `bson:"first_name" json:"first_name"`
	LastName      string             `bson:"last_name" json:"last_name"`
	Email         string             `bson:"email" json:"email"`
	Position      string             `bson:"position" json:"position"`
	Salary        float64            `bson:"salary" json:"salary"`
	DateOfJoining time.Time          `bson:"date_of_joining" json:"date_of_joining"`
	Department    string             `bson:"department" json:"department"`
	CreatedAt     time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt     time.Time          `bson:"updated_at" json:"updated_at"`
}

// EmployeeRepository defines the interface for employee data operations.
// Lookups by a malformed id report not found.
type EmployeeRepository interface {
	List(ctx context.Context) ([]*Employee, error)
	Create(ctx context.Context, employee *Employee) (*Employee, error)
	FindByID(ctx context.Context, id string) (*Employee, error)
	// Update sets only the given fields, keyed by stored field name.
	Update(ctx context.Context, id string, fields map[string]any) (*Employee, error)
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}

type employeeRepository struct {
	collection *mongo.Collection
	logger     *logger.Logger
}

// NewEmployeeRepository creates a new employee repository instance.
func NewEmployeeRepository(db *mongo.Database, logger *logger.Logger) EmployeeRepository {
	return &employeeRepository{
		collection: db.Collection(employeeCollection),
		logger:     logger,
	}
}

// List retrieves every employee. An empty collection yields an empty slice.
func (r *employeeRepository) List(ctx context.Context) ([]*Employee, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		r.logger.Error(ctx, "failed to list employees", "error", err)
		return nil, ecode.Internal("employee.list", err)
	}
	defer cursor.Close(ctx)

	employees := make([]*Employee, 0)
	if err := cursor.All(ctx, &employees); err != nil {
		r.logger.Error(ctx, "failed to decode employees", "error", err)
		return nil, ecode.Internal("employee.list", err)
	}

	return employees, nil
}

// Create inserts a new employee and assigns its id.
func (r *employeeRepository) Create(ctx context.Context, employee *Employee) (*Employee, error) {
	now := time.Now().UTC()
	employee.ID = primitive.NewObjectID()
	employee.CreatedAt = now
	employee.UpdatedAt = now

	if _, err := r.collection.InsertOne(ctx, employee); err != nil {
		r.logger.Error(ctx, "failed to create employee", "error", err)
		return nil, ecode.Internal("employee.create", err)
	}

	r.logger.Info(ctx, "employee created", "id", employee.ID.Hex())
	return employee, nil
}

// FindByID retrieves an employee by ID.
func (r *employeeRepository) FindByID(ctx context.Context, id string) (*Employee, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ecode.NotFoundErr("employee.find", errEmployeeNotFound)
	}

	var employee Employee
	if err := r.collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&employee); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ecode.NotFoundErr("employee.find", errEmployeeNotFound)
		}
		r.logger.Error(ctx, "failed to find employee", "id", id, "error", err)
		return nil, ecode.Internal("employee.find", err)
	}

	return &employee, nil
}

// Update merges fields into the stored employee and returns the result.
// With no fields it only checks that the employee exists.
func (r *employeeRepository) Update(ctx context.Context, id string, fields map[string]any) (*Employee, error) {
	if len(fields) == 0 {
		return r.FindByID(ctx, id)
	}

	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ecode.NotFoundErr("employee.update", errEmployeeNotFound)
	}

	set := bson.M{"updated_at": time.Now().UTC()}
	for k, v := range fields {
		switch k {
		case "_id", "created_at", "updated_at":
			continue
		}
		set[k] = v
	}

	result := r.collection.FindOneAndUpdate(
		ctx,
		bson.M{"_id": objectID},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	)
	if err := result.Err(); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ecode.NotFoundErr("employee.update", errEmployeeNotFound)
		}
		r.logger.Error(ctx, "failed to update employee", "id", id, "error", err)
		return nil, ecode.Internal("employee.update", err)
	}

	var updated Employee
	if err := result.Decode(&updated); err != nil {
		return nil, ecode.Internal("employee.update", err)
	}

	r.logger.Info(ctx, "employee updated", "id", id)
	return &updated, nil
}

// Delete deletes an employee by ID.
func (r *employeeRepository) Delete(ctx context.Context, id string) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ecode.NotFoundErr("employee.delete", errEmployeeNotFound)
	}

	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		r.logger.Error(ctx, "failed to delete employee", "id", id, "error", err)
		return ecode.Internal("employee.delete", err)
	}
	if result.DeletedCount == 0 {
		return ecode.NotFoundErr("employee.delete", errEmployeeNotFound)
	}

	r.logger.Info(ctx, "employee deleted", "id", id)
	return nil
}

// Count returns the total number of employees.
func (r *employeeRepository) Count(ctx context.Context) (int64, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		r.logger.Error(ctx, "failed to count employees", "error", err)
		return 0, ecode.Internal("employee.count", err)
	}
	return count, nil
}
