// Package memory holds map-backed repositories with the same contract as the
// MongoDB ones. They back the service and handler tests.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/ncobase/workforce/data/repository"
	"github.com/ncobase/workforce/ecode"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// EmployeeRepository is an in-memory repository.EmployeeRepository.
type EmployeeRepository struct {
	mu    sync.RWMutex
	order []primitive.ObjectID
	items map[primitive.ObjectID]repository.Employee

	// Err, when set, is returned by every operation.
	Err error
}

// NewEmployeeRepository creates an empty repository.
func NewEmployeeRepository() *EmployeeRepository {
	return &EmployeeRepository{items: make(map[primitive.ObjectID]repository.Employee)}
}

var _ repository.EmployeeRepository = (*EmployeeRepository)(nil)

func (r *EmployeeRepository) List(_ context.Context) ([]*repository.Employee, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.Err != nil {
		return nil, r.Err
	}
	out := make([]*repository.Employee, 0, len(r.order))
	for _, id := range r.order {
		e := r.items[id]
		out = append(out, &e)
	}
	return out, nil
}

func (r *EmployeeRepository) Create(_ context.Context, employee *repository.Employee) (*repository.Employee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}
	now := time.Now().UTC()
	employee.ID = primitive.NewObjectID()
	employee.CreatedAt = now
	employee.UpdatedAt = now
	r.items[employee.ID] = *employee
	r.order = append(r.order, employee.ID)
	return employee, nil
}

func (r *EmployeeRepository) FindByID(_ context.Context, id string) (*repository.Employee, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.Err != nil {
		return nil, r.Err
	}
	oid, ok := r.lookup(id)
	if !ok {
		return nil, ecode.NotFoundErr("employee.find", ecode.NotExist("Employee"))
	}
	e := r.items[oid]
	return &e, nil
}

func (r *EmployeeRepository) Update(_ context.Context, id string, fields map[string]any) (*repository.Employee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}
	oid, ok := r.lookup(id)
	if !ok {
		return nil, ecode.NotFoundErr("employee.update", ecode.NotExist("Employee"))
	}
	if len(fields) == 0 {
		e := r.items[oid]
		return &e, nil
	}

	e := r.items[oid]
	for k, v := range fields {
		switch k {
		case "first_name":
			e.FirstName, _ = v.(string)
		case "last_name":
			e.LastName, _ = v.(string)
		case "email":
			e.Email, _ = v.(string)
		case "position":
			e.Position, _ = v.(string)
		case "department":
			e.Department, _ = v.(string)
		case "salary":
			e.Salary, _ = v.(float64)
		case "date_of_joining":
			e.DateOfJoining, _ = v.(time.Time)
		}
	}
	e.UpdatedAt = time.Now().UTC()
	r.items[oid] = e
	return &e, nil
}

func (r *EmployeeRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	oid, ok := r.lookup(id)
	if !ok {
		return ecode.NotFoundErr("employee.delete", ecode.NotExist("Employee"))
	}
	delete(r.items, oid)
	for i, v := range r.order {
		if v == oid {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

func (r *EmployeeRepository) Count(_ context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.Err != nil {
		return 0, r.Err
	}
	return int64(len(r.items)), nil
}

func (r *EmployeeRepository) lookup(id string) (primitive.ObjectID, bool) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return oid, false
	}
	_, ok := r.items[oid]
	return oid, ok
}

// UserRepository is an in-memory repository.UserRepository. Email is unique.
type UserRepository struct {
	mu    sync.RWMutex
	items map[primitive.ObjectID]repository.User

	// Err, when set, is returned by every operation.
	Err error
}

// NewUserRepository creates an empty repository.
func NewUserRepository() *UserRepository {
	return &UserRepository{items: make(map[primitive.ObjectID]repository.User)}
}

var _ repository.UserRepository = (*UserRepository)(nil)

func (r *UserRepository) Create(_ context.Context, user *repository.User) (*repository.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}
	for _, u := range r.items {
		if u.Email == user.Email {
			return nil, ecode.ConflictErr("user.create", ecode.AlreadyExist("User"))
		}
	}
	user.ID = primitive.NewObjectID()
	user.CreatedAt = time.Now().UTC()
	r.items[user.ID] = *user
	return user, nil
}

func (r *UserRepository) FindByEmail(_ context.Context, email string) (*repository.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.Err != nil {
		return nil, r.Err
	}
	for _, u := range r.items {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, ecode.NotFoundErr("user.find_by_email", ecode.NotExist("User"))
}

func (r *UserRepository) Count(_ context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.Err != nil {
		return 0, r.Err
	}
	return int64(len(r.items)), nil
}
