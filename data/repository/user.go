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

const userCollection = "users"

var (
	errUserNotFound = ecode.NotExist("User")
	errUserExists   = ecode.AlreadyExist("User")
)

// User represents a user account. Password holds the bcrypt hash.
type User struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Username  string             `bson:"username" json:"username"`
	Email     string             `bson:"email" json:"email"`
	Password  string             `bson:"password" json:"-"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
}

// UserRepository defines the interface for user data operations.
type UserRepository interface {
	Create(ctx context.Context, user *User) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	Count(ctx context.Context) (int64, error)
}

// IndexEnsurer is implemented by repositories that own collection indexes.
type IndexEnsurer interface {
	EnsureIndexes(ctx context.Context) error
}

type userRepository struct {
	collection *mongo.Collection
	logger     *logger.Logger
}

// NewUserRepository creates a new user repository instance.
func NewUserRepository(db *mongo.Database, logger *logger.Logger) UserRepository {
	return &userRepository{
		collection: db.Collection(userCollection),
		logger:     logger,
	}
}

// EnsureIndexes creates the unique index on email.
func (r *userRepository) EnsureIndexes(ctx context.Context) error {
	indexModel := mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("uniq_email"),
	}
	if _, err := r.collection.Indexes().CreateOne(ctx, indexModel); err != nil {
		return ecode.Internal("user.ensure_indexes", err)
	}
	return nil
}

// Create creates a new user. A duplicate email is a conflict.
func (r *userRepository) Create(ctx context.Context, user *User) (*User, error) {
	user.ID = primitive.NewObjectID()
	user.CreatedAt = time.Now().UTC()

	if _, err := r.collection.InsertOne(ctx, user); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, ecode.ConflictErr("user.create", errUserExists)
		}
		r.logger.Error(ctx, "failed to create user", "error", err)
		return nil, ecode.Internal("user.create", err)
	}

	r.logger.Info(ctx, "user created", "id", user.ID.Hex())
	return user, nil
}

// FindByEmail retrieves a user by email.
func (r *userRepository) FindByEmail(ctx context.Context, email string) (*User, error) {
	return r.findOne(ctx, "user.find_by_email", bson.M{"email": email})
}

func (r *userRepository) findOne(ctx context.Context, op string, filter bson.M) (*User, error) {
	var user User
	if err := r.collection.FindOne(ctx, filter).Decode(&user); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ecode.NotFoundErr(op, errUserNotFound)
		}
		r.logger.Error(ctx, "failed to find user", "op", op, "error", err)
		return nil, ecode.Internal(op, err)
	}
	return &user, nil
}

// Count returns the total number of users.
func (r *userRepository) Count(ctx context.Context) (int64, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		r.logger.Error(ctx, "failed to count users", "error", err)
		return 0, ecode.Internal("user.count", err)
	}
	return count, nil
}
