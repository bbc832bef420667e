package services

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/nayeem-muttakim/pet-adoption-server/internal/models"
)

// UserServiceProvider defines the interface for user services.
type UserServiceProvider interface {
	ListUsers(ctx context.Context) ([]models.User, error)
	Register(ctx context.Context, user models.User) (models.InsertResult, error)
	IsAdmin(ctx context.Context, email string) (bool, error)
	MakeAdmin(ctx context.Context, id string) (models.UpdateResult, error)
}

// UserService provides registration and role management on top of the users
// collection.
type UserService struct {
	users *mongo.Collection
}

// NewUserService creates a new UserService.
func NewUserService(db *mongo.Database) *UserService {
	return &UserService{users: db.Collection("users")}
}

// ListUsers retrieves every registered user.
func (s *UserService) ListUsers(ctx context.Context) ([]models.User, error) {
	cursor, err := s.users.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	var users []models.User
	if err := cursor.All(ctx, &users); err != nil {
		return nil, err
	}
	if users == nil {
		users = []models.User{}
	}
	return users, nil
}

// Register inserts the user unless the email is already taken. The existence
// check and the insert are two separate operations, so two concurrent
// registrations of the same new email can both slip through; that window is
// accepted.
func (s *UserService) Register(ctx context.Context, user models.User) (models.InsertResult, error) {
	err := s.users.FindOne(ctx, bson.M{"email": user.Email}).Err()
	if err == nil {
		return models.InsertResult{Acknowledged: true, Message: "user already exists"}, nil
	}
	if err != mongo.ErrNoDocuments {
		return models.InsertResult{}, err
	}

	if user.Role == "" {
		user.Role = models.RoleMember
	}
	result, err := s.users.InsertOne(ctx, user)
	if err != nil {
		return models.InsertResult{}, err
	}
	return models.InsertResult{Acknowledged: true, InsertedID: result.InsertedID}, nil
}

// IsAdmin reports whether the user stored under email holds the admin role. An
// unknown email is simply not an admin. The role is re-read on every call so a
// revocation takes effect on the next request.
func (s *UserService) IsAdmin(ctx context.Context, email string) (bool, error) {
	var user models.User
	err := s.users.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return user.IsAdmin(), nil
}

// MakeAdmin sets the admin role on the user with the given id. Setting it
// again on an admin succeeds and changes nothing.
func (s *UserService) MakeAdmin(ctx context.Context, id string) (models.UpdateResult, error) {
	oid, err := objectID(id)
	if err != nil {
		return models.UpdateResult{}, err
	}

	update := bson.M{"$set": bson.M{"role": models.RoleAdmin}}
	result, err := s.users.UpdateOne(ctx, bson.M{"_id": oid}, update)
	if err != nil {
		return models.UpdateResult{}, err
	}
	return models.UpdateResult{
		Acknowledged:  true,
		MatchedCount:  result.MatchedCount,
		ModifiedCount: result.ModifiedCount,
	}, nil
}
