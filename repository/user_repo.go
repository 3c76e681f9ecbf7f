package repository

import (
	"context"
	"strings"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/mazikuben/construction-be/types"
)

type UserRepo interface {
	CreateUser(ctx context.Context, user *types.User) (string, error)
	GetUser(ctx context.Context, id string) (*types.User, error)
	GetUserByUsername(ctx context.Context, username string) (*types.User, error)
	GetUserByEmail(ctx context.Context, email string) (*types.User, error)
	ListUsers(ctx context.Context) ([]*types.User, error)
	UpdateUser(ctx context.Context, id string, user *types.User) error
	DeleteUser(ctx context.Context, id string) error
}

type userRepo struct {
	collection *mongo.Collection
}

func NewUserRepo(collection *mongo.Collection) UserRepo {
	return &userRepo{
		collection: collection,
	}
}

func (r *userRepo) CreateUser(ctx context.Context, user *types.User) (string, error) {
	id := bson.NewObjectID().Hex()
	user.ID = id
	_, err := r.collection.InsertOne(ctx, user)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return "", dupKeyError(err)
		}
		return "", err
	}
	return id, nil
}

// dupKeyError maps a unique-index violation to the matching conflict
// sentinel. The server names the violated index in the error message,
// username_1 or email_1 under the default index naming.
func dupKeyError(err error) error {
	if strings.Contains(err.Error(), "email_1") {
		return types.ErrDuplicateEmail
	}
	return types.ErrDuplicateUsername
}

func (r *userRepo) GetUser(ctx context.Context, id string) (*types.User, error) {
	if _, err := objectID(id); err != nil {
		return nil, err
	}
	var user types.User
	if err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&user); err != nil {
		return nil, mapFindErr(err)
	}
	return &user, nil
}

func (r *userRepo) GetUserByUsername(ctx context.Context, username string) (*types.User, error) {
	var user types.User
	if err := r.collection.FindOne(ctx, bson.M{"username": username}).Decode(&user); err != nil {
		return nil, mapFindErr(err)
	}
	return &user, nil
}

func (r *userRepo) GetUserByEmail(ctx context.Context, email string) (*types.User, error) {
	var user types.User
	if err := r.collection.FindOne(ctx, bson.M{"email": email}).Decode(&user); err != nil {
		return nil, mapFindErr(err)
	}
	return &user, nil
}

func (r *userRepo) ListUsers(ctx context.Context) ([]*types.User, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var users []*types.User
	for cursor.Next(ctx) {
		var user types.User
		if err := cursor.Decode(&user); err != nil {
			return nil, err
		}
		users = append(users, &user)
	}
	return users, cursor.Err()
}

func (r *userRepo) UpdateUser(ctx context.Context, id string, user *types.User) error {
	if _, err := objectID(id); err != nil {
		return err
	}
	_, err := r.collection.ReplaceOne(ctx, bson.M{"_id": id}, user)
	if mongo.IsDuplicateKeyError(err) {
		return dupKeyError(err)
	}
	return err
}

func (r *userRepo) DeleteUser(ctx context.Context, id string) error {
	if _, err := objectID(id); err != nil {
		return err
	}
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return types.ErrNotFound
	}
	return nil
}
