package persistence

import (
	"context"
	"errors"

	"anime-hub/domain/model"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

const userCollection = "users"

// UserRepository stores user accounts in MongoDB.
type UserRepository struct {
	db *mongo.Database
}

func NewUserRepository(client *mongo.Client, dbName string) *UserRepository {
	return &UserRepository{db: client.Database(dbName)}
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	err := r.db.Collection(userCollection).FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) Create(ctx context.Context, user *model.User) error {
	if user.ID.IsZero() {
		user.ID = bson.NewObjectID()
	}
	_, err := r.db.Collection(userCollection).InsertOne(ctx, user)
	return err
}
