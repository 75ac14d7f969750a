package repository

import (
	"context"
	"errors"
	"time"

	"stundenmanager/internal/core"
	client "stundenmanager/internal/database/client"
	"stundenmanager/internal/database/mongodb/model"

	"go.mongodb.org/mongo-driver/mongo"
)

type UserRepository struct {
	collection *mongo.Collection
}

func NewUserRepository(mongoClient *client.MongoClient) *UserRepository {
	return newUserRepository(mongoClient.Collection(core.MongoCollectionUsers))
}

func newUserRepository(collection *mongo.Collection) *UserRepository {
	return &UserRepository{collection: collection}
}

// Create：以 identity uid 作為 _id 插入
func (repository *UserRepository) Create(
	contextValue context.Context,
	user *model.User,
) (_ *model.User, returnedError error) {

	if user.ID == "" {
		return nil, errors.New("user id is required")
	}
	nowUTC := time.Now().UTC()
	user.CreatedAt = nowUTC
	user.UpdatedAt = nowUTC

	if _, insertError := repository.collection.InsertOne(contextValue, user); insertError != nil {
		return nil, wrapWriteError("insert user", insertError)
	}
	return user, nil
}
