package repository

import (
	"context"
	"fmt"
	"time"

	"stundenmanager/internal/core"
	client "stundenmanager/internal/database/client"
	"stundenmanager/internal/database/mongodb/model"
	"stundenmanager/utils/password"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// IdentityRepository 身分提供者：email + password → uid
type IdentityRepository struct {
	collection *mongo.Collection
	params     password.Params
}

func NewIdentityRepository(mongoClient *client.MongoClient) *IdentityRepository {
	return newIdentityRepository(mongoClient.Collection(core.MongoCollectionIdentities), password.DefaultParams)
}

func newIdentityRepository(collection *mongo.Collection, params password.Params) *IdentityRepository {
	return &IdentityRepository{collection: collection, params: params}
}

// CreateIdentity 產生 uid 並儲存密碼雜湊；email 重複時回傳 ErrDuplicateKey
func (repository *IdentityRepository) CreateIdentity(
	contextValue context.Context,
	email string,
	plainPassword string,
) (_ string, returnedError error) {

	hash, hashError := password.Hash(plainPassword, repository.params)
	if hashError != nil {
		return "", fmt.Errorf("hash password: %w", hashError)
	}
	identity := model.Identity{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	}
	if _, insertError := repository.collection.InsertOne(contextValue, identity); insertError != nil {
		return "", wrapWriteError("insert identity", insertError)
	}
	return identity.ID, nil
}

// DeleteIdentity：單文件刪除，不存在不視為錯誤
func (repository *IdentityRepository) DeleteIdentity(
	contextValue context.Context,
	uid string,
) (returnedError error) {
	if _, returnedError = repository.collection.DeleteOne(contextValue, bson.M{"_id": uid}); returnedError != nil {
		return fmt.Errorf("delete identity: %w", returnedError)
	}
	return nil
}

// ListOrphans 找出建立時間早於 before 且沒有對應 User 文件的 identity
func (repository *IdentityRepository) ListOrphans(
	contextValue context.Context,
	before time.Time,
	limit int64,
) (_ []*model.Identity, returnedError error) {

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"createdAt": bson.M{"$lt": before.UTC()}}}},
		{{Key: "$lookup", Value: bson.M{
			"from":         string(core.MongoCollectionUsers),
			"localField":   "_id",
			"foreignField": "_id",
			"as":           "user",
		}}},
		{{Key: "$match", Value: bson.M{"user": bson.M{"$size": 0}}}},
		{{Key: "$project", Value: bson.M{"user": 0, "passwordHash": 0}}},
	}
	if limit > 0 {
		pipeline = append(pipeline, bson.D{{Key: "$limit", Value: limit}})
	}

	cursor, aggregateError := repository.collection.Aggregate(contextValue, pipeline)
	if aggregateError != nil {
		return nil, fmt.Errorf("aggregate orphan identities: %w", aggregateError)
	}
	defer cursor.Close(contextValue)

	var identities []*model.Identity
	if returnedError = cursor.All(contextValue, &identities); returnedError != nil {
		return nil, fmt.Errorf("decode orphan identities: %w", returnedError)
	}
	return identities, nil
}
