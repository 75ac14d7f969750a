package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Identity 登入身分；與 User 分開存放，User 以相同 _id 對應
type Identity struct {
	ID           string    `json:"uid" bson:"_id"`
	Email        string    `json:"email" bson:"email"`
	PasswordHash string    `json:"-" bson:"passwordHash"` // argon2id PHC 字串
	CreatedAt    time.Time `json:"createdAt" bson:"createdAt"`
}

var IdentityIndexes = []mongo.IndexModel{
	{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetName("uniq_email").SetUnique(true),
	},
	{
		Keys:    bson.D{{Key: "createdAt", Value: 1}},
		Options: options.Index().SetName("idx_createdAt"),
	},
}
