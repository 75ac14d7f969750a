package model

import (
	"stundenmanager/internal/core"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type User struct {
	ID        string    `json:"uid" bson:"_id"`             // 與 Identity 相同的 uid
	Name      string    `json:"name" bson:"name"`           // 名
	Surname   string    `json:"surname" bson:"surname"`     // 姓
	Birthday  string    `json:"birthday" bson:"birthday"`   // DD.MM.YYYY
	Street    string    `json:"street" bson:"street"`       // 街道
	ZipCode   string    `json:"zipCode" bson:"zipCode"`     // 郵遞區號
	City      string    `json:"city" bson:"city"`           // 城市
	Role      core.Role `json:"role" bson:"role"`           // 使用者角色
	CreatedAt time.Time `json:"createdAt" bson:"createdAt"` // 建立時間
	UpdatedAt time.Time `json:"updatedAt" bson:"updatedAt"` // 更新時間
}

var UserIndexes = []mongo.IndexModel{
	{
		Keys:    bson.D{{Key: "createdAt", Value: -1}},
		Options: options.Index().SetName("idx_createdAt_desc"),
	},
}
