package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Break struct {
	BreakStart time.Time `json:"breakStart" bson:"breakStart"`
	BreakEnd   time.Time `json:"breakEnd" bson:"breakEnd"`
}

// Session 一段工作時間，breaks 依追加順序排列
type Session struct {
	ID        primitive.ObjectID `json:"id" bson:"_id"`
	UID       string             `json:"uid" bson:"uid"`
	StartTime time.Time          `json:"startTime" bson:"startTime"`
	EndTime   time.Time          `json:"endTime" bson:"endTime"`
	Breaks    []Break            `json:"breaks" bson:"breaks"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time          `json:"updatedAt" bson:"updatedAt"`
}

var SessionIndexes = []mongo.IndexModel{
	{ // 重疊查詢：uid 等值 + startTime 範圍
		Keys:    bson.D{{Key: "uid", Value: 1}, {Key: "startTime", Value: 1}},
		Options: options.Index().SetName("idx_uid_startTime"),
	},
	{
		Keys:    bson.D{{Key: "uid", Value: 1}, {Key: "startTime", Value: 1}, {Key: "endTime", Value: 1}},
		Options: options.Index().SetName("uniq_uid_range").SetUnique(true),
	},
}
