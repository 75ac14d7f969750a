package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Shift 共用排班表，三個班別各自列出 uid
type Shift struct {
	ID           primitive.ObjectID `json:"id" bson:"_id"`
	StartDate    time.Time          `json:"startDate" bson:"startDate"`
	EndDate      time.Time          `json:"endDate" bson:"endDate"`
	MorningShift []string           `json:"morningShift" bson:"morningShift"`
	LateShift    []string           `json:"lateShift" bson:"lateShift"`
	NightShift   []string           `json:"nightShift" bson:"nightShift"`
	CreatedAt    time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt    time.Time          `json:"updatedAt" bson:"updatedAt"`
}

var ShiftIndexes = []mongo.IndexModel{
	{
		Keys:    bson.D{{Key: "startDate", Value: 1}, {Key: "endDate", Value: 1}},
		Options: options.Index().SetName("uniq_range").SetUnique(true),
	},
}
