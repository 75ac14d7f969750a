package model

import (
	"stundenmanager/internal/core"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Absence 休假與病假共用的文件結構，分別存放於 vacations / illnesses
type Absence struct {
	ID        primitive.ObjectID  `json:"id" bson:"_id"`
	UID       string              `json:"uid" bson:"uid"`
	StartDate time.Time           `json:"startDate" bson:"startDate"`
	EndDate   time.Time           `json:"endDate" bson:"endDate"`
	Approval  core.ApprovalStatus `json:"approval" bson:"approval"`
	CreatedAt time.Time           `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time           `json:"updatedAt" bson:"updatedAt"`
}

var AbsenceIndexes = []mongo.IndexModel{
	{
		Keys:    bson.D{{Key: "uid", Value: 1}, {Key: "startDate", Value: 1}, {Key: "endDate", Value: 1}},
		Options: options.Index().SetName("uniq_uid_range").SetUnique(true),
	},
	{
		Keys:    bson.D{{Key: "approval", Value: 1}},
		Options: options.Index().SetName("idx_approval"),
	},
}
