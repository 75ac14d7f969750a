package repository

import (
	"context"
	"fmt"
	"time"

	"stundenmanager/internal/core"
	client "stundenmanager/internal/database/client"
	"stundenmanager/internal/database/mongodb/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type ShiftRepository struct {
	collection *mongo.Collection
}

func NewShiftRepository(mongoClient *client.MongoClient) *ShiftRepository {
	return newShiftRepository(mongoClient.Collection(core.MongoCollectionShifts))
}

func newShiftRepository(collection *mongo.Collection) *ShiftRepository {
	return &ShiftRepository{collection: collection}
}

// Exists 是否已有起訖完全相同的排班
func (repository *ShiftRepository) Exists(
	contextValue context.Context,
	start time.Time,
	end time.Time,
) (bool, error) {
	found, err := exists(contextValue, repository.collection, exactFilter(bson.M{}, "startDate", "endDate", start, end))
	if err != nil {
		return false, fmt.Errorf("query shift: %w", err)
	}
	return found, nil
}

// Create：單文件插入；uniq_range 撞到時回傳 ErrDuplicateKey
func (repository *ShiftRepository) Create(
	contextValue context.Context,
	shift *model.Shift,
) (_ *model.Shift, returnedError error) {

	nowUTC := time.Now().UTC()
	if shift.ID.IsZero() {
		shift.ID = primitive.NewObjectID()
	}
	shift.StartDate = shift.StartDate.UTC()
	shift.EndDate = shift.EndDate.UTC()
	shift.CreatedAt = nowUTC
	shift.UpdatedAt = nowUTC

	if _, insertError := repository.collection.InsertOne(contextValue, shift); insertError != nil {
		return nil, wrapWriteError("insert shift", insertError)
	}
	return shift, nil
}
