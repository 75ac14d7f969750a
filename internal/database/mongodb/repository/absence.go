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

// absenceRepository 休假 / 病假共用實作，差別只在 collection
type absenceRepository struct {
	collection *mongo.Collection
}

// Exists 同一 uid 底下是否已有起訖完全相同的紀錄
func (repository *absenceRepository) Exists(
	contextValue context.Context,
	uid string,
	start time.Time,
	end time.Time,
) (bool, error) {
	found, err := exists(contextValue, repository.collection, exactFilter(bson.M{"uid": uid}, "startDate", "endDate", start, end))
	if err != nil {
		return false, fmt.Errorf("query %s: %w", repository.collection.Name(), err)
	}
	return found, nil
}

func (repository *absenceRepository) Create(
	contextValue context.Context,
	absence *model.Absence,
) (_ *model.Absence, returnedError error) {

	nowUTC := time.Now().UTC()
	if absence.ID.IsZero() {
		absence.ID = primitive.NewObjectID()
	}
	absence.StartDate = absence.StartDate.UTC()
	absence.EndDate = absence.EndDate.UTC()
	absence.CreatedAt = nowUTC
	absence.UpdatedAt = nowUTC

	if _, insertError := repository.collection.InsertOne(contextValue, absence); insertError != nil {
		return nil, wrapWriteError("insert "+repository.collection.Name(), insertError)
	}
	return absence, nil
}

type VacationRepository struct {
	absenceRepository
}

func NewVacationRepository(mongoClient *client.MongoClient) *VacationRepository {
	return newVacationRepository(mongoClient.Collection(core.MongoCollectionVacations))
}

func newVacationRepository(collection *mongo.Collection) *VacationRepository {
	return &VacationRepository{absenceRepository{collection: collection}}
}

type IllnessRepository struct {
	absenceRepository
}

func NewIllnessRepository(mongoClient *client.MongoClient) *IllnessRepository {
	return newIllnessRepository(mongoClient.Collection(core.MongoCollectionIllnesses))
}

func newIllnessRepository(collection *mongo.Collection) *IllnessRepository {
	return &IllnessRepository{absenceRepository{collection: collection}}
}
