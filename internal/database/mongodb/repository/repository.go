package repository

import (
	"context"
	"errors"
	"fmt"

	"stundenmanager/internal/database/mongodb/model"

	"github.com/google/wire"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

var (
	// ErrDuplicateKey 寫入時撞到 unique index
	ErrDuplicateKey = errors.New("duplicate key")
	// ErrNotFound 指定範圍內找不到文件
	ErrNotFound = errors.New("document not found")
)

// 統一管理所有 MongoDB repository
type MongoDBRepository struct {
	userRepo     *UserRepository
	identityRepo *IdentityRepository
	sessionRepo  *SessionRepository
	shiftRepo    *ShiftRepository
	vacationRepo *VacationRepository
	illnessRepo  *IllnessRepository
}

func NewMongoDBRepository(
	userRepo *UserRepository,
	identityRepo *IdentityRepository,
	sessionRepo *SessionRepository,
	shiftRepo *ShiftRepository,
	vacationRepo *VacationRepository,
	illnessRepo *IllnessRepository,
) *MongoDBRepository {
	return &MongoDBRepository{
		userRepo:     userRepo,
		identityRepo: identityRepo,
		sessionRepo:  sessionRepo,
		shiftRepo:    shiftRepo,
		vacationRepo: vacationRepo,
		illnessRepo:  illnessRepo,
	}
}

// Wire 依賴提供
var ProviderSet = wire.NewSet(
	NewUserRepository,
	NewIdentityRepository,
	NewSessionRepository,
	NewShiftRepository,
	NewVacationRepository,
	NewIllnessRepository,
	NewMongoDBRepository)

// EnsureIndexes 建立所有 collection 的索引（冪等，存在即跳過）
func (repository *MongoDBRepository) EnsureIndexes(contextValue context.Context) error {
	targets := []struct {
		collection *mongo.Collection
		indexes    []mongo.IndexModel
	}{
		{repository.userRepo.collection, model.UserIndexes},
		{repository.identityRepo.collection, model.IdentityIndexes},
		{repository.sessionRepo.collection, model.SessionIndexes},
		{repository.shiftRepo.collection, model.ShiftIndexes},
		{repository.vacationRepo.collection, model.AbsenceIndexes},
		{repository.illnessRepo.collection, model.AbsenceIndexes},
	}
	for _, target := range targets {
		if _, err := target.collection.Indexes().CreateMany(contextValue, target.indexes); err != nil {
			return fmt.Errorf("create indexes on %s: %w", target.collection.Name(), err)
		}
	}
	return nil
}

func withUpdatedAt(update bson.M) bson.M {
	// 確保 $currentDate 存在
	currentDate, ok := update["$currentDate"].(bson.M)
	if !ok || currentDate == nil {
		currentDate = bson.M{}
	}
	currentDate["updatedAt"] = true
	update["$currentDate"] = currentDate
	return update
}

// wrapWriteError 將 duplicate key 轉成 ErrDuplicateKey，其餘保留原因
func wrapWriteError(op string, err error) error {
	if err == nil {
		return nil
	}
	if mongo.IsDuplicateKeyError(err) {
		return fmt.Errorf("%s: %w", op, ErrDuplicateKey)
	}
	return fmt.Errorf("%s: %w", op, err)
}
