package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"stundenmanager/internal/core"
	client "stundenmanager/internal/database/client"
	"stundenmanager/internal/database/mongodb/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type SessionRepository struct {
	collection *mongo.Collection
}

func NewSessionRepository(mongoClient *client.MongoClient) *SessionRepository {
	return newSessionRepository(mongoClient.Collection(core.MongoCollectionSessions))
}

func newSessionRepository(collection *mongo.Collection) *SessionRepository {
	return &SessionRepository{collection: collection}
}

// HasOverlap 同一 uid 底下是否已有與 [start, end] 重疊的 session
func (repository *SessionRepository) HasOverlap(
	contextValue context.Context,
	uid string,
	start time.Time,
	end time.Time,
) (bool, error) {
	found, err := exists(contextValue, repository.collection, overlapFilter(bson.M{"uid": uid}, "startTime", "endTime", start, end))
	if err != nil {
		return false, fmt.Errorf("query overlapping session: %w", err)
	}
	return found, nil
}

// Create：產生 _id 後插入，breaks 至少為空陣列
func (repository *SessionRepository) Create(
	contextValue context.Context,
	session *model.Session,
) (_ *model.Session, returnedError error) {

	nowUTC := time.Now().UTC()
	if session.ID.IsZero() {
		session.ID = primitive.NewObjectID()
	}
	if session.Breaks == nil {
		session.Breaks = []model.Break{}
	}
	session.StartTime = session.StartTime.UTC()
	session.EndTime = session.EndTime.UTC()
	session.CreatedAt = nowUTC
	session.UpdatedAt = nowUTC

	if _, insertError := repository.collection.InsertOne(contextValue, session); insertError != nil {
		return nil, wrapWriteError("insert session", insertError)
	}
	return session, nil
}

// GetByID：只在該 uid 範圍內查詢
func (repository *SessionRepository) GetByID(
	contextValue context.Context,
	uid string,
	sessionIdentifier primitive.ObjectID,
) (_ *model.Session, returnedError error) {

	var session model.Session
	returnedError = repository.collection.FindOne(contextValue, bson.M{"_id": sessionIdentifier, "uid": uid}).Decode(&session)
	if errors.Is(returnedError, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if returnedError != nil {
		return nil, fmt.Errorf("find session: %w", returnedError)
	}
	return &session, nil
}

// AppendBreak：$push 一筆 break 並刷新 updatedAt，其他欄位不動
func (repository *SessionRepository) AppendBreak(
	contextValue context.Context,
	uid string,
	sessionIdentifier primitive.ObjectID,
	entry model.Break,
) (returnedError error) {

	entry.BreakStart = entry.BreakStart.UTC()
	entry.BreakEnd = entry.BreakEnd.UTC()
	update := bson.M{"$push": bson.M{"breaks": entry}}
	result, updateError := repository.collection.UpdateOne(contextValue, bson.M{"_id": sessionIdentifier, "uid": uid}, withUpdatedAt(update))
	if updateError != nil {
		return fmt.Errorf("append break: %w", updateError)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}
