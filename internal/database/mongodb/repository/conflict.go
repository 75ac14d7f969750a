package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// overlapFilter：既有區間與候選區間有交集（閉區間，端點相接也算）
// existing.start <= candidate.end AND existing.end >= candidate.start
func overlapFilter(scope bson.M, startField, endField string, start, end time.Time) bson.M {
	filter := bson.M{}
	for k, v := range scope {
		filter[k] = v
	}
	filter[startField] = bson.M{"$lte": end.UTC()}
	filter[endField] = bson.M{"$gte": start.UTC()}
	return filter
}

// exactFilter：起訖完全相同
func exactFilter(scope bson.M, startField, endField string, start, end time.Time) bson.M {
	filter := bson.M{}
	for k, v := range scope {
		filter[k] = v
	}
	filter[startField] = start.UTC()
	filter[endField] = end.UTC()
	return filter
}

// exists 以 limit 1 + 只取 _id 的方式檢查是否有符合的文件
func exists(contextValue context.Context, collection *mongo.Collection, filter bson.M) (bool, error) {
	findOptions := options.FindOne().SetProjection(bson.M{"_id": 1})
	err := collection.FindOne(contextValue, filter, findOptions).Err()
	if errors.Is(err, mongo.ErrNoDocuments) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
