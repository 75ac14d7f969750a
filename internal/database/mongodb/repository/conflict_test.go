package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
)

func TestOverlapFilter(t *testing.T) {
	start := time.UnixMilli(1000)
	end := time.UnixMilli(2000)

	filter := overlapFilter(bson.M{"uid": "u1"}, "startTime", "endTime", start, end)

	assert.Equal(t, bson.M{
		"uid":       "u1",
		"startTime": bson.M{"$lte": end.UTC()},
		"endTime":   bson.M{"$gte": start.UTC()},
	}, filter)
}

func TestExactFilter(t *testing.T) {
	start := time.UnixMilli(1000)
	end := time.UnixMilli(2000)

	assert.Equal(t, bson.M{
		"startDate": start.UTC(),
		"endDate":   end.UTC(),
	}, exactFilter(bson.M{}, "startDate", "endDate", start, end))
}

func TestFilterDoesNotMutateScope(t *testing.T) {
	scope := bson.M{"uid": "u1"}
	_ = exactFilter(scope, "startDate", "endDate", time.UnixMilli(1), time.UnixMilli(2))
	assert.Equal(t, bson.M{"uid": "u1"}, scope)
}

func TestWithUpdatedAt(t *testing.T) {
	update := withUpdatedAt(bson.M{"$push": bson.M{"breaks": 1}})
	assert.Equal(t, bson.M{"updatedAt": true}, update["$currentDate"])

	merged := withUpdatedAt(bson.M{"$currentDate": bson.M{"lastSeen": true}})
	assert.Equal(t, bson.M{"lastSeen": true, "updatedAt": true}, merged["$currentDate"])
}
