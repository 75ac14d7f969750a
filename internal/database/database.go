package database

import (
	client "stundenmanager/internal/database/client"
	fluentdRepo "stundenmanager/internal/database/fluentd/repository"
	mongoRepo "stundenmanager/internal/database/mongodb/repository"
	redisRepo "stundenmanager/internal/database/redis/repository"

	"github.com/google/wire"
)

// ProviderSet 定義所有 DB Client 與 repository 的依賴
var ProviderSet = wire.NewSet(
	client.NewMongoClient,
	client.NewRedisClient,
	client.NewFluentdClient,
	mongoRepo.ProviderSet,
	redisRepo.ProviderSet,
	fluentdRepo.ProviderSet,
)
