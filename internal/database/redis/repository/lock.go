package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"stundenmanager/config"
	"stundenmanager/internal/core"
	client "stundenmanager/internal/database/client"
	"stundenmanager/internal/telemetry"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const defaultLockTTL = 5 * time.Second

var ErrLockHeld = errors.New("scope lock is held by another writer")

// 只有持有者（token 相同）才能釋放
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// ScopeLockRepository 以 SETNX 包住「衝突檢查 + 寫入」；Redis 未啟用時一律放行
type ScopeLockRepository struct {
	trace  *telemetry.Trace
	client *redis.Client
	ttl    time.Duration
}

func NewScopeLockRepository(trace *telemetry.Trace, config *config.Configuration, client *client.RedisClient) *ScopeLockRepository {
	ttl := defaultLockTTL
	if config.Redis.LockTTL > 0 {
		ttl = time.Duration(config.Redis.LockTTL) * time.Millisecond
	}
	return &ScopeLockRepository{trace: trace, client: client.Client(), ttl: ttl}
}

// Acquire 取得 scope 鎖，回傳 release；鎖已被持有時回傳 ErrLockHeld（不重試）
func (repository *ScopeLockRepository) Acquire(
	contextValue context.Context,
	scope string,
) (release func(context.Context) error, returnedError error) {

	if repository.client == nil {
		return func(context.Context) error { return nil }, nil
	}

	contextValue, span, endSpan := repository.trace.WithSpan(contextValue)
	defer func() { endSpan(returnedError) }()

	traceMetadata := core.TraceScopeLockMeta{
		Scope: scope,
		TTLMs: repository.ttl.Milliseconds(),
		Op:    "acquire",
	}

	redisKey := repository.buildKey(scope)
	token := uuid.NewString()
	acquired, setError := repository.client.SetNX(contextValue, redisKey, token, repository.ttl).Result()
	if setError != nil {
		returnedError = fmt.Errorf("acquire scope lock: %w", setError)
		return nil, returnedError
	}
	traceMetadata.Acquired = acquired
	repository.trace.ApplyTraceAttributes(span, traceMetadata)
	if !acquired {
		returnedError = ErrLockHeld
		return nil, returnedError
	}

	release = func(ctx context.Context) error {
		return repository.release(ctx, scope, token)
	}
	return release, nil
}

func (repository *ScopeLockRepository) release(contextValue context.Context, scope, token string) (returnedError error) {
	contextValue, span, endSpan := repository.trace.WithSpan(contextValue)
	defer func() { endSpan(returnedError) }()

	repository.trace.ApplyTraceAttributes(span, core.TraceScopeLockMeta{Scope: scope, Op: "release"})

	// 過期後被別人取得的鎖不會被誤刪
	if err := releaseScript.Run(contextValue, repository.client, []string{repository.buildKey(scope)}, token).Err(); err != nil && !errors.Is(err, redis.Nil) {
		returnedError = fmt.Errorf("release scope lock: %w", err)
	}
	return returnedError
}

// buildKey 建構 scope lock 用的 Redis key
func (repository *ScopeLockRepository) buildKey(scope string) string {
	return fmt.Sprintf("%s:%s:%s", core.RedisKeyServerName, core.RedisKeyScopeLock, scope)
}
