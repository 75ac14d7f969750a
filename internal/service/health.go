package service

import (
	"context"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
)

const storePingTimeout = 2 * time.Second

// StoreProbe readiness 需要確認資料庫還連得上
type StoreProbe interface {
	Ping(ctx context.Context) error
}

// HealthService 存活與就緒狀態
// ready 由 App 在索引建立、http listener 綁定後打開；每次查詢 readiness 時再 ping 一次 mongo
type HealthService struct {
	logger *zap.Logger
	store  StoreProbe
	live   atomic.Bool
	ready  atomic.Bool
}

func NewHealthService(logger *zap.Logger, store StoreProbe) *HealthService {
	s := &HealthService{logger: logger, store: store}
	s.live.Store(true)
	s.ready.Store(false) // 啟動完成後再打開
	return s
}

func (s *HealthService) SetReady(v bool) {
	s.ready.Store(v)
}

func (s *HealthService) IsLive() bool {
	return s.live.Load()
}

// IsReady 啟動完成且 mongo ping 成功才算就緒
func (s *HealthService) IsReady(ctx context.Context) bool {
	if !s.ready.Load() {
		return false
	}
	if s.store == nil {
		return true
	}
	ctx, cancel := context.WithTimeout(ctx, storePingTimeout)
	defer cancel()
	if err := s.store.Ping(ctx); err != nil {
		s.logger.Warn("readiness store ping failed", zap.Error(err))
		return false
	}
	return true
}
