package service

import (
	"context"
	"errors"
	"time"

	"stundenmanager/config"
	"stundenmanager/internal/core"
	"stundenmanager/internal/telemetry"

	"go.uber.org/zap"
)

const (
	defaultOrphanGrace = 60 * time.Minute
	reconcileBatchSize = 500
)

// IdentityService 清除沒有對應 User 文件的 identity（CreateUser 補償失敗時留下的孤兒）
type IdentityService struct {
	logger     *zap.Logger
	trace      *telemetry.Trace
	metric     *telemetry.Metric
	identities IdentityProvider
	grace      time.Duration
	now        func() time.Time
}

func NewIdentityService(
	logger *zap.Logger,
	trace *telemetry.Trace,
	metric *telemetry.Metric,
	config *config.Configuration,
	identities IdentityProvider,
) *IdentityService {
	grace := defaultOrphanGrace
	if config.Identity.OrphanGraceMinutes > 0 {
		grace = time.Duration(config.Identity.OrphanGraceMinutes) * time.Minute
	}
	return &IdentityService{
		logger:     logger,
		trace:      trace,
		metric:     metric,
		identities: identities,
		grace:      grace,
		now:        time.Now,
	}
}

// ReconcileOrphans 刪除超過寬限期的孤兒 identity，回傳刪除筆數
func (s *IdentityService) ReconcileOrphans(ctx context.Context) (deleted int, returnedError error) {
	ctx, span, end := s.trace.WithSpan(ctx, string(core.SpanIdentityReconcile))
	defer func() { end(returnedError) }()

	meta := core.TraceReconcileMeta{GraceMinutes: int(s.grace.Minutes())}
	defer func() {
		meta.Deleted = deleted
		s.trace.ApplyTraceAttributes(span, meta)
	}()

	orphans, err := s.identities.ListOrphans(ctx, s.now().Add(-s.grace), reconcileBatchSize)
	if err != nil {
		s.logger.Error("list orphan identities failed", zap.Error(err))
		return 0, err
	}
	meta.Scanned = len(orphans)

	var errs []error
	for _, orphan := range orphans {
		if err := s.identities.DeleteIdentity(ctx, orphan.ID); err != nil {
			s.logger.Warn("delete orphan identity failed", zap.String("uid", orphan.ID), zap.Error(err))
			errs = append(errs, err)
			continue
		}
		deleted++
	}
	s.metric.AddOrphansDeleted(deleted)
	s.logger.Info("identity reconcile finished",
		zap.Int("scanned", len(orphans)),
		zap.Int("deleted", deleted),
	)
	return deleted, errors.Join(errs...)
}
