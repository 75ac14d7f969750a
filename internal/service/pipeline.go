package service

import (
	"context"
	"errors"
	"net/http"

	"stundenmanager/internal/core"
	"stundenmanager/internal/database/fluentd/model"
	mongoRepo "stundenmanager/internal/database/mongodb/repository"
	redisRepo "stundenmanager/internal/database/redis/repository"
	cErr "stundenmanager/internal/pkg/error"
	"stundenmanager/internal/pkg/request"
	"stundenmanager/internal/telemetry"

	"go.uber.org/zap"
)

// Pipeline 所有建立紀錄的共用流程：validate → lock → conflict → write
type Pipeline struct {
	logger *zap.Logger
	trace  *telemetry.Trace
	metric *telemetry.Metric
	locker ScopeLocker
	audit  AuditLogger
}

func NewPipeline(
	logger *zap.Logger,
	trace *telemetry.Trace,
	metric *telemetry.Metric,
	locker ScopeLocker,
	audit AuditLogger,
) *Pipeline {
	return &Pipeline{
		logger: logger,
		trace:  trace,
		metric: metric,
		locker: locker,
		audit:  audit,
	}
}

// recordStep 描述單一端點：要驗證什麼、鎖哪個 scope、怎麼檢查衝突、怎麼寫入
type recordStep[T any] struct {
	record  core.RecordKind
	uid     string
	request any
	// 額外的欄位檢查（例如 documentId 格式），接在 binding 規則之後
	violations func() []cErr.Violation
	// 空字串代表不上鎖
	scope string
	// 回傳 *cErr.Error 代表業務拒絕，其它錯誤視為 collaborator 失敗
	check func(ctx context.Context) error
	// 寫入撞到 unique index 時回傳的錯誤
	conflict    func() *cErr.Error
	write       func(ctx context.Context) (T, error)
	documentID  func(T) string
	failureDesc string
}

func runRecord[T any](ctx context.Context, p *Pipeline, step recordStep[T]) (result T, returnedError error) {
	ctx, span, end := p.trace.WithSpan(ctx, string(core.SpanRecordPipeline))
	defer func() { end(returnedError) }()

	meta := core.TraceRecordPipelineMeta{Record: string(step.record), UID: step.uid, Stage: "validate"}
	defer func() { p.trace.ApplyTraceAttributes(span, meta) }()

	logger := p.logger.With(
		zap.String("operation", string(step.record)),
		zap.String("requestId", core.RequestIDFrom(ctx)),
	)
	if step.uid != "" {
		logger = logger.With(zap.String("uid", step.uid))
	}

	violations := request.Validate(step.request)
	if step.violations != nil {
		violations = append(violations, step.violations()...)
	}
	// 解碼階段型別不符的欄位優先，同欄位不重複回報
	violations = request.MergeViolations(request.DecodeViolations(ctx), violations)
	if len(violations) > 0 {
		for _, v := range violations {
			p.metric.IncValidationFailure(step.record, v.Field)
			meta.Violations = append(meta.Violations, v.Field)
		}
		logger.Info("record rejected by validation", zap.Any("violations", violations))
		return result, cErr.InvalidArgument(violations)
	}

	if step.scope != "" {
		meta.Stage = "lock"
		release, err := p.locker.Acquire(ctx, step.scope)
		if errors.Is(err, redisRepo.ErrLockHeld) {
			return result, p.reject(ctx, logger, step.record, step.uid, cErr.WriteInProgress("another write for "+step.scope+" is in progress"))
		}
		if err != nil {
			return result, p.fail(logger, step.record, step.failureDesc, err)
		}
		defer func() {
			if err := release(context.WithoutCancel(ctx)); err != nil {
				logger.Warn("release scope lock failed", zap.String("scope", step.scope), zap.Error(err))
			}
		}()
	}

	if step.check != nil {
		meta.Stage = "conflict"
		if err := step.check(ctx); err != nil {
			var appErr *cErr.Error
			if errors.As(err, &appErr) {
				meta.Conflict = appErr.HttpCode() == http.StatusConflict
				return result, p.reject(ctx, logger, step.record, step.uid, appErr)
			}
			return result, p.fail(logger, step.record, step.failureDesc, err)
		}
	}

	meta.Stage = "write"
	written, err := step.write(ctx)
	if err != nil {
		if errors.Is(err, mongoRepo.ErrDuplicateKey) && step.conflict != nil {
			meta.Conflict = true
			return result, p.reject(ctx, logger, step.record, step.uid, step.conflict())
		}
		var appErr *cErr.Error
		if errors.As(err, &appErr) {
			meta.Conflict = appErr.HttpCode() == http.StatusConflict
			return result, p.reject(ctx, logger, step.record, step.uid, appErr)
		}
		return result, p.fail(logger, step.record, step.failureDesc, err)
	}

	meta.Stage = "done"
	if step.documentID != nil {
		meta.DocumentID = step.documentID(written)
	}
	p.metric.IncCreated(step.record)
	logger.Info("record created", zap.String("documentId", meta.DocumentID))
	p.writeAudit(ctx, logger, model.AuditLog{
		Record:     string(step.record),
		UID:        step.uid,
		DocumentID: meta.DocumentID,
		Outcome:    "created",
	})
	return written, nil
}

// reject 業務規則拒絕（衝突、找不到 session 等），直接回傳原錯誤
func (p *Pipeline) reject(ctx context.Context, logger *zap.Logger, record core.RecordKind, uid string, appErr *cErr.Error) error {
	if appErr.HttpCode() == http.StatusConflict {
		p.metric.IncConflict(record)
	}
	logger.Info("record rejected", zap.String("code", appErr.Error()), zap.String("reason", appErr.ErrorDesc()))
	p.writeAudit(ctx, logger, model.AuditLog{
		Record:  string(record),
		UID:     uid,
		Outcome: "rejected",
		Code:    appErr.Error(),
	})
	return appErr
}

// fail collaborator 失敗一律包成 internal，原因只進 log
func (p *Pipeline) fail(logger *zap.Logger, record core.RecordKind, desc string, err error) error {
	p.metric.IncCollaboratorFailure(record)
	logger.Error("record write failed", zap.Error(err))
	return cErr.Internal(desc, err)
}

func (p *Pipeline) writeAudit(ctx context.Context, logger *zap.Logger, audit model.AuditLog) {
	if p.audit == nil {
		return
	}
	audit.RequestID = core.RequestIDFrom(ctx)
	if err := p.audit.LogAudit(ctx, audit); err != nil {
		logger.Warn("audit log failed", zap.Error(err))
	}
}
