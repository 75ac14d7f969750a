package middleware

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
	"runtime/debug"
	"time"
	"unicode/utf8"

	"stundenmanager/config"
	"stundenmanager/internal/core"
	"stundenmanager/internal/database/fluentd/model"
	"stundenmanager/internal/database/fluentd/repository"
	cErr "stundenmanager/internal/pkg/error"
	res "stundenmanager/internal/pkg/response"
	"stundenmanager/internal/telemetry"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Recovery struct {
	logger            *zap.Logger
	trace             *telemetry.Trace
	config            *config.Configuration
	fluentdRepository *repository.LogRepository
}

func NewRecovery(
	logger *zap.Logger,
	trace *telemetry.Trace,
	config *config.Configuration,
	fluentdRepository *repository.LogRepository,
) *Recovery {
	return &Recovery{
		logger:            logger,
		trace:             trace,
		config:            config,
		fluentdRepository: fluentdRepository,
	}
}

// ErrorHandler 統一輸出 panic 與 c.Errors；成功回應由 Response middleware 處理
func (middleware *Recovery) ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestTime := time.Now()
		if startTime, exists := c.Get("requestDuration"); exists {
			if t, ok := startTime.(time.Time); ok {
				requestTime = t
			}
		}

		// ---- panic recover 必須在 c.Next() 之前註冊 ----
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			requestID := c.GetString(core.ContextRequestIDKey)
			duration := time.Since(requestTime)

			ctx, span, end := middleware.trace.WithSpan(c.Request.Context(), string(core.SpanRecoveryMiddleware))
			meta := core.TracePanicMeta{
				Path:       c.Request.URL.Path,
				Method:     c.Request.Method,
				ClientIP:   c.ClientIP(),
				UserAgent:  c.Request.UserAgent(),
				DurationMs: float64(duration.Milliseconds()),
				Message:    toSafeString(fmt.Sprint(rec)),
				Stack:      toSafeStack(debug.Stack()),
				Status:     http.StatusInternalServerError,
			}
			middleware.trace.ApplyTraceAttributes(span, meta)

			middleware.logger.Error("[PANIC] Recovered",
				zap.String("path", meta.Path),
				zap.String("method", meta.Method),
				zap.String("client_ip", meta.ClientIP),
				zap.Duration("duration", duration),
				zap.String("panic", meta.Message),
				zap.String("stacktrace", meta.Stack),
				zap.String("requestId", requestID),
			)

			err := cErr.InternalServer("unexpected panic")
			end(err)
			if !c.Writer.Written() {
				res.FailByErr(c, requestID, err)
			}
			middleware.logResponse(ctx, c, requestID, err, meta.Message, duration)
			c.Abort()
		}()

		c.Next()

		// ---- 統一處理非 panic 的 gin errors（若尚未回寫）----
		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}
		requestID := c.GetString(core.ContextRequestIDKey)
		duration := time.Since(requestTime)

		ctx, span, end := middleware.trace.WithSpan(c.Request.Context(), string(core.SpanRecoveryMiddleware))
		appErr := firstAppError(c.Errors)
		if appErr == nil {
			appErr = cErr.Internal("internal error", c.Errors.Last().Err)
		}
		middleware.trace.ApplyTraceAttributes(span, core.TraceErrorMeta{
			Code:       appErr.ErrorCode(),
			Message:    appErr.Error(),
			Detail:     toSafeString(appErr.ErrorDesc()),
			DurationMs: float64(duration.Milliseconds()),
			Status:     appErr.HttpCode(),
		})

		var cause string
		fields := []zap.Field{
			zap.Int("code", appErr.ErrorCode()),
			zap.String("data", appErr.ErrorDesc()),
			zap.Duration("duration", duration),
			zap.String("requestId", requestID),
		}
		if inner := errors.Unwrap(appErr); inner != nil {
			cause = toSafeString(inner.Error())
			fields = append(fields, zap.String("cause", cause))
		}
		if appErr.HttpCode() >= http.StatusInternalServerError {
			middleware.logger.Error(appErr.Error(), fields...)
			end(appErr)
		} else {
			middleware.logger.Warn(appErr.Error(), fields...)
			end(nil)
		}

		res.FailByErr(c, requestID, appErr)
		middleware.logResponse(ctx, c, requestID, appErr, cause, duration)
		c.Abort()
	}
}

func (middleware *Recovery) logResponse(ctx context.Context, c *gin.Context, requestID string, appErr *cErr.Error, cause string, duration time.Duration) {
	if err := middleware.fluentdRepository.LogResponse(ctx, model.ResponseLog{
		RequestID:  requestID,
		Operation:  operationName(c.Request.URL.Path),
		Code:       appErr.ErrorCode(),
		StatusCode: appErr.HttpCode(),
		Message:    appErr.Error(),
		Error:      cause,
		LatencyMs:  duration.Milliseconds(),
		ResponseTS: time.Now().UTC().Format("2006-01-02 15:04:05.999999 UTC"),
	}); err != nil {
		middleware.logger.Warn("fluentd response log failed", zap.Error(err), zap.String("requestId", requestID))
	}
}

// firstAppError 找第一個 *cErr.Error
func firstAppError(errs []*gin.Error) *cErr.Error {
	for _, e := range errs {
		var appErr *cErr.Error
		if errors.As(e.Err, &appErr) {
			return appErr
		}
	}
	return nil
}

// ---- helpers ----

func toSafeString(s string) string {
	const max = 8000
	if utf8.ValidString(s) {
		if len(s) > max {
			return s[:max] + "…"
		}
		return s
	}
	b := []byte(s)
	if len(b) > max {
		b = b[:max]
	}
	return "b64:" + base64.StdEncoding.EncodeToString(b)
}

func toSafeStack(b []byte) string {
	const max = 16000
	if utf8.Valid(b) {
		if len(b) > max {
			return string(b[:max]) + "…"
		}
		return string(b)
	}
	if len(b) > max {
		b = b[:max]
	}
	return "b64:" + base64.StdEncoding.EncodeToString(b)
}
