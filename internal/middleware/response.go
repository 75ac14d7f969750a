package middleware

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"stundenmanager/config"
	"stundenmanager/internal/core"
	"stundenmanager/internal/database/fluentd/model"
	"stundenmanager/internal/database/fluentd/repository"
	cErr "stundenmanager/internal/pkg/error"
	"stundenmanager/internal/pkg/response"
	"stundenmanager/internal/telemetry"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Response struct {
	logger            *zap.Logger
	trace             *telemetry.Trace
	config            *config.Configuration
	fluentdRepository *repository.LogRepository
}

func NewResponse(
	logger *zap.Logger,
	trace *telemetry.Trace,
	config *config.Configuration,
	fluentdRepository *repository.LogRepository,
) *Response {
	return &Response{
		logger:            logger,
		trace:             trace,
		config:            config,
		fluentdRepository: fluentdRepository,
	}
}

// FormatHandler 把 handler 透過 c.Set 放進的 data/message 包成統一回應
func (middleware *Response) FormatHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		endpoint := c.FullPath()
		if isOperationalPath(endpoint) {
			c.Next()
			return
		}

		requestTime := time.Now()
		if startTime, exists := c.Get("requestDuration"); exists {
			if t, ok := startTime.(time.Time); ok {
				requestTime = t
			}
		} else {
			c.Set("requestDuration", requestTime)
		}

		c.Next()

		// 若已經有錯誤交由 Recovery 處理，或已經寫出回應，就不要再動了
		if len(c.Errors) > 0 || c.Writer.Written() {
			return
		}

		statusCode := c.Writer.Status()
		if statusCode >= http.StatusBadRequest {
			response.AbortWithError(c, cErr.MapHttpStatusToError(statusCode, "request error"))
			return
		}

		// 沒有 handler 處理（例如 404 路由）
		data, hasData := c.Get("data")
		if !hasData {
			data = map[string]any{}
		}
		message := "Request Success"
		if s := c.GetString("message"); s != "" {
			message = s
		}

		ctx, span, end := middleware.trace.WithSpan(c.Request.Context(), string(core.SpanResponseMiddleware))
		defer end(nil)

		requestID := c.GetString(core.ContextRequestIDKey)
		duration := time.Since(requestTime)

		middleware.trace.ApplyTraceAttributes(span, core.TraceResponseMeta{
			Path:       c.Request.URL.Path,
			Method:     c.Request.Method,
			Status:     statusCode,
			Message:    message,
			Code:       cErr.SUCCESS,
			DurationMs: float64(duration.Milliseconds()),
			Data:       safePreviewJSON(data, 2000),
		})

		middleware.logger.Info("[Response] "+message,
			zap.String("path", c.Request.URL.Path),
			zap.String("method", c.Request.Method),
			zap.Int("status", statusCode),
			zap.Duration("duration", duration),
			zap.String("requestId", requestID),
		)

		if err := middleware.fluentdRepository.LogResponse(ctx, model.ResponseLog{
			RequestID:  requestID,
			Operation:  operationName(c.Request.URL.Path),
			Code:       cErr.SUCCESS,
			StatusCode: statusCode,
			Message:    message,
			LatencyMs:  duration.Milliseconds(),
			ResponseTS: time.Now().UTC().Format("2006-01-02 15:04:05.999999 UTC"),
		}); err != nil {
			middleware.logger.Warn("fluentd response log failed", zap.Error(err), zap.String("requestId", requestID))
		}

		jsonBytes, err := json.Marshal(response.Response{
			RequestID:   requestID,
			Code:        cErr.SUCCESS,
			Data:        data,
			Message:     "OK",
			Description: message,
		})
		if err != nil {
			response.FailByErr(c, requestID, cErr.Internal("marshal response failed", err))
			return
		}

		c.Writer.Header().Set("Content-Type", "application/json; charset=utf-8")
		c.Writer.WriteHeader(statusCode) // handler 可能設了 201
		if _, werr := c.Writer.Write(jsonBytes); werr != nil {
			middleware.logger.Warn("write response failed", zap.Error(werr), zap.String("requestId", requestID))
		}
	}
}

// safePreviewJSON 會把資料序列化為 JSON 字串（UTF-8），並限制長度。
func safePreviewJSON(data any, max int) string {
	b, err := json.Marshal(data)
	if err != nil {
		return fmt.Sprintf("[marshal error: %v]", err)
	}
	out := string(b)
	if len(out) > max {
		return out[:max] + "…"
	}
	return out
}
