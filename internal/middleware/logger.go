package middleware

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"time"

	"stundenmanager/config"
	"stundenmanager/internal/core"
	"stundenmanager/internal/database/fluentd/model"
	"stundenmanager/internal/database/fluentd/repository"
	"stundenmanager/internal/telemetry"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Logger struct {
	logger            *zap.Logger
	trace             *telemetry.Trace
	config            *config.Configuration
	fluentdRepository *repository.LogRepository
}

func NewLogger(
	logger *zap.Logger,
	trace *telemetry.Trace,
	config *config.Configuration,
	fluentdRepository *repository.LogRepository,
) *Logger {
	return &Logger{
		logger:            logger,
		trace:             trace,
		config:            config,
		fluentdRepository: fluentdRepository,
	}
}

// LoggerHandler 記錄每個請求的基本資訊；body 可能含密碼，一律不記錄
func (m *Logger) LoggerHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		endpoint := c.FullPath()
		if isOperationalPath(endpoint) {
			c.Next()
			return
		}

		ctx, span, end := m.trace.WithSpan(c.Request.Context(), string(core.SpanLoggerMiddleware))

		requestTime := time.Now().UTC()
		if startTime, exists := c.Get("requestDuration"); exists {
			if t, ok := startTime.(time.Time); ok {
				requestTime = t
			}
		}

		method := c.Request.Method
		path := c.Request.URL.Path
		requestID := c.GetString(core.ContextRequestIDKey)

		// headers → map[string]string（lowercase key，去掉敏感欄位）
		headerMap := make(map[string]string, len(c.Request.Header))
		for k, v := range c.Request.Header {
			lk := strings.ToLower(k)
			if lk == "authorization" || lk == "cookie" {
				continue
			}
			headerMap[lk] = strings.Join(v, ",")
		}

		m.trace.ApplyTraceAttributes(span, core.LoggerRequestMeta{
			Method:     method,
			Path:       path,
			FullPath:   endpoint,
			Query:      c.Request.URL.RawQuery,
			Scheme:     c.Request.URL.Scheme,
			Host:       c.Request.Host,
			UserAgent:  c.Request.UserAgent(),
			ContentLen: c.Request.ContentLength,
			Proto:      c.Request.Proto,
			ClientIP:   c.ClientIP(),
			Headers:    headerMap,
		})

		m.logger.Info("[Request] logging middleware message",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int64("contentLength", c.Request.ContentLength),
			zap.Any("headers", headerMap),
			zap.String("requestId", requestID),
		)

		if err := m.fluentdRepository.LogRequest(ctx, model.RequestLog{
			RequestID: requestID,
			Method:    method,
			Path:      path,
			Operation: operationName(path),
			RequestTS: requestTime.UTC().Format("2006-01-02 15:04:05.999999 UTC"),
			IPHash:    hashIP(c.ClientIP()),
			UserAgent: c.Request.UserAgent(),
		}); err != nil {
			m.logger.Warn("fluentd request log failed", zap.Error(err), zap.String("requestId", requestID))
		}
		end(nil)
		c.Next()
	}
}

// operationName 取 /rpc/<operation> 的最後一段
func operationName(path string) string {
	path = strings.TrimSuffix(path, "/")
	if i := strings.LastIndex(path, "/"); i >= 0 {
		return path[i+1:]
	}
	return path
}

func hashIP(ip string) string {
	if ip == "" {
		return ""
	}
	sum := sha256.Sum256([]byte(ip))
	return hex.EncodeToString(sum[:8])
}
