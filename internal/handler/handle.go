package handler

import (
	"context"

	"stundenmanager/internal/core"
	cErr "stundenmanager/internal/pkg/error"
	"stundenmanager/internal/pkg/request"

	"github.com/gin-gonic/gin"
	"github.com/google/wire"
)

// ProviderSet Provider对象集合
var ProviderSet = wire.NewSet(
	NewUserHandler,
	NewSessionHandler,
	NewShiftHandler,
	NewAbsenceHandler,
	NewHealthHandler,
)

// serviceContext 把 TraceEntry 產生的 request id 與解碼時的欄位錯誤帶進 service 使用的 ctx
func serviceContext(ctx context.Context, c *gin.Context, decoded []cErr.Violation) context.Context {
	ctx = core.WithRequestID(ctx, c.GetString(core.ContextRequestIDKey))
	return request.WithDecodeViolations(ctx, decoded)
}
