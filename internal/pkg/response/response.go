package response

import (
	"errors"
	"net/http"

	cErr "stundenmanager/internal/pkg/error"

	"github.com/gin-gonic/gin"
)

type Response struct {
	RequestID   string `json:"requestID"`
	Code        int    `json:"code"`
	Data        any    `json:"data"`
	Message     string `json:"message"`
	Description string `json:"description"`
}

// Create 寫入成功（201），實際輸出由 Response middleware 統一包裝
func Create(c *gin.Context, data any) {
	c.Status(http.StatusCreated)
	c.Set("data", data)
	c.Set("message", "Create Success")
	c.Abort()
}

func Success(c *gin.Context, data any) {
	c.Set("data", data)
	c.Set("message", "Request Success")
	c.Abort()
}

func AbortWithError(c *gin.Context, err error) {
	c.Error(err)
	c.Abort()
}

func Fail(c *gin.Context, requestID string, httpCode int, errorCode int, msg string, desc string, data any) {
	c.JSON(httpCode, Response{
		RequestID:   requestID,
		Code:        errorCode,
		Data:        data,
		Message:     msg,
		Description: desc,
	})
	c.Abort()
}

// FailByErr 輸出應用錯誤；欄位驗證錯誤會把結構化清單放進 data.violations
func FailByErr(c *gin.Context, requestID string, err error) {
	var appErr *cErr.Error
	if !errors.As(err, &appErr) {
		Fail(c, requestID, http.StatusInternalServerError, cErr.INTERNAL_ERROR, cErr.CodeInternal, "internal error", nil)
		return
	}
	var data any
	if violations := appErr.Violations(); len(violations) > 0 {
		data = gin.H{"violations": violations}
	}
	Fail(c, requestID, appErr.HttpCode(), appErr.ErrorCode(), appErr.Error(), appErr.ErrorDesc(), data)
}
