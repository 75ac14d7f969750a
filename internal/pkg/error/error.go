package error

import (
	"errors"
	"net/http"
	"strings"
)

// Violation 單一欄位的驗證失敗
type Violation struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

type Error struct {
	httpCode   int
	errorCode  int
	errorMsg   string
	errorDesc  string
	violations []Violation
	cause      error
}

func New(httpCode, errorCode int, errorMsg string, errorDesc string) *Error {
	return &Error{
		httpCode:  httpCode,
		errorCode: errorCode,
		errorMsg:  errorMsg,
		errorDesc: errorDesc,
	}
}

// From 將任意錯誤轉為 *Error；非應用錯誤一律視為 internal 並保留原因
func From(err error) *Error {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr
	}
	return Internal("internal error", err)
}

// ✅ 用戶端錯誤 (400 系列)
func NullRequest() *Error {
	return New(http.StatusBadRequest, REQUEST_NULL, CodeRequestNull, "request is null")
}

// InvalidArgument 將所有欄位錯誤合併成一段描述，同時保留結構化清單
func InvalidArgument(violations []Violation) *Error {
	reasons := make([]string, 0, len(violations))
	for _, v := range violations {
		reasons = append(reasons, v.Reason)
	}
	e := New(http.StatusBadRequest, INVALID_ARGUMENT, CodeInvalidArgument, strings.Join(reasons, " "))
	e.violations = violations
	return e
}

// ✅ 資源找不到 (404)
func NotFound(errorDesc string) *Error {
	return New(http.StatusNotFound, NOT_FOUND, CodeNotFound, errorDesc)
}

func SessionNotFound(errorDesc string) *Error {
	return New(http.StatusNotFound, SESSION_NOT_FOUND, CodeSessionNotFound, errorDesc)
}

// ✅ 資料衝突 (409)
func SessionExists() *Error {
	return New(http.StatusConflict, SESSION_EXISTS, CodeSessionExists, "Session already exists")
}

func ShiftExists() *Error {
	return New(http.StatusConflict, SHIFT_EXISTS, CodeShiftExists, "Shift already exists")
}

func VacationExists() *Error {
	return New(http.StatusConflict, VACATION_EXISTS, CodeVacationExists, "Vacation already exists")
}

func IllnessExists() *Error {
	return New(http.StatusConflict, ILLNESS_EXISTS, CodeIllnessExists, "Illness already exists")
}

func EmailExists() *Error {
	return New(http.StatusConflict, EMAIL_EXISTS, CodeEmailExists, "email is already registered")
}

func WriteInProgress(errorDesc string) *Error {
	return New(http.StatusConflict, WRITE_IN_PROGRESS, CodeWriteInProgress, errorDesc)
}

// ✅ 伺服器內部錯誤 (500 系列)
// Internal 保留原始錯誤供 log 使用，回應只輸出 errorDesc
func Internal(errorDesc string, cause error) *Error {
	e := New(http.StatusInternalServerError, INTERNAL_ERROR, CodeInternal, errorDesc)
	e.cause = cause
	return e
}

func InternalServer(errorDesc string) *Error {
	return New(http.StatusInternalServerError, INTERNAL_ERROR, CodeInternal, errorDesc)
}

func ServiceUnavailable(errorDesc string) *Error {
	return New(http.StatusServiceUnavailable, SERVICE_UNAVAILABLE, "service-unavailable", errorDesc)
}

func GatewayTimeout(errorDesc string) *Error {
	return New(http.StatusGatewayTimeout, GATEWAY_TIMEOUT, "gateway-timeout", errorDesc)
}

func BadRequest(errorDesc string) *Error {
	return New(http.StatusBadRequest, BAD_REQUEST_BODY, "bad-request", errorDesc)
}

func (e *Error) HttpCode() int {
	return e.httpCode
}

func (e *Error) ErrorCode() int {
	return e.errorCode
}

func (e *Error) ErrorDesc() string {
	return e.errorDesc
}

func (e *Error) Violations() []Violation {
	return e.violations
}

func (e *Error) Error() string {
	return e.errorMsg
}

func (e *Error) Unwrap() error {
	return e.cause
}

// Is 以機器代碼比較，讓 errors.Is(err, cErr.ShiftExists()) 成立
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.errorMsg == t.errorMsg && e.errorCode == t.errorCode
}

func MapHttpStatusToError(status int, desc string) *Error {
	switch status {
	case http.StatusBadRequest:
		return BadRequest(desc)
	case http.StatusNotFound:
		return NotFound(desc)
	case http.StatusServiceUnavailable:
		return ServiceUnavailable(desc)
	case http.StatusGatewayTimeout:
		return GatewayTimeout(desc)
	default:
		return InternalServer(desc)
	}
}
