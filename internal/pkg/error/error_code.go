package error

const (
	// 0 ~ 999: 成功類別
	SUCCESS = 0 // 200 OK

	// 40000 ~ 40099: 用戶請求錯誤 (400 系列)
	BAD_REQUEST_BODY = 40000 // 400 - 無效的請求體
	REQUEST_NULL     = 40010 // 400 - 請求內容為空
	INVALID_ARGUMENT = 40011 // 400 - 欄位驗證失敗

	// 40400 ~ 40499: 資源錯誤 (404 系列)
	NOT_FOUND         = 40400 // 404 - 資源未找到
	SESSION_NOT_FOUND = 40401 // 404 - 工作時段不存在

	// 40900 ~ 40999: 資料衝突 (409 系列)
	SESSION_EXISTS    = 40900 // 409 - 時段重疊
	SHIFT_EXISTS      = 40901 // 409 - 班表已存在
	VACATION_EXISTS   = 40902 // 409 - 休假已存在
	ILLNESS_EXISTS    = 40903 // 409 - 病假已存在
	EMAIL_EXISTS      = 40904 // 409 - 信箱已被註冊
	WRITE_IN_PROGRESS = 40905 // 409 - 同一 scope 正在寫入

	// 50000 ~ 50199: 伺服器內部錯誤 (500 系列)
	INTERNAL_ERROR      = 50000 // 500 - 內部錯誤
	SERVICE_UNAVAILABLE = 50002 // 503 - 服務暫停
	GATEWAY_TIMEOUT     = 50400 // 504 - 逾時
)

// 對外的機器可讀錯誤代碼（放在回應的 message 欄位）
const (
	CodeRequestNull     = "request-null"
	CodeInvalidArgument = "invalid-argument"
	CodeInternal        = "internal"
	CodeNotFound        = "not-found"
	CodeSessionNotFound = "session-not-found"
	CodeSessionExists   = "session-exists"
	CodeShiftExists     = "shift-exists"
	CodeVacationExists  = "vacation-exists"
	CodeIllnessExists   = "illness-exists"
	CodeEmailExists     = "email-exists"
	CodeWriteInProgress = "write-in-progress"
)
