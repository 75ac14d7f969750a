package core

type Role string

const (
	RoleAdmin Role = "admin" // 管理員
	RoleUser  Role = "user"  // 一般使用者（建立帳號時的預設值）
)

// DefaultRole 新建 User 文件時寫入的角色
const DefaultRole = RoleUser

// ApprovalStatus 假單 / 病假單的審核狀態
type ApprovalStatus string

const (
	ApprovalPending  ApprovalStatus = "pending"
	ApprovalApproved ApprovalStatus = "approved"
	ApprovalRejected ApprovalStatus = "rejected"
)

// 休假預設待審，病假預設直接核准。兩者不一致是既有行為，未確認業務規則前不要統一。
const (
	DefaultVacationApproval ApprovalStatus = ApprovalPending
	DefaultIllnessApproval  ApprovalStatus = ApprovalApproved
)

// RecordKind 受衝突檢查保護的紀錄種類
type RecordKind string

const (
	RecordUser     RecordKind = "user"
	RecordSession  RecordKind = "session"
	RecordBreak    RecordKind = "break"
	RecordShift    RecordKind = "shift"
	RecordVacation RecordKind = "vacation"
	RecordIllness  RecordKind = "illness"
)
