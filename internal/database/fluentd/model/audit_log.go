package model

// AuditLog 每筆成功建立 / 被拒絕的紀錄寫入一筆，供事後稽核
type AuditLog struct {
	RequestID  string `bson:"request_id,omitempty" json:"request_id,omitempty"`
	Record     string `bson:"record" json:"record"`
	UID        string `bson:"uid,omitempty" json:"uid,omitempty"`
	DocumentID string `bson:"document_id,omitempty" json:"document_id,omitempty"`
	Outcome    string `bson:"outcome" json:"outcome"`
	Code       string `bson:"code,omitempty" json:"code,omitempty"`
	Version    string `bson:"version" json:"version"`
	LoggedAt   string `bson:"logged_at" json:"logged_at"`
}
