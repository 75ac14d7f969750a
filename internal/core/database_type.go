package core

// ─── Database Types ────────────────────────────────────────────────────────────

type MongoDatabaseName string
type MongoCollection string
type RedisKey string
type FluentdSubTag string

// ─── MongoDB ───────────────────────────────────────────────────────────────────
const (
	MongoDBStundenmanager MongoDatabaseName = "stundenmanager"
)

// MongoDB collections
//
// Session / Vacation / Illness 在文件內以 uid 欄位歸屬於 User；Shift 為共用的頂層資源。
const (
	MongoCollectionUsers      MongoCollection = "users"
	MongoCollectionIdentities MongoCollection = "identities"
	MongoCollectionSessions   MongoCollection = "sessions"
	MongoCollectionShifts     MongoCollection = "shifts"
	MongoCollectionVacations  MongoCollection = "vacations"
	MongoCollectionIllnesses  MongoCollection = "illnesses"
)

// ─── Redis Keys ────────────────────────────────────────────────────────────────

const (
	RedisKeyServerName RedisKey = "stundenmanager" // 伺服器名稱
	RedisKeyScopeLock  RedisKey = "scope_lock"     // 衝突檢查 + 寫入的 scope 鎖
)

const (
	FluentdRequest  FluentdSubTag = "request_log"
	FluentdResponse FluentdSubTag = "response_log"
	FluentdAudit    FluentdSubTag = "record_audit_log"
)
