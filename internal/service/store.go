package service

import (
	"context"
	"time"

	"stundenmanager/internal/database/fluentd/model"
	mongoModel "stundenmanager/internal/database/mongodb/model"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// 以下介面由 internal/database 的 repository 實作，測試時改用 fake

// IdentityProvider 建立 / 刪除登入身分
type IdentityProvider interface {
	CreateIdentity(ctx context.Context, email string, password string) (string, error)
	DeleteIdentity(ctx context.Context, uid string) error
	ListOrphans(ctx context.Context, before time.Time, limit int64) ([]*mongoModel.Identity, error)
}

type UserStore interface {
	Create(ctx context.Context, user *mongoModel.User) (*mongoModel.User, error)
}

type SessionStore interface {
	HasOverlap(ctx context.Context, uid string, start time.Time, end time.Time) (bool, error)
	Create(ctx context.Context, session *mongoModel.Session) (*mongoModel.Session, error)
	GetByID(ctx context.Context, uid string, id primitive.ObjectID) (*mongoModel.Session, error)
	AppendBreak(ctx context.Context, uid string, id primitive.ObjectID, entry mongoModel.Break) error
}

type ShiftStore interface {
	Exists(ctx context.Context, start time.Time, end time.Time) (bool, error)
	Create(ctx context.Context, shift *mongoModel.Shift) (*mongoModel.Shift, error)
}

// AbsenceStore 休假與病假共用
type AbsenceStore interface {
	Exists(ctx context.Context, uid string, start time.Time, end time.Time) (bool, error)
	Create(ctx context.Context, absence *mongoModel.Absence) (*mongoModel.Absence, error)
}

// ScopeLocker 包住同一 scope 的衝突檢查與寫入；被占用時回傳 redis repository 的 ErrLockHeld
type ScopeLocker interface {
	Acquire(ctx context.Context, scope string) (func(context.Context) error, error)
}

type AuditLogger interface {
	LogAudit(ctx context.Context, audit model.AuditLog) error
}
