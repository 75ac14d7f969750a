package service

import (
	"context"
	"sync"
	"time"

	fluentdModel "stundenmanager/internal/database/fluentd/model"
	"stundenmanager/internal/database/mongodb/model"
	mongoRepo "stundenmanager/internal/database/mongodb/repository"
	redisRepo "stundenmanager/internal/database/redis/repository"
	"stundenmanager/internal/telemetry"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type mockIdentityProvider struct {
	mock.Mock
}

func (m *mockIdentityProvider) CreateIdentity(ctx context.Context, email string, password string) (string, error) {
	args := m.Called(ctx, email, password)
	return args.String(0), args.Error(1)
}

func (m *mockIdentityProvider) DeleteIdentity(ctx context.Context, uid string) error {
	args := m.Called(ctx, uid)
	return args.Error(0)
}

func (m *mockIdentityProvider) ListOrphans(ctx context.Context, before time.Time, limit int64) ([]*model.Identity, error) {
	args := m.Called(ctx, before, limit)
	orphans, _ := args.Get(0).([]*model.Identity)
	return orphans, args.Error(1)
}

type memUsers struct {
	users map[string]*model.User
	err   error
}

func newMemUsers() *memUsers {
	return &memUsers{users: map[string]*model.User{}}
}

func (s *memUsers) Create(_ context.Context, user *model.User) (*model.User, error) {
	if s.err != nil {
		return nil, s.err
	}
	user.CreatedAt = time.Now().UTC()
	user.UpdatedAt = user.CreatedAt
	s.users[user.ID] = user
	return user, nil
}

type memSessions struct {
	mu       sync.Mutex
	sessions []*model.Session
	err      error
}

func (s *memSessions) HasOverlap(_ context.Context, uid string, start time.Time, end time.Time) (bool, error) {
	if s.err != nil {
		return false, s.err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.sessions {
		if existing.UID == uid && !existing.StartTime.After(end) && !existing.EndTime.Before(start) {
			return true, nil
		}
	}
	return false, nil
}

func (s *memSessions) Create(_ context.Context, session *model.Session) (*model.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	session.ID = primitive.NewObjectID()
	session.CreatedAt = time.Now().UTC()
	session.UpdatedAt = session.CreatedAt
	s.sessions = append(s.sessions, session)
	return session, nil
}

func (s *memSessions) GetByID(_ context.Context, uid string, id primitive.ObjectID) (*model.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.sessions {
		if existing.ID == id && existing.UID == uid {
			copied := *existing
			return &copied, nil
		}
	}
	return nil, mongoRepo.ErrNotFound
}

func (s *memSessions) AppendBreak(_ context.Context, uid string, id primitive.ObjectID, entry model.Break) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.sessions {
		if existing.ID == id && existing.UID == uid {
			existing.Breaks = append(existing.Breaks, entry)
			existing.UpdatedAt = existing.UpdatedAt.Add(time.Second)
			return nil
		}
	}
	return mongoRepo.ErrNotFound
}

// memShifts 與 unique index 一樣拒絕重複的 (startDate, endDate)
type memShifts struct {
	shifts []*model.Shift
}

func (s *memShifts) Exists(_ context.Context, start time.Time, end time.Time) (bool, error) {
	for _, existing := range s.shifts {
		if existing.StartDate.Equal(start) && existing.EndDate.Equal(end) {
			return true, nil
		}
	}
	return false, nil
}

func (s *memShifts) Create(ctx context.Context, shift *model.Shift) (*model.Shift, error) {
	if found, _ := s.Exists(ctx, shift.StartDate, shift.EndDate); found {
		return nil, mongoRepo.ErrDuplicateKey
	}
	shift.ID = primitive.NewObjectID()
	s.shifts = append(s.shifts, shift)
	return shift, nil
}

type memAbsences struct {
	absences []*model.Absence
	// 模擬 Exists 與 insert 之間被別人搶先寫入
	skipExists bool
}

func (s *memAbsences) Exists(_ context.Context, uid string, start time.Time, end time.Time) (bool, error) {
	if s.skipExists {
		return false, nil
	}
	return s.find(uid, start, end), nil
}

func (s *memAbsences) find(uid string, start time.Time, end time.Time) bool {
	for _, existing := range s.absences {
		if existing.UID == uid && existing.StartDate.Equal(start) && existing.EndDate.Equal(end) {
			return true
		}
	}
	return false
}

func (s *memAbsences) Create(_ context.Context, absence *model.Absence) (*model.Absence, error) {
	if s.find(absence.UID, absence.StartDate, absence.EndDate) {
		return nil, mongoRepo.ErrDuplicateKey
	}
	absence.ID = primitive.NewObjectID()
	s.absences = append(s.absences, absence)
	return absence, nil
}

type fakeLocker struct {
	held     map[string]bool
	acquired []string
}

func newFakeLocker() *fakeLocker {
	return &fakeLocker{held: map[string]bool{}}
}

func (l *fakeLocker) Acquire(_ context.Context, scope string) (func(context.Context) error, error) {
	if l.held[scope] {
		return nil, redisRepo.ErrLockHeld
	}
	l.held[scope] = true
	l.acquired = append(l.acquired, scope)
	return func(context.Context) error {
		delete(l.held, scope)
		return nil
	}, nil
}

type recordingAudit struct {
	logs []fluentdModel.AuditLog
}

func (a *recordingAudit) LogAudit(_ context.Context, audit fluentdModel.AuditLog) error {
	a.logs = append(a.logs, audit)
	return nil
}

func newTestPipeline(locker ScopeLocker, audit AuditLogger) *Pipeline {
	return NewPipeline(zap.NewNop(), telemetry.NewNoopTrace(), &telemetry.Metric{}, locker, audit)
}
