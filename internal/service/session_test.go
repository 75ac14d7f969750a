package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"stundenmanager/internal/dto"
	cErr "stundenmanager/internal/pkg/error"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	hour    = int64(time.Hour / time.Millisecond)
	dayZero = int64(1_700_000_000_000)
)

func newTestSessionService(sessions *memSessions, locker *fakeLocker) *SessionService {
	return NewSessionService(newTestPipeline(locker, &recordingAudit{}), sessions)
}

func TestCreateSession(t *testing.T) {
	sessions := &memSessions{}
	locker := newFakeLocker()
	svc := newTestSessionService(sessions, locker)

	resp, err := svc.CreateSession(context.Background(), &dto.CreateSessionRequest{UID: "u1", StartTime: dayZero, EndTime: dayZero + 8*hour})

	require.NoError(t, err)
	assert.True(t, resp.IsSuccess)
	assert.NotEmpty(t, resp.SessionID)
	assert.Equal(t, dayZero, resp.StartTime)
	assert.Equal(t, dayZero+8*hour, resp.EndTime)
	assert.NotNil(t, resp.Breaks)
	assert.Empty(t, resp.Breaks)
	require.Len(t, sessions.sessions, 1)
	assert.Empty(t, sessions.sessions[0].Breaks)
	assert.Equal(t, []string{"sessions:u1"}, locker.acquired)
	assert.Empty(t, locker.held)
}

func TestCreateSessionConflicts(t *testing.T) {
	tests := []struct {
		name    string
		uid     string
		start   int64
		end     int64
		wantErr error
	}{
		{name: "exact same range", uid: "u1", start: dayZero, end: dayZero + 8*hour, wantErr: cErr.SessionExists()},
		{name: "partial overlap", uid: "u1", start: dayZero + 7*hour, end: dayZero + 9*hour, wantErr: cErr.SessionExists()},
		{name: "contained", uid: "u1", start: dayZero + hour, end: dayZero + 2*hour, wantErr: cErr.SessionExists()},
		{name: "touching end", uid: "u1", start: dayZero + 8*hour, end: dayZero + 10*hour, wantErr: cErr.SessionExists()},
		{name: "touching start", uid: "u1", start: dayZero - 2*hour, end: dayZero, wantErr: cErr.SessionExists()},
		{name: "one millisecond after", uid: "u1", start: dayZero + 8*hour + 1, end: dayZero + 10*hour},
		{name: "disjoint", uid: "u1", start: dayZero + 24*hour, end: dayZero + 30*hour},
		{name: "other user", uid: "u2", start: dayZero, end: dayZero + 8*hour},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sessions := &memSessions{}
			svc := newTestSessionService(sessions, newFakeLocker())
			_, err := svc.CreateSession(context.Background(), &dto.CreateSessionRequest{UID: "u1", StartTime: dayZero, EndTime: dayZero + 8*hour})
			require.NoError(t, err)

			_, err = svc.CreateSession(context.Background(), &dto.CreateSessionRequest{UID: tt.uid, StartTime: tt.start, EndTime: tt.end})
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Len(t, sessions.sessions, 1)
				return
			}
			assert.NoError(t, err)
			assert.Len(t, sessions.sessions, 2)
		})
	}
}

func TestCreateSessionValidation(t *testing.T) {
	svc := newTestSessionService(&memSessions{}, newFakeLocker())

	_, err := svc.CreateSession(context.Background(), &dto.CreateSessionRequest{StartTime: 0, EndTime: 0})

	var appErr *cErr.Error
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, cErr.CodeInvalidArgument, appErr.Error())
	assert.Equal(t, []cErr.Violation{
		{Field: "uid", Reason: "uid is null."},
		{Field: "startTime", Reason: "startTime is not valid."},
		{Field: "endTime", Reason: "endTime is not valid."},
	}, appErr.Violations())
}

func TestCreateSessionEndEqualsStart(t *testing.T) {
	svc := newTestSessionService(&memSessions{}, newFakeLocker())
	_, err := svc.CreateSession(context.Background(), &dto.CreateSessionRequest{UID: "u1", StartTime: dayZero, EndTime: dayZero})
	assert.ErrorIs(t, err, cErr.InvalidArgument(nil))
}

func TestCreateSessionNull(t *testing.T) {
	svc := newTestSessionService(&memSessions{}, newFakeLocker())
	_, err := svc.CreateSession(context.Background(), nil)
	assert.ErrorIs(t, err, cErr.NullRequest())
}

func TestCreateSessionWriteInProgress(t *testing.T) {
	locker := newFakeLocker()
	locker.held["sessions:u1"] = true
	sessions := &memSessions{}

	_, err := newTestSessionService(sessions, locker).CreateSession(context.Background(), &dto.CreateSessionRequest{UID: "u1", StartTime: dayZero, EndTime: dayZero + hour})

	assert.ErrorIs(t, err, cErr.WriteInProgress(""))
	assert.Empty(t, sessions.sessions)
}

func TestCreateSessionStoreFailure(t *testing.T) {
	sessions := &memSessions{err: errors.New("mongo down")}
	locker := newFakeLocker()

	_, err := newTestSessionService(sessions, locker).CreateSession(context.Background(), &dto.CreateSessionRequest{UID: "u1", StartTime: dayZero, EndTime: dayZero + hour})

	var appErr *cErr.Error
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, cErr.CodeInternal, appErr.Error())
	assert.Equal(t, "Session could not be created", appErr.ErrorDesc())
	// 失敗也要釋放鎖
	assert.Empty(t, locker.held)
}

func TestCreateBreak(t *testing.T) {
	sessions := &memSessions{}
	svc := newTestSessionService(sessions, newFakeLocker())
	created, err := svc.CreateSession(context.Background(), &dto.CreateSessionRequest{UID: "u1", StartTime: dayZero, EndTime: dayZero + 8*hour})
	require.NoError(t, err)
	before := *sessions.sessions[0]

	resp, err := svc.CreateBreak(context.Background(), &dto.CreateBreakRequest{
		UID:        "u1",
		DocumentID: created.SessionID,
		StartTime:  dayZero + 2*hour,
		EndTime:    dayZero + 3*hour,
	})

	require.NoError(t, err)
	assert.True(t, resp.IsSuccess)
	assert.Equal(t, created.SessionID, resp.SessionID)
	assert.Equal(t, dayZero+2*hour, resp.BreakStart)

	after := sessions.sessions[0]
	require.Len(t, after.Breaks, 1)
	assert.Equal(t, dayZero+3*hour, after.Breaks[0].BreakEnd.UnixMilli())
	assert.True(t, after.UpdatedAt.After(before.UpdatedAt))
	assert.Equal(t, before.StartTime, after.StartTime)
	assert.Equal(t, before.EndTime, after.EndTime)
	assert.Equal(t, before.CreatedAt, after.CreatedAt)
	assert.Equal(t, before.UID, after.UID)
}

func TestCreateBreakRejections(t *testing.T) {
	sessions := &memSessions{}
	svc := newTestSessionService(sessions, newFakeLocker())
	created, err := svc.CreateSession(context.Background(), &dto.CreateSessionRequest{UID: "u1", StartTime: dayZero, EndTime: dayZero + 8*hour})
	require.NoError(t, err)

	tests := []struct {
		name      string
		req       *dto.CreateBreakRequest
		wantErr   error
		wantField string
	}{
		{
			name:    "unknown session",
			req:     &dto.CreateBreakRequest{UID: "u1", DocumentID: primitive.NewObjectID().Hex(), StartTime: dayZero + hour, EndTime: dayZero + 2*hour},
			wantErr: cErr.SessionNotFound(""),
		},
		{
			name:    "session of another user",
			req:     &dto.CreateBreakRequest{UID: "u2", DocumentID: created.SessionID, StartTime: dayZero + hour, EndTime: dayZero + 2*hour},
			wantErr: cErr.SessionNotFound(""),
		},
		{
			name:      "malformed document id",
			req:       &dto.CreateBreakRequest{UID: "u1", DocumentID: "not-an-id", StartTime: dayZero + hour, EndTime: dayZero + 2*hour},
			wantErr:   cErr.InvalidArgument(nil),
			wantField: "documentId",
		},
		{
			name:      "missing document id",
			req:       &dto.CreateBreakRequest{UID: "u1", StartTime: dayZero + hour, EndTime: dayZero + 2*hour},
			wantErr:   cErr.InvalidArgument(nil),
			wantField: "documentId",
		},
		{
			name:      "starts before session",
			req:       &dto.CreateBreakRequest{UID: "u1", DocumentID: created.SessionID, StartTime: dayZero - hour, EndTime: dayZero + hour},
			wantErr:   cErr.InvalidArgument(nil),
			wantField: "startTime",
		},
		{
			name:      "ends after session",
			req:       &dto.CreateBreakRequest{UID: "u1", DocumentID: created.SessionID, StartTime: dayZero + 7*hour, EndTime: dayZero + 9*hour},
			wantErr:   cErr.InvalidArgument(nil),
			wantField: "endTime",
		},
		{
			name:      "inverted range",
			req:       &dto.CreateBreakRequest{UID: "u1", DocumentID: created.SessionID, StartTime: dayZero + 3*hour, EndTime: dayZero + 2*hour},
			wantErr:   cErr.InvalidArgument(nil),
			wantField: "endTime",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateBreak(context.Background(), tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
			if tt.wantField != "" {
				var appErr *cErr.Error
				require.True(t, errors.As(err, &appErr))
				require.Len(t, appErr.Violations(), 1)
				assert.Equal(t, tt.wantField, appErr.Violations()[0].Field)
			}
		})
	}
	assert.Empty(t, sessions.sessions[0].Breaks)
}
