package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"stundenmanager/internal/core"
	"stundenmanager/internal/database/mongodb/model"
	mongoRepo "stundenmanager/internal/database/mongodb/repository"
	"stundenmanager/internal/dto"
	cErr "stundenmanager/internal/pkg/error"
	"stundenmanager/utils/validate"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type SessionService struct {
	pipeline *Pipeline
	sessions SessionStore
}

func NewSessionService(pipeline *Pipeline, sessions SessionStore) *SessionService {
	return &SessionService{pipeline: pipeline, sessions: sessions}
}

func sessionScope(uid string) string {
	return string(core.MongoCollectionSessions) + ":" + uid
}

// CreateSession 同一 uid 底下不可與既有 session 重疊，新 session 的 breaks 為空
func (s *SessionService) CreateSession(ctx context.Context, req *dto.CreateSessionRequest) (*dto.CreateSessionResponse, error) {
	if req == nil {
		return nil, cErr.NullRequest()
	}
	start, end := fromMillis(req.StartTime), fromMillis(req.EndTime)

	session, err := runRecord(ctx, s.pipeline, recordStep[*model.Session]{
		record:  core.RecordSession,
		uid:     req.UID,
		request: req,
		scope:   sessionScope(req.UID),
		check: func(ctx context.Context) error {
			found, err := s.sessions.HasOverlap(ctx, req.UID, start, end)
			if err != nil {
				return err
			}
			if found {
				return cErr.SessionExists()
			}
			return nil
		},
		conflict: cErr.SessionExists,
		write: func(ctx context.Context) (*model.Session, error) {
			return s.sessions.Create(ctx, &model.Session{
				UID:       req.UID,
				StartTime: start,
				EndTime:   end,
				Breaks:    []model.Break{},
			})
		},
		documentID:  func(session *model.Session) string { return session.ID.Hex() },
		failureDesc: "Session could not be created",
	})
	if err != nil {
		return nil, err
	}

	return &dto.CreateSessionResponse{
		IsSuccess: true,
		SessionID: session.ID.Hex(),
		UID:       session.UID,
		StartTime: session.StartTime.UnixMilli(),
		EndTime:   session.EndTime.UnixMilli(),
		Breaks:    toBreakDtos(session.Breaks),
	}, nil
}

// CreateBreak 追加一筆 break；session 必須屬於該 uid，且 break 需落在 session 區間內
func (s *SessionService) CreateBreak(ctx context.Context, req *dto.CreateBreakRequest) (*dto.CreateBreakResponse, error) {
	if req == nil {
		return nil, cErr.NullRequest()
	}
	start, end := fromMillis(req.StartTime), fromMillis(req.EndTime)
	var sessionID primitive.ObjectID

	entry, err := runRecord(ctx, s.pipeline, recordStep[model.Break]{
		record:  core.RecordBreak,
		uid:     req.UID,
		request: req,
		violations: func() []cErr.Violation {
			if req.DocumentID == "" {
				return nil
			}
			id, violation := validate.ParseObjectID(req.DocumentID, "documentId")
			if violation != nil {
				return []cErr.Violation{*violation}
			}
			sessionID = id
			return nil
		},
		scope: sessionScope(req.UID),
		check: func(ctx context.Context) error {
			session, err := s.sessions.GetByID(ctx, req.UID, sessionID)
			if errors.Is(err, mongoRepo.ErrNotFound) {
				return cErr.SessionNotFound(fmt.Sprintf("session %s not found", req.DocumentID))
			}
			if err != nil {
				return err
			}
			return breakWithinSession(session, start, end)
		},
		write: func(ctx context.Context) (model.Break, error) {
			entry := model.Break{BreakStart: start, BreakEnd: end}
			err := s.sessions.AppendBreak(ctx, req.UID, sessionID, entry)
			if errors.Is(err, mongoRepo.ErrNotFound) {
				return entry, cErr.SessionNotFound(fmt.Sprintf("session %s not found", req.DocumentID))
			}
			return entry, err
		},
		documentID:  func(model.Break) string { return sessionID.Hex() },
		failureDesc: "Break could not be created",
	})
	if err != nil {
		return nil, err
	}

	return &dto.CreateBreakResponse{
		IsSuccess:  true,
		SessionID:  sessionID.Hex(),
		BreakStart: entry.BreakStart.UnixMilli(),
		BreakEnd:   entry.BreakEnd.UnixMilli(),
	}, nil
}

func breakWithinSession(session *model.Session, start, end time.Time) error {
	var violations []cErr.Violation
	if start.Before(session.StartTime) {
		violations = append(violations, cErr.Violation{Field: "startTime", Reason: "startTime is before the session start."})
	}
	if end.After(session.EndTime) {
		violations = append(violations, cErr.Violation{Field: "endTime", Reason: "endTime is after the session end."})
	}
	if len(violations) > 0 {
		return cErr.InvalidArgument(violations)
	}
	return nil
}

func toBreakDtos(breaks []model.Break) []dto.BreakDto {
	out := make([]dto.BreakDto, 0, len(breaks))
	for _, b := range breaks {
		out = append(out, dto.BreakDto{BreakStart: b.BreakStart.UnixMilli(), BreakEnd: b.BreakEnd.UnixMilli()})
	}
	return out
}

func fromMillis(ms int64) time.Time {
	return time.UnixMilli(ms).UTC()
}
