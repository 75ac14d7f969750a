package service

import (
	"context"

	"stundenmanager/internal/core"
	"stundenmanager/internal/database/mongodb/model"
	"stundenmanager/internal/dto"
	cErr "stundenmanager/internal/pkg/error"
)

type ShiftService struct {
	pipeline *Pipeline
	shifts   ShiftStore
}

func NewShiftService(pipeline *Pipeline, shifts ShiftStore) *ShiftService {
	return &ShiftService{pipeline: pipeline, shifts: shifts}
}

// CreateShift 同一組 (startDate, endDate) 只能有一份排班
func (s *ShiftService) CreateShift(ctx context.Context, req *dto.CreateShiftRequest) (*dto.CreateShiftResponse, error) {
	if req == nil {
		return nil, cErr.NullRequest()
	}
	start, end := fromMillis(req.StartDate), fromMillis(req.EndDate)

	shift, err := runRecord(ctx, s.pipeline, recordStep[*model.Shift]{
		record:  core.RecordShift,
		request: req,
		scope:   string(core.MongoCollectionShifts),
		check: func(ctx context.Context) error {
			found, err := s.shifts.Exists(ctx, start, end)
			if err != nil {
				return err
			}
			if found {
				return cErr.ShiftExists()
			}
			return nil
		},
		conflict: cErr.ShiftExists,
		write: func(ctx context.Context) (*model.Shift, error) {
			return s.shifts.Create(ctx, &model.Shift{
				StartDate:    start,
				EndDate:      end,
				MorningShift: req.MorningShift,
				LateShift:    req.LateShift,
				NightShift:   req.NightShift,
			})
		},
		documentID:  func(shift *model.Shift) string { return shift.ID.Hex() },
		failureDesc: "Shift could not be created",
	})
	if err != nil {
		return nil, err
	}

	return &dto.CreateShiftResponse{
		IsSuccess: true,
		ShiftID:   shift.ID.Hex(),
		StartDate: shift.StartDate.UnixMilli(),
		EndDate:   shift.EndDate.UnixMilli(),
	}, nil
}
