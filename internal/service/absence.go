package service

import (
	"context"

	"stundenmanager/internal/core"
	"stundenmanager/internal/database/mongodb/model"
	mongoRepo "stundenmanager/internal/database/mongodb/repository"
	"stundenmanager/internal/dto"
	cErr "stundenmanager/internal/pkg/error"
)

// AbsenceService 休假與病假；兩者流程相同，只差 collection、預設審核狀態與衝突代碼
type AbsenceService struct {
	pipeline  *Pipeline
	vacations AbsenceStore
	illnesses AbsenceStore
}

func NewAbsenceService(pipeline *Pipeline, vacations *mongoRepo.VacationRepository, illnesses *mongoRepo.IllnessRepository) *AbsenceService {
	return newAbsenceService(pipeline, vacations, illnesses)
}

func newAbsenceService(pipeline *Pipeline, vacations AbsenceStore, illnesses AbsenceStore) *AbsenceService {
	return &AbsenceService{pipeline: pipeline, vacations: vacations, illnesses: illnesses}
}

type absenceKind struct {
	record      core.RecordKind
	collection  core.MongoCollection
	approval    core.ApprovalStatus
	exists      func() *cErr.Error
	failureDesc string
}

var (
	vacationKind = absenceKind{
		record:      core.RecordVacation,
		collection:  core.MongoCollectionVacations,
		approval:    core.DefaultVacationApproval,
		exists:      cErr.VacationExists,
		failureDesc: "Vacation could not be created",
	}
	illnessKind = absenceKind{
		record:      core.RecordIllness,
		collection:  core.MongoCollectionIllnesses,
		approval:    core.DefaultIllnessApproval,
		exists:      cErr.IllnessExists,
		failureDesc: "Illness could not be created",
	}
)

func (s *AbsenceService) CreateVacation(ctx context.Context, req *dto.CreateAbsenceRequest) (*dto.CreateVacationResponse, error) {
	if req == nil {
		return nil, cErr.NullRequest()
	}
	vacation, err := s.create(ctx, vacationKind, s.vacations, req)
	if err != nil {
		return nil, err
	}
	return &dto.CreateVacationResponse{
		IsSuccess:  true,
		VacationID: vacation.ID.Hex(),
		UID:        vacation.UID,
		StartDate:  vacation.StartDate.UnixMilli(),
		EndDate:    vacation.EndDate.UnixMilli(),
		Approval:   vacation.Approval,
	}, nil
}

func (s *AbsenceService) CreateIllness(ctx context.Context, req *dto.CreateAbsenceRequest) (*dto.CreateIllnessResponse, error) {
	if req == nil {
		return nil, cErr.NullRequest()
	}
	illness, err := s.create(ctx, illnessKind, s.illnesses, req)
	if err != nil {
		return nil, err
	}
	return &dto.CreateIllnessResponse{
		IsSuccess: true,
		IllnessID: illness.ID.Hex(),
		UID:       illness.UID,
		StartDate: illness.StartDate.UnixMilli(),
		EndDate:   illness.EndDate.UnixMilli(),
		Approval:  illness.Approval,
	}, nil
}

func (s *AbsenceService) create(ctx context.Context, kind absenceKind, store AbsenceStore, req *dto.CreateAbsenceRequest) (*model.Absence, error) {
	start, end := fromMillis(req.StartDate), fromMillis(req.EndDate)

	return runRecord(ctx, s.pipeline, recordStep[*model.Absence]{
		record:  kind.record,
		uid:     req.UID,
		request: req,
		scope:   string(kind.collection) + ":" + req.UID,
		check: func(ctx context.Context) error {
			found, err := store.Exists(ctx, req.UID, start, end)
			if err != nil {
				return err
			}
			if found {
				return kind.exists()
			}
			return nil
		},
		conflict: kind.exists,
		write: func(ctx context.Context) (*model.Absence, error) {
			return store.Create(ctx, &model.Absence{
				UID:       req.UID,
				StartDate: start,
				EndDate:   end,
				Approval:  kind.approval,
			})
		},
		documentID:  func(absence *model.Absence) string { return absence.ID.Hex() },
		failureDesc: kind.failureDesc,
	})
}
