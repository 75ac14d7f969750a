package service

import (
	"context"
	"errors"
	"testing"

	"stundenmanager/internal/core"
	"stundenmanager/internal/dto"
	cErr "stundenmanager/internal/pkg/error"
	"stundenmanager/internal/pkg/request"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validShiftRequest() *dto.CreateShiftRequest {
	return &dto.CreateShiftRequest{
		StartDate:    dayZero,
		EndDate:      dayZero + 7*24*hour,
		MorningShift: []string{"u1", "u2"},
		LateShift:    []string{"u3"},
		NightShift:   []string{"u4"},
	}
}

func TestCreateShiftTwice(t *testing.T) {
	shifts := &memShifts{}
	audit := &recordingAudit{}
	svc := NewShiftService(newTestPipeline(newFakeLocker(), audit), shifts)

	first, err := svc.CreateShift(context.Background(), validShiftRequest())
	require.NoError(t, err)
	assert.True(t, first.IsSuccess)
	assert.Equal(t, dayZero, first.StartDate)

	_, err = svc.CreateShift(context.Background(), validShiftRequest())
	assert.ErrorIs(t, err, cErr.ShiftExists())
	assert.Len(t, shifts.shifts, 1)

	require.Len(t, audit.logs, 2)
	assert.Equal(t, "rejected", audit.logs[1].Outcome)
	assert.Equal(t, cErr.CodeShiftExists, audit.logs[1].Code)
}

func TestCreateShiftEmptyLists(t *testing.T) {
	svc := NewShiftService(newTestPipeline(newFakeLocker(), nil), &memShifts{})
	req := validShiftRequest()
	req.MorningShift = nil
	req.NightShift = []string{}

	_, err := svc.CreateShift(context.Background(), req)

	var appErr *cErr.Error
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "morningShift is empty. nightShift is empty.", appErr.ErrorDesc())
}

func TestCreateShiftReportsDecodeViolationsWithRules(t *testing.T) {
	shifts := &memShifts{}
	svc := NewShiftService(newTestPipeline(newFakeLocker(), nil), shifts)
	req := validShiftRequest()
	req.StartDate = 0
	req.LateShift = nil
	ctx := request.WithDecodeViolations(context.Background(), []cErr.Violation{
		{Field: "startDate", Reason: "startDate is not valid."},
	})

	_, err := svc.CreateShift(ctx, req)

	var appErr *cErr.Error
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, []cErr.Violation{
		{Field: "startDate", Reason: "startDate is not valid."},
		{Field: "lateShift", Reason: "lateShift is empty."},
	}, appErr.Violations())
	assert.Empty(t, shifts.shifts)
}

func TestCreateVacationDefaultsPending(t *testing.T) {
	vacations := &memAbsences{}
	svc := newAbsenceService(newTestPipeline(newFakeLocker(), nil), vacations, &memAbsences{})

	resp, err := svc.CreateVacation(context.Background(), &dto.CreateAbsenceRequest{UID: "u1", StartDate: dayZero, EndDate: dayZero + 72*hour})

	require.NoError(t, err)
	assert.True(t, resp.IsSuccess)
	assert.Equal(t, core.ApprovalPending, resp.Approval)
	assert.NotEmpty(t, resp.VacationID)
	require.Len(t, vacations.absences, 1)
	assert.Equal(t, core.ApprovalPending, vacations.absences[0].Approval)
}

func TestCreateIllnessDefaultsApproved(t *testing.T) {
	illnesses := &memAbsences{}
	svc := newAbsenceService(newTestPipeline(newFakeLocker(), nil), &memAbsences{}, illnesses)

	resp, err := svc.CreateIllness(context.Background(), &dto.CreateAbsenceRequest{UID: "u1", StartDate: dayZero, EndDate: dayZero + 24*hour})

	require.NoError(t, err)
	assert.Equal(t, core.ApprovalApproved, resp.Approval)
	assert.Equal(t, "u1", resp.UID)
	require.Len(t, illnesses.absences, 1)
}

func TestCreateAbsenceDuplicates(t *testing.T) {
	vacations := &memAbsences{}
	illnesses := &memAbsences{}
	svc := newAbsenceService(newTestPipeline(newFakeLocker(), nil), vacations, illnesses)
	req := &dto.CreateAbsenceRequest{UID: "u1", StartDate: dayZero, EndDate: dayZero + 24*hour}

	_, err := svc.CreateVacation(context.Background(), req)
	require.NoError(t, err)
	_, err = svc.CreateVacation(context.Background(), req)
	assert.ErrorIs(t, err, cErr.VacationExists())

	// 同一區間的病假與休假互不衝突
	_, err = svc.CreateIllness(context.Background(), req)
	require.NoError(t, err)
	_, err = svc.CreateIllness(context.Background(), req)
	assert.ErrorIs(t, err, cErr.IllnessExists())

	// 其他使用者不受影響
	_, err = svc.CreateVacation(context.Background(), &dto.CreateAbsenceRequest{UID: "u2", StartDate: dayZero, EndDate: dayZero + 24*hour})
	assert.NoError(t, err)
}

func TestCreateAbsenceDuplicateKeyOnWrite(t *testing.T) {
	vacations := &memAbsences{}
	svc := newAbsenceService(newTestPipeline(newFakeLocker(), nil), vacations, &memAbsences{})
	req := &dto.CreateAbsenceRequest{UID: "u1", StartDate: dayZero, EndDate: dayZero + 24*hour}
	_, err := svc.CreateVacation(context.Background(), req)
	require.NoError(t, err)

	vacations.skipExists = true
	_, err = svc.CreateVacation(context.Background(), req)

	assert.ErrorIs(t, err, cErr.VacationExists())
	assert.Len(t, vacations.absences, 1)
}

func TestCreateAbsenceValidation(t *testing.T) {
	svc := newAbsenceService(newTestPipeline(newFakeLocker(), nil), &memAbsences{}, &memAbsences{})

	_, err := svc.CreateIllness(context.Background(), &dto.CreateAbsenceRequest{UID: "u1", StartDate: dayZero + hour, EndDate: dayZero})
	assert.ErrorIs(t, err, cErr.InvalidArgument(nil))

	_, err = svc.CreateVacation(context.Background(), nil)
	assert.ErrorIs(t, err, cErr.NullRequest())
}
