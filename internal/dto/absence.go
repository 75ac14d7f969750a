package dto

import (
	"stundenmanager/internal/core"
	"stundenmanager/internal/pkg/request"
)

// 休假與病假共用的請求
type CreateAbsenceRequest struct {
	UID       string `json:"uid" binding:"required" example:"6f1c2a9e-1b7d-4c55-9a0e-3d2f8b7c1a44"`
	StartDate int64  `json:"startDate" binding:"instant" example:"1700000000000"`
	EndDate   int64  `json:"endDate" binding:"end_after=StartDate" example:"1700259200000"`
}

func (CreateAbsenceRequest) GetMessages() request.ValidatorMessages {
	return request.ValidatorMessages{
		"uid.required": "uid is null.",
	}
}

type CreateVacationResponse struct {
	IsSuccess  bool                `json:"isSuccess"`
	VacationID string              `json:"vacationId"`
	UID        string              `json:"uid"`
	StartDate  int64               `json:"startDate"`
	EndDate    int64               `json:"endDate"`
	Approval   core.ApprovalStatus `json:"approval"`
}

type CreateIllnessResponse struct {
	IsSuccess bool                `json:"isSuccess"`
	IllnessID string              `json:"illnessId"`
	UID       string              `json:"uid"`
	StartDate int64               `json:"startDate"`
	EndDate   int64               `json:"endDate"`
	Approval  core.ApprovalStatus `json:"approval"`
}
