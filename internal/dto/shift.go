package dto

import "stundenmanager/internal/pkg/request"

// 三個班別都必須至少有一位 uid
type CreateShiftRequest struct {
	StartDate    int64    `json:"startDate" binding:"instant" example:"1700000000000"`
	EndDate      int64    `json:"endDate" binding:"end_after=StartDate" example:"1700604800000"`
	MorningShift []string `json:"morningShift" binding:"nonempty,dive,required"`
	LateShift    []string `json:"lateShift" binding:"nonempty,dive,required"`
	NightShift   []string `json:"nightShift" binding:"nonempty,dive,required"`
}

func (CreateShiftRequest) GetMessages() request.ValidatorMessages {
	return request.ValidatorMessages{
		"morningShift.nonempty":   "morningShift is empty.",
		"lateShift.nonempty":      "lateShift is empty.",
		"nightShift.nonempty":     "nightShift is empty.",
		"morningShift.*.required": "morningShift contains an empty uid.",
		"lateShift.*.required":    "lateShift contains an empty uid.",
		"nightShift.*.required":   "nightShift contains an empty uid.",
	}
}

type CreateShiftResponse struct {
	IsSuccess bool   `json:"isSuccess"`
	ShiftID   string `json:"shiftId"`
	StartDate int64  `json:"startDate"`
	EndDate   int64  `json:"endDate"`
}
