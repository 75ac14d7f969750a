package dto

import "stundenmanager/internal/pkg/request"

// 時間欄位皆為 epoch 毫秒
type CreateSessionRequest struct {
	UID       string `json:"uid" binding:"required" example:"6f1c2a9e-1b7d-4c55-9a0e-3d2f8b7c1a44"`
	StartTime int64  `json:"startTime" binding:"instant" example:"1700000000000"`
	EndTime   int64  `json:"endTime" binding:"end_after=StartTime" example:"1700028800000"`
}

func (CreateSessionRequest) GetMessages() request.ValidatorMessages {
	return request.ValidatorMessages{
		"uid.required": "uid is null.",
	}
}

type BreakDto struct {
	BreakStart int64 `json:"breakStart"`
	BreakEnd   int64 `json:"breakEnd"`
}

type CreateSessionResponse struct {
	IsSuccess bool       `json:"isSuccess"`
	SessionID string     `json:"sessionId"`
	UID       string     `json:"uid"`
	StartTime int64      `json:"startTime"`
	EndTime   int64      `json:"endTime"`
	Breaks    []BreakDto `json:"breaks"`
}

// 追加休息時間到指定 session
type CreateBreakRequest struct {
	UID        string `json:"uid" binding:"required" example:"6f1c2a9e-1b7d-4c55-9a0e-3d2f8b7c1a44"`
	DocumentID string `json:"documentId" binding:"required" example:"65f1a2b3c4d5e6f708192a3b"`
	StartTime  int64  `json:"startTime" binding:"instant" example:"1700010000000"`
	EndTime    int64  `json:"endTime" binding:"end_after=StartTime" example:"1700011800000"`
}

func (CreateBreakRequest) GetMessages() request.ValidatorMessages {
	return request.ValidatorMessages{
		"uid.required":        "uid is null.",
		"documentId.required": "documentId is null.",
	}
}

type CreateBreakResponse struct {
	IsSuccess  bool   `json:"isSuccess"`
	SessionID  string `json:"sessionId"`
	BreakStart int64  `json:"breakStart"`
	BreakEnd   int64  `json:"breakEnd"`
}
