package handler

import (
	"stundenmanager/internal/dto"
	"stundenmanager/internal/pkg/response"
	"stundenmanager/internal/service"
	"stundenmanager/internal/telemetry"
	"stundenmanager/utils/validate"

	"github.com/gin-gonic/gin"
)

type SessionHandler struct {
	trace          *telemetry.Trace
	sessionService *service.SessionService
}

func NewSessionHandler(trace *telemetry.Trace, sessionService *service.SessionService) *SessionHandler {
	return &SessionHandler{trace: trace, sessionService: sessionService}
}

// CreateSession 新增工作時段
// @Summary 新增工作時段（同一使用者不可重疊）
// @Tags Session
// @Accept json
// @Produce json
// @Param body body dto.CreateSessionRequest true "時段（epoch 毫秒）"
// @Success 201 {object} response.Response{data=dto.CreateSessionResponse}
// @Failure 400 {object} response.Response
// @Failure 409 {object} response.Response
// @Failure 500 {object} response.Response
// @Router /rpc/createSession [post]
func (h *SessionHandler) CreateSession(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	var req dto.CreateSessionRequest
	decoded, cause, respErr := validate.BindRequest(c, &req)
	if cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}

	res, err := h.sessionService.CreateSession(serviceContext(ctx, c, decoded), &req)
	end(err)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Create(c, res)
}

// CreateBreak 追加休息時間
// @Summary 追加休息時間到既有工作時段
// @Tags Session
// @Accept json
// @Produce json
// @Param body body dto.CreateBreakRequest true "休息時間（epoch 毫秒）"
// @Success 201 {object} response.Response{data=dto.CreateBreakResponse}
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 409 {object} response.Response
// @Failure 500 {object} response.Response
// @Router /rpc/createBreak [post]
func (h *SessionHandler) CreateBreak(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	var req dto.CreateBreakRequest
	decoded, cause, respErr := validate.BindRequest(c, &req)
	if cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}

	res, err := h.sessionService.CreateBreak(serviceContext(ctx, c, decoded), &req)
	end(err)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Create(c, res)
}
