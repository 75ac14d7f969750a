package handler

import (
	"stundenmanager/internal/dto"
	"stundenmanager/internal/pkg/response"
	"stundenmanager/internal/service"
	"stundenmanager/internal/telemetry"
	"stundenmanager/utils/validate"

	"github.com/gin-gonic/gin"
)

type ShiftHandler struct {
	trace        *telemetry.Trace
	shiftService *service.ShiftService
}

func NewShiftHandler(trace *telemetry.Trace, shiftService *service.ShiftService) *ShiftHandler {
	return &ShiftHandler{trace: trace, shiftService: shiftService}
}

// CreateShift 新增排班
// @Summary 新增排班（相同起訖只能一份）
// @Tags Shift
// @Accept json
// @Produce json
// @Param body body dto.CreateShiftRequest true "排班"
// @Success 201 {object} response.Response{data=dto.CreateShiftResponse}
// @Failure 400 {object} response.Response
// @Failure 409 {object} response.Response
// @Failure 500 {object} response.Response
// @Router /rpc/createShift [post]
func (h *ShiftHandler) CreateShift(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	var req dto.CreateShiftRequest
	decoded, cause, respErr := validate.BindRequest(c, &req)
	if cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}

	res, err := h.shiftService.CreateShift(serviceContext(ctx, c, decoded), &req)
	end(err)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Create(c, res)
}
