package handler

import (
	"stundenmanager/internal/dto"
	"stundenmanager/internal/pkg/response"
	"stundenmanager/internal/service"
	"stundenmanager/internal/telemetry"
	"stundenmanager/utils/validate"

	"github.com/gin-gonic/gin"
)

type AbsenceHandler struct {
	trace          *telemetry.Trace
	absenceService *service.AbsenceService
}

func NewAbsenceHandler(trace *telemetry.Trace, absenceService *service.AbsenceService) *AbsenceHandler {
	return &AbsenceHandler{trace: trace, absenceService: absenceService}
}

// CreateVacation 申請休假
// @Summary 申請休假（預設待審）
// @Tags Absence
// @Accept json
// @Produce json
// @Param body body dto.CreateAbsenceRequest true "休假區間（epoch 毫秒）"
// @Success 201 {object} response.Response{data=dto.CreateVacationResponse}
// @Failure 400 {object} response.Response
// @Failure 409 {object} response.Response
// @Failure 500 {object} response.Response
// @Router /rpc/createVacation [post]
func (h *AbsenceHandler) CreateVacation(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	var req dto.CreateAbsenceRequest
	decoded, cause, respErr := validate.BindRequest(c, &req)
	if cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}

	res, err := h.absenceService.CreateVacation(serviceContext(ctx, c, decoded), &req)
	end(err)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Create(c, res)
}

// CreateIllness 回報病假
// @Summary 回報病假（預設核准）
// @Tags Absence
// @Accept json
// @Produce json
// @Param body body dto.CreateAbsenceRequest true "病假區間（epoch 毫秒）"
// @Success 201 {object} response.Response{data=dto.CreateIllnessResponse}
// @Failure 400 {object} response.Response
// @Failure 409 {object} response.Response
// @Failure 500 {object} response.Response
// @Router /rpc/createIllness [post]
func (h *AbsenceHandler) CreateIllness(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	var req dto.CreateAbsenceRequest
	decoded, cause, respErr := validate.BindRequest(c, &req)
	if cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}

	res, err := h.absenceService.CreateIllness(serviceContext(ctx, c, decoded), &req)
	end(err)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Create(c, res)
}
