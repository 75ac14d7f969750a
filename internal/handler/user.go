package handler

import (
	"stundenmanager/internal/dto"
	"stundenmanager/internal/pkg/response"
	"stundenmanager/internal/service"
	"stundenmanager/internal/telemetry"
	"stundenmanager/utils/validate"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	trace       *telemetry.Trace
	userService *service.UserService
}

func NewUserHandler(trace *telemetry.Trace, userService *service.UserService) *UserHandler {
	return &UserHandler{trace: trace, userService: userService}
}

// CreateUser 建立帳號
// @Summary 建立 identity 與使用者資料
// @Tags User
// @Accept json
// @Produce json
// @Param body body dto.CreateUserRequest true "使用者資訊"
// @Success 201 {object} response.Response{data=dto.CreateUserResponse}
// @Failure 400 {object} response.Response
// @Failure 409 {object} response.Response
// @Failure 500 {object} response.Response
// @Router /rpc/createUser [post]
func (h *UserHandler) CreateUser(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	var req dto.CreateUserRequest
	decoded, cause, respErr := validate.BindRequest(c, &req)
	if cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}

	res, err := h.userService.CreateUser(serviceContext(ctx, c, decoded), &req)
	end(err)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Create(c, res)
}
