package router

import (
	"stundenmanager/internal/handler"

	"github.com/gin-gonic/gin"
)

// RPCRouter 每個用例一個 POST /rpc/<operation>
type RPCRouter struct {
	userHandler    *handler.UserHandler
	sessionHandler *handler.SessionHandler
	shiftHandler   *handler.ShiftHandler
	absenceHandler *handler.AbsenceHandler
}

func NewRPCRouter(
	userHandler *handler.UserHandler,
	sessionHandler *handler.SessionHandler,
	shiftHandler *handler.ShiftHandler,
	absenceHandler *handler.AbsenceHandler,
) *RPCRouter {
	return &RPCRouter{
		userHandler:    userHandler,
		sessionHandler: sessionHandler,
		shiftHandler:   shiftHandler,
		absenceHandler: absenceHandler,
	}
}

func (rr *RPCRouter) RegisterRoutes(r *gin.Engine) {
	rpc := r.Group("/rpc")
	{
		rpc.POST("/createUser", rr.userHandler.CreateUser)
		rpc.POST("/createSession", rr.sessionHandler.CreateSession)
		rpc.POST("/createBreak", rr.sessionHandler.CreateBreak)
		rpc.POST("/createShift", rr.shiftHandler.CreateShift)
		rpc.POST("/createVacation", rr.absenceHandler.CreateVacation)
		rpc.POST("/createIllness", rr.absenceHandler.CreateIllness)
	}
}
