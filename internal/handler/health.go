package handler

import (
	"net/http"

	"stundenmanager/config"
	"stundenmanager/internal/dto"
	"stundenmanager/internal/service"

	"github.com/gin-gonic/gin"
)

type HealthHandler struct {
	healthStatus *service.HealthService
	version      string
}

func NewHealthHandler(status *service.HealthService, config *config.Configuration) *HealthHandler {
	return &HealthHandler{healthStatus: status, version: config.App.Version}
}

// Liveness
// @Summary 存活檢查
// @Tags Health
// @Produce json
// @Success 200 {object} dto.HealthResponse
// @Failure 503
// @Router /health/liveness [get]
func (h *HealthHandler) Liveness(c *gin.Context) {
	if h.healthStatus.IsLive() {
		c.JSON(http.StatusOK, dto.HealthResponse{Status: "alive"})
		return
	}
	c.Status(http.StatusServiceUnavailable)
}

// Readiness
// @Summary 就緒檢查（索引完成、listener 綁定且 mongo ping 成功才回 200）
// @Tags Health
// @Produce json
// @Success 200 {object} dto.HealthResponse
// @Failure 503
// @Router /health/readiness [get]
func (h *HealthHandler) Readiness(c *gin.Context) {
	if h.healthStatus.IsReady(c.Request.Context()) {
		c.JSON(http.StatusOK, dto.HealthResponse{Status: "ready"})
		return
	}
	c.Status(http.StatusServiceUnavailable)
}

// Version
// @Summary 服務版本
// @Tags Health
// @Produce json
// @Success 200 {object} dto.HealthResponse
// @Router /version [get]
func (h *HealthHandler) Version(c *gin.Context) {
	c.JSON(http.StatusOK, dto.HealthResponse{Status: "ok", Version: h.version})
}
