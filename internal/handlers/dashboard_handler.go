package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"crm_backend/internal/services"
)

type DashboardHandler struct {
	statsService services.StatsService
}

func NewDashboardHandler(statsService services.StatsService) *DashboardHandler {
	return &DashboardHandler{statsService: statsService}
}

func (h *DashboardHandler) GetStats(c *gin.Context) {
	stats, err := h.statsService.GetDashboardStats()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}
