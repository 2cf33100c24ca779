package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"crm_backend/internal/models"
	"crm_backend/internal/services"
)

type CallLogHandler struct {
	callLogService services.CallLogService
}

func NewCallLogHandler(callLogService services.CallLogService) *CallLogHandler {
	return &CallLogHandler{callLogService: callLogService}
}

func (h *CallLogHandler) GetAll(c *gin.Context) {
	callLogs, err := h.callLogService.GetAllCallLogs()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, callLogs)
}

func (h *CallLogHandler) GetByID(c *gin.Context) {
	callLog, err := h.callLogService.GetCallLogByID(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, callLog)
}

func (h *CallLogHandler) Create(c *gin.Context) {
	var callLog models.CallLog
	if err := c.ShouldBindJSON(&callLog); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	if err := h.callLogService.CreateCallLog(&callLog); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, callLog)
}

func (h *CallLogHandler) Update(c *gin.Context) {
	var updates map[string]interface{}
	if err := c.ShouldBindJSON(&updates); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	callLog, err := h.callLogService.UpdateCallLog(c.Param("id"), updates)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, callLog)
}

func (h *CallLogHandler) Delete(c *gin.Context) {
	if err := h.callLogService.DeleteCallLog(c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Call log deleted"})
}
