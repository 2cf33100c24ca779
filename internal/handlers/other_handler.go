// Tasks, customers, users, shift notes and remark logs share one
// handler, mirroring how closely related these side entities are.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"crm_backend/internal/models"
	"crm_backend/internal/services"
)

type OtherHandler struct {
	taskService      services.TaskService
	customerService  services.CustomerService
	userService      services.UserService
	shiftNoteService services.ShiftNoteService
	remarkLogService services.RemarkLogService
}

func NewOtherHandler(
	taskService services.TaskService,
	customerService services.CustomerService,
	userService services.UserService,
	shiftNoteService services.ShiftNoteService,
	remarkLogService services.RemarkLogService,
) *OtherHandler {
	return &OtherHandler{
		taskService:      taskService,
		customerService:  customerService,
		userService:      userService,
		shiftNoteService: shiftNoteService,
		remarkLogService: remarkLogService,
	}
}

// Tasks

func (h *OtherHandler) GetAllTasks(c *gin.Context) {
	tasks, err := h.taskService.GetAllTasks()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, tasks)
}

func (h *OtherHandler) CreateTask(c *gin.Context) {
	var task models.Task
	if err := c.ShouldBindJSON(&task); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}
	if err := h.taskService.CreateTask(&task); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, task)
}

func (h *OtherHandler) UpdateTask(c *gin.Context) {
	var updates map[string]interface{}
	if err := c.ShouldBindJSON(&updates); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}
	task, err := h.taskService.UpdateTask(c.Param("id"), updates)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, task)
}

func (h *OtherHandler) DeleteTask(c *gin.Context) {
	if err := h.taskService.DeleteTask(c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Task deleted"})
}

// Customers

func (h *OtherHandler) GetAllCustomers(c *gin.Context) {
	customers, err := h.customerService.GetAllCustomers()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, customers)
}

func (h *OtherHandler) CreateCustomer(c *gin.Context) {
	var customer models.Customer
	if err := c.ShouldBindJSON(&customer); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}
	if err := h.customerService.CreateCustomer(&customer); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, customer)
}

func (h *OtherHandler) UpdateCustomer(c *gin.Context) {
	var updates map[string]interface{}
	if err := c.ShouldBindJSON(&updates); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}
	customer, err := h.customerService.UpdateCustomer(c.Param("id"), updates)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, customer)
}

// Users

func (h *OtherHandler) GetAllUsers(c *gin.Context) {
	users, err := h.userService.GetAllUsers()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// Shift notes

func (h *OtherHandler) GetAllShiftNotes(c *gin.Context) {
	notes, err := h.shiftNoteService.GetAllShiftNotes()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, notes)
}

func (h *OtherHandler) CreateShiftNote(c *gin.Context) {
	var note models.ShiftNote
	if err := c.ShouldBindJSON(&note); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}
	if err := h.shiftNoteService.CreateShiftNote(&note); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, note)
}

func (h *OtherHandler) UpdateShiftNote(c *gin.Context) {
	var req struct {
		Content  string `json:"content"`
		IsActive bool   `json:"isActive"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}
	note, err := h.shiftNoteService.UpdateShiftNote(c.Param("id"), req.Content, req.IsActive)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, note)
}

// Remark logs (append-only)

func (h *OtherHandler) GetRemarkLogs(c *gin.Context) {
	remarks, err := h.remarkLogService.GetRemarkLogs(c.Query("entityType"), c.Query("entityId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, remarks)
}

func (h *OtherHandler) CreateRemarkLog(c *gin.Context) {
	var remark models.RemarkLog
	if err := c.ShouldBindJSON(&remark); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}
	if err := h.remarkLogService.CreateRemarkLog(&remark); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, remark)
}
