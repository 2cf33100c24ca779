package handlers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"crm_backend/internal/models"
	"crm_backend/internal/services"
)

type LeadHandler struct {
	leadService services.LeadService
}

func NewLeadHandler(leadService services.LeadService) *LeadHandler {
	return &LeadHandler{leadService: leadService}
}

func (h *LeadHandler) GetAll(c *gin.Context) {
	leads, err := h.leadService.GetAllLeads()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, leads)
}

func (h *LeadHandler) GetByID(c *gin.Context) {
	lead, err := h.leadService.GetLeadByID(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, lead)
}

func (h *LeadHandler) Create(c *gin.Context) {
	var lead models.Lead
	if err := c.ShouldBindJSON(&lead); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	if err := h.leadService.CreateLead(&lead); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, lead)
}

func (h *LeadHandler) Update(c *gin.Context) {
	var updates map[string]interface{}
	if err := c.ShouldBindJSON(&updates); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	lead, err := h.leadService.UpdateLead(c.Param("id"), updates)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, lead)
}

func (h *LeadHandler) Delete(c *gin.Context) {
	if err := h.leadService.DeleteLead(c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Lead deleted"})
}

// Convert turns a lead into an order. The body is optional; when
// present it carries order overrides in the create-order shape.
func (h *LeadHandler) Convert(c *gin.Context) {
	var overrides *services.CreateOrderRequest
	var req services.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err == nil {
		overrides = &req
	} else if err != io.EOF {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	order, err := h.leadService.ConvertToOrder(c.Param("id"), overrides)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, order)
}
