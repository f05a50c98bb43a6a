package handlers

import (
	"net/http"
	"time"

	"leadform/config"
	leadRepo "leadform/database/repository/lead"
	"leadform/utils"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

const adminTokenTTL = 12 * time.Hour

// AdminHandler serves the lead inspection endpoints for the marketing team.
type AdminHandler struct {
	leads leadRepo.LeadRepository
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(leads leadRepo.LeadRepository) *AdminHandler {
	return &AdminHandler{leads: leads}
}

// LoginHandler exchanges the admin access key for a JWT.
func (h *AdminHandler) LoginHandler(c *gin.Context) {
	var input struct {
		Key string `json:"key" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}

	hash := config.AppConfig.AdminKeyHash
	if hash == "" || bcrypt.CompareHashAndPassword([]byte(hash), []byte(input.Key)) != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid admin key"})
		return
	}

	token, err := utils.GenerateAdminToken(adminTokenTTL)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to issue token", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token})
}

// GetAllLeadsHandler lists stored leads, optionally filtered by page slug.
func (h *AdminHandler) GetAllLeadsHandler(c *gin.Context) {
	leads, err := h.leads.List(c.Request.Context(), c.Query("page"))
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list leads", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"leads": leads, "count": len(leads)})
}

// GetLeadHandler returns one lead by id.
func (h *AdminHandler) GetLeadHandler(c *gin.Context) {
	lead, err := h.leads.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "lead not found"})
		return
	}
	c.JSON(http.StatusOK, lead)
}

// DeleteLeadHandler removes one lead by id.
func (h *AdminHandler) DeleteLeadHandler(c *gin.Context) {
	if err := h.leads.DeleteByID(c.Request.Context(), c.Param("id")); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "lead not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
