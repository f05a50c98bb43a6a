package handlers

import (
	"errors"
	"net/http"

	"leadform/models"
	"leadform/services/attribution"
	"leadform/services/form"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// FormHandler serves the form-flow endpoints consumed by the landing pages.
type FormHandler struct {
	service  form.FormFlowService
	registry *form.PageRegistry
	logger   *zap.Logger
}

// NewFormHandler creates a new FormHandler.
func NewFormHandler(service form.FormFlowService, registry *form.PageRegistry, logger *zap.Logger) *FormHandler {
	return &FormHandler{
		service:  service,
		registry: registry,
		logger:   logger,
	}
}

// StartSession creates a session for one page view. The attribution query
// parameters are read here, once, exactly as the page received them.
func (h *FormHandler) StartSession(c *gin.Context) {
	attr := attribution.Params{
		Source:   c.Query("src"),
		Blog:     c.Query("blog"),
		Cafe:     c.Query("cafe"),
		Material: c.Query("material"),
	}

	resp, err := h.service.StartSession(c.Request.Context(), c.Param("page"), attr)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// GetSession returns the current session state.
func (h *FormHandler) GetSession(c *gin.Context) {
	resp, err := h.service.GetSession(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// UpdateSession merges a partial field update into the session.
func (h *FormHandler) UpdateSession(c *gin.Context) {
	var update models.FieldUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	resp, err := h.service.UpdateFields(c.Request.Context(), c.Param("sessionID"), update)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// AdvanceStep moves the course page from selection to the contact step.
func (h *FormHandler) AdvanceStep(c *gin.Context) {
	resp, err := h.service.AdvanceStep(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// UpdateCourses toggles one course and/or sets the free-text entry.
func (h *FormHandler) UpdateCourses(c *gin.Context) {
	var input struct {
		Course *string `json:"course"`
		Custom *string `json:"custom"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	sessionID := c.Param("sessionID")
	var resp *models.FormSessionResponse
	var err error
	if input.Course != nil {
		resp, err = h.service.ToggleCourse(c.Request.Context(), sessionID, *input.Course)
		if err != nil {
			h.respondError(c, err)
			return
		}
	}
	if input.Custom != nil {
		resp, err = h.service.SetCustomCourse(c.Request.Context(), sessionID, *input.Custom)
		if err != nil {
			h.respondError(c, err)
			return
		}
	}
	if resp == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "nothing to update"})
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Submit posts the assembled record to the consultation endpoint.
func (h *FormHandler) Submit(c *gin.Context) {
	resp, err := h.service.Submit(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ListPages returns the registered page definitions.
func (h *FormHandler) ListPages(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"pages": h.registry.List()})
}

func (h *FormHandler) respondError(c *gin.Context, err error) {
	var submitErr *form.SubmitError
	switch {
	case errors.Is(err, form.ErrSessionNotFound), errors.Is(err, form.ErrUnknownPage):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, form.ErrNotSubmittable):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	case errors.Is(err, form.ErrSubmitInFlight),
		errors.Is(err, form.ErrAlreadyCompleted),
		errors.Is(err, form.ErrInvalidStep):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.As(err, &submitErr):
		c.JSON(http.StatusBadGateway, gin.H{"error": submitErr.Message})
	default:
		h.logger.Error("form flow failure", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
