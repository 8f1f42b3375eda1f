package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/campus-admin-api/internal/dto"
	"github.com/noah-isme/campus-admin-api/internal/models"
	"github.com/noah-isme/campus-admin-api/internal/service"
	appErrors "github.com/noah-isme/campus-admin-api/pkg/errors"
	"github.com/noah-isme/campus-admin-api/pkg/response"
)

type facultyService interface {
	AddSingle(ctx context.Context, req dto.CreateFacultyRequest) (*models.Faculty, error)
	BulkAdd(ctx context.Context, items []dto.CreateFacultyRequest, metrics *service.MetricsService) dto.BulkReport
	UpdateSingle(ctx context.Context, empCode string, req dto.UpdateFacultyRequest) ([]string, error)
	BulkUpdate(ctx context.Context, items []dto.BulkUpdateItem, metrics *service.MetricsService) dto.BulkReport
	Get(ctx context.Context, department string) ([]models.Faculty, error)
	GetByEmpCode(ctx context.Context, empCode string) (*models.Faculty, error)
	Suggest(ctx context.Context, query, department string) ([]models.FacultySuggestion, error)
	AssignSubjects(ctx context.Context, empCode string, subjects []string) error
}

// FacultyHandler wires the faculty directory to HTTP routes. Single and bulk
// variants are separate routes with separate payload shapes, never inferred
// from field presence.
type FacultyHandler struct {
	faculties facultyService
	metrics   *service.MetricsService
}

// NewFacultyHandler constructs a FacultyHandler.
func NewFacultyHandler(faculties facultyService, metrics *service.MetricsService) *FacultyHandler {
	return &FacultyHandler{faculties: faculties, metrics: metrics}
}

// Create godoc
// @Summary Create one faculty record
// @Tags Faculties
// @Accept json
// @Produce json
// @Param payload body dto.CreateFacultyRequest true "Faculty payload"
// @Success 201 {object} response.Envelope
// @Router /faculties [post]
func (h *FacultyHandler) Create(c *gin.Context) {
	var req dto.CreateFacultyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "invalid faculty payload"))
		return
	}
	faculty, err := h.faculties.AddSingle(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, faculty)
}

// BulkCreate godoc
// @Summary Create faculty records in bulk
// @Tags Faculties
// @Accept json
// @Produce json
// @Param payload body dto.BulkCreateFacultyRequest true "Batch payload"
// @Success 200 {object} response.Envelope
// @Router /faculties/bulk [post]
func (h *FacultyHandler) BulkCreate(c *gin.Context) {
	var req dto.BulkCreateFacultyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "invalid bulk payload"))
		return
	}
	// An empty batch is valid input and yields an empty report; only a payload
	// that fails to bind is rejected.
	report := h.faculties.BulkAdd(c.Request.Context(), req.Faculties, h.metrics)
	response.JSON(c, http.StatusOK, report, nil)
}

// Update godoc
// @Summary Partially update one faculty record
// @Tags Faculties
// @Accept json
// @Produce json
// @Param empCode path string true "Employee code"
// @Param payload body dto.UpdateFacultyRequest true "Fields to change"
// @Success 200 {object} response.Envelope
// @Router /faculties/{empCode} [patch]
func (h *FacultyHandler) Update(c *gin.Context) {
	var req dto.UpdateFacultyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "invalid faculty payload"))
		return
	}
	changed, err := h.faculties.UpdateSingle(c.Request.Context(), c.Param("empCode"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"changedFields": changed}, nil)
}

// BulkUpdate godoc
// @Summary Partially update faculty records in bulk
// @Tags Faculties
// @Accept json
// @Produce json
// @Param payload body dto.BulkUpdateFacultyRequest true "Batch payload"
// @Success 200 {object} response.Envelope
// @Router /faculties/bulk [patch]
func (h *FacultyHandler) BulkUpdate(c *gin.Context) {
	var req dto.BulkUpdateFacultyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "invalid bulk payload"))
		return
	}
	report := h.faculties.BulkUpdate(c.Request.Context(), req.FacultyUpdates, h.metrics)
	response.JSON(c, http.StatusOK, report, nil)
}

// List godoc
// @Summary List faculty records
// @Tags Faculties
// @Produce json
// @Param department query string false "Exact department name"
// @Success 200 {object} response.Envelope
// @Router /faculties [get]
func (h *FacultyHandler) List(c *gin.Context) {
	faculties, err := h.faculties.Get(c.Request.Context(), c.Query("department"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, faculties, nil)
}

// Get godoc
// @Summary Get one faculty record by employee code
// @Tags Faculties
// @Produce json
// @Param empCode path string true "Employee code"
// @Success 200 {object} response.Envelope
// @Router /faculties/{empCode} [get]
func (h *FacultyHandler) Get(c *gin.Context) {
	faculty, err := h.faculties.GetByEmpCode(c.Request.Context(), c.Param("empCode"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, faculty, nil)
}

// Suggestions godoc
// @Summary Suggest faculty matches for a partial name or employee code
// @Tags Faculties
// @Produce json
// @Param q query string true "Substring to match"
// @Param department query string false "Exact department name"
// @Success 200 {object} response.Envelope
// @Router /faculties/suggestions [get]
func (h *FacultyHandler) Suggestions(c *gin.Context) {
	suggestions, err := h.faculties.Suggest(c.Request.Context(), c.Query("q"), c.Query("department"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, suggestions, nil)
}

// AssignSubjects godoc
// @Summary Assign subject codes to a faculty member
// @Tags Faculties
// @Accept json
// @Produce json
// @Param empCode path string true "Employee code"
// @Param payload body dto.AssignSubjectsRequest true "Subject codes"
// @Success 200 {object} response.Envelope
// @Router /faculties/{empCode}/subjects [post]
func (h *FacultyHandler) AssignSubjects(c *gin.Context) {
	var req dto.AssignSubjectsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "invalid subjects payload"))
		return
	}
	empCode := c.Param("empCode")
	if err := h.faculties.AssignSubjects(c.Request.Context(), empCode, req.Subjects); err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"message": "subjects assigned"}, nil)
}
