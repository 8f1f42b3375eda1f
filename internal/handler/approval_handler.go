package handler

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/campus-admin-api/internal/dto"
	"github.com/noah-isme/campus-admin-api/internal/models"
	appErrors "github.com/noah-isme/campus-admin-api/pkg/errors"
	"github.com/noah-isme/campus-admin-api/pkg/response"
)

type approvalService interface {
	Submit(ctx context.Context, req dto.SubmitApprovalRequest) (*models.FacultyApprovalRequest, error)
	List(ctx context.Context, status models.ApprovalStatus) ([]models.FacultyApprovalRequest, error)
	Process(ctx context.Context, requestID string, req dto.ProcessApprovalRequest, processedBy string) (*dto.ProcessApprovalResult, error)
}

// ApprovalHandler exposes REST endpoints for the faculty approval workflow.
type ApprovalHandler struct {
	approvals approvalService
}

// NewApprovalHandler constructs an ApprovalHandler.
func NewApprovalHandler(approvals approvalService) *ApprovalHandler {
	return &ApprovalHandler{approvals: approvals}
}

// Submit godoc
// @Summary Submit a faculty approval request
// @Tags Faculty Requests
// @Accept json
// @Produce json
// @Param payload body dto.SubmitApprovalRequest true "Candidate faculty"
// @Success 201 {object} response.Envelope
// @Router /faculty-requests [post]
func (h *ApprovalHandler) Submit(c *gin.Context) {
	var req dto.SubmitApprovalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "invalid approval request payload"))
		return
	}
	request, err := h.approvals.Submit(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusCreated, request, nil)
}

// List godoc
// @Summary List faculty approval requests, newest first
// @Tags Faculty Requests
// @Produce json
// @Param status query string false "pending, approved, or rejected"
// @Success 200 {object} response.Envelope
// @Router /faculty-requests [get]
func (h *ApprovalHandler) List(c *gin.Context) {
	status := models.ApprovalStatus(strings.ToLower(strings.TrimSpace(c.Query("status"))))
	requests, err := h.approvals.List(c.Request.Context(), status)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, requests, nil)
}

// Process godoc
// @Summary Approve or reject a pending faculty request
// @Tags Faculty Requests
// @Accept json
// @Produce json
// @Param id path string true "Request ID"
// @Param payload body dto.ProcessApprovalRequest true "Decision"
// @Success 200 {object} response.Envelope
// @Router /faculty-requests/{id}/process [post]
func (h *ApprovalHandler) Process(c *gin.Context) {
	var req dto.ProcessApprovalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "invalid decision payload"))
		return
	}
	admin := adminFromContext(c)
	if admin == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}
	result, err := h.approvals.Process(c.Request.Context(), c.Param("id"), req, admin.ID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, result, nil)
}
