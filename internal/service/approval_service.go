package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/noah-isme/campus-admin-api/internal/dto"
	"github.com/noah-isme/campus-admin-api/internal/models"
	"github.com/noah-isme/campus-admin-api/internal/repository"
	appErrors "github.com/noah-isme/campus-admin-api/pkg/errors"
)

// duplicateEmpCodeReason is the rejection reason recorded when an approval
// attempt finds the candidate employee code already taken.
const duplicateEmpCodeReason = "Faculty with same employee code already exists"

type approvalRepository interface {
	Create(ctx context.Context, request *models.FacultyApprovalRequest) error
	GetByID(ctx context.Context, id string) (*models.FacultyApprovalRequest, error)
	List(ctx context.Context, status models.ApprovalStatus) ([]models.FacultyApprovalRequest, error)
	UpdateDecision(ctx context.Context, params repository.DecisionParams) error
}

type approvalFacultyStore interface {
	ExistsByEmpCode(ctx context.Context, empCode string) (bool, error)
	Create(ctx context.Context, faculty *models.Faculty) error
}

// ApprovalService owns the faculty approval workflow: pending requests
// submitted by departments that an administrator later approves or rejects.
// Approval re-validates against current state, not the state at submission
// time, and converts doomed approvals into rejections rather than leaving the
// request pending forever.
type ApprovalService struct {
	repo        approvalRepository
	faculties   approvalFacultyStore
	departments departmentChecker
	metrics     *MetricsService
	validator   *validator.Validate
	logger      *zap.Logger
}

// NewApprovalService constructs an ApprovalService.
func NewApprovalService(repo approvalRepository, faculties approvalFacultyStore, departments departmentChecker, metrics *MetricsService, validate *validator.Validate, logger *zap.Logger) *ApprovalService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ApprovalService{
		repo:        repo,
		faculties:   faculties,
		departments: departments,
		metrics:     metrics,
		validator:   validate,
		logger:      logger,
	}
}

// Submit records a new pending request proposing a faculty record.
func (s *ApprovalService) Submit(ctx context.Context, req dto.SubmitApprovalRequest) (*models.FacultyApprovalRequest, error) {
	// Trim before validating so whitespace-only fields fail the required check.
	req.EmpCode = strings.TrimSpace(req.EmpCode)
	req.Name = strings.TrimSpace(req.Name)
	req.Department = strings.TrimSpace(req.Department)
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "empCode, name, and department are required")
	}

	exists, err := s.faculties.ExistsByEmpCode(ctx, req.EmpCode)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to check employee code")
	}
	if exists {
		return nil, appErrors.Clone(appErrors.ErrConflict, "faculty with same employee code already exists")
	}

	departmentExists, err := s.departments.Exists(ctx, req.Department)
	if err != nil {
		return nil, err
	}
	if !departmentExists {
		return nil, appErrors.Clone(appErrors.ErrNotFound, fmt.Sprintf("department not found: %s", req.Department))
	}

	request := &models.FacultyApprovalRequest{
		FacultyCandidate: models.FacultyCandidate{
			EmpCode:    req.EmpCode,
			Name:       req.Name,
			Department: req.Department,
			Email:      normalizeOptional(req.Email),
		},
		Status: models.ApprovalStatusPending,
	}
	if err := s.repo.Create(ctx, request); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to submit approval request")
	}
	return request, nil
}

// List returns approval requests newest first, optionally filtered by status.
func (s *ApprovalService) List(ctx context.Context, status models.ApprovalStatus) ([]models.FacultyApprovalRequest, error) {
	if status != "" && !status.Valid() {
		return nil, appErrors.Clone(appErrors.ErrValidation, "status must be pending, approved, or rejected")
	}
	requests, err := s.repo.List(ctx, status)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list approval requests")
	}
	return requests, nil
}

// Process applies an administrator decision to a pending request. Rejection
// always requires a reason; approval never does.
func (s *ApprovalService) Process(ctx context.Context, requestID string, req dto.ProcessApprovalRequest, processedBy string) (*dto.ProcessApprovalResult, error) {
	requestID = strings.TrimSpace(requestID)
	if requestID == "" {
		return nil, appErrors.Clone(appErrors.ErrValidation, "requestId is required")
	}
	switch req.Action {
	case dto.ApprovalActionApprove:
	case dto.ApprovalActionReject:
		if strings.TrimSpace(req.Reason) == "" {
			return nil, appErrors.Clone(appErrors.ErrValidation, "rejection reason is required")
		}
	case "":
		return nil, appErrors.Clone(appErrors.ErrValidation, "action is required")
	default:
		return nil, appErrors.Clone(appErrors.ErrValidation, "action must be approve or reject")
	}
	if _, err := uuid.Parse(requestID); err != nil {
		return nil, appErrors.Clone(appErrors.ErrValidation, "invalid request id")
	}

	request, err := s.repo.GetByID(ctx, requestID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "approval request not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load approval request")
	}
	if request.Status != models.ApprovalStatusPending {
		return nil, appErrors.Clone(appErrors.ErrConflict, fmt.Sprintf("request already %s", request.Status))
	}

	if req.Action == dto.ApprovalActionApprove {
		return s.approve(ctx, request, processedBy)
	}
	return s.reject(ctx, request, req.Reason, processedBy)
}

// approve re-validates the candidate against current state and creates the
// faculty record. Validation failures flip the request to rejected instead of
// leaving it stuck pending; the caller still sees the underlying error.
func (s *ApprovalService) approve(ctx context.Context, request *models.FacultyApprovalRequest, processedBy string) (*dto.ProcessApprovalResult, error) {
	exists, err := s.faculties.ExistsByEmpCode(ctx, request.EmpCode)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to check employee code")
	}
	if exists {
		if err := s.autoReject(ctx, request, duplicateEmpCodeReason, processedBy); err != nil {
			return nil, err
		}
		return nil, appErrors.Clone(appErrors.ErrConflict, duplicateEmpCodeReason)
	}

	departmentExists, err := s.departments.Exists(ctx, request.Department)
	if err != nil {
		return nil, err
	}
	if !departmentExists {
		reason := fmt.Sprintf("department not found: %s", request.Department)
		if err := s.autoReject(ctx, request, reason, processedBy); err != nil {
			return nil, err
		}
		return nil, appErrors.Clone(appErrors.ErrNotFound, reason)
	}

	// The faculty row is written before the request flips so that a crash in
	// between leaves a pending request whose retry auto-rejects with a
	// conflict instead of duplicating the faculty.
	faculty := &models.Faculty{
		EmpCode:    request.EmpCode,
		Name:       request.Name,
		Department: request.Department,
		Email:      request.Email,
	}
	if err := s.faculties.Create(ctx, faculty); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmpCode) {
			if rejectErr := s.autoReject(ctx, request, duplicateEmpCodeReason, processedBy); rejectErr != nil {
				return nil, rejectErr
			}
			return nil, appErrors.Clone(appErrors.ErrConflict, duplicateEmpCodeReason)
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create faculty")
	}

	if err := s.repo.UpdateDecision(ctx, repository.DecisionParams{
		ID:          request.ID,
		Status:      models.ApprovalStatusApproved,
		ProcessedAt: time.Now().UTC(),
		ProcessedBy: processedBy,
	}); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrConflict, "request already processed")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update approval request")
	}

	s.metrics.RecordDecision(string(models.ApprovalStatusApproved))
	s.logger.Info("faculty approval request approved",
		zap.String("request_id", request.ID),
		zap.String("emp_code", request.EmpCode),
		zap.String("processed_by", processedBy),
	)
	return &dto.ProcessApprovalResult{
		RequestID: request.ID,
		Status:    models.ApprovalStatusApproved,
		Message:   "faculty approved and created",
	}, nil
}

func (s *ApprovalService) reject(ctx context.Context, request *models.FacultyApprovalRequest, reason, processedBy string) (*dto.ProcessApprovalResult, error) {
	reason = strings.TrimSpace(reason)
	if err := s.repo.UpdateDecision(ctx, repository.DecisionParams{
		ID:              request.ID,
		Status:          models.ApprovalStatusRejected,
		RejectionReason: &reason,
		ProcessedAt:     time.Now().UTC(),
		ProcessedBy:     processedBy,
	}); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrConflict, "request already processed")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update approval request")
	}

	s.metrics.RecordDecision(string(models.ApprovalStatusRejected))
	s.logger.Info("faculty approval request rejected",
		zap.String("request_id", request.ID),
		zap.String("emp_code", request.EmpCode),
		zap.String("processed_by", processedBy),
	)
	return &dto.ProcessApprovalResult{
		RequestID: request.ID,
		Status:    models.ApprovalStatusRejected,
		Message:   "faculty request rejected",
	}, nil
}

// autoReject flips a request to rejected when decision-time re-validation
// fails. A raced-away pending row surfaces as a conflict.
func (s *ApprovalService) autoReject(ctx context.Context, request *models.FacultyApprovalRequest, reason, processedBy string) error {
	if err := s.repo.UpdateDecision(ctx, repository.DecisionParams{
		ID:              request.ID,
		Status:          models.ApprovalStatusRejected,
		RejectionReason: &reason,
		ProcessedAt:     time.Now().UTC(),
		ProcessedBy:     processedBy,
	}); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return appErrors.Clone(appErrors.ErrConflict, "request already processed")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update approval request")
	}
	s.metrics.RecordDecision(string(models.ApprovalStatusRejected))
	s.logger.Warn("faculty approval request auto-rejected",
		zap.String("request_id", request.ID),
		zap.String("emp_code", request.EmpCode),
		zap.String("reason", reason),
	)
	return nil
}
