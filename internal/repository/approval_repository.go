package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/campus-admin-api/internal/models"
)

// ApprovalRepository persists faculty approval requests.
type ApprovalRepository struct {
	db *sqlx.DB
}

// NewApprovalRepository constructs an ApprovalRepository.
func NewApprovalRepository(db *sqlx.DB) *ApprovalRepository {
	return &ApprovalRepository{db: db}
}

// Create inserts a new pending approval request.
func (r *ApprovalRepository) Create(ctx context.Context, request *models.FacultyApprovalRequest) error {
	if request.ID == "" {
		request.ID = uuid.NewString()
	}
	if request.Status == "" {
		request.Status = models.ApprovalStatusPending
	}
	if request.CreatedAt.IsZero() {
		request.CreatedAt = time.Now().UTC()
	}
	const query = `INSERT INTO faculty_approval_requests
		(id, emp_code, name, department, email, status, rejection_reason, created_at, processed_at, processed_by)
		VALUES (:id, :emp_code, :name, :department, :email, :status, :rejection_reason, :created_at, :processed_at, :processed_by)`
	if _, err := r.db.NamedExecContext(ctx, query, request); err != nil {
		return fmt.Errorf("create approval request: %w", err)
	}
	return nil
}

// GetByID fetches an approval request by identifier.
func (r *ApprovalRepository) GetByID(ctx context.Context, id string) (*models.FacultyApprovalRequest, error) {
	const query = `SELECT id, emp_code, name, department, email, status, rejection_reason, created_at, processed_at, processed_by
		FROM faculty_approval_requests WHERE id = $1`
	var request models.FacultyApprovalRequest
	if err := r.db.GetContext(ctx, &request, query, id); err != nil {
		return nil, err
	}
	return &request, nil
}

// List returns approval requests newest first, optionally filtered by status.
func (r *ApprovalRepository) List(ctx context.Context, status models.ApprovalStatus) ([]models.FacultyApprovalRequest, error) {
	builder := strings.Builder{}
	builder.WriteString(`SELECT id, emp_code, name, department, email, status, rejection_reason, created_at, processed_at, processed_by
		FROM faculty_approval_requests`)
	var args []interface{}
	if status != "" {
		args = append(args, status)
		builder.WriteString(" WHERE status = $1")
	}
	builder.WriteString(" ORDER BY created_at DESC")

	requests := []models.FacultyApprovalRequest{}
	if err := r.db.SelectContext(ctx, &requests, builder.String(), args...); err != nil {
		return nil, fmt.Errorf("list approval requests: %w", err)
	}
	return requests, nil
}

// DecisionParams groups the columns written when a request is processed.
type DecisionParams struct {
	ID              string
	Status          models.ApprovalStatus
	RejectionReason *string
	ProcessedAt     time.Time
	ProcessedBy     string
}

// UpdateDecision transitions a pending request to a terminal status. The update
// is conditional on the row still being pending; sql.ErrNoRows signals the
// request was already processed.
func (r *ApprovalRepository) UpdateDecision(ctx context.Context, params DecisionParams) error {
	query := fmt.Sprintf(`UPDATE faculty_approval_requests
		SET status = :status, rejection_reason = :rejection_reason, processed_at = :processed_at, processed_by = :processed_by
		WHERE id = :id AND status = '%s'`, models.ApprovalStatusPending)
	result, err := r.db.NamedExecContext(ctx, query, map[string]interface{}{
		"id":               params.ID,
		"status":           params.Status,
		"rejection_reason": params.RejectionReason,
		"processed_at":     params.ProcessedAt,
		"processed_by":     params.ProcessedBy,
	})
	if err != nil {
		return fmt.Errorf("update approval decision: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("check approval decision rows: %w", err)
	}
	if rows == 0 {
		return sql.ErrNoRows
	}
	return nil
}
