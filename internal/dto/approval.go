package dto

import "github.com/noah-isme/campus-admin-api/internal/models"

// SubmitApprovalRequest is the payload a department submits to propose a new
// faculty record.
type SubmitApprovalRequest struct {
	EmpCode    string  `json:"empCode" validate:"required"`
	Name       string  `json:"name" validate:"required"`
	Department string  `json:"department" validate:"required"`
	Email      *string `json:"email" validate:"omitempty,email"`
}

// ApprovalAction enumerates administrator decisions.
type ApprovalAction string

const (
	ApprovalActionApprove ApprovalAction = "approve"
	ApprovalActionReject  ApprovalAction = "reject"
)

// ProcessApprovalRequest captures the administrator decision. Reason is
// mandatory for rejections and ignored for approvals.
type ProcessApprovalRequest struct {
	Action ApprovalAction `json:"action"`
	Reason string         `json:"reason"`
}

// ApprovalQuery mirrors supported listing filters.
type ApprovalQuery struct {
	Status models.ApprovalStatus
}

// ProcessApprovalResult reports the outcome of a decision.
type ProcessApprovalResult struct {
	RequestID string                `json:"requestId"`
	Status    models.ApprovalStatus `json:"status"`
	Message   string                `json:"message"`
}
