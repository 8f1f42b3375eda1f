package models

import "time"

// ApprovalStatus captures workflow states for faculty approval requests.
type ApprovalStatus string

const (
	ApprovalStatusPending  ApprovalStatus = "pending"
	ApprovalStatusApproved ApprovalStatus = "approved"
	ApprovalStatusRejected ApprovalStatus = "rejected"
)

// Valid reports whether the status is one of the known workflow states.
func (s ApprovalStatus) Valid() bool {
	switch s {
	case ApprovalStatusPending, ApprovalStatusApproved, ApprovalStatusRejected:
		return true
	}
	return false
}

// Terminal reports whether the status admits no further transition.
func (s ApprovalStatus) Terminal() bool {
	return s == ApprovalStatusApproved || s == ApprovalStatusRejected
}

// FacultyCandidate holds the proposed faculty fields embedded in an approval request.
type FacultyCandidate struct {
	EmpCode    string  `db:"emp_code" json:"empCode"`
	Name       string  `db:"name" json:"name"`
	Department string  `db:"department" json:"department"`
	Email      *string `db:"email" json:"email,omitempty"`
}

// FacultyApprovalRequest is a proposed faculty record awaiting an administrative
// decision. Status is monotonic: once it leaves pending it never changes again.
type FacultyApprovalRequest struct {
	ID string `db:"id" json:"id"`
	FacultyCandidate
	Status          ApprovalStatus `db:"status" json:"status"`
	RejectionReason *string        `db:"rejection_reason" json:"rejectionReason,omitempty"`
	CreatedAt       time.Time      `db:"created_at" json:"createdAt"`
	ProcessedAt     *time.Time     `db:"processed_at" json:"processedAt,omitempty"`
	ProcessedBy     *string        `db:"processed_by" json:"processedBy,omitempty"`
}
