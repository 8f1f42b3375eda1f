package dto

// CreateFacultyRequest is the payload for creating one faculty record.
type CreateFacultyRequest struct {
	EmpCode    string  `json:"empCode" validate:"required"`
	Name       string  `json:"name" validate:"required"`
	Department string  `json:"department" validate:"required"`
	Email      *string `json:"email" validate:"omitempty,email"`
}

// BulkCreateFacultyRequest carries an ordered batch of create payloads. It is a
// distinct request variant bound at the route level, never inferred from field
// presence inside a handler.
type BulkCreateFacultyRequest struct {
	Faculties []CreateFacultyRequest `json:"faculties"`
}

// UpdateFacultyRequest is a partial update; nil pointers mean "leave untouched"
// while non-nil pointers (including pointers to the empty string) are applied.
// An empty email clears the stored value.
type UpdateFacultyRequest struct {
	Name       *string `json:"name"`
	Email      *string `json:"email"`
	Department *string `json:"department"`
}

// BulkUpdateItem pairs an employee code with its partial update.
type BulkUpdateItem struct {
	EmpCode string `json:"empCode"`
	UpdateFacultyRequest
}

// BulkUpdateFacultyRequest carries an ordered batch of update payloads.
type BulkUpdateFacultyRequest struct {
	FacultyUpdates []BulkUpdateItem `json:"facultyUpdates"`
}

// AssignSubjectsRequest adds subject codes to a faculty member. Assignment is
// additive; codes already present are left untouched.
type AssignSubjectsRequest struct {
	Subjects []string `json:"subjects" validate:"required,min=1"`
}

// BulkSuccess records one batch item that went through.
type BulkSuccess struct {
	EmpCode       string   `json:"empCode"`
	ID            string   `json:"id,omitempty"`
	ChangedFields []string `json:"changedFields,omitempty"`
}

// BulkFailure records one batch item that was rejected, with the error message
// produced by the single-item operation.
type BulkFailure struct {
	EmpCode string `json:"empCode"`
	Error   string `json:"error"`
}

// BulkReport aggregates per-item outcomes of a batch. Partial success is the
// expected common case; the batch itself never aborts on an item failure.
type BulkReport struct {
	Successful []BulkSuccess `json:"successful"`
	Failed     []BulkFailure `json:"failed"`
}
