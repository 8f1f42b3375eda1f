package models

import (
	"time"

	"github.com/lib/pq"
)

// Faculty represents a hired instructor record keyed by employee code.
type Faculty struct {
	ID         string         `db:"id" json:"id"`
	EmpCode    string         `db:"emp_code" json:"empCode"`
	Name       string         `db:"name" json:"name"`
	Department string         `db:"department" json:"department"`
	Email      *string        `db:"email" json:"email,omitempty"`
	Subjects   pq.StringArray `db:"subjects" json:"subjects"`
	CreatedAt  time.Time      `db:"created_at" json:"createdAt"`
	UpdatedAt  time.Time      `db:"updated_at" json:"updatedAt"`
}

// FacultySuggestion is the reduced projection returned by suggestion lookups.
type FacultySuggestion struct {
	ID         string  `db:"id" json:"id"`
	EmpCode    string  `db:"emp_code" json:"empCode"`
	Name       string  `db:"name" json:"name"`
	Department string  `db:"department" json:"department"`
	Email      *string `db:"email" json:"email,omitempty"`
}

// FacultyFilter constrains faculty listing queries.
type FacultyFilter struct {
	Department string
}
