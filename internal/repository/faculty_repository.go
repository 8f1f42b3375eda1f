package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/noah-isme/campus-admin-api/internal/models"
)

// ErrDuplicateEmpCode is returned when an insert trips the unique constraint on
// emp_code. The constraint is the source of truth for uniqueness; application
// pre-checks only exist for friendlier error messages.
var ErrDuplicateEmpCode = errors.New("duplicate employee code")

const uniqueViolation = "23505"

// likeEscaper neutralizes LIKE metacharacters in user-supplied search text so a
// query of "%" matches literal percent signs, not every row.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// FacultyRepository manages persistence for faculty records.
type FacultyRepository struct {
	db *sqlx.DB
}

// NewFacultyRepository constructs a FacultyRepository.
func NewFacultyRepository(db *sqlx.DB) *FacultyRepository {
	return &FacultyRepository{db: db}
}

// List returns faculty records, optionally filtered by exact department match.
// Ordering follows insertion order.
func (r *FacultyRepository) List(ctx context.Context, filter models.FacultyFilter) ([]models.Faculty, error) {
	query := "SELECT id, emp_code, name, department, email, subjects, created_at, updated_at FROM faculties"
	var args []interface{}
	if filter.Department != "" {
		query += " WHERE department = $1"
		args = append(args, filter.Department)
	}
	query += " ORDER BY created_at ASC"

	faculties := []models.Faculty{}
	if err := r.db.SelectContext(ctx, &faculties, query, args...); err != nil {
		return nil, fmt.Errorf("list faculties: %w", err)
	}
	return faculties, nil
}

// FindByEmpCode fetches a faculty record by employee code.
func (r *FacultyRepository) FindByEmpCode(ctx context.Context, empCode string) (*models.Faculty, error) {
	const query = `SELECT id, emp_code, name, department, email, subjects, created_at, updated_at FROM faculties WHERE emp_code = $1`
	var faculty models.Faculty
	if err := r.db.GetContext(ctx, &faculty, query, empCode); err != nil {
		return nil, err
	}
	return &faculty, nil
}

// ExistsByEmpCode checks whether a faculty record uses the given employee code.
func (r *FacultyRepository) ExistsByEmpCode(ctx context.Context, empCode string) (bool, error) {
	const query = `SELECT 1 FROM faculties WHERE emp_code = $1 LIMIT 1`
	var exists int
	if err := r.db.GetContext(ctx, &exists, query, empCode); err != nil {
		if err == sql.ErrNoRows {
			return false, nil
		}
		return false, fmt.Errorf("check faculty emp code: %w", err)
	}
	return true, nil
}

// Suggest returns up to limit faculty projections whose name or employee code
// contains the query, case-insensitively, optionally restricted to a department.
func (r *FacultyRepository) Suggest(ctx context.Context, query, department string, limit int) ([]models.FacultySuggestion, error) {
	if limit <= 0 {
		limit = 10
	}
	pattern := "%" + likeEscaper.Replace(strings.ToLower(query)) + "%"
	sqlQuery := "SELECT id, emp_code, name, department, email FROM faculties WHERE (LOWER(name) LIKE $1 OR LOWER(emp_code) LIKE $1)"
	args := []interface{}{pattern}
	if department != "" {
		sqlQuery += " AND department = $2"
		args = append(args, department)
	}
	sqlQuery += fmt.Sprintf(" ORDER BY name ASC LIMIT %d", limit)

	suggestions := []models.FacultySuggestion{}
	if err := r.db.SelectContext(ctx, &suggestions, sqlQuery, args...); err != nil {
		return nil, fmt.Errorf("suggest faculties: %w", err)
	}
	return suggestions, nil
}

// Create inserts a new faculty record. A unique-constraint violation on
// emp_code is reported as ErrDuplicateEmpCode.
func (r *FacultyRepository) Create(ctx context.Context, faculty *models.Faculty) error {
	if faculty.ID == "" {
		faculty.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	if faculty.CreatedAt.IsZero() {
		faculty.CreatedAt = now
	}
	faculty.UpdatedAt = now
	if faculty.Subjects == nil {
		faculty.Subjects = pq.StringArray{}
	}

	const query = `INSERT INTO faculties (id, emp_code, name, department, email, subjects, created_at, updated_at)
		VALUES (:id, :emp_code, :name, :department, :email, :subjects, :created_at, :updated_at)`
	if _, err := r.db.NamedExecContext(ctx, query, faculty); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return ErrDuplicateEmpCode
		}
		return fmt.Errorf("create faculty: %w", err)
	}
	return nil
}

// UpdateFields applies a partial update to the faculty with the given employee
// code. Allowed keys are name, email, and department. Returns sql.ErrNoRows
// when no such faculty exists.
func (r *FacultyRepository) UpdateFields(ctx context.Context, empCode string, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return nil
	}
	setParts := make([]string, 0, len(fields)+1)
	args := make([]interface{}, 0, len(fields)+2)
	for _, column := range []string{"name", "email", "department"} {
		value, ok := fields[column]
		if !ok {
			continue
		}
		args = append(args, value)
		setParts = append(setParts, fmt.Sprintf("%s = $%d", column, len(args)))
	}
	args = append(args, time.Now().UTC())
	setParts = append(setParts, fmt.Sprintf("updated_at = $%d", len(args)))
	args = append(args, empCode)

	query := fmt.Sprintf("UPDATE faculties SET %s WHERE emp_code = $%d", strings.Join(setParts, ", "), len(args))
	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update faculty: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("check faculty update rows: %w", err)
	}
	if rows == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// AppendSubjects unions the given subject codes into the faculty's subject set.
// Codes already assigned are left untouched, so the operation is idempotent.
// Returns sql.ErrNoRows when no such faculty exists.
func (r *FacultyRepository) AppendSubjects(ctx context.Context, empCode string, subjects []string) error {
	const query = `UPDATE faculties
		SET subjects = subjects || (
			SELECT COALESCE(array_agg(DISTINCT s), '{}') FROM unnest($2::text[]) AS s
			WHERE NOT (s = ANY(subjects))
		),
		updated_at = $3
		WHERE emp_code = $1`
	result, err := r.db.ExecContext(ctx, query, empCode, pq.StringArray(subjects), time.Now().UTC())
	if err != nil {
		return fmt.Errorf("assign subjects: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("check subject assignment rows: %w", err)
	}
	if rows == 0 {
		return sql.ErrNoRows
	}
	return nil
}
