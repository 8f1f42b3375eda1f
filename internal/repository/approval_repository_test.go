package repository

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/campus-admin-api/internal/models"
)

func approvalColumns() []string {
	return []string{"id", "emp_code", "name", "department", "email", "status", "rejection_reason", "created_at", "processed_at", "processed_by"}
}

func TestApprovalRepositoryCreate(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewApprovalRepository(db)

	mock.ExpectExec("INSERT INTO faculty_approval_requests").
		WithArgs(sqlmock.AnyArg(), "E1", "A. Roy", "CSE", nil, "pending", nil, sqlmock.AnyArg(), nil, nil).
		WillReturnResult(sqlmock.NewResult(1, 1))

	request := &models.FacultyApprovalRequest{
		FacultyCandidate: models.FacultyCandidate{EmpCode: "E1", Name: "A. Roy", Department: "CSE"},
	}
	require.NoError(t, repo.Create(context.Background(), request))
	assert.NotEmpty(t, request.ID)
	assert.Equal(t, models.ApprovalStatusPending, request.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestApprovalRepositoryGetByID(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewApprovalRepository(db)

	rows := sqlmock.NewRows(approvalColumns()).
		AddRow("req-1", "E1", "A. Roy", "CSE", nil, "pending", nil, time.Now(), nil, nil)
	mock.ExpectQuery(regexp.QuoteMeta("FROM faculty_approval_requests WHERE id = $1")).
		WithArgs("req-1").
		WillReturnRows(rows)

	request, err := repo.GetByID(context.Background(), "req-1")
	require.NoError(t, err)
	assert.Equal(t, "E1", request.EmpCode)
	assert.Equal(t, models.ApprovalStatusPending, request.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestApprovalRepositoryListByStatus(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewApprovalRepository(db)

	rows := sqlmock.NewRows(approvalColumns()).
		AddRow("req-2", "E2", "B. Ross", "EEE", nil, "pending", nil, time.Now(), nil, nil).
		AddRow("req-1", "E1", "A. Roy", "CSE", nil, "pending", nil, time.Now().Add(-time.Hour), nil, nil)
	mock.ExpectQuery(regexp.QuoteMeta("WHERE status = $1 ORDER BY created_at DESC")).
		WithArgs(models.ApprovalStatusPending).
		WillReturnRows(rows)

	requests, err := repo.List(context.Background(), models.ApprovalStatusPending)
	require.NoError(t, err)
	require.Len(t, requests, 2)
	assert.Equal(t, "req-2", requests[0].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestApprovalRepositoryUpdateDecision(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewApprovalRepository(db)

	mock.ExpectExec("UPDATE faculty_approval_requests").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.UpdateDecision(context.Background(), DecisionParams{
		ID:          "req-1",
		Status:      models.ApprovalStatusApproved,
		ProcessedAt: time.Now().UTC(),
		ProcessedBy: "admin-1",
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestApprovalRepositoryUpdateDecisionAlreadyProcessed(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewApprovalRepository(db)

	mock.ExpectExec("UPDATE faculty_approval_requests").
		WillReturnResult(sqlmock.NewResult(0, 0))

	reason := "duplicate"
	err := repo.UpdateDecision(context.Background(), DecisionParams{
		ID:              "req-1",
		Status:          models.ApprovalStatusRejected,
		RejectionReason: &reason,
		ProcessedAt:     time.Now().UTC(),
		ProcessedBy:     "admin-1",
	})
	assert.True(t, errors.Is(err, sql.ErrNoRows))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDepartmentRepositoryExistsByName(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewDepartmentRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT 1 FROM departments WHERE name = $1 LIMIT 1")).
		WithArgs("CSE").
		WillReturnRows(sqlmock.NewRows([]string{"1"}).AddRow(1))

	exists, err := repo.ExistsByName(context.Background(), "CSE")
	require.NoError(t, err)
	assert.True(t, exists)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT 1 FROM departments WHERE name = $1 LIMIT 1")).
		WithArgs("Basket Weaving").
		WillReturnError(sql.ErrNoRows)

	exists, err = repo.ExistsByName(context.Background(), "Basket Weaving")
	require.NoError(t, err)
	assert.False(t, exists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDepartmentRepositoryList(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewDepartmentRepository(db)

	rows := sqlmock.NewRows([]string{"id", "name", "code", "created_at"}).
		AddRow("d1", "CSE", "CSE", time.Now()).
		AddRow("d2", "EEE", "EEE", time.Now())
	mock.ExpectQuery(regexp.QuoteMeta("FROM departments ORDER BY name ASC")).
		WillReturnRows(rows)

	departments, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, departments, 2)
	assert.NoError(t, mock.ExpectationsWereMet())
}
