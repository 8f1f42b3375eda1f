package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/campus-admin-api/internal/dto"
)

func TestBulkAddPartialSuccess(t *testing.T) {
	repo := newMockFacultyRepo()
	svc := newTestFacultyService(repo, "CSE")

	report := svc.BulkAdd(context.Background(), []dto.CreateFacultyRequest{
		{EmpCode: "E1", Name: "A. Roy", Department: "CSE"},
		{EmpCode: "E2", Name: "No Department"},
		{EmpCode: "E3", Name: "C. Das", Department: "CSE"},
	}, nil)

	require.Len(t, report.Successful, 2)
	require.Len(t, report.Failed, 1)
	assert.Equal(t, "E1", report.Successful[0].EmpCode)
	assert.Equal(t, "E3", report.Successful[1].EmpCode)
	assert.Equal(t, "E2", report.Failed[0].EmpCode)
	assert.NotEmpty(t, report.Failed[0].Error)

	assert.Len(t, repo.faculties, 2)
	assert.NotContains(t, repo.faculties, "E2")
}

func TestBulkAddFailureDoesNotAbortBatch(t *testing.T) {
	repo := newMockFacultyRepo()
	svc := newTestFacultyService(repo, "CSE")

	report := svc.BulkAdd(context.Background(), []dto.CreateFacultyRequest{
		{EmpCode: "E1", Name: "A. Roy", Department: "CSE"},
		{EmpCode: "E1", Name: "Duplicate", Department: "CSE"},
		{EmpCode: "E2", Name: "B. Ross", Department: "CSE"},
	}, nil)

	require.Len(t, report.Successful, 2)
	require.Len(t, report.Failed, 1)
	assert.Equal(t, "E1", report.Failed[0].EmpCode)
	assert.Equal(t, "A. Roy", repo.faculties["E1"].Name)
}

func TestBulkAddUnknownIdentifier(t *testing.T) {
	repo := newMockFacultyRepo()
	svc := newTestFacultyService(repo, "CSE")

	report := svc.BulkAdd(context.Background(), []dto.CreateFacultyRequest{
		{Name: "No Code", Department: "CSE"},
	}, nil)

	require.Len(t, report.Failed, 1)
	assert.Equal(t, unknownItemID, report.Failed[0].EmpCode)
}

func TestBulkAddEmptyBatch(t *testing.T) {
	repo := newMockFacultyRepo()
	svc := newTestFacultyService(repo, "CSE")

	report := svc.BulkAdd(context.Background(), nil, nil)
	assert.NotNil(t, report.Successful)
	assert.NotNil(t, report.Failed)
	assert.Empty(t, report.Successful)
	assert.Empty(t, report.Failed)
}

func TestBulkUpdatePartialSuccess(t *testing.T) {
	repo := newMockFacultyRepo()
	svc := newTestFacultyService(repo, "CSE")
	_, err := svc.AddSingle(context.Background(), dto.CreateFacultyRequest{EmpCode: "E1", Name: "A. Roy", Department: "CSE"})
	require.NoError(t, err)
	_, err = svc.AddSingle(context.Background(), dto.CreateFacultyRequest{EmpCode: "E2", Name: "B. Ross", Department: "CSE"})
	require.NoError(t, err)

	report := svc.BulkUpdate(context.Background(), []dto.BulkUpdateItem{
		{EmpCode: "E1", UpdateFacultyRequest: dto.UpdateFacultyRequest{Name: strPtr("A. Roy Jr.")}},
		{EmpCode: "ghost", UpdateFacultyRequest: dto.UpdateFacultyRequest{Name: strPtr("Nobody")}},
		{EmpCode: "E2", UpdateFacultyRequest: dto.UpdateFacultyRequest{Email: strPtr("ross@campus.edu")}},
	}, nil)

	require.Len(t, report.Successful, 2)
	require.Len(t, report.Failed, 1)
	assert.Equal(t, []string{"name"}, report.Successful[0].ChangedFields)
	assert.Equal(t, []string{"email"}, report.Successful[1].ChangedFields)
	assert.Equal(t, "ghost", report.Failed[0].EmpCode)
	assert.Equal(t, "A. Roy Jr.", repo.faculties["E1"].Name)
}

func TestBulkUpdateNoOpItemCountsAsSuccess(t *testing.T) {
	repo := newMockFacultyRepo()
	svc := newTestFacultyService(repo, "CSE")
	_, err := svc.AddSingle(context.Background(), dto.CreateFacultyRequest{EmpCode: "E1", Name: "A. Roy", Department: "CSE"})
	require.NoError(t, err)

	report := svc.BulkUpdate(context.Background(), []dto.BulkUpdateItem{
		{EmpCode: "E1", UpdateFacultyRequest: dto.UpdateFacultyRequest{Name: strPtr("A. Roy")}},
	}, nil)

	require.Len(t, report.Successful, 1)
	assert.Empty(t, report.Successful[0].ChangedFields)
	assert.Empty(t, report.Failed)
}
