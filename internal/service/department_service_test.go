package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/campus-admin-api/internal/models"
	appErrors "github.com/noah-isme/campus-admin-api/pkg/errors"
)

type mockDepartmentRepo struct {
	departments []models.Department
	err         error
}

func (m *mockDepartmentRepo) ExistsByName(_ context.Context, name string) (bool, error) {
	if m.err != nil {
		return false, m.err
	}
	for _, d := range m.departments {
		if d.Name == name {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockDepartmentRepo) List(_ context.Context) ([]models.Department, error) {
	return m.departments, m.err
}

func TestDepartmentExists(t *testing.T) {
	repo := &mockDepartmentRepo{departments: []models.Department{{ID: "d1", Name: "CSE", Code: "CSE"}}}
	svc := NewDepartmentService(repo, nil)

	exists, err := svc.Exists(context.Background(), "CSE")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = svc.Exists(context.Background(), "Alchemy")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestDepartmentExistsWrapsStoreError(t *testing.T) {
	repo := &mockDepartmentRepo{err: errors.New("connection refused")}
	svc := NewDepartmentService(repo, nil)

	_, err := svc.Exists(context.Background(), "CSE")
	require.Error(t, err)
	assert.True(t, appErrors.Is(err, appErrors.ErrInternal))
}

func TestDepartmentList(t *testing.T) {
	repo := &mockDepartmentRepo{departments: []models.Department{
		{ID: "d1", Name: "CSE"},
		{ID: "d2", Name: "EEE"},
	}}
	svc := NewDepartmentService(repo, nil)

	departments, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, departments, 2)
}
