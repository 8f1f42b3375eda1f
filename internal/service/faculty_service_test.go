package service

import (
	"context"
	"database/sql"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/campus-admin-api/internal/dto"
	"github.com/noah-isme/campus-admin-api/internal/models"
	"github.com/noah-isme/campus-admin-api/internal/repository"
	appErrors "github.com/noah-isme/campus-admin-api/pkg/errors"
)

type mockFacultyRepo struct {
	faculties   map[string]*models.Faculty
	order       []string
	createErr   error
	updateCalls int
}

func newMockFacultyRepo() *mockFacultyRepo {
	return &mockFacultyRepo{faculties: map[string]*models.Faculty{}}
}

func (m *mockFacultyRepo) List(_ context.Context, filter models.FacultyFilter) ([]models.Faculty, error) {
	var out []models.Faculty
	for _, empCode := range m.order {
		faculty := m.faculties[empCode]
		if filter.Department != "" && faculty.Department != filter.Department {
			continue
		}
		out = append(out, *faculty)
	}
	return out, nil
}

func (m *mockFacultyRepo) FindByEmpCode(_ context.Context, empCode string) (*models.Faculty, error) {
	faculty, ok := m.faculties[empCode]
	if !ok {
		return nil, sql.ErrNoRows
	}
	copied := *faculty
	return &copied, nil
}

func (m *mockFacultyRepo) ExistsByEmpCode(_ context.Context, empCode string) (bool, error) {
	_, ok := m.faculties[empCode]
	return ok, nil
}

func (m *mockFacultyRepo) Suggest(_ context.Context, query, department string, limit int) ([]models.FacultySuggestion, error) {
	needle := strings.ToLower(query)
	var out []models.FacultySuggestion
	for _, faculty := range m.faculties {
		if department != "" && faculty.Department != department {
			continue
		}
		if !strings.Contains(strings.ToLower(faculty.Name), needle) &&
			!strings.Contains(strings.ToLower(faculty.EmpCode), needle) {
			continue
		}
		out = append(out, models.FacultySuggestion{
			ID:         faculty.ID,
			EmpCode:    faculty.EmpCode,
			Name:       faculty.Name,
			Department: faculty.Department,
			Email:      faculty.Email,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (m *mockFacultyRepo) Create(_ context.Context, faculty *models.Faculty) error {
	if m.createErr != nil {
		return m.createErr
	}
	if _, ok := m.faculties[faculty.EmpCode]; ok {
		return repository.ErrDuplicateEmpCode
	}
	if faculty.ID == "" {
		faculty.ID = "id-" + faculty.EmpCode
	}
	copied := *faculty
	m.faculties[faculty.EmpCode] = &copied
	m.order = append(m.order, faculty.EmpCode)
	return nil
}

func (m *mockFacultyRepo) UpdateFields(_ context.Context, empCode string, fields map[string]interface{}) error {
	m.updateCalls++
	faculty, ok := m.faculties[empCode]
	if !ok {
		return sql.ErrNoRows
	}
	if name, ok := fields["name"]; ok {
		faculty.Name = name.(string)
	}
	if email, ok := fields["email"]; ok {
		if email == nil {
			faculty.Email = nil
		} else {
			value := email.(string)
			faculty.Email = &value
		}
	}
	if department, ok := fields["department"]; ok {
		faculty.Department = department.(string)
	}
	return nil
}

func (m *mockFacultyRepo) AppendSubjects(_ context.Context, empCode string, subjects []string) error {
	faculty, ok := m.faculties[empCode]
	if !ok {
		return sql.ErrNoRows
	}
	existing := map[string]bool{}
	for _, s := range faculty.Subjects {
		existing[s] = true
	}
	seen := map[string]bool{}
	for _, s := range subjects {
		if existing[s] || seen[s] {
			continue
		}
		seen[s] = true
		faculty.Subjects = append(faculty.Subjects, s)
	}
	return nil
}

type stubDepartments struct {
	names map[string]bool
}

func (s stubDepartments) Exists(_ context.Context, name string) (bool, error) {
	return s.names[name], nil
}

func newTestFacultyService(repo *mockFacultyRepo, departments ...string) *FacultyService {
	names := map[string]bool{}
	for _, name := range departments {
		names[name] = true
	}
	return NewFacultyService(repo, stubDepartments{names: names}, nil, nil, nil)
}

func strPtr(s string) *string { return &s }

func TestAddSingleCreatesAndIsRetrievable(t *testing.T) {
	repo := newMockFacultyRepo()
	svc := newTestFacultyService(repo, "CSE")

	created, err := svc.AddSingle(context.Background(), dto.CreateFacultyRequest{
		EmpCode:    "E1",
		Name:       "A. Roy",
		Department: "CSE",
		Email:      strPtr("roy@campus.edu"),
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)

	loaded, err := svc.GetByEmpCode(context.Background(), "E1")
	require.NoError(t, err)
	assert.Equal(t, created.EmpCode, loaded.EmpCode)
	assert.Equal(t, created.Name, loaded.Name)
	assert.Equal(t, created.Department, loaded.Department)
	require.NotNil(t, loaded.Email)
	assert.Equal(t, "roy@campus.edu", *loaded.Email)
}

func TestAddSingleMissingFields(t *testing.T) {
	repo := newMockFacultyRepo()
	svc := newTestFacultyService(repo, "CSE")

	_, err := svc.AddSingle(context.Background(), dto.CreateFacultyRequest{Name: "No Code"})
	require.Error(t, err)
	assert.True(t, appErrors.Is(err, appErrors.ErrValidation))
	assert.Empty(t, repo.faculties)
}

func TestAddSingleWhitespaceOnlyFields(t *testing.T) {
	repo := newMockFacultyRepo()
	svc := newTestFacultyService(repo, "CSE")

	_, err := svc.AddSingle(context.Background(), dto.CreateFacultyRequest{
		EmpCode:    "   ",
		Name:       "Ghost",
		Department: "CSE",
	})
	require.Error(t, err)
	assert.True(t, appErrors.Is(err, appErrors.ErrValidation))
	assert.Empty(t, repo.faculties)
}

func TestAddSingleTrimsFields(t *testing.T) {
	repo := newMockFacultyRepo()
	svc := newTestFacultyService(repo, "CSE")

	created, err := svc.AddSingle(context.Background(), dto.CreateFacultyRequest{
		EmpCode:    " E1 ",
		Name:       " A. Roy ",
		Department: "CSE",
	})
	require.NoError(t, err)
	assert.Equal(t, "E1", created.EmpCode)
	assert.Equal(t, "A. Roy", created.Name)

	// The padded spelling of the same code must hit the trimmed stored value.
	_, err = svc.AddSingle(context.Background(), dto.CreateFacultyRequest{
		EmpCode:    "  E1",
		Name:       "Someone Else",
		Department: "CSE",
	})
	require.Error(t, err)
	assert.True(t, appErrors.Is(err, appErrors.ErrConflict))
}

func TestAddSingleDuplicateEmpCode(t *testing.T) {
	repo := newMockFacultyRepo()
	svc := newTestFacultyService(repo, "CSE")

	_, err := svc.AddSingle(context.Background(), dto.CreateFacultyRequest{EmpCode: "E1", Name: "A. Roy", Department: "CSE"})
	require.NoError(t, err)

	_, err = svc.AddSingle(context.Background(), dto.CreateFacultyRequest{EmpCode: "E1", Name: "Someone Else", Department: "CSE"})
	require.Error(t, err)
	assert.True(t, appErrors.Is(err, appErrors.ErrConflict))
	assert.Len(t, repo.faculties, 1)
	assert.Equal(t, "A. Roy", repo.faculties["E1"].Name)
}

func TestAddSingleDuplicateRaceOnInsert(t *testing.T) {
	repo := newMockFacultyRepo()
	repo.createErr = repository.ErrDuplicateEmpCode
	svc := newTestFacultyService(repo, "CSE")

	_, err := svc.AddSingle(context.Background(), dto.CreateFacultyRequest{EmpCode: "E1", Name: "A. Roy", Department: "CSE"})
	require.Error(t, err)
	assert.True(t, appErrors.Is(err, appErrors.ErrConflict))
}

func TestAddSingleUnknownDepartment(t *testing.T) {
	repo := newMockFacultyRepo()
	svc := newTestFacultyService(repo, "CSE")

	_, err := svc.AddSingle(context.Background(), dto.CreateFacultyRequest{EmpCode: "E1", Name: "A. Roy", Department: "History"})
	require.Error(t, err)
	assert.True(t, appErrors.Is(err, appErrors.ErrNotFound))
	assert.Contains(t, err.Error(), "History")
	assert.Empty(t, repo.faculties)
}

func TestUpdateSingleChangedFields(t *testing.T) {
	repo := newMockFacultyRepo()
	svc := newTestFacultyService(repo, "CSE", "EEE")
	_, err := svc.AddSingle(context.Background(), dto.CreateFacultyRequest{EmpCode: "E1", Name: "A. Roy", Department: "CSE"})
	require.NoError(t, err)

	changed, err := svc.UpdateSingle(context.Background(), "E1", dto.UpdateFacultyRequest{
		Name:       strPtr("A. Roy Jr."),
		Department: strPtr("EEE"),
	})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"name", "department"}, changed)
	assert.Equal(t, "A. Roy Jr.", repo.faculties["E1"].Name)
	assert.Equal(t, "EEE", repo.faculties["E1"].Department)
}

func TestUpdateSingleNoOpWhenValuesUnchanged(t *testing.T) {
	repo := newMockFacultyRepo()
	svc := newTestFacultyService(repo, "CSE")
	_, err := svc.AddSingle(context.Background(), dto.CreateFacultyRequest{EmpCode: "E1", Name: "A. Roy", Department: "CSE"})
	require.NoError(t, err)

	changed, err := svc.UpdateSingle(context.Background(), "E1", dto.UpdateFacultyRequest{
		Name:       strPtr("A. Roy"),
		Department: strPtr("CSE"),
	})
	require.NoError(t, err)
	assert.Empty(t, changed)
	assert.Zero(t, repo.updateCalls)
}

func TestUpdateSingleEmptyPayloadIsNoOp(t *testing.T) {
	repo := newMockFacultyRepo()
	svc := newTestFacultyService(repo, "CSE")
	_, err := svc.AddSingle(context.Background(), dto.CreateFacultyRequest{EmpCode: "E1", Name: "A. Roy", Department: "CSE"})
	require.NoError(t, err)

	changed, err := svc.UpdateSingle(context.Background(), "E1", dto.UpdateFacultyRequest{})
	require.NoError(t, err)
	assert.NotNil(t, changed)
	assert.Empty(t, changed)
}

func TestUpdateSingleEmptyEmailClearsValue(t *testing.T) {
	repo := newMockFacultyRepo()
	svc := newTestFacultyService(repo, "CSE")
	_, err := svc.AddSingle(context.Background(), dto.CreateFacultyRequest{
		EmpCode:    "E1",
		Name:       "A. Roy",
		Department: "CSE",
		Email:      strPtr("roy@campus.edu"),
	})
	require.NoError(t, err)

	changed, err := svc.UpdateSingle(context.Background(), "E1", dto.UpdateFacultyRequest{Email: strPtr("  ")})
	require.NoError(t, err)
	assert.Equal(t, []string{"email"}, changed)
	assert.Nil(t, repo.faculties["E1"].Email)

	// Clearing an already-absent email is a no-op, matching the create path's
	// NULL representation.
	changed, err = svc.UpdateSingle(context.Background(), "E1", dto.UpdateFacultyRequest{Email: strPtr("")})
	require.NoError(t, err)
	assert.Empty(t, changed)
}

func TestUpdateSingleMissingFaculty(t *testing.T) {
	repo := newMockFacultyRepo()
	svc := newTestFacultyService(repo, "CSE")

	_, err := svc.UpdateSingle(context.Background(), "ghost", dto.UpdateFacultyRequest{Name: strPtr("New")})
	require.Error(t, err)
	assert.True(t, appErrors.Is(err, appErrors.ErrNotFound))
}

func TestUpdateSingleDepartmentRevalidated(t *testing.T) {
	repo := newMockFacultyRepo()
	svc := newTestFacultyService(repo, "CSE")
	_, err := svc.AddSingle(context.Background(), dto.CreateFacultyRequest{EmpCode: "E1", Name: "A. Roy", Department: "CSE"})
	require.NoError(t, err)

	_, err = svc.UpdateSingle(context.Background(), "E1", dto.UpdateFacultyRequest{Department: strPtr("Alchemy")})
	require.Error(t, err)
	assert.True(t, appErrors.Is(err, appErrors.ErrNotFound))
	assert.Equal(t, "CSE", repo.faculties["E1"].Department)
}

func TestSuggestEmptyQuery(t *testing.T) {
	repo := newMockFacultyRepo()
	svc := newTestFacultyService(repo, "CSE")

	suggestions, err := svc.Suggest(context.Background(), "   ", "")
	require.NoError(t, err)
	assert.NotNil(t, suggestions)
	assert.Empty(t, suggestions)
}

func TestSuggestCaseInsensitiveAndCapped(t *testing.T) {
	repo := newMockFacultyRepo()
	svc := newTestFacultyService(repo, "CSE")
	for i := 0; i < 15; i++ {
		_, err := svc.AddSingle(context.Background(), dto.CreateFacultyRequest{
			EmpCode:    "ROY" + string(rune('A'+i)),
			Name:       "Prof Roy " + string(rune('A'+i)),
			Department: "CSE",
		})
		require.NoError(t, err)
	}

	suggestions, err := svc.Suggest(context.Background(), "rOy", "")
	require.NoError(t, err)
	assert.Len(t, suggestions, suggestionLimit)
}

func TestSuggestFilterByDepartment(t *testing.T) {
	repo := newMockFacultyRepo()
	svc := newTestFacultyService(repo, "CSE", "EEE")
	_, err := svc.AddSingle(context.Background(), dto.CreateFacultyRequest{EmpCode: "E1", Name: "A. Roy", Department: "CSE"})
	require.NoError(t, err)
	_, err = svc.AddSingle(context.Background(), dto.CreateFacultyRequest{EmpCode: "E2", Name: "B. Roy", Department: "EEE"})
	require.NoError(t, err)

	suggestions, err := svc.Suggest(context.Background(), "roy", "EEE")
	require.NoError(t, err)
	require.Len(t, suggestions, 1)
	assert.Equal(t, "E2", suggestions[0].EmpCode)
}

func TestAssignSubjectsIdempotent(t *testing.T) {
	repo := newMockFacultyRepo()
	svc := newTestFacultyService(repo, "CSE")
	_, err := svc.AddSingle(context.Background(), dto.CreateFacultyRequest{EmpCode: "E1", Name: "A. Roy", Department: "CSE"})
	require.NoError(t, err)

	require.NoError(t, svc.AssignSubjects(context.Background(), "E1", []string{"CS101", "CS102"}))
	require.NoError(t, svc.AssignSubjects(context.Background(), "E1", []string{"CS102", "CS103"}))

	assert.Equal(t, []string{"CS101", "CS102", "CS103"}, []string(repo.faculties["E1"].Subjects))
}

func TestAssignSubjectsValidation(t *testing.T) {
	repo := newMockFacultyRepo()
	svc := newTestFacultyService(repo, "CSE")

	err := svc.AssignSubjects(context.Background(), "E1", []string{"  ", ""})
	require.Error(t, err)
	assert.True(t, appErrors.Is(err, appErrors.ErrValidation))

	err = svc.AssignSubjects(context.Background(), "ghost", []string{"CS101"})
	require.Error(t, err)
	assert.True(t, appErrors.Is(err, appErrors.ErrNotFound))
}

func TestGetFiltersByDepartment(t *testing.T) {
	repo := newMockFacultyRepo()
	svc := newTestFacultyService(repo, "CSE", "EEE")
	_, err := svc.AddSingle(context.Background(), dto.CreateFacultyRequest{EmpCode: "E1", Name: "A. Roy", Department: "CSE"})
	require.NoError(t, err)
	_, err = svc.AddSingle(context.Background(), dto.CreateFacultyRequest{EmpCode: "E2", Name: "B. Ross", Department: "EEE"})
	require.NoError(t, err)

	all, err := svc.Get(context.Background(), "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	cse, err := svc.Get(context.Background(), "CSE")
	require.NoError(t, err)
	require.Len(t, cse, 1)
	assert.Equal(t, "E1", cse[0].EmpCode)
}
