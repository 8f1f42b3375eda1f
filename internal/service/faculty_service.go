package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/campus-admin-api/internal/dto"
	"github.com/noah-isme/campus-admin-api/internal/models"
	"github.com/noah-isme/campus-admin-api/internal/repository"
	appErrors "github.com/noah-isme/campus-admin-api/pkg/errors"
)

// suggestionLimit caps the number of rows returned by suggestion lookups.
const suggestionLimit = 10

const suggestCachePattern = "faculty:suggest:*"

type facultyRepository interface {
	List(ctx context.Context, filter models.FacultyFilter) ([]models.Faculty, error)
	FindByEmpCode(ctx context.Context, empCode string) (*models.Faculty, error)
	ExistsByEmpCode(ctx context.Context, empCode string) (bool, error)
	Suggest(ctx context.Context, query, department string, limit int) ([]models.FacultySuggestion, error)
	Create(ctx context.Context, faculty *models.Faculty) error
	UpdateFields(ctx context.Context, empCode string, fields map[string]interface{}) error
	AppendSubjects(ctx context.Context, empCode string, subjects []string) error
}

type departmentChecker interface {
	Exists(ctx context.Context, name string) (bool, error)
}

// FacultyService owns the faculty directory: creation, partial updates,
// listing, suggestion search, and subject assignment.
type FacultyService struct {
	repo        facultyRepository
	departments departmentChecker
	cache       *CacheService
	validator   *validator.Validate
	logger      *zap.Logger
}

// NewFacultyService constructs a FacultyService.
func NewFacultyService(repo facultyRepository, departments departmentChecker, cache *CacheService, validate *validator.Validate, logger *zap.Logger) *FacultyService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &FacultyService{repo: repo, departments: departments, cache: cache, validator: validate, logger: logger}
}

// AddSingle creates one faculty record. The existence pre-check produces a
// friendly conflict early; the unique constraint on emp_code remains the
// actual enforcement under concurrent inserts.
func (s *FacultyService) AddSingle(ctx context.Context, req dto.CreateFacultyRequest) (*models.Faculty, error) {
	// Trim before validating so whitespace-only fields fail the required check
	// and the pre-check sees the exact value that gets stored.
	req.EmpCode = strings.TrimSpace(req.EmpCode)
	req.Name = strings.TrimSpace(req.Name)
	req.Department = strings.TrimSpace(req.Department)
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "empCode, name, and department are required")
	}

	exists, err := s.repo.ExistsByEmpCode(ctx, req.EmpCode)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to check employee code")
	}
	if exists {
		return nil, appErrors.Clone(appErrors.ErrConflict, "faculty with same employee code already exists")
	}

	if err := s.ensureDepartment(ctx, req.Department); err != nil {
		return nil, err
	}

	faculty := &models.Faculty{
		EmpCode:    req.EmpCode,
		Name:       req.Name,
		Department: req.Department,
		Email:      normalizeOptional(req.Email),
	}
	if err := s.repo.Create(ctx, faculty); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmpCode) {
			return nil, appErrors.Clone(appErrors.ErrConflict, "faculty with same employee code already exists")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create faculty")
	}
	s.invalidateSuggestions(ctx)
	return faculty, nil
}

// UpdateSingle applies a partial update and returns the names of fields that
// actually changed. An empty change set is a successful no-op; the operation
// is safe to call speculatively.
func (s *FacultyService) UpdateSingle(ctx context.Context, empCode string, req dto.UpdateFacultyRequest) ([]string, error) {
	if strings.TrimSpace(empCode) == "" {
		return nil, appErrors.Clone(appErrors.ErrValidation, "empCode is required")
	}

	faculty, err := s.repo.FindByEmpCode(ctx, empCode)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "faculty not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load faculty")
	}

	fields := make(map[string]interface{})
	var changed []string
	if req.Name != nil && *req.Name != faculty.Name {
		fields["name"] = *req.Name
		changed = append(changed, "name")
	}
	if req.Email != nil {
		// Empty or whitespace-only email clears the stored value, matching the
		// create path's NULL representation of "no email".
		email := normalizeOptional(req.Email)
		if !equalOptional(email, faculty.Email) {
			if email == nil {
				fields["email"] = nil
			} else {
				fields["email"] = *email
			}
			changed = append(changed, "email")
		}
	}
	if req.Department != nil && *req.Department != faculty.Department {
		if err := s.ensureDepartment(ctx, *req.Department); err != nil {
			return nil, err
		}
		fields["department"] = *req.Department
		changed = append(changed, "department")
	}

	if len(fields) == 0 {
		return []string{}, nil
	}

	if err := s.repo.UpdateFields(ctx, empCode, fields); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "faculty not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update faculty")
	}
	s.invalidateSuggestions(ctx)
	return changed, nil
}

// Get returns faculty records, optionally restricted to one department.
func (s *FacultyService) Get(ctx context.Context, department string) ([]models.Faculty, error) {
	faculties, err := s.repo.List(ctx, models.FacultyFilter{Department: department})
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list faculties")
	}
	return faculties, nil
}

// GetByEmpCode returns one faculty record by employee code.
func (s *FacultyService) GetByEmpCode(ctx context.Context, empCode string) (*models.Faculty, error) {
	if strings.TrimSpace(empCode) == "" {
		return nil, appErrors.Clone(appErrors.ErrValidation, "empCode is required")
	}
	faculty, err := s.repo.FindByEmpCode(ctx, empCode)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "faculty not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load faculty")
	}
	return faculty, nil
}

// Suggest returns up to ten reduced faculty projections whose name or employee
// code contains the query, case-insensitively. An empty query short-circuits
// to an empty result.
func (s *FacultyService) Suggest(ctx context.Context, query, department string) ([]models.FacultySuggestion, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return []models.FacultySuggestion{}, nil
	}

	cacheKey := fmt.Sprintf("faculty:suggest:%s:%s", department, strings.ToLower(query))
	var cached []models.FacultySuggestion
	if hit, err := s.cache.Get(ctx, cacheKey, &cached); err == nil && hit {
		return cached, nil
	}

	suggestions, err := s.repo.Suggest(ctx, query, department, suggestionLimit)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to search faculties")
	}
	if err := s.cache.Set(ctx, cacheKey, suggestions, 0); err != nil {
		s.logger.Warn("failed to cache suggestions", zap.Error(err))
	}
	return suggestions, nil
}

// AssignSubjects unions the given subject codes into the faculty's subject
// set. Re-assigning the same codes changes nothing and does not error.
func (s *FacultyService) AssignSubjects(ctx context.Context, empCode string, subjects []string) error {
	if strings.TrimSpace(empCode) == "" {
		return appErrors.Clone(appErrors.ErrValidation, "empCode is required")
	}
	cleaned := make([]string, 0, len(subjects))
	for _, subject := range subjects {
		if trimmed := strings.TrimSpace(subject); trimmed != "" {
			cleaned = append(cleaned, trimmed)
		}
	}
	if len(cleaned) == 0 {
		return appErrors.Clone(appErrors.ErrValidation, "at least one subject code is required")
	}

	if err := s.repo.AppendSubjects(ctx, empCode, cleaned); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return appErrors.Clone(appErrors.ErrNotFound, "faculty not found")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to assign subjects")
	}
	s.invalidateSuggestions(ctx)
	return nil
}

func (s *FacultyService) ensureDepartment(ctx context.Context, name string) error {
	exists, err := s.departments.Exists(ctx, name)
	if err != nil {
		return err
	}
	if !exists {
		return appErrors.Clone(appErrors.ErrNotFound, fmt.Sprintf("department not found: %s", name))
	}
	return nil
}

func (s *FacultyService) invalidateSuggestions(ctx context.Context) {
	if err := s.cache.Invalidate(ctx, suggestCachePattern); err != nil {
		s.logger.Warn("failed to invalidate suggestion cache", zap.Error(err))
	}
}

func normalizeOptional(value *string) *string {
	if value == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*value)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

func equalOptional(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
