package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/noah-isme/campus-admin-api/internal/models"
	appErrors "github.com/noah-isme/campus-admin-api/pkg/errors"
)

type departmentRepository interface {
	ExistsByName(ctx context.Context, name string) (bool, error)
	List(ctx context.Context) ([]models.Department, error)
}

// DepartmentService validates department references and exposes the read-only
// department list. Existence is checked at write time only; faculty rows
// pointing at a since-removed department are an accepted consistency gap and
// never fail on read.
type DepartmentService struct {
	repo   departmentRepository
	logger *zap.Logger
}

// NewDepartmentService constructs a DepartmentService.
func NewDepartmentService(repo departmentRepository, logger *zap.Logger) *DepartmentService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DepartmentService{repo: repo, logger: logger}
}

// Exists reports whether a department with the exact given name is registered.
// Absence is a normal false result, not an error; callers turn it into the
// domain error appropriate for their operation.
func (s *DepartmentService) Exists(ctx context.Context, name string) (bool, error) {
	exists, err := s.repo.ExistsByName(ctx, name)
	if err != nil {
		return false, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to check department")
	}
	return exists, nil
}

// List returns all registered departments.
func (s *DepartmentService) List(ctx context.Context) ([]models.Department, error) {
	departments, err := s.repo.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list departments")
	}
	return departments, nil
}
