package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/noah-isme/campus-admin-api/internal/dto"
)

// unknownItemID labels batch failures whose payload carried no employee code.
const unknownItemID = "unknown"

// BulkAdd applies create payloads independently and in order. A failing item
// never aborts the batch; callers receive a per-item report instead. Items run
// sequentially to keep failure attribution deterministic.
func (s *FacultyService) BulkAdd(ctx context.Context, items []dto.CreateFacultyRequest, metrics *MetricsService) dto.BulkReport {
	report := dto.BulkReport{
		Successful: []dto.BulkSuccess{},
		Failed:     []dto.BulkFailure{},
	}
	for _, item := range items {
		faculty, err := s.AddSingle(ctx, item)
		if err != nil {
			report.Failed = append(report.Failed, dto.BulkFailure{
				EmpCode: itemIdentifier(item.EmpCode),
				Error:   err.Error(),
			})
			metrics.RecordBulkItem("add", false)
			continue
		}
		report.Successful = append(report.Successful, dto.BulkSuccess{
			EmpCode: faculty.EmpCode,
			ID:      faculty.ID,
		})
		metrics.RecordBulkItem("add", true)
	}
	s.logger.Info("bulk faculty add finished",
		zap.Int("successful", len(report.Successful)),
		zap.Int("failed", len(report.Failed)),
	)
	return report
}

// BulkUpdate applies partial updates independently and in order, mirroring
// BulkAdd's partial-success semantics.
func (s *FacultyService) BulkUpdate(ctx context.Context, items []dto.BulkUpdateItem, metrics *MetricsService) dto.BulkReport {
	report := dto.BulkReport{
		Successful: []dto.BulkSuccess{},
		Failed:     []dto.BulkFailure{},
	}
	for _, item := range items {
		changed, err := s.UpdateSingle(ctx, item.EmpCode, item.UpdateFacultyRequest)
		if err != nil {
			report.Failed = append(report.Failed, dto.BulkFailure{
				EmpCode: itemIdentifier(item.EmpCode),
				Error:   err.Error(),
			})
			metrics.RecordBulkItem("update", false)
			continue
		}
		report.Successful = append(report.Successful, dto.BulkSuccess{
			EmpCode:       item.EmpCode,
			ChangedFields: changed,
		})
		metrics.RecordBulkItem("update", true)
	}
	s.logger.Info("bulk faculty update finished",
		zap.Int("successful", len(report.Successful)),
		zap.Int("failed", len(report.Failed)),
	)
	return report
}

func itemIdentifier(empCode string) string {
	if strings.TrimSpace(empCode) == "" {
		return unknownItemID
	}
	return empCode
}
