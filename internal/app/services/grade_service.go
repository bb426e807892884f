package services

import (
	"context"
	"fmt"

	"github.com/campusdb/registrar/internal/app/models"
	"github.com/campusdb/registrar/internal/app/models/dto"
	"github.com/campusdb/registrar/internal/app/repositories"
	"github.com/campusdb/registrar/internal/pkg/apperrors"
	"github.com/campusdb/registrar/internal/pkg/helpers"
)

// GradeService defines the interface for grade-related operations
type GradeService interface {
	GetAllGrades(ctx context.Context) ([]*models.Grade, error)
	GetGradeByID(ctx context.Context, id int64) (*models.Grade, error)
	CreateGrade(ctx context.Context, req *dto.GradeRequest) (int64, error)
	UpdateGrade(ctx context.Context, id int64, req *dto.GradeRequest) error
	DeleteGrade(ctx context.Context, id int64) error
}

type gradeServiceImpl struct {
	gradeRepo repositories.GradeRepository
}

// NewGradeService creates a new grade service instance
func NewGradeService(gradeRepo repositories.GradeRepository) GradeService {
	return &gradeServiceImpl{
		gradeRepo: gradeRepo,
	}
}

// toModel applies defaults: grade type falls back to Exam, grade date to
// today. The 1.0-5.0 value range is validated at binding and enforced
// again by the store's check constraint.
func (s *gradeServiceImpl) toModel(req *dto.GradeRequest) *models.Grade {
	return &models.Grade{
		EnrollmentID: req.EnrollmentID,
		Value:        req.Value,
		Type:         helpers.GradeTypeOr(req.Type, models.GradeTypeExam),
		Date:         helpers.DateOrToday(req.Date),
		Description:  req.Description,
	}
}

// GetAllGrades retrieves all grades, newest first
func (s *gradeServiceImpl) GetAllGrades(ctx context.Context) ([]*models.Grade, error) {
	grades, err := s.gradeRepo.GetAll(ctx)
	if err != nil {
		return nil, mapStoreError("list grades", err)
	}
	return grades, nil
}

// GetGradeByID retrieves a grade by ID
func (s *gradeServiceImpl) GetGradeByID(ctx context.Context, id int64) (*models.Grade, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: invalid grade ID", apperrors.ErrValidationFailed)
	}

	grade, err := s.gradeRepo.GetByID(ctx, id)
	if err != nil {
		return nil, mapStoreError("get grade", err)
	}
	return grade, nil
}

// CreateGrade records a grade against an enrollment
func (s *gradeServiceImpl) CreateGrade(ctx context.Context, req *dto.GradeRequest) (int64, error) {
	id, err := s.gradeRepo.Create(ctx, s.toModel(req))
	if err != nil {
		return 0, mapStoreError("create grade", err)
	}
	return id, nil
}

// UpdateGrade replaces all fields of an existing grade
func (s *gradeServiceImpl) UpdateGrade(ctx context.Context, id int64, req *dto.GradeRequest) error {
	if id <= 0 {
		return fmt.Errorf("%w: invalid grade ID", apperrors.ErrValidationFailed)
	}

	grade := s.toModel(req)
	grade.ID = id

	if err := s.gradeRepo.Update(ctx, grade); err != nil {
		return mapStoreError("update grade", err)
	}
	return nil
}

// DeleteGrade deletes a grade by ID
func (s *gradeServiceImpl) DeleteGrade(ctx context.Context, id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: invalid grade ID", apperrors.ErrValidationFailed)
	}

	if err := s.gradeRepo.Delete(ctx, id); err != nil {
		return mapStoreError("delete grade", err)
	}
	return nil
}
