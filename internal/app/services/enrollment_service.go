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

// EnrollmentService defines the interface for enrollment-related operations
type EnrollmentService interface {
	GetAllEnrollments(ctx context.Context) ([]*models.Enrollment, error)
	GetEnrollmentByID(ctx context.Context, id int64) (*models.Enrollment, error)
	CreateEnrollment(ctx context.Context, req *dto.EnrollmentRequest) (int64, error)
	UpdateEnrollment(ctx context.Context, id int64, req *dto.EnrollmentRequest) error
	DeleteEnrollment(ctx context.Context, id int64) error
}

type enrollmentServiceImpl struct {
	enrollmentRepo repositories.EnrollmentRepository
}

// NewEnrollmentService creates a new enrollment service instance
func NewEnrollmentService(enrollmentRepo repositories.EnrollmentRepository) EnrollmentService {
	return &enrollmentServiceImpl{
		enrollmentRepo: enrollmentRepo,
	}
}

// toModel applies defaults: enrollment date falls back to today, status to
// Active. Status may move between Active, Completed and Dropped freely;
// there are no transition restrictions.
func (s *enrollmentServiceImpl) toModel(req *dto.EnrollmentRequest) *models.Enrollment {
	return &models.Enrollment{
		StudentID:      req.StudentID,
		CourseID:       req.CourseID,
		EnrollmentDate: helpers.DateOrToday(req.EnrollmentDate),
		Grade:          req.Grade,
		Status:         helpers.StatusOr(req.Status, models.EnrollmentActive),
	}
}

// GetAllEnrollments retrieves all enrollments, newest first
func (s *enrollmentServiceImpl) GetAllEnrollments(ctx context.Context) ([]*models.Enrollment, error) {
	enrollments, err := s.enrollmentRepo.GetAll(ctx)
	if err != nil {
		return nil, mapStoreError("list enrollments", err)
	}
	return enrollments, nil
}

// GetEnrollmentByID retrieves an enrollment by ID
func (s *enrollmentServiceImpl) GetEnrollmentByID(ctx context.Context, id int64) (*models.Enrollment, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: invalid enrollment ID", apperrors.ErrValidationFailed)
	}

	enrollment, err := s.enrollmentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, mapStoreError("get enrollment", err)
	}
	return enrollment, nil
}

// CreateEnrollment enrolls a student in a course. Student and course
// references are enforced by the store's foreign keys.
func (s *enrollmentServiceImpl) CreateEnrollment(ctx context.Context, req *dto.EnrollmentRequest) (int64, error) {
	id, err := s.enrollmentRepo.Create(ctx, s.toModel(req))
	if err != nil {
		return 0, mapStoreError("create enrollment", err)
	}
	return id, nil
}

// UpdateEnrollment replaces all fields of an existing enrollment
func (s *enrollmentServiceImpl) UpdateEnrollment(ctx context.Context, id int64, req *dto.EnrollmentRequest) error {
	if id <= 0 {
		return fmt.Errorf("%w: invalid enrollment ID", apperrors.ErrValidationFailed)
	}

	enrollment := s.toModel(req)
	enrollment.ID = id

	if err := s.enrollmentRepo.Update(ctx, enrollment); err != nil {
		return mapStoreError("update enrollment", err)
	}
	return nil
}

// DeleteEnrollment deletes an enrollment by ID
func (s *enrollmentServiceImpl) DeleteEnrollment(ctx context.Context, id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: invalid enrollment ID", apperrors.ErrValidationFailed)
	}

	if err := s.enrollmentRepo.Delete(ctx, id); err != nil {
		return mapStoreError("delete enrollment", err)
	}
	return nil
}
