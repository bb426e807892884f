package services

import (
	"context"
	"fmt"

	"github.com/campusdb/registrar/internal/app/models"
	"github.com/campusdb/registrar/internal/app/models/dto"
	"github.com/campusdb/registrar/internal/app/repositories"
	"github.com/campusdb/registrar/internal/pkg/apperrors"
)

// InstructorService defines the interface for instructor-related operations
type InstructorService interface {
	GetAllInstructors(ctx context.Context) ([]*models.Instructor, error)
	GetInstructorByID(ctx context.Context, id int64) (*models.Instructor, error)
	CreateInstructor(ctx context.Context, req *dto.InstructorRequest) (int64, error)
	UpdateInstructor(ctx context.Context, id int64, req *dto.InstructorRequest) error
	DeleteInstructor(ctx context.Context, id int64) error
}

type instructorServiceImpl struct {
	instructorRepo repositories.InstructorRepository
}

// NewInstructorService creates a new instructor service instance
func NewInstructorService(instructorRepo repositories.InstructorRepository) InstructorService {
	return &instructorServiceImpl{
		instructorRepo: instructorRepo,
	}
}

func (s *instructorServiceImpl) toModel(req *dto.InstructorRequest) *models.Instructor {
	return &models.Instructor{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		Phone:        req.Phone,
		DepartmentID: req.DepartmentID,
		Salary:       req.Salary,
		HireDate:     req.HireDate,
	}
}

// GetAllInstructors retrieves all instructors with department names
func (s *instructorServiceImpl) GetAllInstructors(ctx context.Context) ([]*models.Instructor, error) {
	instructors, err := s.instructorRepo.GetAll(ctx)
	if err != nil {
		return nil, mapStoreError("list instructors", err)
	}
	return instructors, nil
}

// GetInstructorByID retrieves an instructor by ID
func (s *instructorServiceImpl) GetInstructorByID(ctx context.Context, id int64) (*models.Instructor, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: invalid instructor ID", apperrors.ErrValidationFailed)
	}

	instructor, err := s.instructorRepo.GetByID(ctx, id)
	if err != nil {
		return nil, mapStoreError("get instructor", err)
	}
	return instructor, nil
}

// CreateInstructor creates a new instructor. The department reference is
// enforced by the store's foreign key, not pre-checked here.
func (s *instructorServiceImpl) CreateInstructor(ctx context.Context, req *dto.InstructorRequest) (int64, error) {
	id, err := s.instructorRepo.Create(ctx, s.toModel(req))
	if err != nil {
		return 0, mapStoreError("create instructor", err)
	}
	return id, nil
}

// UpdateInstructor replaces all fields of an existing instructor. Optional
// fields omitted from the request are cleared, not preserved.
func (s *instructorServiceImpl) UpdateInstructor(ctx context.Context, id int64, req *dto.InstructorRequest) error {
	if id <= 0 {
		return fmt.Errorf("%w: invalid instructor ID", apperrors.ErrValidationFailed)
	}

	instructor := s.toModel(req)
	instructor.ID = id

	if err := s.instructorRepo.Update(ctx, instructor); err != nil {
		return mapStoreError("update instructor", err)
	}
	return nil
}

// DeleteInstructor deletes an instructor by ID
func (s *instructorServiceImpl) DeleteInstructor(ctx context.Context, id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: invalid instructor ID", apperrors.ErrValidationFailed)
	}

	if err := s.instructorRepo.Delete(ctx, id); err != nil {
		return mapStoreError("delete instructor", err)
	}
	return nil
}
