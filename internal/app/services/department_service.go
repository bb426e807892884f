package services

import (
	"context"
	"fmt"

	"github.com/campusdb/registrar/internal/app/models"
	"github.com/campusdb/registrar/internal/app/models/dto"
	"github.com/campusdb/registrar/internal/app/repositories"
	"github.com/campusdb/registrar/internal/pkg/apperrors"
)

// DepartmentService defines the interface for department-related operations
type DepartmentService interface {
	GetAllDepartments(ctx context.Context) ([]*models.Department, error)
	GetDepartmentByID(ctx context.Context, id int64) (*models.Department, error)
	CreateDepartment(ctx context.Context, req *dto.DepartmentRequest) (int64, error)
	UpdateDepartment(ctx context.Context, id int64, req *dto.DepartmentRequest) error
	DeleteDepartment(ctx context.Context, id int64) error
}

type departmentServiceImpl struct {
	departmentRepo repositories.DepartmentRepository
}

// NewDepartmentService creates a new department service instance
func NewDepartmentService(departmentRepo repositories.DepartmentRepository) DepartmentService {
	return &departmentServiceImpl{
		departmentRepo: departmentRepo,
	}
}

// toModel builds the stored record from the request. Omitted optional
// fields stay nil, so an update clears them.
func (s *departmentServiceImpl) toModel(req *dto.DepartmentRequest) *models.Department {
	return &models.Department{
		Name:     req.Name,
		Building: req.Building,
		Budget:   req.Budget,
	}
}

// GetAllDepartments retrieves all departments
func (s *departmentServiceImpl) GetAllDepartments(ctx context.Context) ([]*models.Department, error) {
	departments, err := s.departmentRepo.GetAll(ctx)
	if err != nil {
		return nil, mapStoreError("list departments", err)
	}
	return departments, nil
}

// GetDepartmentByID retrieves a department by ID
func (s *departmentServiceImpl) GetDepartmentByID(ctx context.Context, id int64) (*models.Department, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: invalid department ID", apperrors.ErrValidationFailed)
	}

	department, err := s.departmentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, mapStoreError("get department", err)
	}
	return department, nil
}

// CreateDepartment creates a new department and returns its generated ID
func (s *departmentServiceImpl) CreateDepartment(ctx context.Context, req *dto.DepartmentRequest) (int64, error) {
	id, err := s.departmentRepo.Create(ctx, s.toModel(req))
	if err != nil {
		return 0, mapStoreError("create department", err)
	}
	return id, nil
}

// UpdateDepartment replaces all fields of an existing department
func (s *departmentServiceImpl) UpdateDepartment(ctx context.Context, id int64, req *dto.DepartmentRequest) error {
	if id <= 0 {
		return fmt.Errorf("%w: invalid department ID", apperrors.ErrValidationFailed)
	}

	department := s.toModel(req)
	department.ID = id

	if err := s.departmentRepo.Update(ctx, department); err != nil {
		return mapStoreError("update department", err)
	}
	return nil
}

// DeleteDepartment deletes a department by ID
func (s *departmentServiceImpl) DeleteDepartment(ctx context.Context, id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: invalid department ID", apperrors.ErrValidationFailed)
	}

	if err := s.departmentRepo.Delete(ctx, id); err != nil {
		return mapStoreError("delete department", err)
	}
	return nil
}
