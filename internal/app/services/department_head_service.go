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

// DepartmentHeadService defines the interface for department head
// operations. Heads are addressed by department ID.
type DepartmentHeadService interface {
	GetAllDepartmentHeads(ctx context.Context) ([]*models.DepartmentHead, error)
	GetDepartmentHead(ctx context.Context, departmentID int64) (*models.DepartmentHead, error)
	AssignDepartmentHead(ctx context.Context, req *dto.DepartmentHeadRequest) (int64, error)
	UpdateDepartmentHead(ctx context.Context, departmentID int64, req *dto.DepartmentHeadUpdateRequest) error
	RemoveDepartmentHead(ctx context.Context, departmentID int64) error
}

type departmentHeadServiceImpl struct {
	headRepo repositories.DepartmentHeadRepository
}

// NewDepartmentHeadService creates a new department head service instance
func NewDepartmentHeadService(headRepo repositories.DepartmentHeadRepository) DepartmentHeadService {
	return &departmentHeadServiceImpl{
		headRepo: headRepo,
	}
}

// GetAllDepartmentHeads retrieves all department heads ordered by
// department name
func (s *departmentHeadServiceImpl) GetAllDepartmentHeads(ctx context.Context) ([]*models.DepartmentHead, error) {
	heads, err := s.headRepo.GetAll(ctx)
	if err != nil {
		return nil, mapStoreError("list department heads", err)
	}
	return heads, nil
}

// GetDepartmentHead retrieves the head of a department
func (s *departmentHeadServiceImpl) GetDepartmentHead(ctx context.Context, departmentID int64) (*models.DepartmentHead, error) {
	if departmentID <= 0 {
		return nil, fmt.Errorf("%w: invalid department ID", apperrors.ErrValidationFailed)
	}

	head, err := s.headRepo.GetByDepartmentID(ctx, departmentID)
	if err != nil {
		return nil, mapStoreError("get department head", err)
	}
	return head, nil
}

// AssignDepartmentHead assigns an instructor as head of a department. The
// start date defaults to today. Assigning to a department that already has
// a head fails on the store's primary key.
func (s *departmentHeadServiceImpl) AssignDepartmentHead(ctx context.Context, req *dto.DepartmentHeadRequest) (int64, error) {
	head := &models.DepartmentHead{
		DepartmentID: req.DepartmentID,
		InstructorID: req.InstructorID,
		StartDate:    helpers.DateOrToday(req.StartDate),
	}

	id, err := s.headRepo.Create(ctx, head)
	if err != nil {
		return 0, mapStoreError("assign department head", err)
	}
	return id, nil
}

// UpdateDepartmentHead replaces the instructor and start date for the head
// of the given department
func (s *departmentHeadServiceImpl) UpdateDepartmentHead(ctx context.Context, departmentID int64, req *dto.DepartmentHeadUpdateRequest) error {
	if departmentID <= 0 {
		return fmt.Errorf("%w: invalid department ID", apperrors.ErrValidationFailed)
	}

	head := &models.DepartmentHead{
		DepartmentID: departmentID,
		InstructorID: req.InstructorID,
		StartDate:    helpers.DateOrToday(req.StartDate),
	}

	if err := s.headRepo.Update(ctx, head); err != nil {
		return mapStoreError("update department head", err)
	}
	return nil
}

// RemoveDepartmentHead removes the head record for a department
func (s *departmentHeadServiceImpl) RemoveDepartmentHead(ctx context.Context, departmentID int64) error {
	if departmentID <= 0 {
		return fmt.Errorf("%w: invalid department ID", apperrors.ErrValidationFailed)
	}

	if err := s.headRepo.Delete(ctx, departmentID); err != nil {
		return mapStoreError("remove department head", err)
	}
	return nil
}
