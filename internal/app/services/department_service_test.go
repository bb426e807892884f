package services_test

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campusdb/registrar/internal/app/models"
	"github.com/campusdb/registrar/internal/app/models/dto"
	"github.com/campusdb/registrar/internal/app/services"
	"github.com/campusdb/registrar/internal/pkg/apperrors"
)

func TestGetAllDepartments(t *testing.T) {
	departmentRepo := &fakeDepartmentRepo{departments: []*models.Department{
		{ID: 1, Name: "Computer Science"},
		{ID: 2, Name: "Mathematics"},
	}}
	service := services.NewDepartmentService(departmentRepo)

	departments, err := service.GetAllDepartments(context.Background())
	require.NoError(t, err)
	assert.Len(t, departments, 2)
}

func TestCreateDepartment(t *testing.T) {
	departmentRepo := &fakeDepartmentRepo{}
	service := services.NewDepartmentService(departmentRepo)

	budget := 250000.0
	id, err := service.CreateDepartment(context.Background(), &dto.DepartmentRequest{
		Name:   "Physics",
		Budget: &budget,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), id)

	require.NotNil(t, departmentRepo.created)
	assert.Equal(t, "Physics", departmentRepo.created.Name)
	assert.Nil(t, departmentRepo.created.Building)
}

func TestDeleteDepartment_ReferencedRowsBlockDelete(t *testing.T) {
	departmentRepo := &fakeDepartmentRepo{deleteErr: &pgconn.PgError{Code: "23503"}}
	service := services.NewDepartmentService(departmentRepo)

	err := service.DeleteDepartment(context.Background(), 1)
	require.ErrorIs(t, err, apperrors.ErrConstraintViolation)
	assert.Equal(t, "referenced record does not exist or is still referenced", err.Error())
}

func TestGetDepartmentByID_StoreDownIsUnavailable(t *testing.T) {
	departmentRepo := &fakeDepartmentRepo{getErr: &pgconn.PgError{Code: "08006"}}
	service := services.NewDepartmentService(departmentRepo)

	_, err := service.GetDepartmentByID(context.Background(), 1)
	assert.ErrorIs(t, err, apperrors.ErrStoreUnavailable)
}

func TestUpdateDepartment_MissingRowIsNotFound(t *testing.T) {
	departmentRepo := &fakeDepartmentRepo{updateErr: apperrors.ErrDepartmentNotFound}
	service := services.NewDepartmentService(departmentRepo)

	err := service.UpdateDepartment(context.Background(), 42, &dto.DepartmentRequest{Name: "History"})
	assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)
}
