package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campusdb/registrar/internal/app/models"
	"github.com/campusdb/registrar/internal/app/models/dto"
	"github.com/campusdb/registrar/internal/app/services"
	"github.com/campusdb/registrar/internal/pkg/apperrors"
	"github.com/campusdb/registrar/internal/pkg/helpers"
)

func TestCreateGrade_AppliesDefaults(t *testing.T) {
	gradeRepo := &fakeGradeRepo{}
	service := services.NewGradeService(gradeRepo)

	id, err := service.CreateGrade(context.Background(), &dto.GradeRequest{
		EnrollmentID: 1,
		Value:        4.5,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), id)

	require.NotNil(t, gradeRepo.created)
	assert.Equal(t, models.GradeTypeExam, gradeRepo.created.Type)
	assert.Equal(t, helpers.Today(), gradeRepo.created.Date)
}

func TestCreateGrade_ExplicitFieldsPreserved(t *testing.T) {
	gradeRepo := &fakeGradeRepo{}
	service := services.NewGradeService(gradeRepo)

	gradeType := models.GradeTypeProject
	date := "2026-05-20"
	_, err := service.CreateGrade(context.Background(), &dto.GradeRequest{
		EnrollmentID: 1,
		Value:        2.75,
		Type:         &gradeType,
		Date:         &date,
	})
	require.NoError(t, err)

	require.NotNil(t, gradeRepo.created)
	assert.Equal(t, models.GradeTypeProject, gradeRepo.created.Type)
	assert.Equal(t, "2026-05-20", gradeRepo.created.Date)
	assert.Equal(t, 2.75, gradeRepo.created.Value)
}

func TestUpdateGrade_OmittedTypeResetsToDefault(t *testing.T) {
	gradeRepo := &fakeGradeRepo{}
	service := services.NewGradeService(gradeRepo)

	err := service.UpdateGrade(context.Background(), 3, &dto.GradeRequest{
		EnrollmentID: 1,
		Value:        3.0,
	})
	require.NoError(t, err)

	require.NotNil(t, gradeRepo.updated)
	assert.Equal(t, int64(3), gradeRepo.updated.ID)
	assert.Equal(t, models.GradeTypeExam, gradeRepo.updated.Type)
}

func TestUpdateGrade_InvalidID(t *testing.T) {
	service := services.NewGradeService(&fakeGradeRepo{})

	err := service.UpdateGrade(context.Background(), 0, &dto.GradeRequest{EnrollmentID: 1, Value: 3.0})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestDeleteGrade_MissingRowIsNotFound(t *testing.T) {
	gradeRepo := &fakeGradeRepo{deleteErr: apperrors.ErrGradeNotFound}
	service := services.NewGradeService(gradeRepo)

	err := service.DeleteGrade(context.Background(), 99)
	assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)
}
