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

func TestCreateEnrollment_AppliesDefaults(t *testing.T) {
	enrollmentRepo := &fakeEnrollmentRepo{}
	service := services.NewEnrollmentService(enrollmentRepo)

	_, err := service.CreateEnrollment(context.Background(), &dto.EnrollmentRequest{
		StudentID: 1,
		CourseID:  2,
	})
	require.NoError(t, err)

	require.NotNil(t, enrollmentRepo.created)
	assert.Equal(t, models.EnrollmentActive, enrollmentRepo.created.Status)
	assert.Equal(t, helpers.Today(), enrollmentRepo.created.EnrollmentDate)
	assert.Nil(t, enrollmentRepo.created.Grade)
}

func TestUpdateEnrollment_FullReplacement(t *testing.T) {
	enrollmentRepo := &fakeEnrollmentRepo{}
	service := services.NewEnrollmentService(enrollmentRepo)

	status := models.EnrollmentCompleted
	date := "2026-01-15"
	grade := "A"
	err := service.UpdateEnrollment(context.Background(), 5, &dto.EnrollmentRequest{
		StudentID:      1,
		CourseID:       2,
		EnrollmentDate: &date,
		Grade:          &grade,
		Status:         &status,
	})
	require.NoError(t, err)

	require.NotNil(t, enrollmentRepo.updated)
	assert.Equal(t, int64(5), enrollmentRepo.updated.ID)
	assert.Equal(t, models.EnrollmentCompleted, enrollmentRepo.updated.Status)
	assert.Equal(t, "2026-01-15", enrollmentRepo.updated.EnrollmentDate)
	require.NotNil(t, enrollmentRepo.updated.Grade)
	assert.Equal(t, "A", *enrollmentRepo.updated.Grade)
}

func TestUpdateEnrollment_OmittedGradeIsCleared(t *testing.T) {
	enrollmentRepo := &fakeEnrollmentRepo{}
	service := services.NewEnrollmentService(enrollmentRepo)

	err := service.UpdateEnrollment(context.Background(), 5, &dto.EnrollmentRequest{
		StudentID: 1,
		CourseID:  2,
	})
	require.NoError(t, err)

	require.NotNil(t, enrollmentRepo.updated)
	assert.Nil(t, enrollmentRepo.updated.Grade)
	assert.Equal(t, models.EnrollmentActive, enrollmentRepo.updated.Status)
}

func TestGetEnrollmentByID_NotFound(t *testing.T) {
	service := services.NewEnrollmentService(&fakeEnrollmentRepo{})

	_, err := service.GetEnrollmentByID(context.Background(), 42)
	assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)
}
