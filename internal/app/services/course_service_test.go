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
)

func TestCreateCourse_CreditsDefaultToThree(t *testing.T) {
	courseRepo := &fakeCourseRepo{}
	service := services.NewCourseService(courseRepo)

	_, err := service.CreateCourse(context.Background(), &dto.CourseRequest{
		Code:         "CS101",
		Name:         "Intro to Programming",
		DepartmentID: 1,
	})
	require.NoError(t, err)

	require.NotNil(t, courseRepo.created)
	assert.Equal(t, 3, courseRepo.created.Credits)
	assert.Nil(t, courseRepo.created.InstructorID)
}

func TestCreateCourse_ExplicitCreditsPreserved(t *testing.T) {
	courseRepo := &fakeCourseRepo{}
	service := services.NewCourseService(courseRepo)

	credits := 5
	semester := models.SemesterFall
	_, err := service.CreateCourse(context.Background(), &dto.CourseRequest{
		Code:         "CS401",
		Name:         "Compilers",
		DepartmentID: 1,
		Credits:      &credits,
		Semester:     &semester,
	})
	require.NoError(t, err)

	require.NotNil(t, courseRepo.created)
	assert.Equal(t, 5, courseRepo.created.Credits)
	require.NotNil(t, courseRepo.created.Semester)
	assert.Equal(t, models.SemesterFall, *courseRepo.created.Semester)
}

func TestUpdateCourse_OmittedCreditsResetToDefault(t *testing.T) {
	courseRepo := &fakeCourseRepo{}
	service := services.NewCourseService(courseRepo)

	err := service.UpdateCourse(context.Background(), 4, &dto.CourseRequest{
		Code:         "CS101",
		Name:         "Intro to Programming",
		DepartmentID: 1,
	})
	require.NoError(t, err)

	require.NotNil(t, courseRepo.updated)
	assert.Equal(t, int64(4), courseRepo.updated.ID)
	assert.Equal(t, 3, courseRepo.updated.Credits)
}

func TestGetCourseByID_NotFound(t *testing.T) {
	service := services.NewCourseService(&fakeCourseRepo{})

	_, err := service.GetCourseByID(context.Background(), 99)
	assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)
}
