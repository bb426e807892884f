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

const defaultCredits = 3

// CourseService defines the interface for course-related operations
type CourseService interface {
	GetAllCourses(ctx context.Context) ([]*models.Course, error)
	GetCourseByID(ctx context.Context, id int64) (*models.Course, error)
	CreateCourse(ctx context.Context, req *dto.CourseRequest) (int64, error)
	UpdateCourse(ctx context.Context, id int64, req *dto.CourseRequest) error
	DeleteCourse(ctx context.Context, id int64) error
}

type courseServiceImpl struct {
	courseRepo repositories.CourseRepository
}

// NewCourseService creates a new course service instance
func NewCourseService(courseRepo repositories.CourseRepository) CourseService {
	return &courseServiceImpl{
		courseRepo: courseRepo,
	}
}

// toModel applies the credits default. Create and update share it, so an
// update omitting credits resets to the default rather than keeping the
// prior value.
func (s *courseServiceImpl) toModel(req *dto.CourseRequest) *models.Course {
	return &models.Course{
		Code:         req.Code,
		Name:         req.Name,
		DepartmentID: req.DepartmentID,
		InstructorID: req.InstructorID,
		Credits:      helpers.IntOr(req.Credits, defaultCredits),
		Semester:     req.Semester,
		Year:         req.Year,
		RoomNumber:   req.RoomNumber,
		Schedule:     req.Schedule,
	}
}

// GetAllCourses retrieves all courses with department and instructor names
func (s *courseServiceImpl) GetAllCourses(ctx context.Context) ([]*models.Course, error) {
	courses, err := s.courseRepo.GetAll(ctx)
	if err != nil {
		return nil, mapStoreError("list courses", err)
	}
	return courses, nil
}

// GetCourseByID retrieves a course by ID
func (s *courseServiceImpl) GetCourseByID(ctx context.Context, id int64) (*models.Course, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: invalid course ID", apperrors.ErrValidationFailed)
	}

	course, err := s.courseRepo.GetByID(ctx, id)
	if err != nil {
		return nil, mapStoreError("get course", err)
	}
	return course, nil
}

// CreateCourse creates a new course. A nil instructor means unassigned.
func (s *courseServiceImpl) CreateCourse(ctx context.Context, req *dto.CourseRequest) (int64, error) {
	id, err := s.courseRepo.Create(ctx, s.toModel(req))
	if err != nil {
		return 0, mapStoreError("create course", err)
	}
	return id, nil
}

// UpdateCourse replaces all fields of an existing course
func (s *courseServiceImpl) UpdateCourse(ctx context.Context, id int64, req *dto.CourseRequest) error {
	if id <= 0 {
		return fmt.Errorf("%w: invalid course ID", apperrors.ErrValidationFailed)
	}

	course := s.toModel(req)
	course.ID = id

	if err := s.courseRepo.Update(ctx, course); err != nil {
		return mapStoreError("update course", err)
	}
	return nil
}

// DeleteCourse deletes a course by ID
func (s *courseServiceImpl) DeleteCourse(ctx context.Context, id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: invalid course ID", apperrors.ErrValidationFailed)
	}

	if err := s.courseRepo.Delete(ctx, id); err != nil {
		return mapStoreError("delete course", err)
	}
	return nil
}
