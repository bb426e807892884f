package services

import (
	"context"
	"fmt"

	"github.com/campusdb/registrar/internal/app/models"
	"github.com/campusdb/registrar/internal/app/models/dto"
	"github.com/campusdb/registrar/internal/app/repositories"
	"github.com/campusdb/registrar/internal/pkg/apperrors"
)

// StudentService defines the interface for student-related operations
type StudentService interface {
	GetAllStudents(ctx context.Context) ([]*models.Student, error)
	GetStudentByID(ctx context.Context, id int64) (*models.Student, error)
	CreateStudent(ctx context.Context, req *dto.StudentRequest) (int64, error)
	UpdateStudent(ctx context.Context, id int64, req *dto.StudentRequest) error
	DeleteStudent(ctx context.Context, id int64) error
}

type studentServiceImpl struct {
	studentRepo repositories.StudentRepository
	gradeRepo   repositories.GradeRepository
}

// NewStudentService creates a new student service instance
func NewStudentService(studentRepo repositories.StudentRepository, gradeRepo repositories.GradeRepository) StudentService {
	return &studentServiceImpl{
		studentRepo: studentRepo,
		gradeRepo:   gradeRepo,
	}
}

func (s *studentServiceImpl) toModel(req *dto.StudentRequest) *models.Student {
	return &models.Student{
		FirstName:         req.FirstName,
		LastName:          req.LastName,
		Email:             req.Email,
		Phone:             req.Phone,
		DateOfBirth:       req.DateOfBirth,
		EnrollmentYear:    req.EnrollmentYear,
		MajorDepartmentID: req.MajorDepartmentID,
	}
}

// averageGrades returns the unweighted arithmetic mean of grade values,
// nil when there are none. A student without grades has no GPA, never 0.
func averageGrades(values []float64) *float64 {
	if len(values) == 0 {
		return nil
	}

	var sum float64
	for _, v := range values {
		sum += v
	}
	mean := sum / float64(len(values))
	return &mean
}

// attachGPA computes the student's GPA from every grade reachable through
// their enrollments. List and get use this same path so the formula and
// null handling cannot diverge.
func (s *studentServiceImpl) attachGPA(ctx context.Context, student *models.Student) error {
	values, err := s.gradeRepo.ValuesByStudent(ctx, student.ID)
	if err != nil {
		return err
	}
	student.GPA = averageGrades(values)
	return nil
}

// GetAllStudents retrieves all students with major names and derived GPA
func (s *studentServiceImpl) GetAllStudents(ctx context.Context) ([]*models.Student, error) {
	students, err := s.studentRepo.GetAll(ctx)
	if err != nil {
		return nil, mapStoreError("list students", err)
	}

	for _, student := range students {
		if err := s.attachGPA(ctx, student); err != nil {
			return nil, mapStoreError("compute gpa", err)
		}
	}

	return students, nil
}

// GetStudentByID retrieves a student by ID with major name and derived GPA
func (s *studentServiceImpl) GetStudentByID(ctx context.Context, id int64) (*models.Student, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: invalid student ID", apperrors.ErrValidationFailed)
	}

	student, err := s.studentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, mapStoreError("get student", err)
	}

	if err := s.attachGPA(ctx, student); err != nil {
		return nil, mapStoreError("compute gpa", err)
	}

	return student, nil
}

// CreateStudent creates a new student. A nil major department means
// undeclared.
func (s *studentServiceImpl) CreateStudent(ctx context.Context, req *dto.StudentRequest) (int64, error) {
	id, err := s.studentRepo.Create(ctx, s.toModel(req))
	if err != nil {
		return 0, mapStoreError("create student", err)
	}
	return id, nil
}

// UpdateStudent replaces all fields of an existing student. Optional
// fields omitted from the request are cleared, not preserved.
func (s *studentServiceImpl) UpdateStudent(ctx context.Context, id int64, req *dto.StudentRequest) error {
	if id <= 0 {
		return fmt.Errorf("%w: invalid student ID", apperrors.ErrValidationFailed)
	}

	student := s.toModel(req)
	student.ID = id

	if err := s.studentRepo.Update(ctx, student); err != nil {
		return mapStoreError("update student", err)
	}
	return nil
}

// DeleteStudent deletes a student by ID
func (s *studentServiceImpl) DeleteStudent(ctx context.Context, id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: invalid student ID", apperrors.ErrValidationFailed)
	}

	if err := s.studentRepo.Delete(ctx, id); err != nil {
		return mapStoreError("delete student", err)
	}
	return nil
}
