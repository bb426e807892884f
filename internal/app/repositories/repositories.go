package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all the repository instances
type Repositories struct {
	DepartmentRepository     DepartmentRepository
	InstructorRepository     InstructorRepository
	StudentRepository        StudentRepository
	CourseRepository         CourseRepository
	EnrollmentRepository     EnrollmentRepository
	GradeRepository          GradeRepository
	DepartmentHeadRepository DepartmentHeadRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		DepartmentRepository:     NewDepartmentRepository(db),
		InstructorRepository:     NewInstructorRepository(db),
		StudentRepository:        NewStudentRepository(db),
		CourseRepository:         NewCourseRepository(db),
		EnrollmentRepository:     NewEnrollmentRepository(db),
		GradeRepository:          NewGradeRepository(db),
		DepartmentHeadRepository: NewDepartmentHeadRepository(db),
	}
}
