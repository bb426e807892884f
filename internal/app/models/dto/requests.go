package dto

import "github.com/campusdb/registrar/internal/app/models"

// Create and update share one request shape per entity: updates are full
// replacements, so an omitted optional field is cleared, not preserved.

// DepartmentRequest carries department fields for create/update.
type DepartmentRequest struct {
	Name     string   `json:"department_name" binding:"required"`
	Building *string  `json:"building"`
	Budget   *float64 `json:"budget" binding:"omitempty,gte=0"`
}

// InstructorRequest carries instructor fields for create/update.
type InstructorRequest struct {
	FirstName    string   `json:"first_name" binding:"required"`
	LastName     string   `json:"last_name" binding:"required"`
	Email        string   `json:"email" binding:"required,email"`
	Phone        *string  `json:"phone"`
	DepartmentID int64    `json:"department_id" binding:"required,gt=0"`
	Salary       *float64 `json:"salary" binding:"omitempty,gte=0"`
	HireDate     *string  `json:"hire_date" binding:"omitempty,datetime=2006-01-02"`
}

// StudentRequest carries student fields for create/update.
type StudentRequest struct {
	FirstName         string  `json:"first_name" binding:"required"`
	LastName          string  `json:"last_name" binding:"required"`
	Email             string  `json:"email" binding:"required,email"`
	Phone             *string `json:"phone"`
	DateOfBirth       *string `json:"date_of_birth" binding:"omitempty,datetime=2006-01-02"`
	EnrollmentYear    *int    `json:"enrollment_year" binding:"omitempty,gte=1900"`
	MajorDepartmentID *int64  `json:"major_department_id" binding:"omitempty,gt=0"`
}

// CourseRequest carries course fields for create/update.
type CourseRequest struct {
	Code         string           `json:"course_code" binding:"required"`
	Name         string           `json:"course_name" binding:"required"`
	DepartmentID int64            `json:"department_id" binding:"required,gt=0"`
	InstructorID *int64           `json:"instructor_id" binding:"omitempty,gt=0"`
	Credits      *int             `json:"credits" binding:"omitempty,gte=1,lte=6"`
	Semester     *models.Semester `json:"semester" binding:"omitempty,oneof=Fall Spring Summer"`
	Year         *int             `json:"year" binding:"omitempty,gte=1900"`
	RoomNumber   *string          `json:"room_number"`
	Schedule     *string          `json:"schedule"`
}

// EnrollmentRequest carries enrollment fields for create/update.
type EnrollmentRequest struct {
	StudentID      int64                    `json:"student_id" binding:"required,gt=0"`
	CourseID       int64                    `json:"course_id" binding:"required,gt=0"`
	EnrollmentDate *string                  `json:"enrollment_date" binding:"omitempty,datetime=2006-01-02"`
	Grade          *string                  `json:"grade" binding:"omitempty,max=2"`
	Status         *models.EnrollmentStatus `json:"status" binding:"omitempty,oneof=Active Completed Dropped"`
}

// GradeRequest carries grade fields for create/update.
type GradeRequest struct {
	EnrollmentID int64             `json:"enrollment_id" binding:"required,gt=0"`
	Value        float64           `json:"grade_value" binding:"required,gte=1,lte=5"`
	Type         *models.GradeType `json:"grade_type" binding:"omitempty,oneof=Exam Homework Project Quiz Lab Essay Presentation"`
	Date         *string           `json:"grade_date" binding:"omitempty,datetime=2006-01-02"`
	Description  *string           `json:"description"`
}

// DepartmentHeadRequest carries department head fields. On update the
// department ID comes from the URL, not the payload.
type DepartmentHeadRequest struct {
	DepartmentID int64   `json:"department_id" binding:"required,gt=0"`
	InstructorID int64   `json:"instructor_id" binding:"required,gt=0"`
	StartDate    *string `json:"start_date" binding:"omitempty,datetime=2006-01-02"`
}

// DepartmentHeadUpdateRequest is the update payload for a department head.
type DepartmentHeadUpdateRequest struct {
	InstructorID int64   `json:"instructor_id" binding:"required,gt=0"`
	StartDate    *string `json:"start_date" binding:"omitempty,datetime=2006-01-02"`
}
