package models

// Student defines the student model based on the 'students' table
type Student struct {
	ID                int64   `json:"student_id" db:"student_id"`
	FirstName         string  `json:"first_name" db:"first_name"`
	LastName          string  `json:"last_name" db:"last_name"`
	Email             string  `json:"email" db:"email"`
	Phone             *string `json:"phone" db:"phone"`                   // Nullable
	DateOfBirth       *string `json:"date_of_birth" db:"date_of_birth"`  // Nullable, YYYY-MM-DD
	EnrollmentYear    *int    `json:"enrollment_year" db:"enrollment_year"` // Nullable
	MajorDepartmentID *int64  `json:"major_department_id" db:"major_department_id"` // Nullable = undeclared

	// Read-only derived fields (populated on reads, ignored on writes)
	MajorName *string  `json:"major_name,omitempty" db:"major_name"`
	GPA       *float64 `json:"gpa,omitempty"` // Mean of all grade values, nil when no grades
}
