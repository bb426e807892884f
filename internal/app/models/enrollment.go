package models

// Enrollment links a student to a course.
type Enrollment struct {
	ID             int64            `json:"enrollment_id" db:"enrollment_id"`
	StudentID      int64            `json:"student_id" db:"student_id"`
	CourseID       int64            `json:"course_id" db:"course_id"`
	EnrollmentDate string           `json:"enrollment_date" db:"enrollment_date"` // YYYY-MM-DD
	Grade          *string          `json:"grade" db:"grade"`                     // Nullable letter code, <=2 chars
	Status         EnrollmentStatus `json:"status" db:"status"`

	// Read-only joined fields (populated on reads, ignored on writes)
	StudentName *string `json:"student_name,omitempty" db:"student_name"`
	CourseCode  *string `json:"course_code,omitempty" db:"course_code"`
	CourseName  *string `json:"course_name,omitempty" db:"course_name"`
}
