package models

// Grade is a single graded item recorded against an enrollment.
type Grade struct {
	ID           int64     `json:"grade_id" db:"grade_id"`
	EnrollmentID int64     `json:"enrollment_id" db:"enrollment_id"`
	Value        float64   `json:"grade_value" db:"grade_value"` // 1.0-5.0 inclusive
	Type         GradeType `json:"grade_type" db:"grade_type"`
	Date         string    `json:"grade_date" db:"grade_date"` // YYYY-MM-DD
	Description  *string   `json:"description" db:"description"` // Nullable

	// Read-only fields pulled through the enrollment join
	StudentID   *int64  `json:"student_id,omitempty" db:"student_id"`
	CourseID    *int64  `json:"course_id,omitempty" db:"course_id"`
	StudentName *string `json:"student_name,omitempty" db:"student_name"`
	CourseCode  *string `json:"course_code,omitempty" db:"course_code"`
	CourseName  *string `json:"course_name,omitempty" db:"course_name"`
}
