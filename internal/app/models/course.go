package models

// Course represents a course offered by a department.
type Course struct {
	ID           int64     `json:"course_id" db:"course_id"`
	Code         string    `json:"course_code" db:"course_code"`
	Name         string    `json:"course_name" db:"course_name"`
	DepartmentID int64     `json:"department_id" db:"department_id"`
	InstructorID *int64    `json:"instructor_id" db:"instructor_id"` // Nullable = unassigned
	Credits      int       `json:"credits" db:"credits"`
	Semester     *Semester `json:"semester" db:"semester"`       // Nullable
	Year         *int      `json:"year" db:"year"`               // Nullable
	RoomNumber   *string   `json:"room_number" db:"room_number"` // Nullable
	Schedule     *string   `json:"schedule" db:"schedule"`       // Nullable free text

	// Read-only joined fields (populated on reads, ignored on writes)
	DepartmentName *string `json:"department_name,omitempty" db:"department_name"`
	InstructorName *string `json:"instructor_name,omitempty" db:"instructor_name"`
}
