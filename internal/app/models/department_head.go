package models

// DepartmentHead records which instructor currently heads a department.
// The department ID is the primary identity: at most one head per department.
type DepartmentHead struct {
	DepartmentID int64  `json:"department_id" db:"department_id"`
	InstructorID int64  `json:"instructor_id" db:"instructor_id"`
	StartDate    string `json:"start_date" db:"start_date"` // YYYY-MM-DD

	// Read-only joined fields (populated on reads, ignored on writes)
	DepartmentName *string `json:"department_name,omitempty" db:"department_name"`
	HeadName       *string `json:"head_name,omitempty" db:"head_name"`
}
