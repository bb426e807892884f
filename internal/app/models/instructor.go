package models

// Instructor defines the instructor model based on the 'instructors' table
type Instructor struct {
	ID           int64    `json:"instructor_id" db:"instructor_id"`
	FirstName    string   `json:"first_name" db:"first_name"`
	LastName     string   `json:"last_name" db:"last_name"`
	Email        string   `json:"email" db:"email"`
	Phone        *string  `json:"phone" db:"phone"`   // Nullable
	DepartmentID int64    `json:"department_id" db:"department_id"`
	Salary       *float64 `json:"salary" db:"salary"`       // Nullable
	HireDate     *string  `json:"hire_date" db:"hire_date"` // Nullable, YYYY-MM-DD

	// Read-only joined field (populated on reads, ignored on writes)
	DepartmentName *string `json:"department_name,omitempty" db:"department_name"`
}
