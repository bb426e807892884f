package models

// Department represents an academic department.
type Department struct {
	ID       int64    `json:"department_id" db:"department_id"`
	Name     string   `json:"department_name" db:"department_name"`
	Building *string  `json:"building" db:"building"` // Nullable
	Budget   *float64 `json:"budget" db:"budget"`     // Nullable
}
