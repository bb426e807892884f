package helpers

import "github.com/campusdb/registrar/internal/app/models"

// IntOr returns the dereferenced value when present, fallback otherwise.
func IntOr(v *int, fallback int) int {
	if v == nil {
		return fallback
	}
	return *v
}

// StatusOr returns the dereferenced enrollment status when present,
// fallback otherwise.
func StatusOr(v *models.EnrollmentStatus, fallback models.EnrollmentStatus) models.EnrollmentStatus {
	if v == nil {
		return fallback
	}
	return *v
}

// GradeTypeOr returns the dereferenced grade type when present, fallback
// otherwise.
func GradeTypeOr(v *models.GradeType, fallback models.GradeType) models.GradeType {
	if v == nil {
		return fallback
	}
	return *v
}
