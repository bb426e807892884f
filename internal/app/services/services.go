package services

// Services defined in this package:
// - DepartmentService: departments CRUD
// - InstructorService: instructors CRUD with department enrichment
// - StudentService: students CRUD with major enrichment and derived GPA
// - CourseService: courses CRUD with department/instructor enrichment
// - EnrollmentService: enrollments CRUD with student/course enrichment
// - GradeService: grades CRUD with details pulled through the enrollment
// - DepartmentHeadService: one head per department, addressed by department ID

import (
	"fmt"

	"github.com/campusdb/registrar/internal/pkg/apperrors"
	"github.com/campusdb/registrar/internal/pkg/dberrors"
	"github.com/campusdb/registrar/internal/pkg/logger"
)

// mapStoreError translates raw store failures into the application error
// taxonomy. Integrity violations become constraint errors with a redacted,
// client-safe message; connection failures become store-unavailable. The
// raw error text only reaches the server log.
func mapStoreError(operation string, err error) error {
	if err == nil {
		return nil
	}

	switch {
	case dberrors.IsConstraintViolation(err):
		logger.Warn().Err(err).Str("operation", operation).Msg("Store rejected write")
		return apperrors.NewConstraintError(dberrors.ConstraintMessage(err))
	case dberrors.IsConnectivityError(err):
		logger.Error().Err(err).Str("operation", operation).Msg("Store unreachable")
		return fmt.Errorf("%w: %s", apperrors.ErrStoreUnavailable, operation)
	default:
		return err
	}
}
