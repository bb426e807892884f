package services_test

import (
	"context"

	"github.com/campusdb/registrar/internal/app/models"
	"github.com/campusdb/registrar/internal/pkg/apperrors"
)

// In-memory repository fakes. Each captures the last written record so
// tests can assert on what the service handed to the store, and returns
// canned errors to exercise the error mapping.

type fakeDepartmentRepo struct {
	departments []*models.Department
	created     *models.Department
	updated     *models.Department
	deletedID   int64

	getErr    error
	createErr error
	updateErr error
	deleteErr error
}

func (f *fakeDepartmentRepo) GetAll(ctx context.Context) ([]*models.Department, error) {
	return f.departments, f.getErr
}

func (f *fakeDepartmentRepo) GetByID(ctx context.Context, id int64) (*models.Department, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	for _, d := range f.departments {
		if d.ID == id {
			return d, nil
		}
	}
	return nil, apperrors.ErrDepartmentNotFound
}

func (f *fakeDepartmentRepo) Create(ctx context.Context, department *models.Department) (int64, error) {
	if f.createErr != nil {
		return 0, f.createErr
	}
	f.created = department
	return int64(len(f.departments) + 1), nil
}

func (f *fakeDepartmentRepo) Update(ctx context.Context, department *models.Department) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	f.updated = department
	return nil
}

func (f *fakeDepartmentRepo) Delete(ctx context.Context, id int64) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deletedID = id
	return nil
}

type fakeStudentRepo struct {
	students  []*models.Student
	created   *models.Student
	updated   *models.Student
	deletedID int64

	getErr    error
	createErr error
	updateErr error
	deleteErr error
}

func (f *fakeStudentRepo) GetAll(ctx context.Context) ([]*models.Student, error) {
	return f.students, f.getErr
}

func (f *fakeStudentRepo) GetByID(ctx context.Context, id int64) (*models.Student, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	for _, s := range f.students {
		if s.ID == id {
			return s, nil
		}
	}
	return nil, apperrors.ErrStudentNotFound
}

func (f *fakeStudentRepo) Create(ctx context.Context, student *models.Student) (int64, error) {
	if f.createErr != nil {
		return 0, f.createErr
	}
	f.created = student
	return int64(len(f.students) + 1), nil
}

func (f *fakeStudentRepo) Update(ctx context.Context, student *models.Student) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	f.updated = student
	return nil
}

func (f *fakeStudentRepo) Delete(ctx context.Context, id int64) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deletedID = id
	return nil
}

type fakeGradeRepo struct {
	grades    []*models.Grade
	values    map[int64][]float64
	created   *models.Grade
	updated   *models.Grade
	deletedID int64

	getErr    error
	valuesErr error
	createErr error
	updateErr error
	deleteErr error
}

func (f *fakeGradeRepo) GetAll(ctx context.Context) ([]*models.Grade, error) {
	return f.grades, f.getErr
}

func (f *fakeGradeRepo) GetByID(ctx context.Context, id int64) (*models.Grade, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	for _, g := range f.grades {
		if g.ID == id {
			return g, nil
		}
	}
	return nil, apperrors.ErrGradeNotFound
}

func (f *fakeGradeRepo) Create(ctx context.Context, grade *models.Grade) (int64, error) {
	if f.createErr != nil {
		return 0, f.createErr
	}
	f.created = grade
	return int64(len(f.grades) + 1), nil
}

func (f *fakeGradeRepo) Update(ctx context.Context, grade *models.Grade) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	f.updated = grade
	return nil
}

func (f *fakeGradeRepo) Delete(ctx context.Context, id int64) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deletedID = id
	return nil
}

func (f *fakeGradeRepo) ValuesByStudent(ctx context.Context, studentID int64) ([]float64, error) {
	if f.valuesErr != nil {
		return nil, f.valuesErr
	}
	return f.values[studentID], nil
}

type fakeCourseRepo struct {
	courses   []*models.Course
	created   *models.Course
	updated   *models.Course
	deletedID int64

	getErr    error
	createErr error
	updateErr error
	deleteErr error
}

func (f *fakeCourseRepo) GetAll(ctx context.Context) ([]*models.Course, error) {
	return f.courses, f.getErr
}

func (f *fakeCourseRepo) GetByID(ctx context.Context, id int64) (*models.Course, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	for _, c := range f.courses {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, apperrors.ErrCourseNotFound
}

func (f *fakeCourseRepo) Create(ctx context.Context, course *models.Course) (int64, error) {
	if f.createErr != nil {
		return 0, f.createErr
	}
	f.created = course
	return int64(len(f.courses) + 1), nil
}

func (f *fakeCourseRepo) Update(ctx context.Context, course *models.Course) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	f.updated = course
	return nil
}

func (f *fakeCourseRepo) Delete(ctx context.Context, id int64) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deletedID = id
	return nil
}

type fakeEnrollmentRepo struct {
	enrollments []*models.Enrollment
	created     *models.Enrollment
	updated     *models.Enrollment
	deletedID   int64

	getErr    error
	createErr error
	updateErr error
	deleteErr error
}

func (f *fakeEnrollmentRepo) GetAll(ctx context.Context) ([]*models.Enrollment, error) {
	return f.enrollments, f.getErr
}

func (f *fakeEnrollmentRepo) GetByID(ctx context.Context, id int64) (*models.Enrollment, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	for _, e := range f.enrollments {
		if e.ID == id {
			return e, nil
		}
	}
	return nil, apperrors.ErrEnrollmentNotFound
}

func (f *fakeEnrollmentRepo) Create(ctx context.Context, enrollment *models.Enrollment) (int64, error) {
	if f.createErr != nil {
		return 0, f.createErr
	}
	f.created = enrollment
	return int64(len(f.enrollments) + 1), nil
}

func (f *fakeEnrollmentRepo) Update(ctx context.Context, enrollment *models.Enrollment) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	f.updated = enrollment
	return nil
}

func (f *fakeEnrollmentRepo) Delete(ctx context.Context, id int64) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deletedID = id
	return nil
}

type fakeDepartmentHeadRepo struct {
	heads     []*models.DepartmentHead
	created   *models.DepartmentHead
	updated   *models.DepartmentHead
	deletedID int64

	getErr    error
	createErr error
	updateErr error
	deleteErr error
}

func (f *fakeDepartmentHeadRepo) GetAll(ctx context.Context) ([]*models.DepartmentHead, error) {
	return f.heads, f.getErr
}

func (f *fakeDepartmentHeadRepo) GetByDepartmentID(ctx context.Context, departmentID int64) (*models.DepartmentHead, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	for _, h := range f.heads {
		if h.DepartmentID == departmentID {
			return h, nil
		}
	}
	return nil, apperrors.ErrDepartmentHeadNotFound
}

func (f *fakeDepartmentHeadRepo) Create(ctx context.Context, head *models.DepartmentHead) (int64, error) {
	if f.createErr != nil {
		return 0, f.createErr
	}
	f.created = head
	return head.DepartmentID, nil
}

func (f *fakeDepartmentHeadRepo) Update(ctx context.Context, head *models.DepartmentHead) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	f.updated = head
	return nil
}

func (f *fakeDepartmentHeadRepo) Delete(ctx context.Context, departmentID int64) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deletedID = departmentID
	return nil
}

type fakeInstructorRepo struct {
	instructors []*models.Instructor
	created     *models.Instructor
	updated     *models.Instructor
	deletedID   int64

	getErr    error
	createErr error
	updateErr error
	deleteErr error
}

func (f *fakeInstructorRepo) GetAll(ctx context.Context) ([]*models.Instructor, error) {
	return f.instructors, f.getErr
}

func (f *fakeInstructorRepo) GetByID(ctx context.Context, id int64) (*models.Instructor, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	for _, i := range f.instructors {
		if i.ID == id {
			return i, nil
		}
	}
	return nil, apperrors.ErrInstructorNotFound
}

func (f *fakeInstructorRepo) Create(ctx context.Context, instructor *models.Instructor) (int64, error) {
	if f.createErr != nil {
		return 0, f.createErr
	}
	f.created = instructor
	return int64(len(f.instructors) + 1), nil
}

func (f *fakeInstructorRepo) Update(ctx context.Context, instructor *models.Instructor) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	f.updated = instructor
	return nil
}

func (f *fakeInstructorRepo) Delete(ctx context.Context, id int64) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deletedID = id
	return nil
}
