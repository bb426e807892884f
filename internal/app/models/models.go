package models

// Semester identifies the term a course is offered in.
type Semester string

const (
	SemesterFall   Semester = "Fall"
	SemesterSpring Semester = "Spring"
	SemesterSummer Semester = "Summer"
)

// EnrollmentStatus is the lifecycle state of an enrollment.
type EnrollmentStatus string

const (
	EnrollmentActive    EnrollmentStatus = "Active"
	EnrollmentCompleted EnrollmentStatus = "Completed"
	EnrollmentDropped   EnrollmentStatus = "Dropped"
)

// GradeType categorizes what a grade was awarded for.
type GradeType string

const (
	GradeTypeExam         GradeType = "Exam"
	GradeTypeHomework     GradeType = "Homework"
	GradeTypeProject      GradeType = "Project"
	GradeTypeQuiz         GradeType = "Quiz"
	GradeTypeLab          GradeType = "Lab"
	GradeTypeEssay        GradeType = "Essay"
	GradeTypePresentation GradeType = "Presentation"
)
