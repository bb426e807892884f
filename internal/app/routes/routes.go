package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/campusdb/registrar/internal/app/controllers"
	"github.com/campusdb/registrar/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	departmentController *controllers.DepartmentController,
	instructorController *controllers.InstructorController,
	studentController *controllers.StudentController,
	courseController *controllers.CourseController,
	enrollmentController *controllers.EnrollmentController,
	gradeController *controllers.GradeController,
	departmentHeadController *controllers.DepartmentHeadController,
) {
	// A request with a known path but the wrong verb gets 405, not 404.
	router.HandleMethodNotAllowed = true
	router.NoMethod(middleware.MethodNotAllowedHandler())
	router.NoRoute(middleware.NoRouteHandler())

	// API version group
	v1 := router.Group("/api/v1")

	departments := v1.Group("/departments")
	{
		departments.GET("", departmentController.GetAllDepartments)
		departments.GET("/:id", departmentController.GetDepartmentByID)
		departments.POST("", departmentController.CreateDepartment)
		departments.PUT("/:id", departmentController.UpdateDepartment)
		departments.DELETE("/:id", departmentController.DeleteDepartment)
	}

	instructors := v1.Group("/instructors")
	{
		instructors.GET("", instructorController.GetAllInstructors)
		instructors.GET("/:id", instructorController.GetInstructorByID)
		instructors.POST("", instructorController.CreateInstructor)
		instructors.PUT("/:id", instructorController.UpdateInstructor)
		instructors.DELETE("/:id", instructorController.DeleteInstructor)
	}

	students := v1.Group("/students")
	{
		students.GET("", studentController.GetAllStudents)
		students.GET("/:id", studentController.GetStudentByID)
		students.POST("", studentController.CreateStudent)
		students.PUT("/:id", studentController.UpdateStudent)
		students.DELETE("/:id", studentController.DeleteStudent)
	}

	courses := v1.Group("/courses")
	{
		courses.GET("", courseController.GetAllCourses)
		courses.GET("/:id", courseController.GetCourseByID)
		courses.POST("", courseController.CreateCourse)
		courses.PUT("/:id", courseController.UpdateCourse)
		courses.DELETE("/:id", courseController.DeleteCourse)
	}

	enrollments := v1.Group("/enrollments")
	{
		enrollments.GET("", enrollmentController.GetAllEnrollments)
		enrollments.GET("/:id", enrollmentController.GetEnrollmentByID)
		enrollments.POST("", enrollmentController.CreateEnrollment)
		enrollments.PUT("/:id", enrollmentController.UpdateEnrollment)
		enrollments.DELETE("/:id", enrollmentController.DeleteEnrollment)
	}

	// The :id segment on department-heads routes is a department ID.
	departmentHeads := v1.Group("/department-heads")
	{
		departmentHeads.GET("", departmentHeadController.GetAllDepartmentHeads)
		departmentHeads.GET("/:id", departmentHeadController.GetDepartmentHead)
		departmentHeads.POST("", departmentHeadController.AssignDepartmentHead)
		departmentHeads.PUT("/:id", departmentHeadController.UpdateDepartmentHead)
		departmentHeads.DELETE("/:id", departmentHeadController.RemoveDepartmentHead)
	}

	grades := v1.Group("/grades")
	{
		grades.GET("", gradeController.GetAllGrades)
		grades.GET("/:id", gradeController.GetGradeByID)
		grades.POST("", gradeController.CreateGrade)
		grades.PUT("/:id", gradeController.UpdateGrade)
		grades.DELETE("/:id", gradeController.DeleteGrade)
	}

	// Health check endpoint (public)
	v1.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
}
