// Package routes wires controllers to URL paths and attaches the capability
// guards. Every route except login and the health check requires an
// authenticated principal.
package routes

import (
	"github.com/gin-gonic/gin"

	appauth "github.com/omarhn/registra/internal/app/auth"
	"github.com/omarhn/registra/internal/app/controllers"
	"github.com/omarhn/registra/internal/app/models/dto"
	"github.com/omarhn/registra/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	studentController *controllers.StudentController,
	staffController *controllers.StaffController,
	subjectController *controllers.SubjectController,
	departmentController *controllers.DepartmentController,
	authMiddleware *middleware.AuthMiddleware,
) {
	v1 := router.Group("/api/v1")

	// --- Public routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/login", authController.Login)
	}

	v1.GET("/health", func(c *gin.Context) {
		c.JSON(200, dto.NewSuccessResponse(gin.H{"status": "ok"}))
	})

	// --- Authenticated routes ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())

	// Own-record route, available to every authenticated student
	authenticated.GET("/students/me",
		authMiddleware.CapabilityRequired(appauth.CapReadOwnRecord),
		studentController.GetOwnRecord)

	students := authenticated.Group("/students")
	students.Use(authMiddleware.CapabilityRequired(appauth.CapManageStudents))
	{
		students.POST("", studentController.RegisterStudent)
		students.GET("", studentController.ListStudents)
		students.GET("/:id", studentController.GetStudent)
		students.DELETE("/:id", studentController.RemoveStudent)
		students.PUT("/:id/completed-subjects", studentController.SetCompletedSubjects)
		students.PUT("/:id/requested-subjects", studentController.SetRequestedSubjects)
		students.PUT("/:id/department", studentController.AssignDepartment)
	}

	staff := authenticated.Group("/staff")
	staff.Use(authMiddleware.CapabilityRequired(appauth.CapManageStaff))
	{
		staff.POST("", staffController.RegisterStaff)
		staff.GET("", staffController.ListStaff)
		staff.GET("/:id", staffController.GetStaff)
		staff.DELETE("/:id", staffController.RemoveStaff)
	}

	subjects := authenticated.Group("/subjects")
	subjects.Use(authMiddleware.CapabilityRequired(appauth.CapManageCatalog))
	{
		subjects.POST("", subjectController.CreateSubject)
		subjects.GET("", subjectController.ListSubjects)
		subjects.GET("/:id", subjectController.GetSubject)
		subjects.DELETE("/:id", subjectController.DeleteSubject)
	}

	departments := authenticated.Group("/departments")
	departments.Use(authMiddleware.CapabilityRequired(appauth.CapManageCatalog))
	{
		departments.POST("", departmentController.CreateDepartment)
		departments.GET("", departmentController.ListDepartments)
		departments.GET("/:id", departmentController.GetDepartment)
		departments.DELETE("/:id", departmentController.DeleteDepartment)
	}
}
