package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/hrmslite/internal/app/controllers"
)

// SetupRouter configures all application routes. metricsHandler is mounted on
// /metrics when not nil.
func SetupRouter(
	router *gin.Engine,
	employeeController *controllers.EmployeeController,
	attendanceController *controllers.AttendanceController,
	healthController *controllers.HealthController,
	metricsHandler http.Handler,
) {
	api := router.Group("/api")

	employees := api.Group("/employees")
	{
		employees.POST("", employeeController.CreateEmployee)
		employees.GET("", employeeController.GetAllEmployees)
		employees.GET("/:id", employeeController.GetEmployeeByID)
		employees.DELETE("/:id", employeeController.DeleteEmployee)
	}

	attendance := api.Group("/attendance")
	{
		attendance.POST("", attendanceController.MarkAttendance)
		attendance.GET("", attendanceController.GetAttendance)
		attendance.GET("/summary", attendanceController.GetSummary)
		attendance.GET("/export", attendanceController.ExportAttendance)
	}

	router.GET("/health", healthController.Health)
	router.GET("/health/ready", healthController.Ready)

	if metricsHandler != nil {
		router.GET("/metrics", gin.WrapH(metricsHandler))
	}
}
