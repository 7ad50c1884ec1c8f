package controllers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/yigit/hrmslite/internal/app/models"
	"github.com/yigit/hrmslite/internal/app/models/dto"
	"github.com/yigit/hrmslite/internal/middleware"
)

// EmployeeService is the employee behaviour the controller depends on.
type EmployeeService interface {
	CreateEmployee(ctx context.Context, employee *models.Employee) (*models.Employee, error)
	GetAllEmployees(ctx context.Context) ([]*models.Employee, error)
	GetEmployeeByID(ctx context.Context, id int64) (*models.Employee, error)
	DeleteEmployee(ctx context.Context, id int64) error
}

// EmployeeController handles employee-related operations
type EmployeeController struct {
	employeeService EmployeeService
}

// NewEmployeeController creates a new EmployeeController
func NewEmployeeController(employeeService EmployeeService) *EmployeeController {
	return &EmployeeController{
		employeeService: employeeService,
	}
}

// CreateEmployee handles employee creation
// @Summary Create a new employee
// @Description Creates an employee. The employee ID and the email must both be unused.
// @Tags employees
// @Accept json
// @Produce json
// @Param request body dto.CreateEmployeeRequest true "Employee information"
// @Success 201 {object} dto.EmployeeResponse "Employee created successfully"
// @Failure 409 {object} dto.ErrorResponse "Employee with this ID or email already exists"
// @Failure 422 {object} dto.ErrorResponse "Invalid employee data"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /employees [post]
func (c *EmployeeController) CreateEmployee(ctx *gin.Context) {
	var req dto.CreateEmployeeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	employee, err := c.employeeService.CreateEmployee(ctx, req.ToModel())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewEmployeeResponse(employee))
}

// GetAllEmployees retrieves all employees
// @Summary List employees
// @Description Lists every employee, most recently created first
// @Tags employees
// @Produce json
// @Success 200 {array} dto.EmployeeResponse "Employees retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /employees [get]
func (c *EmployeeController) GetAllEmployees(ctx *gin.Context) {
	employees, err := c.employeeService.GetAllEmployees(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewEmployeeListResponse(employees))
}

// GetEmployeeByID retrieves an employee by ID
// @Summary Get employee by ID
// @Tags employees
// @Produce json
// @Param id path int true "Employee ID"
// @Success 200 {object} dto.EmployeeResponse "Employee retrieved successfully"
// @Failure 404 {object} dto.ErrorResponse "Employee not found"
// @Failure 422 {object} dto.ErrorResponse "Invalid employee ID"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /employees/{id} [get]
func (c *EmployeeController) GetEmployeeByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	employee, err := c.employeeService.GetEmployeeByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewEmployeeResponse(employee))
}

// DeleteEmployee deletes an employee and its attendance
// @Summary Delete employee
// @Description Deletes an employee together with all of its attendance records
// @Tags employees
// @Param id path int true "Employee ID"
// @Success 204 "Employee deleted successfully"
// @Failure 404 {object} dto.ErrorResponse "Employee not found"
// @Failure 422 {object} dto.ErrorResponse "Invalid employee ID"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /employees/{id} [delete]
func (c *EmployeeController) DeleteEmployee(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	if err := c.employeeService.DeleteEmployee(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// parseIDParam reads the integer id path parameter, answering 422 when it is malformed.
func parseIDParam(ctx *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		middleware.HandleInvalidParam(ctx, "id", "id must be an integer")
		return 0, false
	}
	return id, true
}
