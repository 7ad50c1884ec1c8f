package dto

import (
	"strings"
	"time"

	"github.com/yigit/hrmslite/internal/app/models"
)

// CreateEmployeeRequest represents employee creation data
type CreateEmployeeRequest struct {
	EmployeeID string `json:"employee_id" binding:"required,notblank"`
	FullName   string `json:"full_name" binding:"required,notblank"`
	Email      string `json:"email" binding:"required,email"`
	Department string `json:"department" binding:"required,notblank"`
}

// ToModel converts the request into an unsaved employee
func (r CreateEmployeeRequest) ToModel() *models.Employee {
	return &models.Employee{
		EmployeeCode: r.EmployeeID,
		FullName:     r.FullName,
		Email:        NormalizeEmail(r.Email),
		Department:   r.Department,
	}
}

// NormalizeEmail lower-cases the domain of an address. The local part is kept
// as given since mailbox names may be case sensitive.
func NormalizeEmail(email string) string {
	at := strings.LastIndexByte(email, '@')
	if at < 0 {
		return email
	}
	return email[:at+1] + strings.ToLower(email[at+1:])
}

// EmployeeResponse represents an employee as returned by the API
type EmployeeResponse struct {
	ID         int64     `json:"id" example:"1"`
	EmployeeID string    `json:"employee_id" example:"E1"`
	FullName   string    `json:"full_name" example:"Ann Lee"`
	Email      string    `json:"email" example:"ann@example.com"`
	Department string    `json:"department" example:"Engineering"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// NewEmployeeResponse maps an employee model to its response shape
func NewEmployeeResponse(e *models.Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:         e.ID,
		EmployeeID: e.EmployeeCode,
		FullName:   e.FullName,
		Email:      e.Email,
		Department: e.Department,
		CreatedAt:  e.CreatedAt.UTC(),
		UpdatedAt:  e.UpdatedAt.UTC(),
	}
}

// NewEmployeeListResponse maps a list of employees, never returning nil so the
// JSON body is always an array.
func NewEmployeeListResponse(employees []*models.Employee) []EmployeeResponse {
	out := make([]EmployeeResponse, 0, len(employees))
	for _, e := range employees {
		out = append(out, NewEmployeeResponse(e))
	}
	return out
}
