package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeEmail(t *testing.T) {
	tests := map[string]string{
		"ada@example.com":      "ada@example.com",
		"ada@EXAMPLE.Com":      "ada@example.com",
		"Ada.Lovelace@Mail.IO": "Ada.Lovelace@mail.io",
		"no-at-sign":           "no-at-sign",
	}
	for in, want := range tests {
		assert.Equal(t, want, NormalizeEmail(in), in)
	}
}

func TestCreateEmployeeRequestToModel(t *testing.T) {
	req := CreateEmployeeRequest{
		EmployeeID: "E1",
		FullName:   "Ada Lovelace",
		Email:      "Ada@Example.COM",
		Department: "Engineering",
	}

	e := req.ToModel()

	assert.Equal(t, "E1", e.EmployeeCode)
	assert.Equal(t, "Ada@example.com", e.Email)
}

func TestAttendanceQueryToFilter(t *testing.T) {
	id := int64(0)
	filter, err := AttendanceQuery{EmployeeID: &id, FromDate: "2024-01-05"}.ToFilter()

	assert.NoError(t, err)
	assert.Equal(t, int64(0), filter.EmployeeID)
	if assert.NotNil(t, filter.FromDate) {
		assert.Equal(t, "2024-01-05", filter.FromDate.Format("2006-01-02"))
	}
	assert.Nil(t, filter.ToDate)
}
