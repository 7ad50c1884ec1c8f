package dto

// HealthResponse is the liveness probe body
type HealthResponse struct {
	Status string `json:"status" example:"ok"`
}
