package dto

// swagger:model
type ErrorResponse struct {
	Error string `json:"error" example:"Unauthorized"`
}
