package api

// ErrorResponse is the non-validation error body. Error carries the raw
// failure detail on 500s and is omitted otherwise.
// swagger:model api.ErrorResponse
type ErrorResponse struct {
	Message string `json:"message" example:"An error occured"`
	Error   string `json:"error,omitempty"`
}
