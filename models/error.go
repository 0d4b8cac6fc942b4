package models

// ErrorMessageResponse returns the error message response struct
type ErrorMessageResponse struct {
	Error string `json:"error"`
}

// SuccessResponse is returned by mutations without a body of their own
type SuccessResponse struct {
	Success      bool   `json:"success"`
	Message      string `json:"message,omitempty"`
	DeletedCount int64  `json:"deletedCount,omitempty"`
}
