package dto

// Response envelope shared by every endpoint: success flag plus either a
// payload or an error message.
type APIResponse struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

func OK(data any) APIResponse { return APIResponse{Success: true, Data: data} }

func Fail(msg string) APIResponse { return APIResponse{Success: false, Error: msg} }
