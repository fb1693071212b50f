package models

// APIResponse is the envelope every route replies with
type APIResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// LoginResponse carries the signed bearer token
type LoginResponse struct {
	Success bool   `json:"success"`
	Token   string `json:"token"`
}
