package dto

// ErrorResponse respuesta de error uniforme del API.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
