package dto

// ErrorResponse cuerpo de error HTTP. Code es el tipo de error (ej. "order-not-found");
// Error repite el código para los clientes que leen {"error": ...}.
type ErrorResponse struct {
	Code    string `json:"code"`
	Error   string `json:"error"`
	Message string `json:"message"`
}

// NewErrorResponse construye el cuerpo con Code y Error iguales.
func NewErrorResponse(code, message string) ErrorResponse {
	return ErrorResponse{Code: code, Error: code, Message: message}
}
