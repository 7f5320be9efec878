package dto

// Response sobre JSON común a los tres servicios.
// En error nunca se devuelven datos parciales: Data queda vacío.
type Response struct {
	Success   bool   `json:"success"`
	Data      any    `json:"data,omitempty"`
	Count     *int   `json:"count,omitempty"`
	Error     string `json:"error,omitempty"`
	Message   string `json:"message,omitempty"`
	Available *int   `json:"available,omitempty"`
	Requested *int   `json:"requested,omitempty"`
}

// OK respuesta exitosa con datos y mensaje opcional.
func OK(data any, message string) Response {
	return Response{Success: true, Data: data, Message: message}
}

// List respuesta exitosa de listado; Count siempre presente.
func List(data any, count int) Response {
	return Response{Success: true, Data: data, Count: &count}
}

// Fail respuesta de error.
func Fail(message string) Response {
	return Response{Success: false, Error: message}
}

// HealthResponse cuerpo de GET /health.
type HealthResponse struct {
	Status    string `json:"status"`
	Service   string `json:"service"`
	Timestamp string `json:"timestamp"`
}
