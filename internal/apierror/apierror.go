// Package apierror provides the standardized error response structures for
// the API. All errors returned to clients go through this package so the
// envelope stays consistent and internal details (stack traces, raw SQL)
// never leak where they shouldn't.
package apierror

import "fmt"

// APIError is the canonical error envelope for all 4xx/5xx HTTP responses.
type APIError struct {
	Error string `json:"error"`
}

func New(msg string) *APIError {
	return &APIError{Error: msg}
}

// ValidationError wraps multiple field errors.
type ValidationError struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields"`
}

func NewValidation(fields map[string]string) *ValidationError {
	return &ValidationError{Error: "Error de validacion", Fields: fields}
}

// UpstreamError carries a non-2xx status from an external API (Mercado Pago)
// so callers can propagate the status plus a distinguishing message.
type UpstreamError struct {
	Status int
	Body   string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upstream returned %d: %s", e.Status, e.Body)
}

// Mensaje returns the user-facing message for the upstream status,
// separating credential problems from permission problems.
func (e *UpstreamError) Mensaje() string {
	switch e.Status {
	case 401:
		return "Token inválido o expirado. Verifica tu Access Token en Mercado Pago Developers"
	case 403:
		return "Token sin permisos suficientes. Asegúrate de usar un Access Token válido"
	case 404:
		return "Endpoint no encontrado. Verifica la URL de la API"
	default:
		return "Error al conectar con Mercado Pago"
	}
}
