package dto

type CrearClienteRequest struct {
	Nombre    string  `json:"nombre" validate:"required"`
	DNI       string  `json:"dni"    validate:"required"`
	Domicilio *string `json:"domicilio"`
	Telefono  *string `json:"telefono"`
	Email     *string `json:"email" validate:"omitempty,email"`
}

type ClienteResponse struct {
	ID        string  `json:"id"`
	Nombre    string  `json:"nombre"`
	DNI       string  `json:"dni"`
	Domicilio *string `json:"domicilio"`
	Telefono  *string `json:"telefono"`
	Email     *string `json:"email"`
}
