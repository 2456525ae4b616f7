package dto

import "github.com/shopspring/decimal"

type CrearProductoRequest struct {
	Nombre string          `json:"nombre" validate:"required"`
	Precio decimal.Decimal `json:"precio" validate:"required,gt=0"`
	Unidad string          `json:"unidad" validate:"required,oneof=unidad kg litros"`
}

type ActualizarProductoRequest struct {
	Nombre string          `json:"nombre" validate:"required"`
	Precio decimal.Decimal `json:"precio" validate:"required,gt=0"`
	Unidad string          `json:"unidad" validate:"required,oneof=unidad kg litros"`
}

type ProductoResponse struct {
	ID     string          `json:"id"`
	Nombre string          `json:"nombre"`
	Precio decimal.Decimal `json:"precio"`
	Unidad string          `json:"unidad"`
}
