package dto

import "github.com/shopspring/decimal"

// AgregarItemRequest adds a catalog product to a customer's tab.
// The unit price is NOT part of the request: it is frozen server-side from
// the product's current catalog price.
type AgregarItemRequest struct {
	ClienteID  string          `json:"cliente_id"  validate:"required,uuid"`
	ProductoID string          `json:"producto_id" validate:"required,uuid"`
	Cantidad   decimal.Decimal `json:"cantidad"    validate:"required"`
}

// AgregarSueltoRequest records an off-catalog sale ("$1000 de pan").
type AgregarSueltoRequest struct {
	ClienteID string          `json:"cliente_id" validate:"required,uuid"`
	Nombre    string          `json:"nombre"     validate:"required"`
	Precio    decimal.Decimal `json:"precio"     validate:"required,gt=0"`
	Cantidad  decimal.Decimal `json:"cantidad"   validate:"required"`
}

type ItemCuentaResponse struct {
	ID             string          `json:"id"`
	ClienteID      string          `json:"cliente_id"`
	ProductoID     string          `json:"producto_id"`
	Cantidad       decimal.Decimal `json:"cantidad"`
	PrecioUnitario decimal.Decimal `json:"precio_unitario"`
	Subtotal       decimal.Decimal `json:"subtotal"`
	Fecha          string          `json:"fecha"`

	// Joined fields for the tab listing
	ProductoNombre string `json:"producto_nombre,omitempty"`
	Unidad         string `json:"unidad,omitempty"`
	EsSuelto       bool   `json:"es_suelto,omitempty"`
	ClienteNombre  string `json:"cliente_nombre,omitempty"`
}

type ActualizarPreciosResponse struct {
	Mensaje string `json:"mensaje"`
	Cambios int64  `json:"cambios"`
}

type CancelarCuentaResponse struct {
	Mensaje         string `json:"mensaje"`
	ItemsEliminados int64  `json:"itemsEliminados"`
}
