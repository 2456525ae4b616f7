package dto

import "github.com/shopspring/decimal"

// AgregarListaItemRequest adds an item to the shopping list. Exactly one of
// ProductoID / NombreTemporal must be set; the service rejects both or
// neither. Catalog items are merged into an existing pending row, temporal
// items always create a new row.
type AgregarListaItemRequest struct {
	ProductoID      *string         `json:"producto_id"      validate:"omitempty,uuid"`
	NombreTemporal  *string         `json:"nombre_temporal"`
	UnidadTemporal  *string         `json:"unidad_temporal"  validate:"omitempty,oneof=unidad kg litros"`
	Cantidad        decimal.Decimal `json:"cantidad"         validate:"required"`
	PrecioMayorista decimal.Decimal `json:"precio_mayorista" validate:"min=0"`
}

type ActualizarListaItemRequest struct {
	Cantidad        decimal.Decimal `json:"cantidad"         validate:"required"`
	PrecioMayorista decimal.Decimal `json:"precio_mayorista" validate:"min=0"`
}

type ListaItemResponse struct {
	ID              string          `json:"id"`
	ProductoID      *string         `json:"producto_id"`
	Nombre          string          `json:"nombre"`
	Unidad          string          `json:"unidad"`
	EsTemporal      bool            `json:"es_temporal"`
	Cantidad        decimal.Decimal `json:"cantidad"`
	PrecioMayorista decimal.Decimal `json:"precio_mayorista"`
	Comprado        bool            `json:"comprado"`
	FechaAgregado   string          `json:"fecha_agregado"`
	FechaComprado   *string         `json:"fecha_comprado"`
}

type ListaBulkResponse struct {
	Mensaje   string `json:"mensaje"`
	Afectados int64  `json:"afectados"`
}
