package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Unidades de medida admitidas para un producto.
const (
	UnidadUnidad = "unidad"
	UnidadKg     = "kg"
	UnidadLitros = "litros"
)

// Producto is a catalog entry. EsSuelto marks the synthetic rows created to
// back an off-catalog sale ("producto suelto"): those are excluded from
// catalog listings and from the bulk price refresh. The flag replaces the
// old "[SUELTO]" name-prefix convention, which collided with real product
// names starting with the marker.
type Producto struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	Nombre    string          `gorm:"index;not null" json:"nombre"`
	Precio    decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"precio"`
	Unidad    string          `gorm:"not null;default:'unidad'" json:"unidad"`
	EsSuelto  bool            `gorm:"not null;default:false;index" json:"es_suelto"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

func (Producto) TableName() string { return "productos" }
