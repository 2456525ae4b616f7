package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ListaComprasItem is an entry of the restock list for the wholesaler run.
//
// Exactly one of ProductoID / NombreTemporal is set: either the item points
// at a catalog product, or it is a free-text one-off with its own unit.
// The service enforces that at write time; the merge rule (increment instead
// of duplicating a pending catalog row) only applies to catalog items.
type ListaComprasItem struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	ProductoID      *uuid.UUID      `gorm:"type:uuid;index" json:"producto_id"`
	NombreTemporal  *string         `json:"nombre_temporal"`
	UnidadTemporal  *string         `json:"unidad_temporal"`
	Cantidad        decimal.Decimal `gorm:"type:decimal(10,3);not null" json:"cantidad"`
	PrecioMayorista decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0" json:"precio_mayorista"`
	Comprado        bool            `gorm:"not null;default:false;index" json:"comprado"`
	FechaAgregado   time.Time       `gorm:"autoCreateTime" json:"fecha_agregado"`
	FechaComprado   *time.Time      `json:"fecha_comprado"`

	Producto *Producto `gorm:"foreignKey:ProductoID" json:"-"`
}

func (ListaComprasItem) TableName() string { return "lista_compras" }

// EsTemporal reports whether the item is a free-text (non-catalog) entry.
func (i *ListaComprasItem) EsTemporal() bool { return i.ProductoID == nil }
