package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CuentaCorrienteItem is one line of a customer's running tab.
//
// PrecioUnitario is frozen at insertion time: later catalog price changes do
// not propagate to existing lines until an explicit bulk refresh. Invariant:
// Subtotal == round(Cantidad × PrecioUnitario, 2); every write path that
// touches one recomputes the other in the same statement/transaction.
// Cantidad is stored in the product's base unit (kg for weight products).
type CuentaCorrienteItem struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	ClienteID      uuid.UUID       `gorm:"type:uuid;index;not null" json:"cliente_id"`
	ProductoID     uuid.UUID       `gorm:"type:uuid;index;not null" json:"producto_id"`
	Cantidad       decimal.Decimal `gorm:"type:decimal(10,3);not null" json:"cantidad"`
	PrecioUnitario decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"precio_unitario"`
	Subtotal       decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"subtotal"`
	Fecha          time.Time       `gorm:"autoCreateTime;index" json:"fecha"`

	Cliente  *Cliente  `gorm:"foreignKey:ClienteID;constraint:OnDelete:CASCADE" json:"-"`
	Producto *Producto `gorm:"foreignKey:ProductoID" json:"-"`
}

func (CuentaCorrienteItem) TableName() string { return "cuentas_corrientes" }
