package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Fuentes de pago reconocidas por la clasificación del sync.
const (
	FuenteTransferencia      = "Transferencia"
	FuenteTransferenciaAlias = "Transferencia Alias"
	FuenteTarjetaDebito      = "Tarjeta Débito"
	FuenteTarjetaCredito     = "Tarjeta Crédito"
	FuenteQR                 = "QR"
	FuentePoint              = "POS/Point"
	FuenteDesconocido        = "Desconocido"
)

// Transferencia is a payment imported from Mercado Pago by the sync job.
// Rows are never created or updated by hand through the API.
//
// MPID is the processor-assigned payment id; the unique index on it is what
// makes the sync idempotent. Observaciones keeps the legacy pipe-delimited
// layout (FUENTE:...|MP_ID:...|DESC:...|METODO:...|TIPO:...) because the
// frontend renders it, but de-dup and filtering read the structured columns.
type Transferencia struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	Nombre        string          `gorm:"index;not null" json:"nombre"`
	Monto         decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"monto"`
	FechaHora     time.Time       `gorm:"index;not null" json:"fecha_hora"`
	Observaciones string          `json:"observaciones"`

	MPID        *string `gorm:"column:mp_id;uniqueIndex" json:"mp_id"`
	Fuente      string  `gorm:"index" json:"fuente"`
	Descripcion string  `json:"descripcion"`
	Metodo      string  `json:"metodo"`
	Tipo        string  `json:"tipo"`

	CreatedAt time.Time `json:"created_at"`
}

func (Transferencia) TableName() string { return "transferencias" }
