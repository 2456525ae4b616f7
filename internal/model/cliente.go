package model

import (
	"time"

	"github.com/google/uuid"
)

// Cliente is a customer with a running tab. Deleting a cliente cascades the
// deletion of all of their cuenta corriente items.
type Cliente struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Nombre    string    `gorm:"index;not null" json:"nombre"`
	DNI       string    `gorm:"column:dni;uniqueIndex;not null" json:"dni"`
	Domicilio *string   `json:"domicilio"`
	Telefono  *string   `json:"telefono"`
	Email     *string   `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Items []CuentaCorrienteItem `gorm:"foreignKey:ClienteID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Cliente) TableName() string { return "clientes" }
