package repository

import (
	"context"

	"github.com/victorjanco1992/despensa-app/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CuentaRepository defines the data access contract for cuenta corriente
// line items.
type CuentaRepository interface {
	Create(ctx context.Context, item *model.CuentaCorrienteItem) error
	// CreateTx inserts inside an open transaction (producto suelto path).
	CreateTx(tx *gorm.DB, item *model.CuentaCorrienteItem) error
	// ListByCliente returns the tab newest-first with Producto and Cliente
	// preloaded for the joined listing.
	ListByCliente(ctx context.Context, clienteID uuid.UUID) ([]model.CuentaCorrienteItem, error)
	// UpdatePrecioTx rewrites precio_unitario and subtotal as a pair, inside
	// the refresh transaction, so the subtotal invariant can't be broken.
	UpdatePrecioTx(tx *gorm.DB, id uuid.UUID, precio, subtotal decimal.Decimal) error
	DeleteByCliente(ctx context.Context, clienteID uuid.UUID) (int64, error)
	DeleteByID(ctx context.Context, id uuid.UUID) (int64, error)

	DB() *gorm.DB
}

type cuentaRepo struct{ db *gorm.DB }

func NewCuentaRepository(db *gorm.DB) CuentaRepository { return &cuentaRepo{db: db} }

func (r *cuentaRepo) Create(ctx context.Context, item *model.CuentaCorrienteItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *cuentaRepo) CreateTx(tx *gorm.DB, item *model.CuentaCorrienteItem) error {
	return tx.Create(item).Error
}

func (r *cuentaRepo) ListByCliente(ctx context.Context, clienteID uuid.UUID) ([]model.CuentaCorrienteItem, error) {
	var items []model.CuentaCorrienteItem
	err := r.db.WithContext(ctx).
		Preload("Producto").
		Preload("Cliente").
		Where("cliente_id = ?", clienteID).
		Order("fecha DESC").
		Find(&items).Error
	return items, err
}

func (r *cuentaRepo) UpdatePrecioTx(tx *gorm.DB, id uuid.UUID, precio, subtotal decimal.Decimal) error {
	return tx.Model(&model.CuentaCorrienteItem{}).Where("id = ?", id).Updates(map[string]interface{}{
		"precio_unitario": precio,
		"subtotal":        subtotal,
	}).Error
}

func (r *cuentaRepo) DeleteByCliente(ctx context.Context, clienteID uuid.UUID) (int64, error) {
	res := r.db.WithContext(ctx).Delete(&model.CuentaCorrienteItem{}, "cliente_id = ?", clienteID)
	return res.RowsAffected, res.Error
}

func (r *cuentaRepo) DeleteByID(ctx context.Context, id uuid.UUID) (int64, error) {
	res := r.db.WithContext(ctx).Delete(&model.CuentaCorrienteItem{}, "id = ?", id)
	return res.RowsAffected, res.Error
}

func (r *cuentaRepo) DB() *gorm.DB { return r.db }
