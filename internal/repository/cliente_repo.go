package repository

import (
	"context"

	"github.com/victorjanco1992/despensa-app/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ClienteRepository defines the data access contract for customers.
type ClienteRepository interface {
	Create(ctx context.Context, c *model.Cliente) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Cliente, error)
	FindByDNI(ctx context.Context, dni string) (*model.Cliente, error)
	List(ctx context.Context) ([]model.Cliente, error)
	Update(ctx context.Context, c *model.Cliente) error
	// Delete removes the cliente and all of their tab items in one
	// transaction. The FK also carries ON DELETE CASCADE, but SQLite
	// deployments don't always enforce it, so the cascade is explicit.
	Delete(ctx context.Context, id uuid.UUID) (int64, error)

	DB() *gorm.DB
}

type clienteRepo struct{ db *gorm.DB }

func NewClienteRepository(db *gorm.DB) ClienteRepository { return &clienteRepo{db: db} }

func (r *clienteRepo) Create(ctx context.Context, c *model.Cliente) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *clienteRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Cliente, error) {
	var c model.Cliente
	if err := r.db.WithContext(ctx).First(&c, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *clienteRepo) FindByDNI(ctx context.Context, dni string) (*model.Cliente, error) {
	var c model.Cliente
	if err := r.db.WithContext(ctx).Where("dni = ?", dni).First(&c).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *clienteRepo) List(ctx context.Context) ([]model.Cliente, error) {
	var clientes []model.Cliente
	err := r.db.WithContext(ctx).Order("nombre ASC").Find(&clientes).Error
	return clientes, err
}

func (r *clienteRepo) Update(ctx context.Context, c *model.Cliente) error {
	return r.db.WithContext(ctx).Save(c).Error
}

func (r *clienteRepo) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	var affected int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&model.CuentaCorrienteItem{}, "cliente_id = ?", id).Error; err != nil {
			return err
		}
		res := tx.Delete(&model.Cliente{}, "id = ?", id)
		affected = res.RowsAffected
		return res.Error
	})
	return affected, err
}

func (r *clienteRepo) DB() *gorm.DB { return r.db }
