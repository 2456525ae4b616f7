package repository

import (
	"context"
	"time"

	"github.com/victorjanco1992/despensa-app/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListaComprasRepository defines the data access contract for the shopping
// list.
type ListaComprasRepository interface {
	Create(ctx context.Context, item *model.ListaComprasItem) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.ListaComprasItem, error)
	// FindPendienteByProducto returns the unpurchased row for a catalog
	// product, or gorm.ErrRecordNotFound. Backs the merge-or-increment rule.
	FindPendienteByProducto(ctx context.Context, productoID uuid.UUID) (*model.ListaComprasItem, error)
	List(ctx context.Context) ([]model.ListaComprasItem, error)
	Update(ctx context.Context, item *model.ListaComprasItem) error
	Delete(ctx context.Context, id uuid.UUID) (int64, error)
	MarcarTodosComprados(ctx context.Context) (int64, error)
	LimpiarComprados(ctx context.Context) (int64, error)
}

type listaComprasRepo struct{ db *gorm.DB }

func NewListaComprasRepository(db *gorm.DB) ListaComprasRepository {
	return &listaComprasRepo{db: db}
}

func (r *listaComprasRepo) Create(ctx context.Context, item *model.ListaComprasItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *listaComprasRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.ListaComprasItem, error) {
	var item model.ListaComprasItem
	if err := r.db.WithContext(ctx).Preload("Producto").First(&item, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *listaComprasRepo) FindPendienteByProducto(ctx context.Context, productoID uuid.UUID) (*model.ListaComprasItem, error) {
	var item model.ListaComprasItem
	err := r.db.WithContext(ctx).
		Where("producto_id = ? AND comprado = ?", productoID, false).
		First(&item).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *listaComprasRepo) List(ctx context.Context) ([]model.ListaComprasItem, error) {
	var items []model.ListaComprasItem
	err := r.db.WithContext(ctx).
		Preload("Producto").
		Order("comprado ASC, fecha_agregado DESC").
		Find(&items).Error
	return items, err
}

func (r *listaComprasRepo) Update(ctx context.Context, item *model.ListaComprasItem) error {
	return r.db.WithContext(ctx).Save(item).Error
}

func (r *listaComprasRepo) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	res := r.db.WithContext(ctx).Delete(&model.ListaComprasItem{}, "id = ?", id)
	return res.RowsAffected, res.Error
}

func (r *listaComprasRepo) MarcarTodosComprados(ctx context.Context) (int64, error) {
	now := time.Now()
	res := r.db.WithContext(ctx).Model(&model.ListaComprasItem{}).
		Where("comprado = ?", false).
		Updates(map[string]interface{}{"comprado": true, "fecha_comprado": now})
	return res.RowsAffected, res.Error
}

func (r *listaComprasRepo) LimpiarComprados(ctx context.Context) (int64, error) {
	res := r.db.WithContext(ctx).Delete(&model.ListaComprasItem{}, "comprado = ?", true)
	return res.RowsAffected, res.Error
}
