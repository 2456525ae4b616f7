package repository

import (
	"context"
	"errors"

	"github.com/victorjanco1992/despensa-app/internal/dto"
	"github.com/victorjanco1992/despensa-app/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TransferenciaRepository defines the data access contract for imported
// payments. There is deliberately no Update: transfer rows are immutable
// once imported.
type TransferenciaRepository interface {
	Create(ctx context.Context, t *model.Transferencia) error
	// ExistsByMPID is the de-dup check of the sync job, backed by the
	// unique index on mp_id.
	ExistsByMPID(ctx context.Context, mpID string) (bool, error)
	List(ctx context.Context, filter dto.TransferenciaFilter) ([]model.Transferencia, int64, error)
	Delete(ctx context.Context, id uuid.UUID) (int64, error)
}

type transferenciaRepo struct{ db *gorm.DB }

func NewTransferenciaRepository(db *gorm.DB) TransferenciaRepository {
	return &transferenciaRepo{db: db}
}

func (r *transferenciaRepo) Create(ctx context.Context, t *model.Transferencia) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *transferenciaRepo) ExistsByMPID(ctx context.Context, mpID string) (bool, error) {
	var t model.Transferencia
	err := r.db.WithContext(ctx).Select("id").Where("mp_id = ?", mpID).First(&t).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (r *transferenciaRepo) List(ctx context.Context, filter dto.TransferenciaFilter) ([]model.Transferencia, int64, error) {
	var transferencias []model.Transferencia
	var total int64

	q := r.db.WithContext(ctx).Model(&model.Transferencia{})
	if filter.Search != "" {
		// Case-insensitive on both drivers; plain LIKE folds case only on
		// SQLite.
		q = q.Where("LOWER(nombre) LIKE LOWER(?)", "%"+filter.Search+"%")
	}
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (filter.Page - 1) * filter.Limit
	err := q.Order("fecha_hora DESC").Limit(filter.Limit).Offset(offset).Find(&transferencias).Error
	return transferencias, total, err
}

func (r *transferenciaRepo) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	res := r.db.WithContext(ctx).Delete(&model.Transferencia{}, "id = ?", id)
	return res.RowsAffected, res.Error
}
