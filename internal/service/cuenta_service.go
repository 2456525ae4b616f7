package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/victorjanco1992/despensa-app/internal/dto"
	"github.com/victorjanco1992/despensa-app/internal/model"
	"github.com/victorjanco1992/despensa-app/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CuentaService owns the cuenta corriente ledger and its price-freeze rules.
type CuentaService interface {
	Listar(ctx context.Context, clienteID uuid.UUID) ([]dto.ItemCuentaResponse, error)
	// AgregarItem freezes the product's current catalog price into the line.
	AgregarItem(ctx context.Context, req dto.AgregarItemRequest) (*dto.ItemCuentaResponse, error)
	// AgregarSuelto records an off-catalog sale: synthetic product + tab line
	// inserted in one transaction, or neither.
	AgregarSuelto(ctx context.Context, req dto.AgregarSueltoRequest) (*dto.ItemCuentaResponse, error)
	// ActualizarPrecios re-freezes every non-suelto line of the customer at
	// the live catalog price. Returns the number of lines changed.
	ActualizarPrecios(ctx context.Context, clienteID uuid.UUID) (int64, error)
	Cancelar(ctx context.Context, clienteID uuid.UUID) (int64, error)
	EliminarItem(ctx context.Context, id uuid.UUID) error
}

type cuentaService struct {
	repo         repository.CuentaRepository
	productoRepo repository.ProductoRepository
	clienteRepo  repository.ClienteRepository
}

func NewCuentaService(
	repo repository.CuentaRepository,
	productoRepo repository.ProductoRepository,
	clienteRepo repository.ClienteRepository,
) CuentaService {
	return &cuentaService{repo: repo, productoRepo: productoRepo, clienteRepo: clienteRepo}
}

func (s *cuentaService) Listar(ctx context.Context, clienteID uuid.UUID) ([]dto.ItemCuentaResponse, error) {
	items, err := s.repo.ListByCliente(ctx, clienteID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ItemCuentaResponse, 0, len(items))
	for i := range items {
		out = append(out, *itemToResponse(&items[i]))
	}
	return out, nil
}

func (s *cuentaService) AgregarItem(ctx context.Context, req dto.AgregarItemRequest) (*dto.ItemCuentaResponse, error) {
	clienteID, err := uuid.Parse(req.ClienteID)
	if err != nil {
		return nil, fmt.Errorf("cliente_id inválido: %w", err)
	}
	productoID, err := uuid.Parse(req.ProductoID)
	if err != nil {
		return nil, fmt.Errorf("producto_id inválido: %w", err)
	}

	if _, err := s.clienteRepo.FindByID(ctx, clienteID); err != nil {
		return nil, ErrClienteNoEncontrado
	}
	producto, err := s.productoRepo.FindByID(ctx, productoID)
	if err != nil {
		return nil, ErrProductoNoEncontrado
	}

	item := &model.CuentaCorrienteItem{
		ClienteID:      clienteID,
		ProductoID:     producto.ID,
		Cantidad:       req.Cantidad,
		PrecioUnitario: producto.Precio,
		Subtotal:       req.Cantidad.Mul(producto.Precio).Round(2),
	}
	if err := s.repo.Create(ctx, item); err != nil {
		return nil, err
	}

	resp := itemToResponse(item)
	resp.ProductoNombre = producto.Nombre
	resp.Unidad = producto.Unidad
	return resp, nil
}

func (s *cuentaService) AgregarSuelto(ctx context.Context, req dto.AgregarSueltoRequest) (*dto.ItemCuentaResponse, error) {
	clienteID, err := uuid.Parse(req.ClienteID)
	if err != nil {
		return nil, fmt.Errorf("cliente_id inválido: %w", err)
	}
	if _, err := s.clienteRepo.FindByID(ctx, clienteID); err != nil {
		return nil, ErrClienteNoEncontrado
	}

	producto := &model.Producto{
		Nombre:   req.Nombre,
		Precio:   req.Precio,
		Unidad:   model.UnidadUnidad,
		EsSuelto: true,
	}
	item := &model.CuentaCorrienteItem{
		ClienteID:      clienteID,
		Cantidad:       req.Cantidad,
		PrecioUnitario: req.Precio,
		Subtotal:       req.Cantidad.Mul(req.Precio).Round(2),
	}

	// Both inserts or neither: a synthetic product without a tab line is an
	// orphan in the catalog.
	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		if err := s.productoRepo.CreateTx(tx, producto); err != nil {
			return err
		}
		item.ProductoID = producto.ID
		return s.repo.CreateTx(tx, item)
	})
	if txErr != nil {
		return nil, txErr
	}

	resp := itemToResponse(item)
	resp.ProductoNombre = producto.Nombre
	resp.Unidad = producto.Unidad
	resp.EsSuelto = true
	return resp, nil
}

func (s *cuentaService) ActualizarPrecios(ctx context.Context, clienteID uuid.UUID) (int64, error) {
	items, err := s.repo.ListByCliente(ctx, clienteID)
	if err != nil {
		return 0, err
	}

	var cambios int64
	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		for i := range items {
			item := &items[i]
			// Sueltos keep their frozen price: they have no catalog price
			// to re-freeze from.
			if item.Producto == nil || item.Producto.EsSuelto {
				continue
			}
			precio := item.Producto.Precio
			subtotal := item.Cantidad.Mul(precio).Round(2)
			if err := s.repo.UpdatePrecioTx(tx, item.ID, precio, subtotal); err != nil {
				return err
			}
			cambios++
		}
		return nil
	})
	if txErr != nil {
		return 0, txErr
	}
	return cambios, nil
}

func (s *cuentaService) Cancelar(ctx context.Context, clienteID uuid.UUID) (int64, error) {
	return s.repo.DeleteByCliente(ctx, clienteID)
}

func (s *cuentaService) EliminarItem(ctx context.Context, id uuid.UUID) error {
	affected, err := s.repo.DeleteByID(ctx, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrItemNoEncontrado
	}
	return nil
}

// runTx executes fn inside a GORM transaction when db is available, or calls
// fn(nil) directly when db is nil (unit test mode with stub repositories).
func runTx(ctx context.Context, db *gorm.DB, fn func(tx *gorm.DB) error) error {
	if db == nil {
		return fn(nil)
	}
	return db.WithContext(ctx).Transaction(fn)
}

func itemToResponse(item *model.CuentaCorrienteItem) *dto.ItemCuentaResponse {
	resp := &dto.ItemCuentaResponse{
		ID:             item.ID.String(),
		ClienteID:      item.ClienteID.String(),
		ProductoID:     item.ProductoID.String(),
		Cantidad:       item.Cantidad,
		PrecioUnitario: item.PrecioUnitario,
		Subtotal:       item.Subtotal,
		Fecha:          item.Fecha.Format("2006-01-02T15:04:05Z"),
	}
	if item.Producto != nil {
		resp.ProductoNombre = item.Producto.Nombre
		resp.Unidad = item.Producto.Unidad
		resp.EsSuelto = item.Producto.EsSuelto
	}
	if item.Cliente != nil {
		resp.ClienteNombre = item.Cliente.Nombre
	}
	return resp
}

// ErrNotFound helper shared by handlers.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrProductoNoEncontrado) ||
		errors.Is(err, ErrClienteNoEncontrado) ||
		errors.Is(err, ErrItemNoEncontrado) ||
		errors.Is(err, gorm.ErrRecordNotFound)
}
