package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/victorjanco1992/despensa-app/internal/dto"
	"github.com/victorjanco1992/despensa-app/internal/model"
	"github.com/victorjanco1992/despensa-app/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var errItemInvalido = errors.New("Debe indicar producto_id o nombre_temporal, no ambos")

// ListaComprasService owns the restock list and its merge rule.
type ListaComprasService interface {
	Listar(ctx context.Context) ([]dto.ListaItemResponse, error)
	// Agregar applies the merge rule: a catalog product with a pending row
	// increments it instead of duplicating; temporal items always insert.
	Agregar(ctx context.Context, req dto.AgregarListaItemRequest) (*dto.ListaItemResponse, error)
	Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarListaItemRequest) (*dto.ListaItemResponse, error)
	Toggle(ctx context.Context, id uuid.UUID) (*dto.ListaItemResponse, error)
	Eliminar(ctx context.Context, id uuid.UUID) error
	MarcarTodosComprados(ctx context.Context) (int64, error)
	LimpiarComprados(ctx context.Context) (int64, error)
}

type listaComprasService struct {
	repo         repository.ListaComprasRepository
	productoRepo repository.ProductoRepository
}

func NewListaComprasService(repo repository.ListaComprasRepository, productoRepo repository.ProductoRepository) ListaComprasService {
	return &listaComprasService{repo: repo, productoRepo: productoRepo}
}

func (s *listaComprasService) Listar(ctx context.Context) ([]dto.ListaItemResponse, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ListaItemResponse, 0, len(items))
	for i := range items {
		out = append(out, *listaItemToResponse(&items[i]))
	}
	return out, nil
}

func (s *listaComprasService) Agregar(ctx context.Context, req dto.AgregarListaItemRequest) (*dto.ListaItemResponse, error) {
	esTemporal := req.NombreTemporal != nil && *req.NombreTemporal != ""
	esCatalogo := req.ProductoID != nil && *req.ProductoID != ""
	if esTemporal == esCatalogo {
		return nil, errItemInvalido
	}

	if esTemporal {
		unidad := model.UnidadUnidad
		if req.UnidadTemporal != nil && *req.UnidadTemporal != "" {
			unidad = *req.UnidadTemporal
		}
		item := &model.ListaComprasItem{
			NombreTemporal:  req.NombreTemporal,
			UnidadTemporal:  &unidad,
			Cantidad:        req.Cantidad,
			PrecioMayorista: req.PrecioMayorista,
		}
		if err := s.repo.Create(ctx, item); err != nil {
			return nil, err
		}
		return listaItemToResponse(item), nil
	}

	productoID, err := uuid.Parse(*req.ProductoID)
	if err != nil {
		return nil, fmt.Errorf("producto_id inválido: %w", err)
	}
	producto, err := s.productoRepo.FindByID(ctx, productoID)
	if err != nil {
		return nil, ErrProductoNoEncontrado
	}

	// Merge rule. Known accepted race: two concurrent adds can both miss
	// the pending row and insert twice; the shop has one operator.
	existente, err := s.repo.FindPendienteByProducto(ctx, productoID)
	if err == nil {
		existente.Cantidad = existente.Cantidad.Add(req.Cantidad)
		if req.PrecioMayorista.IsPositive() {
			existente.PrecioMayorista = req.PrecioMayorista
		}
		if err := s.repo.Update(ctx, existente); err != nil {
			return nil, err
		}
		existente.Producto = producto
		return listaItemToResponse(existente), nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	item := &model.ListaComprasItem{
		ProductoID:      &productoID,
		Cantidad:        req.Cantidad,
		PrecioMayorista: req.PrecioMayorista,
	}
	if err := s.repo.Create(ctx, item); err != nil {
		return nil, err
	}
	item.Producto = producto
	return listaItemToResponse(item), nil
}

func (s *listaComprasService) Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarListaItemRequest) (*dto.ListaItemResponse, error) {
	item, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrItemNoEncontrado
	}
	item.Cantidad = req.Cantidad
	item.PrecioMayorista = req.PrecioMayorista
	if err := s.repo.Update(ctx, item); err != nil {
		return nil, err
	}
	return listaItemToResponse(item), nil
}

func (s *listaComprasService) Toggle(ctx context.Context, id uuid.UUID) (*dto.ListaItemResponse, error) {
	item, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrItemNoEncontrado
	}
	item.Comprado = !item.Comprado
	if item.Comprado {
		now := time.Now()
		item.FechaComprado = &now
	} else {
		item.FechaComprado = nil
	}
	if err := s.repo.Update(ctx, item); err != nil {
		return nil, err
	}
	return listaItemToResponse(item), nil
}

func (s *listaComprasService) Eliminar(ctx context.Context, id uuid.UUID) error {
	affected, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrItemNoEncontrado
	}
	return nil
}

func (s *listaComprasService) MarcarTodosComprados(ctx context.Context) (int64, error) {
	return s.repo.MarcarTodosComprados(ctx)
}

func (s *listaComprasService) LimpiarComprados(ctx context.Context) (int64, error) {
	return s.repo.LimpiarComprados(ctx)
}

func listaItemToResponse(item *model.ListaComprasItem) *dto.ListaItemResponse {
	resp := &dto.ListaItemResponse{
		ID:              item.ID.String(),
		EsTemporal:      item.EsTemporal(),
		Cantidad:        item.Cantidad,
		PrecioMayorista: item.PrecioMayorista,
		Comprado:        item.Comprado,
		FechaAgregado:   item.FechaAgregado.Format("2006-01-02T15:04:05Z"),
	}
	if item.FechaComprado != nil {
		f := item.FechaComprado.Format("2006-01-02T15:04:05Z")
		resp.FechaComprado = &f
	}
	if item.EsTemporal() {
		if item.NombreTemporal != nil {
			resp.Nombre = *item.NombreTemporal
		}
		if item.UnidadTemporal != nil {
			resp.Unidad = *item.UnidadTemporal
		}
	} else {
		pid := item.ProductoID.String()
		resp.ProductoID = &pid
		if item.Producto != nil {
			resp.Nombre = item.Producto.Nombre
			resp.Unidad = item.Producto.Unidad
		}
	}
	return resp
}
