package service

import (
	"context"
	"strings"

	"github.com/victorjanco1992/despensa-app/internal/dto"
	"github.com/victorjanco1992/despensa-app/internal/model"
	"github.com/victorjanco1992/despensa-app/internal/repository"

	"github.com/google/uuid"
)

// ClienteService defines the business logic contract for customers.
type ClienteService interface {
	Crear(ctx context.Context, req dto.CrearClienteRequest) (*dto.ClienteResponse, error)
	Listar(ctx context.Context) ([]dto.ClienteResponse, error)
	Actualizar(ctx context.Context, id uuid.UUID, req dto.CrearClienteRequest) (*dto.ClienteResponse, error)
	// Eliminar cascades deletion of the customer's tab items.
	Eliminar(ctx context.Context, id uuid.UUID) error
}

type clienteService struct {
	repo repository.ClienteRepository
}

func NewClienteService(repo repository.ClienteRepository) ClienteService {
	return &clienteService{repo: repo}
}

func (s *clienteService) Crear(ctx context.Context, req dto.CrearClienteRequest) (*dto.ClienteResponse, error) {
	// Pre-check keeps the 400 message deterministic across drivers; the
	// unique index is still the hard guarantee.
	if _, err := s.repo.FindByDNI(ctx, req.DNI); err == nil {
		return nil, ErrDNIDuplicado
	}

	c := &model.Cliente{
		Nombre:    req.Nombre,
		DNI:       req.DNI,
		Domicilio: req.Domicilio,
		Telefono:  req.Telefono,
		Email:     req.Email,
	}
	if err := s.repo.Create(ctx, c); err != nil {
		if esViolacionUnica(err) {
			return nil, ErrDNIDuplicado
		}
		return nil, err
	}
	return clienteToResponse(c), nil
}

func (s *clienteService) Listar(ctx context.Context) ([]dto.ClienteResponse, error) {
	clientes, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ClienteResponse, 0, len(clientes))
	for i := range clientes {
		out = append(out, *clienteToResponse(&clientes[i]))
	}
	return out, nil
}

func (s *clienteService) Actualizar(ctx context.Context, id uuid.UUID, req dto.CrearClienteRequest) (*dto.ClienteResponse, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrClienteNoEncontrado
	}
	if existing, err := s.repo.FindByDNI(ctx, req.DNI); err == nil && existing.ID != id {
		return nil, ErrDNIDuplicado
	}
	c.Nombre = req.Nombre
	c.DNI = req.DNI
	c.Domicilio = req.Domicilio
	c.Telefono = req.Telefono
	c.Email = req.Email
	if err := s.repo.Update(ctx, c); err != nil {
		if esViolacionUnica(err) {
			return nil, ErrDNIDuplicado
		}
		return nil, err
	}
	return clienteToResponse(c), nil
}

func (s *clienteService) Eliminar(ctx context.Context, id uuid.UUID) error {
	affected, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrClienteNoEncontrado
	}
	return nil
}

// esViolacionUnica detects a duplicate-key error from either driver.
func esViolacionUnica(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique") || strings.Contains(msg, "duplicate key")
}

func clienteToResponse(c *model.Cliente) *dto.ClienteResponse {
	return &dto.ClienteResponse{
		ID:        c.ID.String(),
		Nombre:    c.Nombre,
		DNI:       c.DNI,
		Domicilio: c.Domicilio,
		Telefono:  c.Telefono,
		Email:     c.Email,
	}
}
