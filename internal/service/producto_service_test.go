package service_test

import (
	"context"
	"testing"

	"github.com/victorjanco1992/despensa-app/internal/dto"
	"github.com/victorjanco1992/despensa-app/internal/model"
	"github.com/victorjanco1992/despensa-app/internal/service"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCrearProducto(t *testing.T) {
	repo := newStubProductoRepo()
	svc := service.NewProductoService(repo)

	resp, err := svc.Crear(context.Background(), dto.CrearProductoRequest{
		Nombre: "Leche entera 1L",
		Precio: decimal.NewFromInt(1200),
		Unidad: model.UnidadUnidad,
	})
	require.NoError(t, err)
	assert.Equal(t, "Leche entera 1L", resp.Nombre)
	assert.Equal(t, "1200", resp.Precio.String())
	assert.Len(t, repo.productos, 1)
}

func TestListarProductos_ExcluyeSueltos(t *testing.T) {
	repo := newStubProductoRepo()
	svc := service.NewProductoService(repo)
	seedProducto(repo, "Leche entera 1L", 1200, model.UnidadUnidad)
	suelto := seedProducto(repo, "Pan del día", 1000, model.UnidadUnidad)
	suelto.EsSuelto = true

	productos, err := svc.Listar(context.Background())
	require.NoError(t, err)
	require.Len(t, productos, 1)
	assert.Equal(t, "Leche entera 1L", productos[0].Nombre)
}

func TestActualizarProducto_NoExiste(t *testing.T) {
	svc := service.NewProductoService(newStubProductoRepo())
	_, err := svc.Actualizar(context.Background(), uuid.New(), dto.ActualizarProductoRequest{
		Nombre: "Leche",
		Precio: decimal.NewFromInt(100),
		Unidad: model.UnidadUnidad,
	})
	assert.ErrorIs(t, err, service.ErrProductoNoEncontrado)
}

func TestEliminarProducto_NoExiste(t *testing.T) {
	svc := service.NewProductoService(newStubProductoRepo())
	err := svc.Eliminar(context.Background(), uuid.New())
	assert.ErrorIs(t, err, service.ErrProductoNoEncontrado)
}
