package repository_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/victorjanco1992/despensa-app/internal/dto"
	"github.com/victorjanco1992/despensa-app/internal/infra"
	"github.com/victorjanco1992/despensa-app/internal/model"
	"github.com/victorjanco1992/despensa-app/internal/repository"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// newTestDB opens a throwaway SQLite database with the full schema.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := infra.NewDatabase(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	require.NoError(t, infra.Migrate(db))
	return db
}

func mustCreateProducto(t *testing.T, repo repository.ProductoRepository, nombre string, precio float64, esSuelto bool) *model.Producto {
	t.Helper()
	p := &model.Producto{
		Nombre:   nombre,
		Precio:   decimal.NewFromFloat(precio),
		Unidad:   model.UnidadUnidad,
		EsSuelto: esSuelto,
	}
	require.NoError(t, repo.Create(context.Background(), p))
	return p
}

func TestProductoRepo_ListExcluyeSueltosYOrdena(t *testing.T) {
	db := newTestDB(t)
	repo := repository.NewProductoRepository(db)

	mustCreateProducto(t, repo, "Yerba mate 1kg", 4500, false)
	mustCreateProducto(t, repo, "Aceite girasol 900ml", 2300, false)
	mustCreateProducto(t, repo, "Pan del día", 1000, true)

	productos, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, productos, 2)
	assert.Equal(t, "Aceite girasol 900ml", productos[0].Nombre)
	assert.Equal(t, "Yerba mate 1kg", productos[1].Nombre)
}

func TestClienteRepo_DeleteCascadaItems(t *testing.T) {
	db := newTestDB(t)
	clienteRepo := repository.NewClienteRepository(db)
	productoRepo := repository.NewProductoRepository(db)
	cuentaRepo := repository.NewCuentaRepository(db)

	p := mustCreateProducto(t, productoRepo, "Leche entera 1L", 1200, false)
	c := &model.Cliente{Nombre: "María González", DNI: "28456789"}
	require.NoError(t, clienteRepo.Create(context.Background(), c))

	item := &model.CuentaCorrienteItem{
		ClienteID:      c.ID,
		ProductoID:     p.ID,
		Cantidad:       decimal.NewFromInt(2),
		PrecioUnitario: p.Precio,
		Subtotal:       p.Precio.Mul(decimal.NewFromInt(2)).Round(2),
	}
	require.NoError(t, cuentaRepo.Create(context.Background(), item))

	affected, err := clienteRepo.Delete(context.Background(), c.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), affected)

	items, err := cuentaRepo.ListByCliente(context.Background(), c.ID)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestClienteRepo_DNIUnico(t *testing.T) {
	db := newTestDB(t)
	repo := repository.NewClienteRepository(db)

	require.NoError(t, repo.Create(context.Background(), &model.Cliente{Nombre: "María", DNI: "28456789"}))
	err := repo.Create(context.Background(), &model.Cliente{Nombre: "Otra María", DNI: "28456789"})
	assert.Error(t, err)
}

func TestCuentaRepo_UpdatePrecioTx(t *testing.T) {
	db := newTestDB(t)
	productoRepo := repository.NewProductoRepository(db)
	clienteRepo := repository.NewClienteRepository(db)
	cuentaRepo := repository.NewCuentaRepository(db)

	p := mustCreateProducto(t, productoRepo, "Leche entera 1L", 100, false)
	c := &model.Cliente{Nombre: "María González", DNI: "28456789"}
	require.NoError(t, clienteRepo.Create(context.Background(), c))

	item := &model.CuentaCorrienteItem{
		ClienteID:      c.ID,
		ProductoID:     p.ID,
		Cantidad:       decimal.NewFromInt(3),
		PrecioUnitario: decimal.NewFromInt(100),
		Subtotal:       decimal.NewFromInt(300),
	}
	require.NoError(t, cuentaRepo.Create(context.Background(), item))

	err := db.Transaction(func(tx *gorm.DB) error {
		return cuentaRepo.UpdatePrecioTx(tx, item.ID, decimal.NewFromInt(120), decimal.NewFromInt(360))
	})
	require.NoError(t, err)

	items, err := cuentaRepo.ListByCliente(context.Background(), c.ID)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "120", items[0].PrecioUnitario.String())
	assert.Equal(t, "360", items[0].Subtotal.String())
	require.NotNil(t, items[0].Producto)
	assert.Equal(t, "Leche entera 1L", items[0].Producto.Nombre)
}

func TestTransferenciaRepo_MPIDUnicoYExists(t *testing.T) {
	db := newTestDB(t)
	repo := repository.NewTransferenciaRepository(db)

	mpID := "123456"
	tr := &model.Transferencia{
		Nombre: "Juan Pérez",
		Monto:  decimal.NewFromFloat(1500.50),
		MPID:   &mpID,
		Fuente: model.FuenteTransferencia,
	}
	require.NoError(t, repo.Create(context.Background(), tr))

	existe, err := repo.ExistsByMPID(context.Background(), mpID)
	require.NoError(t, err)
	assert.True(t, existe)

	existe, err = repo.ExistsByMPID(context.Background(), "999999")
	require.NoError(t, err)
	assert.False(t, existe)

	// The unique index is the hard guarantee behind the sync de-dup.
	dup := &model.Transferencia{Nombre: "Juan Pérez", Monto: decimal.NewFromInt(1), MPID: &mpID}
	assert.Error(t, repo.Create(context.Background(), dup))
}

func TestTransferenciaRepo_ListBuscaYPagina(t *testing.T) {
	db := newTestDB(t)
	repo := repository.NewTransferenciaRepository(db)

	nombres := []string{"Juan Pérez", "Juana Molina", "Carlos Ruiz"}
	for i, nombre := range nombres {
		mpID := string(rune('a' + i))
		require.NoError(t, repo.Create(context.Background(), &model.Transferencia{
			Nombre: nombre,
			Monto:  decimal.NewFromInt(int64(100 * (i + 1))),
			MPID:   &mpID,
		}))
	}

	rows, total, err := repo.List(context.Background(), dto.TransferenciaFilter{Page: 1, Limit: 10, Search: "Juan"})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Len(t, rows, 2)

	// Search folds case regardless of driver.
	_, total, err = repo.List(context.Background(), dto.TransferenciaFilter{Page: 1, Limit: 10, Search: "jUaN"})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)

	_, total, err = repo.List(context.Background(), dto.TransferenciaFilter{Page: 1, Limit: 10, Search: "pérez"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)

	rows, total, err = repo.List(context.Background(), dto.TransferenciaFilter{Page: 2, Limit: 2})
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.Len(t, rows, 1)
}

func TestListaComprasRepo_PendienteYBulk(t *testing.T) {
	db := newTestDB(t)
	productoRepo := repository.NewProductoRepository(db)
	listaRepo := repository.NewListaComprasRepository(db)

	p := mustCreateProducto(t, productoRepo, "Arroz largo fino 1kg", 1550, false)

	item := &model.ListaComprasItem{
		ProductoID: &p.ID,
		Cantidad:   decimal.NewFromInt(2),
	}
	require.NoError(t, listaRepo.Create(context.Background(), item))

	pendiente, err := listaRepo.FindPendienteByProducto(context.Background(), p.ID)
	require.NoError(t, err)
	assert.Equal(t, item.ID, pendiente.ID)

	marcados, err := listaRepo.MarcarTodosComprados(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1), marcados)

	// A bought row no longer counts as pending.
	_, err = listaRepo.FindPendienteByProducto(context.Background(), p.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	eliminados, err := listaRepo.LimpiarComprados(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1), eliminados)
}
