package service_test

import (
	"context"
	"errors"

	"github.com/victorjanco1992/despensa-app/internal/model"
	"github.com/victorjanco1992/despensa-app/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ── Stubs ─────────────────────────────────────────────────────────────────────

// stubProductoRepo is an in-memory ProductoRepository.
type stubProductoRepo struct {
	productos map[uuid.UUID]*model.Producto
	failTx    bool
}

func newStubProductoRepo() *stubProductoRepo {
	return &stubProductoRepo{productos: make(map[uuid.UUID]*model.Producto)}
}

func (r *stubProductoRepo) Create(_ context.Context, p *model.Producto) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	r.productos[p.ID] = p
	return nil
}

func (r *stubProductoRepo) CreateTx(_ *gorm.DB, p *model.Producto) error {
	if r.failTx {
		return errors.New("insert failed")
	}
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	r.productos[p.ID] = p
	return nil
}

func (r *stubProductoRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Producto, error) {
	p, ok := r.productos[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return p, nil
}

func (r *stubProductoRepo) List(_ context.Context) ([]model.Producto, error) {
	var out []model.Producto
	for _, p := range r.productos {
		if !p.EsSuelto {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *stubProductoRepo) Update(_ context.Context, p *model.Producto) error {
	if _, ok := r.productos[p.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	r.productos[p.ID] = p
	return nil
}

func (r *stubProductoRepo) Delete(_ context.Context, id uuid.UUID) (int64, error) {
	if _, ok := r.productos[id]; !ok {
		return 0, nil
	}
	delete(r.productos, id)
	return 1, nil
}

func (r *stubProductoRepo) DB() *gorm.DB { return nil }

var _ repository.ProductoRepository = (*stubProductoRepo)(nil)

func seedProducto(r *stubProductoRepo, nombre string, precio float64, unidad string) *model.Producto {
	p := &model.Producto{
		ID:     uuid.New(),
		Nombre: nombre,
		Precio: decimal.NewFromFloat(precio),
		Unidad: unidad,
	}
	r.productos[p.ID] = p
	return p
}

// stubClienteRepo is an in-memory ClienteRepository.
type stubClienteRepo struct {
	clientes map[uuid.UUID]*model.Cliente
}

func newStubClienteRepo() *stubClienteRepo {
	return &stubClienteRepo{clientes: make(map[uuid.UUID]*model.Cliente)}
}

func (r *stubClienteRepo) Create(_ context.Context, c *model.Cliente) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	for _, e := range r.clientes {
		if e.DNI == c.DNI {
			return errors.New("UNIQUE constraint failed: clientes.dni")
		}
	}
	r.clientes[c.ID] = c
	return nil
}

func (r *stubClienteRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Cliente, error) {
	c, ok := r.clientes[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return c, nil
}

func (r *stubClienteRepo) FindByDNI(_ context.Context, dni string) (*model.Cliente, error) {
	for _, c := range r.clientes {
		if c.DNI == dni {
			return c, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubClienteRepo) List(_ context.Context) ([]model.Cliente, error) {
	var out []model.Cliente
	for _, c := range r.clientes {
		out = append(out, *c)
	}
	return out, nil
}

func (r *stubClienteRepo) Update(_ context.Context, c *model.Cliente) error {
	if _, ok := r.clientes[c.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	r.clientes[c.ID] = c
	return nil
}

func (r *stubClienteRepo) Delete(_ context.Context, id uuid.UUID) (int64, error) {
	if _, ok := r.clientes[id]; !ok {
		return 0, nil
	}
	delete(r.clientes, id)
	return 1, nil
}

func (r *stubClienteRepo) DB() *gorm.DB { return nil }

var _ repository.ClienteRepository = (*stubClienteRepo)(nil)

func seedCliente(r *stubClienteRepo, nombre, dni string) *model.Cliente {
	c := &model.Cliente{ID: uuid.New(), Nombre: nombre, DNI: dni}
	r.clientes[c.ID] = c
	return c
}

// stubCuentaRepo is an in-memory CuentaRepository. ListByCliente attaches the
// live Producto the way the GORM Preload does.
type stubCuentaRepo struct {
	items     map[uuid.UUID]*model.CuentaCorrienteItem
	productos *stubProductoRepo
	failTx    bool
}

func newStubCuentaRepo(productos *stubProductoRepo) *stubCuentaRepo {
	return &stubCuentaRepo{
		items:     make(map[uuid.UUID]*model.CuentaCorrienteItem),
		productos: productos,
	}
}

func (r *stubCuentaRepo) Create(_ context.Context, item *model.CuentaCorrienteItem) error {
	if item.ID == uuid.Nil {
		item.ID = uuid.New()
	}
	r.items[item.ID] = item
	return nil
}

func (r *stubCuentaRepo) CreateTx(_ *gorm.DB, item *model.CuentaCorrienteItem) error {
	if r.failTx {
		return errors.New("insert failed")
	}
	if item.ID == uuid.Nil {
		item.ID = uuid.New()
	}
	r.items[item.ID] = item
	return nil
}

func (r *stubCuentaRepo) ListByCliente(_ context.Context, clienteID uuid.UUID) ([]model.CuentaCorrienteItem, error) {
	var out []model.CuentaCorrienteItem
	for _, item := range r.items {
		if item.ClienteID != clienteID {
			continue
		}
		copia := *item
		if p, ok := r.productos.productos[item.ProductoID]; ok {
			copia.Producto = p
		}
		out = append(out, copia)
	}
	return out, nil
}

func (r *stubCuentaRepo) UpdatePrecioTx(_ *gorm.DB, id uuid.UUID, precio, subtotal decimal.Decimal) error {
	item, ok := r.items[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	item.PrecioUnitario = precio
	item.Subtotal = subtotal
	return nil
}

func (r *stubCuentaRepo) DeleteByCliente(_ context.Context, clienteID uuid.UUID) (int64, error) {
	var n int64
	for id, item := range r.items {
		if item.ClienteID == clienteID {
			delete(r.items, id)
			n++
		}
	}
	return n, nil
}

func (r *stubCuentaRepo) DeleteByID(_ context.Context, id uuid.UUID) (int64, error) {
	if _, ok := r.items[id]; !ok {
		return 0, nil
	}
	delete(r.items, id)
	return 1, nil
}

func (r *stubCuentaRepo) DB() *gorm.DB { return nil }

var _ repository.CuentaRepository = (*stubCuentaRepo)(nil)

// stubListaRepo is an in-memory ListaComprasRepository.
type stubListaRepo struct {
	items map[uuid.UUID]*model.ListaComprasItem
}

func newStubListaRepo() *stubListaRepo {
	return &stubListaRepo{items: make(map[uuid.UUID]*model.ListaComprasItem)}
}

func (r *stubListaRepo) Create(_ context.Context, item *model.ListaComprasItem) error {
	if item.ID == uuid.Nil {
		item.ID = uuid.New()
	}
	r.items[item.ID] = item
	return nil
}

func (r *stubListaRepo) FindByID(_ context.Context, id uuid.UUID) (*model.ListaComprasItem, error) {
	item, ok := r.items[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return item, nil
}

func (r *stubListaRepo) FindPendienteByProducto(_ context.Context, productoID uuid.UUID) (*model.ListaComprasItem, error) {
	for _, item := range r.items {
		if item.ProductoID != nil && *item.ProductoID == productoID && !item.Comprado {
			return item, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubListaRepo) List(_ context.Context) ([]model.ListaComprasItem, error) {
	var out []model.ListaComprasItem
	for _, item := range r.items {
		out = append(out, *item)
	}
	return out, nil
}

func (r *stubListaRepo) Update(_ context.Context, item *model.ListaComprasItem) error {
	if _, ok := r.items[item.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	r.items[item.ID] = item
	return nil
}

func (r *stubListaRepo) Delete(_ context.Context, id uuid.UUID) (int64, error) {
	if _, ok := r.items[id]; !ok {
		return 0, nil
	}
	delete(r.items, id)
	return 1, nil
}

func (r *stubListaRepo) MarcarTodosComprados(_ context.Context) (int64, error) {
	var n int64
	for _, item := range r.items {
		if !item.Comprado {
			item.Comprado = true
			n++
		}
	}
	return n, nil
}

func (r *stubListaRepo) LimpiarComprados(_ context.Context) (int64, error) {
	var n int64
	for id, item := range r.items {
		if item.Comprado {
			delete(r.items, id)
			n++
		}
	}
	return n, nil
}

var _ repository.ListaComprasRepository = (*stubListaRepo)(nil)
