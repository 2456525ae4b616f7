package service

import "errors"

// Sentinel errors the handlers translate into HTTP statuses.
var (
	ErrProductoNoEncontrado = errors.New("Producto no encontrado")
	ErrClienteNoEncontrado  = errors.New("Cliente no encontrado")
	ErrItemNoEncontrado     = errors.New("Item no encontrado")
	ErrDNIDuplicado         = errors.New("El DNI ya existe")
	ErrTokenNoConfigurado   = errors.New("Token de Mercado Pago no configurado")
	ErrSyncEnCurso          = errors.New("Ya hay una sincronización en curso")
)
