package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrVendorNotFound     = errors.New("proveedor no encontrado")
	ErrBookingNotFound    = errors.New("reserva no encontrada")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrOutOfRange         = errors.New("índice fuera de rango")
	ErrPersistence        = errors.New("fallo de persistencia del snapshot")
)
