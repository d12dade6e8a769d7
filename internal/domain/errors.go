package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrConflict           = errors.New("conflicto con el estado actual")
	ErrInsufficientStock  = errors.New("stock insuficiente")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")

	// Errores del ciclo de día (libro diario).
	ErrDayClosed        = errors.New("el día ya fue cerrado, no admite más ingresos")
	ErrDayAlreadyEnded  = errors.New("el día ya fue cerrado previamente")
	ErrPriorDayNotEnded = errors.New("el día anterior sigue abierto")
)
