package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound     = errors.New("producto no encontrado")
	ErrInvalidInput = errors.New("entrada inválida")
	ErrAccessor     = errors.New("fallo del accesor del registro")
	ErrDuplicate    = errors.New("identificador duplicado")
)
