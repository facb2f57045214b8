package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidCredentials = errors.New("credenciales inválidas")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrConflict           = errors.New("conflicto con el estado actual")
	ErrInsufficientStock  = errors.New("stock insuficiente")

	// ErrMissingTarget lo devuelve el motor de autorización cuando la petición
	// no trae el recurso objetivo (orgId/storeIds vacíos). Un conjunto vacío
	// nunca se trata como autorizado por vacuidad.
	ErrMissingTarget = errors.New("recurso objetivo requerido")

	// ErrSystemRole protege los roles de sistema contra borrado.
	ErrSystemRole = errors.New("los roles de sistema no se pueden eliminar")
)
