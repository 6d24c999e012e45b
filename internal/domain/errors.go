package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrUserNotFound = errors.New("usuario no encontrado")
	ErrEmailExists  = errors.New("el email ya está registrado")
	ErrInvalidInput = errors.New("entrada inválida")
	ErrUnauthorized = errors.New("no autorizado")
	ErrForbidden    = errors.New("acceso denegado")
)

// Errores del ciclo de sesión del cliente. El Session Manager los usa como
// taxonomía cerrada: toda falla de I/O se traduce a uno de estos antes de
// llegar al llamador.
var (
	// ErrAlmacenamiento fallo del almacén de credenciales en disco.
	// Se recupera localmente (se trata como ausencia de dato) y nunca
	// llega a la UI como mensaje propio.
	ErrAlmacenamiento = errors.New("almacén de credenciales no disponible")

	// ErrRedNoDisponible fallo de transporte alcanzando la API.
	ErrRedNoDisponible = errors.New("red no disponible")

	// ErrCredencialesInvalidas el servidor rechazó email/password.
	ErrCredencialesInvalidas = errors.New("credenciales inválidas")

	// ErrSesionInvalida un token persistido dejó de ser aceptado por el servidor.
	ErrSesionInvalida = errors.New("sesión inválida o expirada")
)
