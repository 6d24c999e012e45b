package ports

import (
	"context"

	"github.com/jhoicas/invorya-movil/internal/domain/entity"
)

// CredentialStore puerto del almacén de credenciales del dispositivo.
// Contrato: Get devuelve ("", nil) cuando la clave no existe; los fallos de
// lectura se reportan como error y el llamador decide (el Session Manager
// los trata como ausencia). Set y Remove son best-effort para el llamador.
type CredentialStore interface {
	Get(key string) (string, error)
	Set(key, value string) error
	Remove(key string) error
}

// AuthAPI puerto hacia la API de sesión del backend Invorya.
// Los errores devueltos pertenecen a la taxonomía de domain:
// ErrCredencialesInvalidas, ErrSesionInvalida o ErrRedNoDisponible (envueltos).
type AuthAPI interface {
	// Login intercambia email/password por un token bearer y el perfil del usuario.
	Login(ctx context.Context, email, password string) (token string, profile *entity.Profile, err error)

	// Profile recupera el perfil asociado a un token previamente emitido.
	Profile(ctx context.Context, token string) (*entity.Profile, error)
}
