package entity

import "time"

// Roles válidos para User. Conjunto cerrado: cualquier otro valor en tránsito
// se normaliza a RolDesconocido, que no habilita ninguna entrada de menú.
const (
	RolAdmin      = "admin"
	RolSupervisor = "supervisor"
	RolUsuario    = "usuario"

	// RolDesconocido rol fuera del conjunto cerrado; no coincide con ningún menú.
	RolDesconocido = ""
)

// ParseRol valida un rol recibido por la red contra el conjunto cerrado.
// Falla cerrado: lo no reconocido se degrada a RolDesconocido, nunca a acceso amplio.
func ParseRol(s string) string {
	switch s {
	case RolAdmin, RolSupervisor, RolUsuario:
		return s
	default:
		return RolDesconocido
	}
}

// User representa un usuario del sistema tal como lo persiste el backend.
type User struct {
	ID           string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Name         string
	Role         string  // admin, supervisor, usuario
	WarehouseID  *string // almacén asignado; nil = sin restricción
	Active       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
