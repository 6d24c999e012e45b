package entity

// Profile es la vista del usuario autenticado que maneja el cliente móvil:
// el subconjunto del User que viaja por la API (sin hash ni timestamps).
// Presente en la sesión si y solo si hay token.
type Profile struct {
	ID        string
	Nombre    string
	Email     string
	Rol       string  // validado con ParseRol en el borde de la API
	AlmacenID *string // nil = sin almacén asignado
}
