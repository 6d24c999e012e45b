package menu

import "github.com/jhoicas/invorya-movil/internal/domain/entity"

// Entrada entrada estática del catálogo de menú. Se define una vez en build
// time y no se muta en runtime.
type Entrada struct {
	Nombre string
	Icono  string
	Ruta   string
	Roles  []string // roles que pueden ver la entrada
}

// PermiteRol indica si la entrada es visible para el rol dado.
func (e Entrada) PermiteRol(rol string) bool {
	for _, r := range e.Roles {
		if r == rol {
			return true
		}
	}
	return false
}

// catalogo pantallas de la app móvil en el orden en que se muestran.
var catalogo = []Entrada{
	{Nombre: "Inicio", Icono: "home", Ruta: "/inicio", Roles: []string{entity.RolAdmin, entity.RolSupervisor, entity.RolUsuario}},
	{Nombre: "Productos", Icono: "package-variant", Ruta: "/productos", Roles: []string{entity.RolAdmin, entity.RolSupervisor}},
	{Nombre: "Platos", Icono: "silverware-fork-knife", Ruta: "/platos", Roles: []string{entity.RolAdmin, entity.RolSupervisor}},
	{Nombre: "Almacenes", Icono: "warehouse", Ruta: "/almacenes", Roles: []string{entity.RolAdmin}},
	{Nombre: "Proveedores", Icono: "truck-delivery", Ruta: "/proveedores", Roles: []string{entity.RolAdmin, entity.RolSupervisor}},
	{Nombre: "Usuarios", Icono: "account-group", Ruta: "/usuarios", Roles: []string{entity.RolAdmin}},
	{Nombre: "Entradas", Icono: "arrow-down-bold-box", Ruta: "/entradas", Roles: []string{entity.RolAdmin, entity.RolSupervisor, entity.RolUsuario}},
	{Nombre: "Salidas", Icono: "arrow-up-bold-box", Ruta: "/salidas", Roles: []string{entity.RolAdmin, entity.RolSupervisor, entity.RolUsuario}},
	{Nombre: "Reportes", Icono: "chart-bar", Ruta: "/reportes", Roles: []string{entity.RolAdmin, entity.RolSupervisor}},
}

// Catalogo devuelve una copia del catálogo completo, en orden de presentación.
func Catalogo() []Entrada {
	out := make([]Entrada, len(catalogo))
	copy(out, catalogo)
	return out
}

// Visibles filtra el catálogo a las entradas visibles para el rol, preservando
// el orden relativo original. Falla cerrado: un rol vacío o fuera del conjunto
// conocido no habilita ninguna entrada (nunca se degrada a mostrar todo).
// Pura y sin estado: misma entrada, misma salida.
func Visibles(rol string, cat []Entrada) []Entrada {
	rol = entity.ParseRol(rol)
	if rol == entity.RolDesconocido {
		return nil
	}
	var out []Entrada
	for _, e := range cat {
		if e.PermiteRol(rol) {
			out = append(out, e)
		}
	}
	return out
}
