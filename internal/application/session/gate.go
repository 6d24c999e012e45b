package session

// State estado de navegación derivado de la sesión. Decide qué superficie se
// renderiza: pantalla de carga, punto de entrada de login o shell principal.
type State int

const (
	StateCargando State = iota
	StateNoAutenticado
	StateAutenticado
)

// String para logs y tests.
func (s State) String() string {
	switch s {
	case StateCargando:
		return "cargando"
	case StateNoAutenticado:
		return "no_autenticado"
	case StateAutenticado:
		return "autenticado"
	default:
		return "desconocido"
	}
}

// StateOf mapea un snapshot de sesión a exactamente uno de los tres estados.
// Función pura; se evalúa en cada cambio de sesión, sin timers ni reloj.
func StateOf(snap Snapshot) State {
	switch {
	case snap.Loading:
		return StateCargando
	case snap.Profile == nil:
		return StateNoAutenticado
	default:
		return StateAutenticado
	}
}

// Gate máquina de estados de navegación. Además del estado vigente mantiene
// el historial de rutas del shell autenticado y lo descarta al salir de la
// sesión: un usuario deslogueado no puede volver "atrás" a pantallas
// autenticadas por historial cacheado.
//
// No es seguro para uso concurrente: se consume desde el bucle de render, que
// recibe los snapshots ya ordenados por el Manager.
type Gate struct {
	current State
	history []string
}

// NewGate construye el gate en estado Cargando, igual que la sesión recién creada.
func NewGate() *Gate {
	return &Gate{current: StateCargando}
}

// Current estado vigente.
func (g *Gate) Current() State {
	return g.current
}

// Apply consume un snapshot y devuelve el nuevo estado. Al entrar a
// NoAutenticado el historial se descarta. El estado Cargando no se re-entra:
// el Manager nunca vuelve a Loading tras resolver el bootstrap, y el gate
// ignora un snapshot que lo contradiga.
func (g *Gate) Apply(snap Snapshot) State {
	next := StateOf(snap)
	if next == StateCargando && g.current != StateCargando {
		return g.current
	}
	if next == StateNoAutenticado && g.current != StateNoAutenticado {
		g.history = nil
	}
	g.current = next
	return g.current
}

// Push registra una ruta visitada. Solo aplica en el shell autenticado.
func (g *Gate) Push(route string) {
	if g.current != StateAutenticado {
		return
	}
	g.history = append(g.history, route)
}

// Back desapila la última ruta visitada. Devuelve false si no hay historial.
func (g *Gate) Back() (string, bool) {
	if len(g.history) == 0 {
		return "", false
	}
	last := g.history[len(g.history)-1]
	g.history = g.history[:len(g.history)-1]
	return last, true
}

// History copia del historial vigente (para render de breadcrumbs).
func (g *Gate) History() []string {
	out := make([]string, len(g.history))
	copy(out, g.history)
	return out
}
