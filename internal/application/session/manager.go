package session

import (
	"context"
	"sync"
	"time"

	"github.com/jhoicas/invorya-movil/internal/application/ports"
	"github.com/jhoicas/invorya-movil/internal/domain/entity"
	"github.com/jhoicas/invorya-movil/pkg/logger"
)

// credentialKey clave única bajo la que se persiste el token bearer.
const credentialKey = "token"

// defaultBootstrapTimeout tope del fetch de perfil durante el bootstrap si no
// se configura otro. Sin tope, un backend colgado dejaría la app en Cargando
// para siempre.
const defaultBootstrapTimeout = 15 * time.Second

// Snapshot estado observable de la sesión en un instante.
// Invariante: Profile y Token son ambos vacíos o ambos presentes.
// Mientras Loading es true, Profile y Token son indeterminados para el consumidor.
type Snapshot struct {
	Profile *entity.Profile
	Token   string
	Loading bool
}

// Authenticated indica si el snapshot corresponde a una sesión activa resuelta.
func (s Snapshot) Authenticated() bool {
	return !s.Loading && s.Profile != nil
}

// Config opciones del Session Manager.
type Config struct {
	BootstrapTimeout time.Duration // 0 = defaultBootstrapTimeout
}

// Manager único escritor del estado de sesión: bootstrap al arranque, login y
// logout. Los consumidores observan vía Snapshot() o Subscribe(); nadie muta
// la sesión directamente.
//
// Las operaciones mutantes se serializan con un contador de generación: cada
// una captura la generación al inicio y solo aplica su resultado si nadie más
// escribió mientras su I/O estaba en vuelo. Un login obsoleto que completa
// después de un logout se descarta en lugar de resucitar la sesión.
type Manager struct {
	store ports.CredentialStore
	api   ports.AuthAPI
	log   *logger.Logger
	cfg   Config

	mu      sync.Mutex
	profile *entity.Profile
	token   string
	loading bool
	gen     uint64
	booted  bool
	subs    []chan Snapshot
}

// NewManager construye el Session Manager en estado inicial:
// sin usuario, sin token, Loading=true hasta que Bootstrap resuelva.
func NewManager(store ports.CredentialStore, api ports.AuthAPI, log *logger.Logger, cfg Config) *Manager {
	if cfg.BootstrapTimeout <= 0 {
		cfg.BootstrapTimeout = defaultBootstrapTimeout
	}
	if log == nil {
		log = logger.Nop()
	}
	return &Manager{
		store:   store,
		api:     api,
		log:     log,
		cfg:     cfg,
		loading: true,
	}
}

// Snapshot devuelve el estado actual de la sesión.
func (m *Manager) Snapshot() Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.snapshotLocked()
}

// Subscribe registra un observador. El canal entrega siempre el último estado
// aplicado (capacidad 1, el estado más reciente reemplaza al pendiente); las
// actualizaciones nunca llegan desordenadas. El estado vigente se entrega de
// inmediato para que el observador pueda renderizar sin esperar una transición.
func (m *Manager) Subscribe() <-chan Snapshot {
	ch := make(chan Snapshot, 1)
	m.mu.Lock()
	defer m.mu.Unlock()
	m.subs = append(m.subs, ch)
	ch <- m.snapshotLocked()
	return ch
}

// Bootstrap restaura la sesión persistida. Se ejecuta una sola vez por
// proceso: llamadas posteriores son no-op. Siempre resuelve Loading=false,
// incluso ante fallos de almacenamiento o de red.
func (m *Manager) Bootstrap(ctx context.Context) {
	m.mu.Lock()
	if m.booted {
		m.mu.Unlock()
		return
	}
	m.booted = true
	startGen := m.gen
	m.mu.Unlock()

	stored, err := m.store.Get(credentialKey)
	if err != nil {
		// Fallo de lectura == ausencia de token: nunca se muestra al usuario.
		m.log.Warn().Err(err).Msg("almacén de credenciales ilegible, se asume sin sesión")
		stored = ""
	}
	if stored == "" {
		m.apply(startGen, nil, "", false)
		return
	}

	ctx, cancel := context.WithTimeout(ctx, m.cfg.BootstrapTimeout)
	defer cancel()

	profile, err := m.api.Profile(ctx, stored)
	if err != nil {
		// Token obsoleto: se purga para no repetir el mismo round trip
		// fallido en cada arranque futuro.
		if rmErr := m.store.Remove(credentialKey); rmErr != nil {
			m.log.Warn().Err(rmErr).Msg("no se pudo purgar el token obsoleto")
		}
		m.log.Info().Err(err).Msg("restauración de sesión rechazada")
		m.apply(startGen, nil, "", false)
		return
	}

	m.log.Info().Str("user_id", profile.ID).Str("rol", profile.Rol).Msg("sesión restaurada")
	m.apply(startGen, profile, stored, false)
}

// Login autentica contra la API y, en éxito, persiste el token y publica la
// sesión. En fallo no muta estado y devuelve ErrCredencialesInvalidas o
// ErrRedNoDisponible (envuelto) para que la UI muestre el mensaje adecuado.
func (m *Manager) Login(ctx context.Context, email, password string) error {
	m.mu.Lock()
	startGen := m.gen
	m.mu.Unlock()

	token, profile, err := m.api.Login(ctx, email, password)
	if err != nil {
		return err
	}

	// Persistir primero; si el disco falla la sesión vive solo en memoria
	// hasta el próximo arranque, lo cual se registra pero no aborta el login.
	if err := m.store.Set(credentialKey, token); err != nil {
		m.log.Warn().Err(err).Msg("no se pudo persistir el token; la sesión no sobrevivirá un reinicio")
	}

	if !m.apply(startGen, profile, token, false) {
		// Otra escritura ganó mientras el login estaba en vuelo: el
		// resultado se descarta y el almacén se reconcilia con el estado
		// que quedó vigente. Si ganó un logout no debe quedar credencial
		// colgante en disco; si ganó un login más nuevo, su token debe
		// seguir persistido aunque el Set obsoleto de arriba lo haya pisado.
		m.mu.Lock()
		vigente := m.token
		m.mu.Unlock()
		if vigente == "" {
			_ = m.store.Remove(credentialKey)
		} else if vigente != token {
			_ = m.store.Set(credentialKey, vigente)
		}
		m.log.Debug().Msg("login obsoleto descartado")
		return nil
	}

	m.log.Info().Str("user_id", profile.ID).Str("rol", profile.Rol).Msg("login correcto")
	return nil
}

// Logout limpia la sesión en memoria de forma síncrona y retira el token
// persistido best-effort: un error de disco jamás deja al usuario "atrapado"
// autenticado. Idempotente: sobre una sesión ya cerrada es un no-op exitoso.
func (m *Manager) Logout(ctx context.Context) error {
	m.mu.Lock()
	// Invalida cualquier operación en vuelo aunque no haya nada que limpiar:
	// un login lanzado antes de este logout no debe aplicar su resultado.
	m.gen++
	changed := m.profile != nil || m.token != "" || m.loading
	m.profile = nil
	m.token = ""
	// Un logout durante el bootstrap resuelve también la ventana de carga:
	// el resultado tardío del bootstrap se descartará por generación y
	// ninguna operación vuelve a poner loading en true.
	m.loading = false
	if changed {
		m.notifyLocked()
	}
	m.mu.Unlock()

	if err := m.store.Remove(credentialKey); err != nil {
		m.log.Warn().Err(err).Msg("no se pudo retirar el token persistido")
	}
	if changed {
		m.log.Info().Msg("sesión cerrada")
	}
	return nil
}

// apply publica un resultado si ninguna otra escritura ocurrió desde startGen.
// Devuelve false si el resultado fue descartado por obsoleto. La transición
// (perfil, token y loading juntos) es atómica para los suscriptores.
func (m *Manager) apply(startGen uint64, profile *entity.Profile, token string, loading bool) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.gen != startGen {
		return false
	}
	m.gen++
	m.profile = profile
	m.token = token
	m.loading = loading
	m.notifyLocked()
	return true
}

func (m *Manager) snapshotLocked() Snapshot {
	return Snapshot{Profile: m.profile, Token: m.token, Loading: m.loading}
}

// notifyLocked entrega el estado vigente a cada suscriptor sin bloquear:
// si el canal aún tiene un estado pendiente, se reemplaza por el más reciente.
func (m *Manager) notifyLocked() {
	snap := m.snapshotLocked()
	for _, ch := range m.subs {
		select {
		case ch <- snap:
		default:
			select {
			case <-ch:
			default:
			}
			select {
			case ch <- snap:
			default:
			}
		}
	}
}
