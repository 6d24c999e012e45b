package restapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/jhoicas/invorya-movil/internal/application/dto"
	"github.com/jhoicas/invorya-movil/internal/application/ports"
	"github.com/jhoicas/invorya-movil/internal/domain"
	"github.com/jhoicas/invorya-movil/internal/domain/entity"
)

// Verificar en tiempo de compilación que Client implementa AuthAPI.
var _ ports.AuthAPI = (*Client)(nil)

// maxBodyBytes tope de lectura de respuestas; el contrato de auth es pequeño.
const maxBodyBytes = 64 * 1024

// Client adaptador del puerto AuthAPI sobre la API REST del backend Invorya.
// Usa net/http de la librería estándar de Go; no requiere SDK.
//
// Mapeo de fallos a la taxonomía de dominio:
//   - login 401/403            -> ErrCredencialesInvalidas
//   - profile no-2xx           -> ErrSesionInvalida
//   - transporte / timeout     -> ErrRedNoDisponible
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient construye el adaptador. baseURL sin slash final, ej.
// http://localhost:8080/api. timeout 0 usa 10 s.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Login implementa POST /auth/login.
func (c *Client) Login(ctx context.Context, email, password string) (string, *entity.Profile, error) {
	body, err := json.Marshal(dto.LoginRequest{Email: email, Password: password})
	if err != nil {
		return "", nil, fmt.Errorf("%w: serializar login: %v", domain.ErrRedNoDisponible, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/auth/login", bytes.NewReader(body))
	if err != nil {
		return "", nil, fmt.Errorf("%w: crear request: %v", domain.ErrRedNoDisponible, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", nil, fmt.Errorf("%w: %v", domain.ErrRedNoDisponible, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return "", nil, fmt.Errorf("%w: leer respuesta: %v", domain.ErrRedNoDisponible, err)
	}

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return "", nil, domain.ErrCredencialesInvalidas
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return "", nil, fmt.Errorf("%w: HTTP %d", domain.ErrRedNoDisponible, resp.StatusCode)
	}

	var out dto.LoginResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		return "", nil, fmt.Errorf("%w: respuesta malformada: %v", domain.ErrRedNoDisponible, err)
	}
	if out.Token == "" {
		return "", nil, fmt.Errorf("%w: respuesta sin token", domain.ErrRedNoDisponible)
	}
	return out.Token, toProfile(out.User), nil
}

// Profile implementa GET /users/profile con Authorization: Bearer.
// Cualquier rechazo del servidor se reporta como ErrSesionInvalida: para el
// bootstrap no hay diferencia accionable entre 401, 500 o un cuerpo ilegible.
func (c *Client) Profile(ctx context.Context, token string) (*entity.Profile, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/users/profile", nil)
	if err != nil {
		return nil, fmt.Errorf("%w: crear request: %v", domain.ErrSesionInvalida, err)
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrSesionInvalida, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("%w: leer respuesta: %v", domain.ErrSesionInvalida, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: HTTP %d", domain.ErrSesionInvalida, resp.StatusCode)
	}

	var out dto.UserResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("%w: respuesta malformada: %v", domain.ErrSesionInvalida, err)
	}
	if out.ID == "" {
		return nil, fmt.Errorf("%w: respuesta sin usuario", domain.ErrSesionInvalida)
	}
	return toProfile(out), nil
}

// toProfile valida el rol en el borde: lo que no pertenece al conjunto
// cerrado entra como RolDesconocido y no habilita menú alguno.
func toProfile(u dto.UserResponse) *entity.Profile {
	return &entity.Profile{
		ID:        u.ID,
		Nombre:    u.Name,
		Email:     u.Email,
		Rol:       entity.ParseRol(u.Rol),
		AlmacenID: u.AlmacenID,
	}
}
