// Package api envuelve el backend REST de AutoFix: un archivo por recurso,
// un Client compartido que inyecta el token de sesión y normaliza errores y
// listados. Sin reintentos ni mutaciones optimistas: tras cada mutación el
// llamador vuelve a listar.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog"

	"github.com/autofix/consola-taller/internal/domain"
)

// Client es el punto de acceso al backend. Todos los módulos de recurso son
// métodos suyos.
type Client struct {
	baseURL string
	http    *http.Client
	sesion  SessionStore
	log     zerolog.Logger
}

// Options parámetros de construcción del cliente.
type Options struct {
	BaseURL string        // sin slash final, ej. http://localhost:8000/api
	Timeout time.Duration // 0 = 30s
	Session SessionStore
	Logger  *zerolog.Logger // opcional
}

// New construye el cliente del backend.
func New(opts Options) *Client {
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	log := zerolog.Nop()
	if opts.Logger != nil {
		log = *opts.Logger
	}
	return &Client{
		baseURL: opts.BaseURL,
		http:    &http.Client{Timeout: timeout},
		sesion:  opts.Session,
		log:     log,
	}
}

// do ejecuta la petición con las cabeceras del contrato y devuelve cuerpo y
// status. Un error aquí siempre significa "sin respuesta HTTP" (conexión).
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body any) ([]byte, int, error) {
	var rdr io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, 0, fmt.Errorf("serializar payload: %w", err)
		}
		rdr = bytes.NewReader(data)
	}

	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u, rdr)
	if err != nil {
		return nil, 0, fmt.Errorf("crear petición: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")
	// Evita que el backend conteste con un redirect HTML a /login cuando la
	// petición llega sin sesión.
	req.Header.Set("X-Requested-With", "XMLHttpRequest")
	if tok := c.sesion.Get(ClaveAccess); tok != "" {
		req.Header.Set("Authorization", "Bearer "+tok)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warn().Str("metodo", method).Str("ruta", path).Err(err).Msg("petición sin respuesta")
		return nil, 0, fmt.Errorf("%w: %v", domain.ErrSinConexion, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, 8<<20))
	if err != nil {
		return nil, 0, fmt.Errorf("%w: leer respuesta: %v", domain.ErrSinConexion, err)
	}
	c.log.Debug().Str("metodo", method).Str("ruta", path).Int("status", resp.StatusCode).Msg("respuesta del backend")
	return data, resp.StatusCode, nil
}

// get ejecuta un GET y mapea cualquier status >= 400 al error normalizado.
func (c *Client) get(ctx context.Context, path string, query url.Values) ([]byte, error) {
	data, status, err := c.do(ctx, http.MethodGet, path, query, nil)
	if err != nil {
		return nil, err
	}
	if status >= 400 {
		return nil, c.errorDesdeEstado(status, data)
	}
	return data, nil
}

// enviar ejecuta una mutación (POST/PUT/PATCH/DELETE) con el mismo mapeo.
func (c *Client) enviar(ctx context.Context, method, path string, body any) ([]byte, error) {
	data, status, err := c.do(ctx, method, path, nil, body)
	if err != nil {
		return nil, err
	}
	if status >= 400 {
		return nil, c.errorDesdeEstado(status, data)
	}
	return data, nil
}

// decodificar interpreta el cuerpo en out (si out no es nil y hay cuerpo).
func decodificar(data []byte, out any) error {
	if out == nil || len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("respuesta inesperada del servidor: %w", err)
	}
	return nil
}
