package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/autofix/consola-taller/internal/domain/entity"
)

// Módulo de recurso /users/: cuentas de acceso que el administrador vincula
// a clientes y empleados.

// UsuarioPayload cuerpo de POST/PUT de /users/. Password solo viaja cuando
// se establece o cambia.
type UsuarioPayload struct {
	Username string `json:"username"`
	Email    string `json:"email,omitempty"`
	Rol      string `json:"rol"`
	Activo   bool   `json:"activo"`
	Password string `json:"password,omitempty"`
}

// ListarUsuarios devuelve las cuentas de acceso.
func (c *Client) ListarUsuarios(ctx context.Context, filtros url.Values) ([]entity.Usuario, error) {
	return listar[entity.Usuario](ctx, c, "/users/", filtros)
}

// ObtenerUsuario devuelve una cuenta por id.
func (c *Client) ObtenerUsuario(ctx context.Context, id int64) (*entity.Usuario, error) {
	data, err := c.get(ctx, fmt.Sprintf("/users/%d/", id), nil)
	if err != nil {
		return nil, err
	}
	var u entity.Usuario
	if err := decodificar(data, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

// CrearUsuario registra una cuenta de acceso.
func (c *Client) CrearUsuario(ctx context.Context, p UsuarioPayload) (*entity.Usuario, error) {
	data, err := c.enviar(ctx, http.MethodPost, "/users/", p)
	if err != nil {
		return nil, err
	}
	var u entity.Usuario
	if err := decodificar(data, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

// ActualizarUsuario reemplaza la cuenta (PUT).
func (c *Client) ActualizarUsuario(ctx context.Context, id int64, p UsuarioPayload) (*entity.Usuario, error) {
	data, err := c.enviar(ctx, http.MethodPut, fmt.Sprintf("/users/%d/", id), p)
	if err != nil {
		return nil, err
	}
	var u entity.Usuario
	if err := decodificar(data, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

// EliminarUsuario borra la cuenta por id.
func (c *Client) EliminarUsuario(ctx context.Context, id int64) error {
	_, err := c.enviar(ctx, http.MethodDelete, fmt.Sprintf("/users/%d/", id), nil)
	return err
}
