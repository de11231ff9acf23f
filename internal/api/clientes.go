package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/autofix/consola-taller/internal/api/mapper"
	"github.com/autofix/consola-taller/internal/domain/entity"
)

// Módulo de recurso /clientes/.

// ListarClientes devuelve los clientes; los filtros viajan tal cual como
// query params (ej. activo=true, search=...).
func (c *Client) ListarClientes(ctx context.Context, filtros url.Values) ([]entity.Cliente, error) {
	return listar[entity.Cliente](ctx, c, "/clientes/", filtros)
}

// ObtenerCliente devuelve un cliente por id.
func (c *Client) ObtenerCliente(ctx context.Context, id int64) (*entity.Cliente, error) {
	data, err := c.get(ctx, fmt.Sprintf("/clientes/%d/", id), nil)
	if err != nil {
		return nil, err
	}
	var cl entity.Cliente
	if err := decodificar(data, &cl); err != nil {
		return nil, err
	}
	return &cl, nil
}

// CrearCliente crea un cliente y devuelve la copia del servidor.
func (c *Client) CrearCliente(ctx context.Context, p mapper.ClientePayload) (*entity.Cliente, error) {
	data, err := c.enviar(ctx, http.MethodPost, "/clientes/", p)
	if err != nil {
		return nil, err
	}
	var cl entity.Cliente
	if err := decodificar(data, &cl); err != nil {
		return nil, err
	}
	return &cl, nil
}

// ActualizarCliente reemplaza el cliente (PUT).
func (c *Client) ActualizarCliente(ctx context.Context, id int64, p mapper.ClientePayload) (*entity.Cliente, error) {
	data, err := c.enviar(ctx, http.MethodPut, fmt.Sprintf("/clientes/%d/", id), p)
	if err != nil {
		return nil, err
	}
	var cl entity.Cliente
	if err := decodificar(data, &cl); err != nil {
		return nil, err
	}
	return &cl, nil
}

// EliminarCliente borra el cliente por id.
func (c *Client) EliminarCliente(ctx context.Context, id int64) error {
	_, err := c.enviar(ctx, http.MethodDelete, fmt.Sprintf("/clientes/%d/", id), nil)
	return err
}
