package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/autofix/consola-taller/internal/domain/entity"
)

// Módulo de recurso /ordenes/ (órdenes de trabajo). Solo lectura y cambio de
// estado desde la consola; la creación nace de un presupuesto aprobado en el
// backend.

// ListarOrdenes devuelve las órdenes; admite filtros como estado=ABIERTA.
func (c *Client) ListarOrdenes(ctx context.Context, filtros url.Values) ([]entity.Orden, error) {
	return listar[entity.Orden](ctx, c, "/ordenes/", filtros)
}

// ObtenerOrden devuelve una orden con sus líneas.
func (c *Client) ObtenerOrden(ctx context.Context, id int64) (*entity.Orden, error) {
	data, err := c.get(ctx, fmt.Sprintf("/ordenes/%d/", id), nil)
	if err != nil {
		return nil, err
	}
	var o entity.Orden
	if err := decodificar(data, &o); err != nil {
		return nil, err
	}
	return &o, nil
}

// CambiarEstadoOrden cambia solo el estado (PATCH).
func (c *Client) CambiarEstadoOrden(ctx context.Context, id int64, estado string) (*entity.Orden, error) {
	data, err := c.enviar(ctx, http.MethodPatch, fmt.Sprintf("/ordenes/%d/", id), map[string]string{"estado": estado})
	if err != nil {
		return nil, err
	}
	var o entity.Orden
	if err := decodificar(data, &o); err != nil {
		return nil, err
	}
	return &o, nil
}

// EliminarOrden borra la orden por id.
func (c *Client) EliminarOrden(ctx context.Context, id int64) error {
	_, err := c.enviar(ctx, http.MethodDelete, fmt.Sprintf("/ordenes/%d/", id), nil)
	return err
}
