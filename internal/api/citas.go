package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/autofix/consola-taller/internal/api/mapper"
	"github.com/autofix/consola-taller/internal/domain/entity"
)

// Módulo de recurso /citas/. El backend valida los solapes; un rechazo
// llega como 400 con mensaje en fecha_hora_inicio/fin o non_field_errors.

// ListarCitas devuelve las citas; admite filtros como fecha_desde, empleado.
func (c *Client) ListarCitas(ctx context.Context, filtros url.Values) ([]entity.Cita, error) {
	return listar[entity.Cita](ctx, c, "/citas/", filtros)
}

// ObtenerCita devuelve una cita por id.
func (c *Client) ObtenerCita(ctx context.Context, id int64) (*entity.Cita, error) {
	data, err := c.get(ctx, fmt.Sprintf("/citas/%d/", id), nil)
	if err != nil {
		return nil, err
	}
	var ci entity.Cita
	if err := decodificar(data, &ci); err != nil {
		return nil, err
	}
	return &ci, nil
}

// CrearCita agenda una cita nueva.
func (c *Client) CrearCita(ctx context.Context, p mapper.CitaPayload) (*entity.Cita, error) {
	data, err := c.enviar(ctx, http.MethodPost, "/citas/", p)
	if err != nil {
		return nil, err
	}
	var ci entity.Cita
	if err := decodificar(data, &ci); err != nil {
		return nil, err
	}
	return &ci, nil
}

// ActualizarCita reemplaza la cita (PUT).
func (c *Client) ActualizarCita(ctx context.Context, id int64, p mapper.CitaPayload) (*entity.Cita, error) {
	data, err := c.enviar(ctx, http.MethodPut, fmt.Sprintf("/citas/%d/", id), p)
	if err != nil {
		return nil, err
	}
	var ci entity.Cita
	if err := decodificar(data, &ci); err != nil {
		return nil, err
	}
	return &ci, nil
}

// CambiarEstadoCita cambia solo el estado (PATCH).
func (c *Client) CambiarEstadoCita(ctx context.Context, id int64, estado string) (*entity.Cita, error) {
	body := map[string]string{"estado": estado}
	data, err := c.enviar(ctx, http.MethodPatch, fmt.Sprintf("/citas/%d/", id), body)
	if err != nil {
		return nil, err
	}
	var ci entity.Cita
	if err := decodificar(data, &ci); err != nil {
		return nil, err
	}
	return &ci, nil
}

// EliminarCita borra la cita por id.
func (c *Client) EliminarCita(ctx context.Context, id int64) error {
	_, err := c.enviar(ctx, http.MethodDelete, fmt.Sprintf("/citas/%d/", id), nil)
	return err
}
