package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/autofix/consola-taller/internal/api/mapper"
	"github.com/autofix/consola-taller/internal/domain/entity"
)

// Módulo de recurso /empleados/.

// ListarEmpleados devuelve los empleados; admite filtros como area=<id>.
func (c *Client) ListarEmpleados(ctx context.Context, filtros url.Values) ([]entity.Empleado, error) {
	return listar[entity.Empleado](ctx, c, "/empleados/", filtros)
}

// ObtenerEmpleado devuelve un empleado por id.
func (c *Client) ObtenerEmpleado(ctx context.Context, id int64) (*entity.Empleado, error) {
	data, err := c.get(ctx, fmt.Sprintf("/empleados/%d/", id), nil)
	if err != nil {
		return nil, err
	}
	var e entity.Empleado
	if err := decodificar(data, &e); err != nil {
		return nil, err
	}
	return &e, nil
}

// CrearEmpleado registra un empleado.
func (c *Client) CrearEmpleado(ctx context.Context, p mapper.EmpleadoPayload) (*entity.Empleado, error) {
	data, err := c.enviar(ctx, http.MethodPost, "/empleados/", p)
	if err != nil {
		return nil, err
	}
	var e entity.Empleado
	if err := decodificar(data, &e); err != nil {
		return nil, err
	}
	return &e, nil
}

// ActualizarEmpleado reemplaza el empleado (PUT).
func (c *Client) ActualizarEmpleado(ctx context.Context, id int64, p mapper.EmpleadoPayload) (*entity.Empleado, error) {
	data, err := c.enviar(ctx, http.MethodPut, fmt.Sprintf("/empleados/%d/", id), p)
	if err != nil {
		return nil, err
	}
	var e entity.Empleado
	if err := decodificar(data, &e); err != nil {
		return nil, err
	}
	return &e, nil
}

// EliminarEmpleado borra el empleado por id.
func (c *Client) EliminarEmpleado(ctx context.Context, id int64) error {
	_, err := c.enviar(ctx, http.MethodDelete, fmt.Sprintf("/empleados/%d/", id), nil)
	return err
}
