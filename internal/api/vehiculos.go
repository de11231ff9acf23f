package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/autofix/consola-taller/internal/api/mapper"
	"github.com/autofix/consola-taller/internal/domain/entity"
)

// Módulo de recurso /vehiculos/.

// ListarVehiculos devuelve los vehículos; admite filtros como cliente=<id>.
func (c *Client) ListarVehiculos(ctx context.Context, filtros url.Values) ([]entity.Vehiculo, error) {
	return listar[entity.Vehiculo](ctx, c, "/vehiculos/", filtros)
}

// ObtenerVehiculo devuelve un vehículo por id.
func (c *Client) ObtenerVehiculo(ctx context.Context, id int64) (*entity.Vehiculo, error) {
	data, err := c.get(ctx, fmt.Sprintf("/vehiculos/%d/", id), nil)
	if err != nil {
		return nil, err
	}
	var v entity.Vehiculo
	if err := decodificar(data, &v); err != nil {
		return nil, err
	}
	return &v, nil
}

// CrearVehiculo crea un vehículo. Un 400 con `numero_placa` significa placa
// duplicada y llega ya como mensaje legible.
func (c *Client) CrearVehiculo(ctx context.Context, p mapper.VehiculoPayload) (*entity.Vehiculo, error) {
	data, err := c.enviar(ctx, http.MethodPost, "/vehiculos/", p)
	if err != nil {
		return nil, err
	}
	var v entity.Vehiculo
	if err := decodificar(data, &v); err != nil {
		return nil, err
	}
	return &v, nil
}

// ActualizarVehiculo reemplaza el vehículo (PUT).
func (c *Client) ActualizarVehiculo(ctx context.Context, id int64, p mapper.VehiculoPayload) (*entity.Vehiculo, error) {
	data, err := c.enviar(ctx, http.MethodPut, fmt.Sprintf("/vehiculos/%d/", id), p)
	if err != nil {
		return nil, err
	}
	var v entity.Vehiculo
	if err := decodificar(data, &v); err != nil {
		return nil, err
	}
	return &v, nil
}

// EliminarVehiculo borra el vehículo por id.
func (c *Client) EliminarVehiculo(ctx context.Context, id int64) error {
	_, err := c.enviar(ctx, http.MethodDelete, fmt.Sprintf("/vehiculos/%d/", id), nil)
	return err
}
