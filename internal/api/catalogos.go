package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/autofix/consola-taller/internal/domain/entity"
)

// Tablas de referencia: /areas/, /cargos/, /marcas/, /modelos/.

// AreaPayload cuerpo de POST/PUT de /areas/.
type AreaPayload struct {
	Nombre      string `json:"nombre"`
	Descripcion string `json:"descripcion,omitempty"`
}

// ListarAreas devuelve las áreas del taller.
func (c *Client) ListarAreas(ctx context.Context) ([]entity.Area, error) {
	return listar[entity.Area](ctx, c, "/areas/", nil)
}

// CrearArea registra un área.
func (c *Client) CrearArea(ctx context.Context, p AreaPayload) (*entity.Area, error) {
	data, err := c.enviar(ctx, http.MethodPost, "/areas/", p)
	if err != nil {
		return nil, err
	}
	var a entity.Area
	if err := decodificar(data, &a); err != nil {
		return nil, err
	}
	return &a, nil
}

// ActualizarArea reemplaza el área (PUT).
func (c *Client) ActualizarArea(ctx context.Context, id int64, p AreaPayload) (*entity.Area, error) {
	data, err := c.enviar(ctx, http.MethodPut, fmt.Sprintf("/areas/%d/", id), p)
	if err != nil {
		return nil, err
	}
	var a entity.Area
	if err := decodificar(data, &a); err != nil {
		return nil, err
	}
	return &a, nil
}

// EliminarArea borra el área por id.
func (c *Client) EliminarArea(ctx context.Context, id int64) error {
	_, err := c.enviar(ctx, http.MethodDelete, fmt.Sprintf("/areas/%d/", id), nil)
	return err
}

// ListarCargos devuelve los cargos laborales.
func (c *Client) ListarCargos(ctx context.Context) ([]entity.Cargo, error) {
	return listar[entity.Cargo](ctx, c, "/cargos/", nil)
}

// ListarMarcas devuelve las marcas de vehículo.
func (c *Client) ListarMarcas(ctx context.Context) ([]entity.Marca, error) {
	return listar[entity.Marca](ctx, c, "/marcas/", nil)
}

// ListarModelos devuelve los modelos; con marca != 0 filtra por marca.
func (c *Client) ListarModelos(ctx context.Context, marca int64) ([]entity.Modelo, error) {
	var q url.Values
	if marca != 0 {
		q = url.Values{"marca": {fmt.Sprintf("%d", marca)}}
	}
	return listar[entity.Modelo](ctx, c, "/modelos/", q)
}
