package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/autofix/consola-taller/internal/domain/entity"
)

// Módulo de recurso /items/ (inventario y servicios). El payload de item no
// tiene campos relacionales ambiguos, así que viaja como la entidad misma
// sin mapper dedicado.

// ItemPayload cuerpo de POST/PUT de /items/.
type ItemPayload struct {
	Codigo      string `json:"codigo"`
	Nombre      string `json:"nombre"`
	Descripcion string `json:"descripcion,omitempty"`
	Fabricante  string `json:"fabricante,omitempty"`
	Precio      string `json:"precio"`
	Costo       string `json:"costo,omitempty"`
	Stock       int    `json:"stock"`
	Imagen      string `json:"imagen,omitempty"`
	Estado      bool   `json:"estado"`
	Area        *int64 `json:"area,omitempty"`
	Tipo        string `json:"tipo"` // venta | taller | servicio
}

// ListarItems devuelve los items; admite filtros como tipo=servicio.
func (c *Client) ListarItems(ctx context.Context, filtros url.Values) ([]entity.Item, error) {
	return listar[entity.Item](ctx, c, "/items/", filtros)
}

// ObtenerItem devuelve un item por id.
func (c *Client) ObtenerItem(ctx context.Context, id int64) (*entity.Item, error) {
	data, err := c.get(ctx, fmt.Sprintf("/items/%d/", id), nil)
	if err != nil {
		return nil, err
	}
	var it entity.Item
	if err := decodificar(data, &it); err != nil {
		return nil, err
	}
	return &it, nil
}

// CrearItem registra un item de inventario o servicio.
func (c *Client) CrearItem(ctx context.Context, p ItemPayload) (*entity.Item, error) {
	data, err := c.enviar(ctx, http.MethodPost, "/items/", p)
	if err != nil {
		return nil, err
	}
	var it entity.Item
	if err := decodificar(data, &it); err != nil {
		return nil, err
	}
	return &it, nil
}

// ActualizarItem reemplaza el item (PUT).
func (c *Client) ActualizarItem(ctx context.Context, id int64, p ItemPayload) (*entity.Item, error) {
	data, err := c.enviar(ctx, http.MethodPut, fmt.Sprintf("/items/%d/", id), p)
	if err != nil {
		return nil, err
	}
	var it entity.Item
	if err := decodificar(data, &it); err != nil {
		return nil, err
	}
	return &it, nil
}

// EliminarItem borra el item por id.
func (c *Client) EliminarItem(ctx context.Context, id int64) error {
	_, err := c.enviar(ctx, http.MethodDelete, fmt.Sprintf("/items/%d/", id), nil)
	return err
}
