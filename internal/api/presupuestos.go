package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/shopspring/decimal"

	"github.com/autofix/consola-taller/internal/domain/entity"
)

// Módulo de recurso /presupuestos/. Los totales que persisten son los del
// backend; los de internal/application/presupuesto son previsualización.

// DetallePresupuestoPayload línea de presupuesto en el cuerpo.
type DetallePresupuestoPayload struct {
	Item                int64           `json:"item"`
	Cantidad            decimal.Decimal `json:"cantidad"`
	PrecioUnitario      decimal.Decimal `json:"precio_unitario"`
	DescuentoPorcentaje decimal.Decimal `json:"descuento_porcentaje"`
}

// PresupuestoPayload cuerpo de POST/PUT de /presupuestos/.
type PresupuestoPayload struct {
	Diagnostico   string                      `json:"diagnostico"`
	Estado        string                      `json:"estado,omitempty"`
	ConImpuestos  bool                        `json:"con_impuestos"`
	Impuestos     decimal.Decimal             `json:"impuestos"`
	Observaciones string                      `json:"observaciones,omitempty"`
	FechaInicio   string                      `json:"fecha_inicio,omitempty"`
	FechaFin      string                      `json:"fecha_fin,omitempty"`
	Cliente       *int64                      `json:"cliente,omitempty"`
	Vehiculo      *int64                      `json:"vehiculo,omitempty"`
	Detalles      []DetallePresupuestoPayload `json:"detalles"`
}

// ListarPresupuestos devuelve los presupuestos; admite filtros como estado=.
func (c *Client) ListarPresupuestos(ctx context.Context, filtros url.Values) ([]entity.Presupuesto, error) {
	return listar[entity.Presupuesto](ctx, c, "/presupuestos/", filtros)
}

// ObtenerPresupuesto devuelve un presupuesto con sus líneas.
func (c *Client) ObtenerPresupuesto(ctx context.Context, id int64) (*entity.Presupuesto, error) {
	data, err := c.get(ctx, fmt.Sprintf("/presupuestos/%d/", id), nil)
	if err != nil {
		return nil, err
	}
	var p entity.Presupuesto
	if err := decodificar(data, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// CrearPresupuesto crea el presupuesto con sus líneas.
func (c *Client) CrearPresupuesto(ctx context.Context, p PresupuestoPayload) (*entity.Presupuesto, error) {
	data, err := c.enviar(ctx, http.MethodPost, "/presupuestos/", p)
	if err != nil {
		return nil, err
	}
	var pr entity.Presupuesto
	if err := decodificar(data, &pr); err != nil {
		return nil, err
	}
	return &pr, nil
}

// ActualizarPresupuesto reemplaza el presupuesto (PUT).
func (c *Client) ActualizarPresupuesto(ctx context.Context, id int64, p PresupuestoPayload) (*entity.Presupuesto, error) {
	data, err := c.enviar(ctx, http.MethodPut, fmt.Sprintf("/presupuestos/%d/", id), p)
	if err != nil {
		return nil, err
	}
	var pr entity.Presupuesto
	if err := decodificar(data, &pr); err != nil {
		return nil, err
	}
	return &pr, nil
}

// CambiarEstadoPresupuesto cambia solo el estado (PATCH).
func (c *Client) CambiarEstadoPresupuesto(ctx context.Context, id int64, estado string) (*entity.Presupuesto, error) {
	data, err := c.enviar(ctx, http.MethodPatch, fmt.Sprintf("/presupuestos/%d/", id), map[string]string{"estado": estado})
	if err != nil {
		return nil, err
	}
	var pr entity.Presupuesto
	if err := decodificar(data, &pr); err != nil {
		return nil, err
	}
	return &pr, nil
}

// EliminarPresupuesto borra el presupuesto por id.
func (c *Client) EliminarPresupuesto(ctx context.Context, id int64) error {
	_, err := c.enviar(ctx, http.MethodDelete, fmt.Sprintf("/presupuestos/%d/", id), nil)
	return err
}
