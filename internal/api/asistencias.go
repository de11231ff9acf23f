package api

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strconv"

	"github.com/autofix/consola-taller/internal/domain"
	"github.com/autofix/consola-taller/internal/domain/entity"
)

// Módulo de recurso /asistencias/. Es el único con interceptor de 401: ante
// sesión expirada limpia los tokens guardados antes de devolver el error,
// el análogo del redirect forzado a /login del cliente web.

// cerrarSesionSi401 limpia la sesión local cuando el backend respondió 401.
func (c *Client) cerrarSesionSi401(err error) error {
	if errors.Is(err, domain.ErrSesionExpirada) {
		if clearErr := c.sesion.Clear(); clearErr != nil {
			c.log.Warn().Err(clearErr).Msg("no se pudo limpiar la sesión tras 401")
		}
	}
	return err
}

// ListarAsistencias devuelve los registros; admite filtros como
// empleado=<id> y fecha=<yyyy-mm-dd>.
func (c *Client) ListarAsistencias(ctx context.Context, filtros url.Values) ([]entity.Asistencia, error) {
	lista, err := listar[entity.Asistencia](ctx, c, "/asistencias/", filtros)
	if err != nil {
		return nil, c.cerrarSesionSi401(err)
	}
	return lista, nil
}

// MarcarAsistencia registra entrada o salida del empleado autenticado
// (POST /asistencia/marcar/). El backend decide si la marca abre o cierra el
// día y devuelve el registro resultante con sus horas computadas.
func (c *Client) MarcarAsistencia(ctx context.Context) (*entity.Asistencia, error) {
	data, err := c.enviar(ctx, http.MethodPost, "/asistencia/marcar/", nil)
	if err != nil {
		return nil, c.cerrarSesionSi401(err)
	}
	var a entity.Asistencia
	if err := decodificar(data, &a); err != nil {
		return nil, err
	}
	return &a, nil
}

// ReporteMensualAsistencia devuelve el resumen de un mes
// (GET /asistencia/reporte-mensual/?año=&mes=).
func (c *Client) ReporteMensualAsistencia(ctx context.Context, anio, mes int) ([]entity.ReporteMensualAsistencia, error) {
	q := url.Values{}
	q.Set("año", strconv.Itoa(anio))
	q.Set("mes", strconv.Itoa(mes))
	lista, err := listar[entity.ReporteMensualAsistencia](ctx, c, "/asistencia/reporte-mensual/", q)
	if err != nil {
		return nil, c.cerrarSesionSi401(err)
	}
	return lista, nil
}
