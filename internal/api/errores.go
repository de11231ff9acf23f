package api

import (
	"encoding/json"
	"fmt"

	"github.com/autofix/consola-taller/internal/domain"
)

// camposPreferidos es el orden en que se busca el primer mensaje útil dentro
// de un 400 de validación del backend. Los campos con unicidad (nit, placa,
// ci) van primero porque son los rechazos más frecuentes.
var camposPreferidos = []string{
	"nit",
	"numero_placa",
	"ci",
	"telefono",
	"email",
	"username",
	"codigo",
	"fecha_hora_inicio",
	"fecha_hora_fin",
	"nombre",
	"non_field_errors",
	"detail",
}

// APIError es el error normalizado que ven la consola y los tests: mensaje
// en español listo para mostrar, status original y campo de validación si lo
// hubo. Unwrap expone el sentinela de dominio para errors.Is.
type APIError struct {
	Status  int
	Campo   string
	Mensaje string
	causa   error
}

func (e *APIError) Error() string { return e.Mensaje }
func (e *APIError) Unwrap() error { return e.causa }

// errorDesdeEstado traduce un status >= 400 al error normalizado del
// contrato: 400 validación por campo, 401 sesión, 403 permiso, 404 borrado.
func (c *Client) errorDesdeEstado(status int, body []byte) error {
	switch status {
	case 400:
		return errorValidacion(body)
	case 401:
		return &APIError{Status: 401, Mensaje: domain.ErrSesionExpirada.Error(), causa: domain.ErrSesionExpirada}
	case 403:
		return &APIError{Status: 403, Mensaje: domain.ErrSinPermiso.Error(), causa: domain.ErrSinPermiso}
	case 404:
		return &APIError{Status: 404, Mensaje: domain.ErrNoExiste.Error(), causa: domain.ErrNoExiste}
	default:
		return &APIError{Status: status, Mensaje: fmt.Sprintf("error del servidor (HTTP %d)", status)}
	}
}

// errorValidacion extrae del cuerpo 400 el primer mensaje del campo conocido
// más relevante; si el cuerpo no es el JSON de validación esperado, cae al
// JSON serializado tal cual.
func errorValidacion(body []byte) error {
	var porCampo map[string]json.RawMessage
	if err := json.Unmarshal(body, &porCampo); err == nil {
		for _, campo := range camposPreferidos {
			raw, ok := porCampo[campo]
			if !ok {
				continue
			}
			if msg := primerMensaje(raw); msg != "" {
				return &APIError{Status: 400, Campo: campo, Mensaje: msg, causa: domain.ErrValidacion}
			}
		}
	}
	return &APIError{
		Status:  400,
		Mensaje: fmt.Sprintf("datos inválidos: %s", string(body)),
		causa:   domain.ErrValidacion,
	}
}

// primerMensaje acepta "mensaje" o ["mensaje", ...], las dos formas en que
// el backend serializa los errores de un campo.
func primerMensaje(raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	var lista []string
	if err := json.Unmarshal(raw, &lista); err == nil && len(lista) > 0 {
		return lista[0]
	}
	return ""
}
