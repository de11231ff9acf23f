package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/url"
)

// envelope es la forma paginada `{count, results}` que algunos endpoints
// devuelven en lugar del array plano.
type envelope[T any] struct {
	Count   int `json:"count"`
	Results []T `json:"results"`
}

// listar ejecuta un GET de listado y normaliza la respuesta: array plano o
// envelope paginado, en ambos casos devuelve un slice; `results` ausente es
// lista vacía y un resultado vacío nunca es error.
func listar[T any](ctx context.Context, c *Client, path string, query url.Values) ([]T, error) {
	data, err := c.get(ctx, path, query)
	if err != nil {
		return nil, err
	}
	return normalizarListado[T](data)
}

func normalizarListado[T any](data []byte) ([]T, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return []T{}, nil
	}
	if data[0] == '[' {
		var lista []T
		if err := json.Unmarshal(data, &lista); err != nil {
			return nil, fmt.Errorf("listado inesperado del servidor: %w", err)
		}
		if lista == nil {
			lista = []T{}
		}
		return lista, nil
	}
	var env envelope[T]
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("listado inesperado del servidor: %w", err)
	}
	if env.Results == nil {
		return []T{}, nil
	}
	return env.Results, nil
}
