package entity

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// Ref es una referencia relacional tal como la envía el backend: un id plano
// (7), un objeto expandido ({"id": 7, "nombre": "X"}) o nada (null / "" /
// campo ausente). Los formularios de edición la aceptan en cualquiera de las
// tres formas y los mappers la normalizan a id plano antes de enviar.
type Ref struct {
	ID     int64
	Nombre string
	valida bool
}

// NewRef construye una referencia válida con el id dado.
func NewRef(id int64) Ref {
	return Ref{ID: id, valida: true}
}

// Vacia indica que la referencia no apunta a nada (se omite en el payload).
func (r Ref) Vacia() bool {
	return !r.valida
}

// IDPtr devuelve el id como puntero, o nil si la referencia está vacía.
// Es la forma que usan los payloads para omitir el campo vía omitempty.
func (r Ref) IDPtr() *int64 {
	if !r.valida {
		return nil
	}
	id := r.ID
	return &id
}

// UnmarshalJSON acepta número, cadena numérica, objeto expandido o null/"".
func (r *Ref) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*r = Ref{}
		return nil
	}
	switch b[0] {
	case '{':
		var obj struct {
			ID     int64  `json:"id"`
			Nombre string `json:"nombre"`
		}
		if err := json.Unmarshal(b, &obj); err != nil {
			return fmt.Errorf("referencia expandida inválida: %w", err)
		}
		*r = Ref{ID: obj.ID, Nombre: obj.Nombre, valida: true}
		return nil
	case '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		if s == "" {
			*r = Ref{}
			return nil
		}
		id, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return fmt.Errorf("referencia %q no es un id", s)
		}
		*r = Ref{ID: id, valida: true}
		return nil
	default:
		id, err := strconv.ParseInt(string(b), 10, 64)
		if err != nil {
			return fmt.Errorf("referencia %s no es un id", b)
		}
		*r = Ref{ID: id, valida: true}
		return nil
	}
}

// MarshalJSON serializa como id plano, o null si está vacía.
func (r Ref) MarshalJSON() ([]byte, error) {
	if !r.valida {
		return []byte("null"), nil
	}
	return []byte(strconv.FormatInt(r.ID, 10)), nil
}
