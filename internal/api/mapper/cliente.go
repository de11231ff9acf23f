package mapper

import (
	"strings"

	"github.com/autofix/consola-taller/internal/domain/entity"
)

// FormCliente es el estado del formulario de alta/edición de cliente.
// Usuario puede venir del backend como id plano o como objeto expandido.
type FormCliente struct {
	Nombre      string
	Apellido    string
	NIT         string
	Telefono    string
	Direccion   string
	TipoCliente string // vacío => NATURAL
	Activo      bool
	Usuario     entity.Ref
}

// ClientePayload es el cuerpo que viaja en POST/PUT de /clientes/.
type ClientePayload struct {
	Nombre      string `json:"nombre"`
	Apellido    string `json:"apellido"`
	NIT         string `json:"nit"`
	Telefono    string `json:"telefono,omitempty"`
	Direccion   string `json:"direccion,omitempty"`
	TipoCliente string `json:"tipo_cliente"`
	Activo      bool   `json:"activo"`
	Usuario     *int64 `json:"usuario,omitempty"`
}

// ToAPICliente normaliza el formulario al payload del backend.
func ToAPICliente(f FormCliente) ClientePayload {
	tipo := strings.TrimSpace(f.TipoCliente)
	if tipo == "" {
		tipo = entity.TipoClienteNatural
	}
	return ClientePayload{
		Nombre:      strings.TrimSpace(f.Nombre),
		Apellido:    strings.TrimSpace(f.Apellido),
		NIT:         strings.TrimSpace(f.NIT),
		Telefono:    strings.TrimSpace(f.Telefono),
		Direccion:   strings.TrimSpace(f.Direccion),
		TipoCliente: tipo,
		Activo:      f.Activo,
		Usuario:     f.Usuario.IDPtr(),
	}
}

// FormDesdeCliente precarga el formulario de edición desde la entidad.
func FormDesdeCliente(c entity.Cliente) FormCliente {
	return FormCliente{
		Nombre:      c.Nombre,
		Apellido:    c.Apellido,
		NIT:         c.NIT,
		Telefono:    c.Telefono,
		Direccion:   c.Direccion,
		TipoCliente: c.TipoCliente,
		Activo:      c.Activo,
		Usuario:     c.Usuario,
	}
}
