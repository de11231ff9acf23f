package entity

// Tipos de cliente aceptados por el backend.
const (
	TipoClienteNatural = "NATURAL"
	TipoClienteEmpresa = "EMPRESA"
)

// Cliente representa un cliente del taller. El backend es dueño de la
// unicidad del NIT y del vínculo opcional con un usuario del sistema.
type Cliente struct {
	ID          int64  `json:"id"`
	Nombre      string `json:"nombre"`
	Apellido    string `json:"apellido"`
	NIT         string `json:"nit"`
	Telefono    string `json:"telefono"`
	Direccion   string `json:"direccion"`
	TipoCliente string `json:"tipo_cliente"` // NATURAL | EMPRESA
	Activo      bool   `json:"activo"`
	Usuario     Ref    `json:"usuario"` // opcional, uno a uno
}

// NombreCompleto para tablas y selects de la consola.
func (c Cliente) NombreCompleto() string {
	if c.Apellido == "" {
		return c.Nombre
	}
	return c.Nombre + " " + c.Apellido
}
