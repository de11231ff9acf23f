package entity

import "github.com/shopspring/decimal"

// Empleado representa un empleado del taller. Cargo y Area pueden llegar
// expandidos u en forma de id plano según el endpoint.
type Empleado struct {
	ID        int64           `json:"id"`
	Nombre    string          `json:"nombre"`
	Apellido  string          `json:"apellido"`
	CI        string          `json:"ci"`
	Direccion string          `json:"direccion"`
	Telefono  string          `json:"telefono"`
	Sexo      string          `json:"sexo"` // M | F
	Estado    bool            `json:"estado"`
	Sueldo    decimal.Decimal `json:"sueldo"`
	Cargo     Ref             `json:"cargo"`
	Area      Ref             `json:"area"`
	Usuario   Ref             `json:"usuario"` // opcional
}

// NombreCompleto para tablas y selects de la consola.
func (e Empleado) NombreCompleto() string {
	if e.Apellido == "" {
		return e.Nombre
	}
	return e.Nombre + " " + e.Apellido
}
