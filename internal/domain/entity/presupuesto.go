package entity

import "github.com/shopspring/decimal"

// Estados de presupuesto.
const (
	PresupuestoBorrador  = "BORRADOR"
	PresupuestoEnviado   = "ENVIADO"
	PresupuestoAprobado  = "APROBADO"
	PresupuestoRechazado = "RECHAZADO"
)

// Presupuesto es una cotización de trabajo. Los totales persistidos los
// calcula el backend; los de la consola son solo previsualización.
type Presupuesto struct {
	ID            int64                `json:"id"`
	Diagnostico   string               `json:"diagnostico"`
	Estado        string               `json:"estado"`
	ConImpuestos  bool                 `json:"con_impuestos"`
	Impuestos     decimal.Decimal      `json:"impuestos"` // porcentaje
	Observaciones string               `json:"observaciones"`
	FechaInicio   string               `json:"fecha_inicio"`
	FechaFin      string               `json:"fecha_fin"`
	Cliente       Ref                  `json:"cliente"`
	Vehiculo      Ref                  `json:"vehiculo"`
	Subtotal      decimal.Decimal      `json:"subtotal"`
	Total         decimal.Decimal      `json:"total"`
	Detalles      []DetallePresupuesto `json:"detalles"`
}

// DetallePresupuesto es una línea de presupuesto.
type DetallePresupuesto struct {
	ID                  int64           `json:"id"`
	Item                Ref             `json:"item"`
	Cantidad            decimal.Decimal `json:"cantidad"`
	PrecioUnitario      decimal.Decimal `json:"precio_unitario"`
	DescuentoPorcentaje decimal.Decimal `json:"descuento_porcentaje"`
}
