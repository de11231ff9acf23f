package entity

import "github.com/shopspring/decimal"

// Estados de orden de trabajo.
const (
	OrdenAbierta    = "ABIERTA"
	OrdenEnProceso  = "EN_PROCESO"
	OrdenFinalizada = "FINALIZADA"
	OrdenCancelada  = "CANCELADA"
)

// Orden es una orden de trabajo del taller, con sus líneas de detalle.
// Todos los montos son autoritativos del backend.
type Orden struct {
	ID        int64           `json:"id"`
	Cliente   Ref             `json:"cliente"`
	Vehiculo  Ref             `json:"vehiculo"`
	Estado    string          `json:"estado"`
	Subtotal  decimal.Decimal `json:"subtotal"`
	Impuesto  decimal.Decimal `json:"impuesto"`
	Total     decimal.Decimal `json:"total"`
	Detalles  []DetalleOrden  `json:"detalles"`
}

// DetalleOrden es una línea de la orden de trabajo.
type DetalleOrden struct {
	ID             int64           `json:"id"`
	Item           Ref             `json:"item"`
	Cantidad       decimal.Decimal `json:"cantidad"`
	PrecioUnitario decimal.Decimal `json:"precio_unitario"`
	Subtotal       decimal.Decimal `json:"subtotal"`
}
