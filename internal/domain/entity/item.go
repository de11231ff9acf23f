package entity

import "github.com/shopspring/decimal"

// Tipos de item del inventario.
const (
	ItemVenta    = "venta"
	ItemTaller   = "taller"
	ItemServicio = "servicio"
)

// Item es un artículo de inventario o un servicio del catálogo.
type Item struct {
	ID          int64           `json:"id"`
	Codigo      string          `json:"codigo"`
	Nombre      string          `json:"nombre"`
	Descripcion string          `json:"descripcion"`
	Fabricante  string          `json:"fabricante"`
	Precio      decimal.Decimal `json:"precio"`
	Costo       decimal.Decimal `json:"costo"`
	Stock       int             `json:"stock"`
	Imagen      string          `json:"imagen"`
	Estado      bool            `json:"estado"`
	Area        Ref             `json:"area"`
	Tipo        string          `json:"tipo"` // venta | taller | servicio
}
