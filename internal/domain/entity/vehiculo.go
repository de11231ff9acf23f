package entity

// Vehiculo representa un vehículo registrado. La placa es única; la
// unicidad la hace valer el backend y la consola solo muestra su rechazo.
type Vehiculo struct {
	ID              int64  `json:"id"`
	NumeroPlaca     string `json:"numero_placa"`
	VIN             string `json:"vin"`
	NumeroMotor     string `json:"numero_motor"`
	Tipo            string `json:"tipo"`
	Version         string `json:"version"`
	Color           string `json:"color"`
	Anio            int    `json:"año"`
	Cilindrada      string `json:"cilindrada"`
	TipoCombustible string `json:"tipo_combustible"`
	Cliente         Ref    `json:"cliente"`
	Marca           Ref    `json:"marca"`
	Modelo          Ref    `json:"modelo"`
}
