package entity

// Tablas de referencia del taller. Solo lectura desde la consola salvo
// áreas y cargos, que el administrador puede mantener.

// Area agrupa empleados e items (mecánica, pintura, repuestos...).
type Area struct {
	ID          int64  `json:"id"`
	Nombre      string `json:"nombre"`
	Descripcion string `json:"descripcion"`
}

// Cargo es el rol laboral de un empleado.
type Cargo struct {
	ID     int64  `json:"id"`
	Nombre string `json:"nombre"`
}

// Marca de vehículo.
type Marca struct {
	ID     int64  `json:"id"`
	Nombre string `json:"nombre"`
}

// Modelo de vehículo, ligado a una marca.
type Modelo struct {
	ID     int64  `json:"id"`
	Nombre string `json:"nombre"`
	Marca  Ref    `json:"marca"`
}
