package mapper

import (
	"strings"

	"github.com/autofix/consola-taller/internal/domain/entity"
)

// FormVehiculo estado del formulario de vehículo. Año llega como texto del
// input y se coerciona a entero.
type FormVehiculo struct {
	NumeroPlaca     string
	VIN             string
	NumeroMotor     string
	Tipo            string
	Version         string
	Color           string
	Anio            string
	Cilindrada      string
	TipoCombustible string
	Cliente         entity.Ref
	Marca           entity.Ref
	Modelo          entity.Ref
}

// VehiculoPayload cuerpo de POST/PUT de /vehiculos/.
type VehiculoPayload struct {
	NumeroPlaca     string `json:"numero_placa"`
	VIN             string `json:"vin,omitempty"`
	NumeroMotor     string `json:"numero_motor,omitempty"`
	Tipo            string `json:"tipo,omitempty"`
	Version         string `json:"version,omitempty"`
	Color           string `json:"color,omitempty"`
	Anio            int    `json:"año,omitempty"`
	Cilindrada      string `json:"cilindrada,omitempty"`
	TipoCombustible string `json:"tipo_combustible,omitempty"`
	Cliente         *int64 `json:"cliente,omitempty"`
	Marca           *int64 `json:"marca,omitempty"`
	Modelo          *int64 `json:"modelo,omitempty"`
}

// ToAPIVehiculo normaliza el formulario al payload del backend.
func ToAPIVehiculo(f FormVehiculo) (VehiculoPayload, error) {
	anio, err := enteroOpcional("año", f.Anio)
	if err != nil {
		return VehiculoPayload{}, err
	}
	return VehiculoPayload{
		NumeroPlaca:     strings.ToUpper(strings.TrimSpace(f.NumeroPlaca)),
		VIN:             strings.TrimSpace(f.VIN),
		NumeroMotor:     strings.TrimSpace(f.NumeroMotor),
		Tipo:            strings.TrimSpace(f.Tipo),
		Version:         strings.TrimSpace(f.Version),
		Color:           strings.TrimSpace(f.Color),
		Anio:            anio,
		Cilindrada:      strings.TrimSpace(f.Cilindrada),
		TipoCombustible: strings.TrimSpace(f.TipoCombustible),
		Cliente:         f.Cliente.IDPtr(),
		Marca:           f.Marca.IDPtr(),
		Modelo:          f.Modelo.IDPtr(),
	}, nil
}

// FormDesdeVehiculo precarga el formulario de edición desde la entidad.
func FormDesdeVehiculo(v entity.Vehiculo) FormVehiculo {
	anio := ""
	if v.Anio != 0 {
		anio = itoa(v.Anio)
	}
	return FormVehiculo{
		NumeroPlaca:     v.NumeroPlaca,
		VIN:             v.VIN,
		NumeroMotor:     v.NumeroMotor,
		Tipo:            v.Tipo,
		Version:         v.Version,
		Color:           v.Color,
		Anio:            anio,
		Cilindrada:      v.Cilindrada,
		TipoCombustible: v.TipoCombustible,
		Cliente:         v.Cliente,
		Marca:           v.Marca,
		Modelo:          v.Modelo,
	}
}
