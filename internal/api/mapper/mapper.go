// Package mapper centraliza la conversión de los formularios de la consola
// al payload que espera el backend: trim de cadenas, coerción numérica,
// normalización de referencias (id plano u objeto expandido) y omisión de
// los campos relacionales opcionales sin valor, que nunca viajan como null.
package mapper

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// enteroOpcional coerciona un campo numérico de formulario: vacío vale cero
// sin error, cualquier otra cosa debe ser un entero.
func enteroOpcional(campo, valor string) (int, error) {
	valor = strings.TrimSpace(valor)
	if valor == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(valor)
	if err != nil {
		return 0, fmt.Errorf("%s debe ser un número: %q", campo, valor)
	}
	return n, nil
}

func itoa(n int) string { return strconv.Itoa(n) }

// decimalOpcional coerciona un campo monetario: vacío vale cero sin error.
func decimalOpcional(campo, valor string) (decimal.Decimal, error) {
	valor = strings.TrimSpace(valor)
	if valor == "" {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(valor)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%s debe ser un número: %q", campo, valor)
	}
	return d, nil
}
