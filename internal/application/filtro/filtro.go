// Package filtro implementa la búsqueda local de los listados de la
// consola: insensible a mayúsculas y a tildes, igual que el buscador de las
// tablas del cliente web ("pérez" y "perez" encuentran lo mismo).
package filtro

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// quitaTildes descompone (NFD), elimina las marcas diacríticas y recompone.
var quitaTildes = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Normalizar deja el texto en minúsculas y sin tildes para comparar.
func Normalizar(s string) string {
	plano, _, err := transform.String(quitaTildes, s)
	if err != nil {
		plano = s
	}
	return strings.ToLower(plano)
}

// Coincide indica si la consulta aparece en el texto, normalizados ambos.
// La consulta vacía coincide con todo.
func Coincide(texto, consulta string) bool {
	consulta = strings.TrimSpace(consulta)
	if consulta == "" {
		return true
	}
	return strings.Contains(Normalizar(texto), Normalizar(consulta))
}

// Filtrar devuelve los elementos cuyo texto de búsqueda (concatenación de
// los campos que entrega extraer) contiene la consulta.
func Filtrar[T any](elementos []T, consulta string, extraer func(T) []string) []T {
	consulta = strings.TrimSpace(consulta)
	if consulta == "" {
		return elementos
	}
	var out []T
	for _, e := range elementos {
		if Coincide(strings.Join(extraer(e), " "), consulta) {
			out = append(out, e)
		}
	}
	return out
}
