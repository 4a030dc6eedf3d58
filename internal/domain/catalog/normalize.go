package catalog

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Funciones puras de normalización de texto libre de catálogo (marca, categoría,
// nombre). Norm produce la forma canónica de comparación; Pretty la forma de
// presentación. Determinísticas y sin estado.

var titleCaser = cases.Title(language.Und, cases.NoLower)

// Norm recorta, colapsa espacios internos y pasa a mayúsculas para comparar.
func Norm(s string) string {
	return strings.ToUpper(collapse(s))
}

// Pretty recorta, colapsa espacios y pone en mayúscula la inicial de cada palabra
// sin tocar el resto (igual que la vista de catálogo).
func Pretty(s string) string {
	return titleCaser.String(collapse(s))
}

// Match compara dos valores libres en su forma canónica.
func Match(a, b string) bool {
	return Norm(a) == Norm(b)
}

func collapse(s string) string {
	return strings.Join(strings.Fields(strings.TrimSpace(s)), " ")
}
