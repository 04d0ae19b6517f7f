package extractors

import (
	"regexp"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// Columnas que debe contener el encabezado de una tabla de horarios.
// La comparación pliega acentos y mayúsculas, así que esta lista cubre
// tanto "días"/"salón" como las variantes sin acento de algunos PDF.
var columnasEsperadas = []string{"nrc", "clave", "materia", "días", "hora", "profesor", "salón"}

// Alias conocidos de la columna de hora, en orden de prioridad.
// El primero presente en el encabezado gana; si ninguno aparece la
// columna queda ausente en la fila.
var horaAliases = []string{"hora", "horario", "h"}

var espaciosRe = regexp.MustCompile(`\s+`)

// normalizeHeader limpia un encabezado: colapsa espacios internos,
// recorta y pasa a minúsculas
func normalizeHeader(cols []string) []string {
	out := make([]string, len(cols))
	for i, c := range cols {
		out[i] = strings.ToLower(strings.TrimSpace(espaciosRe.ReplaceAllString(c, " ")))
	}
	return out
}

// headerEquals compara dos nombres de columna ignorando acentos y
// mayúsculas. MatchNormalizedFold en ambos sentidos equivale a igualdad
// bajo el plegado unicode.
func headerEquals(a, b string) bool {
	return fuzzy.MatchNormalizedFold(a, b) && fuzzy.MatchNormalizedFold(b, a)
}

// indexOfColumn busca una columna en un encabezado ya normalizado
func indexOfColumn(header []string, name string) int {
	for i, h := range header {
		if headerEquals(h, name) {
			return i
		}
	}
	return -1
}

// isScheduleHeader decide si un encabezado corresponde a una tabla de
// horarios: debe ser superconjunto de las columnas esperadas. Bloques de
// título, pies de página y otras tablas quedan fuera.
//
// La columna de hora no se exige aquí: si no aparece bajo ningún alias,
// la fila sale con la hora ausente en vez de descartar la tabla.
func isScheduleHeader(header []string) bool {
	for _, col := range columnasEsperadas {
		if col == "hora" {
			continue
		}
		if indexOfColumn(header, col) < 0 {
			return false
		}
	}
	return true
}

// resolveHoraIndex aplica la lista de alias de la columna de hora:
// primera coincidencia gana, -1 si no hay ninguna
func resolveHoraIndex(header []string) int {
	for _, alias := range horaAliases {
		if i := indexOfColumn(header, alias); i >= 0 {
			return i
		}
	}
	return -1
}
