package models

import "strings"

// Dia es el día de la semana como enumeración ordenada. El orden de las
// constantes es el orden total usado por todas las consultas del cubo.
type Dia int

const (
	DiaLunes Dia = iota
	DiaMartes
	DiaMiercoles
	DiaJueves
	DiaViernes
	DiaSabado
)

// Mapa de códigos de día del PDF a la enumeración.
// Nota: A es martes y M es miércoles, siguiendo la nomenclatura de los
// programas académicos.
var diaPorCodigo = map[string]Dia{
	"L": DiaLunes,
	"A": DiaMartes,
	"M": DiaMiercoles,
	"J": DiaJueves,
	"V": DiaViernes,
	"S": DiaSabado,
}

var nombresDia = [...]string{"Lunes", "Martes", "Miercoles", "Jueves", "Viernes", "Sábado"}

var codigosDia = [...]string{"L", "A", "M", "J", "V", "S"}

// DiaFromCodigo mapea un token de día (L, A, M, J, V, S) a la enumeración
func DiaFromCodigo(codigo string) (Dia, bool) {
	d, ok := diaPorCodigo[strings.ToUpper(strings.TrimSpace(codigo))]
	return d, ok
}

// Nombre devuelve el nombre completo del día
func (d Dia) Nombre() string {
	if d < DiaLunes || d > DiaSabado {
		return ""
	}
	return nombresDia[d]
}

// Codigo devuelve la letra del día usada en los PDF
func (d Dia) Codigo() string {
	if d < DiaLunes || d > DiaSabado {
		return ""
	}
	return codigosDia[d]
}

// NombresDias devuelve los nombres en orden de semana, para encabezados
// de tablas pivote
func NombresDias() []string {
	out := make([]string, len(nombresDia))
	copy(out, nombresDia[:])
	return out
}

// quita acentos frecuentes en los nombres de día para que variantes como
// "Sabado"/"Sábado" ordenen igual al volver de la base
var foldDia = strings.NewReplacer("á", "a", "é", "e", "í", "i", "ó", "o", "ú", "u")

func claveDia(nombre string) string {
	return foldDia.Replace(strings.ToLower(strings.TrimSpace(nombre)))
}

var ordenPorNombre = func() map[string]int {
	m := make(map[string]int, len(nombresDia))
	for i, n := range nombresDia {
		m[claveDia(n)] = i
	}
	return m
}()

// OrdenDia devuelve la posición del día en la semana para ordenamiento.
// Valores fuera de la enumeración ordenan después de todos los conocidos.
func OrdenDia(nombre string) int {
	if pos, ok := ordenPorNombre[claveDia(nombre)]; ok {
		return pos
	}
	return len(nombresDia)
}
