package transform

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/acamposh/horarios_olap/ETL/models"
)

var (
	espaciosRe = regexp.MustCompile(`\s+`)

	// H{1,2}MM-H{1,2}MM con dos puntos opcionales y guion o guion corto
	rangoHoraRe = regexp.MustCompile(`^(\d{1,2}):?(\d{2})[-–](\d{1,2}):?(\d{2})`)

	// edificio / aula opcional
	salonRe = regexp.MustCompile(`^([^/]+)/?(\w+)?`)

	titulador = cases.Title(language.Spanish)
)

// NormalizeProfesor corrige el formato del nombre del profesor tal como
// viene del PDF: colapsa espacios, quita el separador " - " y aplica
// formato de título. Entrada vacía produce ausente, nunca error.
func NormalizeProfesor(x string) *string {
	x = strings.TrimSpace(espaciosRe.ReplaceAllString(x, " "))
	if x == "" {
		return nil
	}
	x = strings.ReplaceAll(x, " - ", " ")
	nombre := titulador.String(strings.ToLower(x))
	return &nombre
}

// ParseHoraRange convierte un rango tipo "07:00-08:59" en hora de
// inicio, fin y duración en minutos enteros.
//
// El resultado es todo-o-nada: sin coincidencia del patrón, hora fuera
// de rango o duración no positiva producen los tres valores ausentes.
func ParseHoraRange(rango string) (inicio, fin *models.TimeOfDay, duracionMin *int) {
	s := espaciosRe.ReplaceAllString(strings.TrimSpace(rango), "")
	m := rangoHoraRe.FindStringSubmatch(s)
	if m == nil {
		return nil, nil, nil
	}

	h1, m1 := atoi(m[1]), atoi(m[2])
	h2, m2 := atoi(m[3]), atoi(m[4])

	start, ok := models.NewTimeOfDay(h1, m1)
	if !ok {
		return nil, nil, nil
	}
	end, ok := models.NewTimeOfDay(h2, m2)
	if !ok {
		return nil, nil, nil
	}

	duracion := end.Minutes() - start.Minutes()
	if duracion <= 0 {
		return nil, nil, nil
	}

	return &start, &end, &duracion
}

// SplitSalon separa el texto del salón ("1CCO4/203") en edificio y aula.
// Si el texto no coincide ni con una cadena simple sin separador,
// edificio y aula quedan ausentes y el texto original se conserva como
// código compuesto.
func SplitSalon(s string) (edificio, aula *string, codigo string) {
	s = strings.TrimSpace(s)
	m := salonRe.FindStringSubmatch(s)
	if m == nil {
		return nil, nil, s
	}

	ed := m[1]
	edificio = &ed
	if m[2] != "" {
		au := m[2]
		aula = &au
	}
	return edificio, aula, s
}

// los grupos del regex ya garantizan dígitos
func atoi(s string) int {
	n := 0
	for _, c := range s {
		n = n*10 + int(c-'0')
	}
	return n
}
