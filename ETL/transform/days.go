package transform

import (
	"strings"

	"github.com/acamposh/horarios_olap/ETL/models"
)

// DiaToken es un token de día ya mapeado: el código original y el nombre
// del día. Tokens no reconocidos pasan tal cual como código y nombre.
type DiaToken struct {
	Codigo string
	Nombre string
}

// TokensDia tokeniza un código de días comprimido. Con comas se separa
// por comas (los tokens pueden ser multicaracter y los vacíos se
// conservan); sin comas cada caracter es un día.
func TokensDia(dias string) []string {
	s := strings.ReplaceAll(dias, " ", "")
	if s == "" {
		return nil
	}

	if strings.Contains(s, ",") {
		return strings.Split(s, ",")
	}

	tokens := make([]string, 0, len(s))
	for _, r := range s {
		tokens = append(tokens, string(r))
	}
	return tokens
}

// MapDia resuelve un token contra la tabla de días. Un token sin
// correspondencia se conserva sin cambios, nunca se descarta.
func MapDia(token string) DiaToken {
	if d, ok := models.DiaFromCodigo(token); ok {
		return DiaToken{Codigo: token, Nombre: d.Nombre()}
	}
	return DiaToken{Codigo: token, Nombre: token}
}

// ExpandDias explota una fila curada con varios días en una fila por
// día; todos los demás campos se copian sin cambios
func ExpandDias(base models.CuratedRow) []models.CuratedRow {
	tokens := TokensDia(base.Dias)
	if len(tokens) == 0 {
		return nil
	}

	out := make([]models.CuratedRow, 0, len(tokens))
	for _, t := range tokens {
		dia := MapDia(t)
		fila := base
		fila.DiaCodigo = dia.Codigo
		fila.DiaSemana = dia.Nombre
		out = append(out, fila)
	}
	return out
}
