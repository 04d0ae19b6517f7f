package transform

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/acamposh/horarios_olap/ETL/models"
)

func TestTokensDia(t *testing.T) {
	tests := []struct {
		entrada string
		tokens  []string
	}{
		{"LMV", []string{"L", "M", "V"}},
		{"L", []string{"L"}},
		{"L M V", []string{"L", "M", "V"}},
		{"Lu,Ma,Vi", []string{"Lu", "Ma", "Vi"}},
		{"L,,V", []string{"L", "", "V"}},
		{"", nil},
		{"   ", nil},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.tokens, TokensDia(tc.entrada), "entrada %q", tc.entrada)
	}
}

func TestMapDia(t *testing.T) {
	assert.Equal(t, DiaToken{Codigo: "L", Nombre: "Lunes"}, MapDia("L"))
	assert.Equal(t, DiaToken{Codigo: "A", Nombre: "Martes"}, MapDia("A"))
	assert.Equal(t, DiaToken{Codigo: "M", Nombre: "Miercoles"}, MapDia("M"))

	// Un token desconocido pasa tal cual, nunca se descarta
	assert.Equal(t, DiaToken{Codigo: "X", Nombre: "X"}, MapDia("X"))
}

func TestExpandDias(t *testing.T) {
	profesor := "Garcia Lopez Juan"
	base := models.CuratedRow{
		NRC:      "12345",
		Clave:    "CB101",
		Materia:  "Calculo",
		Dias:     "LMV",
		Profesor: &profesor,
	}

	filas := ExpandDias(base)
	require.Len(t, filas, 3)

	assert.Equal(t, "L", filas[0].DiaCodigo)
	assert.Equal(t, "Lunes", filas[0].DiaSemana)
	assert.Equal(t, "M", filas[1].DiaCodigo)
	assert.Equal(t, "Miercoles", filas[1].DiaSemana)
	assert.Equal(t, "V", filas[2].DiaCodigo)
	assert.Equal(t, "Viernes", filas[2].DiaSemana)

	// Todos los demás campos se copian sin cambios
	for _, fila := range filas {
		assert.Equal(t, "12345", fila.NRC)
		assert.Equal(t, "CB101", fila.Clave)
		assert.Equal(t, "Calculo", fila.Materia)
		assert.Equal(t, "LMV", fila.Dias)
		require.NotNil(t, fila.Profesor)
		assert.Equal(t, profesor, *fila.Profesor)
	}
}

func TestExpandDiasSinDias(t *testing.T) {
	assert.Nil(t, ExpandDias(models.CuratedRow{Dias: ""}))
}

func TestExpandDiasTokenVacioEntreComas(t *testing.T) {
	// Un token vacío entre comas cuenta como día: la fila sale con el
	// código y el nombre vacíos, nunca se pierde
	filas := ExpandDias(models.CuratedRow{NRC: "12345", Dias: "L,,V"})
	require.Len(t, filas, 3)

	assert.Equal(t, "Lunes", filas[0].DiaSemana)
	assert.Equal(t, "", filas[1].DiaCodigo)
	assert.Equal(t, "", filas[1].DiaSemana)
	assert.Equal(t, "Viernes", filas[2].DiaSemana)
	assert.Equal(t, "12345", filas[1].NRC)
}
