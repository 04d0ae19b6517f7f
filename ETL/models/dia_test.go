package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiaFromCodigo(t *testing.T) {
	tests := []struct {
		codigo string
		nombre string
	}{
		{"L", "Lunes"},
		{"A", "Martes"},
		{"M", "Miercoles"},
		{"J", "Jueves"},
		{"V", "Viernes"},
		{"S", "Sábado"},
		{"l", "Lunes"},
		{" v ", "Viernes"},
	}

	for _, tc := range tests {
		d, ok := DiaFromCodigo(tc.codigo)
		require.True(t, ok, "código %q", tc.codigo)
		assert.Equal(t, tc.nombre, d.Nombre())
	}

	_, ok := DiaFromCodigo("X")
	assert.False(t, ok)
	_, ok = DiaFromCodigo("")
	assert.False(t, ok)
}

func TestOrdenDia(t *testing.T) {
	assert.Equal(t, 0, OrdenDia("Lunes"))
	assert.Equal(t, 5, OrdenDia("Sábado"))

	// Variantes con y sin acento ordenan igual
	assert.Equal(t, OrdenDia("Sábado"), OrdenDia("sabado"))
	assert.Equal(t, OrdenDia("Miercoles"), OrdenDia("Miércoles"))

	// Lo desconocido ordena después de todos los días conocidos
	assert.Greater(t, OrdenDia("X"), OrdenDia("Sábado"))
	assert.Greater(t, OrdenDia(""), OrdenDia("Sábado"))
}

func TestNombresDiasOrdenSemana(t *testing.T) {
	dias := NombresDias()
	require.Len(t, dias, 6)
	assert.Equal(t, []string{"Lunes", "Martes", "Miercoles", "Jueves", "Viernes", "Sábado"}, dias)

	// La copia devuelta no comparte memoria con la tabla interna
	dias[0] = "otro"
	assert.Equal(t, "Lunes", NombresDias()[0])
}
