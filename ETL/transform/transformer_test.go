package transform

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/acamposh/horarios_olap/ETL/models"
	"github.com/acamposh/horarios_olap/ETL/utils"
)

// testLogger crea el logger dentro de una carpeta temporal para no dejar
// archivos de log en el árbol de fuentes
func testLogger(t *testing.T) *utils.ETLLogger {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	return utils.NewETLLogger(false)
}

func TestTransformEscenarioCompleto(t *testing.T) {
	hora := "07:00-08:30"
	raw := []models.RawRow{
		{
			NRC:       "12345",
			Clave:     "CB101",
			Materia:   "CALCULO DIFERENCIAL",
			Dias:      "LMV",
			Hora:      &hora,
			Profesor:  "GARCIA LOPEZ JUAN",
			Salon:     "1CCO4/203",
			OrigenPDF: "icc.pdf",
		},
	}

	data, err := NewTransformer(testLogger(t)).Transform(raw)
	require.NoError(t, err)

	// Una fila cruda con tres días produce tres hechos
	require.Len(t, data.Hechos, 3)
	assert.Equal(t, 1, data.Metadata.FilasExtraidas)
	assert.Equal(t, 3, data.Metadata.FilasCuradas)

	// Dimensiones: un docente, una materia, un espacio y tres franjas
	require.Len(t, data.Docentes, 1)
	assert.Equal(t, "Garcia Lopez Juan", data.Docentes[0].NombreCompleto)
	require.Len(t, data.Materias, 1)
	assert.Equal(t, "CB101", data.Materias[0].Clave)
	require.Len(t, data.Espacios, 1)
	assert.Equal(t, "1CCO4", data.Espacios[0].Edificio)
	assert.Equal(t, "203", data.Espacios[0].Aula)
	require.Len(t, data.Tiempos, 3)

	dias := []string{"Lunes", "Miercoles", "Viernes"}
	for i, tiempo := range data.Tiempos {
		assert.Equal(t, dias[i], tiempo.DiaSemana)
		h, _ := models.CoerceHora(tiempo.HoraInicio)
		require.NotNil(t, h)
		assert.Equal(t, "07:00", h.String())
	}

	// Cada hecho resuelve sus cuatro llaves y lleva la duración en minutos
	for _, h := range data.Hechos {
		require.NotNil(t, h.IDDocente)
		require.NotNil(t, h.IDMateria)
		require.NotNil(t, h.IDEspacio)
		require.NotNil(t, h.IDTiempo)
		assert.Equal(t, "LMV", h.Seccion)
		require.NotNil(t, h.DuracionMin)
		assert.Equal(t, 90, *h.DuracionMin)
	}
}

func TestTransformHoraAusente(t *testing.T) {
	raw := []models.RawRow{
		{NRC: "12345", Clave: "CB101", Materia: "CALCULO", Dias: "L",
			Profesor: "GARCIA LOPEZ JUAN", Salon: "1CCO4/203", OrigenPDF: "icc.pdf"},
	}

	data, err := NewTransformer(testLogger(t)).Transform(raw)
	require.NoError(t, err)

	require.Len(t, data.Hechos, 1)
	assert.Nil(t, data.Hechos[0].DuracionMin)
	require.Len(t, data.Tiempos, 1)
	assert.Nil(t, data.Tiempos[0].HoraInicio)
}

func TestTransformRangoNoInterpretable(t *testing.T) {
	hora := "basura"
	raw := []models.RawRow{
		{NRC: "12345", Clave: "CB101", Materia: "CALCULO", Dias: "L",
			Hora: &hora, Profesor: "GARCIA LOPEZ JUAN", Salon: "1CCO4/203"},
	}

	data, err := NewTransformer(testLogger(t)).Transform(raw)
	require.NoError(t, err)

	// Todo-o-nada: el hecho sale sin horas ni duración, pero sale
	require.Len(t, data.Hechos, 1)
	assert.Nil(t, data.Hechos[0].DuracionMin)
}
