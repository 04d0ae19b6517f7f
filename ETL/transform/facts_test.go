package transform

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/acamposh/horarios_olap/ETL/models"
)

func TestBuildHechosResuelveLlaves(t *testing.T) {
	inicio, _ := models.NewTimeOfDay(7, 0)
	fin, _ := models.NewTimeOfDay(8, 30)
	duracion := 90

	curated := []models.CuratedRow{
		{
			NRC:         "12345",
			Clave:       "CB101",
			Materia:     "Calculo",
			Dias:        "LMV",
			Profesor:    ptr("Garcia Lopez Juan"),
			HInicio:     &inicio,
			HFin:        &fin,
			DuracionMin: &duracion,
			DiaCodigo:   "L",
			DiaSemana:   "Lunes",
			Edificio:    ptr("1CCO4"),
			Aula:        ptr("203"),
			CodigoSalon: "1CCO4/203",
		},
	}

	_, idsDocente := BuildDocentes(curated)
	_, idsMateria := BuildMaterias(curated)
	_, idsEspacio := BuildEspacios(curated)
	_, idsTiempo := BuildTiempos(curated)

	hechos := BuildHechos(curated, FactKeyMaps{
		Docentes: idsDocente,
		Materias: idsMateria,
		Espacios: idsEspacio,
		Tiempos:  idsTiempo,
	})

	require.Len(t, hechos, 1)
	h := hechos[0]

	require.NotNil(t, h.IDDocente)
	require.NotNil(t, h.IDMateria)
	require.NotNil(t, h.IDEspacio)
	require.NotNil(t, h.IDTiempo)
	assert.Equal(t, 1, *h.IDDocente)
	assert.Equal(t, 1, *h.IDMateria)
	assert.Equal(t, 1, *h.IDEspacio)
	assert.Equal(t, 1, *h.IDTiempo)

	assert.Equal(t, "12345", h.NRC)
	assert.Equal(t, "CB101", h.Clave)
	assert.Equal(t, "LMV", h.Seccion)
	require.NotNil(t, h.DuracionMin)
	assert.Equal(t, 90, *h.DuracionMin)
}

func TestBuildHechosLlaveSinCorrespondencia(t *testing.T) {
	curated := []models.CuratedRow{
		{NRC: "12345", Profesor: ptr("Garcia Lopez Juan")},
	}

	// Mapas vacíos: ninguna llave resuelve, pero la fila se emite igual
	hechos := BuildHechos(curated, FactKeyMaps{
		Docentes: map[string]int{},
		Materias: map[string]int{},
		Espacios: map[string]int{},
		Tiempos:  map[string]int{},
	})

	require.Len(t, hechos, 1)
	assert.Nil(t, hechos[0].IDDocente)
	assert.Nil(t, hechos[0].IDMateria)
	assert.Nil(t, hechos[0].IDEspacio)
	assert.Nil(t, hechos[0].IDTiempo)
	assert.Equal(t, "12345", hechos[0].NRC)
}

func TestBuildHechosMuchosAUno(t *testing.T) {
	curated := []models.CuratedRow{
		{NRC: "111", Profesor: ptr("Garcia Lopez Juan")},
		{NRC: "222", Profesor: ptr("Garcia Lopez Juan")},
	}

	_, idsDocente := BuildDocentes(curated)
	hechos := BuildHechos(curated, FactKeyMaps{
		Docentes: idsDocente,
		Materias: map[string]int{},
		Espacios: map[string]int{},
		Tiempos:  map[string]int{},
	})

	require.Len(t, hechos, 2)
	require.NotNil(t, hechos[0].IDDocente)
	require.NotNil(t, hechos[1].IDDocente)
	assert.Equal(t, *hechos[0].IDDocente, *hechos[1].IDDocente)
}
