package transform

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/acamposh/horarios_olap/ETL/models"
)

func ptr(s string) *string { return &s }

func TestBuildDocentesDeduplica(t *testing.T) {
	curated := []models.CuratedRow{
		{Profesor: ptr("Garcia Lopez Juan")},
		{Profesor: ptr("Perez Soto Ana")},
		{Profesor: ptr("Garcia Lopez Juan")},
		{Profesor: nil},
	}

	dim, ids := BuildDocentes(curated)
	require.Len(t, dim, 3)

	// Llaves densas desde 1, en orden de primera aparición
	assert.Equal(t, 1, dim[0].ID)
	assert.Equal(t, "Garcia Lopez Juan", dim[0].NombreCompleto)
	assert.Equal(t, 2, dim[1].ID)
	assert.Equal(t, "Perez Soto Ana", dim[1].NombreCompleto)
	assert.Equal(t, 3, dim[2].ID)
	assert.Equal(t, "", dim[2].NombreCompleto)

	assert.Equal(t, 1, ids["Garcia Lopez Juan"])
	assert.Equal(t, 3, ids[""])
}

func TestBuildMateriasIdentidadPorPar(t *testing.T) {
	curated := []models.CuratedRow{
		{Clave: "CB101", Materia: "Calculo"},
		{Clave: "CB101", Materia: "Calculo"},
		{Clave: "CB101", Materia: "Calculo Avanzado"},
	}

	dim, _ := BuildMaterias(curated)

	// La identidad es el par completo (clave, materia)
	require.Len(t, dim, 2)
	assert.Equal(t, "Calculo", dim[0].NombreMateria)
	assert.Equal(t, "Calculo Avanzado", dim[1].NombreMateria)
}

func TestBuildEspacios(t *testing.T) {
	curated := []models.CuratedRow{
		{Edificio: ptr("1CCO4"), Aula: ptr("203"), CodigoSalon: "1CCO4/203"},
		{Edificio: ptr("1CCO4"), Aula: ptr("203"), CodigoSalon: "1CCO4/203"},
		{Edificio: ptr("1CCO4"), Aula: ptr("204"), CodigoSalon: "1CCO4/204"},
	}

	dim, ids := BuildEspacios(curated)
	require.Len(t, dim, 2)
	assert.Equal(t, "1CCO4", dim[0].Edificio)
	assert.Equal(t, "203", dim[0].Aula)
	assert.Equal(t, 2, ids["1CCO4|204|1CCO4/204"])
}

func TestBuildTiemposDeduplica(t *testing.T) {
	inicio, _ := models.NewTimeOfDay(7, 0)
	fin, _ := models.NewTimeOfDay(8, 30)

	curated := []models.CuratedRow{
		{DiaCodigo: "L", DiaSemana: "Lunes", HInicio: &inicio, HFin: &fin},
		{DiaCodigo: "L", DiaSemana: "Lunes", HInicio: &inicio, HFin: &fin},
		{DiaCodigo: "M", DiaSemana: "Miercoles", HInicio: &inicio, HFin: &fin},
		{DiaCodigo: "L", DiaSemana: "Lunes"},
	}

	dim, _ := BuildTiempos(curated)
	require.Len(t, dim, 3)

	assert.Equal(t, "L", dim[0].DiaCodigo)
	assert.Equal(t, inicio, dim[0].HoraInicio)
	assert.Equal(t, fin, dim[0].HoraFin)

	// La misma franja sin horas es una entrada distinta
	assert.Equal(t, "L", dim[2].DiaCodigo)
	assert.Nil(t, dim[2].HoraInicio)
}

func TestBuildDimensionesIdempotente(t *testing.T) {
	curated := []models.CuratedRow{
		{Profesor: ptr("Garcia Lopez Juan"), Clave: "CB101", Materia: "Calculo"},
		{Profesor: ptr("Perez Soto Ana"), Clave: "CB102", Materia: "Algebra"},
	}

	dimA, idsA := BuildDocentes(curated)
	dimB, idsB := BuildDocentes(curated)
	assert.Equal(t, dimA, dimB)
	assert.Equal(t, idsA, idsB)
}
