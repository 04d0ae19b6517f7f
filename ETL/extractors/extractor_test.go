package extractors

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

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

// fakeSource sirve tablas predefinidas por nombre de archivo
type fakeSource struct {
	tablas map[string][]Table
	fallos map[string]error
	calls  int
}

func (f *fakeSource) Tables(path string) ([]Table, error) {
	f.calls++
	base := filepath.Base(path)
	if err, ok := f.fallos[base]; ok {
		return nil, err
	}
	return f.tablas[base], nil
}

// crearPDFs deja archivos vacíos con extensión .pdf en una carpeta nueva
func crearPDFs(t *testing.T, nombres ...string) string {
	t.Helper()
	dir := t.TempDir()
	for _, n := range nombres {
		require.NoError(t, os.WriteFile(filepath.Join(dir, n), []byte("%PDF"), 0644))
	}
	return dir
}

var encabezadoHorario = []string{"NRC", "Clave", "Materia", "Días", "Hora", "Profesor", "Salón"}

func TestExtractTablaDeHorario(t *testing.T) {
	dir := crearPDFs(t, "icc.pdf")
	source := &fakeSource{tablas: map[string][]Table{
		"icc.pdf": {{Page: 1, Rows: [][]string{
			encabezadoHorario,
			{"12345", "CB101", "CALCULO", "LMV", "07:00-08:30", "GARCIA LOPEZ JUAN", "1CCO4/203"},
			{"", "", "", "", "", "", ""},
			{"12346", "CB102", "ALGEBRA", "AJ", "09:00-10:30", "PEREZ SOTO ANA", "1CCO4/204"},
		}}},
	}}

	rows, err := NewExtractor(source, testLogger(t), dir).Extract()
	require.NoError(t, err)

	// La fila vacía se descarta
	require.Len(t, rows, 2)

	assert.Equal(t, "12345", rows[0].NRC)
	assert.Equal(t, "CB101", rows[0].Clave)
	assert.Equal(t, "CALCULO", rows[0].Materia)
	assert.Equal(t, "LMV", rows[0].Dias)
	require.NotNil(t, rows[0].Hora)
	assert.Equal(t, "07:00-08:30", *rows[0].Hora)
	assert.Equal(t, "GARCIA LOPEZ JUAN", rows[0].Profesor)
	assert.Equal(t, "1CCO4/203", rows[0].Salon)
	assert.Equal(t, "icc.pdf", rows[0].OrigenPDF)
}

func TestExtractEncabezadoSinAcentos(t *testing.T) {
	dir := crearPDFs(t, "lcc.pdf")
	source := &fakeSource{tablas: map[string][]Table{
		"lcc.pdf": {{Page: 1, Rows: [][]string{
			{"nrc", "clave", "materia", "dias", "hora", "profesor", "salon"},
			{"11111", "CB103", "FISICA", "V", "11:00-12:30", "LOPEZ RUIZ EVA", "2CCO1/101"},
		}}},
	}}

	rows, err := NewExtractor(source, testLogger(t), dir).Extract()
	require.NoError(t, err)

	// "dias"/"salon" sin acento se aceptan igual que "días"/"salón"
	require.Len(t, rows, 1)
	assert.Equal(t, "V", rows[0].Dias)
	assert.Equal(t, "2CCO1/101", rows[0].Salon)
}

func TestExtractAliasDeHora(t *testing.T) {
	dir := crearPDFs(t, "icc.pdf")
	source := &fakeSource{tablas: map[string][]Table{
		"icc.pdf": {{Page: 1, Rows: [][]string{
			{"NRC", "Clave", "Materia", "Días", "Horario", "Profesor", "Salón"},
			{"12345", "CB101", "CALCULO", "L", "07:00-08:30", "GARCIA LOPEZ JUAN", "1CCO4/203"},
		}}},
	}}

	rows, err := NewExtractor(source, testLogger(t), dir).Extract()
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.NotNil(t, rows[0].Hora)
	assert.Equal(t, "07:00-08:30", *rows[0].Hora)
}

func TestExtractSinColumnaDeHora(t *testing.T) {
	dir := crearPDFs(t, "icc.pdf")
	source := &fakeSource{tablas: map[string][]Table{
		"icc.pdf": {{Page: 1, Rows: [][]string{
			{"NRC", "Clave", "Materia", "Días", "Profesor", "Salón"},
			{"12345", "CB101", "CALCULO", "L", "GARCIA LOPEZ JUAN", "1CCO4/203"},
		}}},
	}}

	rows, err := NewExtractor(source, testLogger(t), dir).Extract()
	require.NoError(t, err)

	// Sin ningún alias presente la tabla se acepta y la hora queda ausente
	require.Len(t, rows, 1)
	assert.Nil(t, rows[0].Hora)
}

func TestExtractDescartaTablasAjenas(t *testing.T) {
	dir := crearPDFs(t, "icc.pdf")
	source := &fakeSource{tablas: map[string][]Table{
		"icc.pdf": {
			{Page: 1, Rows: [][]string{
				{"PROGRAMA ACADEMICO DE INGENIERIA"},
				{"PERIODO 2025"},
			}},
			{Page: 1, Rows: [][]string{encabezadoHorario}},
			{Page: 2, Rows: [][]string{
				encabezadoHorario,
				{"12345", "CB101", "CALCULO", "L", "07:00-08:30", "GARCIA LOPEZ JUAN", "1CCO4/203"},
			}},
		},
	}}

	rows, err := NewExtractor(source, testLogger(t), dir).Extract()
	require.NoError(t, err)

	// El bloque de título y la tabla sin filas de datos quedan fuera
	require.Len(t, rows, 1)
}

func TestExtractPDFIlegibleSeOmite(t *testing.T) {
	dir := crearPDFs(t, "malo.pdf", "bueno.pdf")
	source := &fakeSource{
		tablas: map[string][]Table{
			"bueno.pdf": {{Page: 1, Rows: [][]string{
				encabezadoHorario,
				{"12345", "CB101", "CALCULO", "L", "07:00-08:30", "GARCIA LOPEZ JUAN", "1CCO4/203"},
			}}},
		},
		fallos: map[string]error{"malo.pdf": errors.New("pdf corrupto")},
	}

	rows, err := NewExtractor(source, testLogger(t), dir).Extract()
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "bueno.pdf", rows[0].OrigenPDF)
}

func TestExtractSinDatosEsFatal(t *testing.T) {
	t.Run("carpeta sin pdfs", func(t *testing.T) {
		_, err := NewExtractor(&fakeSource{}, testLogger(t), t.TempDir()).Extract()
		assert.ErrorIs(t, err, ErrSinDatos)
	})

	t.Run("pdfs sin tablas de horario", func(t *testing.T) {
		dir := crearPDFs(t, "icc.pdf")
		source := &fakeSource{tablas: map[string][]Table{
			"icc.pdf": {{Page: 1, Rows: [][]string{{"SOLO TITULO"}, {"SIN TABLA"}}}},
		}}
		_, err := NewExtractor(source, testLogger(t), dir).Extract()
		assert.ErrorIs(t, err, ErrSinDatos)
	})
}
