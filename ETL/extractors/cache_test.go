package extractors

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCachedSourceReutilizaTablas(t *testing.T) {
	pdf := filepath.Join(crearPDFs(t, "icc.pdf"), "icc.pdf")
	tablas := []Table{{Page: 1, Rows: [][]string{{"NRC"}, {"12345"}}}}
	source := &fakeSource{tablas: map[string][]Table{"icc.pdf": tablas}}

	cached := NewCachedSource(source, t.TempDir(), testLogger(t))

	primera, err := cached.Tables(pdf)
	require.NoError(t, err)
	assert.Equal(t, tablas, primera)
	assert.Equal(t, 1, source.calls)

	// La segunda lectura sale del caché sin tocar la fuente
	segunda, err := cached.Tables(pdf)
	require.NoError(t, err)
	assert.Equal(t, tablas, segunda)
	assert.Equal(t, 1, source.calls)
}

func TestCachedSourceInvalidaPorModificacion(t *testing.T) {
	pdf := filepath.Join(crearPDFs(t, "icc.pdf"), "icc.pdf")
	source := &fakeSource{tablas: map[string][]Table{
		"icc.pdf": {{Page: 1, Rows: [][]string{{"NRC"}}}},
	}}

	cached := NewCachedSource(source, t.TempDir(), testLogger(t))

	_, err := cached.Tables(pdf)
	require.NoError(t, err)
	require.Equal(t, 1, source.calls)

	// Cambiar la fecha de modificación del PDF invalida la entrada
	nueva := time.Now().Add(time.Hour)
	require.NoError(t, os.Chtimes(pdf, nueva, nueva))

	_, err = cached.Tables(pdf)
	require.NoError(t, err)
	assert.Equal(t, 2, source.calls)
}

func TestCachedSourceSinCarpetaDelega(t *testing.T) {
	pdf := filepath.Join(crearPDFs(t, "icc.pdf"), "icc.pdf")
	source := &fakeSource{tablas: map[string][]Table{
		"icc.pdf": {{Page: 1, Rows: [][]string{{"NRC"}}}},
	}}

	// Carpeta vacía desactiva el caché por completo
	cached := NewCachedSource(source, "", testLogger(t))

	_, err := cached.Tables(pdf)
	require.NoError(t, err)
	_, err = cached.Tables(pdf)
	require.NoError(t, err)
	assert.Equal(t, 2, source.calls)
}
