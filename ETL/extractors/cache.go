package extractors

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/golang/snappy"

	"github.com/acamposh/horarios_olap/ETL/utils"
)

// cacheEntry es lo que se serializa por PDF: las tablas detectadas y la
// fecha de modificación del archivo al momento de extraerlas
type cacheEntry struct {
	ModTime int64   `json:"mod_time"`
	Tables  []Table `json:"tables"`
}

// CachedSource envuelve un TableSource con un caché en disco comprimido
// con snappy. Detectar tablas en un PDF es costoso; los programas
// académicos casi nunca cambian entre corridas.
type CachedSource struct {
	source TableSource
	dir    string
	logger *utils.ETLLogger
}

// NewCachedSource crea el caché sobre la fuente dada. Si dir está vacío
// el caché queda desactivado y se delega directo a la fuente.
func NewCachedSource(source TableSource, dir string, logger *utils.ETLLogger) *CachedSource {
	return &CachedSource{source: source, dir: dir, logger: logger}
}

// Tables devuelve las tablas del caché si siguen vigentes; si no,
// extrae con la fuente real y guarda el resultado
func (c *CachedSource) Tables(path string) ([]Table, error) {
	if c.dir == "" {
		return c.source.Tables(path)
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}

	if tablas, ok := c.leer(path, info.ModTime().Unix()); ok {
		c.logger.Debug("Tablas de %s tomadas del caché", filepath.Base(path))
		return tablas, nil
	}

	tablas, err := c.source.Tables(path)
	if err != nil {
		return nil, err
	}

	if err := c.guardar(path, info.ModTime().Unix(), tablas); err != nil {
		// El caché es solo una optimización; si falla seguimos sin él
		c.logger.Warn("No se pudo guardar el caché de %s: %v", filepath.Base(path), err)
	}

	return tablas, nil
}

func (c *CachedSource) rutaCache(path string) string {
	return filepath.Join(c.dir, filepath.Base(path)+".tablas.snappy")
}

func (c *CachedSource) leer(path string, modTime int64) ([]Table, bool) {
	comprimido, err := os.ReadFile(c.rutaCache(path))
	if err != nil {
		return nil, false
	}

	datos, err := snappy.Decode(nil, comprimido)
	if err != nil {
		return nil, false
	}

	var entry cacheEntry
	if err := json.Unmarshal(datos, &entry); err != nil {
		return nil, false
	}

	// El PDF cambió desde que se llenó el caché
	if entry.ModTime != modTime {
		return nil, false
	}

	return entry.Tables, true
}

func (c *CachedSource) guardar(path string, modTime int64, tablas []Table) error {
	if err := os.MkdirAll(c.dir, 0755); err != nil {
		return fmt.Errorf("error al crear la carpeta del caché: %w", err)
	}

	datos, err := json.Marshal(cacheEntry{ModTime: modTime, Tables: tablas})
	if err != nil {
		return fmt.Errorf("error al serializar las tablas: %w", err)
	}

	return os.WriteFile(c.rutaCache(path), snappy.Encode(nil, datos), 0644)
}
