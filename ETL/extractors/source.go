package extractors

import (
	"fmt"

	"github.com/tsawler/tabula"
	"github.com/tsawler/tabula/model"
	"github.com/tsawler/tabula/tables"
)

// Table es una tabla detectada en una página de un PDF, como matriz de
// celdas de texto. La primera fila suele ser el encabezado.
type Table struct {
	Page int        `json:"page"`
	Rows [][]string `json:"rows"`
}

// TableSource produce las tablas de un documento. Abstrae el backend de
// extracción para poder probar el extractor con tablas en memoria.
type TableSource interface {
	Tables(path string) ([]Table, error)
}

// TabulaSource es el TableSource de producción, respaldado por el
// detector geométrico de tabula.
type TabulaSource struct {
	detector tables.Detector
}

// NewTabulaSource crea un TabulaSource con el detector configurado para
// tablas de horario (mínimo encabezado más una fila de datos)
func NewTabulaSource() *TabulaSource {
	detector := tables.GetDetector("geometric")

	cfg := tables.DefaultConfig()
	cfg.MinRows = 2
	cfg.UseLines = true
	cfg.UseWhitespace = true
	if err := detector.Configure(cfg); err != nil {
		panic(fmt.Sprintf("configuración del detector de tablas: %v", err))
	}

	return &TabulaSource{detector: detector}
}

// Tables abre el PDF y devuelve todas las tablas detectadas por página.
// Document es una operación terminal que cierra el lector por sí sola.
func (s *TabulaSource) Tables(path string) ([]Table, error) {
	doc, _, err := tabula.Open(path).Document()
	if err != nil {
		return nil, fmt.Errorf("error al abrir el PDF %s: %w", path, err)
	}

	var out []Table
	for i, page := range doc.Pages {
		detected, err := s.detector.Detect(page)
		if err != nil {
			return nil, fmt.Errorf("error al detectar tablas en la página %d de %s: %w", i+1, path, err)
		}
		for _, t := range detected {
			out = append(out, Table{Page: i + 1, Rows: matriz(t)})
		}
	}

	return out, nil
}

// matriz aplana las celdas detectadas a la matriz de texto con que
// trabaja el resto del extractor
func matriz(t *model.Table) [][]string {
	rows := make([][]string, len(t.Rows))
	for i, fila := range t.Rows {
		rows[i] = make([]string, len(fila))
		for j, celda := range fila {
			rows[i][j] = celda.Text
		}
	}
	return rows
}
