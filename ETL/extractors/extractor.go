package extractors

import (
	"errors"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/acamposh/horarios_olap/ETL/models"
	"github.com/acamposh/horarios_olap/ETL/utils"
)

// ErrSinDatos indica que ningún PDF produjo filas de horario. Sin datos
// no hay dimensiones ni hechos que construir, así que el pipeline aborta.
var ErrSinDatos = errors.New("extracción sin datos: ningún PDF produjo filas de horario")

// Extractor recorre los PDF de programas académicos y emite las filas
// crudas de las tablas de horario
type Extractor struct {
	source TableSource
	logger *utils.ETLLogger
	pdfDir string
}

// NewExtractor crea un nuevo Extractor sobre la carpeta de PDF dada
func NewExtractor(source TableSource, logger *utils.ETLLogger, pdfDir string) *Extractor {
	return &Extractor{
		source: source,
		logger: logger,
		pdfDir: pdfDir,
	}
}

// Extract procesa todos los PDF de la carpeta y concatena sus filas.
// Un PDF ilegible se salta con una advertencia; que ningún PDF aporte
// datos es fatal (ErrSinDatos).
func (e *Extractor) Extract() ([]models.RawRow, error) {
	startTime := time.Now()
	e.logger.Info("Inicio de la fase Extract (PDF en %s)", e.pdfDir)

	pdfs, err := filepath.Glob(filepath.Join(e.pdfDir, "*.pdf"))
	if err != nil {
		return nil, err
	}
	sort.Strings(pdfs)

	if len(pdfs) == 0 {
		e.logger.Error("No hay archivos PDF en %s", e.pdfDir)
		return nil, ErrSinDatos
	}

	var rows []models.RawRow
	procesados := 0
	for _, pdf := range pdfs {
		filas, err := e.extractPDF(pdf)
		if err != nil {
			e.logger.Warn("No se pudieron extraer tablas de %s, se omite: %v", pdf, err)
			continue
		}

		if len(filas) == 0 {
			e.logger.Warn("Ninguna tabla de horario en %s", pdf)
			continue
		}

		e.logger.Debug("%s: %d filas", filepath.Base(pdf), len(filas))
		rows = append(rows, filas...)
		procesados++
	}

	if len(rows) == 0 {
		return nil, ErrSinDatos
	}

	e.logger.LogExtractComplete(procesados, len(rows), time.Since(startTime))
	return rows, nil
}

// extractPDF extrae las filas de horario de un solo PDF
func (e *Extractor) extractPDF(path string) ([]models.RawRow, error) {
	tablas, err := e.source.Tables(path)
	if err != nil {
		return nil, err
	}

	origen := filepath.Base(path)
	var rows []models.RawRow
	for _, t := range tablas {
		// Encabezado más al menos una fila de datos
		if len(t.Rows) < 2 {
			continue
		}

		header := normalizeHeader(t.Rows[0])
		if !isScheduleHeader(header) {
			continue
		}

		for _, celdas := range t.Rows[1:] {
			if filaVacia(celdas) {
				continue
			}
			rows = append(rows, zipRow(header, celdas, origen))
		}
	}

	return rows, nil
}

// filaVacia indica si una fila no tiene ninguna celda con contenido
func filaVacia(celdas []string) bool {
	for _, c := range celdas {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

// zipRow empareja las celdas de una fila con el encabezado y arma la
// fila cruda tipada
func zipRow(header []string, celdas []string, origen string) models.RawRow {
	celda := func(idx int) string {
		if idx < 0 || idx >= len(celdas) {
			return ""
		}
		return strings.TrimSpace(celdas[idx])
	}

	row := models.RawRow{
		NRC:       celda(indexOfColumn(header, "nrc")),
		Clave:     celda(indexOfColumn(header, "clave")),
		Materia:   celda(indexOfColumn(header, "materia")),
		Dias:      celda(indexOfColumn(header, "días")),
		Profesor:  celda(indexOfColumn(header, "profesor")),
		Salon:     celda(indexOfColumn(header, "salón")),
		OrigenPDF: origen,
	}

	if idx := resolveHoraIndex(header); idx >= 0 {
		hora := celda(idx)
		row.Hora = &hora
	}

	return row
}
