package transform

import (
	"time"

	"github.com/acamposh/horarios_olap/ETL/models"
	"github.com/acamposh/horarios_olap/ETL/utils"
)

// Transformer coordina la fase Transform: normalización por campo,
// explosión por día, construcción de dimensiones y ensamble de hechos
type Transformer struct {
	logger *utils.ETLLogger
}

// NewTransformer crea un nuevo Transformer
func NewTransformer(logger *utils.ETLLogger) *Transformer {
	return &Transformer{logger: logger}
}

// Transform convierte las filas crudas en el esquema estrella completo
func (t *Transformer) Transform(raw []models.RawRow) (*models.TransformedData, error) {
	startTime := time.Now()
	t.logger.Info("Inicio de la fase Transform (%d filas crudas)", len(raw))

	// 1. Normalización por campo y explosión por día
	var curated []models.CuratedRow
	for _, fila := range raw {
		curated = append(curated, t.curate(fila)...)
	}
	t.logger.Info("Filas curadas tras la explosión por día: %d", len(curated))

	// 2. Dimensiones
	docentes, idsDocente := BuildDocentes(curated)
	materias, idsMateria := BuildMaterias(curated)
	espacios, idsEspacio := BuildEspacios(curated)
	tiempos, idsTiempo := BuildTiempos(curated)
	t.logger.Info("Dimensiones: %d docentes, %d materias, %d espacios, %d tiempos",
		len(docentes), len(materias), len(espacios), len(tiempos))

	// 3. Hechos
	hechos := BuildHechos(curated, FactKeyMaps{
		Docentes: idsDocente,
		Materias: idsMateria,
		Espacios: idsEspacio,
		Tiempos:  idsTiempo,
	})

	data := &models.TransformedData{
		Docentes: docentes,
		Materias: materias,
		Espacios: espacios,
		Tiempos:  tiempos,
		Hechos:   hechos,
		Metadata: models.ETLMetadata{
			LastRunTimestamp: time.Now(),
			FilasExtraidas:   len(raw),
			FilasCuradas:     len(curated),
			HechosGenerados:  len(hechos),
		},
	}

	t.logger.Info("Fase Transform terminada. Duración: %v", time.Since(startTime))
	return data, nil
}

// curate normaliza una fila cruda y la explota en una fila por día
func (t *Transformer) curate(raw models.RawRow) []models.CuratedRow {
	base := models.CuratedRow{
		NRC:       raw.NRC,
		Clave:     raw.Clave,
		Materia:   raw.Materia,
		Dias:      raw.Dias,
		Profesor:  NormalizeProfesor(raw.Profesor),
		OrigenPDF: raw.OrigenPDF,
	}

	// Rango horario: todo-o-nada; la columna puede venir ausente
	if raw.Hora != nil {
		base.HInicio, base.HFin, base.DuracionMin = ParseHoraRange(*raw.Hora)
	}

	base.Edificio, base.Aula, base.CodigoSalon = SplitSalon(raw.Salon)

	return ExpandDias(base)
}
