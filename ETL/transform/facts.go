package transform

import (
	"github.com/acamposh/horarios_olap/ETL/models"
)

// FactKeyMaps agrupa los mapas llave→ID de las cuatro dimensiones
type FactKeyMaps struct {
	Docentes map[string]int
	Materias map[string]int
	Espacios map[string]int
	Tiempos  map[string]int
}

// BuildHechos ensambla la tabla de hechos: por cada fila curada resuelve
// las llaves subrogadas de sus dimensiones por coincidencia exacta sobre
// las mismas columnas con que se construyó cada dimensión.
//
// Una fila cuya llave no aparece en una dimensión lleva esa llave
// foránea ausente; la fila se emite de todos modos.
func BuildHechos(curated []models.CuratedRow, keys FactKeyMaps) []models.HorarioFact {
	hechos := make([]models.HorarioFact, 0, len(curated))

	for _, fila := range curated {
		h := models.HorarioFact{
			IDDocente: buscarID(keys.Docentes, textoOpcional(fila.Profesor)),
			IDMateria: buscarID(keys.Materias, claveCompuesta(fila.Clave, fila.Materia)),
			IDEspacio: buscarID(keys.Espacios, claveCompuesta(
				textoOpcional(fila.Edificio), textoOpcional(fila.Aula), fila.CodigoSalon)),
			IDTiempo:    buscarID(keys.Tiempos, claveTiempo(fila)),
			NRC:         fila.NRC,
			Clave:       fila.Clave,
			Seccion:     fila.Dias,
			DuracionMin: fila.DuracionMin,
		}
		hechos = append(hechos, h)
	}

	return hechos
}

// buscarID devuelve el ID de dimensión para una llave, o ausente si la
// llave no tiene correspondencia
func buscarID(ids map[string]int, clave string) *int {
	if id, ok := ids[clave]; ok {
		return &id
	}
	return nil
}
