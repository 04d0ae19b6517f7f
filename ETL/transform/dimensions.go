package transform

import (
	"strings"

	"github.com/acamposh/horarios_olap/ETL/models"
)

// Las dimensiones se construyen deduplicando la proyección de columnas
// que identifica a cada entidad. Las llaves subrogadas son enteros
// densos desde 1, en orden de primera aparición.
//
// Cada constructor devuelve, además de la tabla, el mapa de llave
// compuesta a ID que el ensamblador de hechos usa para resolver las
// llaves foráneas (garantiza resolución muchos-a-uno).

// claveCompuesta arma la llave de deduplicación a partir de las
// columnas identificadoras, comparadas como cadenas
func claveCompuesta(partes ...string) string {
	return strings.Join(partes, "|")
}

func textoOpcional(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func horaClave(v any) string {
	h, _ := models.CoerceHora(v)
	if h == nil {
		return ""
	}
	return h.String()
}

// BuildDocentes construye la dimensión de docentes, identificada por el
// nombre normalizado del profesor
func BuildDocentes(curated []models.CuratedRow) ([]models.DocenteDimension, map[string]int) {
	var dim []models.DocenteDimension
	ids := make(map[string]int)

	for _, fila := range curated {
		clave := textoOpcional(fila.Profesor)
		if _, visto := ids[clave]; visto {
			continue
		}
		ids[clave] = len(dim) + 1
		dim = append(dim, models.DocenteDimension{
			ID:             len(dim) + 1,
			NombreCompleto: clave,
		})
	}

	return dim, ids
}

// BuildMaterias construye la dimensión de materias, identificada por el
// par (clave, materia)
func BuildMaterias(curated []models.CuratedRow) ([]models.MateriaDimension, map[string]int) {
	var dim []models.MateriaDimension
	ids := make(map[string]int)

	for _, fila := range curated {
		clave := claveCompuesta(fila.Clave, fila.Materia)
		if _, visto := ids[clave]; visto {
			continue
		}
		ids[clave] = len(dim) + 1
		dim = append(dim, models.MateriaDimension{
			ID:            len(dim) + 1,
			Clave:         fila.Clave,
			NombreMateria: fila.Materia,
		})
	}

	return dim, ids
}

// BuildEspacios construye la dimensión de espacios, identificada por
// (edificio, aula, código de salón)
func BuildEspacios(curated []models.CuratedRow) ([]models.EspacioDimension, map[string]int) {
	var dim []models.EspacioDimension
	ids := make(map[string]int)

	for _, fila := range curated {
		edificio := textoOpcional(fila.Edificio)
		aula := textoOpcional(fila.Aula)
		clave := claveCompuesta(edificio, aula, fila.CodigoSalon)
		if _, visto := ids[clave]; visto {
			continue
		}
		ids[clave] = len(dim) + 1
		dim = append(dim, models.EspacioDimension{
			ID:          len(dim) + 1,
			Edificio:    edificio,
			Aula:        aula,
			CodigoSalon: fila.CodigoSalon,
		})
	}

	return dim, ids
}

// BuildTiempos construye la dimensión de tiempo, identificada por
// (día código, día semana, hora inicio, hora fin)
func BuildTiempos(curated []models.CuratedRow) ([]models.TiempoDimension, map[string]int) {
	var dim []models.TiempoDimension
	ids := make(map[string]int)

	for _, fila := range curated {
		clave := claveTiempo(fila)
		if _, visto := ids[clave]; visto {
			continue
		}
		ids[clave] = len(dim) + 1

		t := models.TiempoDimension{
			ID:        len(dim) + 1,
			DiaCodigo: fila.DiaCodigo,
			DiaSemana: fila.DiaSemana,
		}
		if fila.HInicio != nil {
			t.HoraInicio = *fila.HInicio
		}
		if fila.HFin != nil {
			t.HoraFin = *fila.HFin
		}
		dim = append(dim, t)
	}

	return dim, ids
}

// claveTiempo es la llave de unión hacia la dimensión de tiempo; la
// comparten el constructor de la dimensión y el ensamblador de hechos
func claveTiempo(fila models.CuratedRow) string {
	return claveCompuesta(fila.DiaCodigo, fila.DiaSemana,
		horaClave(fila.HInicio), horaClave(fila.HFin))
}
