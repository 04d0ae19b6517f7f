package cube

import (
	"database/sql"
	"time"

	"github.com/acamposh/horarios_olap/ETL/models"
	"github.com/acamposh/horarios_olap/database"
)

// BuildFromDB lee el esquema estrella de MySQL y construye un snapshot
// nuevo del cubo
func BuildFromDB(db *sql.DB) (*Cube, error) {
	tablas, err := database.LeerTablas(db)
	if err != nil {
		return nil, err
	}
	return Build(tablas), nil
}

// Build arma la vista desnormalizada: cada hecho se une por left join
// contra las cuatro dimensiones por su llave subrogada. Cada hecho
// produce exactamente una fila, haya o no correspondencia en cada
// dimensión.
func Build(t *database.Tablas) *Cube {
	docentes := make(map[int]models.DocenteDimension, len(t.Docentes))
	for _, d := range t.Docentes {
		docentes[d.ID] = d
	}
	materias := make(map[int]models.MateriaDimension, len(t.Materias))
	for _, m := range t.Materias {
		materias[m.ID] = m
	}
	espacios := make(map[int]models.EspacioDimension, len(t.Espacios))
	for _, e := range t.Espacios {
		espacios[e.ID] = e
	}
	tiempos := make(map[int]models.TiempoDimension, len(t.Tiempos))
	for _, ti := range t.Tiempos {
		tiempos[ti.ID] = ti
	}

	rows := make([]Row, 0, len(t.Hechos))
	for _, h := range t.Hechos {
		fila := Row{
			IDHecho:     h.ID,
			NRC:         texto(h.NRC),
			Clave:       texto(h.Clave),
			Seccion:     texto(h.Seccion),
			DuracionMin: h.DuracionMin,
		}

		if h.IDDocente != nil {
			if d, ok := docentes[*h.IDDocente]; ok {
				fila.NombreCompleto = texto(d.NombreCompleto)
			}
		}

		if h.IDMateria != nil {
			if m, ok := materias[*h.IDMateria]; ok {
				fila.NombreMateria = texto(m.NombreMateria)
				// La columna clave existe en el hecho y en la dimensión;
				// gana la de la dimensión y el hecho queda de respaldo
				if clave := texto(m.Clave); clave != "" {
					fila.Clave = clave
				}
			}
		}

		if h.IDEspacio != nil {
			if e, ok := espacios[*h.IDEspacio]; ok {
				fila.Edificio = texto(e.Edificio)
				fila.Aula = texto(e.Aula)
				fila.CodigoSalon = texto(e.CodigoSalon)
			}
		}

		if h.IDTiempo != nil {
			if ti, ok := tiempos[*h.IDTiempo]; ok {
				fila.DiaCodigo = texto(ti.DiaCodigo)
				fila.DiaSemana = texto(ti.DiaSemana)
				// Las horas llegan en la forma en que las dejó el origen
				// (canónica, texto de MySQL o time.Time); aquí se canonizan
				fila.HInicio, _ = models.CoerceHora(ti.HoraInicio)
				fila.HFin, _ = models.CoerceHora(ti.HoraFin)
			}
		}

		// Duración derivada de las horas solo si el hecho no la trae
		if fila.DuracionMin == nil && fila.HInicio != nil && fila.HFin != nil {
			if d := fila.HFin.Minutes() - fila.HInicio.Minutes(); d > 0 {
				fila.DuracionMin = &d
			}
		}

		rows = append(rows, fila)
	}

	return &Cube{
		Rows:     rows,
		Docentes: t.Docentes,
		Materias: t.Materias,
		Espacios: t.Espacios,
		Tiempos:  t.Tiempos,
		BuiltAt:  time.Now(),
	}
}

// texto limpia los centinelas de ausencia que pudieran volver de la base
func texto(s string) string {
	if models.EsSentinelaNula(s) {
		return ""
	}
	return s
}
