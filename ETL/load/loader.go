package load

import (
	"database/sql"
	"fmt"

	"github.com/acamposh/horarios_olap/ETL/models"
	"github.com/acamposh/horarios_olap/ETL/utils"
)

// Loader define la carga de cada tabla del esquema estrella.
// Cada tabla se inserta como lote todo-o-nada.
type Loader interface {
	// LoadDocentes carga la dimensión de docentes
	LoadDocentes(docentes []models.DocenteDimension) error

	// LoadMaterias carga la dimensión de materias
	LoadMaterias(materias []models.MateriaDimension) error

	// LoadEspacios carga la dimensión de espacios
	LoadEspacios(espacios []models.EspacioDimension) error

	// LoadTiempos carga la dimensión de tiempo
	LoadTiempos(tiempos []models.TiempoDimension) error

	// LoadHechos carga la tabla de hechos
	LoadHechos(hechos []models.HorarioFact) error
}

// MySQLLoader implementa Loader sobre la base de datos de horarios
type MySQLLoader struct {
	db     *sql.DB
	logger *utils.ETLLogger
}

// NewMySQLLoader crea un nuevo MySQLLoader
func NewMySQLLoader(db *sql.DB, logger *utils.ETLLogger) *MySQLLoader {
	return &MySQLLoader{db: db, logger: logger}
}

// LoadDocentes carga la dimensión de docentes
func (l *MySQLLoader) LoadDocentes(docentes []models.DocenteDimension) error {
	return l.insertarLote("dim_docente",
		"INSERT INTO dim_docente (id_docente, nombre_completo) VALUES (?, ?)",
		len(docentes),
		func(i int) []any {
			d := docentes[i]
			return []any{d.ID, nullTexto(d.NombreCompleto)}
		})
}

// LoadMaterias carga la dimensión de materias
func (l *MySQLLoader) LoadMaterias(materias []models.MateriaDimension) error {
	return l.insertarLote("dim_materia",
		"INSERT INTO dim_materia (id_materia, clave, nombre_materia) VALUES (?, ?, ?)",
		len(materias),
		func(i int) []any {
			m := materias[i]
			return []any{m.ID, nullTexto(m.Clave), nullTexto(m.NombreMateria)}
		})
}

// LoadEspacios carga la dimensión de espacios
func (l *MySQLLoader) LoadEspacios(espacios []models.EspacioDimension) error {
	return l.insertarLote("dim_espacio",
		"INSERT INTO dim_espacio (id_espacio, edificio, aula, codigo_salon) VALUES (?, ?, ?, ?)",
		len(espacios),
		func(i int) []any {
			e := espacios[i]
			return []any{e.ID, nullTexto(e.Edificio), nullTexto(e.Aula), nullTexto(e.CodigoSalon)}
		})
}

// LoadTiempos carga la dimensión de tiempo
func (l *MySQLLoader) LoadTiempos(tiempos []models.TiempoDimension) error {
	return l.insertarLote("dim_tiempo",
		"INSERT INTO dim_tiempo (id_tiempo, dia_codigo, dia_semana, hora_inicio, hora_fin) VALUES (?, ?, ?, ?, ?)",
		len(tiempos),
		func(i int) []any {
			t := tiempos[i]
			return []any{t.ID, nullTexto(t.DiaCodigo), nullTexto(t.DiaSemana),
				nullHora(t.HoraInicio), nullHora(t.HoraFin)}
		})
}

// LoadHechos carga la tabla de hechos
func (l *MySQLLoader) LoadHechos(hechos []models.HorarioFact) error {
	return l.insertarLote("hechos_horarios",
		`INSERT INTO hechos_horarios
		(id_docente, id_materia, id_espacio, id_tiempo, nrc, clave, seccion, duracion_min)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		len(hechos),
		func(i int) []any {
			h := hechos[i]
			return []any{nullEntero(h.IDDocente), nullEntero(h.IDMateria),
				nullEntero(h.IDEspacio), nullEntero(h.IDTiempo),
				nullTexto(h.NRC), nullTexto(h.Clave), nullTexto(h.Seccion),
				nullEntero(h.DuracionMin)}
		})
}

// insertarLote inserta n filas dentro de una transacción: o entran
// todas o no entra ninguna
func (l *MySQLLoader) insertarLote(tabla, query string, n int, args func(i int) []any) error {
	if n == 0 {
		l.logger.Warn("%s está vacío, no se inserta nada", tabla)
		return nil
	}

	tx, err := l.db.Begin()
	if err != nil {
		return fmt.Errorf("error al iniciar la transacción de %s: %w", tabla, err)
	}

	stmt, err := tx.Prepare(query)
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("error al preparar el insert de %s: %w", tabla, err)
	}
	defer stmt.Close()

	for i := 0; i < n; i++ {
		if _, err := stmt.Exec(args(i)...); err != nil {
			tx.Rollback()
			return fmt.Errorf("error al insertar la fila %d de %s: %w", i+1, tabla, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("error al confirmar la carga de %s: %w", tabla, err)
	}

	l.logger.Info("%d filas insertadas en %s", n, tabla)
	return nil
}

// nullTexto convierte centinelas de ausencia ("", "nan", "none", "nat")
// en NULL verdadero al escribir
func nullTexto(s string) any {
	if models.EsSentinelaNula(s) {
		return nil
	}
	return s
}

func nullEntero(p *int) any {
	if p == nil {
		return nil
	}
	return *p
}

// nullHora escribe la hora en formato TIME de MySQL, o NULL si la forma
// almacenada no es interpretable
func nullHora(v any) any {
	h, _ := models.CoerceHora(v)
	if h == nil {
		return nil
	}
	return h.SQL()
}
