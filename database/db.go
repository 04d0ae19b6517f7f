// Package database lee el esquema estrella de vuelta desde MySQL para
// la construcción del cubo. Solo lectura; la escritura vive en ETL/load.
package database

import (
	"database/sql"
	"fmt"

	_ "github.com/go-sql-driver/mysql"

	"github.com/acamposh/horarios_olap/ETL/models"
)

// Tablas agrupa las cinco relaciones del esquema estrella tal como se
// leyeron de la base
type Tablas struct {
	Docentes []models.DocenteDimension
	Materias []models.MateriaDimension
	Espacios []models.EspacioDimension
	Tiempos  []models.TiempoDimension
	Hechos   []models.HorarioFact
}

// LeerTablas carga las cinco tablas completas. El cubo se reconstruye
// desde cero en cada llamada, así que no hay lecturas parciales.
func LeerTablas(db *sql.DB) (*Tablas, error) {
	docentes, err := LeerDocentes(db)
	if err != nil {
		return nil, err
	}

	materias, err := LeerMaterias(db)
	if err != nil {
		return nil, err
	}

	espacios, err := LeerEspacios(db)
	if err != nil {
		return nil, err
	}

	tiempos, err := LeerTiempos(db)
	if err != nil {
		return nil, err
	}

	hechos, err := LeerHechos(db)
	if err != nil {
		return nil, err
	}

	return &Tablas{
		Docentes: docentes,
		Materias: materias,
		Espacios: espacios,
		Tiempos:  tiempos,
		Hechos:   hechos,
	}, nil
}

// LeerDocentes lee la dimensión de docentes
func LeerDocentes(db *sql.DB) ([]models.DocenteDimension, error) {
	rows, err := db.Query("SELECT id_docente, nombre_completo FROM dim_docente")
	if err != nil {
		return nil, fmt.Errorf("error al leer dim_docente: %w", err)
	}
	defer rows.Close()

	var out []models.DocenteDimension
	for rows.Next() {
		var d models.DocenteDimension
		var nombre sql.NullString
		if err := rows.Scan(&d.ID, &nombre); err != nil {
			return nil, fmt.Errorf("error al escanear dim_docente: %w", err)
		}
		d.NombreCompleto = nombre.String
		out = append(out, d)
	}
	return out, rows.Err()
}

// LeerMaterias lee la dimensión de materias
func LeerMaterias(db *sql.DB) ([]models.MateriaDimension, error) {
	rows, err := db.Query("SELECT id_materia, clave, nombre_materia FROM dim_materia")
	if err != nil {
		return nil, fmt.Errorf("error al leer dim_materia: %w", err)
	}
	defer rows.Close()

	var out []models.MateriaDimension
	for rows.Next() {
		var m models.MateriaDimension
		var clave, nombre sql.NullString
		if err := rows.Scan(&m.ID, &clave, &nombre); err != nil {
			return nil, fmt.Errorf("error al escanear dim_materia: %w", err)
		}
		m.Clave = clave.String
		m.NombreMateria = nombre.String
		out = append(out, m)
	}
	return out, rows.Err()
}

// LeerEspacios lee la dimensión de espacios
func LeerEspacios(db *sql.DB) ([]models.EspacioDimension, error) {
	rows, err := db.Query("SELECT id_espacio, edificio, aula, codigo_salon FROM dim_espacio")
	if err != nil {
		return nil, fmt.Errorf("error al leer dim_espacio: %w", err)
	}
	defer rows.Close()

	var out []models.EspacioDimension
	for rows.Next() {
		var e models.EspacioDimension
		var edificio, aula, codigo sql.NullString
		if err := rows.Scan(&e.ID, &edificio, &aula, &codigo); err != nil {
			return nil, fmt.Errorf("error al escanear dim_espacio: %w", err)
		}
		e.Edificio = edificio.String
		e.Aula = aula.String
		e.CodigoSalon = codigo.String
		out = append(out, e)
	}
	return out, rows.Err()
}

// LeerTiempos lee la dimensión de tiempo. Las columnas TIME se
// conservan en su forma cruda (texto del driver); la canonización la
// hace el constructor del cubo.
func LeerTiempos(db *sql.DB) ([]models.TiempoDimension, error) {
	rows, err := db.Query("SELECT id_tiempo, dia_codigo, dia_semana, hora_inicio, hora_fin FROM dim_tiempo")
	if err != nil {
		return nil, fmt.Errorf("error al leer dim_tiempo: %w", err)
	}
	defer rows.Close()

	var out []models.TiempoDimension
	for rows.Next() {
		var t models.TiempoDimension
		var codigo, nombre, inicio, fin sql.NullString
		if err := rows.Scan(&t.ID, &codigo, &nombre, &inicio, &fin); err != nil {
			return nil, fmt.Errorf("error al escanear dim_tiempo: %w", err)
		}
		t.DiaCodigo = codigo.String
		t.DiaSemana = nombre.String
		if inicio.Valid {
			t.HoraInicio = inicio.String
		}
		if fin.Valid {
			t.HoraFin = fin.String
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

// LeerHechos lee la tabla de hechos
func LeerHechos(db *sql.DB) ([]models.HorarioFact, error) {
	rows, err := db.Query(`SELECT id_hecho, id_docente, id_materia, id_espacio, id_tiempo,
		nrc, clave, seccion, duracion_min FROM hechos_horarios`)
	if err != nil {
		return nil, fmt.Errorf("error al leer hechos_horarios: %w", err)
	}
	defer rows.Close()

	var out []models.HorarioFact
	for rows.Next() {
		var h models.HorarioFact
		var idDocente, idMateria, idEspacio, idTiempo, duracion sql.NullInt64
		var nrc, clave, seccion sql.NullString
		if err := rows.Scan(&h.ID, &idDocente, &idMateria, &idEspacio, &idTiempo,
			&nrc, &clave, &seccion, &duracion); err != nil {
			return nil, fmt.Errorf("error al escanear hechos_horarios: %w", err)
		}
		h.IDDocente = enteroOpcional(idDocente)
		h.IDMateria = enteroOpcional(idMateria)
		h.IDEspacio = enteroOpcional(idEspacio)
		h.IDTiempo = enteroOpcional(idTiempo)
		h.NRC = nrc.String
		h.Clave = clave.String
		h.Seccion = seccion.String
		h.DuracionMin = enteroOpcional(duracion)
		out = append(out, h)
	}
	return out, rows.Err()
}

func enteroOpcional(n sql.NullInt64) *int {
	if !n.Valid {
		return nil
	}
	v := int(n.Int64)
	return &v
}
