package load

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/acamposh/horarios_olap/ETL/models"
	"github.com/acamposh/horarios_olap/ETL/utils"
)

// Sentencias DDL del esquema estrella. Se ejecutan en cada corrida;
// las tablas existentes se conservan y solo se vacían.
var ddlStatements = []string{
	`CREATE TABLE IF NOT EXISTS dim_docente (
		id_docente INT PRIMARY KEY,
		nombre_completo VARCHAR(200)
	)`,
	`CREATE TABLE IF NOT EXISTS dim_materia (
		id_materia INT PRIMARY KEY,
		clave VARCHAR(50),
		nombre_materia VARCHAR(200)
	)`,
	`CREATE TABLE IF NOT EXISTS dim_espacio (
		id_espacio INT PRIMARY KEY,
		edificio VARCHAR(50),
		aula VARCHAR(50),
		codigo_salon VARCHAR(100)
	)`,
	`CREATE TABLE IF NOT EXISTS dim_tiempo (
		id_tiempo INT PRIMARY KEY,
		dia_codigo VARCHAR(10),
		dia_semana VARCHAR(20),
		hora_inicio TIME,
		hora_fin TIME
	)`,
	`CREATE TABLE IF NOT EXISTS hechos_horarios (
		id_hecho INT AUTO_INCREMENT PRIMARY KEY,
		id_docente INT,
		id_materia INT,
		id_espacio INT,
		id_tiempo INT,
		nrc VARCHAR(20),
		clave VARCHAR(50),
		seccion VARCHAR(50),
		duracion_min INT,
		FOREIGN KEY (id_docente) REFERENCES dim_docente(id_docente),
		FOREIGN KEY (id_materia) REFERENCES dim_materia(id_materia),
		FOREIGN KEY (id_espacio) REFERENCES dim_espacio(id_espacio),
		FOREIGN KEY (id_tiempo) REFERENCES dim_tiempo(id_tiempo)
	)`,
}

// Orden de vaciado: primero los hechos, que referencian a las dimensiones
var tablasEnOrdenDeBorrado = []string{
	"hechos_horarios", "dim_docente", "dim_materia", "dim_espacio", "dim_tiempo",
}

// LoadManager dirige la fase Load: asegura el esquema, vacía las tablas
// (cada corrida reconstruye desde cero) y carga dimensiones y hechos
type LoadManager struct {
	db     *sql.DB
	logger *utils.ETLLogger
	loader Loader
}

// NewLoadManager crea un nuevo LoadManager
func NewLoadManager(db *sql.DB, logger *utils.ETLLogger) *LoadManager {
	return &LoadManager{
		db:     db,
		logger: logger,
		loader: NewMySQLLoader(db, logger),
	}
}

// EnsureSchema crea las tablas del esquema estrella si no existen
func (m *LoadManager) EnsureSchema() error {
	for _, ddl := range ddlStatements {
		if _, err := m.db.Exec(ddl); err != nil {
			return fmt.Errorf("error al crear el esquema: %w", err)
		}
	}
	m.logger.Info("Tablas creadas o verificadas correctamente")
	return nil
}

// Reset vacía las cinco tablas para la reconstrucción completa
func (m *LoadManager) Reset() error {
	for _, tabla := range tablasEnOrdenDeBorrado {
		if _, err := m.db.Exec("DELETE FROM " + tabla); err != nil {
			return fmt.Errorf("error al vaciar %s: %w", tabla, err)
		}
	}
	m.logger.Info("Tablas del esquema estrella vaciadas")
	return nil
}

// Load ejecuta la fase Load completa sobre los datos transformados
func (m *LoadManager) Load(data *models.TransformedData) error {
	startTime := time.Now()
	m.logger.Info("Inicio de la fase Load (Carga de datos)")

	if err := m.EnsureSchema(); err != nil {
		return err
	}
	if err := m.Reset(); err != nil {
		return err
	}

	// Dimensiones primero: los hechos las referencian
	if err := m.loader.LoadDocentes(data.Docentes); err != nil {
		m.logger.Error("Error al cargar la dimensión de docentes: %v", err)
		return fmt.Errorf("error al cargar la dimensión de docentes: %w", err)
	}

	if err := m.loader.LoadMaterias(data.Materias); err != nil {
		m.logger.Error("Error al cargar la dimensión de materias: %v", err)
		return fmt.Errorf("error al cargar la dimensión de materias: %w", err)
	}

	if err := m.loader.LoadEspacios(data.Espacios); err != nil {
		m.logger.Error("Error al cargar la dimensión de espacios: %v", err)
		return fmt.Errorf("error al cargar la dimensión de espacios: %w", err)
	}

	if err := m.loader.LoadTiempos(data.Tiempos); err != nil {
		m.logger.Error("Error al cargar la dimensión de tiempo: %v", err)
		return fmt.Errorf("error al cargar la dimensión de tiempo: %w", err)
	}

	if err := m.loader.LoadHechos(data.Hechos); err != nil {
		m.logger.Error("Error al cargar la tabla de hechos: %v", err)
		return fmt.Errorf("error al cargar la tabla de hechos: %w", err)
	}

	m.logger.Info("Fase Load terminada. Duración: %v", time.Since(startTime))
	return nil
}
