package models

import (
	"database/sql"
	"fmt"
	"time"
)

// ETLRunLog es una entrada del journal de ejecuciones del ETL
type ETLRunLog struct {
	ID             string // UUID de la ejecución
	StartTime      time.Time
	EndTime        time.Time
	Status         string // in_progress, success, failed
	FilasExtraidas int
	FilasCuradas   int
	HechosCargados int
	ErrorMessage   string
}

// ETLLogRepository define el acceso al journal de ejecuciones
type ETLLogRepository interface {
	CreateETLLogTable() error
	CreateLogEntry(id string, startTime time.Time) error
	UpdateLogEntrySuccess(id string, endTime time.Time, filasExtraidas, filasCuradas, hechosCargados int) error
	UpdateLogEntryFailure(id string, endTime time.Time, errorMessage string) error
}

// MySQLETLLogRepository implementa ETLLogRepository sobre MySQL
type MySQLETLLogRepository struct {
	db *sql.DB
}

// NewMySQLETLLogRepository crea un nuevo MySQLETLLogRepository
func NewMySQLETLLogRepository(db *sql.DB) *MySQLETLLogRepository {
	return &MySQLETLLogRepository{db: db}
}

// CreateETLLogTable crea la tabla del journal si no existe
func (r *MySQLETLLogRepository) CreateETLLogTable() error {
	query := `
	CREATE TABLE IF NOT EXISTS etl_runs (
		id CHAR(36) PRIMARY KEY,
		start_time TIMESTAMP NOT NULL,
		end_time TIMESTAMP NULL,
		status ENUM('success', 'failed', 'in_progress') NOT NULL DEFAULT 'in_progress',
		filas_extraidas INT DEFAULT 0,
		filas_curadas INT DEFAULT 0,
		hechos_cargados INT DEFAULT 0,
		error_message TEXT,
		execution_time_seconds FLOAT
	);
	`

	if _, err := r.db.Exec(query); err != nil {
		return fmt.Errorf("error al crear la tabla etl_runs: %w", err)
	}
	return nil
}

// CreateLogEntry registra el inicio de una ejecución
func (r *MySQLETLLogRepository) CreateLogEntry(id string, startTime time.Time) error {
	query := `INSERT INTO etl_runs (id, start_time, status) VALUES (?, ?, 'in_progress')`

	if _, err := r.db.Exec(query, id, startTime); err != nil {
		return fmt.Errorf("error al crear la entrada del journal ETL: %w", err)
	}
	return nil
}

// UpdateLogEntrySuccess cierra la entrada al terminar con éxito
func (r *MySQLETLLogRepository) UpdateLogEntrySuccess(id string, endTime time.Time, filasExtraidas, filasCuradas, hechosCargados int) error {
	var startTime time.Time
	err := r.db.QueryRow("SELECT start_time FROM etl_runs WHERE id = ?", id).Scan(&startTime)
	if err != nil {
		return fmt.Errorf("error al obtener la hora de inicio de la ejecución: %w", err)
	}

	query := `
	UPDATE etl_runs
	SET end_time = ?,
		status = 'success',
		filas_extraidas = ?,
		filas_curadas = ?,
		hechos_cargados = ?,
		execution_time_seconds = ?
	WHERE id = ?
	`

	_, err = r.db.Exec(query, endTime, filasExtraidas, filasCuradas, hechosCargados,
		endTime.Sub(startTime).Seconds(), id)
	if err != nil {
		return fmt.Errorf("error al actualizar la entrada del journal ETL: %w", err)
	}
	return nil
}

// UpdateLogEntryFailure cierra la entrada al terminar con error
func (r *MySQLETLLogRepository) UpdateLogEntryFailure(id string, endTime time.Time, errorMessage string) error {
	query := `
	UPDATE etl_runs
	SET end_time = ?,
		status = 'failed',
		error_message = ?
	WHERE id = ?
	`

	if _, err := r.db.Exec(query, endTime, errorMessage, id); err != nil {
		return fmt.Errorf("error al actualizar la entrada del journal ETL: %w", err)
	}
	return nil
}
