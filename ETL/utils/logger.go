package utils

import (
	"fmt"
	"log"
	"os"
	"time"
)

// ETLLogger es el logger del pipeline ETL. Escribe a un archivo diario
// y duplica la salida en stdout.
type ETLLogger struct {
	infoLogger  *log.Logger
	errorLogger *log.Logger
	debugLogger *log.Logger
	isVerbose   bool
}

// NewETLLogger crea un nuevo logger para el ETL
func NewETLLogger(verbose bool) *ETLLogger {
	// Abrimos o creamos el archivo de log del día
	currentTime := time.Now().Format("2006-01-02")
	logFileName := fmt.Sprintf("etl_horarios_%s.log", currentTime)

	file, err := os.OpenFile(logFileName, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0666)
	if err != nil {
		log.Fatalf("No se pudo abrir o crear el archivo de log: %v", err)
	}

	return &ETLLogger{
		infoLogger:  log.New(file, "INFO: ", log.Ldate|log.Ltime|log.Lshortfile),
		errorLogger: log.New(file, "ERROR: ", log.Ldate|log.Ltime|log.Lshortfile),
		debugLogger: log.New(file, "DEBUG: ", log.Ldate|log.Ltime|log.Lshortfile),
		isVerbose:   verbose,
	}
}

// Info registra un mensaje informativo
func (l *ETLLogger) Info(format string, v ...interface{}) {
	msg := fmt.Sprintf(format, v...)
	l.infoLogger.Println(msg)

	// También lo mostramos en la salida estándar
	log.Println("INFO:", msg)
}

// Error registra un mensaje de error
func (l *ETLLogger) Error(format string, v ...interface{}) {
	msg := fmt.Sprintf(format, v...)
	l.errorLogger.Println(msg)

	log.Println("ERROR:", msg)
}

// Warn registra una advertencia (PDF faltante, tabla descartada, etc.)
func (l *ETLLogger) Warn(format string, v ...interface{}) {
	msg := fmt.Sprintf(format, v...)
	l.errorLogger.Println("WARN: " + msg)

	log.Println("WARN:", msg)
}

// Debug registra un mensaje de depuración (solo en modo verbose)
func (l *ETLLogger) Debug(format string, v ...interface{}) {
	if !l.isVerbose {
		return
	}

	msg := fmt.Sprintf(format, v...)
	l.debugLogger.Println(msg)

	log.Println("DEBUG:", msg)
}

// LogETLStart registra el inicio del proceso ETL
func (l *ETLLogger) LogETLStart(runID string) {
	l.Info("Inicio del proceso ETL de horarios (ejecución %s)", runID)
}

// LogETLComplete registra el final del proceso ETL
func (l *ETLLogger) LogETLComplete(startTime time.Time, filasExtraidas, filasCuradas, hechosCargados int) {
	duration := time.Since(startTime)
	l.Info("Proceso ETL terminado. Duración: %v", duration)
	l.Info("Procesado: %d filas extraídas, %d filas curadas, %d hechos cargados",
		filasExtraidas, filasCuradas, hechosCargados)
}

// LogExtractComplete registra el final de la fase Extract
func (l *ETLLogger) LogExtractComplete(pdfs, filas int, duration time.Duration) {
	l.Info("Fase Extract terminada. Duración: %v", duration)
	l.Info("Extraído: %d filas de %d PDF", filas, pdfs)
}
