package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// ETLConfig contiene la configuración del pipeline y del servidor web
type ETLConfig struct {
	// Conexión a la base de datos del esquema estrella
	Database DatabaseConfig

	// Carpeta con los PDF de programas académicos
	PDFDir string

	// Carpeta del caché de tablas extraídas; vacío desactiva el caché
	CacheDir string

	// Dirección del servidor web
	HTTPAddr string

	// Intervalo entre reconstrucciones en modo -scheduled
	RunInterval time.Duration

	// Activa el log de depuración
	EnableDetailedLogging bool
}

// DatabaseConfig contiene los parámetros de conexión a MySQL
type DatabaseConfig struct {
	Driver   string
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
}

// GetConfig arma la configuración con los valores por defecto del
// proyecto, sobreescribibles desde el entorno (o un archivo .env)
func GetConfig() ETLConfig {
	// El .env es opcional; si no existe usamos el entorno tal cual
	_ = godotenv.Load()

	return ETLConfig{
		Database: DatabaseConfig{
			Driver:   "mysql",
			Host:     envOr("DB_HOST", "localhost"),
			Port:     envIntOr("DB_PORT", 3306),
			User:     envOr("DB_USER", "root"),
			Password: envOr("DB_PASS", "changocome"),
			DBName:   envOr("DB_NAME", "horarios"),
		},
		PDFDir:                envOr("PDF_DIR", "pdfs"),
		CacheDir:              envOr("CACHE_DIR", ".cache_tablas"),
		HTTPAddr:              envOr("HTTP_ADDR", ":5000"),
		RunInterval:           envDurationOr("ETL_INTERVAL", 24*time.Hour),
		EnableDetailedLogging: envOr("ETL_VERBOSE", "") != "",
	}
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envIntOr(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func envDurationOr(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
