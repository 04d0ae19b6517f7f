package config

import (
	"database/sql"
	"fmt"
	"log"
	"time"

	_ "github.com/go-sql-driver/mysql"
)

// ConnectDatabase abre la conexión a la base de datos del esquema
// estrella y verifica que responda
func ConnectDatabase(cfg ETLConfig) (*sql.DB, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?parseTime=true",
		cfg.Database.User,
		cfg.Database.Password,
		cfg.Database.Host,
		cfg.Database.Port,
		cfg.Database.DBName,
	)

	db, err := sql.Open(cfg.Database.Driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("error al abrir la conexión a MySQL: %w", err)
	}

	// Parámetros del pool de conexiones
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("no se pudo establecer la conexión con MySQL: %w", err)
	}

	log.Println("Conexión a MySQL establecida correctamente")
	return db, nil
}

// CloseDatabase cierra la conexión a la base de datos
func CloseDatabase(db *sql.DB) {
	if db == nil {
		return
	}
	if err := db.Close(); err != nil {
		log.Printf("Error al cerrar la conexión con MySQL: %v", err)
	}
}
