package models

import "time"

// TransformedData contiene las dimensiones y los hechos listos para la
// fase de carga
type TransformedData struct {
	// Dimensiones
	Docentes []DocenteDimension
	Materias []MateriaDimension
	Espacios []EspacioDimension
	Tiempos  []TiempoDimension

	// Hechos
	Hechos []HorarioFact

	// Metadatos
	Metadata ETLMetadata
}

// ETLMetadata contiene metadatos de una ejecución del ETL
type ETLMetadata struct {
	RunID            string
	LastRunTimestamp time.Time
	PDFsProcesados   int
	FilasExtraidas   int
	FilasCuradas     int
	HechosGenerados  int
}
