package models

// DocenteDimension representa la dimensión de docentes en el esquema estrella
type DocenteDimension struct {
	ID             int
	NombreCompleto string
}

// MateriaDimension representa la dimensión de materias, identificada por
// el par (clave, materia)
type MateriaDimension struct {
	ID            int
	Clave         string
	NombreMateria string
}

// EspacioDimension representa la dimensión de espacios físicos
type EspacioDimension struct {
	ID          int
	Edificio    string
	Aula        string
	CodigoSalon string
}

// TiempoDimension representa la dimensión de bloques horarios.
// HoraInicio y HoraFin conservan la forma en que llegan del origen
// (TimeOfDay del pipeline, string o time.Time al volver de MySQL);
// el constructor del cubo las canoniza con CoerceHora.
type TiempoDimension struct {
	ID         int
	DiaCodigo  string
	DiaSemana  string
	HoraInicio any
	HoraFin    any
}
