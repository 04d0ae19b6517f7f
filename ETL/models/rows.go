package models

// RawRow es una fila de tabla detectada en un PDF, ya asociada a las
// columnas esperadas del horario. Hora es opcional porque la columna
// puede venir bajo varios alias o no venir.
type RawRow struct {
	NRC      string
	Clave    string
	Materia  string
	Dias     string
	Hora     *string
	Profesor string
	Salon    string

	// Nombre del archivo PDF de origen
	OrigenPDF string
}

// CuratedRow es una fila después de la normalización y la explosión por
// día: nombre de profesor canonizado, rango horario descompuesto, salón
// separado y exactamente un día por fila.
//
// Los tres campos derivados del rango horario son todo-o-nada: una fila
// con rango no interpretable lleva los tres ausentes.
type CuratedRow struct {
	NRC     string
	Clave   string
	Materia string

	// Código de días original completo (ej. "LMV"); se conserva como
	// sección del hecho
	Dias string

	Profesor *string

	HInicio     *TimeOfDay
	HFin        *TimeOfDay
	DuracionMin *int

	DiaCodigo string
	DiaSemana string

	Edificio    *string
	Aula        *string
	CodigoSalon string

	OrigenPDF string
}
