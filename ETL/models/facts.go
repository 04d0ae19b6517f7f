package models

// HorarioFact es un hecho de la tabla hechos_horarios: una sesión de
// clase reducida a llaves foráneas hacia las cuatro dimensiones más sus
// medidas e identificadores.
//
// Cada llave foránea resuelve a exactamente una fila de dimensión; una
// llave sin correspondencia (posible en Tiempo si las llaves de unión
// divergen tras la normalización) queda ausente, nunca descarta la fila.
type HorarioFact struct {
	ID int

	IDDocente *int
	IDMateria *int
	IDEspacio *int
	IDTiempo  *int

	NRC   string
	Clave string

	// Código de días original de la fila (ej. "LMV")
	Seccion string

	DuracionMin *int
}
