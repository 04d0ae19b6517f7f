// Package cube construye y consulta el cubo OLAP de horarios: la vista
// desnormalizada de los hechos contra las cuatro dimensiones, con las
// operaciones de slice, dice, drill-down, roll-up y pivot.
package cube

import (
	"time"

	"go.uber.org/atomic"

	"github.com/acamposh/horarios_olap/ETL/models"
)

// Row es una fila del cubo: un hecho con todos los atributos de sus
// dimensiones. Atributos de una dimensión sin correspondencia quedan
// vacíos; horas y duración ausentes quedan en nil.
type Row struct {
	IDHecho int    `csv:"id_hecho"`
	NRC     string `csv:"nrc"`
	Clave   string `csv:"clave"`
	Seccion string `csv:"seccion"`

	NombreCompleto string `csv:"nombre_completo"`
	NombreMateria  string `csv:"nombre_materia"`

	Edificio    string `csv:"edificio"`
	Aula        string `csv:"aula"`
	CodigoSalon string `csv:"codigo_salon"`

	DiaCodigo string `csv:"dia_codigo"`
	DiaSemana string `csv:"dia_semana"`

	HInicio *models.TimeOfDay `csv:"h_inicio"`
	HFin    *models.TimeOfDay `csv:"h_fin"`

	DuracionMin *int `csv:"duracion_min"`
}

// Cube es el snapshot inmutable del cubo. Se construye una vez y se
// comparte entre todas las consultas; cualquier cambio en los datos
// subyacentes exige construir un snapshot nuevo.
type Cube struct {
	Rows []Row

	// Las dimensiones crudas quedan disponibles para la capa de
	// presentación (listas de materias, edificios, etc.)
	Docentes []models.DocenteDimension
	Materias []models.MateriaDimension
	Espacios []models.EspacioDimension
	Tiempos  []models.TiempoDimension

	BuiltAt time.Time
}

// Holder publica el snapshot vigente del cubo. La reconstrucción
// publica un snapshot nuevo con un intercambio atómico del puntero; los
// lectores en curso conservan el snapshot anterior sin bloqueo alguno.
type Holder struct {
	p atomic.Pointer[Cube]
}

// NewHolder crea un Holder con el snapshot inicial dado
func NewHolder(c *Cube) *Holder {
	h := &Holder{}
	h.p.Store(c)
	return h
}

// Load devuelve el snapshot vigente
func (h *Holder) Load() *Cube {
	return h.p.Load()
}

// Publish reemplaza atómicamente el snapshot vigente
func (h *Holder) Publish(c *Cube) {
	h.p.Store(c)
}
