package cube

import (
	"math"
	"sort"
	"strings"

	"github.com/acamposh/horarios_olap/ETL/models"
)

// Operaciones OLAP sobre el snapshot. Todas son de solo lectura:
// devuelven copias y nunca tocan el estado compartido.

// MateriaDocente es una tripleta distinta (clave, materia, docente) del
// dice por materia
type MateriaDocente struct {
	Clave          string
	NombreMateria  string
	NombreCompleto string
}

// HorasDocente es el total de horas semanales de clase de un docente
type HorasDocente struct {
	Nombre         string
	MinutosTotales int
	HorasTotales   float64
}

// PivotFila es una fila de la tabla pivote docente × día
type PivotFila struct {
	Nombre string
	PorDia []int
	Total  int
}

// PivotTabla es la tabla pivote completa, con las columnas de día en
// orden fijo de semana
type PivotTabla struct {
	Dias  []string
	Filas []PivotFila
}

// SliceByDocente devuelve el horario completo de los docentes cuyo
// nombre contiene el texto dado (sin distinguir mayúsculas), ordenado
// por día de la semana y hora de inicio. Sin coincidencias devuelve
// vacío, nunca error.
func (c *Cube) SliceByDocente(texto string) []Row {
	patron := strings.ToLower(texto)

	var out []Row
	for _, fila := range c.Rows {
		if strings.Contains(strings.ToLower(fila.NombreCompleto), patron) {
			fila.NombreCompleto = FormatDocenteDisplay(fila.NombreCompleto)
			out = append(out, fila)
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		if d := models.OrdenDia(out[i].DiaSemana) - models.OrdenDia(out[j].DiaSemana); d != 0 {
			return d < 0
		}
		return menorHora(out[i].HInicio, out[j].HInicio)
	})

	return out
}

// DiceByMateria devuelve las tripletas distintas (clave, materia,
// docente) donde la clave o el nombre de la materia contienen el texto
// dado (semántica OR, sin distinguir mayúsculas), ordenadas por clave y
// docente
func (c *Cube) DiceByMateria(texto string) []MateriaDocente {
	patron := strings.ToLower(texto)

	vistos := make(map[string]bool)
	var out []MateriaDocente
	for _, fila := range c.Rows {
		if !strings.Contains(strings.ToLower(fila.NombreMateria), patron) &&
			!strings.Contains(strings.ToLower(fila.Clave), patron) {
			continue
		}

		llave := fila.Clave + "|" + fila.NombreMateria + "|" + fila.NombreCompleto
		if vistos[llave] {
			continue
		}
		vistos[llave] = true
		out = append(out, MateriaDocente{
			Clave:          fila.Clave,
			NombreMateria:  fila.NombreMateria,
			NombreCompleto: fila.NombreCompleto,
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Clave != out[j].Clave {
			return out[i].Clave < out[j].Clave
		}
		return out[i].NombreCompleto < out[j].NombreCompleto
	})

	return out
}

// DiceEdificioHora devuelve las filas distintas del cubo cuyo edificio
// contiene el texto dado y cuyo intervalo [inicio, fin] contiene la
// hora de referencia, inclusivo en ambos extremos. Una hora no
// interpretable produce resultado vacío, nunca error.
func (c *Cube) DiceEdificioHora(edificio, hora string) []Row {
	horaRef, _ := models.CoerceHora(hora)
	if horaRef == nil {
		return nil
	}

	patron := strings.ToLower(edificio)
	ref := horaRef.Minutes()

	vistos := make(map[string]bool)
	var out []Row
	for _, fila := range c.Rows {
		if fila.HInicio == nil || fila.HFin == nil {
			continue
		}
		if !strings.Contains(strings.ToLower(fila.Edificio), patron) {
			continue
		}
		if fila.HInicio.Minutes() > ref || fila.HFin.Minutes() < ref {
			continue
		}

		llave := strings.Join([]string{fila.NombreCompleto, fila.NombreMateria,
			fila.Clave, fila.CodigoSalon, fila.DiaSemana,
			fila.HInicio.String(), fila.HFin.String()}, "|")
		if vistos[llave] {
			continue
		}
		vistos[llave] = true
		out = append(out, fila)
	}

	sort.SliceStable(out, func(i, j int) bool {
		if d := models.OrdenDia(out[i].DiaSemana) - models.OrdenDia(out[j].DiaSemana); d != 0 {
			return d < 0
		}
		if !horasIguales(out[i].HInicio, out[j].HInicio) {
			return menorHora(out[i].HInicio, out[j].HInicio)
		}
		return out[i].NombreCompleto < out[j].NombreCompleto
	})

	return out
}

// DrilldownDiaHora reordena establemente un subconjunto de filas (o el
// cubo completo si rows es nil) por día de la semana, hora de inicio y
// hora de fin. Solo reordena; no filtra nada.
func (c *Cube) DrilldownDiaHora(rows []Row) []Row {
	if rows == nil {
		rows = c.Rows
	}

	out := make([]Row, len(rows))
	copy(out, rows)

	sort.SliceStable(out, func(i, j int) bool {
		if d := models.OrdenDia(out[i].DiaSemana) - models.OrdenDia(out[j].DiaSemana); d != 0 {
			return d < 0
		}
		if !horasIguales(out[i].HInicio, out[j].HInicio) {
			return menorHora(out[i].HInicio, out[j].HInicio)
		}
		return menorHora(out[i].HFin, out[j].HFin)
	})

	return out
}

// RollupHorasPorDocente agrega las horas totales de clase por docente
// en toda la semana, de mayor a menor. Duraciones ausentes suman cero.
func (c *Cube) RollupHorasPorDocente() []HorasDocente {
	minutos := make(map[string]int)
	var orden []string
	for _, fila := range c.Rows {
		if _, visto := minutos[fila.NombreCompleto]; !visto {
			orden = append(orden, fila.NombreCompleto)
		}
		if fila.DuracionMin != nil {
			minutos[fila.NombreCompleto] += *fila.DuracionMin
		} else {
			minutos[fila.NombreCompleto] += 0
		}
	}

	out := make([]HorasDocente, 0, len(orden))
	for _, nombre := range orden {
		out = append(out, HorasDocente{
			Nombre:         nombre,
			MinutosTotales: minutos[nombre],
			HorasTotales:   math.Round(float64(minutos[nombre])/60*100) / 100,
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].HorasTotales > out[j].HorasTotales
	})

	return out
}

// PivotDocentePorDia cruza docentes (filas) contra días de la semana
// (columnas en orden fijo, con ceros donde no hay clases), contando los
// NRC distintos por celda, más una columna final de total por fila
func (c *Cube) PivotDocentePorDia() PivotTabla {
	dias := models.NombresDias()

	// NRC distintos por (docente, día)
	celdas := make(map[string][]map[string]bool)
	for _, fila := range c.Rows {
		pos := models.OrdenDia(fila.DiaSemana)
		if pos >= len(dias) {
			// Días fuera de la semana conocida no tienen columna
			continue
		}
		if _, ok := celdas[fila.NombreCompleto]; !ok {
			sets := make([]map[string]bool, len(dias))
			for i := range sets {
				sets[i] = make(map[string]bool)
			}
			celdas[fila.NombreCompleto] = sets
		}
		celdas[fila.NombreCompleto][pos][fila.NRC] = true
	}

	nombres := make([]string, 0, len(celdas))
	for nombre := range celdas {
		nombres = append(nombres, nombre)
	}
	sort.Strings(nombres)

	filas := make([]PivotFila, 0, len(nombres))
	for _, nombre := range nombres {
		f := PivotFila{Nombre: nombre, PorDia: make([]int, len(dias))}
		for i, set := range celdas[nombre] {
			f.PorDia[i] = len(set)
			f.Total += len(set)
		}
		filas = append(filas, f)
	}

	return PivotTabla{Dias: dias, Filas: filas}
}

// FormatDocenteDisplay reacomoda "APELLIDO1 APELLIDO2 NOMBRES" como
// "NOMBRES APELLIDO1 APELLIDO2", colapsando el apellido duplicado
func FormatDocenteDisplay(nombre string) string {
	partes := strings.Fields(nombre)
	if len(partes) < 3 {
		return nombre
	}

	ap1, ap2, nombres := partes[0], partes[1], strings.Join(partes[2:], " ")
	apellidos := ap1 + " " + ap2
	if strings.EqualFold(ap1, ap2) {
		apellidos = ap1
	}
	return strings.TrimSpace(nombres + " " + apellidos)
}

// Edificios devuelve los edificios distintos del cubo, ordenados
func (c *Cube) Edificios() []string {
	vistos := make(map[string]bool)
	var out []string
	for _, fila := range c.Rows {
		if fila.Edificio == "" || vistos[fila.Edificio] {
			continue
		}
		vistos[fila.Edificio] = true
		out = append(out, fila.Edificio)
	}
	sort.Strings(out)
	return out
}

// HorasInicio devuelve las horas de inicio distintas (HH:MM), ordenadas
func (c *Cube) HorasInicio() []string {
	vistos := make(map[string]bool)
	var out []string
	for _, fila := range c.Rows {
		if fila.HInicio == nil {
			continue
		}
		h := fila.HInicio.String()
		if vistos[h] {
			continue
		}
		vistos[h] = true
		out = append(out, h)
	}
	sort.Strings(out)
	return out
}

// MateriasUnicas devuelve los pares distintos (clave, materia) del
// cubo, ordenados por nombre de materia
func (c *Cube) MateriasUnicas() []MateriaDocente {
	vistos := make(map[string]bool)
	var out []MateriaDocente
	for _, fila := range c.Rows {
		llave := fila.Clave + "|" + fila.NombreMateria
		if vistos[llave] {
			continue
		}
		vistos[llave] = true
		out = append(out, MateriaDocente{Clave: fila.Clave, NombreMateria: fila.NombreMateria})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].NombreMateria < out[j].NombreMateria
	})
	return out
}

// menorHora compara horas opcionales; las ausentes ordenan al final
func menorHora(a, b *models.TimeOfDay) bool {
	if a == nil {
		return false
	}
	if b == nil {
		return true
	}
	return a.Minutes() < b.Minutes()
}

func horasIguales(a, b *models.TimeOfDay) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Minutes() == b.Minutes()
}
