package web

import (
	"encoding/json"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/gocarina/gocsv"

	"github.com/acamposh/horarios_olap/cube"
)

type paginaIndex struct {
	Filas        int
	Docentes     int
	Materias     int
	Espacios     int
	Construido   string
	TieneHorario bool
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	c := s.holder.Load()
	s.render(w, "index.html", paginaIndex{
		Filas:        len(c.Rows),
		Docentes:     len(c.Docentes),
		Materias:     len(c.Materias),
		Espacios:     len(c.Espacios),
		Construido:   c.BuiltAt.Format("2006-01-02 15:04:05"),
		TieneHorario: len(c.Rows) > 0,
	})
}

type paginaDocentes struct {
	Busqueda string
	Filas    []cube.Row
	Mensaje  string
}

func (s *Server) handleDocentes(w http.ResponseWriter, r *http.Request) {
	c := s.holder.Load()
	data := paginaDocentes{}

	if r.Method == http.MethodPost {
		data.Busqueda = strings.TrimSpace(r.FormValue("nombre_docente"))
		data.Filas = c.SliceByDocente(data.Busqueda)
		if len(data.Filas) == 0 {
			data.Mensaje = "Sin resultados para la búsqueda"
		}
	} else {
		// Sin búsqueda se muestra el horario completo, agrupado por
		// docente y dentro de cada docente por día y hora
		filas := c.SliceByDocente("")
		sort.SliceStable(filas, func(i, j int) bool {
			return filas[i].NombreCompleto < filas[j].NombreCompleto
		})
		data.Filas = filas
	}

	s.render(w, "docentes.html", data)
}

type paginaMaterias struct {
	Busqueda   string
	Resultados []cube.MateriaDocente
	Catalogo   []cube.MateriaDocente
	Mensaje    string
}

func (s *Server) handleMaterias(w http.ResponseWriter, r *http.Request) {
	c := s.holder.Load()
	data := paginaMaterias{Catalogo: c.MateriasUnicas()}

	if r.Method == http.MethodPost {
		data.Busqueda = strings.TrimSpace(r.FormValue("materia"))
		data.Resultados = c.DiceByMateria(data.Busqueda)
		if len(data.Resultados) == 0 {
			data.Mensaje = "Ninguna materia coincide con la búsqueda"
		}
	}

	s.render(w, "materias.html", data)
}

type paginaEdificios struct {
	Edificios []string
	Horas     []string
	Edificio  string
	Hora      string
	Filas     []cube.Row
	Mensaje   string
}

func (s *Server) handleEdificios(w http.ResponseWriter, r *http.Request) {
	c := s.holder.Load()
	data := paginaEdificios{
		Edificios: c.Edificios(),
		Horas:     c.HorasInicio(),
	}

	if r.Method == http.MethodPost {
		data.Edificio = strings.TrimSpace(r.FormValue("edificio"))
		data.Hora = strings.TrimSpace(r.FormValue("hora"))
		data.Filas = c.DiceEdificioHora(data.Edificio, data.Hora)
		if len(data.Filas) == 0 {
			data.Mensaje = "Sin clases en ese edificio a esa hora"
		}
	}

	s.render(w, "edificios.html", data)
}

type paginaEstadisticas struct {
	Pivot cube.PivotTabla
	Horas []cube.HorasDocente
	Vacio bool
}

func (s *Server) handleEstadisticas(w http.ResponseWriter, r *http.Request) {
	c := s.holder.Load()
	s.render(w, "estadisticas.html", paginaEstadisticas{
		Pivot: c.PivotDocentePorDia(),
		Horas: c.RollupHorasPorDocente(),
		Vacio: len(c.Rows) == 0,
	})
}

// handleExportCubo descarga el cubo completo como CSV
func (s *Server) handleExportCubo(w http.ResponseWriter, r *http.Request) {
	c := s.holder.Load()
	filas := c.DrilldownDiaHora(nil)

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition",
		`attachment; filename="cubo_horarios_`+time.Now().Format("20060102")+`.csv"`)

	if err := gocsv.Marshal(&filas, w); err != nil {
		s.logger.Error("Error al exportar el cubo a CSV: %v", err)
	}
}

// handleRebuild corre el pipeline completo, publica el snapshot nuevo y
// avisa a los navegadores conectados
func (s *Server) handleRebuild(w http.ResponseWriter, r *http.Request) {
	s.logger.Info("Reconstrucción del cubo solicitada desde la web")

	if err := s.rebuild(); err != nil {
		s.logger.Error("Falló la reconstrucción del cubo: %v", err)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]string{
			"estado":  "error",
			"detalle": err.Error(),
		})
		return
	}

	c := s.holder.Load()
	s.hub.Broadcast(EventoCubo{Evento: "cubo_reconstruido", Filas: len(c.Rows)})

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"estado": "ok",
		"filas":  len(c.Rows),
	})
}

// NotificarReconstruccion avisa a los clientes WebSocket de un snapshot
// publicado fuera de la web, como los rebuilds del scheduler
func (s *Server) NotificarReconstruccion() {
	c := s.holder.Load()
	s.hub.Broadcast(EventoCubo{Evento: "cubo_reconstruido", Filas: len(c.Rows)})
}
