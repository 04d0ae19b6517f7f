// Package web expone el cubo de horarios en una interfaz HTTP sencilla:
// consultas por docente, materia y edificio, estadísticas y exportación
// CSV. Los handlers son delgados; toda consulta pasa por el snapshot
// publicado y ninguna muta estado fuera del rebuild.
package web

import (
	"embed"
	"html/template"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/acamposh/horarios_olap/ETL/models"
	"github.com/acamposh/horarios_olap/ETL/utils"
	"github.com/acamposh/horarios_olap/cube"
)

//go:embed templates/*.html
var templatesFS embed.FS

// Server es el servidor web del cubo de horarios
type Server struct {
	holder *cube.Holder
	logger *utils.ETLLogger
	hub    *Hub
	tmpl   *template.Template

	// Rebuild corre el pipeline y publica el snapshot nuevo; lo arma
	// main para no acoplar la capa web al runner
	rebuild func() error
}

// NewServer crea el servidor sobre el snapshot publicado
func NewServer(holder *cube.Holder, rebuild func() error, logger *utils.ETLLogger) *Server {
	funcs := template.FuncMap{
		"hora": func(t *models.TimeOfDay) string {
			if t == nil {
				return ""
			}
			return t.String()
		},
		"minutos": func(d *int) int {
			if d == nil {
				return 0
			}
			return *d
		},
	}

	tmpl := template.Must(template.New("").Funcs(funcs).ParseFS(templatesFS, "templates/*.html"))

	return &Server{
		holder:  holder,
		logger:  logger,
		hub:     NewHub(logger),
		tmpl:    tmpl,
		rebuild: rebuild,
	}
}

// Router registra todas las rutas de la aplicación
func (s *Server) Router() *mux.Router {
	router := mux.NewRouter()

	router.HandleFunc("/", s.handleIndex).Methods("GET")
	router.HandleFunc("/docentes", s.handleDocentes).Methods("GET", "POST")
	router.HandleFunc("/materias", s.handleMaterias).Methods("GET", "POST")
	router.HandleFunc("/edificios", s.handleEdificios).Methods("GET", "POST")
	router.HandleFunc("/estadisticas", s.handleEstadisticas).Methods("GET")
	router.HandleFunc("/export/cubo.csv", s.handleExportCubo).Methods("GET")
	router.HandleFunc("/rebuild", s.handleRebuild).Methods("POST")
	router.HandleFunc("/ws", s.hub.HandleWS)

	return router
}

// render ejecuta una plantilla; un fallo de render es un 500 simple
func (s *Server) render(w http.ResponseWriter, nombre string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.tmpl.ExecuteTemplate(w, nombre, data); err != nil {
		s.logger.Error("Error al renderizar %s: %v", nombre, err)
		http.Error(w, "Error al generar la página", http.StatusInternalServerError)
	}
}
