package web

import (
	"net/http"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/acamposh/horarios_olap/ETL/utils"
)

// Hub mantiene las conexiones WebSocket de los navegadores abiertos
// para avisarles cuando se publica un snapshot nuevo del cubo
type Hub struct {
	mutex    sync.Mutex
	clients  map[*websocket.Conn]bool
	upgrader websocket.Upgrader
	logger   *utils.ETLLogger
}

// EventoCubo es el mensaje que se difunde tras cada reconstrucción
type EventoCubo struct {
	Evento string `json:"evento"`
	Filas  int    `json:"filas"`
}

// NewHub crea un hub sin conexiones
func NewHub(logger *utils.ETLLogger) *Hub {
	return &Hub{
		clients: make(map[*websocket.Conn]bool),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
		logger: logger,
	}
}

// HandleWS acepta una conexión nueva y la registra. Los clientes no
// envían nada útil; el bucle de lectura solo detecta el cierre.
func (h *Hub) HandleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Error("Error al actualizar conexión WebSocket: %v", err)
		return
	}

	h.mutex.Lock()
	h.clients[conn] = true
	h.mutex.Unlock()

	h.logger.Debug("Cliente WebSocket conectado desde %s", r.RemoteAddr)

	go func() {
		defer h.remove(conn)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}

// Broadcast envía el evento a todos los clientes; las conexiones que
// fallan se descartan
func (h *Hub) Broadcast(evento EventoCubo) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	for conn := range h.clients {
		if err := conn.WriteJSON(evento); err != nil {
			conn.Close()
			delete(h.clients, conn)
		}
	}
}

func (h *Hub) remove(conn *websocket.Conn) {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	if h.clients[conn] {
		conn.Close()
		delete(h.clients, conn)
	}
}
