package notify

import (
	"net/http"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/garagem/crm-backend/internal/domain/ports"
)

// Hub implementa ports.Notifier distribuindo eventos para clientes websocket
// (painéis do dashboard). Clientes que não conseguem receber são descartados.
type Hub struct {
	mu       sync.RWMutex
	clients  map[*websocket.Conn]chan ports.Event
	upgrader websocket.Upgrader
	logger   ports.Logger
}

// NewHub cria um novo Hub
func NewHub(logger ports.Logger) *Hub {
	return &Hub{
		clients: make(map[*websocket.Conn]chan ports.Event),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// A autorização acontece no middleware JWT antes do upgrade
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		logger: logger,
	}
}

// Publish implementa ports.Notifier. Não bloqueia: clientes lentos perdem eventos.
func (h *Hub) Publish(event ports.Event) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for _, ch := range h.clients {
		select {
		case ch <- event:
		default:
		}
	}
}

// Handle atualiza a conexão HTTP para websocket e passa a enviar eventos
func (h *Hub) Handle(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("websocket upgrade failed", "error", err)
		return
	}

	ch := make(chan ports.Event, 16)

	h.mu.Lock()
	h.clients[conn] = ch
	h.mu.Unlock()

	h.logger.Debug("websocket client connected", "remote", conn.RemoteAddr().String())

	go h.writeLoop(conn, ch)
	go h.readLoop(conn)
}

// writeLoop serializa eventos para o cliente até a desconexão
func (h *Hub) writeLoop(conn *websocket.Conn, ch chan ports.Event) {
	for event := range ch {
		if err := conn.WriteJSON(event); err != nil {
			h.drop(conn)
			return
		}
	}
}

// readLoop consome mensagens do cliente apenas para detectar desconexão
func (h *Hub) readLoop(conn *websocket.Conn) {
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			h.drop(conn)
			return
		}
	}
}

// drop remove e fecha a conexão de um cliente
func (h *Hub) drop(conn *websocket.Conn) {
	h.mu.Lock()
	ch, ok := h.clients[conn]
	if ok {
		delete(h.clients, conn)
		close(ch)
	}
	h.mu.Unlock()

	if ok {
		_ = conn.Close()
	}
}

// Close derruba todas as conexões (shutdown do servidor)
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()

	for conn, ch := range h.clients {
		delete(h.clients, conn)
		close(ch)
		_ = conn.Close()
	}
}
