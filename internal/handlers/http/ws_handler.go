package http

import (
	"github.com/gin-gonic/gin"

	"github.com/garagem/crm-backend/internal/infrastructure/notify"
)

// WSHandler expõe o canal websocket de notificações em tempo real
type WSHandler struct {
	hub *notify.Hub
}

// NewWSHandler cria um novo WSHandler
func NewWSHandler(hub *notify.Hub) *WSHandler {
	return &WSHandler{hub: hub}
}

// Notifications godoc
// @Summary Canal websocket de eventos (vendas, pendências vencidas)
// @Tags notifications
// @Security BearerAuth
// @Router /ws/notifications [get]
func (h *WSHandler) Notifications(c *gin.Context) {
	h.hub.Handle(c.Writer, c.Request)
}
