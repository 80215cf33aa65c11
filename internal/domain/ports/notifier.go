package ports

// Event é uma notificação enviada aos painéis conectados
type Event struct {
	Kind    string `json:"kind"` // ex: "sale.created", "pendencia.overdue"
	Message string `json:"message"`
	Payload any    `json:"payload,omitempty"`
}

// Notifier define a interface para publicação de eventos em tempo real
type Notifier interface {
	Publish(event Event)
}
