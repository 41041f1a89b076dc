package websocket

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/healthwatch/vital-monitor/internal/auth"
	"github.com/healthwatch/vital-monitor/internal/monitor"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 512
)

// Event представляет сообщение, отправляемое на фронтенд
type Event struct {
	Type string      `json:"type"` // "alert" | "risk"
	Data interface{} `json:"data"`
}

// Hub управляет WebSocket соединениями дашборда.
// Пациент получает только свои события, клиницист - события всех пациентов.
type Hub struct {
	// Зарегистрированные клиенты
	clients map[*Client]bool

	// Канал для регистрации клиентов
	register chan *Client

	// Канал для отмены регистрации клиентов
	unregister chan *Client

	// Канал исходящих событий
	events chan targetedEvent
}

// targetedEvent - событие с адресатом
type targetedEvent struct {
	userID  string
	payload []byte
}

// Client представляет WebSocket клиента
type Client struct {
	hub *Hub

	// WebSocket соединение
	conn *websocket.Conn

	// Буферизованный канал исходящих сообщений
	send chan []byte

	// Владелец соединения и его роль (для фильтрации событий)
	userID string
	role   string
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		// В продакшене следует проверять домен
		return true
	},
}

// NewHub создает новый Hub
func NewHub() *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		events:     make(chan targetedEvent, 256),
	}
}

// Run запускает Hub
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.clients[client] = true
			log.Printf("[WEBSOCKET] Client registered: user=%s role=%s", client.userID, client.role)

		case client := <-h.unregister:
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
				log.Printf("[WEBSOCKET] Client unregistered: user=%s", client.userID)
			}

		case event := <-h.events:
			for client := range h.clients {
				if !client.wantsEventsFor(event.userID) {
					continue
				}
				select {
				case client.send <- event.payload:
				default:
					// Клиент не успевает читать - отключаем
					delete(h.clients, client)
					close(client.send)
				}
			}
		}
	}
}

// wantsEventsFor решает, должен ли клиент получить событие пользователя
func (c *Client) wantsEventsFor(userID string) bool {
	if c.role == string(auth.RoleClinician) {
		return true
	}
	return c.userID == userID
}

// BroadcastAlert рассылает алерт подписчикам
func (h *Hub) BroadcastAlert(alert *monitor.Alert) {
	h.publish(alert.UserID, Event{Type: "alert", Data: alert})
}

// BroadcastRisk рассылает оценку риска подписчикам
func (h *Hub) BroadcastRisk(assessment *monitor.RiskAssessment) {
	h.publish(assessment.UserID, Event{Type: "risk", Data: assessment})
}

func (h *Hub) publish(userID string, event Event) {
	payload, err := json.Marshal(event)
	if err != nil {
		log.Printf("[ERROR] Failed to marshal %s event: %v", event.Type, err)
		return
	}

	select {
	case h.events <- targetedEvent{userID: userID, payload: payload}:
	default:
		log.Printf("[WARN] Event channel full, dropping %s event for user %s", event.Type, userID)
	}
}

// ServeWS обрабатывает WebSocket запрос от клиента.
// Запрос должен пройти auth middleware до этого обработчика.
func (h *Hub) ServeWS(w http.ResponseWriter, r *http.Request) {
	userID := auth.UserIDFromContext(r.Context())
	role := auth.RoleFromContext(r.Context())

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("[ERROR] WebSocket upgrade failed: %v", err)
		return
	}

	client := &Client{
		hub:    h,
		conn:   conn,
		send:   make(chan []byte, 64),
		userID: userID,
		role:   role,
	}

	h.register <- client

	go client.writePump()
	go client.readPump()
}

// readPump читает сообщения от клиента (только pong/close)
func (c *Client) readPump() {
	defer func() {
		c.hub.unregister <- c
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("[WEBSOCKET] Unexpected close for user %s: %v", c.userID, err)
			}
			return
		}
	}
}

// writePump пишет события клиенту и поддерживает соединение ping'ами
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}

		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
