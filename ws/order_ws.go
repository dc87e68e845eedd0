package ws

import (
	"context"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/Dee-Rock/Soucey-Fast-Food-sub000/entity"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

const (
	// AllOrders is the subscription key of the admin feed.
	AllOrders = "*"

	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = pongWait * 9 / 10
)

// OrderUpdate is pushed to every client watching an order.
type OrderUpdate struct {
	OrderNumber   string               `json:"orderNumber"`
	Status        entity.OrderStatus   `json:"status"`
	PaymentStatus entity.PaymentStatus `json:"paymentStatus"`
	Total         int64                `json:"total"`
	UpdatedAt     time.Time            `json:"updatedAt"`
}

// Subscription is one websocket connection watching one order number.
type Subscription struct {
	Conn        *websocket.Conn
	OrderNumber string
}

// OrderLookup resolves the current state of an order when a client joins.
type OrderLookup func(ctx context.Context, number string) (*entity.Order, error)

// OrderHub fans order status changes out to the clients tracking them.
type OrderHub struct {
	clients    map[string]map[*websocket.Conn]bool
	broadcast  chan OrderUpdate
	register   chan Subscription
	unregister chan Subscription
	done       chan struct{}
	mu         sync.Mutex
	lookup     OrderLookup
	log        *zap.Logger
}

func NewOrderHub(lookup OrderLookup, log *zap.Logger) *OrderHub {
	if log == nil {
		log = zap.NewNop()
	}
	return &OrderHub{
		clients:    make(map[string]map[*websocket.Conn]bool),
		broadcast:  make(chan OrderUpdate, 64),
		register:   make(chan Subscription),
		unregister: make(chan Subscription),
		done:       make(chan struct{}),
		lookup:     lookup,
		log:        log,
	}
}

// Run serves register, unregister and broadcast until ctx ends.
func (h *OrderHub) Run(ctx context.Context) {
	defer close(h.done)
	for {
		select {
		case <-ctx.Done():
			h.mu.Lock()
			for _, conns := range h.clients {
				for conn := range conns {
					conn.Close()
				}
			}
			h.clients = map[string]map[*websocket.Conn]bool{}
			h.mu.Unlock()
			return

		case sub := <-h.register:
			h.mu.Lock()
			if h.clients[sub.OrderNumber] == nil {
				h.clients[sub.OrderNumber] = make(map[*websocket.Conn]bool)
			}
			h.clients[sub.OrderNumber][sub.Conn] = true
			h.mu.Unlock()

		case sub := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[sub.OrderNumber][sub.Conn]; ok {
				delete(h.clients[sub.OrderNumber], sub.Conn)
				if len(h.clients[sub.OrderNumber]) == 0 {
					delete(h.clients, sub.OrderNumber)
				}
				sub.Conn.Close()
			}
			h.mu.Unlock()

		case msg := <-h.broadcast:
			h.mu.Lock()
			for _, key := range []string{msg.OrderNumber, AllOrders} {
				for conn := range h.clients[key] {
					conn.SetWriteDeadline(time.Now().Add(writeWait))
					if err := conn.WriteJSON(msg); err != nil {
						h.log.Debug("ws write failed", zap.String("order", msg.OrderNumber), zap.Error(err))
						conn.Close()
						delete(h.clients[key], conn)
					}
				}
			}
			h.mu.Unlock()
		}
	}
}

// OrderChanged queues an update for the order's watchers. It never blocks
// the caller; updates are dropped when the hub falls behind.
func (h *OrderHub) OrderChanged(o *entity.Order) {
	select {
	case h.broadcast <- updateOf(o):
	default:
		h.log.Warn("order update dropped", zap.String("order", o.OrderNumber))
	}
}

// Watchers reports how many connections track number.
func (h *OrderHub) Watchers(number string) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients[number])
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// HandleWebSocket serves /ws/orders/:orderNumber.
func (h *OrderHub) HandleWebSocket(c *gin.Context) {
	number := strings.ToUpper(strings.TrimSpace(c.Param("orderNumber")))
	o, err := h.lookup(c.Request.Context(), number)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "order not found"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.log.Warn("ws upgrade failed", zap.Error(err))
		return
	}

	sub := Subscription{Conn: conn, OrderNumber: number}
	select {
	case h.register <- sub:
	case <-h.done:
		conn.Close()
		return
	}

	// current state first so the page does not wait for the next change
	h.mu.Lock()
	conn.SetWriteDeadline(time.Now().Add(writeWait))
	err = conn.WriteJSON(updateOf(o))
	h.mu.Unlock()
	if err != nil {
		h.drop(sub)
		return
	}
	go h.keepAlive(sub)
}

// HandleAdminFeed serves /ws/admin/orders: every order change, no initial state.
func (h *OrderHub) HandleAdminFeed(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.log.Warn("ws upgrade failed", zap.Error(err))
		return
	}
	sub := Subscription{Conn: conn, OrderNumber: AllOrders}
	select {
	case h.register <- sub:
	case <-h.done:
		conn.Close()
		return
	}
	go h.keepAlive(sub)
}

// keepAlive answers pings and notices when the client goes away.
// Tracking clients never send data, anything they send is discarded.
func (h *OrderHub) keepAlive(sub Subscription) {
	defer h.drop(sub)

	sub.Conn.SetReadDeadline(time.Now().Add(pongWait))
	sub.Conn.SetPongHandler(func(string) error {
		return sub.Conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	stop := make(chan struct{})
	defer close(stop)
	go func() {
		t := time.NewTicker(pingPeriod)
		defer t.Stop()
		for {
			select {
			case <-t.C:
				h.mu.Lock()
				err := sub.Conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait))
				h.mu.Unlock()
				if err != nil {
					return
				}
			case <-stop:
				return
			}
		}
	}()

	for {
		if _, _, err := sub.Conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (h *OrderHub) drop(sub Subscription) {
	select {
	case h.unregister <- sub:
	case <-h.done:
	}
}

func updateOf(o *entity.Order) OrderUpdate {
	return OrderUpdate{
		OrderNumber:   o.OrderNumber,
		Status:        o.Status,
		PaymentStatus: o.PaymentStatus,
		Total:         o.Total,
		UpdatedAt:     o.UpdatedAt,
	}
}
