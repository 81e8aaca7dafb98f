package orders

import (
	"encoding/json"
	"time"

	"github.com/pizzacraft/backend/internal/catalog"
)

const (
	EventOrderCreated = "OrderCreated"
	EventLowStock     = "LowStock"
)

type Envelope struct {
	EventID       string          `json:"event_id"`
	EventType     string          `json:"event_type"`
	EventVersion  int             `json:"event_version"`
	OccurredAt    time.Time       `json:"occurred_at"`
	Producer      string          `json:"producer"`
	TraceID       string          `json:"trace_id,omitempty"`
	CorrelationID string          `json:"correlation_id,omitempty"`
	Payload       json.RawMessage `json:"payload"`
}

type OrderCreatedPayload struct {
	OrderID   string   `json:"order_id"`
	UserID    string   `json:"user_id"`
	UserEmail string   `json:"user_email"`
	ItemIDs   []string `json:"item_ids"`
	Total     int      `json:"total"`
}

type LowStockPayload struct {
	IngredientID string           `json:"ingredient_id"`
	Name         string           `json:"name"`
	Category     catalog.Category `json:"category"`
	Stock        int              `json:"stock"`
	Threshold    int              `json:"threshold"`
}
