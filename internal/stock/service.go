package stock

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"
	kafkago "github.com/segmentio/kafka-go"

	"github.com/pizzacraft/backend/internal/catalog"
	kafkax "github.com/pizzacraft/backend/internal/kafka"
	"github.com/pizzacraft/backend/internal/orders"
)

// Store is the slice of the catalog repo the service writes through.
type Store interface {
	SetStock(ctx context.Context, id string, stock int) (catalog.Ingredient, error)
}

type Publisher interface {
	Publish(key, value []byte, headers ...kafkago.Header)
}

// Service owns stock mutations on the admin path and the low-stock
// threshold check shared with order placement.
type Service struct {
	Store       Store
	Producer    Publisher // inventory.low_stock; optional
	Threshold   int
	ServiceName string
}

// Adjust overwrites an ingredient's stock with an absolute value, clamping
// negative targets to zero. Returns catalog.ErrNotFound for unknown ids.
// A write that lands below the threshold triggers exactly one alert
// publication; alerting never affects the outcome of the write.
func (s *Service) Adjust(ctx context.Context, id string, newStock int) (catalog.Ingredient, error) {
	if newStock < 0 {
		newStock = 0
	}
	ing, err := s.Store.SetStock(ctx, id, newStock)
	if err != nil {
		return catalog.Ingredient{}, err
	}
	s.ReportLevel(ctx, ing)
	return ing, nil
}

// ReportLevel publishes a low-stock event when the ingredient's level is
// below the threshold. Fire-and-forget: publish errors surface in the
// producer's log, never here.
func (s *Service) ReportLevel(ctx context.Context, ing catalog.Ingredient) {
	if ing.Stock >= s.Threshold {
		return
	}
	if s.Producer == nil {
		log.Printf("low stock: %s (%s) at %d, threshold %d", ing.Name, ing.Category, ing.Stock, s.Threshold)
		return
	}
	ev := orders.Envelope{
		EventID:       uuid.NewString(),
		EventType:     orders.EventLowStock,
		EventVersion:  1,
		OccurredAt:    time.Now().UTC(),
		Producer:      s.ServiceName,
		CorrelationID: ing.ID,
		Payload: kafkax.MustMarshal(orders.LowStockPayload{
			IngredientID: ing.ID,
			Name:         ing.Name,
			Category:     ing.Category,
			Stock:        ing.Stock,
			Threshold:    s.Threshold,
		}),
	}
	s.Producer.Publish(orders.PartitionKey(ing.ID), kafkax.MustMarshal(ev),
		kafkago.Header{Key: "x-event-type", Value: []byte(orders.EventLowStock)},
		kafkago.Header{Key: "x-event-version", Value: []byte("1")},
	)
}
