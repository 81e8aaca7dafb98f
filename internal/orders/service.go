package orders

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	kafkago "github.com/segmentio/kafka-go"

	"github.com/pizzacraft/backend/internal/catalog"
	kafkax "github.com/pizzacraft/backend/internal/kafka"
)

var ErrBadTransition = errors.New("illegal status transition")

// Store is the persistence surface the services need.
type Store interface {
	CreateOrder(ctx context.Context, userID, userEmail string, in SelectionInput, paymentRef string) (Order, []catalog.Ingredient, error)
	List(ctx context.Context, userID string) ([]Order, error)
	Get(ctx context.Context, id string) (Order, error)
	UpdateStatus(ctx context.Context, id string, status Status) (Order, error)
}

// StockReporter receives post-deduction stock levels; it decides whether an
// alert is due. Implemented by the stock service.
type StockReporter interface {
	ReportLevel(ctx context.Context, ing catalog.Ingredient)
}

type Publisher interface {
	Publish(key, value []byte, headers ...kafkago.Header)
}

// Service implements order placement and status transitions.
type Service struct {
	Store        Store
	Stock        StockReporter
	Producer     Publisher // order.created; optional
	ServiceName  string
	StrictStatus bool
}

// PlaceOrder runs the whole placement workflow: dedupe the selection,
// persist the order with its stock deductions, then report the new stock
// levels and announce the order. Event-side failures never fail the order.
func (s *Service) PlaceOrder(ctx context.Context, userID, userEmail string, in SelectionInput, paymentRef string) (Order, error) {
	in = in.DedupeVeggies()

	o, levels, err := s.Store.CreateOrder(ctx, userID, userEmail, in, paymentRef)
	if err != nil {
		return Order{}, err
	}

	if s.Stock != nil {
		for _, ing := range levels {
			s.Stock.ReportLevel(ctx, ing)
		}
	}
	s.publishCreated(o)
	return o, nil
}

func (s *Service) publishCreated(o Order) {
	if s.Producer == nil {
		return
	}
	itemIDs := make([]string, 0, len(o.Items.Veggies)+3)
	for _, ing := range o.Items.Consumed() {
		itemIDs = append(itemIDs, ing.ID)
	}
	ev := Envelope{
		EventID:       uuid.NewString(),
		EventType:     EventOrderCreated,
		EventVersion:  1,
		OccurredAt:    time.Now().UTC(),
		Producer:      s.ServiceName,
		CorrelationID: o.ID,
		Payload: kafkax.MustMarshal(OrderCreatedPayload{
			OrderID:   o.ID,
			UserID:    o.UserID,
			UserEmail: o.UserEmail,
			ItemIDs:   itemIDs,
			Total:     o.Total,
		}),
	}
	s.Producer.Publish(PartitionKey(o.ID), kafkax.MustMarshal(ev),
		kafkago.Header{Key: "x-event-type", Value: []byte(EventOrderCreated)},
		kafkago.Header{Key: "x-event-version", Value: []byte("1")},
	)
}

// SetStatus transitions an order's status. The default mode accepts any
// valid status; strict mode only allows the forward fulfillment flow.
func (s *Service) SetStatus(ctx context.Context, id string, status Status) (Order, error) {
	cur, err := s.Store.Get(ctx, id)
	if err != nil {
		return Order{}, err
	}
	if !CanTransition(cur.Status, status, s.StrictStatus) {
		return Order{}, ErrBadTransition
	}
	if cur.Status == status {
		return cur, nil
	}
	return s.Store.UpdateStatus(ctx, id, status)
}

func (s *Service) List(ctx context.Context, userID string) ([]Order, error) {
	return s.Store.List(ctx, userID)
}

func (s *Service) Get(ctx context.Context, id string) (Order, error) {
	return s.Store.Get(ctx, id)
}
