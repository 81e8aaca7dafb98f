package notify

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pizzacraft/backend/internal/catalog"
	kafkax "github.com/pizzacraft/backend/internal/kafka"
	"github.com/pizzacraft/backend/internal/orders"
)

type fakeDedup struct {
	seen   map[string]bool
	marked []string
}

func (f *fakeDedup) Seen(_ context.Context, id string) bool { return f.seen[id] }
func (f *fakeDedup) Mark(_ context.Context, id string)      { f.marked = append(f.marked, id) }

type fakeGenerator struct {
	calls int
	text  string
	err   error
}

func (f *fakeGenerator) Describe(context.Context, string, string, int, int) (string, error) {
	f.calls++
	return f.text, f.err
}

func lowStockMessage(eventID string) kafkago.Message {
	env := orders.Envelope{
		EventID:      eventID,
		EventType:    orders.EventLowStock,
		EventVersion: 1,
		OccurredAt:   time.Now().UTC(),
		Producer:     "stock-test",
		Payload: kafkax.MustMarshal(orders.LowStockPayload{
			IngredientID: "s5",
			Name:         "Pesto",
			Category:     catalog.CategorySauce,
			Stock:        12,
			Threshold:    20,
		}),
	}
	return kafkago.Message{Value: kafkax.MustMarshal(env)}
}

func TestHandleLowStock_GeneratesAlert(t *testing.T) {
	gen := &fakeGenerator{text: "restock pesto"}
	svc := &Service{Dedup: &fakeDedup{seen: map[string]bool{}}, Generator: gen}

	err := svc.HandleLowStock(context.Background(), lowStockMessage(uuid.NewString()))
	require.NoError(t, err)
	assert.Equal(t, 1, gen.calls)
}

func TestHandleLowStock_GeneratorFailureIsSwallowed(t *testing.T) {
	gen := &fakeGenerator{err: errors.New("quota exceeded")}
	svc := &Service{Dedup: &fakeDedup{seen: map[string]bool{}}, Generator: gen}

	err := svc.HandleLowStock(context.Background(), lowStockMessage(uuid.NewString()))
	assert.NoError(t, err, "generator failure must not block the commit")
}

func TestHandleLowStock_DuplicateEventSkipped(t *testing.T) {
	gen := &fakeGenerator{text: "x"}
	dedup := &fakeDedup{seen: map[string]bool{"ev-1": true}}
	svc := &Service{Dedup: dedup, Generator: gen}

	err := svc.HandleLowStock(context.Background(), lowStockMessage("ev-1"))
	require.NoError(t, err)
	assert.Zero(t, gen.calls)
	assert.Empty(t, dedup.marked)
}

func TestHandleLowStock_MarksFreshEvent(t *testing.T) {
	dedup := &fakeDedup{seen: map[string]bool{}}
	svc := &Service{Dedup: dedup, Generator: &fakeGenerator{text: "x"}}

	require.NoError(t, svc.HandleLowStock(context.Background(), lowStockMessage("ev-2")))
	assert.Equal(t, []string{"ev-2"}, dedup.marked)
}

func TestHandleLowStock_IgnoresOtherEventTypes(t *testing.T) {
	gen := &fakeGenerator{text: "x"}
	svc := &Service{Dedup: &fakeDedup{seen: map[string]bool{}}, Generator: gen}

	env := orders.Envelope{
		EventID:   uuid.NewString(),
		EventType: orders.EventOrderCreated,
		Payload:   kafkax.MustMarshal(orders.OrderCreatedPayload{OrderID: "o1"}),
	}
	err := svc.HandleLowStock(context.Background(), kafkago.Message{Value: kafkax.MustMarshal(env)})
	require.NoError(t, err)
	assert.Zero(t, gen.calls)
}

func TestHandleLowStock_BadJSON(t *testing.T) {
	svc := &Service{Generator: &fakeGenerator{}}
	err := svc.HandleLowStock(context.Background(), kafkago.Message{Value: []byte("{")})
	assert.Error(t, err)
}

func TestTemplateGenerator(t *testing.T) {
	text, err := TemplateGenerator{}.Describe(context.Background(), "Pesto", "sauce", 12, 20)
	require.NoError(t, err)
	assert.Contains(t, text, "Pesto")
	assert.Contains(t, text, "12")
	assert.Contains(t, text, "20")
}
