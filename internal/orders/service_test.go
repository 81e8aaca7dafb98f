package orders

import (
	"context"
	"encoding/json"
	"testing"

	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pizzacraft/backend/internal/catalog"
)

type fakeStore struct {
	lastInput     SelectionInput
	created       Order
	levels        []catalog.Ingredient
	byID          map[string]Order
	statusUpdates []Status
}

func (f *fakeStore) CreateOrder(_ context.Context, userID, userEmail string, in SelectionInput, paymentRef string) (Order, []catalog.Ingredient, error) {
	f.lastInput = in
	o := f.created
	o.UserID = userID
	o.UserEmail = userEmail
	o.PaymentRef = paymentRef
	return o, f.levels, nil
}

func (f *fakeStore) List(context.Context, string) ([]Order, error) { return nil, nil }

func (f *fakeStore) Get(_ context.Context, id string) (Order, error) {
	o, ok := f.byID[id]
	if !ok {
		return Order{}, ErrNotFound
	}
	return o, nil
}

func (f *fakeStore) UpdateStatus(_ context.Context, id string, status Status) (Order, error) {
	f.statusUpdates = append(f.statusUpdates, status)
	o := f.byID[id]
	o.Status = status
	f.byID[id] = o
	return o, nil
}

type fakeReporter struct{ reported []catalog.Ingredient }

func (f *fakeReporter) ReportLevel(_ context.Context, ing catalog.Ingredient) {
	f.reported = append(f.reported, ing)
}

type fakePublisher struct{ values [][]byte }

func (f *fakePublisher) Publish(_, value []byte, _ ...kafkago.Header) {
	f.values = append(f.values, value)
}

func TestPlaceOrder_DedupesVeggiesBeforePersisting(t *testing.T) {
	store := &fakeStore{created: Order{ID: NewID(), Status: StatusReceived}}
	svc := &Service{Store: store}

	_, err := svc.PlaceOrder(context.Background(), "u1", "u1@test.dev", SelectionInput{
		Base:    "b1",
		Veggies: []string{"v1", "v1", "v2"},
	}, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"v1", "v2"}, store.lastInput.Veggies)
}

func TestPlaceOrder_ReportsEveryDeductedLevel(t *testing.T) {
	store := &fakeStore{
		created: Order{ID: NewID(), Status: StatusReceived},
		levels: []catalog.Ingredient{
			{ID: "b1", Stock: 49},
			{ID: "s1", Stock: 19},
			{ID: "c1", Stock: 5},
		},
	}
	reporter := &fakeReporter{}
	svc := &Service{Store: store, Stock: reporter}

	_, err := svc.PlaceOrder(context.Background(), "u1", "u1@test.dev", SelectionInput{Base: "b1", Sauce: "s1", Cheese: "c1"}, "")
	require.NoError(t, err)
	require.Len(t, reporter.reported, 3)
	assert.Equal(t, 19, reporter.reported[1].Stock)
}

func TestPlaceOrder_PublishesCreatedEvent(t *testing.T) {
	base := catalog.Ingredient{ID: "b1", Price: 150}
	store := &fakeStore{
		created: Order{
			ID:     "ORD-test",
			Items:  Selection{Base: &base},
			Total:  150,
			Status: StatusReceived,
		},
	}
	pub := &fakePublisher{}
	svc := &Service{Store: store, Producer: pub, ServiceName: "api-test"}

	_, err := svc.PlaceOrder(context.Background(), "u1", "u1@test.dev", SelectionInput{Base: "b1"}, "pay-1")
	require.NoError(t, err)
	require.Len(t, pub.values, 1)

	var env Envelope
	require.NoError(t, json.Unmarshal(pub.values[0], &env))
	assert.Equal(t, EventOrderCreated, env.EventType)
	assert.Equal(t, "ORD-test", env.CorrelationID)

	var p OrderCreatedPayload
	require.NoError(t, json.Unmarshal(env.Payload, &p))
	assert.Equal(t, []string{"b1"}, p.ItemIDs)
	assert.Equal(t, 150, p.Total)
}

func TestSetStatus_PermissiveAllowsBackwardMove(t *testing.T) {
	store := &fakeStore{byID: map[string]Order{"o1": {ID: "o1", Status: StatusDelivered}}}
	svc := &Service{Store: store}

	o, err := svc.SetStatus(context.Background(), "o1", StatusReceived)
	require.NoError(t, err)
	assert.Equal(t, StatusReceived, o.Status)
}

func TestSetStatus_StrictRejectsBackwardMove(t *testing.T) {
	store := &fakeStore{byID: map[string]Order{"o1": {ID: "o1", Status: StatusDelivered}}}
	svc := &Service{Store: store, StrictStatus: true}

	_, err := svc.SetStatus(context.Background(), "o1", StatusReceived)
	assert.ErrorIs(t, err, ErrBadTransition)
	assert.Empty(t, store.statusUpdates)
}

func TestSetStatus_SameStatusIsIdempotent(t *testing.T) {
	store := &fakeStore{byID: map[string]Order{"o1": {ID: "o1", Status: StatusInKitchen}}}
	svc := &Service{Store: store}

	o, err := svc.SetStatus(context.Background(), "o1", StatusInKitchen)
	require.NoError(t, err)
	assert.Equal(t, StatusInKitchen, o.Status)
	assert.Empty(t, store.statusUpdates, "no write expected for a no-op transition")
}

func TestSetStatus_UnknownOrder(t *testing.T) {
	store := &fakeStore{byID: map[string]Order{}}
	svc := &Service{Store: store}

	_, err := svc.SetStatus(context.Background(), "missing", StatusInKitchen)
	assert.ErrorIs(t, err, ErrNotFound)
}
