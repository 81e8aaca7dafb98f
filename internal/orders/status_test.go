package orders

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var allStatuses = []Status{StatusReceived, StatusInKitchen, StatusSentToDelivery, StatusDelivered}

func TestCanTransition_PermissiveAcceptsEveryPair(t *testing.T) {
	for _, from := range allStatuses {
		for _, to := range allStatuses {
			assert.True(t, CanTransition(from, to, false), "%s -> %s", from, to)
		}
	}
}

func TestCanTransition_StrictForwardOnly(t *testing.T) {
	allowed := map[Status]Status{
		StatusReceived:       StatusInKitchen,
		StatusInKitchen:      StatusSentToDelivery,
		StatusSentToDelivery: StatusDelivered,
	}
	for _, from := range allStatuses {
		for _, to := range allStatuses {
			want := from == to || allowed[from] == to
			assert.Equal(t, want, CanTransition(from, to, true), "%s -> %s", from, to)
		}
	}
}

func TestCanTransition_StrictDeliveredIsTerminal(t *testing.T) {
	assert.False(t, CanTransition(StatusDelivered, StatusReceived, true))
	assert.True(t, CanTransition(StatusDelivered, StatusDelivered, true))
}

func TestCanTransition_RejectsUnknownStatus(t *testing.T) {
	assert.False(t, CanTransition(StatusReceived, Status("Lost In Space"), false))
	assert.False(t, CanTransition(Status(""), StatusReceived, false))
}

func TestStatusValid(t *testing.T) {
	for _, s := range allStatuses {
		assert.True(t, s.Valid(), "%s", s)
	}
	assert.False(t, Status("Pending").Valid())
}
