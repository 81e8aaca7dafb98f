package orders

// Status wire strings match what the dashboard displays.
type Status string

const (
	StatusReceived       Status = "Order Received"
	StatusInKitchen      Status = "In the Kitchen"
	StatusSentToDelivery Status = "Sent to Delivery"
	StatusDelivered      Status = "Delivered"
)

func (s Status) Valid() bool {
	switch s {
	case StatusReceived, StatusInKitchen, StatusSentToDelivery, StatusDelivered:
		return true
	}
	return false
}

var forwardNext = map[Status]map[Status]bool{
	StatusReceived:       {StatusInKitchen: true},
	StatusInKitchen:      {StatusSentToDelivery: true},
	StatusSentToDelivery: {StatusDelivered: true},
	StatusDelivered:      {},
}

// CanTransition reports whether from->to is allowed. Permissive mode accepts
// any pair of valid statuses (manual override support); strict mode enforces
// the forward-only fulfillment flow. Same-status writes are always allowed.
func CanTransition(from, to Status, strict bool) bool {
	if !from.Valid() || !to.Valid() {
		return false
	}
	if !strict || from == to {
		return true
	}
	return forwardNext[from][to]
}
