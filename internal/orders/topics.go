package orders

const (
	TopicOrderCreated = "order.created"
	TopicLowStock     = "inventory.low_stock"
)

// Partition key = entity id, so all events for one order or one ingredient
// keep their ordering.
func PartitionKey(id string) []byte { return []byte(id) }
