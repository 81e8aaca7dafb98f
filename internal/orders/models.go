package orders

import (
	"time"

	"github.com/google/uuid"

	"github.com/pizzacraft/backend/internal/catalog"
)

// Selection is one configured pizza. Slots left nil were not chosen and
// contribute nothing to the total. The copies are value snapshots taken at
// placement time; later catalog changes do not alter historical orders.
type Selection struct {
	Base    *catalog.Ingredient  `json:"base"`
	Sauce   *catalog.Ingredient  `json:"sauce"`
	Cheese  *catalog.Ingredient  `json:"cheese"`
	Veggies []catalog.Ingredient `json:"veggies"`
}

// Total sums the slot prices, missing slots counting as zero.
func (s Selection) Total() int {
	total := 0
	for _, slot := range []*catalog.Ingredient{s.Base, s.Sauce, s.Cheese} {
		if slot != nil {
			total += slot.Price
		}
	}
	for _, v := range s.Veggies {
		total += v.Price
	}
	return total
}

// Consumed lists every ingredient the selection draws stock from.
func (s Selection) Consumed() []catalog.Ingredient {
	var out []catalog.Ingredient
	for _, slot := range []*catalog.Ingredient{s.Base, s.Sauce, s.Cheese} {
		if slot != nil {
			out = append(out, *slot)
		}
	}
	out = append(out, s.Veggies...)
	return out
}

// SelectionInput is the wire shape: ingredient ids per slot.
type SelectionInput struct {
	Base    string   `json:"base"`
	Sauce   string   `json:"sauce"`
	Cheese  string   `json:"cheese"`
	Veggies []string `json:"veggies"`
}

// DedupeVeggies drops repeated veggie ids, keeping first occurrence order.
func (in SelectionInput) DedupeVeggies() SelectionInput {
	seen := make(map[string]bool, len(in.Veggies))
	out := in.Veggies[:0:0]
	for _, id := range in.Veggies {
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	in.Veggies = out
	return in
}

type Order struct {
	ID         string    `json:"id"`
	UserID     string    `json:"user_id"`
	UserEmail  string    `json:"user_email"`
	Items      Selection `json:"items"`
	Total      int       `json:"total"`
	Status     Status    `json:"status"`
	PaymentRef string    `json:"payment_ref,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// NewID returns a collision-free order id with a human-readable prefix.
func NewID() string {
	return "ORD-" + uuid.NewString()
}
