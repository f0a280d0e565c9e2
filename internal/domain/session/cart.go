package session

// Cart is the set of beat ids the client intends to purchase. It grows via
// Add and never shrinks here; removal and checkout live elsewhere. Cart is
// not safe for concurrent use on its own; Session serializes access.
type Cart struct {
	ids   []string // insertion order, for rendering
	index map[string]bool
}

// NewCart creates an empty cart.
func NewCart() *Cart {
	return &Cart{index: make(map[string]bool)}
}

// Add inserts the id. Adding a present id leaves the cart unchanged.
func (c *Cart) Add(id string) {
	if c.index[id] {
		return
	}
	c.index[id] = true
	c.ids = append(c.ids, id)
}

// Contains reports membership.
func (c *Cart) Contains(id string) bool {
	return c.index[id]
}

// IDs returns the carted ids in insertion order.
func (c *Cart) IDs() []string {
	out := make([]string, len(c.ids))
	copy(out, c.ids)
	return out
}

// Len returns the number of carted beats.
func (c *Cart) Len() int {
	return len(c.ids)
}
