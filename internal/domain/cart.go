package domain

import (
	"sync"

	"github.com/shopspring/decimal"
)

// CartItem is a product paired with a purchase quantity. Quantity is >= 1
// for as long as the item is in a cart.
type CartItem struct {
	Product
	Quantity int `json:"quantity"`
}

// Cart holds the line items of one session. Items keep the order in which
// their product was first added. Count and Total are derived on every call.
type Cart struct {
	mu          sync.Mutex
	items       []CartItem
	maxQuantity int
}

// NewCart returns an empty cart. maxQuantity caps a single line's quantity;
// zero or negative means uncapped.
func NewCart(maxQuantity int) *Cart {
	return &Cart{maxQuantity: maxQuantity}
}

// Add increments the quantity of the product's line, creating it with
// quantity 1 if the product is not in the cart yet.
func (c *Cart) Add(p Product) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if i := c.indexOf(p.ID); i >= 0 {
		c.items[i].Quantity = c.clamp(c.items[i].Quantity + 1)
		return
	}
	c.items = append(c.items, CartItem{Product: p, Quantity: 1})
}

// UpdateQuantity sets the quantity of an existing line. Values below 1 are
// ignored; removing a line is done with Remove.
func (c *Cart) UpdateQuantity(id, quantity int) {
	if quantity < 1 {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	if i := c.indexOf(id); i >= 0 {
		c.items[i].Quantity = c.clamp(quantity)
	}
}

// Remove deletes the line for id. Unknown ids are a no-op.
func (c *Cart) Remove(id int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if i := c.indexOf(id); i >= 0 {
		c.items = append(c.items[:i], c.items[i+1:]...)
	}
}

// Items returns a copy of the cart lines.
func (c *Cart) Items() []CartItem {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]CartItem, len(c.items))
	copy(out, c.items)
	return out
}

// Quantity returns the quantity of the line for id, or 0 if absent.
func (c *Cart) Quantity(id int) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	if i := c.indexOf(id); i >= 0 {
		return c.items[i].Quantity
	}
	return 0
}

// Count is the sum of all line quantities.
func (c *Cart) Count() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	n := 0
	for _, item := range c.items {
		n += item.Quantity
	}
	return n
}

// Total is the sum of price x quantity over all lines.
func (c *Cart) Total() decimal.Decimal {
	c.mu.Lock()
	defer c.mu.Unlock()

	total := decimal.Zero
	for _, item := range c.items {
		line := decimal.NewFromFloat(item.Price).Mul(decimal.NewFromInt(int64(item.Quantity)))
		total = total.Add(line)
	}
	return total
}

// TotalString renders Total with two decimal places, e.g. "25.00".
func (c *Cart) TotalString() string {
	return c.Total().StringFixed(2)
}

func (c *Cart) indexOf(id int) int {
	for i := range c.items {
		if c.items[i].ID == id {
			return i
		}
	}
	return -1
}

func (c *Cart) clamp(quantity int) int {
	if c.maxQuantity > 0 && quantity > c.maxQuantity {
		return c.maxQuantity
	}
	return quantity
}
