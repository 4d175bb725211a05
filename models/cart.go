package models

// CartLine represents one product in the cart with its quantity.
// A line present in the cart always has Qty >= 1; dropping to zero removes
// the line instead of keeping it around.
type CartLine struct {
	ProductID int    `json:"productId"`
	Name      string `json:"name"`
	Price     int64  `json:"price"`
	Qty       int    `json:"qty"`
}

// Subtotal returns Qty * Price for the line.
func (l CartLine) Subtotal() int64 {
	return int64(l.Qty) * l.Price
}

// Cart holds the lines a customer intends to order. Lines keep insertion
// order for display; at most one line exists per product id.
type Cart struct {
	Lines []CartLine `json:"lines"`
}

// SetQuantity adjusts the quantity of the given product by delta.
// Add, increment and decrement all funnel through here so the zero-quantity
// removal rule is enforced in exactly one place:
//   - existing line: quantity moves by delta; <= 0 removes the line
//   - no line and delta > 0: a new line is created with quantity delta
//   - no line and delta <= 0: no-op
func (c *Cart) SetQuantity(p Product, delta int) {
	for i := range c.Lines {
		if c.Lines[i].ProductID != p.ID {
			continue
		}
		newQty := c.Lines[i].Qty + delta
		if newQty <= 0 {
			c.Lines = append(c.Lines[:i], c.Lines[i+1:]...)
			return
		}
		c.Lines[i].Qty = newQty
		return
	}
	if delta > 0 {
		c.Lines = append(c.Lines, CartLine{
			ProductID: p.ID,
			Name:      p.Name,
			Price:     p.Price,
			Qty:       delta,
		})
	}
}

// TotalCount returns the sum of all line quantities. Computed on demand so it
// can never diverge from the lines.
func (c *Cart) TotalCount() int {
	var n int
	for _, l := range c.Lines {
		n += l.Qty
	}
	return n
}

// TotalPrice returns the sum of qty * unit price over all lines, in kwanzas.
func (c *Cart) TotalPrice() int64 {
	var t int64
	for _, l := range c.Lines {
		t += l.Subtotal()
	}
	return t
}

// IsEmpty reports whether the cart has no lines.
func (c *Cart) IsEmpty() bool {
	return len(c.Lines) == 0
}

// Clear removes all lines.
func (c *Cart) Clear() {
	c.Lines = nil
}

// Snapshot returns a copy of the cart's lines so callers can render or
// project an order without aliasing the live cart.
func (c *Cart) Snapshot() Cart {
	lines := make([]CartLine, len(c.Lines))
	copy(lines, c.Lines)
	return Cart{Lines: lines}
}

// UpdateCartRequest represents the request body for a cart mutation
// Example: {"productId": 1, "delta": 1}
type UpdateCartRequest struct {
	ProductID int `json:"productId"`
	Delta     int `json:"delta"`
}
