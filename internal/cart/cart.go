package cart

import "github.com/joao-fontenele/salmo-storefront/internal/domain"

// Cart holds the in-progress order for one visitor session. It is a plain
// state container; Store provides the shared, synchronized access to it.
//
// Merge policy: adding a product that is already in the cart adds the
// incoming quantity to the existing line. A cart never holds two lines for
// the same product id.
type Cart struct {
	items []domain.LineItem
}

func (c *Cart) AddItem(item domain.LineItem) {
	if item.Quantity < 1 {
		item.Quantity = 1
	}
	for i := range c.items {
		if c.items[i].ProductID == item.ProductID {
			c.items[i].Quantity += item.Quantity
			return
		}
	}
	c.items = append(c.items, item)
}

// UpdateQuantity sets the line's quantity. A quantity of zero or less
// removes the line; quantities never persist at <= 0.
func (c *Cart) UpdateQuantity(productID string, quantity int) {
	if quantity <= 0 {
		c.RemoveItem(productID)
		return
	}
	for i := range c.items {
		if c.items[i].ProductID == productID {
			c.items[i].Quantity = quantity
			return
		}
	}
}

func (c *Cart) RemoveItem(productID string) {
	for i := range c.items {
		if c.items[i].ProductID == productID {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return
		}
	}
}

func (c *Cart) Clear() {
	c.items = nil
}

// Items returns a copy of the current lines.
func (c *Cart) Items() []domain.LineItem {
	items := make([]domain.LineItem, len(c.items))
	copy(items, c.items)
	return items
}

// Total is derived on every call, never stored.
func (c *Cart) Total() float64 {
	var total float64
	for _, item := range c.items {
		total += item.Price * float64(item.Quantity)
	}
	return total
}

func (c *Cart) Count() int {
	var count int
	for _, item := range c.items {
		count += item.Quantity
	}
	return count
}
