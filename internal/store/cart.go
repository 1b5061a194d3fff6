package store

import "github.com/alterach/toko-kopi-khaleed/internal/entity"

// Cart keeps at most one line per product id, in insertion order.
type Cart struct {
	items    []entity.CartItem
	onChange ChangeFunc[[]entity.CartItem]
}

func NewCart(items []entity.CartItem, onChange ChangeFunc[[]entity.CartItem]) *Cart {
	return &Cart{items: cloneItems(items), onChange: onChange}
}

func (c *Cart) Items() []entity.CartItem {
	return cloneItems(c.items)
}

// AddItem increments the quantity of an existing line without touching its other
// fields, or appends a new line with quantity 1.
func (c *Cart) AddItem(item entity.CartItemInput) []entity.CartItem {
	if i := c.indexOf(item.ID); i >= 0 {
		c.items[i].Quantity++
		return c.commit()
	}

	c.items = append(c.items, entity.CartItem{
		ID:       item.ID,
		Name:     item.Name,
		Price:    item.Price,
		Image:    item.Image,
		Notes:    item.Notes,
		Quantity: 1,
	})
	return c.commit()
}

// UpdateQuantity sets the quantity of a line. Callers pass quantity >= 1.
func (c *Cart) UpdateQuantity(id string, quantity int) []entity.CartItem {
	if i := c.indexOf(id); i >= 0 {
		c.items[i].Quantity = quantity
	}
	return c.commit()
}

func (c *Cart) RemoveItem(id string) []entity.CartItem {
	if i := c.indexOf(id); i >= 0 {
		c.items = append(c.items[:i], c.items[i+1:]...)
	}
	return c.commit()
}

func (c *Cart) Clear() []entity.CartItem {
	c.items = nil
	return c.commit()
}

func (c *Cart) TotalPrice() int64 {
	var total int64
	for _, item := range c.items {
		total += item.Subtotal()
	}
	return total
}

func (c *Cart) TotalItems() int {
	total := 0
	for _, item := range c.items {
		total += item.Quantity
	}
	return total
}

func (c *Cart) Len() int {
	return len(c.items)
}

func (c *Cart) indexOf(id string) int {
	for i, item := range c.items {
		if item.ID == id {
			return i
		}
	}
	return -1
}

func (c *Cart) commit() []entity.CartItem {
	state := c.Items()
	if c.onChange != nil {
		c.onChange(state)
	}
	return state
}

func cloneItems(items []entity.CartItem) []entity.CartItem {
	out := make([]entity.CartItem, len(items))
	copy(out, items)
	return out
}
