package models

import "fmt"

// CartItem is one selected vaccine line. Price is in whole VND.
type CartItem struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Doses int    `json:"doses"`
	Price int64  `json:"price"`
}

// Cart holds the selected vaccine line items for one user. Item IDs are
// unique within a cart; totals are recomputed from the items on demand.
type Cart struct {
	Items []CartItem `json:"items"`
}

// Add appends an item, rejecting duplicates by ID and invalid lines.
func (c *Cart) Add(item CartItem) error {
	if item.ID == "" {
		return fmt.Errorf("cart item requires an id")
	}
	if item.Doses < 1 {
		return fmt.Errorf("cart item %s: doses must be at least 1", item.ID)
	}
	if item.Price < 0 {
		return fmt.Errorf("cart item %s: price must not be negative", item.ID)
	}
	for _, existing := range c.Items {
		if existing.ID == item.ID {
			return fmt.Errorf("cart item %s already present", item.ID)
		}
	}
	c.Items = append(c.Items, item)
	return nil
}

// Remove deletes the item with the given ID and reports whether it existed.
func (c *Cart) Remove(id string) bool {
	for i, item := range c.Items {
		if item.ID == id {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
			return true
		}
	}
	return false
}

// Total sums item prices.
func (c *Cart) Total() int64 {
	var total int64
	for _, item := range c.Items {
		total += item.Price
	}
	return total
}

// Count returns the number of line items.
func (c *Cart) Count() int {
	return len(c.Items)
}
