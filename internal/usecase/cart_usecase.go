package usecase

import (
	"encoding/json"
	"sync"

	"mediazone/internal/domain/entity"
	"mediazone/internal/domain/repository"
	"mediazone/pkg/logger"
)

const cartStorageKey = "mediazone-cart"

// Cart is the storefront cart state container: an in-memory entry list
// hydrated from client storage on construction and written back in full on
// every mutation. Corrupt or missing stored state degrades to an empty cart.
type Cart struct {
	mu      sync.Mutex
	items   []entity.CartItem
	storage repository.ClientStorage
}

func NewCart(storage repository.ClientStorage) *Cart {
	cart := &Cart{storage: storage}

	if data, ok := storage.Get(cartStorageKey); ok {
		if err := json.Unmarshal(data, &cart.items); err != nil {
			logger.Error("failed to parse stored cart: %v", err)
			cart.items = nil
		}
	}

	return cart
}

// Add merges qty into an existing entry for the same product, or appends a
// new entry. A qty below 1 counts as 1.
func (c *Cart) Add(product entity.Product, qty int) {
	if qty < 1 {
		qty = 1
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	for i, item := range c.items {
		if item.ID == product.ID {
			c.items[i].Quantity += qty
			c.persist()
			return
		}
	}

	c.items = append(c.items, entity.CartItem{Product: product, Quantity: qty})
	c.persist()
}

func (c *Cart) Remove(productID string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.removeLocked(productID)
	c.persist()
}

// SetQuantity replaces the entry's quantity; zero or less removes the entry.
func (c *Cart) SetQuantity(productID string, qty int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if qty <= 0 {
		c.removeLocked(productID)
		c.persist()
		return
	}

	for i, item := range c.items {
		if item.ID == productID {
			c.items[i].Quantity = qty
			break
		}
	}
	c.persist()
}

func (c *Cart) Increment(productID string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i, item := range c.items {
		if item.ID == productID {
			c.items[i].Quantity++
			break
		}
	}
	c.persist()
}

// Decrement lowers the quantity by one; an entry reaching zero is removed
// rather than kept at zero.
func (c *Cart) Decrement(productID string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i, item := range c.items {
		if item.ID == productID {
			if item.Quantity <= 1 {
				c.removeLocked(productID)
			} else {
				c.items[i].Quantity--
			}
			break
		}
	}
	c.persist()
}

func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = nil
	c.persist()
}

// Total sums price times quantity over all entries.
func (c *Cart) Total() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	var total float64
	for _, item := range c.items {
		total += item.Price * float64(item.Quantity)
	}
	return total
}

// Count sums quantities over all entries.
func (c *Cart) Count() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	var count int
	for _, item := range c.items {
		count += item.Quantity
	}
	return count
}

func (c *Cart) Contains(productID string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, item := range c.items {
		if item.ID == productID {
			return true
		}
	}
	return false
}

func (c *Cart) Items() []entity.CartItem {
	c.mu.Lock()
	defer c.mu.Unlock()

	items := make([]entity.CartItem, len(c.items))
	copy(items, c.items)
	return items
}

func (c *Cart) removeLocked(productID string) {
	for i, item := range c.items {
		if item.ID == productID {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return
		}
	}
}

func (c *Cart) persist() {
	data, err := json.Marshal(c.items)
	if err != nil {
		logger.Error("failed to encode cart: %v", err)
		return
	}
	c.storage.Set(cartStorageKey, data)
}
