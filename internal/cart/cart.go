// Package cart holds a diner's cart lines and staged quantities.
//
// The cart only looks at an item's ID and Price; everything else is carried
// along so the lines can be displayed and submitted later.
package cart

import (
	"sync"

	"aroma-storefront/internal/domain"

	"github.com/shopspring/decimal"
)

type Cart struct {
	mu     sync.Mutex
	lines  []domain.CartLine
	staged map[int]int
}

func New() *Cart {
	return &Cart{staged: map[int]int{}}
}

// Restore builds a cart from a stored state. Lines with a non-positive
// quantity are dropped and duplicate item ids are merged.
func Restore(state domain.CartState) *Cart {
	c := New()
	for _, line := range state.Lines {
		if line.Qty > 0 {
			c.addLocked(line.Item, line.Qty)
		}
	}
	for id, qty := range state.Staged {
		if qty > 0 {
			c.staged[id] = qty
		}
	}
	return c
}

func (c *Cart) Snapshot() domain.CartState {
	c.mu.Lock()
	defer c.mu.Unlock()

	state := domain.CartState{Lines: c.copyLines()}
	for id, qty := range c.staged {
		if qty > 0 {
			if state.Staged == nil {
				state.Staged = map[int]int{}
			}
			state.Staged[id] = qty
		}
	}
	return state
}

// Add increments the line for item by one, appending a new line if needed.
func (c *Cart) Add(item domain.MenuItem) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.addLocked(item, 1)
}

// Remove decrements the line for id by one and deletes it once it reaches zero.
// It reports whether a line for id existed.
func (c *Cart) Remove(id int) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.lines {
		if c.lines[i].Item.ID != id {
			continue
		}
		c.lines[i].Qty--
		if c.lines[i].Qty <= 0 {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
		}
		return true
	}
	return false
}

func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lines = nil
}

// Stage adjusts the staged quantity for id by delta, never going below zero,
// and returns the new staged quantity.
func (c *Cart) Stage(id, delta int) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	qty := c.staged[id] + delta
	if qty <= 0 {
		delete(c.staged, id)
		return 0
	}
	c.staged[id] = qty
	return qty
}

func (c *Cart) Staged(id int) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.staged[id]
}

// CommitStaged moves the staged quantity for item into the cart and resets it.
// It is a no-op returning false when nothing is staged.
func (c *Cart) CommitStaged(item domain.MenuItem) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	qty := c.staged[item.ID]
	if qty == 0 {
		return false
	}
	c.addLocked(item, qty)
	delete(c.staged, item.ID)
	return true
}

func (c *Cart) Quantity(id int) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, line := range c.lines {
		if line.Item.ID == id {
			return line.Qty
		}
	}
	return 0
}

func (c *Cart) Lines() []domain.CartLine {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.copyLines()
}

func (c *Cart) IsEmpty() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.lines) == 0
}

// Total is the exact sum of price * qty over all lines.
func (c *Cart) Total() decimal.Decimal {
	c.mu.Lock()
	defer c.mu.Unlock()
	return Total(c.lines)
}

// ItemCount is the sum of all quantities, used for the cart badge.
func (c *Cart) ItemCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	count := 0
	for _, line := range c.lines {
		count += line.Qty
	}
	return count
}

func Total(lines []domain.CartLine) decimal.Decimal {
	total := decimal.Zero
	for _, line := range lines {
		total = total.Add(LineTotal(line))
	}
	return total
}

func LineTotal(line domain.CartLine) decimal.Decimal {
	return line.Item.Price.Mul(decimal.NewFromInt(int64(line.Qty)))
}

func (c *Cart) addLocked(item domain.MenuItem, qty int) {
	for i := range c.lines {
		if c.lines[i].Item.ID == item.ID {
			c.lines[i].Qty += qty
			return
		}
	}
	c.lines = append(c.lines, domain.CartLine{Item: item, Qty: qty})
}

func (c *Cart) copyLines() []domain.CartLine {
	if len(c.lines) == 0 {
		return nil
	}
	out := make([]domain.CartLine, len(c.lines))
	copy(out, c.lines)
	return out
}
