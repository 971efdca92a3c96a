// Package cart holds the shopper's pending selection between runs.
package cart

import (
	"encoding/json"
	"fmt"

	"desi-beats/storefront/internal/domain"

	"github.com/shopspring/decimal"
)

// Item is one cart line. MenuItem is the snapshot taken when the item was
// first added; later catalog changes do not touch it.
type Item struct {
	MenuItem domain.MenuItem `json:"menuItem"`
	Quantity int             `json:"quantity"`
}

type state struct {
	Items []Item `json:"items"`
}

// Cart keeps at most one line per menu item id, each with quantity >= 1.
// Every mutation is written through to the store before it returns.
type Cart struct {
	store Store
	items []Item
}

// Load restores the cart saved under StorageKey. A missing key gives an
// empty cart; stored lines with a non-positive quantity are dropped.
func Load(store Store) (*Cart, error) {
	c := &Cart{store: store}
	data, ok, err := store.Get(StorageKey)
	if err != nil {
		return nil, fmt.Errorf("load cart: %w", err)
	}
	if !ok || len(data) == 0 {
		return c, nil
	}

	var st state
	if err := json.Unmarshal(data, &st); err != nil {
		return nil, fmt.Errorf("decode cart: %w", err)
	}
	for _, it := range st.Items {
		if it.Quantity <= 0 {
			continue
		}
		if i := c.index(it.MenuItem.ID); i >= 0 {
			c.items[i].Quantity += it.Quantity
			continue
		}
		c.items = append(c.items, it)
	}
	return c, nil
}

func (c *Cart) index(menuItemID string) int {
	for i, it := range c.items {
		if it.MenuItem.ID == menuItemID {
			return i
		}
	}
	return -1
}

// AddItem increments the line for item.ID or appends a new line with
// quantity 1.
func (c *Cart) AddItem(item domain.MenuItem) error {
	if i := c.index(item.ID); i >= 0 {
		c.items[i].Quantity++
	} else {
		c.items = append(c.items, Item{MenuItem: item, Quantity: 1})
	}
	return c.save()
}

func (c *Cart) RemoveItem(menuItemID string) error {
	i := c.index(menuItemID)
	if i < 0 {
		return nil
	}
	c.items = append(c.items[:i], c.items[i+1:]...)
	return c.save()
}

// UpdateQuantity sets an absolute quantity; zero or less removes the line.
// Unknown ids are ignored.
func (c *Cart) UpdateQuantity(menuItemID string, quantity int) error {
	if quantity <= 0 {
		return c.RemoveItem(menuItemID)
	}
	i := c.index(menuItemID)
	if i < 0 {
		return nil
	}
	c.items[i].Quantity = quantity
	return c.save()
}

func (c *Cart) Clear() error {
	c.items = nil
	return c.save()
}

// Items returns a copy of the lines in insertion order.
func (c *Cart) Items() []Item {
	return append([]Item(nil), c.items...)
}

func (c *Cart) IsEmpty() bool {
	return len(c.items) == 0
}

func (c *Cart) TotalItems() int {
	total := 0
	for _, it := range c.items {
		total += it.Quantity
	}
	return total
}

// TotalPrice sums unit price times quantity in exact decimal arithmetic,
// rounded to two places.
func (c *Cart) TotalPrice() decimal.Decimal {
	total := decimal.Zero
	for _, it := range c.items {
		line := decimal.NewFromFloat(it.MenuItem.Price).Mul(decimal.NewFromInt(int64(it.Quantity)))
		total = total.Add(line)
	}
	return total.Round(2)
}

func (c *Cart) save() error {
	items := c.items
	if items == nil {
		items = []Item{}
	}
	data, err := json.Marshal(state{Items: items})
	if err != nil {
		return err
	}
	if err := c.store.Set(StorageKey, data); err != nil {
		return fmt.Errorf("save cart: %w", err)
	}
	return nil
}
