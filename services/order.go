package services

import (
	"errors"
	"strings"
)

var ErrInvalidItem = errors.New("item name must be non-empty and quantity at least 1")

// OrderLine is one accumulated item of an in-progress order. The unit price
// is captured when the line is first added and is not re-resolved afterwards.
type OrderLine struct {
	Name  string
	Qty   int
	Price float64
}

// Amount is the line subtotal.
func (l OrderLine) Amount() float64 {
	return float64(l.Qty) * l.Price
}

// Order is the mutable, session-local list of items before a bill is
// generated. Lines are merged case-insensitively by name: at most one line
// exists per distinct name, with the first-seen casing, position and price
// kept and quantities accumulated.
type Order struct {
	lines []OrderLine
}

// AddItem appends a new line or, when a line with the same case-insensitive
// name already exists, increments its quantity. Empty names and quantities
// below 1 are rejected with ErrInvalidItem and leave the order unchanged.
func (o *Order) AddItem(name string, qty int, price float64) error {
	name = strings.TrimSpace(name)
	if name == "" || qty < 1 {
		return ErrInvalidItem
	}

	for i := range o.lines {
		if strings.EqualFold(o.lines[i].Name, name) {
			o.lines[i].Qty += qty
			return nil
		}
	}

	o.lines = append(o.lines, OrderLine{Name: name, Qty: qty, Price: price})
	return nil
}

// RemoveItem deletes the line at the given position. Out-of-range indexes
// are a no-op.
func (o *Order) RemoveItem(index int) {
	if index < 0 || index >= len(o.lines) {
		return
	}
	o.lines = append(o.lines[:index], o.lines[index+1:]...)
}

// Clear empties the order.
func (o *Order) Clear() {
	o.lines = nil
}

// Total is recomputed from the lines on every call.
func (o *Order) Total() float64 {
	var total float64
	for _, l := range o.lines {
		total += l.Amount()
	}
	return total
}

// Lines returns a snapshot copy of the current lines in insertion order.
func (o *Order) Lines() []OrderLine {
	out := make([]OrderLine, len(o.lines))
	copy(out, o.lines)
	return out
}

// Len reports the number of distinct lines.
func (o *Order) Len() int {
	return len(o.lines)
}
