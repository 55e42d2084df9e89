// Package model contains domain models passed between layers.
package model

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Category is the fixed classification of an item. It is stored and
// transported as its lowercase string value, never as a numeric tag.
type Category string

// The only two valid categories.
const (
	CategoryTools       Category = "tools"
	CategoryConsumables Category = "consumables"
)

// Valid reports whether c is one of the fixed category values.
func (c Category) Valid() bool {
	return c == CategoryTools || c == CategoryConsumables
}

// String returns the wire value.
func (c Category) String() string { return string(c) }

// ParseCategory converts a raw string into a Category, rejecting anything
// outside the fixed set before it can reach the store.
func ParseCategory(s string) (Category, error) {
	c := Category(strings.ToLower(strings.TrimSpace(s)))
	if !c.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidCategory, s)
	}
	return c, nil
}

// UnmarshalJSON validates the category value while decoding, so malformed
// stored records and request bodies fail at the boundary.
func (c *Category) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidCategory, err)
	}
	parsed, err := ParseCategory(s)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// Item is the sole entity of the service. ID is assigned by the external
// store and is absent on create payloads.
type Item struct {
	Name     string   `json:"name"`
	Price    float64  `json:"price"`
	Count    int      `json:"count"`
	Category Category `json:"category"`
	ID       int64    `json:"id,omitempty"`
}

// Validate checks the data-model invariants. Price carries no hard bound
// here; the update route constrains it at the parameter level.
func (i Item) Validate() error {
	switch {
	case strings.TrimSpace(i.Name) == "":
		return fmt.Errorf("%w: name must not be empty", ErrInvalidItem)
	case i.Count < 0:
		return fmt.Errorf("%w: count must not be negative", ErrInvalidItem)
	case !i.Category.Valid():
		return fmt.Errorf("%w: %q", ErrInvalidCategory, i.Category)
	}
	return nil
}

// Record returns the store representation of the item for inserts: the
// category flattened to its string value and no id, which the store assigns.
func (i Item) Record() map[string]any {
	return map[string]any{
		"name":     i.Name,
		"price":    i.Price,
		"count":    i.Count,
		"category": i.Category.String(),
	}
}
