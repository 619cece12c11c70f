package game

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Item is a named, priced object. At any moment it lives in exactly one
// room or one inventory.
type Item struct {
	Name        string `json:"name" yaml:"name" validate:"required"`
	Description string `json:"description" yaml:"description" validate:"required"`
	Value       *Money `json:"value" yaml:"value" validate:"required,min=0"`
}

// Cost returns the item's value, zero when none is set.
func (i *Item) Cost() Money {
	if i.Value == nil {
		return 0
	}
	return *i.Value
}

// String renders the item the way listings show it.
func (i *Item) String() string {
	return i.Name + " - " + i.Cost().String()
}

// Canonical returns the lookup key for an item, requirement or direction
// name. Lookups ignore case and runs of whitespace.
func Canonical(name string) string {
	return strings.Join(strings.Fields(cases.Lower(language.Und).String(name)), " ")
}
