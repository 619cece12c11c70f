package game

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Money is an amount in cents. World files state values in dollars.
type Money int64

// Dollars converts a dollar amount to Money, rounding to the nearest cent.
func Dollars(d float64) Money {
	return Money(math.Round(d * 100))
}

// Price returns d dollars as a pointer, the form Item.Value takes.
func Price(d float64) *Money {
	m := Dollars(d)
	return &m
}

// fromDollars converts a decoded dollar amount. Negative amounts never
// round up to zero.
func fromDollars(d float64) Money {
	m := Dollars(d)
	if d < 0 && m == 0 {
		return -1
	}
	return m
}

// Dollars returns the amount in dollars.
func (m Money) Dollars() float64 {
	return float64(m) / 100
}

// String renders the amount with a leading $ and no trailing zeros ($100, $2.5).
func (m Money) String() string {
	return "$" + strconv.FormatFloat(m.Dollars(), 'f', -1, 64)
}

func (m *Money) UnmarshalJSON(b []byte) error {
	var d float64
	if err := json.Unmarshal(b, &d); err != nil {
		return fmt.Errorf("value must be a number: %w", err)
	}
	*m = fromDollars(d)
	return nil
}

func (m Money) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.Dollars())
}

func (m *Money) UnmarshalYAML(node *yaml.Node) error {
	var d float64
	if err := node.Decode(&d); err != nil {
		return fmt.Errorf("value must be a number: %w", err)
	}
	*m = fromDollars(d)
	return nil
}
