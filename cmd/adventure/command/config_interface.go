package command

import (
	"fmt"

	"github.com/pixil98/go-adventure/internal/display"
	"github.com/pixil98/go-errors"
)

type InterfaceType int

const (
	InterfaceTypeConsole InterfaceType = iota
	InterfaceTypeTUI
)

func (it *InterfaceType) UnmarshalText(text []byte) error {
	switch string(text) {
	case "console":
		*it = InterfaceTypeConsole
	case "tui":
		*it = InterfaceTypeTUI
	default:
		return fmt.Errorf("unknown interface type: %s", text)
	}
	return nil
}

func (it InterfaceType) String() string {
	switch it {
	case InterfaceTypeConsole:
		return "console"
	case InterfaceTypeTUI:
		return "tui"
	default:
		return fmt.Sprintf("InterfaceType(%d)", int(it))
	}
}

type InterfaceConfig struct {
	Type  InterfaceType `json:"type"`
	Width int           `json:"width"`
	// Debug enables the teleport command.
	Debug bool `json:"debug"`
}

func (c *InterfaceConfig) validate() error {
	el := errors.NewErrorList()

	if c.Type != InterfaceTypeConsole && c.Type != InterfaceTypeTUI {
		el.Add(fmt.Errorf("interface: unknown type %d", c.Type))
	}
	if c.Width < 0 {
		el.Add(fmt.Errorf("interface: width must not be negative"))
	}

	return el.Err()
}

func (c *InterfaceConfig) width() int {
	if c.Width == 0 {
		return display.DefaultWidth
	}
	return c.Width
}
