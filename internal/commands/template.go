package commands

import (
	"bytes"
	"fmt"
	"text/template"

	"github.com/Masterminds/sprig/v3"
	"github.com/pixil98/go-adventure/internal/game"
)

// templateFuncs provides utility functions for templates.
var templateFuncs = sprig.TxtFuncMap()

const roomTemplate = `{{ .Description }}
{{ if .Exits }}From here, you can go: {{ join ", " .Exits }}{{ else }}There is no way out of here.{{ end }}
{{ if not .Items }}There are no items here.{{ else if .Store }}Items for sale: {{ join ", " .Items }}{{ else }}Items visible: {{ join ", " .Items }}{{ end }}`

const inventoryTemplate = `{{ if .Items }}You have: {{ join ", " .Items }}{{ else }}You currently have no items.{{ end }}`

func execute(tmpl *template.Template, data any) (string, error) {
	var buf bytes.Buffer
	err := tmpl.Execute(&buf, data)
	if err != nil {
		return "", fmt.Errorf("executing template: %w", err)
	}

	return buf.String(), nil
}

// RoomView is the data behind the room description.
type RoomView struct {
	Description string
	Store       bool
	Exits       []string
	Items       []string
}

// InventoryView is the data behind the inventory listing.
type InventoryView struct {
	Items []string
}

func NewRoomView(r *game.Room) RoomView {
	v := RoomView{
		Description: r.Description,
		Store:       r.IsStore(),
	}
	for _, d := range r.Exits() {
		v.Exits = append(v.Exits, d.Key())
	}
	v.Items = FormatItems(r.ItemList())
	return v
}

func NewInventoryView(inv *game.Inventory) InventoryView {
	return InventoryView{Items: FormatItems(inv.Items())}
}

// FormatItems renders items as "Name - $value".
func FormatItems(items []*game.Item) []string {
	lines := make([]string, 0, len(items))
	for _, item := range items {
		lines = append(lines, item.String())
	}
	return lines
}

// views holds the compiled presentation templates.
type views struct {
	roomTmpl      *template.Template
	inventoryTmpl *template.Template
}

func newViews() (*views, error) {
	roomTmpl, err := template.New("room").Funcs(templateFuncs).Parse(roomTemplate)
	if err != nil {
		return nil, fmt.Errorf("parsing room template: %w", err)
	}
	inventoryTmpl, err := template.New("inventory").Funcs(templateFuncs).Parse(inventoryTemplate)
	if err != nil {
		return nil, fmt.Errorf("parsing inventory template: %w", err)
	}
	return &views{roomTmpl: roomTmpl, inventoryTmpl: inventoryTmpl}, nil
}

func (v *views) room(r *game.Room) (string, error) {
	return execute(v.roomTmpl, NewRoomView(r))
}

func (v *views) inventory(inv *game.Inventory) (string, error) {
	return execute(v.inventoryTmpl, NewInventoryView(inv))
}
