package storage

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/pixil98/go-adventure/internal/game"
	"github.com/pixil98/go-errors"
	"gopkg.in/yaml.v3"
)

const (
	configurationFile = "configuration.json"
	roomsDir          = "rooms"
)

// Format is the encoding of a world description file.
type Format int

const (
	FormatJSON Format = iota
	FormatYAML
)

func (f Format) String() string {
	switch f {
	case FormatJSON:
		return "json"
	case FormatYAML:
		return "yaml"
	default:
		return fmt.Sprintf("format(%d)", int(f))
	}
}

// FormatFromPath picks the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return 0, fmt.Errorf("unsupported world file extension %q", filepath.Ext(path))
	}
}

// WorldFile is the decoded form of a world description.
type WorldFile struct {
	Configuration *game.Configuration   `json:"configuration" yaml:"configuration" validate:"required"`
	Rooms         map[string]*game.Room `json:"rooms" yaml:"rooms" validate:"required,min=1,dive,required"`
}

// Loader decodes and validates world descriptions.
type Loader struct {
	validate *validator.Validate
}

func NewLoader() *Loader {
	return &Loader{validate: newValidator()}
}

// LoadPath loads a world from a single JSON or YAML file, or from an asset
// directory holding configuration.json and rooms/*.json.
func (l *Loader) LoadPath(path string) (*game.World, game.Configuration, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, game.Configuration{}, fmt.Errorf("reading world: %w", err)
	}

	if info.IsDir() {
		wf, assetErr := readAssetDir(path)
		return l.build(wf, assetErr)
	}

	format, err := FormatFromPath(path)
	if err != nil {
		return nil, game.Configuration{}, err
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, game.Configuration{}, fmt.Errorf("opening world: %w", err)
	}
	// Ignoring close error - file is read-only, error is not actionable
	defer func() { _ = file.Close() }()

	return l.Load(file, format)
}

// Load decodes a world description from r. Every problem with the data is
// reported at once in an error wrapping ErrInvalidWorldData.
func (l *Loader) Load(r io.Reader, format Format) (*game.World, game.Configuration, error) {
	wf, err := decode(r, format)
	if err != nil {
		return nil, game.Configuration{}, fmt.Errorf("%w: %w", ErrInvalidWorldData, err)
	}
	return l.build(wf, nil)
}

func (l *Loader) build(wf *WorldFile, prior error) (*game.World, game.Configuration, error) {
	el := errors.NewErrorList()
	el.Add(prior)
	el.Add(structErrors(l.validate, wf))

	keys := make([]string, 0, len(wf.Rooms))
	for key := range wf.Rooms {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		room := wf.Rooms[key]
		if room == nil {
			continue
		}
		if err := room.Validate(); err != nil {
			el.Add(fmt.Errorf("rooms[%s]: %w", key, err))
		}
	}

	world := game.NewWorld(wf.Rooms)
	el.Add(world.Resolve())

	var cfg game.Configuration
	if wf.Configuration != nil {
		cfg = *wf.Configuration
		el.Add(checkConfiguration(world, cfg))
	}

	if err := el.Err(); err != nil {
		return nil, game.Configuration{}, fmt.Errorf("%w: %w", ErrInvalidWorldData, err)
	}
	return world, cfg, nil
}

// checkConfiguration verifies the configuration refers to rooms and items
// that exist in the world.
func checkConfiguration(world *game.World, cfg game.Configuration) error {
	el := errors.NewErrorList()

	if cfg.StartingRoom != "" && world.Room(cfg.StartingRoom) == nil {
		el.Add(fmt.Errorf("configuration.starting_room: %w: %q", game.ErrRoomNotFound, cfg.StartingRoom))
	}
	if cfg.WinningRoom != "" && world.Room(cfg.WinningRoom) == nil {
		el.Add(fmt.Errorf("configuration.winning_room: %w: %q", game.ErrRoomNotFound, cfg.WinningRoom))
	}

	for _, name := range cfg.WinningItems {
		if !worldHasItem(world, name) {
			el.Add(fmt.Errorf("configuration.winning_items: no room holds %q", name))
		}
	}

	return el.Err()
}

func worldHasItem(world *game.World, name string) bool {
	for _, key := range world.Keys() {
		if world.Room(key).HasItem(name) {
			return true
		}
	}
	return false
}

func decode(r io.Reader, format Format) (*WorldFile, error) {
	wf := &WorldFile{}

	switch format {
	case FormatJSON:
		dec := json.NewDecoder(r)
		dec.DisallowUnknownFields()
		if err := dec.Decode(wf); err != nil {
			return nil, fmt.Errorf("decoding json: %w", err)
		}
	case FormatYAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		if err := dec.Decode(wf); err != nil {
			return nil, fmt.Errorf("decoding yaml: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported format %s", format)
	}

	return wf, nil
}

// readAssetDir assembles a WorldFile from an asset directory. Problems are
// returned alongside whatever could be read so validation can continue.
func readAssetDir(dir string) (*WorldFile, error) {
	el := errors.NewErrorList()
	wf := &WorldFile{}

	cfg, err := readConfiguration(filepath.Join(dir, configurationFile))
	if err != nil {
		el.Add(fmt.Errorf("%s: %w", configurationFile, err))
	}
	wf.Configuration = cfg

	rooms, err := NewFileStore[*game.Room](filepath.Join(dir, roomsDir))
	if err != nil {
		el.Add(fmt.Errorf("%s: %w", roomsDir, err))
	}
	if all := rooms.GetAll(); len(all) > 0 {
		wf.Rooms = all
	}

	return wf, el.Err()
}

func readConfiguration(path string) (*game.Configuration, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening file: %w", err)
	}
	// Ignoring close error - file is read-only, error is not actionable
	defer func() { _ = file.Close() }()

	cfg := &game.Configuration{}
	dec := json.NewDecoder(file)
	dec.DisallowUnknownFields()
	if err := dec.Decode(cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling configuration: %w", err)
	}
	return cfg, nil
}
