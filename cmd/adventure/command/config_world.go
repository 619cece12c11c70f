package command

import (
	"fmt"
	"os"

	"github.com/pixil98/go-adventure/internal/game"
	"github.com/pixil98/go-adventure/internal/storage"
)

// EnvWorldPath overrides world.path when set.
const EnvWorldPath = "ADVENTURE_WORLD"

// WorldConfig locates the world description: a .json/.yaml file or an
// asset directory.
type WorldConfig struct {
	Path string `json:"path"`
}

func (c *WorldConfig) path() string {
	if p := os.Getenv(EnvWorldPath); p != "" {
		return p
	}
	return c.Path
}

func (c *WorldConfig) validate() error {
	p := c.path()
	if p == "" {
		return fmt.Errorf("world: path is required")
	}
	_, err := os.Stat(p)
	if err != nil {
		return fmt.Errorf("world: invalid path %q: %w", p, err)
	}

	return nil
}

// Load reads and validates the configured world.
func (c *WorldConfig) Load() (*game.World, game.Configuration, error) {
	return storage.NewLoader().LoadPath(c.path())
}
