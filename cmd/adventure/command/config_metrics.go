package command

import (
	"fmt"
	"net"

	"github.com/pixil98/go-adventure/internal/metrics"
)

// MetricsConfig enables the metrics endpoint. An empty address disables it.
type MetricsConfig struct {
	Address string `json:"address"`
}

func (c *MetricsConfig) enabled() bool {
	return c.Address != ""
}

func (c *MetricsConfig) validate() error {
	if !c.enabled() {
		return nil
	}
	_, _, err := net.SplitHostPort(c.Address)
	if err != nil {
		return fmt.Errorf("metrics: invalid address %q: %w", c.Address, err)
	}
	return nil
}

func (c *MetricsConfig) BuildServer(m *metrics.Metrics, done <-chan struct{}) *metrics.Server {
	return metrics.NewServer(c.Address, m, done)
}
