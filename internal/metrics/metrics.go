package metrics

import (
	"net/http"

	"github.com/pixil98/go-adventure/internal/game"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	namespace = "adventure"

	labelVerb    = "verb"
	labelOutcome = "outcome"
)

// Metrics counts gameplay events on its own registry.
type Metrics struct {
	registry     *prometheus.Registry
	commands     *prometheus.CounterVec
	roomsEntered prometheus.Counter
	victories    prometheus.Counter
}

func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		commands: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "commands_total",
				Help:      "Commands executed, by verb and outcome.",
			},
			[]string{labelVerb, labelOutcome},
		),
		roomsEntered: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rooms_entered_total",
			Help:      "Successful moves into a room.",
		}),
		victories: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "victories_total",
			Help:      "Sessions won.",
		}),
	}

	m.registry.MustRegister(m.commands, m.roomsEntered, m.victories)
	return m
}

// ObserveCommand satisfies commands.Recorder.
func (m *Metrics) ObserveCommand(verb string, outcome game.Outcome) {
	m.commands.WithLabelValues(verb, outcome.String()).Inc()

	if verb == "go" && outcome != game.Failure {
		m.roomsEntered.Inc()
	}
	if outcome == game.Victory {
		m.victories.Inc()
	}
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
