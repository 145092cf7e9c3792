// Package metrics exposes board activity as Prometheus counters.
package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "activity_board"

// Board counts finished catalogue loads and signup attempts.
type Board struct {
	loads   *prometheus.CounterVec
	signups *prometheus.CounterVec
}

func NewBoard(reg prometheus.Registerer) (*Board, error) {
	m := &Board{
		loads: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "loads_total",
			Help:      "Activity catalogue loads by result.",
		}, []string{"result"}),
		signups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "signups_total",
			Help:      "Signup submissions by outcome.",
		}, []string{"outcome"}),
	}

	for _, c := range []prometheus.Collector{m.loads, m.signups} {
		if err := reg.Register(c); err != nil {
			return nil, fmt.Errorf("registering board metrics: %w", err)
		}
	}

	return m, nil
}

func (m *Board) LoadFinished(result string) {
	m.loads.With(prometheus.Labels{"result": result}).Inc()
}

func (m *Board) SignupFinished(outcome string) {
	m.signups.With(prometheus.Labels{"outcome": outcome}).Inc()
}
