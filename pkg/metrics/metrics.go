// Package metrics holds the Prometheus collectors exported by the service.
package metrics

import "github.com/prometheus/client_golang/prometheus"

const namespace = "step_companion"

var (
	TransitionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "transitions_total",
			Help:      "Total number of hatch and evolution transitions",
		},
		[]string{"kind"},
	)

	RolloversTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "rollovers_total",
		Help:      "Total number of daily companion respawns",
	})

	StepsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "steps_total",
		Help:      "Total positive step increments credited as experience",
	})

	Experience = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "experience",
		Help:      "Current companion experience",
	})

	Level = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "level",
		Help:      "Current companion level",
	})

	CuesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cues_total",
			Help:      "Total number of audio cues sent",
		},
		[]string{"cue"},
	)

	StoreErrorsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "store_errors_total",
			Help:      "Store operations that failed mid-session and were defaulted",
		},
		[]string{"op"},
	)
)

// Collectors returns every collector defined here, for registration.
func Collectors() []prometheus.Collector {
	return []prometheus.Collector{
		TransitionsTotal,
		RolloversTotal,
		StepsTotal,
		Experience,
		Level,
		CuesTotal,
		StoreErrorsTotal,
	}
}
