package rules

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	ticksTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "mamba",
			Subsystem: "rules",
			Name:      "ticks_total",
			Help:      "Ticks processed while the game was running.",
		},
	)
	tickDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "mamba",
			Subsystem: "rules",
			Name:      "tick_duration_seconds",
			Help:      "Time spent processing a tick.",
		},
	)
	roundsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "mamba",
			Subsystem: "rules",
			Name:      "rounds_total",
			Help:      "Rounds started.",
		},
	)
	rabbitsEatenTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "mamba",
			Subsystem: "rules",
			Name:      "rabbits_eaten_total",
			Help:      "Rabbits eaten by each player.",
		},
		[]string{"player"},
	)
	killsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "mamba",
			Subsystem: "rules",
			Name:      "kills_total",
			Help:      "Heads driven into another snake, by attacking player.",
		},
		[]string{"player"},
	)
	deathsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "mamba",
			Subsystem: "rules",
			Name:      "deaths_total",
			Help:      "Snake deaths by cause.",
		},
		[]string{"cause"},
	)
	spawnExhaustedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "mamba",
			Subsystem: "rules",
			Name:      "spawn_exhausted_total",
			Help:      "Spawns that found no empty cell.",
		},
	)
)

func instrument() func() {
	t := prometheus.NewTimer(tickDuration)
	return t.ObserveDuration
}

func init() {
	prometheus.MustRegister(
		ticksTotal,
		tickDuration,
		roundsTotal,
		rabbitsEatenTotal,
		killsTotal,
		deathsTotal,
		spawnExhaustedTotal,
	)
}
