package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"walletstate/internal/app/port"
)

const namespace = "walletstate"

// Collectors holds the service's prometheus collectors.
type Collectors struct {
	ObserverTicks        *prometheus.CounterVec
	ObserverTickFailures *prometheus.CounterVec
	EventsEmitted        *prometheus.CounterVec
	EventsDropped        prometheus.Counter
	DeferredTasks        prometheus.Counter
}

// New creates the collectors and registers them on reg.
func New(reg prometheus.Registerer) (*Collectors, error) {
	c := &Collectors{
		ObserverTicks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "observer_ticks_total",
			Help:      "Number of observer ticks.",
		}, []string{"observer"}),
		ObserverTickFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "observer_tick_failures_total",
			Help:      "Number of observer ticks that returned an error.",
		}, []string{"observer"}),
		EventsEmitted: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "events_emitted_total",
			Help:      "Number of events emitted to subscribers, by kind.",
		}, []string{"kind"}),
		EventsDropped: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "events_dropped_total",
			Help:      "Number of events dropped because a subscriber was full.",
		}),
		DeferredTasks: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "deferred_tasks_total",
			Help:      "Number of tasks scheduled on the deferred queue.",
		}),
	}

	for _, collector := range []prometheus.Collector{
		c.ObserverTicks,
		c.ObserverTickFailures,
		c.EventsEmitted,
		c.EventsDropped,
		c.DeferredTasks,
	} {
		if err := reg.Register(collector); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// MustNew is like New but panics on registration errors.
func MustNew(reg prometheus.Registerer) *Collectors {
	c, err := New(reg)
	if err != nil {
		panic(err)
	}
	return c
}

func (c *Collectors) ObserveTick(observer string) {
	c.ObserverTicks.WithLabelValues(observer).Inc()
}

func (c *Collectors) ObserveTickFailure(observer string) {
	c.ObserverTickFailures.WithLabelValues(observer).Inc()
}

func (c *Collectors) ObserveEvent(kind string) {
	c.EventsEmitted.WithLabelValues(kind).Inc()
}

func (c *Collectors) ObserveDropped() {
	c.EventsDropped.Inc()
}

// ObserveDeferred is passed to the task queue as its defer callback.
func (c *Collectors) ObserveDeferred() {
	c.DeferredTasks.Inc()
}

var (
	_ port.TickRecorder  = (*Collectors)(nil)
	_ port.EventRecorder = (*Collectors)(nil)
)
