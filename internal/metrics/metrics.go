package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/lueurxax/linked-list/internal/log"
)

const namespace = "linkedlist"

type Metrics interface {
	NodeInserted()
	ListBuilt(length int)
	ValuesPrinted(count int)
	// WriteToTextfile dumps every metric in text exposition format, for
	// node_exporter's textfile collector.
	WriteToTextfile(filename string) error
}

type metrics struct {
	registry *prometheus.Registry

	nodesInserted prometheus.Counter
	listLength    prometheus.Gauge
	valuesPrinted prometheus.Counter

	log log.Logger
}

func (m *metrics) NodeInserted() {
	m.nodesInserted.Inc()
}

func (m *metrics) ListBuilt(length int) {
	m.listLength.Set(float64(length))
}

func (m *metrics) ValuesPrinted(count int) {
	m.valuesPrinted.Add(float64(count))
}

func (m *metrics) WriteToTextfile(filename string) error {
	m.log.WithField("file", filename).Debug("writing metrics")

	return prometheus.WriteToTextfile(filename, m.registry)
}

func NewMetrics(logger log.Logger) Metrics {
	m := &metrics{
		registry: prometheus.NewRegistry(),
		nodesInserted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "nodes_inserted_total",
			Help:      "Nodes prepended to the list.",
		}),
		listLength: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "length",
			Help:      "Length of the built list.",
		}),
		valuesPrinted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "values_printed_total",
			Help:      "Values written by the printer.",
		}),
		log: logger,
	}
	m.registry.MustRegister(m.nodesInserted, m.listLength, m.valuesPrinted)

	return m
}
