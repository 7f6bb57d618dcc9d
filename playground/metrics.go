package playground

import (
	"strconv"

	"github.com/csePriyanshu/tree-visualizer/container/tree"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics tracks the operations applied to playground sessions
type Metrics struct {
	operations *prometheus.CounterVec
	size       prometheus.Gauge
}

// NewMetrics creates the playground metrics and registers them
// with the provided registerer
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		operations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "treeviz_operations_total",
			Help: "Number of operations applied to the playground tree.",
		}, []string{"kind", "op", "changed"}),
		size: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "treeviz_tree_size",
			Help: "Number of nodes in the playground tree.",
		}),
	}

	for _, c := range []prometheus.Collector{m.operations, m.size} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}

	return m, nil
}

// observe is a no-op on a nil Metrics so sessions can run without metrics
func (m *Metrics) observe(kind tree.Kind, op string, changed bool, size int) {
	if m == nil {
		return
	}

	m.operations.WithLabelValues(kind.String(), op, strconv.FormatBool(changed)).Inc()
	m.size.Set(float64(size))
}
