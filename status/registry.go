package status

import (
	"fmt"
	"sync/atomic"
)

// Registry holds simulation telemetry
// Systems resolve metric pointers once at construction and write atomics in Update
type Registry struct {
	Bools  *MetricMap[atomic.Bool]
	Ints   *MetricMap[atomic.Int64]
	Floats *MetricMap[AtomicFloat]
}

// NewRegistry creates an empty Registry
func NewRegistry() *Registry {
	return &Registry{
		Bools:  NewMetricMap[atomic.Bool](),
		Ints:   NewMetricMap[atomic.Int64](),
		Floats: NewMetricMap[AtomicFloat](),
	}
}

// Metric is one rendered telemetry entry
type Metric struct {
	Key   string
	Value string
}

// Snapshot renders every metric in key order, bools then ints then floats
func (r *Registry) Snapshot() []Metric {
	out := make([]Metric, 0, r.Bools.Count()+r.Ints.Count()+r.Floats.Count())
	r.Bools.Range(func(k string, v *atomic.Bool) {
		out = append(out, Metric{Key: k, Value: fmt.Sprint(v.Load())})
	})
	r.Ints.Range(func(k string, v *atomic.Int64) {
		out = append(out, Metric{Key: k, Value: fmt.Sprint(v.Load())})
	})
	r.Floats.Range(func(k string, v *AtomicFloat) {
		out = append(out, Metric{Key: k, Value: fmt.Sprintf("%.2f", v.Get())})
	})
	return out
}
