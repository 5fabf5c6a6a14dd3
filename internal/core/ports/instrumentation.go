package ports

import "time"

// Instrumentation receives operational events from the core and the
// backend adapter. The metrics adapter turns them into Prometheus
// series; tests can plug in a recorder.
type Instrumentation interface {
	RequestObserved(op, outcome string, elapsed time.Duration)
	StaleResponseDropped(scope string)
	BreakerStateChanged(name, from, to string)
}

// NopInstrumentation discards every event.
type NopInstrumentation struct{}

func (NopInstrumentation) RequestObserved(string, string, time.Duration) {}

func (NopInstrumentation) StaleResponseDropped(string) {}

func (NopInstrumentation) BreakerStateChanged(string, string, string) {}
