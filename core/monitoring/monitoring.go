package monitoring

import "time"

// Monitor reports errors and panics to an external service.
type Monitor interface {
	CaptureException(err error, tags map[string]string)
	Flush(timeout time.Duration)
}

// NopMonitor drops every report.
type NopMonitor struct{}

func (NopMonitor) CaptureException(error, map[string]string) {}
func (NopMonitor) Flush(time.Duration)                       {}

var current Monitor = NopMonitor{}

// Init sets the process-wide monitor. A nil monitor is ignored.
func Init(m Monitor) {
	if m != nil {
		current = m
	}
}

// Current returns the process-wide monitor.
func Current() Monitor { return current }

// CaptureException records err with optional tags.
func CaptureException(err error, tags map[string]string) {
	if err != nil {
		current.CaptureException(err, tags)
	}
}

// Recover reports a panic through the current monitor, flushes it and
// re-panics. It must be deferred directly.
func Recover() {
	if r := recover(); r != nil {
		current.CaptureException(panicError{r}, map[string]string{"kind": "panic"})
		current.Flush(2 * time.Second)
		panic(r)
	}
}

// Flush waits for buffered reports to be delivered.
func Flush(d time.Duration) { current.Flush(d) }

type panicError struct{ v any }

func (p panicError) Error() string {
	if err, ok := p.v.(error); ok {
		return "panic: " + err.Error()
	}
	if s, ok := p.v.(string); ok {
		return "panic: " + s
	}
	return "panic"
}
