package mapper

import (
	"attribute-mapper/internal/logsink"
	"attribute-mapper/recorder"
)

// attached binds a detached recorder to one record and reports why an
// argument was not recorded.
type attached[R, P any] struct {
	detached  recorder.Detached[R, P]
	record    R
	log       *logsink.Sink
	category  string
	parameter string
}

func newAttached[R, P any](d recorder.Detached[R, P], record R, log *logsink.Sink, category, parameter string) *attached[R, P] {
	return &attached[R, P]{
		detached:  d,
		record:    record,
		log:       log,
		category:  category,
		parameter: parameter,
	}
}

func (a *attached[R, P]) TryRecord(payload P) bool {
	err := a.detached.TryRecord(a.record, payload)
	if err == nil {
		return true
	}

	if a.log.Enabled() {
		a.log.Debug(a.category+" argument not recorded",
			"parameter", a.parameter,
			"reason", err.Error(),
			logsink.Value("argument", payload),
		)
	}

	return false
}
