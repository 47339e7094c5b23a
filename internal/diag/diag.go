// Package diag is the engine's diagnostic sink: a thin wrapper over
// charmbracelet/log used for the "log but don't fail the run" cases spec §7
// calls out explicitly - unknown joker/voucher ids from content lookups,
// and unhandled Custom effect ops - plus general structured run logging.
//
// Grounded on the teacher's internal/game/logger_event_handler.go, which
// logs every Event to stdout via fmt.Printf; replaced here with
// charmbracelet/log's leveled, structured logger (donated by
// lox-pokerforbots, which uses it throughout for exactly this purpose)
// instead of hand-rolled Printf formatting.
package diag

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// Sink is the engine's logging handle. A nil *Sink is not valid; use
// NewSink or NewDiscardSink.
type Sink struct {
	logger *log.Logger
}

// NewSink returns a Sink writing to w at the given level, with key=value
// structured fields.
func NewSink(w io.Writer, level log.Level) *Sink {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: false,
		Level:           level,
	})
	return &Sink{logger: logger}
}

// NewDefaultSink returns a Sink writing to stderr at Info level, the
// engine's default when a caller doesn't configure one explicitly.
func NewDefaultSink() *Sink {
	return NewSink(os.Stderr, log.InfoLevel)
}

// NewDiscardSink returns a Sink that drops everything, for tests that
// don't want log noise but still need a non-nil Sink to pass in.
func NewDiscardSink() *Sink {
	return NewSink(io.Discard, log.FatalLevel+1)
}

// UnknownContentRef logs a lookup miss for a joker/consumable/tag/voucher/
// boss id - spec §7: "errors from content lookups are treated as no-ops
// that log to a diagnostic sink but do not surface as RunError".
func (s *Sink) UnknownContentRef(kind, id string) {
	s.logger.Warn("unknown content reference", "kind", kind, "id", id)
}

// UnhandledCustomOp logs an effect action whose op the engine doesn't
// recognize (spec §7's "unhandled EffectOp::Custom").
func (s *Sink) UnhandledCustomOp(sourceID, op string) {
	s.logger.Warn("unhandled custom effect op", "source", sourceID, "op", op)
}

// Debugf/Infof/Warnf/Errorf forward to the underlying structured logger for
// general engine diagnostics (phase transitions, RNG reseeds, pipeline
// step tracing under a debug build).
func (s *Sink) Debugf(msg string, keyvals ...interface{}) { s.logger.Debug(msg, keyvals...) }
func (s *Sink) Infof(msg string, keyvals ...interface{})  { s.logger.Info(msg, keyvals...) }
func (s *Sink) Warnf(msg string, keyvals ...interface{})  { s.logger.Warn(msg, keyvals...) }
func (s *Sink) Errorf(msg string, keyvals ...interface{}) { s.logger.Error(msg, keyvals...) }
