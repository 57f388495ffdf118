package cli

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/polyblade/pkg/observability"
)

// newLogger creates a new logger with timestamp formatting.
// Timestamps are formatted as "HH:MM:SS.ms" (e.g., "14:32:01.45").
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress tracks the start time of an operation and logs completion with elapsed duration.
type progress struct {
	logger *log.Logger
	start  time.Time
}

func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg along with the elapsed time since progress was created.
// Example output: "Built tC (1.234ms)"
func (p *progress) done(msg string) {
	p.logger.Infof("%s (%s)", msg, time.Since(p.start).Round(time.Microsecond))
}

// hookLogger reports shape, operator and queue hooks at debug level.
type hookLogger struct {
	logger *log.Logger
}

func (h hookLogger) OnPaths(vertices int, d time.Duration, err error) {
	h.logger.Debug("shortest paths", "vertices", vertices, "took", d, "err", err)
}

func (h hookLogger) OnFaces(vertices, faces int, d time.Duration, err error) {
	h.logger.Debug("faces", "vertices", vertices, "faces", faces, "took", d, "err", err)
}

func (h hookLogger) OnOperatorStart(op string, vertices int) {
	h.logger.Debug("operator start", "op", op, "vertices", vertices)
}

func (h hookLogger) OnOperatorComplete(op string, vertices int, d time.Duration, err error) {
	h.logger.Debug("operator done", "op", op, "vertices", vertices, "took", d, "err", err)
}

func (h hookLogger) OnStep(kind string, done bool) {
	if done {
		h.logger.Debug("transaction", "kind", kind)
	}
}

func (h hookLogger) OnExpand(op string, steps int) {
	h.logger.Debug("script", "op", op, "steps", steps)
}

func installHooks(l *log.Logger) {
	h := hookLogger{logger: l}
	observability.SetShapeHooks(h)
	observability.SetOperatorHooks(h)
	observability.SetQueueHooks(h)
}
