package demo

import (
	"fmt"
	"io"
	"time"

	"go.uber.org/zap"

	"go-arrays/internal/shared/logger"
	"go-arrays/internal/shared/metrics"
)

// Runner executes demos against one output stream
type Runner struct {
	out     io.Writer
	logger  *logger.Logger
	metrics *metrics.Metrics
}

// NewRunner creates a runner. m may be nil when metrics are disabled.
func NewRunner(out io.Writer, log *logger.Logger, m *metrics.Metrics) *Runner {
	return &Runner{
		out:     out,
		logger:  log.Named("demo"),
		metrics: m,
	}
}

// Run executes d and records how it went
func (r *Runner) Run(d Demo) error {
	log := r.logger.With(zap.String("demo", d.Name))
	log.Debug("Demo starting")

	cw := &countingWriter{w: r.out}
	start := time.Now()
	err := d.Run(cw)
	duration := time.Since(start)

	if r.metrics != nil {
		r.metrics.RecordDemoRun(d.Name, duration, cw.n, err)
	}

	if err != nil {
		log.Error("Demo failed", zap.Error(err))
		return fmt.Errorf("demo %s: %w", d.Name, err)
	}

	log.Info("Demo finished",
		zap.Duration("duration", duration),
		zap.Int("bytes", cw.n))
	return nil
}

// RunByName looks up and runs a demo
func (r *Runner) RunByName(name string) error {
	d, err := Lookup(name)
	if err != nil {
		return err
	}
	return r.Run(d)
}

// RunAll runs every demo in order, each under a banner
func (r *Runner) RunAll() error {
	for _, d := range All() {
		fmt.Fprintf(r.out, "=== %s ===\n", d.Name)
		if err := r.Run(d); err != nil {
			return err
		}
		fmt.Fprintln(r.out)
	}
	return nil
}

type countingWriter struct {
	w io.Writer
	n int
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += n
	return n, err
}
