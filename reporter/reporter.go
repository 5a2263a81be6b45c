// Package reporter drives the periodic telemetry flush for a DPP
// metrics aggregator: on every tick it takes a snapshot, logs a
// summary, and optionally writes the full diagnostic dump to a
// configured sink. The reporter only reads; it never clears the
// aggregator.
package reporter

import (
	"context"
	"io"
	"sync"
	"time"

	"go.uber.org/zap"

	dppmetrics "github.com/zulfikawr/dppmetrics"
	"github.com/zulfikawr/dppmetrics/internal/config"
	"github.com/zulfikawr/dppmetrics/internal/logging"
)

// Source is the aggregator surface the reporter reads.
// *dppmetrics.Aggregator satisfies it.
type Source interface {
	Snapshot() dppmetrics.Snapshot
	Dump(w io.Writer)
}

// Config controls the flush loop.
type Config struct {
	FlushInterval time.Duration // how often to flush; <=0 falls back to 30s
	DumpOnFlush   bool          // also write the text dump each flush
	DumpSink      io.Writer     // where the dump goes; nil disables it
}

// LoadConfig reads reporter settings from the dppmetrics config file or
// DPPMETRICS_* environment variables, and applies the configured log
// verbosity. Missing file means defaults.
func LoadConfig() (Config, error) {
	fileCfg, err := config.LoadConfig()
	if err != nil {
		return Config{}, err
	}
	logging.SetLevel(fileCfg.Verbosity)
	return Config{
		FlushInterval: fileCfg.FlushInterval(),
		DumpOnFlush:   fileCfg.DumpOnFlush,
	}, nil
}

// Reporter periodically flushes aggregator state to the log.
type Reporter struct {
	source Source
	cfg    Config
	log    *zap.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

// New creates a reporter for the given source.
func New(source Source, cfg Config) *Reporter {
	if cfg.FlushInterval <= 0 {
		cfg.FlushInterval = 30 * time.Second
	}
	return &Reporter{
		source: source,
		cfg:    cfg,
		log:    logging.GetLogger(),
	}
}

// Start launches the flush loop. It returns immediately; the loop runs
// until ctx is canceled or Stop is called. Starting a running reporter
// is a no-op.
func (r *Reporter) Start(ctx context.Context) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.cancel != nil {
		return
	}

	ctx, cancel := context.WithCancel(ctx)
	r.cancel = cancel
	done := make(chan struct{})
	r.done = done

	go r.run(ctx, done)
}

// Stop halts the flush loop and waits for it to exit. Safe to call
// multiple times and before Start.
func (r *Reporter) Stop() {
	r.mu.Lock()
	cancel, done := r.cancel, r.done
	r.cancel = nil
	r.done = nil
	r.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-done
}

// Flush performs one flush immediately, outside the periodic schedule.
func (r *Reporter) Flush() {
	r.flush()
}

func (r *Reporter) run(ctx context.Context, done chan struct{}) {
	defer close(done)

	ticker := time.NewTicker(r.cfg.FlushInterval)
	defer ticker.Stop()

	r.log.Debug("reporter started", zap.Duration("interval", r.cfg.FlushInterval))
	for {
		select {
		case <-ctx.Done():
			r.log.Debug("reporter stopped")
			return
		case <-ticker.C:
			r.flush()
		}
	}
}

func (r *Reporter) flush() {
	s := r.source.Snapshot()

	r.log.Info("easy connect metrics flush",
		zap.Int64("configurator_initiator_requests", s.ConfiguratorInitiatorRequests),
		zap.Int64("enrollee_initiator_requests", s.EnrolleeInitiatorRequests),
		zap.Int64("enrollee_responder_requests", s.EnrolleeResponderRequests),
		zap.Int64("enrollee_responder_success", s.EnrolleeResponderSuccess),
		zap.Int64("enrollee_success", s.EnrolleeSuccess),
		zap.Int64("r1_capable_responder_devices", s.R1CapableResponderDevices),
		zap.Int64("r2_capable_responder_devices", s.R2CapableResponderDevices),
		zap.Int64("r2_incompatible_configuration", s.R2IncompatibleConfiguration),
		zap.Int("failure_codes", len(s.FailureCodes)),
		zap.Int("success_codes", len(s.ConfiguratorSuccessCodes)),
	)

	if r.cfg.DumpOnFlush && r.cfg.DumpSink != nil {
		r.source.Dump(r.cfg.DumpSink)
	}
}
