package worker

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/polkiloo/encomendas/internal/domain/repository"
	"github.com/polkiloo/encomendas/internal/metrics"
)

type remoteState int

const (
	remoteUnknown remoteState = iota
	remoteUp
	remoteDown
)

// HealthProber periodically pings the remote order store and publishes its availability.
// It only observes: records written locally during an outage stay local.
type HealthProber struct {
	pinger   repository.Pinger
	interval time.Duration
	timeout  time.Duration
	logger   *slog.Logger

	wg     sync.WaitGroup
	cancel context.CancelFunc
	mu     sync.Mutex
	state  remoteState
}

// NewHealthProber constructs a prober. Non-positive durations fall back to 30s and 3s.
func NewHealthProber(pinger repository.Pinger, interval, timeout time.Duration, logger *slog.Logger) *HealthProber {
	if interval <= 0 {
		interval = 30 * time.Second
	}
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	return &HealthProber{pinger: pinger, interval: interval, timeout: timeout, logger: logger}
}

// Start probes once and then on every interval until Stop.
func (p *HealthProber) Start(ctx context.Context) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.cancel != nil {
		return
	}

	runCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	p.cancel = cancel

	p.wg.Add(1)
	go p.run(runCtx)
}

// Stop waits for the probing loop to finish.
func (p *HealthProber) Stop() {
	p.mu.Lock()
	if p.cancel != nil {
		p.cancel()
		p.cancel = nil
	}
	p.mu.Unlock()

	p.wg.Wait()
}

// Up reports whether the last probe succeeded.
func (p *HealthProber) Up() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state == remoteUp
}

func (p *HealthProber) run(ctx context.Context) {
	defer p.wg.Done()
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	p.Probe(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.Probe(ctx)
		}
	}
}

// Probe runs a single health check bounded by the probe timeout.
func (p *HealthProber) Probe(ctx context.Context) {
	probeCtx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	err := p.pinger.HealthCheck(probeCtx)
	next := remoteUp
	if err != nil {
		next = remoteDown
		metrics.RemoteUp.Set(0)
	} else {
		metrics.RemoteUp.Set(1)
	}

	p.mu.Lock()
	prev := p.state
	p.state = next
	p.mu.Unlock()

	if prev == next {
		return
	}
	if next == remoteDown {
		p.logger.Warn("remote order store down, serving from local store", slog.String("error", err.Error()))
		return
	}
	if prev == remoteDown {
		p.logger.Info("remote order store back up; records written locally stay local")
		return
	}
	p.logger.Info("remote order store up")
}
