package service

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-massage-link/internal/adapter"
	"github.com/MKhiriev/go-massage-link/internal/logger"
)

const defaultHealthInterval = 15 * time.Second

type clientHealthJob struct {
	backend adapter.SessionBackend
	logger  *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewClientHealthJob creates a clientHealthJob that calls backend.Health on
// a ticker. The job is idle until Start is called.
func NewClientHealthJob(backend adapter.SessionBackend, log *logger.Logger) ClientHealthJob {
	return &clientHealthJob{backend: backend, logger: log}
}

// Start implements ClientHealthJob. A zero or negative interval defaults to
// 15 seconds.
func (j *clientHealthJob) Start(ctx context.Context, interval time.Duration, report func(online bool)) {
	if interval <= 0 {
		interval = defaultHealthInterval
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		j.probe(jobCtx, report)
		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				j.probe(jobCtx, report)
			}
		}
	}()
}

// Stop implements ClientHealthJob.
func (j *clientHealthJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}

func (j *clientHealthJob) probe(ctx context.Context, report func(online bool)) {
	status, err := j.backend.Health(ctx)
	if ctx.Err() != nil {
		return
	}

	online := err == nil && status.Healthy()
	if err != nil {
		j.logger.Debug().Err(err).Msg("backend health probe failed")
	}

	if report != nil {
		report(online)
	}
}
