// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-massage-link/internal/service"
)

// HealthWorker runs the backend health job and forwards every result to
// report.
type HealthWorker struct {
	job      service.ClientHealthJob
	interval time.Duration
	report   func(online bool)
}

func NewHealthWorker(job service.ClientHealthJob, interval time.Duration, report func(online bool)) *HealthWorker {
	return &HealthWorker{job: job, interval: interval, report: report}
}

func (w *HealthWorker) Start(ctx context.Context) {
	w.job.Start(ctx, w.interval, w.report)
}

func (w *HealthWorker) Stop() {
	w.job.Stop()
}
