package service

import (
	"github.com/MKhiriev/go-massage-link/internal/adapter"
	"github.com/MKhiriev/go-massage-link/internal/logger"
)

// ClientServices aggregates every service the client runtime needs.
type ClientServices struct {
	SessionService ClientSessionService
	HealthJob      ClientHealthJob
}

func NewClientServices(backend adapter.SessionBackend, log *logger.Logger) *ClientServices {
	return &ClientServices{
		SessionService: NewClientSessionService(backend, log),
		HealthJob:      NewClientHealthJob(backend, log),
	}
}
