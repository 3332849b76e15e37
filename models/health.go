package models

// HealthStatus is the body returned by the backend's GET /health endpoint.
type HealthStatus struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp,omitempty"`
}

// Healthy reports whether the backend declared itself healthy.
func (h HealthStatus) Healthy() bool {
	return h.Status == "healthy"
}
