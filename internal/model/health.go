package model

import "time"

// Health statuses reported by the health endpoints.
const (
	StatusUp   = "UP"
	StatusDown = "DOWN"

	DatabaseConnected    = "connected"
	DatabaseDisconnected = "disconnected"
)

// HealthResponse is the body of GET /health and GET /health/deep.
type HealthResponse struct {
	Status      string          `json:"status"`
	Timestamp   string          `json:"timestamp"`
	Environment string          `json:"environment"`
	Database    *DatabaseHealth `json:"database,omitempty"`
}

// DatabaseHealth reports the outcome of the deep check's store probe.
type DatabaseHealth struct {
	Status     string     `json:"status"`
	ServerTime *time.Time `json:"serverTime,omitempty"`
	Error      string     `json:"error,omitempty"`
}
