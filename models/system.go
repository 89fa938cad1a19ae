package models

import "time"

// MockSystemInfo is the system information reported by the mock service.
// Real services return arbitrary JSON, which the client displays as-is.
type MockSystemInfo struct {
	Service              string    `json:"service"`
	Version              string    `json:"version"`
	Fixtures             int       `json:"fixtures"`
	DocumentsInitialized bool      `json:"documents_initialized"`
	StartedAt            time.Time `json:"started_at"`
}
