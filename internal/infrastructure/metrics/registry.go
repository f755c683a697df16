// Package metrics exposes the task engine's own execution as
// Prometheus metrics: ticks, chain switches, and task lifecycle
// events, collected by subscribing to a chain.Runner's typed
// listener hooks rather than polling engine state.
package metrics

import "github.com/prometheus/client_golang/prometheus"

const (
	namespace = "taskengine"
	subsystem = "runner"
)

var (
	// Registry is the global Prometheus registry for all metrics.
	// nil until InitRegistry is called, mirroring "metrics disabled".
	Registry *prometheus.Registry
)

// InitRegistry initializes the Prometheus registry. Should be called
// once at application startup if metrics are enabled.
func InitRegistry() {
	Registry = prometheus.NewRegistry()
}

// GetRegistry returns the global Prometheus registry, or nil if metrics are not initialized.
func GetRegistry() *prometheus.Registry {
	return Registry
}

// IsEnabled returns true if metrics collection is enabled.
func IsEnabled() bool {
	return Registry != nil
}
