package config

import "time"

// DaemonConfig holds the long-running task-engine daemon's own
// configuration, as distinct from EngineConfig's tuning of the engine
// it hosts. cmd/taskengine-daemon reads only ShutdownTimeout; it starts
// no health-check endpoint and runs no health checks.
type DaemonConfig struct {
	// Health-check address (host:port). Not read by the daemon.
	Address string `mapstructure:"address" validate:"required"`

	// Interval between self health checks. Not read by the daemon.
	HealthCheckInterval time.Duration `mapstructure:"health_check_interval" validate:"required"`

	// Graceful shutdown timeout once an interrupt signal is received.
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout" validate:"required"`
}
