package config

import "time"

// SetDefaults sets default values for all configuration fields
func SetDefaults(cfg *Config) {
	// Engine defaults
	if cfg.Engine.TickRate == 0 {
		cfg.Engine.TickRate = 20
	}
	if cfg.Engine.SearchRadius == 0 {
		cfg.Engine.SearchRadius = 32
	}
	if cfg.Engine.PickupRadius == 0 {
		cfg.Engine.PickupRadius = 16
	}
	if cfg.Engine.CombatRadius == 0 {
		cfg.Engine.CombatRadius = 12
	}
	if cfg.Engine.HazardSearchRadius == 0 {
		cfg.Engine.HazardSearchRadius = 8
	}
	if cfg.Engine.FatalFallHeight == 0 {
		cfg.Engine.FatalFallHeight = 4
	}
	if cfg.Engine.HungerThreshold == 0 {
		cfg.Engine.HungerThreshold = 16
	}
	if cfg.Engine.CraftCooldownTicks == 0 {
		cfg.Engine.CraftCooldownTicks = 10
	}
	if cfg.Engine.SmeltCooldownTicks == 0 {
		cfg.Engine.SmeltCooldownTicks = 10
	}
	if cfg.Engine.BedSleepWaitTicks == 0 {
		cfg.Engine.BedSleepWaitTicks = 2000
	}
	if cfg.Engine.GolemWaitTimeoutTicks == 0 {
		cfg.Engine.GolemWaitTimeoutTicks = 200
	}
	if cfg.Engine.ThrowawayBlockName == "" {
		cfg.Engine.ThrowawayBlockName = "dirt"
	}
	if len(cfg.Engine.HazardNames) == 0 {
		cfg.Engine.HazardNames = []string{"lava", "fire"}
	}
	if len(cfg.Engine.HostileNames) == 0 {
		cfg.Engine.HostileNames = []string{"zombie", "skeleton", "spider", "creeper"}
	}
	if cfg.Engine.TickTimeout == 0 {
		cfg.Engine.TickTimeout = 50 * time.Millisecond
	}

	// Daemon defaults
	if cfg.Daemon.Address == "" {
		cfg.Daemon.Address = "localhost:9400"
	}
	if cfg.Daemon.HealthCheckInterval == 0 {
		cfg.Daemon.HealthCheckInterval = 30 * time.Second
	}
	if cfg.Daemon.ShutdownTimeout == 0 {
		cfg.Daemon.ShutdownTimeout = 10 * time.Second
	}

	// Logging defaults
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = "json"
	}
	if cfg.Logging.Output == "" {
		cfg.Logging.Output = "stdout"
	}
	if cfg.Logging.Rotation.MaxSize == 0 {
		cfg.Logging.Rotation.MaxSize = 100 // MB
	}
	if cfg.Logging.Rotation.MaxBackups == 0 {
		cfg.Logging.Rotation.MaxBackups = 3
	}
	if cfg.Logging.Rotation.MaxAge == 0 {
		cfg.Logging.Rotation.MaxAge = 28 // days
	}

	// Metrics defaults
	if cfg.Metrics.Port == 0 {
		cfg.Metrics.Port = 9401
	}
	if cfg.Metrics.Host == "" {
		cfg.Metrics.Host = "localhost"
	}
	if cfg.Metrics.Path == "" {
		cfg.Metrics.Path = "/metrics"
	}
}
