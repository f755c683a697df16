// Command taskengine-daemon hosts a Runner driven by a
// demo.SimulatedTickSource over the scripted demo.SimAgent and exposes
// its execution as Prometheus metrics, mirroring the shape of a
// long-running bot process embedding the engine.
package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/andrescamacho/taskengine-go/internal/adapters/demo"
	"github.com/andrescamacho/taskengine-go/internal/application/chains"
	"github.com/andrescamacho/taskengine-go/internal/domain/chain"
	"github.com/andrescamacho/taskengine-go/internal/infrastructure/config"
	enginemetrics "github.com/andrescamacho/taskengine-go/internal/infrastructure/metrics"
)

func main() {
	fmt.Println("Task Engine Daemon v0.1.0")
	fmt.Println("=========================")

	fmt.Println("Loading configuration...")
	cfg := config.MustLoadConfig("")

	if err := run(cfg); err != nil {
		log.Fatalf("Fatal error: %v", err)
	}
}

func run(cfg *config.Config) error {
	// TODO: wire a real bot connection satisfying agent.Agent and
	// live.PhysicsTicker here once one exists; the scripted SimAgent
	// stands in so the daemon shape (metrics, signal handling, graceful
	// stop) can be exercised end to end today.
	ag := demo.NewSimAgent()

	runner := chain.NewRunner()
	runner.RegisterChain(chains.NewFoodChain(ag, cfg.Engine.HungerThreshold))
	runner.RegisterChain(chains.NewDangerChain(ag, cfg.Engine.HostileNames, cfg.Engine.CombatRadius, chains.PolicyFightIfWinnable))
	runner.RegisterChain(chains.NewFallProtectionChain(ag, cfg.Engine.FatalFallHeight, cfg.Engine.ThrowawayBlockName))
	runner.RegisterChain(chains.NewHazardEscapeChain(ag, cfg.Engine.HazardNames, cfg.Engine.HazardSearchRadius))

	if cfg.Metrics.Enabled {
		enginemetrics.InitRegistry()
		collector := enginemetrics.NewRunnerCollector()
		if err := collector.Register(); err != nil {
			return fmt.Errorf("failed to register runner metrics: %w", err)
		}
		collector.Attach(runner)
		fmt.Println("Metrics collector attached")

		if err := startMetricsServer(cfg); err != nil {
			fmt.Printf("Warning: failed to start metrics server: %v\n", err)
		} else {
			fmt.Printf("Metrics server listening on %s:%d%s\n", cfg.Metrics.Host, cfg.Metrics.Port, cfg.Metrics.Path)
		}
	}

	tickSource := demo.NewSimulatedTickSource(cfg.Engine.TickRate, ag)
	runner.Start(tickSource)
	fmt.Println("Runner started")

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)
	<-shutdown

	fmt.Println("Initiating graceful shutdown...")
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Daemon.ShutdownTimeout)
	defer cancel()

	stopped := make(chan struct{})
	go func() {
		runner.Stop()
		close(stopped)
	}()

	select {
	case <-stopped:
		fmt.Println("Runner stopped")
	case <-ctx.Done():
		fmt.Println("Warning: shutdown timed out before runner stopped")
	}

	return nil
}

func startMetricsServer(cfg *config.Config) error {
	mux := http.NewServeMux()
	mux.Handle(cfg.Metrics.Path, promhttp.HandlerFor(
		enginemetrics.GetRegistry(),
		promhttp.HandlerOpts{EnableOpenMetrics: true},
	))

	addr := fmt.Sprintf("%s:%d", cfg.Metrics.Host, cfg.Metrics.Port)
	server := &http.Server{Addr: addr, Handler: mux}

	go func() {
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			fmt.Printf("Metrics server error: %v\n", err)
		}
	}()

	return nil
}
