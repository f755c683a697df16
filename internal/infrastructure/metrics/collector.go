package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/andrescamacho/taskengine-go/internal/domain/chain"
	"github.com/andrescamacho/taskengine-go/internal/domain/task"
)

// RunnerCollector subscribes to a chain.Runner's typed events and
// exposes them as Prometheus metrics. Attach wires every listener in
// one call, so a cold Runner and its metrics come up together.
type RunnerCollector struct {
	ticksTotal      prometheus.Counter
	chainSwitches   *prometheus.CounterVec
	activeChain     *prometheus.GaugeVec
	tasksStarted    *prometheus.CounterVec
	tasksFinished   *prometheus.CounterVec
	taskDuration    *prometheus.HistogramVec

	taskStartedAt map[string]time.Time
}

// NewRunnerCollector builds an unregistered collector.
func NewRunnerCollector() *RunnerCollector {
	return &RunnerCollector{
		ticksTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "ticks_total",
			Help:      "Total number of Runner.Tick invocations.",
		}),
		chainSwitches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "chain_switches_total",
			Help:      "Total number of times the active chain changed, by new chain name.",
		}, []string{"chain"}),
		activeChain: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "active_chain",
			Help:      "1 for the chain currently holding the active slot, 0 otherwise.",
		}, []string{"chain"}),
		tasksStarted: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "tasks_started_total",
			Help:      "Total number of tasks started, by chain and task name.",
		}, []string{"chain", "task"}),
		tasksFinished: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "tasks_finished_total",
			Help:      "Total number of tasks finished, by chain and task name.",
		}, []string{"chain", "task"}),
		taskDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "task_duration_seconds",
			Help:      "Wall-clock duration of a task from start to finish.",
			Buckets:   []float64{0.1, 0.5, 1, 5, 10, 30, 60, 300},
		}, []string{"chain", "task"}),
		taskStartedAt: make(map[string]time.Time),
	}
}

// Register adds the collector's metrics to the global Registry. A nil
// Registry (metrics disabled) makes this a no-op.
func (rc *RunnerCollector) Register() error {
	if Registry == nil {
		return nil
	}
	collectors := []prometheus.Collector{
		rc.ticksTotal,
		rc.chainSwitches,
		rc.activeChain,
		rc.tasksStarted,
		rc.tasksFinished,
		rc.taskDuration,
	}
	for _, c := range collectors {
		if err := Registry.Register(c); err != nil {
			return err
		}
	}
	return nil
}

// Attach subscribes the collector to r's four typed events.
func (rc *RunnerCollector) Attach(r *chain.Runner) {
	r.OnTick(func() {
		rc.ticksTotal.Inc()
	})

	r.OnChainChanged(func(old, new chain.Chain) {
		if old != nil {
			rc.activeChain.WithLabelValues(old.Name()).Set(0)
		}
		if new != nil {
			rc.chainSwitches.WithLabelValues(new.Name()).Inc()
			rc.activeChain.WithLabelValues(new.Name()).Set(1)
		}
	})

	r.OnTaskStarted(func(c chain.Chain, t task.Task) {
		rc.tasksStarted.WithLabelValues(c.Name(), t.DisplayName()).Inc()
		rc.taskStartedAt[taskKey(c, t)] = timeNow()
	})

	r.OnTaskFinished(func(c chain.Chain, t task.Task) {
		rc.tasksFinished.WithLabelValues(c.Name(), t.DisplayName()).Inc()
		key := taskKey(c, t)
		if started, ok := rc.taskStartedAt[key]; ok {
			rc.taskDuration.WithLabelValues(c.Name(), t.DisplayName()).Observe(timeNow().Sub(started).Seconds())
			delete(rc.taskStartedAt, key)
		}
	})
}

func taskKey(c chain.Chain, t task.Task) string {
	return c.Name() + "/" + t.DisplayName() + "/" + t.ID().String()
}

// timeNow is a seam so task duration measurement can be swapped in
// tests without depending on wall-clock time.
var timeNow = time.Now
