// Package monitoring exposes loom's runtime counters as Prometheus metrics:
// signal writes, effect re-runs, scheduler fixpoint overruns, reconciler
// operation counts, and async task spawns/aborts. All metrics are prefixed
// "loom_".
package monitoring

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/loomkit/loom/async"
	"github.com/loomkit/loom/reactive"
	"github.com/loomkit/loom/reconcile"
)

// Metrics is the set of collectors a host registers once at startup and
// then feeds from the reactive core's instrumentation hooks.
type Metrics struct {
	SignalWrites     prometheus.Counter
	EffectReruns     prometheus.Counter
	FixpointOverruns prometheus.Counter
	ReconcileOps     *prometheus.CounterVec
	TaskSpawns       prometheus.Counter
	TaskAborts       prometheus.Counter
}

// New creates and registers every collector against reg. Panics on
// duplicate registration, matching the fail-fast startup behavior of
// Prometheus-instrumented services elsewhere in this stack.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		SignalWrites: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "loom_signal_writes_total",
			Help: "Total number of Signal.Set/Update calls that passed the equality gate.",
		}),
		EffectReruns: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "loom_effect_reruns_total",
			Help: "Total number of effect re-runs driven by the scheduler.",
		}),
		FixpointOverruns: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "loom_fixpoint_overruns_total",
			Help: "Total number of ticks where RunPendingEffects hit its fixpoint budget.",
		}),
		ReconcileOps: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "loom_reconcile_ops_total",
			Help: "Total keyed-diff operations applied, partitioned by kind (removed, added, moved).",
		}, []string{"kind"}),
		TaskSpawns: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "loom_task_spawns_total",
			Help: "Total number of async tasks spawned via Spawn/SpawnWithResult/SpawnInterval/SpawnDebounced.",
		}),
		TaskAborts: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "loom_task_aborts_total",
			Help: "Total number of async task handles disposed, counted once per handle whether or not the task had completed.",
		}),
	}
	reg.MustRegister(m.SignalWrites, m.EffectReruns, m.FixpointOverruns, m.ReconcileOps, m.TaskSpawns, m.TaskAborts)
	return m
}

// global is the process-wide metrics instance, nil until Install is called;
// instrumentation call sites no-op when it's nil so importing monitoring is
// opt-in.
var global *Metrics

// Install registers m as the process-wide metrics sink and wires the
// reactive/async/reconcile packages' instrumentation hooks to it. Call once
// at startup, after New.
func Install(m *Metrics) {
	global = m
	reactive.OnSignalWrite = RecordSignalWrite
	reactive.OnEffectRerun = RecordEffectRerun
	reactive.OnFixpointOverrun = RecordFixpointOverrun
	reconcile.OnDiffComputed = RecordReconcileOps
	async.OnTaskSpawn = RecordTaskSpawn
	async.OnTaskAbort = RecordTaskAbort
}

// RecordSignalWrite increments the signal-writes counter, if installed.
func RecordSignalWrite() {
	if global != nil {
		global.SignalWrites.Inc()
	}
}

// RecordEffectRerun increments the effect-reruns counter, if installed.
func RecordEffectRerun() {
	if global != nil {
		global.EffectReruns.Inc()
	}
}

// RecordFixpointOverrun increments the fixpoint-overrun counter, if
// installed.
func RecordFixpointOverrun() {
	if global != nil {
		global.FixpointOverruns.Inc()
	}
}

// RecordReconcileOps adds removed/added/moved counts, if installed.
func RecordReconcileOps(removed, added, moved int) {
	if global == nil {
		return
	}
	if removed > 0 {
		global.ReconcileOps.WithLabelValues("removed").Add(float64(removed))
	}
	if added > 0 {
		global.ReconcileOps.WithLabelValues("added").Add(float64(added))
	}
	if moved > 0 {
		global.ReconcileOps.WithLabelValues("moved").Add(float64(moved))
	}
}

// RecordTaskSpawn increments the task-spawns counter, if installed.
func RecordTaskSpawn() {
	if global != nil {
		global.TaskSpawns.Inc()
	}
}

// RecordTaskAbort increments the task-aborts counter, if installed.
func RecordTaskAbort() {
	if global != nil {
		global.TaskAborts.Inc()
	}
}
