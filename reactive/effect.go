package reactive

import (
	"sync/atomic"

	"github.com/loomkit/loom/logging"
)

var effectIDCounter uint64

func nextEffectID() uint64 {
	return atomic.AddUint64(&effectIDCounter, 1)
}

// signalHandle is the type-erased side of Signal[T] that an Effect needs in
// order to revoke its own subscription on re-run or disposal, without the
// Effect itself being generic over every signal type it reads.
type signalHandle interface {
	unsubscribe(effectID uint64)
}

// Effect is a side-effecting computation that re-runs whenever a signal it
// read during its last run is written. See spec §4.3 for the re-run
// algorithm this implements; the one difference is that re-entering a
// running effect panics with *CircularDependencyError instead of returning.
type Effect struct {
	id      uint64
	fn      func()
	owner   *Owner
	isDirty bool
	running bool

	cleanups []func()
	subs     []signalHandle

	// panicked records whether the most recent run ended in a recovered
	// panic, purely for diagnostics/tests; it does not change scheduling.
	panicked bool
	disposed bool
}

// CreateEffect registers fn under owner (a nil owner leaves the effect
// unowned, so no disposal ever stops it) and runs it once immediately, per
// spec §4.3 step-by-step.
func CreateEffect(owner *Owner, fn func()) *Effect {
	assertUIGoroutine()
	e := &Effect{id: nextEffectID(), fn: fn, owner: owner}
	if owner != nil {
		owner.addEffect(e)
	}
	e.run()
	return e
}

// OnCleanup registers g to run the next time the currently-running effect
// re-runs or is disposed. It is only meaningful called from inside an
// effect's closure (spec §4.3: "pushes G into the current effect's cleanup
// list").
func OnCleanup(g func()) {
	e := currentEffect()
	if e == nil {
		return
	}
	e.cleanups = append(e.cleanups, g)
}

// run executes the re-run algorithm from spec §4.3:
//  1. reentrancy guard (panics with *CircularDependencyError)
//  2. run previous cleanups LIFO
//  3. revoke previous subscriptions
//  4. clear subscription/cleanup lists
//  5. mark running, push onto the effect stack
//  6. execute (tracking new subscriptions)
//  7. pop, clear running
func (e *Effect) run() {
	if e.running {
		panic(&CircularDependencyError{EffectID: e.id})
	}

	for i := len(e.cleanups) - 1; i >= 0; i-- {
		runCleanup(e.cleanups[i])
	}

	for _, s := range e.subs {
		s.unsubscribe(e.id)
	}

	e.cleanups = nil
	e.subs = nil

	e.isDirty = false
	e.running = true
	e.panicked = false
	pushCurrentEffect(e)

	func() {
		defer func() {
			popCurrentEffect()
			e.running = false
			if r := recover(); r != nil {
				e.panicked = true
				reportPanic(r)
			}
		}()
		e.fn()
	}()
}

func runCleanup(g func()) {
	defer func() {
		if r := recover(); r != nil {
			reportPanic(r)
		}
	}()
	g()
}

// trackRead is called by Signal.Value (via the current effect) when a read
// happens under an active effect. It dedups by signal identity.
func (e *Effect) trackRead(s signalHandle) {
	for _, existing := range e.subs {
		if existing == s {
			return
		}
	}
	e.subs = append(e.subs, s)
}

// dispose permanently stops the effect: it runs the final cleanups and
// revokes subscriptions, but never re-runs again (owner disposal calls this;
// spec §4.3 "Effects never survive their owner").
func (e *Effect) dispose() {
	for i := len(e.cleanups) - 1; i >= 0; i-- {
		runCleanup(e.cleanups[i])
	}
	for _, s := range e.subs {
		s.unsubscribe(e.id)
	}
	e.cleanups = nil
	e.subs = nil
	e.disposed = true
}

// errorHandler, when set, receives every panic recovered from an effect
// body or an effect cleanup (spec §7). Panics in async tasks, resource
// fetchers and dispatch-queue callbacks do not reach it: package async
// recovers those and logs them through logging.Default().
var errorHandler func(any)

// SetErrorHandler installs a process-wide panic handler. Passing nil removes
// it; unhandled panics then print to stderr (handled by the default
// logging.Logger — see loom/logging).
func SetErrorHandler(h func(any)) {
	errorHandler = h
}

func reportPanic(r any) {
	if errorHandler != nil {
		errorHandler(r)
		return
	}
	logging.Default().Errorf("unhandled panic in effect: %v", r)
}
