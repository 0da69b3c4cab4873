package reactive

import (
	"bytes"
	"runtime"
	"strconv"
)

// The core is single-threaded cooperative: every signal, effect, memo and
// owner is read and written only from the UI goroutine (spec §5). Unlike the
// teacher's DepTracker, which maintained one tracking stack per goroutine to
// tolerate concurrent callers, current-effect tracking here is a single
// package-level stack — there is exactly one "current effect" for the whole
// process, matching the spec's "at most one effect is current per thread"
// invariant taken to its single-thread limit.
//
// uiGoroutine records the goroutine ID observed on the first CreateEffect so
// that creating an effect from an async worker goroutine (see package async)
// fails loudly in development instead of silently racing. Only CreateEffect
// checks it; signal reads and writes are not checked.
var uiGoroutine uint64

func currentGoroutineID() uint64 {
	buf := make([]byte, 64)
	n := runtime.Stack(buf, false)
	buf = buf[:n]
	const prefix = "goroutine "
	idx := bytes.Index(buf, []byte(prefix))
	if idx == -1 {
		return 0
	}
	buf = buf[idx+len(prefix):]
	sp := bytes.IndexByte(buf, ' ')
	if sp == -1 {
		return 0
	}
	id, err := strconv.ParseUint(string(buf[:sp]), 10, 64)
	if err != nil {
		return 0
	}
	return id
}

// assertUIGoroutine panics with a clear diagnostic if called from a goroutine
// other than the one that first touched the reactive graph. Cheap relative
// to a full mutex and catches the class of bug the spec calls out in §5
// ("the ownership arena is thread-local to the UI thread").
func assertUIGoroutine() {
	gid := currentGoroutineID()
	if gid == 0 {
		return // couldn't determine it; don't false-positive
	}
	if uiGoroutine == 0 {
		uiGoroutine = gid
		return
	}
	if uiGoroutine != gid {
		panic("reactive: signal/effect graph accessed from a non-UI goroutine; " +
			"route the value through async.UIWriter or the dispatch queue instead")
	}
}

// effectStack is the current-effect stack for dynamic dependency capture.
// create_effect/Memo push onto it for the duration of their closure; Signal
// reads consult its top to know which effect (if any) to subscribe.
var effectStack []*Effect

func pushCurrentEffect(e *Effect) {
	if len(effectStack) >= MaxEffectDepth {
		panic(&MaxDepthExceededError{Depth: len(effectStack)})
	}
	effectStack = append(effectStack, e)
}

func popCurrentEffect() {
	effectStack = effectStack[:len(effectStack)-1]
}

// currentEffect returns the effect currently executing, or nil if none (e.g.
// inside Untracked, or at top level).
func currentEffect() *Effect {
	if len(effectStack) == 0 {
		return nil
	}
	return effectStack[len(effectStack)-1]
}

// Untracked runs fn with no current effect, so reads inside it never
// subscribe anything.
func Untracked[T any](fn func() T) T {
	saved := effectStack
	effectStack = nil
	defer func() { effectStack = saved }()
	return fn()
}

// UntrackedVoid is Untracked for side-effecting closures with no return value.
func UntrackedVoid(fn func()) {
	saved := effectStack
	effectStack = nil
	defer func() { effectStack = saved }()
	fn()
}
