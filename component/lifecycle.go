package component

// Lifecycle hooks layered on top of owner-scope disposal (spec §4.5's
// cleanup/unsubscribe/abort ordering still governs what Dispose itself
// does). These are additional, ordered callbacks around mount/unmount that
// a composite widget can use without reaching into reactive.OnCleanup,
// which only fires from inside a running effect.

// OnMounted registers fn to run the first time n is attached to a parent
// via AddChild or ReplaceChildren. Fires at most once.
func (n *Node) OnMounted(fn func()) {
	n.mountHooks = append(n.mountHooks, fn)
}

// OnBeforeUnmount registers fn to run just before n's owner is disposed
// (its children still attached, its signals/effects still live).
func (n *Node) OnBeforeUnmount(fn func()) {
	n.beforeUnmountHooks = append(n.beforeUnmountHooks, fn)
}

// OnUnmounted registers fn to run just after n's owner has been disposed.
func (n *Node) OnUnmounted(fn func()) {
	n.unmountHooks = append(n.unmountHooks, fn)
}

func (n *Node) fireMounted() {
	if n.mounted {
		return
	}
	n.mounted = true
	for _, fn := range n.mountHooks {
		fn()
	}
}

// unmount runs n's before-unmount hooks, then unmounts each child
// recursively, then disposes n's owner, then runs n's unmounted hooks. So
// across a subtree, before-unmount hooks fire top-down (parent first) and
// unmounted hooks fire bottom-up (children first).
func (n *Node) unmount() {
	for _, fn := range n.beforeUnmountHooks {
		fn()
	}
	for _, c := range n.children {
		c.unmount()
	}
	n.owner.Dispose()
	for _, fn := range n.unmountHooks {
		fn()
	}
}
