package engine

import "sync"

// HookBus dispatches named console command events to subscribed handlers.
// Host adapters forward raw engine callbacks into Fire; the command framework
// subscribes through Engine.HookConsoleCommand. Events with no subscribers
// are dropped.
type HookBus struct {
	mu    sync.RWMutex
	hooks map[string][]ConsoleHandler
}

// NewHookBus creates a new hook bus.
func NewHookBus() *HookBus {
	return &HookBus{
		hooks: make(map[string][]ConsoleHandler),
	}
}

// Hook subscribes a handler to a named event. There is no unsubscribe; the
// host engine's hook tables are append-only for the process lifetime.
func (b *HookBus) Hook(name string, fn ConsoleHandler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.hooks[name] = append(b.hooks[name], fn)
}

// Fire invokes every handler subscribed to the named event, in subscription
// order, on the caller's goroutine.
func (b *HookBus) Fire(name string, c Client, args ...string) {
	b.mu.RLock()
	fns := b.hooks[name]
	b.mu.RUnlock()

	for _, fn := range fns {
		fn(c, args...)
	}
}

// HookCount returns the number of handlers subscribed to the named event.
func (b *HookBus) HookCount(name string) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.hooks[name])
}
