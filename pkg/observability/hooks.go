// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard dependencies
// on specific observability backends. Consumers can register hooks at startup
// to receive events about skeleton recomputation, Conway operator rewrites,
// and transaction queue steps.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// Hooks are registered by main, never by libraries, so the graph packages
// stay free of any metrics framework.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetOperatorHooks(&myOperatorHooks{})
//	    observability.SetQueueHooks(&myQueueHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Operator().OnOperatorStart("ambo", vertices)
//	// ... rewrite ...
//	observability.Operator().OnOperatorComplete("ambo", vertices, duration, err)
package observability

import (
	"sync"
	"time"
)

// =============================================================================
// Shape Hooks
// =============================================================================

// ShapeHooks receives events when derived skeleton data is recomputed.
type ShapeHooks interface {
	// OnPaths records an all-pairs shortest path computation.
	OnPaths(vertices int, duration time.Duration, err error)

	// OnFaces records a face discovery pass.
	OnFaces(vertices, faces int, duration time.Duration, err error)
}

// =============================================================================
// Operator Hooks
// =============================================================================

// OperatorHooks receives events from Conway operator rewrites.
type OperatorHooks interface {
	OnOperatorStart(op string, vertices int)
	OnOperatorComplete(op string, vertices int, duration time.Duration, err error)
}

// =============================================================================
// Queue Hooks
// =============================================================================

// QueueHooks receives events from the transaction interpreter.
type QueueHooks interface {
	// OnStep records that the head transaction was examined. done reports
	// whether it was popped.
	OnStep(kind string, done bool)

	// OnExpand records a composite operator lowered into primitive steps.
	OnExpand(op string, steps int)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopShapeHooks is a no-op implementation of ShapeHooks.
type NoopShapeHooks struct{}

func (NoopShapeHooks) OnPaths(int, time.Duration, error)      {}
func (NoopShapeHooks) OnFaces(int, int, time.Duration, error) {}

// NoopOperatorHooks is a no-op implementation of OperatorHooks.
type NoopOperatorHooks struct{}

func (NoopOperatorHooks) OnOperatorStart(string, int)                          {}
func (NoopOperatorHooks) OnOperatorComplete(string, int, time.Duration, error) {}

// NoopQueueHooks is a no-op implementation of QueueHooks.
type NoopQueueHooks struct{}

func (NoopQueueHooks) OnStep(string, bool)  {}
func (NoopQueueHooks) OnExpand(string, int) {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	shapeHooks    ShapeHooks    = NoopShapeHooks{}
	operatorHooks OperatorHooks = NoopOperatorHooks{}
	queueHooks    QueueHooks    = NoopQueueHooks{}
	hooksMu       sync.RWMutex
)

// SetShapeHooks registers custom shape hooks.
// This should be called once at application startup.
func SetShapeHooks(h ShapeHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		shapeHooks = h
	}
}

// SetOperatorHooks registers custom operator hooks.
// This should be called once at application startup.
func SetOperatorHooks(h OperatorHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		operatorHooks = h
	}
}

// SetQueueHooks registers custom queue hooks.
// This should be called once at application startup.
func SetQueueHooks(h QueueHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		queueHooks = h
	}
}

// Shape returns the registered shape hooks.
func Shape() ShapeHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return shapeHooks
}

// Operator returns the registered operator hooks.
func Operator() OperatorHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return operatorHooks
}

// Queue returns the registered queue hooks.
func Queue() QueueHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return queueHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	shapeHooks = NoopShapeHooks{}
	operatorHooks = NoopOperatorHooks{}
	queueHooks = NoopQueueHooks{}
}
