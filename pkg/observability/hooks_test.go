package observability

import (
	"testing"
	"time"
)

func TestNoopHooksDoNotPanic(t *testing.T) {
	// Shape hooks
	s := NoopShapeHooks{}
	s.OnPaths(12, time.Millisecond, nil)
	s.OnFaces(12, 8, time.Millisecond, nil)

	// Operator hooks
	o := NoopOperatorHooks{}
	o.OnOperatorStart("ambo", 8)
	o.OnOperatorComplete("ambo", 12, time.Millisecond, nil)

	// Queue hooks
	q := NoopQueueHooks{}
	q.OnStep("contraction", false)
	q.OnExpand("bevel", 5)
}

func TestGlobalHooksRegistry(t *testing.T) {
	// Reset to known state
	Reset()

	// Verify defaults are noop
	if _, ok := Shape().(NoopShapeHooks); !ok {
		t.Error("Shape() should return NoopShapeHooks by default")
	}
	if _, ok := Operator().(NoopOperatorHooks); !ok {
		t.Error("Operator() should return NoopOperatorHooks by default")
	}
	if _, ok := Queue().(NoopQueueHooks); !ok {
		t.Error("Queue() should return NoopQueueHooks by default")
	}

	// Set custom hooks
	customShape := &testShapeHooks{}
	SetShapeHooks(customShape)
	if Shape() != customShape {
		t.Error("SetShapeHooks should set custom hooks")
	}

	customOperator := &testOperatorHooks{}
	SetOperatorHooks(customOperator)
	if Operator() != customOperator {
		t.Error("SetOperatorHooks should set custom hooks")
	}

	customQueue := &testQueueHooks{}
	SetQueueHooks(customQueue)
	if Queue() != customQueue {
		t.Error("SetQueueHooks should set custom hooks")
	}

	// Reset and verify
	Reset()
	if _, ok := Operator().(NoopOperatorHooks); !ok {
		t.Error("Reset() should restore NoopOperatorHooks")
	}
}

func TestSetNilHooksIsIgnored(t *testing.T) {
	Reset()

	custom := &testOperatorHooks{}
	SetOperatorHooks(custom)

	// Setting nil should be ignored
	SetOperatorHooks(nil)

	if Operator() != custom {
		t.Error("SetOperatorHooks(nil) should be ignored")
	}

	Reset()
}

// Test implementations
type testShapeHooks struct{ NoopShapeHooks }
type testOperatorHooks struct{ NoopOperatorHooks }
type testQueueHooks struct{ NoopQueueHooks }
