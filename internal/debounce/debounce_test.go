package debounce

import (
	"sync/atomic"
	"testing"
	"time"
)

func TestBurstCollapsesToOneCall(t *testing.T) {
	var calls atomic.Int32
	done := make(chan struct{}, 10)
	d := New(30*time.Millisecond, func() {
		calls.Add(1)
		done <- struct{}{}
	})

	for i := 0; i < 10; i++ {
		d.Trigger()
		time.Sleep(2 * time.Millisecond)
	}

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("debounced function never ran")
	}

	// give any stray timers a chance to fire
	time.Sleep(80 * time.Millisecond)
	if got := calls.Load(); got != 1 {
		t.Errorf("calls = %d, want 1", got)
	}
}

func TestSeparatedTriggersEachRun(t *testing.T) {
	var calls atomic.Int32
	done := make(chan struct{}, 2)
	d := New(10*time.Millisecond, func() {
		calls.Add(1)
		done <- struct{}{}
	})

	for i := 0; i < 2; i++ {
		d.Trigger()
		select {
		case <-done:
		case <-time.After(time.Second):
			t.Fatalf("trigger %d never ran", i)
		}
	}

	if got := calls.Load(); got != 2 {
		t.Errorf("calls = %d, want 2", got)
	}
}

func TestCancel(t *testing.T) {
	var calls atomic.Int32
	d := New(20*time.Millisecond, func() { calls.Add(1) })

	if d.Cancel() {
		t.Error("Cancel() with nothing pending reported true")
	}

	d.Trigger()
	if !d.Cancel() {
		t.Error("Cancel() after Trigger reported false")
	}

	time.Sleep(60 * time.Millisecond)
	if got := calls.Load(); got != 0 {
		t.Errorf("calls = %d after cancel, want 0", got)
	}
}

func TestFlush(t *testing.T) {
	var calls atomic.Int32
	d := New(time.Hour, func() { calls.Add(1) })

	if d.Flush() {
		t.Error("Flush() with nothing pending reported true")
	}

	d.Trigger()
	if !d.Flush() {
		t.Error("Flush() after Trigger reported false")
	}
	if got := calls.Load(); got != 1 {
		t.Errorf("calls = %d after flush, want 1", got)
	}
	if d.Cancel() {
		t.Error("flushed call still pending")
	}
}
