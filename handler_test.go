package vigil

import (
	"testing"
	"time"
)

func TestNewHandler(t *testing.T) {
	h := NewHandler()
	if h == nil {
		t.Fatal("NewHandler() returned nil")
	}
	if h.Ownership() != Owned {
		t.Errorf("expected default ownership Owned, got %v", h.Ownership())
	}
	if h.IsRunning() {
		t.Error("expected new handler to be idle")
	}

	hb := NewHandler(WithOwnership(Borrowed))
	if hb.Ownership() != Borrowed {
		t.Errorf("expected Borrowed, got %v", hb.Ownership())
	}
}

func TestHandler_AddListenerWhileRunningIgnored(t *testing.T) {
	h := NewHandler()
	h.AddListener(NewListener())

	h.Start()
	defer h.Cleanup()

	h.AddListener(NewListener())
	if h.Len() != 1 {
		t.Errorf("expected listener count to stay 1, got %d", h.Len())
	}
}

func TestHandler_AddNilListenerIgnored(t *testing.T) {
	h := NewHandler()
	h.AddListener(nil)
	if h.Len() != 0 {
		t.Errorf("expected 0 listeners, got %d", h.Len())
	}
}

func TestHandler_StartStop(t *testing.T) {
	l1 := NewListener()
	l2 := NewListener()
	h := NewHandler()
	h.AddListener(l1)
	h.AddListener(l2)

	h.Start()
	if !h.IsRunning() {
		t.Fatal("expected handler to be running")
	}
	if !l1.IsRunning() || !l2.IsRunning() {
		t.Fatal("expected all listeners to be running")
	}

	h.Start() // no-op

	h.Stop()
	if h.IsRunning() {
		t.Error("expected handler to be idle after Stop")
	}
	if l1.IsRunning() || l2.IsRunning() {
		t.Error("expected all listeners to be idle after Stop")
	}

	h.Stop() // no-op
}

func TestHandler_StopJoinsDispatch(t *testing.T) {
	e := &counterEvent{}
	l := NewListener()

	started := make(chan struct{})
	done := make(chan struct{})
	l.RegisterEvent(e, func(Event) {
		close(started)
		time.Sleep(50 * time.Millisecond)
		close(done)
	})

	h := NewHandler()
	h.AddListener(l)
	h.Start()
	defer h.Cleanup()

	e.raise()
	<-started

	h.Stop()
	select {
	case <-done:
	default:
		t.Error("handler Stop() returned before the in-flight dispatch completed")
	}
}

func TestHandler_CleanupOwned(t *testing.T) {
	e := &counterEvent{}
	l := NewListener()
	l.RegisterEvent(e, func(Event) {})

	h := NewHandler()
	h.AddListener(l)
	h.Start()

	h.Cleanup()
	if h.Len() != 0 {
		t.Errorf("expected empty collection after Cleanup, got %d", h.Len())
	}
	if h.IsRunning() {
		t.Error("expected handler to be idle after Cleanup")
	}

	// Owned listeners are retired: further use is a no-op.
	l.Start()
	if l.IsRunning() {
		t.Error("expected closed listener to refuse Start")
	}
	l.RegisterEvent(&counterEvent{}, func(Event) {})
	if l.Registrations() != 0 {
		t.Errorf("expected closed listener to refuse registration, got %d", l.Registrations())
	}
}

func TestHandler_CleanupBorrowed(t *testing.T) {
	e := &counterEvent{}
	l := NewListener()
	l.RegisterEvent(e, func(Event) {})

	h := NewHandler(WithOwnership(Borrowed))
	h.AddListener(l)
	h.Start()

	h.Cleanup()
	if h.Len() != 0 {
		t.Errorf("expected empty collection after Cleanup, got %d", h.Len())
	}

	// Borrowed listeners stay valid and usable.
	l.Start()
	if !l.IsRunning() {
		t.Fatal("expected borrowed listener to remain usable after Cleanup")
	}
	e.raise()
	waitUntil(t, 2*time.Second, func() bool { return e.resetCount() == 1 })
	l.Stop()
}

func TestOwnership_String(t *testing.T) {
	if Owned.String() != "owned" {
		t.Errorf("Owned.String() = %q", Owned.String())
	}
	if Borrowed.String() != "borrowed" {
		t.Errorf("Borrowed.String() = %q", Borrowed.String())
	}
	if Ownership(99).String() != "unknown" {
		t.Errorf("Ownership(99).String() = %q", Ownership(99).String())
	}
}

func TestHandler_CleanupIdempotent(t *testing.T) {
	h := NewHandler()
	h.AddListener(NewListener())
	h.Start()

	h.Cleanup()
	h.Cleanup()
	if h.Len() != 0 {
		t.Errorf("expected empty collection, got %d", h.Len())
	}
}
