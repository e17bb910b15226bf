package store

import "testing"

func TestSetNameThenName(t *testing.T) {
	s := New()
	if _, ok := s.Name(); ok {
		t.Fatal("fresh store should be unset")
	}
	for _, want := range []string{"Alice", "Bob", "名前", "x"} {
		s.SetName(want)
		got, ok := s.Name()
		if !ok {
			t.Fatalf("Name() not set after SetName(%q)", want)
		}
		if got != want {
			t.Fatalf("Name() = %q, want %q", got, want)
		}
	}
}

func TestSubscribeFiresOnEveryWrite(t *testing.T) {
	s := New()
	calls := 0
	s.Subscribe(func() { calls++ })
	s.SetName("Alice")
	s.SetName("Alice") // same value still notifies
	if calls != 2 {
		t.Fatalf("listener calls = %d, want 2", calls)
	}
}

func TestAllListenersNotified(t *testing.T) {
	s := New()
	a, b := 0, 0
	s.Subscribe(func() { a++ })
	s.Subscribe(func() { b++ })
	s.SetName("Bob")
	if a != 1 || b != 1 {
		t.Fatalf("listener calls = (%d, %d), want (1, 1)", a, b)
	}
}

func TestUnsubscribeStopsNotifications(t *testing.T) {
	s := New()
	calls := 0
	sub := s.Subscribe(func() { calls++ })
	s.SetName("Alice")
	s.Unsubscribe(sub)
	s.SetName("Bob")
	if calls != 1 {
		t.Fatalf("listener calls = %d, want 1", calls)
	}
	if got, _ := s.Name(); got != "Bob" {
		t.Fatalf("Name() = %q, want %q", got, "Bob")
	}
}

func TestUnsubscribeUnknownHandle(t *testing.T) {
	s := New()
	s.Unsubscribe("never-issued")
	s.SetName("Alice")
	if got, ok := s.Name(); !ok || got != "Alice" {
		t.Fatalf("Name() = (%q, %v), want (Alice, true)", got, ok)
	}
}

func TestClearResetsAndNotifies(t *testing.T) {
	s := New()
	calls := 0
	s.Subscribe(func() { calls++ })
	s.SetName("Alice")
	s.Clear()
	if _, ok := s.Name(); ok {
		t.Fatal("store should be unset after Clear")
	}
	if calls != 2 {
		t.Fatalf("listener calls = %d, want 2", calls)
	}
}

func TestNilListenerIgnored(t *testing.T) {
	s := New()
	if sub := s.Subscribe(nil); sub != "" {
		t.Fatalf("nil listener returned handle %q", sub)
	}
	s.SetName("Alice") // must not panic
}
