package tui

import (
	"testing"

	"github.com/jask/namedeck/internal/store"
)

func TestScreenStackPushPop(t *testing.T) {
	st := store.New()
	home := NewHomeScreen(st, "Your Data: ", "required")
	detail := NewDetailScreen(st, "Your Data: ", "required")

	var stack ScreenStack
	if stack.Top() != nil {
		t.Fatal("empty stack should have nil top")
	}
	if stack.Pop() != nil {
		t.Fatal("pop on empty stack should return nil")
	}

	stack.Push(home)
	stack.Push(detail)
	if stack.Len() != 2 {
		t.Fatalf("len = %d, want 2", stack.Len())
	}
	if stack.Top() != Screen(detail) {
		t.Fatal("top should be the last pushed screen")
	}
	if stack.Pop() != Screen(detail) {
		t.Fatal("pop should return the detail screen")
	}
	if stack.Top() != Screen(home) {
		t.Fatal("home should remain after pop")
	}
}

func TestScreenStackIgnoresNil(t *testing.T) {
	var stack ScreenStack
	stack.Push(nil)
	if stack.Len() != 0 {
		t.Fatalf("len = %d after nil push, want 0", stack.Len())
	}
}
