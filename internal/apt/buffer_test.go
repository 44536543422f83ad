package apt

import (
	"errors"
	"testing"
)

func TestBuffer(t *testing.T) {
	b := NewBuffer()
	if _, err := b.Peek(1); !errors.Is(err, ErrInsufficientData) {
		t.Fatalf("expected ErrInsufficientData, got %v", err)
	}

	b.Write([]byte{1, 2, 3})
	b.Write([]byte{4, 5})

	select {
	case <-b.Ready():
	default:
		t.Fatal("expected ready signal after write")
	}

	got, err := b.Peek(4)
	if err != nil {
		t.Fatalf("Peek failed: %v", err)
	}
	got[0] = 0xFF
	if again, _ := b.Peek(1); again[0] != 1 {
		t.Error("Peek must return a copy")
	}

	b.Pop(3)
	if b.Available() != 2 {
		t.Fatalf("got %d bytes available, want 2", b.Available())
	}
	rest, _ := b.Peek(2)
	if rest[0] != 4 || rest[1] != 5 {
		t.Errorf("got %v after pop, want [4 5]", rest)
	}
}
