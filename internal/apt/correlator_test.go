package apt

import (
	"context"
	"errors"
	"io"
	"reflect"
	"testing"
	"time"
)

func TestCorrelatorResolve(t *testing.T) {
	c := NewCorrelator[testMsg](time.Minute)

	r, err := c.Register(0x0464)
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if c.Pending() != 1 {
		t.Fatalf("got %d pending, want 1", c.Pending())
	}

	want := testMsg{ID: 0x0464, Data: []byte{0x01}}
	if !c.Resolve(0x0464, want) {
		t.Fatal("Resolve found no entry")
	}
	if c.Pending() != 0 {
		t.Errorf("got %d pending after resolve, want 0", c.Pending())
	}

	got, err := r.Wait(context.Background())
	if err != nil {
		t.Fatalf("Wait failed: %v", err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %+v, want %+v", got, want)
	}

	if c.Resolve(0x0464, want) {
		t.Error("second Resolve should find no entry")
	}
}

func TestCorrelatorResolveWithoutEntry(t *testing.T) {
	c := NewCorrelator[testMsg](time.Minute)
	if _, err := c.Register(0x0444); err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if c.Resolve(0x0464, testMsg{ID: 0x0464}) {
		t.Error("Resolve matched the wrong id")
	}
	if c.Pending() != 1 {
		t.Errorf("got %d pending, want 1", c.Pending())
	}
}

func TestCorrelatorConflict(t *testing.T) {
	c := NewCorrelator[testMsg](time.Minute)
	if _, err := c.Register(0x0464); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	_, err := c.Register(0x0464)
	var ce *CorrelationConflictError
	if !errors.As(err, &ce) {
		t.Fatalf("expected CorrelationConflictError, got %v", err)
	}
	if ce.ID != 0x0464 {
		t.Errorf("got id 0x%04X, want 0x0464", ce.ID)
	}
}

func TestCorrelatorDeadline(t *testing.T) {
	c := NewCorrelator[testMsg](time.Minute)
	r, _ := c.Register(0x0464)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	if _, err := r.Wait(ctx); !errors.Is(err, ErrTimedOut) {
		t.Fatalf("expected ErrTimedOut, got %v", err)
	}
	if c.Pending() != 0 {
		t.Errorf("got %d pending after timeout, want 0", c.Pending())
	}
	if c.Resolve(0x0464, testMsg{ID: 0x0464}) {
		t.Error("a late reply must be discarded")
	}
}

func TestCorrelatorCancelKeepsEntry(t *testing.T) {
	c := NewCorrelator[testMsg](time.Minute)
	r, _ := c.Register(0x0464)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := r.Wait(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if c.Pending() != 1 {
		t.Fatalf("got %d pending after cancel, want 1", c.Pending())
	}

	c.Resolve(0x0464, testMsg{ID: 0x0464})
	got, err := r.Wait(context.Background())
	if err != nil || got.ID != 0x0464 {
		t.Errorf("got %+v, %v after resolve", got, err)
	}
}

func TestCorrelatorExpire(t *testing.T) {
	c := NewCorrelator[testMsg](time.Minute)
	r, _ := c.Register(0x0444)

	if n := c.Expire(time.Now()); n != 0 {
		t.Fatalf("expired %d fresh entries", n)
	}
	if n := c.Expire(time.Now().Add(2 * time.Minute)); n != 1 {
		t.Fatalf("expired %d entries, want 1", n)
	}
	if _, err := r.Wait(context.Background()); !errors.Is(err, ErrTimedOut) {
		t.Errorf("expected ErrTimedOut, got %v", err)
	}
}

func TestCorrelatorFail(t *testing.T) {
	c := NewCorrelator[testMsg](time.Minute)
	r1, _ := c.Register(0x0444)
	r2, _ := c.Register(0x0464)

	c.Fail(io.EOF)

	for _, r := range []*Reply[testMsg]{r1, r2} {
		_, err := r.Wait(context.Background())
		if !IsTransportError(err) || !errors.Is(err, io.EOF) {
			t.Errorf("reply 0x%04X: expected transport error wrapping EOF, got %v", r.ID(), err)
		}
	}

	if _, err := c.Register(0x0444); !IsTransportError(err) {
		t.Errorf("Register after Fail: expected transport error, got %v", err)
	}
}

func TestReplyCompletesOnce(t *testing.T) {
	c := NewCorrelator[testMsg](time.Minute)
	r, _ := c.Register(0x0444)
	c.Resolve(0x0444, testMsg{ID: 0x0444})

	defer func() {
		if recover() == nil {
			t.Error("expected panic on second completion")
		}
	}()
	r.complete(testMsg{}, nil)
}
