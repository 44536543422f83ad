package kdc101

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/seagrayinc/goapt/internal/apt"
	"github.com/seagrayinc/goapt/internal/port"
)

const moveCompletedHomedEnabled = "64-04-0e-00-81-50-01-00-a0-86-01-00-00-00-00-00-00-04-00-80"

func newTestController(t *testing.T, opts ...Option) (*Controller, *port.Mock) {
	t.Helper()
	mock := port.NewMock()
	opts = append([]Option{WithPollInterval(5 * time.Millisecond)}, opts...)
	c := New(mock, opts...)
	t.Cleanup(func() { c.Close() })
	return c, mock
}

// TestEndToEnd exercises the full flow:
// 1. An absolute move is encoded and written to the port
// 2. The controller answers with MOT_MOVE_COMPLETED (simulated via the mock port)
// 3. The ingestion loop decodes the frame and completes the waiting reply
func TestEndToEnd(t *testing.T) {
	c, mock := newTestController(t)
	move := parseHexString("53-04-06-00-d0-01-01-00-a0-86-01-00")
	mock.OnWrite = func(b []byte) {
		if bytes.Equal(b, move) {
			mock.Emit(parseHexString(moveCompletedHomedEnabled))
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	r, err := c.MoveAbsolute(ctx, Channel1, 100000)
	if err != nil {
		t.Fatalf("MoveAbsolute failed: %v", err)
	}
	got, err := r.Wait(ctx)
	if err != nil {
		t.Fatalf("Wait failed: %v", err)
	}

	if got.Position != 100000 {
		t.Errorf("got position %d, want 100000", got.Position)
	}
	if got.Status != StatusHomed|StatusEnabled {
		t.Errorf("got status %s, want homed|enabled", got.Status)
	}

	written := mock.Written()
	if len(written) != 1 || !bytes.Equal(written[0], move) {
		t.Errorf("unexpected frames written: %v", written)
	}
}

func TestRequestConflict(t *testing.T) {
	c, _ := newTestController(t)
	ctx := context.Background()

	if _, err := c.MoveAbsolute(ctx, Channel1, 10); err != nil {
		t.Fatalf("MoveAbsolute failed: %v", err)
	}
	_, err := c.MoveRelative(ctx, Channel1, 10)
	var ce *apt.CorrelationConflictError
	if !errors.As(err, &ce) {
		t.Fatalf("expected CorrelationConflictError, got %v", err)
	}
}

func TestReplyTimeout(t *testing.T) {
	c, mock := newTestController(t, WithReplyTimeout(20*time.Millisecond))
	ctx := context.Background()

	r, err := c.Home(ctx, Channel1)
	if err != nil {
		t.Fatalf("Home failed: %v", err)
	}
	if _, err := r.Wait(ctx); !IsTimeout(err) {
		t.Fatalf("expected timeout, got %v", err)
	}

	// The slot is free again and a late reply is only an event.
	mock.Emit(parseHexString("44-04-01-00-01-50"))
	if _, err := c.Home(ctx, Channel1); err != nil {
		t.Errorf("Home after timeout failed: %v", err)
	}
}

func TestWriteFailure(t *testing.T) {
	c, mock := newTestController(t)
	mock.WriteErr = errors.New("usb unplugged")

	_, err := c.Info(context.Background())
	if !apt.IsTransportError(err) {
		t.Fatalf("expected transport error, got %v", err)
	}

	// The link is considered lost.
	mock.WriteErr = nil
	if _, err := c.Home(context.Background(), Channel1); !apt.IsTransportError(err) {
		t.Errorf("expected transport error after failure, got %v", err)
	}
}

func TestIdleReadsKeepLink(t *testing.T) {
	mock := port.NewMock()
	mock.ReadTimeout = time.Millisecond
	c := New(mock, WithPollInterval(5*time.Millisecond))
	t.Cleanup(func() { c.Close() })

	// Let the reader see several timed out reads.
	time.Sleep(20 * time.Millisecond)

	mock.OnWrite = func(b []byte) {
		h, err := apt.ParseHeader(b)
		if err == nil && h.ID == 0x0443 {
			mock.Emit(parseHexString("44-04-01-00-01-50"))
		}
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	r, err := c.Home(ctx, Channel1)
	if err != nil {
		t.Fatalf("Home failed: %v", err)
	}
	if _, err := r.Wait(ctx); err != nil {
		t.Fatalf("Wait failed: %v", err)
	}

	done := make(chan error, 1)
	go func() { done <- c.Close() }()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Close failed: %v", err)
		}
	case <-ctx.Done():
		t.Fatal("Close did not return")
	}
}

func TestCloseFailsPending(t *testing.T) {
	c, _ := newTestController(t)

	r, err := c.Home(context.Background(), Channel1)
	if err != nil {
		t.Fatalf("Home failed: %v", err)
	}
	if err := c.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	_, err = r.Wait(context.Background())
	if !apt.IsTransportError(err) || !errors.Is(err, apt.ErrClosed) {
		t.Errorf("expected transport error wrapping ErrClosed, got %v", err)
	}
	if err := c.Send(context.Background(), Identify(Channel1)); !errors.Is(err, apt.ErrClosed) {
		t.Errorf("Send after Close: got %v", err)
	}
}

func TestEvents(t *testing.T) {
	c, mock := newTestController(t)

	mock.Emit(parseHexString("91-04-0e-00-81-50-01-00-2a-00-00-00-b0-04-6a-ff-10-00-00-80"))

	select {
	case msg := <-c.Events():
		su, ok := msg.(StatusUpdate)
		if !ok {
			t.Fatalf("got %T, want StatusUpdate", msg)
		}
		want := StatusUpdate{Channel: Channel1, Position: 42, Velocity: 1200, MotorCurrent: -150, Status: StatusInMotionCW | StatusEnabled}
		if su != want {
			t.Errorf("got %+v, want %+v", su, want)
		}
	case <-time.After(time.Second):
		t.Fatal("timeout waiting for event")
	}
}

func TestKeepAlive(t *testing.T) {
	c, mock := newTestController(t)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	if err := c.KeepAlive(ctx, 10*time.Millisecond); !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("KeepAlive returned %v", err)
	}

	alive := parseHexString("92-04-00-00-50-01")
	var n int
	for _, b := range mock.Written() {
		if bytes.Equal(b, alive) {
			n++
		}
	}
	if n == 0 {
		t.Error("no ServerAlive frames written")
	}
}
