package apt

import (
	"context"
	"testing"
	"time"
)

type observed struct {
	msg      testMsg
	resolved bool
}

func TestLoop(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	seen := make(chan observed, 8)
	loop := &Loop[testMsg]{
		Buffer:     NewBuffer(),
		Catalog:    testCatalog(),
		Correlator: NewCorrelator[testMsg](time.Minute),
		Interval:   10 * time.Millisecond,
		OnMessage: func(msg testMsg, resolved bool) {
			seen <- observed{msg: msg, resolved: resolved}
		},
	}

	done := make(chan error, 1)
	go func() { done <- loop.Run(ctx) }()

	r, err := loop.Correlator.Register(0x0412)
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	// An unknown frame, an unsolicited reply and the awaited reply, split across
	// writes.
	stream := parseHexString("99-09-00-00-50-01" + "-" + homedFrame + "-" + positionFrame)
	loop.Buffer.Write(stream[:10])
	loop.Buffer.Write(stream[10:])

	got, err := r.Wait(ctx)
	if err != nil {
		t.Fatalf("Wait failed: %v", err)
	}
	if got.ID != 0x0412 {
		t.Errorf("got 0x%04X, want 0x0412", got.ID)
	}

	want := []observed{
		{msg: testMsg{ID: 0x0444}, resolved: false},
		{msg: testMsg{ID: 0x0412}, resolved: true},
	}
	for _, w := range want {
		select {
		case o := <-seen:
			if o.msg.ID != w.msg.ID || o.resolved != w.resolved {
				t.Errorf("got 0x%04X resolved=%v, want 0x%04X resolved=%v", o.msg.ID, o.resolved, w.msg.ID, w.resolved)
			}
		case <-ctx.Done():
			t.Fatal("timeout waiting for message")
		}
	}

	cancel()
	if err := <-done; err != context.Canceled {
		t.Errorf("Run returned %v, want context.Canceled", err)
	}
}

func TestLoopSurvivesMalformedFrames(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	loop := &Loop[testMsg]{
		Buffer:     NewBuffer(),
		Catalog:    testCatalog(),
		Correlator: NewCorrelator[testMsg](time.Minute),
		Interval:   10 * time.Millisecond,
	}

	done := make(chan error, 1)
	go func() { done <- loop.Run(ctx) }()

	r, err := loop.Correlator.Register(0x0412)
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	// MOT_MOVE_HOMED and MOD_GET_CHANENABLESTATE with the data packet flag set,
	// then the awaited reply.
	loop.Buffer.Write(parseHexString("44-04-01-00-81-50-12-02-01-01-81-50-" + positionFrame))

	got, err := r.Wait(ctx)
	if err != nil {
		t.Fatalf("Wait failed: %v", err)
	}
	if got.ID != 0x0412 {
		t.Errorf("got 0x%04X, want 0x0412", got.ID)
	}

	cancel()
	if err := <-done; err != context.Canceled {
		t.Errorf("Run returned %v, want context.Canceled", err)
	}
}

func TestErrorKind(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{&FormatError{}, "format"},
		{&UnknownMessageError{}, "unknown_message"},
		{&RangeError{}, "range"},
		{ErrTimedOut, "other"},
	}
	for _, tt := range tests {
		if got := ErrorKind(tt.err); got != tt.want {
			t.Errorf("ErrorKind(%v) = %q, want %q", tt.err, got, tt.want)
		}
	}
}
