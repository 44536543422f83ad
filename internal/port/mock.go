package port

import (
	"errors"
	"io"
	"sync"
	"time"
)

// Mock is an in-memory Port. Bytes passed to Emit are returned by Read; bytes
// written are recorded and handed to OnWrite.
type Mock struct {
	// OnWrite, if set, is called with every written frame. It may call Emit.
	OnWrite func(p []byte)

	// WriteErr, if set, is returned by every Write.
	WriteErr error

	// ReadTimeout, if set, makes Read return (0, io.EOF) after that long without
	// data, like a serial port opened with a read timeout. Set it before the first
	// Read.
	ReadTimeout time.Duration

	mu      sync.Mutex
	written [][]byte

	incoming  chan []byte
	pending   []byte
	closed    chan struct{}
	closeOnce sync.Once
}

func NewMock() *Mock {
	return &Mock{
		incoming: make(chan []byte, 64),
		closed:   make(chan struct{}),
	}
}

// Emit queues b to be read from the port.
func (m *Mock) Emit(b []byte) {
	cp := make([]byte, len(b))
	copy(cp, b)
	select {
	case m.incoming <- cp:
	case <-m.closed:
	}
}

// Read must only be called from one goroutine.
func (m *Mock) Read(p []byte) (int, error) {
	if len(m.pending) == 0 {
		var timeout <-chan time.Time
		if m.ReadTimeout > 0 {
			timer := time.NewTimer(m.ReadTimeout)
			defer timer.Stop()
			timeout = timer.C
		}
		select {
		case b := <-m.incoming:
			m.pending = b
		case <-m.closed:
			return 0, io.EOF
		case <-timeout:
			return 0, io.EOF
		}
	}
	n := copy(p, m.pending)
	m.pending = m.pending[n:]
	return n, nil
}

func (m *Mock) Write(p []byte) (int, error) {
	select {
	case <-m.closed:
		return 0, errors.New("mock port closed")
	default:
	}
	if m.WriteErr != nil {
		return 0, m.WriteErr
	}

	cp := make([]byte, len(p))
	copy(cp, p)
	m.mu.Lock()
	m.written = append(m.written, cp)
	m.mu.Unlock()

	if m.OnWrite != nil {
		m.OnWrite(cp)
	}
	return len(p), nil
}

// Written returns a copy of every frame written so far.
func (m *Mock) Written() [][]byte {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([][]byte, len(m.written))
	copy(out, m.written)
	return out
}

func (m *Mock) Flush() error {
	return nil
}

func (m *Mock) Close() error {
	m.closeOnce.Do(func() { close(m.closed) })
	return nil
}
