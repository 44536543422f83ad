package apt

import "sync"

// Buffer is the append-only inbound byte queue between the port reader and the
// ingestion loop. Writes come from the reader goroutine; Peek and Pop from the loop.
type Buffer struct {
	mu    sync.Mutex
	data  []byte
	ready chan struct{}
}

func NewBuffer() *Buffer {
	return &Buffer{ready: make(chan struct{}, 1)}
}

// Write appends p and wakes a waiting reader. It never fails.
func (b *Buffer) Write(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}

	b.mu.Lock()
	b.data = append(b.data, p...)
	b.mu.Unlock()

	select {
	case b.ready <- struct{}{}:
	default:
	}
	return len(p), nil
}

// Available returns the number of buffered bytes.
func (b *Buffer) Available() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.data)
}

// Peek returns a copy of the first n bytes without consuming them. It returns
// ErrInsufficientData if fewer than n bytes are buffered.
func (b *Buffer) Peek(n int) ([]byte, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if len(b.data) < n {
		return nil, ErrInsufficientData
	}
	out := make([]byte, n)
	copy(out, b.data[:n])
	return out, nil
}

// Pop discards the first n bytes.
func (b *Buffer) Pop(n int) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if n > len(b.data) {
		n = len(b.data)
	}
	// compact in place, the backing array is reused
	remaining := copy(b.data, b.data[n:])
	b.data = b.data[:remaining]
}

// Ready is signalled after a Write. A single pending signal covers any number of
// writes.
func (b *Buffer) Ready() <-chan struct{} {
	return b.ready
}
