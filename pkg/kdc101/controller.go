package kdc101

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/seagrayinc/goapt/internal/apt"
	"github.com/seagrayinc/goapt/internal/metrics"
	"github.com/seagrayinc/goapt/internal/port"
)

const (
	// DefaultReplyTimeout bounds Reply.Wait when the caller's context has no
	// deadline. Homing a long stage can take most of it.
	DefaultReplyTimeout = 60 * time.Second

	// DefaultMaxPending is how long an abandoned request may hold its reply slot.
	DefaultMaxPending = 2 * time.Minute

	// KeepAliveInterval is the longest gap the controller tolerates between
	// ServerAlive messages while update messages are enabled.
	KeepAliveInterval = time.Second

	eventBuffer = 64
	readBuffer  = 256
)

// Controller is a connection to one APT motor controller. Commands may be issued
// from any goroutine; inbound frames are read, decoded and correlated in the
// background.
type Controller struct {
	port   port.Port
	dest   byte
	source byte

	replyTimeout time.Duration
	maxPending   time.Duration
	pollInterval time.Duration
	eventBuffer  int

	buf  *apt.Buffer
	corr *apt.Correlator[Message]

	writeMu sync.Mutex
	events  chan Message

	cancel context.CancelFunc
	wg     sync.WaitGroup
	closed atomic.Bool
	once   sync.Once
}

type Option func(*Controller)

// WithDestination sets the destination address of outbound frames.
func WithDestination(addr byte) Option {
	return func(c *Controller) { c.dest = addr }
}

// WithSource sets the source address of outbound frames.
func WithSource(addr byte) Option {
	return func(c *Controller) { c.source = addr }
}

func WithReplyTimeout(d time.Duration) Option {
	return func(c *Controller) { c.replyTimeout = d }
}

func WithMaxPending(d time.Duration) Option {
	return func(c *Controller) { c.maxPending = d }
}

// WithPollInterval sets the longest sleep of the ingestion loop.
func WithPollInterval(d time.Duration) Option {
	return func(c *Controller) { c.pollInterval = d }
}

// WithEventBuffer sets the capacity of the Events channel.
func WithEventBuffer(n int) Option {
	return func(c *Controller) { c.eventBuffer = n }
}

// Open opens the serial port described by cfg and starts a Controller on it.
func Open(cfg *port.Config, opts ...Option) (*Controller, error) {
	p, err := port.Open(cfg)
	if err != nil {
		return nil, err
	}
	return New(p, opts...), nil
}

// New starts a Controller on an already open port. The Controller owns p and closes
// it on Close.
func New(p port.Port, opts ...Option) *Controller {
	c := &Controller{
		port:         p,
		dest:         DefaultDestination,
		source:       DefaultSource,
		replyTimeout: DefaultReplyTimeout,
		maxPending:   DefaultMaxPending,
		pollInterval: apt.DefaultPollInterval,
		eventBuffer:  eventBuffer,
		buf:          apt.NewBuffer(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.corr = apt.NewCorrelator[Message](c.maxPending)
	c.events = make(chan Message, c.eventBuffer)

	ctx, cancel := context.WithCancel(context.Background())
	c.cancel = cancel

	loop := &apt.Loop[Message]{
		Buffer:     c.buf,
		Catalog:    Catalog,
		Correlator: c.corr,
		Interval:   c.pollInterval,
		OnMessage:  c.publish,
	}

	c.wg.Add(2)
	go func() {
		defer c.wg.Done()
		c.readLoop()
	}()
	go func() {
		defer c.wg.Done()
		_ = loop.Run(ctx)
	}()

	return c
}

// Events delivers every decoded inbound message, including replies that completed
// a request. Messages are dropped when the channel is full. The channel is closed
// by Close.
func (c *Controller) Events() <-chan Message {
	return c.events
}

func (c *Controller) publish(msg Message, _ bool) {
	select {
	case c.events <- msg:
	default:
		log.Debug().Str("message", Catalog.Name(msg.MessageID())).Msg("event channel full, dropping message")
	}
}

func (c *Controller) readLoop() {
	b := make([]byte, readBuffer)
	for {
		n, err := c.port.Read(b)
		if n > 0 {
			_, _ = c.buf.Write(b[:n])
			metrics.RecordBytesReceived(n)
		}
		if err != nil {
			if c.closed.Load() {
				return
			}
			if n == 0 && errors.Is(err, io.EOF) {
				// read timeout, the controller is quiet
				continue
			}
			log.Error().Err(err).Msg("controller link lost")
			c.corr.Fail(err)
			return
		}
	}
}

// Send writes cmd without waiting for anything in return.
func (c *Controller) Send(ctx context.Context, cmd Command) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	b, err := c.encode(cmd)
	if err != nil {
		return err
	}
	return c.write(cmd.Name, b)
}

// Do sends q and returns a handle on its reply. The reply slot is registered before
// the frame is written so a fast reply cannot be missed.
func Do[T Message](ctx context.Context, c *Controller, q Query[T]) (*Reply[T], error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	b, err := c.encode(q.Command)
	if err != nil {
		return nil, err
	}

	r, err := c.corr.Register(q.Reply)
	if err != nil {
		return nil, err
	}
	if err := c.write(q.Name, b); err != nil {
		c.corr.Cancel(r, err)
		return nil, err
	}
	return &Reply[T]{reply: r, timeout: c.replyTimeout}, nil
}

func (c *Controller) encode(cmd Command) ([]byte, error) {
	f := cmd.Frame
	f.Dest = c.dest
	f.Source = c.source
	return apt.Encode(f)
}

func (c *Controller) write(name string, b []byte) error {
	if c.closed.Load() {
		return &apt.TransportError{Err: apt.ErrClosed}
	}

	c.writeMu.Lock()
	defer c.writeMu.Unlock()

	log.Debug().Str("message", name).Str("bytes", apt.FormatBytes(b)).Msg("sending frame")
	if _, err := c.port.Write(b); err != nil {
		c.corr.Fail(err)
		return &apt.TransportError{Err: err}
	}
	metrics.RecordFrameSent(name)
	return nil
}

// KeepAlive sends ServerAlive every interval until ctx is done or a send fails.
// Intervals longer than KeepAliveInterval are shortened to it.
func (c *Controller) KeepAlive(ctx context.Context, interval time.Duration) error {
	if interval <= 0 || interval > KeepAliveInterval {
		interval = KeepAliveInterval
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if err := c.Send(ctx, ServerAlive()); err != nil {
				return err
			}
		}
	}
}

// Close stops the background goroutines, closes the port and fails every pending
// request. It is safe to call more than once.
func (c *Controller) Close() error {
	var err error
	c.once.Do(func() {
		c.closed.Store(true)
		c.cancel()
		err = c.port.Close()
		c.wg.Wait()
		c.corr.Fail(apt.ErrClosed)
		close(c.events)
	})
	return err
}

// Reply is a pending reply of type T.
type Reply[T Message] struct {
	reply   *apt.Reply[Message]
	timeout time.Duration
}

// Wait blocks for the reply. When ctx has no deadline the controller's reply
// timeout applies. An expired deadline yields apt.ErrTimedOut and releases the
// reply slot; a plain cancellation leaves the request pending.
func (r *Reply[T]) Wait(ctx context.Context) (T, error) {
	var zero T

	if _, ok := ctx.Deadline(); !ok && r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	m, err := r.reply.Wait(ctx)
	if err != nil {
		return zero, err
	}
	t, ok := m.(T)
	if !ok {
		return zero, &apt.FormatError{ID: m.MessageID(), Reason: fmt.Sprintf("unexpected reply type %T", m)}
	}
	return t, nil
}

// Done is closed once the reply has arrived or failed.
func (r *Reply[T]) Done() <-chan struct{} {
	return r.reply.Done()
}

// request runs q and waits for its reply.
func request[T Message](ctx context.Context, c *Controller, q Query[T]) (T, error) {
	r, err := Do(ctx, c, q)
	if err != nil {
		var zero T
		return zero, err
	}
	return r.Wait(ctx)
}

// IsTimeout reports whether err is a reply timeout.
func IsTimeout(err error) bool {
	return errors.Is(err, apt.ErrTimedOut)
}
