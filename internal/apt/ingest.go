package apt

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/seagrayinc/goapt/internal/metrics"
)

// DefaultPollInterval bounds how long the ingestion loop sleeps when it has no
// complete frame to decode.
const DefaultPollInterval = 100 * time.Millisecond

// Loop drains an inbound Buffer, decodes frames with Catalog and resolves pending
// requests in Correlator. Run it from exactly one goroutine.
type Loop[M Message] struct {
	Buffer     *Buffer
	Catalog    *Catalog[M]
	Correlator *Correlator[M]

	// Interval is the maximum sleep between cycles. Defaults to DefaultPollInterval.
	Interval time.Duration

	// OnMessage, if set, receives every decoded message after correlation, whether
	// or not a request was waiting for it. It runs on the loop goroutine.
	OnMessage func(msg M, resolved bool)
}

// Run processes frames until ctx is done. Decode errors are logged and counted;
// they never stop the loop.
func (l *Loop[M]) Run(ctx context.Context) error {
	interval := l.Interval
	if interval <= 0 {
		interval = DefaultPollInterval
	}

	timer := time.NewTimer(interval)
	defer timer.Stop()

	for {
		l.drain()
		if l.Correlator != nil {
			l.Correlator.Expire(time.Now())
		}

		if !timer.Stop() {
			select {
			case <-timer.C:
			default:
			}
		}
		timer.Reset(interval)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-l.Buffer.Ready():
		case <-timer.C:
		}
	}
}

// drain decodes every complete frame currently buffered.
func (l *Loop[M]) drain() {
	for l.Buffer.Available() >= HeaderLen {
		msg, err := Decode(l.Buffer, l.Catalog)
		if errors.Is(err, ErrInsufficientData) {
			return
		}
		if err != nil {
			metrics.RecordDecodeError(ErrorKind(err))
			log.Warn().Err(err).Msg("dropping inbound frame")
			continue
		}

		id := msg.MessageID()
		name := l.Catalog.Name(id)
		metrics.RecordFrameDecoded(name)

		resolved := false
		if l.Correlator != nil {
			resolved = l.Correlator.Resolve(id, msg)
		}
		if !resolved {
			metrics.RecordCorrelation(metrics.OutcomeDiscarded)
			log.Debug().Str("message", name).Msg("unsolicited frame")
		}

		if l.OnMessage != nil {
			l.OnMessage(msg, resolved)
		}
	}
}

// ErrorKind classifies err for metrics labels.
func ErrorKind(err error) string {
	var (
		fe *FormatError
		ue *UnknownMessageError
		re *RangeError
	)
	switch {
	case errors.As(err, &fe):
		return "format"
	case errors.As(err, &ue):
		return "unknown_message"
	case errors.As(err, &re):
		return "range"
	default:
		return "other"
	}
}
