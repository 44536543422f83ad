package kdc101

import (
	"github.com/seagrayinc/goapt/internal/apt"
)

const mgmsg_MOT_MOVE_COMPLETED = 0x0464

// MoveCompleted is sent when a relative, absolute or jog move finishes. It carries
// the status at the end of the move.
type MoveCompleted struct {
	StatusUpdate
}

func (MoveCompleted) MessageID() uint16 { return mgmsg_MOT_MOVE_COMPLETED }

func (m MoveCompleted) frame() apt.Frame {
	return apt.Frame{ID: mgmsg_MOT_MOVE_COMPLETED, Payload: m.payload()}
}

func parseMoveCompleted(b []byte) (MoveCompleted, error) {
	s, err := parseStatusUpdate(b)
	return MoveCompleted{StatusUpdate: s}, err
}
