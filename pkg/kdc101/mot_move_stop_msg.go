package kdc101

import (
	"github.com/seagrayinc/goapt/internal/apt"
)

const (
	mgmsg_MOT_MOVE_STOP    = 0x0465
	mgmsg_MOT_MOVE_STOPPED = 0x0466
)

func MoveStop(ch Channel, mode StopMode) (Query[MoveStopped], error) {
	if err := oneOf("stop mode", mode, StopAbrupt, StopProfiled); err != nil {
		return Query[MoveStopped]{}, err
	}
	cmd := headerCommand("MOT_MOVE_STOP", mgmsg_MOT_MOVE_STOP, byte(ch), byte(mode))
	return query[MoveStopped](cmd, mgmsg_MOT_MOVE_STOPPED), nil
}

// MoveStopped is sent when a move ends because of MoveStop.
type MoveStopped struct {
	StatusUpdate
}

func (MoveStopped) MessageID() uint16 { return mgmsg_MOT_MOVE_STOPPED }

func (m MoveStopped) frame() apt.Frame {
	return apt.Frame{ID: mgmsg_MOT_MOVE_STOPPED, Payload: m.payload()}
}

func parseMoveStopped(b []byte) (MoveStopped, error) {
	s, err := parseStatusUpdate(b)
	return MoveStopped{StatusUpdate: s}, err
}
