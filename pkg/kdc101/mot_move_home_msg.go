package kdc101

import (
	"github.com/seagrayinc/goapt/internal/apt"
)

const (
	mgmsg_MOT_MOVE_HOME  = 0x0443
	mgmsg_MOT_MOVE_HOMED = 0x0444
)

// MoveHome starts the homing sequence configured by SetHomeParams. The reply
// arrives once the stage is homed.
func MoveHome(ch Channel) Query[MoveHomed] {
	cmd := headerCommand("MOT_MOVE_HOME", mgmsg_MOT_MOVE_HOME, byte(ch), 0)
	return query[MoveHomed](cmd, mgmsg_MOT_MOVE_HOMED)
}

type MoveHomed struct {
	Channel Channel
}

func (MoveHomed) MessageID() uint16 { return mgmsg_MOT_MOVE_HOMED }

func (m MoveHomed) frame() apt.Frame {
	return headerFrame(mgmsg_MOT_MOVE_HOMED, byte(m.Channel), 0)
}

func parseMoveHomed(b []byte) (MoveHomed, error) {
	return MoveHomed{Channel: Channel(b[2])}, nil
}
