package kdc101

import (
	"github.com/seagrayinc/goapt/internal/apt"
)

const (
	mgmsg_MOT_SET_MOVEABSPARAMS = 0x0450
	mgmsg_MOT_REQ_MOVEABSPARAMS = 0x0451
	mgmsg_MOT_GET_MOVEABSPARAMS = 0x0452
)

// SetMoveAbsoluteParams stores the target used by MoveAbsoluteStored.
func SetMoveAbsoluteParams(p MoveAbsoluteParams) Command {
	return payloadCommand("MOT_SET_MOVEABSPARAMS", mgmsg_MOT_SET_MOVEABSPARAMS, p.payload())
}

func RequestMoveAbsoluteParams(ch Channel) Query[MoveAbsoluteParams] {
	cmd := headerCommand("MOT_REQ_MOVEABSPARAMS", mgmsg_MOT_REQ_MOVEABSPARAMS, byte(ch), 0)
	return query[MoveAbsoluteParams](cmd, mgmsg_MOT_GET_MOVEABSPARAMS)
}

type MoveAbsoluteParams struct {
	Channel  Channel
	Position int32
}

func (MoveAbsoluteParams) MessageID() uint16 { return mgmsg_MOT_GET_MOVEABSPARAMS }

func (m MoveAbsoluteParams) payload() []byte {
	b := appendU16(make([]byte, 0, 6), uint16(m.Channel))
	return appendI32(b, m.Position)
}

func (m MoveAbsoluteParams) frame() apt.Frame {
	return apt.Frame{ID: mgmsg_MOT_GET_MOVEABSPARAMS, Payload: m.payload()}
}

func parseMoveAbsoluteParams(b []byte) (MoveAbsoluteParams, error) {
	return MoveAbsoluteParams{
		Channel:  Channel(u16(b[0:2])),
		Position: i32(b[2:6]),
	}, nil
}
