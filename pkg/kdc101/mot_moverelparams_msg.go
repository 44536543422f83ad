package kdc101

import (
	"github.com/seagrayinc/goapt/internal/apt"
)

const (
	mgmsg_MOT_SET_MOVERELPARAMS = 0x0445
	mgmsg_MOT_REQ_MOVERELPARAMS = 0x0446
	mgmsg_MOT_GET_MOVERELPARAMS = 0x0447
)

// SetMoveRelativeParams stores the distance used by MoveRelativeStored.
func SetMoveRelativeParams(p MoveRelativeParams) Command {
	return payloadCommand("MOT_SET_MOVERELPARAMS", mgmsg_MOT_SET_MOVERELPARAMS, p.payload())
}

func RequestMoveRelativeParams(ch Channel) Query[MoveRelativeParams] {
	cmd := headerCommand("MOT_REQ_MOVERELPARAMS", mgmsg_MOT_REQ_MOVERELPARAMS, byte(ch), 0)
	return query[MoveRelativeParams](cmd, mgmsg_MOT_GET_MOVERELPARAMS)
}

type MoveRelativeParams struct {
	Channel  Channel
	Distance int32
}

func (MoveRelativeParams) MessageID() uint16 { return mgmsg_MOT_GET_MOVERELPARAMS }

func (m MoveRelativeParams) payload() []byte {
	b := appendU16(make([]byte, 0, 6), uint16(m.Channel))
	return appendI32(b, m.Distance)
}

func (m MoveRelativeParams) frame() apt.Frame {
	return apt.Frame{ID: mgmsg_MOT_GET_MOVERELPARAMS, Payload: m.payload()}
}

func parseMoveRelativeParams(b []byte) (MoveRelativeParams, error) {
	return MoveRelativeParams{
		Channel:  Channel(u16(b[0:2])),
		Distance: i32(b[2:6]),
	}, nil
}
