package kdc101

import (
	"github.com/seagrayinc/goapt/internal/apt"
)

const (
	mgmsg_MOT_SET_GENMOVEPARAMS = 0x043A
	mgmsg_MOT_REQ_GENMOVEPARAMS = 0x043B
	mgmsg_MOT_GET_GENMOVEPARAMS = 0x043C
)

func SetGeneralMoveParams(p GeneralMoveParams) Command {
	return payloadCommand("MOT_SET_GENMOVEPARAMS", mgmsg_MOT_SET_GENMOVEPARAMS, p.payload())
}

func RequestGeneralMoveParams(ch Channel) Query[GeneralMoveParams] {
	cmd := headerCommand("MOT_REQ_GENMOVEPARAMS", mgmsg_MOT_REQ_GENMOVEPARAMS, byte(ch), 0)
	return query[GeneralMoveParams](cmd, mgmsg_MOT_GET_GENMOVEPARAMS)
}

// GeneralMoveParams holds the backlash distance in encoder counts.
type GeneralMoveParams struct {
	Channel  Channel
	Backlash int32
}

func (GeneralMoveParams) MessageID() uint16 { return mgmsg_MOT_GET_GENMOVEPARAMS }

func (m GeneralMoveParams) payload() []byte {
	b := appendU16(make([]byte, 0, 6), uint16(m.Channel))
	return appendI32(b, m.Backlash)
}

func (m GeneralMoveParams) frame() apt.Frame {
	return apt.Frame{ID: mgmsg_MOT_GET_GENMOVEPARAMS, Payload: m.payload()}
}

func parseGeneralMoveParams(b []byte) (GeneralMoveParams, error) {
	return GeneralMoveParams{
		Channel:  Channel(u16(b[0:2])),
		Backlash: i32(b[2:6]),
	}, nil
}
