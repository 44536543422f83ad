package kdc101

import (
	"github.com/seagrayinc/goapt/internal/apt"
)

const (
	mgmsg_MOT_REQ_STATUSBITS = 0x0429
	mgmsg_MOT_GET_STATUSBITS = 0x042A
)

func RequestStatusBits(ch Channel) Query[StatusBits] {
	cmd := headerCommand("MOT_REQ_STATUSBITS", mgmsg_MOT_REQ_STATUSBITS, byte(ch), 0)
	return query[StatusBits](cmd, mgmsg_MOT_GET_STATUSBITS)
}

type StatusBits struct {
	Channel Channel
	Status  StatusFlags
}

func (StatusBits) MessageID() uint16 { return mgmsg_MOT_GET_STATUSBITS }

func (m StatusBits) frame() apt.Frame {
	b := appendU16(make([]byte, 0, 6), uint16(m.Channel))
	return apt.Frame{ID: mgmsg_MOT_GET_STATUSBITS, Payload: appendU32(b, uint32(m.Status))}
}

func parseStatusBits(b []byte) (StatusBits, error) {
	return StatusBits{
		Channel: Channel(u16(b[0:2])),
		Status:  DecodeStatus(u32(b[2:6])),
	}, nil
}
