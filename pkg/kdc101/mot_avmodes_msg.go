package kdc101

import (
	"github.com/seagrayinc/goapt/internal/apt"
)

const (
	mgmsg_MOT_SET_AVMODES = 0x04B3
	mgmsg_MOT_REQ_AVMODES = 0x04B4
	mgmsg_MOT_GET_AVMODES = 0x04B5
)

const (
	avModeIdent       = 0x01
	avModeLimitSwitch = 0x02
	avModeMoving      = 0x08
)

func SetAVModes(p AVModes) Command {
	return payloadCommand("MOT_SET_AVMODES", mgmsg_MOT_SET_AVMODES, p.payload())
}

func RequestAVModes(ch Channel) Query[AVModes] {
	cmd := headerCommand("MOT_REQ_AVMODES", mgmsg_MOT_REQ_AVMODES, byte(ch), 0)
	return query[AVModes](cmd, mgmsg_MOT_GET_AVMODES)
}

// AVModes selects what the front panel LED indicates.
type AVModes struct {
	Channel     Channel
	Ident       bool
	LimitSwitch bool
	Moving      bool
}

func (AVModes) MessageID() uint16 { return mgmsg_MOT_GET_AVMODES }

func (m AVModes) payload() []byte {
	var bits uint16
	if m.Ident {
		bits |= avModeIdent
	}
	if m.LimitSwitch {
		bits |= avModeLimitSwitch
	}
	if m.Moving {
		bits |= avModeMoving
	}
	b := appendU16(make([]byte, 0, 4), uint16(m.Channel))
	return appendU16(b, bits)
}

func (m AVModes) frame() apt.Frame {
	return apt.Frame{ID: mgmsg_MOT_GET_AVMODES, Payload: m.payload()}
}

func parseAVModes(b []byte) (AVModes, error) {
	bits := u16(b[2:4])
	return AVModes{
		Channel:     Channel(u16(b[0:2])),
		Ident:       bits&avModeIdent != 0,
		LimitSwitch: bits&avModeLimitSwitch != 0,
		Moving:      bits&avModeMoving != 0,
	}, nil
}
