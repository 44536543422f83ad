package kdc101

import (
	"github.com/seagrayinc/goapt/internal/apt"
)

const (
	mgmsg_MOT_SET_JOGPARAMS = 0x0416
	mgmsg_MOT_REQ_JOGPARAMS = 0x0417
	mgmsg_MOT_GET_JOGPARAMS = 0x0418
)

func SetJogParams(p JogParams) (Command, error) {
	if err := p.validate(); err != nil {
		return Command{}, err
	}
	return payloadCommand("MOT_SET_JOGPARAMS", mgmsg_MOT_SET_JOGPARAMS, p.payload()), nil
}

func RequestJogParams(ch Channel) Query[JogParams] {
	cmd := headerCommand("MOT_REQ_JOGPARAMS", mgmsg_MOT_REQ_JOGPARAMS, byte(ch), 0)
	return query[JogParams](cmd, mgmsg_MOT_GET_JOGPARAMS)
}

type JogParams struct {
	Channel      Channel
	Mode         JogMode
	StepSize     int32
	MinVelocity  int32
	Acceleration int32
	MaxVelocity  int32
	StopMode     StopMode
}

func (JogParams) MessageID() uint16 { return mgmsg_MOT_GET_JOGPARAMS }

func (m JogParams) validate() error {
	return firstErr(
		oneOf("jog mode", m.Mode, JogContinuous, JogSingleStep),
		oneOf("stop mode", m.StopMode, StopAbrupt, StopProfiled),
	)
}

func (m JogParams) payload() []byte {
	b := appendU16(make([]byte, 0, 22), uint16(m.Channel))
	b = appendU16(b, uint16(m.Mode))
	b = appendI32(b, m.StepSize)
	b = appendI32(b, m.MinVelocity)
	b = appendI32(b, m.Acceleration)
	b = appendI32(b, m.MaxVelocity)
	return appendU16(b, uint16(m.StopMode))
}

func (m JogParams) frame() apt.Frame {
	return apt.Frame{ID: mgmsg_MOT_GET_JOGPARAMS, Payload: m.payload()}
}

func parseJogParams(b []byte) (JogParams, error) {
	m := JogParams{
		Channel:      Channel(u16(b[0:2])),
		Mode:         JogMode(u16(b[2:4])),
		StepSize:     i32(b[4:8]),
		MinVelocity:  i32(b[8:12]),
		Acceleration: i32(b[12:16]),
		MaxVelocity:  i32(b[16:20]),
		StopMode:     StopMode(u16(b[20:22])),
	}
	if err := m.validate(); err != nil {
		return JogParams{}, err
	}
	return m, nil
}
