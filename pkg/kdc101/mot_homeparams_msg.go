package kdc101

import (
	"github.com/seagrayinc/goapt/internal/apt"
)

const (
	mgmsg_MOT_SET_HOMEPARAMS = 0x0440
	mgmsg_MOT_REQ_HOMEPARAMS = 0x0441
	mgmsg_MOT_GET_HOMEPARAMS = 0x0442
)

func SetHomeParams(p HomeParams) (Command, error) {
	if err := p.validate(); err != nil {
		return Command{}, err
	}
	return payloadCommand("MOT_SET_HOMEPARAMS", mgmsg_MOT_SET_HOMEPARAMS, p.payload()), nil
}

func RequestHomeParams(ch Channel) Query[HomeParams] {
	cmd := headerCommand("MOT_REQ_HOMEPARAMS", mgmsg_MOT_REQ_HOMEPARAMS, byte(ch), 0)
	return query[HomeParams](cmd, mgmsg_MOT_GET_HOMEPARAMS)
}

// HomeParams configures the homing move. Offset is the distance from the limit
// switch to the home position.
type HomeParams struct {
	Channel     Channel
	Direction   HomeDirection
	LimitSwitch HomeLimitSwitch
	Velocity    int32
	Offset      int32
}

func (HomeParams) MessageID() uint16 { return mgmsg_MOT_GET_HOMEPARAMS }

func (m HomeParams) validate() error {
	return firstErr(
		oneOf("home direction", m.Direction, HomeNotApplicable, HomeForward, HomeReverse),
		oneOf("home limit switch", m.LimitSwitch, HomeLimitNotApplicable, HomeLimitReverse, HomeLimitForward),
	)
}

func (m HomeParams) payload() []byte {
	b := appendU16(make([]byte, 0, 14), uint16(m.Channel))
	b = appendU16(b, uint16(m.Direction))
	b = appendU16(b, uint16(m.LimitSwitch))
	b = appendI32(b, m.Velocity)
	return appendI32(b, m.Offset)
}

func (m HomeParams) frame() apt.Frame {
	return apt.Frame{ID: mgmsg_MOT_GET_HOMEPARAMS, Payload: m.payload()}
}

func parseHomeParams(b []byte) (HomeParams, error) {
	m := HomeParams{
		Channel:     Channel(u16(b[0:2])),
		Direction:   HomeDirection(u16(b[2:4])),
		LimitSwitch: HomeLimitSwitch(u16(b[4:6])),
		Velocity:    i32(b[6:10]),
		Offset:      i32(b[10:14]),
	}
	if err := m.validate(); err != nil {
		return HomeParams{}, err
	}
	return m, nil
}
