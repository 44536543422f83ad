package kdc101

import (
	"github.com/seagrayinc/goapt/internal/apt"
)

const (
	mgmsg_MOT_SET_VELPARAMS = 0x0413
	mgmsg_MOT_REQ_VELPARAMS = 0x0414
	mgmsg_MOT_GET_VELPARAMS = 0x0415
)

// SetVelocityParams sets the trapezoidal profile used by relative and absolute
// moves. Velocities and acceleration are in device units.
func SetVelocityParams(p VelocityParams) Command {
	return payloadCommand("MOT_SET_VELPARAMS", mgmsg_MOT_SET_VELPARAMS, p.payload())
}

func RequestVelocityParams(ch Channel) Query[VelocityParams] {
	cmd := headerCommand("MOT_REQ_VELPARAMS", mgmsg_MOT_REQ_VELPARAMS, byte(ch), 0)
	return query[VelocityParams](cmd, mgmsg_MOT_GET_VELPARAMS)
}

type VelocityParams struct {
	Channel      Channel
	MinVelocity  int32
	Acceleration int32
	MaxVelocity  int32
}

func (VelocityParams) MessageID() uint16 { return mgmsg_MOT_GET_VELPARAMS }

func (m VelocityParams) payload() []byte {
	b := appendU16(make([]byte, 0, 14), uint16(m.Channel))
	b = appendI32(b, m.MinVelocity)
	b = appendI32(b, m.Acceleration)
	return appendI32(b, m.MaxVelocity)
}

func (m VelocityParams) frame() apt.Frame {
	return apt.Frame{ID: mgmsg_MOT_GET_VELPARAMS, Payload: m.payload()}
}

func parseVelocityParams(b []byte) (VelocityParams, error) {
	return VelocityParams{
		Channel:      Channel(u16(b[0:2])),
		MinVelocity:  i32(b[2:6]),
		Acceleration: i32(b[6:10]),
		MaxVelocity:  i32(b[10:14]),
	}, nil
}
