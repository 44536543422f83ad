package kdc101

import (
	"github.com/seagrayinc/goapt/internal/apt"
)

const (
	mgmsg_MOT_REQ_USTATUSUPDATE = 0x0490
	mgmsg_MOT_GET_USTATUSUPDATE = 0x0491
	mgmsg_MOT_ACK_USTATUSUPDATE = 0x0492
)

func RequestStatusUpdate(ch Channel) Query[StatusUpdate] {
	cmd := headerCommand("MOT_REQ_USTATUSUPDATE", mgmsg_MOT_REQ_USTATUSUPDATE, byte(ch), 0)
	return query[StatusUpdate](cmd, mgmsg_MOT_GET_USTATUSUPDATE)
}

// ServerAlive acknowledges status updates. While update messages are enabled the
// controller stops sending them if it hears nothing from the host for a while, so
// send this at least once a second. See Controller.KeepAlive.
func ServerAlive() Command {
	return headerCommand("MOT_ACK_USTATUSUPDATE", mgmsg_MOT_ACK_USTATUSUPDATE, 0, 0)
}

type StatusUpdate struct {
	Channel      Channel
	Position     int32
	Velocity     int16
	MotorCurrent int16
	Status       StatusFlags
}

func (StatusUpdate) MessageID() uint16 { return mgmsg_MOT_GET_USTATUSUPDATE }

func (m StatusUpdate) payload() []byte {
	b := appendU16(make([]byte, 0, 14), uint16(m.Channel))
	b = appendI32(b, m.Position)
	b = appendU16(b, uint16(m.Velocity))
	b = appendU16(b, uint16(m.MotorCurrent))
	return appendU32(b, uint32(m.Status))
}

func (m StatusUpdate) frame() apt.Frame {
	return apt.Frame{ID: mgmsg_MOT_GET_USTATUSUPDATE, Payload: m.payload()}
}

func parseStatusUpdate(b []byte) (StatusUpdate, error) {
	return StatusUpdate{
		Channel:      Channel(u16(b[0:2])),
		Position:     i32(b[2:6]),
		Velocity:     int16(u16(b[6:8])),
		MotorCurrent: int16(u16(b[8:10])),
		Status:       DecodeStatus(u32(b[10:14])),
	}, nil
}
