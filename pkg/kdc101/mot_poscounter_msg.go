package kdc101

import (
	"github.com/seagrayinc/goapt/internal/apt"
)

const (
	mgmsg_MOT_SET_POSCOUNTER = 0x0410
	mgmsg_MOT_REQ_POSCOUNTER = 0x0411
	mgmsg_MOT_GET_POSCOUNTER = 0x0412
)

// SetPosition overwrites the live position counter without moving the motor.
func SetPosition(ch Channel, position int32) Command {
	p := PositionCounter{Channel: ch, Position: position}
	return payloadCommand("MOT_SET_POSCOUNTER", mgmsg_MOT_SET_POSCOUNTER, p.payload())
}

func RequestPosition(ch Channel) Query[PositionCounter] {
	cmd := headerCommand("MOT_REQ_POSCOUNTER", mgmsg_MOT_REQ_POSCOUNTER, byte(ch), 0)
	return query[PositionCounter](cmd, mgmsg_MOT_GET_POSCOUNTER)
}

// PositionCounter is the live position in encoder counts.
type PositionCounter struct {
	Channel  Channel
	Position int32
}

func (PositionCounter) MessageID() uint16 { return mgmsg_MOT_GET_POSCOUNTER }

func (m PositionCounter) payload() []byte {
	b := appendU16(make([]byte, 0, 6), uint16(m.Channel))
	return appendI32(b, m.Position)
}

func (m PositionCounter) frame() apt.Frame {
	return apt.Frame{ID: mgmsg_MOT_GET_POSCOUNTER, Payload: m.payload()}
}

func parsePositionCounter(b []byte) (PositionCounter, error) {
	return PositionCounter{
		Channel:  Channel(u16(b[0:2])),
		Position: i32(b[2:6]),
	}, nil
}
