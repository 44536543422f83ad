package kdc101

import (
	"github.com/seagrayinc/goapt/internal/apt"
)

const (
	mgmsg_MOT_SET_ENCCOUNTER = 0x0409
	mgmsg_MOT_REQ_ENCCOUNTER = 0x040A
	mgmsg_MOT_GET_ENCCOUNTER = 0x040B
)

func SetEncoderCount(ch Channel, count int32) Command {
	p := EncoderCounter{Channel: ch, Count: count}
	return payloadCommand("MOT_SET_ENCCOUNTER", mgmsg_MOT_SET_ENCCOUNTER, p.payload())
}

func RequestEncoderCount(ch Channel) Query[EncoderCounter] {
	cmd := headerCommand("MOT_REQ_ENCCOUNTER", mgmsg_MOT_REQ_ENCCOUNTER, byte(ch), 0)
	return query[EncoderCounter](cmd, mgmsg_MOT_GET_ENCCOUNTER)
}

type EncoderCounter struct {
	Channel Channel
	Count   int32
}

func (EncoderCounter) MessageID() uint16 { return mgmsg_MOT_GET_ENCCOUNTER }

func (m EncoderCounter) payload() []byte {
	b := appendU16(make([]byte, 0, 6), uint16(m.Channel))
	return appendI32(b, m.Count)
}

func (m EncoderCounter) frame() apt.Frame {
	return apt.Frame{ID: mgmsg_MOT_GET_ENCCOUNTER, Payload: m.payload()}
}

func parseEncoderCounter(b []byte) (EncoderCounter, error) {
	return EncoderCounter{
		Channel: Channel(u16(b[0:2])),
		Count:   i32(b[2:6]),
	}, nil
}
