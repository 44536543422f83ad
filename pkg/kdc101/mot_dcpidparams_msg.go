package kdc101

import (
	"github.com/seagrayinc/goapt/internal/apt"
)

const (
	mgmsg_MOT_SET_DCPIDPARAMS = 0x04A0
	mgmsg_MOT_REQ_DCPIDPARAMS = 0x04A1
	mgmsg_MOT_GET_DCPIDPARAMS = 0x04A2
)

// Filter control bits select which PID terms the controller applies.
const (
	pidFilterProportional  = 0x01
	pidFilterIntegral      = 0x02
	pidFilterDerivative    = 0x04
	pidFilterIntegralLimit = 0x08
)

const maxPIDTerm = 32767

func SetDCPIDParams(p DCPIDParams) (Command, error) {
	if err := p.validate(); err != nil {
		return Command{}, err
	}
	return payloadCommand("MOT_SET_DCPIDPARAMS", mgmsg_MOT_SET_DCPIDPARAMS, p.payload()), nil
}

func RequestDCPIDParams(ch Channel) Query[DCPIDParams] {
	cmd := headerCommand("MOT_REQ_DCPIDPARAMS", mgmsg_MOT_REQ_DCPIDPARAMS, byte(ch), 0)
	return query[DCPIDParams](cmd, mgmsg_MOT_GET_DCPIDPARAMS)
}

// DCPIDParams are the servo loop gains. Each Apply flag enables the matching term.
type DCPIDParams struct {
	Channel       Channel
	Proportional  int32
	Integral      int32
	Derivative    int32
	IntegralLimit int32

	ApplyProportional  bool
	ApplyIntegral      bool
	ApplyDerivative    bool
	ApplyIntegralLimit bool
}

// NewDCPIDParams returns gains with every nonzero term applied.
func NewDCPIDParams(ch Channel, proportional, integral, derivative, integralLimit int32) DCPIDParams {
	return DCPIDParams{
		Channel:            ch,
		Proportional:       proportional,
		Integral:           integral,
		Derivative:         derivative,
		IntegralLimit:      integralLimit,
		ApplyProportional:  proportional > 0,
		ApplyIntegral:      integral > 0,
		ApplyDerivative:    derivative > 0,
		ApplyIntegralLimit: integralLimit > 0,
	}
}

func (DCPIDParams) MessageID() uint16 { return mgmsg_MOT_GET_DCPIDPARAMS }

func (m DCPIDParams) validate() error {
	return firstErr(
		within("proportional gain", int64(m.Proportional), 0, maxPIDTerm),
		within("integral gain", int64(m.Integral), 0, maxPIDTerm),
		within("derivative gain", int64(m.Derivative), 0, maxPIDTerm),
		within("integral limit", int64(m.IntegralLimit), 0, maxPIDTerm),
	)
}

func (m DCPIDParams) filter() uint16 {
	var f uint16
	if m.ApplyProportional {
		f |= pidFilterProportional
	}
	if m.ApplyIntegral {
		f |= pidFilterIntegral
	}
	if m.ApplyDerivative {
		f |= pidFilterDerivative
	}
	if m.ApplyIntegralLimit {
		f |= pidFilterIntegralLimit
	}
	return f
}

func (m DCPIDParams) payload() []byte {
	b := appendU16(make([]byte, 0, 20), uint16(m.Channel))
	b = appendI32(b, m.Proportional)
	b = appendI32(b, m.Integral)
	b = appendI32(b, m.Derivative)
	b = appendI32(b, m.IntegralLimit)
	return appendU16(b, m.filter())
}

func (m DCPIDParams) frame() apt.Frame {
	return apt.Frame{ID: mgmsg_MOT_GET_DCPIDPARAMS, Payload: m.payload()}
}

func parseDCPIDParams(b []byte) (DCPIDParams, error) {
	filter := u16(b[18:20])
	m := DCPIDParams{
		Channel:            Channel(u16(b[0:2])),
		Proportional:       i32(b[2:6]),
		Integral:           i32(b[6:10]),
		Derivative:         i32(b[10:14]),
		IntegralLimit:      i32(b[14:18]),
		ApplyProportional:  filter&pidFilterProportional != 0,
		ApplyIntegral:      filter&pidFilterIntegral != 0,
		ApplyDerivative:    filter&pidFilterDerivative != 0,
		ApplyIntegralLimit: filter&pidFilterIntegralLimit != 0,
	}
	if err := m.validate(); err != nil {
		return DCPIDParams{}, err
	}
	return m, nil
}
