package kdc101

import (
	"github.com/seagrayinc/goapt/internal/apt"
)

const mgmsg_MOT_SET_BUTTONPARAMS = 0x04B6

// DefaultButtonTimeout is the hold time in milliseconds that stores the current
// position into a button.
const DefaultButtonTimeout = 2000

// ButtonParams configures the front panel buttons. Positions only apply in
// ButtonPosition mode and must be zero otherwise.
type ButtonParams struct {
	Channel   Channel
	Mode      ButtonMode
	Position1 int32
	Position2 int32
	Timeout1  uint16
	Timeout2  uint16
}

func SetButtonParams(p ButtonParams) (Command, error) {
	if err := oneOf("button mode", p.Mode, ButtonJog, ButtonPosition); err != nil {
		return Command{}, err
	}
	if p.Mode == ButtonJog {
		for _, pos := range []struct {
			field string
			value int32
		}{{"button position 1", p.Position1}, {"button position 2", p.Position2}} {
			if pos.value != 0 {
				return Command{}, &apt.RangeError{Field: pos.field, Value: int64(pos.value), Legal: "0 in jog mode"}
			}
		}
	}
	if p.Timeout1 == 0 {
		p.Timeout1 = DefaultButtonTimeout
	}
	if p.Timeout2 == 0 {
		p.Timeout2 = DefaultButtonTimeout
	}

	b := appendU16(make([]byte, 0, 16), uint16(p.Channel))
	b = appendU16(b, uint16(p.Mode))
	b = appendI32(b, p.Position1)
	b = appendI32(b, p.Position2)
	b = appendU16(b, p.Timeout1)
	b = appendU16(b, p.Timeout2)
	return payloadCommand("MOT_SET_BUTTONPARAMS", mgmsg_MOT_SET_BUTTONPARAMS, b), nil
}
