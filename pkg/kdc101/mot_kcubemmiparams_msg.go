package kdc101

import (
	"github.com/seagrayinc/goapt/internal/apt"
)

const mgmsg_MOT_SET_KCUBEMMIPARAMS = 0x0520

// KCubeMMIParams configures the velocity wheel and display of a K-Cube.
type KCubeMMIParams struct {
	Channel Channel

	WheelMode         JoystickMode
	WheelMaxVelocity  int32
	WheelAcceleration int32
	WheelDirection    WheelDirection

	// Preset positions are only legal in JoystickPosition mode.
	PresetPosition1 int32
	PresetPosition2 int32

	// DisplayBrightness is 0 to 100, DisplayTimeout is in minutes up to 480 and
	// DisplayDimLevel is 0 to 10.
	DisplayBrightness uint16
	DisplayTimeout    uint16
	DisplayDimLevel   uint16
}

func (p KCubeMMIParams) validate() error {
	err := firstErr(
		oneOf("wheel mode", p.WheelMode, JoystickVelocity, JoystickJog, JoystickPosition),
		oneOf("wheel direction", p.WheelDirection, WheelDisabled, WheelPositive, WheelNegative),
		within("display brightness", int64(p.DisplayBrightness), 0, 100),
		within("display timeout", int64(p.DisplayTimeout), 0, 480),
		within("display dim level", int64(p.DisplayDimLevel), 0, 10),
	)
	if err != nil {
		return err
	}
	if p.WheelMode != JoystickPosition {
		if p.PresetPosition1 != 0 {
			return &apt.RangeError{Field: "preset position 1", Value: int64(p.PresetPosition1), Legal: "0 unless the wheel is in go to position mode"}
		}
		if p.PresetPosition2 != 0 {
			return &apt.RangeError{Field: "preset position 2", Value: int64(p.PresetPosition2), Legal: "0 unless the wheel is in go to position mode"}
		}
	}
	return nil
}

func SetKCubeMMIParams(p KCubeMMIParams) (Command, error) {
	if err := p.validate(); err != nil {
		return Command{}, err
	}
	b := appendU16(make([]byte, 0, 28), uint16(p.Channel))
	b = appendU16(b, uint16(p.WheelMode))
	b = appendI32(b, p.WheelMaxVelocity)
	b = appendI32(b, p.WheelAcceleration)
	b = appendU16(b, uint16(p.WheelDirection))
	b = appendI32(b, p.PresetPosition1)
	b = appendI32(b, p.PresetPosition2)
	b = appendU16(b, p.DisplayBrightness)
	b = appendU16(b, p.DisplayTimeout)
	b = appendU16(b, p.DisplayDimLevel)
	return payloadCommand("MOT_SET_KCUBEMMIPARAMS", mgmsg_MOT_SET_KCUBEMMIPARAMS, b), nil
}
