package kdc101

import (
	"fmt"
	"strings"

	"github.com/seagrayinc/goapt/internal/apt"
)

type EnableState uint16

const (
	Enabled  EnableState = 0x01
	Disabled EnableState = 0x02
)

func (s EnableState) String() string {
	switch s {
	case Enabled:
		return "enabled"
	case Disabled:
		return "disabled"
	}
	return unknownEnum(uint16(s))
}

// Direction of a jog or velocity move.
type Direction uint16

const (
	Forward  Direction = 0x01
	Backward Direction = 0x02
)

func (d Direction) String() string {
	switch d {
	case Forward:
		return "forward"
	case Backward:
		return "backward"
	}
	return unknownEnum(uint16(d))
}

type StopMode uint16

const (
	StopAbrupt   StopMode = 0x01
	StopProfiled StopMode = 0x02
)

func (m StopMode) String() string {
	switch m {
	case StopAbrupt:
		return "abrupt"
	case StopProfiled:
		return "profiled"
	}
	return unknownEnum(uint16(m))
}

type JogMode uint16

const (
	JogContinuous JogMode = 0x01
	JogSingleStep JogMode = 0x02
)

func (m JogMode) String() string {
	switch m {
	case JogContinuous:
		return "continuous"
	case JogSingleStep:
		return "single step"
	}
	return unknownEnum(uint16(m))
}

type HomeDirection uint16

const (
	HomeNotApplicable HomeDirection = 0x00
	HomeForward       HomeDirection = 0x01
	HomeReverse       HomeDirection = 0x02
)

func (d HomeDirection) String() string {
	switch d {
	case HomeNotApplicable:
		return "not applicable"
	case HomeForward:
		return "forward"
	case HomeReverse:
		return "reverse"
	}
	return unknownEnum(uint16(d))
}

// HomeLimitSwitch selects the limit switch the homing move runs into.
type HomeLimitSwitch uint16

const (
	HomeLimitNotApplicable HomeLimitSwitch = 0x00
	HomeLimitReverse       HomeLimitSwitch = 0x01
	HomeLimitForward       HomeLimitSwitch = 0x04
)

func (l HomeLimitSwitch) String() string {
	switch l {
	case HomeLimitNotApplicable:
		return "not applicable"
	case HomeLimitReverse:
		return "hardware reverse"
	case HomeLimitForward:
		return "hardware forward"
	}
	return unknownEnum(uint16(l))
}

// HardLimitMode is the low byte of a hardware limit switch setting. The 0x80 bit
// swaps the CW and CCW switches and is carried separately.
type HardLimitMode uint16

const (
	HardLimitIgnore       HardLimitMode = 0x01
	HardLimitMakes        HardLimitMode = 0x02
	HardLimitBreaks       HardLimitMode = 0x03
	HardLimitMakesHoming  HardLimitMode = 0x04
	HardLimitBreaksHoming HardLimitMode = 0x05
	HardLimitIndexMark    HardLimitMode = 0x06
)

func (m HardLimitMode) String() string {
	switch m {
	case HardLimitIgnore:
		return "ignore"
	case HardLimitMakes:
		return "makes on contact"
	case HardLimitBreaks:
		return "breaks on contact"
	case HardLimitMakesHoming:
		return "makes on contact, homing only"
	case HardLimitBreaksHoming:
		return "breaks on contact, homing only"
	case HardLimitIndexMark:
		return "index mark"
	}
	return unknownEnum(uint16(m))
}

type SoftLimitMode uint16

const (
	SoftLimitIgnore       SoftLimitMode = 0x01
	SoftLimitStopAbrupt   SoftLimitMode = 0x02
	SoftLimitStopProfiled SoftLimitMode = 0x03
)

func (m SoftLimitMode) String() string {
	switch m {
	case SoftLimitIgnore:
		return "ignore"
	case SoftLimitStopAbrupt:
		return "stop immediately"
	case SoftLimitStopProfiled:
		return "stop profiled"
	}
	return unknownEnum(uint16(m))
}

type ButtonMode uint16

const (
	ButtonJog      ButtonMode = 0x01
	ButtonPosition ButtonMode = 0x02
)

func (m ButtonMode) String() string {
	switch m {
	case ButtonJog:
		return "jog"
	case ButtonPosition:
		return "go to position"
	}
	return unknownEnum(uint16(m))
}

// JoystickMode is the behaviour of the K-Cube velocity wheel.
type JoystickMode uint16

const (
	JoystickVelocity JoystickMode = 0x01
	JoystickJog      JoystickMode = 0x02
	JoystickPosition JoystickMode = 0x03
)

func (m JoystickMode) String() string {
	switch m {
	case JoystickVelocity:
		return "velocity"
	case JoystickJog:
		return "jog"
	case JoystickPosition:
		return "go to position"
	}
	return unknownEnum(uint16(m))
}

type WheelDirection uint16

const (
	WheelDisabled WheelDirection = 0x00
	WheelPositive WheelDirection = 0x01
	WheelNegative WheelDirection = 0x02
)

func (d WheelDirection) String() string {
	switch d {
	case WheelDisabled:
		return "disabled"
	case WheelPositive:
		return "positive"
	case WheelNegative:
		return "negative"
	}
	return unknownEnum(uint16(d))
}

// TriggerMode configures a K-Cube trigger port.
type TriggerMode uint16

const (
	TriggerDisabled       TriggerMode = 0x00
	TriggerInGPI          TriggerMode = 0x01
	TriggerInRelativeMove TriggerMode = 0x02
	TriggerInAbsoluteMove TriggerMode = 0x03
	TriggerInHome         TriggerMode = 0x04
	TriggerOutGPO         TriggerMode = 0x0A
	TriggerOutInMotion    TriggerMode = 0x0B
	TriggerOutAtMaxVel    TriggerMode = 0x0C
	TriggerOutPosStepFwd  TriggerMode = 0x0D
	TriggerOutPosStepRev  TriggerMode = 0x0E
	TriggerOutPosStepBoth TriggerMode = 0x0F
)

func (m TriggerMode) String() string {
	switch m {
	case TriggerDisabled:
		return "disabled"
	case TriggerInGPI:
		return "input: general purpose"
	case TriggerInRelativeMove:
		return "input: relative move"
	case TriggerInAbsoluteMove:
		return "input: absolute move"
	case TriggerInHome:
		return "input: home"
	case TriggerOutGPO:
		return "output: general purpose"
	case TriggerOutInMotion:
		return "output: in motion"
	case TriggerOutAtMaxVel:
		return "output: at max velocity"
	case TriggerOutPosStepFwd:
		return "output: position steps forward"
	case TriggerOutPosStepRev:
		return "output: position steps reverse"
	case TriggerOutPosStepBoth:
		return "output: position steps both"
	}
	return unknownEnum(uint16(m))
}

type TriggerPolarity uint16

const (
	TriggerActiveHigh TriggerPolarity = 0x01
	TriggerActiveLow  TriggerPolarity = 0x02
)

func (p TriggerPolarity) String() string {
	switch p {
	case TriggerActiveHigh:
		return "active high"
	case TriggerActiveLow:
		return "active low"
	}
	return unknownEnum(uint16(p))
}

func unknownEnum(v uint16) string {
	return fmt.Sprintf("unknown(0x%02X)", v)
}

type enum interface {
	~uint16
	String() string
}

// oneOf returns a RangeError unless v is one of legal.
func oneOf[E enum](field string, v E, legal ...E) error {
	for _, l := range legal {
		if v == l {
			return nil
		}
	}
	names := make([]string, len(legal))
	for i, l := range legal {
		names[i] = fmt.Sprintf("0x%02X (%s)", uint16(l), l)
	}
	return &apt.RangeError{
		Field: field,
		Value: int64(v),
		Legal: "one of " + strings.Join(names, ", "),
	}
}

// within returns a RangeError unless lo <= v <= hi.
func within(field string, v, lo, hi int64) error {
	if v < lo || v > hi {
		return &apt.RangeError{Field: field, Value: v, Legal: fmt.Sprintf("within %d..%d", lo, hi)}
	}
	return nil
}

// firstErr returns the first non-nil error.
func firstErr(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
