package kdc101

import (
	"strings"
)

// StatusFlags is the 32-bit status word reported by status updates, move completion
// and status bit messages. Bit n of the word maps to the flag 1<<n.
type StatusFlags uint32

const (
	StatusCWHardLimit StatusFlags = 1 << iota
	StatusCCWHardLimit
	StatusCWSoftLimit
	StatusCCWSoftLimit
	StatusInMotionCW
	StatusInMotionCCW
	StatusJoggingCW
	StatusJoggingCCW
	StatusConnected
	StatusHoming
	StatusHomed
	StatusInitializing
	StatusTracking
	StatusSettled
	StatusPositionError
	StatusInstrumentError
	StatusInterlock
	StatusOvertemp
	StatusBusVoltFault
	StatusCommutationError
	StatusDigitalInput1
	StatusDigitalInput2
	StatusDigitalInput3
	StatusDigitalInput4
	StatusOverload
	StatusEncoderFault
	StatusOvercurrent
	StatusBusCurrentFault
	StatusPowerOK
	StatusActive
	StatusError
	StatusEnabled
)

// StatusMoving is set while the motor is moving or jogging in either direction.
const StatusMoving = StatusInMotionCW | StatusInMotionCCW | StatusJoggingCW | StatusJoggingCCW

var statusNames = [32]string{
	"cw hard limit",
	"ccw hard limit",
	"cw soft limit",
	"ccw soft limit",
	"in motion cw",
	"in motion ccw",
	"jogging cw",
	"jogging ccw",
	"connected",
	"homing",
	"homed",
	"initializing",
	"tracking",
	"settled",
	"position error",
	"instrument error",
	"interlock",
	"overtemp",
	"bus voltage fault",
	"commutation error",
	"digital input 1",
	"digital input 2",
	"digital input 3",
	"digital input 4",
	"overload",
	"encoder fault",
	"overcurrent",
	"bus current fault",
	"power ok",
	"active",
	"error",
	"enabled",
}

// DecodeStatus translates a raw status word. Every bit has a defined flag, so the
// translation is total.
func DecodeStatus(word uint32) StatusFlags {
	return StatusFlags(word)
}

// Has reports whether every flag in f is set.
func (s StatusFlags) Has(f StatusFlags) bool {
	return s&f == f
}

func (s StatusFlags) Moving() bool {
	return s&StatusMoving != 0
}

// Names lists the set flags from bit 0 upwards.
func (s StatusFlags) Names() []string {
	var names []string
	for i, name := range statusNames {
		if s&(1<<i) != 0 {
			names = append(names, name)
		}
	}
	return names
}

func (s StatusFlags) String() string {
	if s == 0 {
		return "none"
	}
	return strings.Join(s.Names(), "|")
}
