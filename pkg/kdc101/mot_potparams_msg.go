package kdc101

const mgmsg_MOT_SET_POTPARAMS = 0x04B0

// PotParams maps potentiometer deflection to velocity. Deflection below
// ZeroWindow does nothing; from Windows[i] upwards the motor runs at
// Velocities[i+1].
type PotParams struct {
	Channel    Channel
	ZeroWindow uint16
	Velocities [4]int32
	Windows    [3]uint16
}

func SetPotParams(p PotParams) Command {
	b := appendU16(make([]byte, 0, 26), uint16(p.Channel))
	b = appendU16(b, p.ZeroWindow)
	for i, v := range p.Velocities {
		b = appendI32(b, v)
		if i < len(p.Windows) {
			b = appendU16(b, p.Windows[i])
		}
	}
	return payloadCommand("MOT_SET_POTPARAMS", mgmsg_MOT_SET_POTPARAMS, b)
}
