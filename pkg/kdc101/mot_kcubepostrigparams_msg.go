package kdc101

const mgmsg_MOT_SET_KCUBEPOSTRIGPARAMS = 0x0526

// KCubePosTrigParams configures the position step trigger outputs. Positions and
// intervals are in encoder counts, PulseWidth in microseconds.
type KCubePosTrigParams struct {
	Channel      Channel
	StartPosFwd  int32
	IntervalFwd  int32
	NumPulsesFwd int32
	StartPosRev  int32
	IntervalRev  int32
	NumPulsesRev int32
	PulseWidth   int32
	NumCycles    int32
}

func SetKCubePosTrigParams(p KCubePosTrigParams) Command {
	b := appendU16(make([]byte, 0, 34), uint16(p.Channel))
	for _, v := range []int32{
		p.StartPosFwd, p.IntervalFwd, p.NumPulsesFwd,
		p.StartPosRev, p.IntervalRev, p.NumPulsesRev,
		p.PulseWidth, p.NumCycles,
	} {
		b = appendI32(b, v)
	}
	return payloadCommand("MOT_SET_KCUBEPOSTRIGPARAMS", mgmsg_MOT_SET_KCUBEPOSTRIGPARAMS, b)
}
