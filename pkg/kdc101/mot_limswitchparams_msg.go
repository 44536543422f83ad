package kdc101

const mgmsg_MOT_SET_LIMSWITCHPARAMS = 0x0423

const hardLimitSwapped = 0x80

// LimitSwitchParams configures the hardware and software limits. The controller's
// reply to a request for these parameters is not decoded.
type LimitSwitchParams struct {
	Channel Channel

	CWHardLimit  HardLimitMode
	CCWHardLimit HardLimitMode

	// SwapHardLimits exchanges the CW and CCW switches.
	SwapHardLimits bool

	CWSoftLimit  int32
	CCWSoftLimit int32
	SoftLimit    SoftLimitMode
}

func SetLimitSwitchParams(p LimitSwitchParams) (Command, error) {
	legalHard := []HardLimitMode{
		HardLimitIgnore, HardLimitMakes, HardLimitBreaks,
		HardLimitMakesHoming, HardLimitBreaksHoming, HardLimitIndexMark,
	}
	err := firstErr(
		oneOf("cw hard limit", p.CWHardLimit, legalHard...),
		oneOf("ccw hard limit", p.CCWHardLimit, legalHard...),
		oneOf("soft limit mode", p.SoftLimit, SoftLimitIgnore, SoftLimitStopAbrupt, SoftLimitStopProfiled),
	)
	if err != nil {
		return Command{}, err
	}

	cw, ccw := uint16(p.CWHardLimit), uint16(p.CCWHardLimit)
	if p.SwapHardLimits {
		cw |= hardLimitSwapped
		ccw |= hardLimitSwapped
	}

	b := appendU16(make([]byte, 0, 16), uint16(p.Channel))
	b = appendU16(b, cw)
	b = appendU16(b, ccw)
	b = appendI32(b, p.CWSoftLimit)
	b = appendI32(b, p.CCWSoftLimit)
	b = appendU16(b, uint16(p.SoftLimit))
	return payloadCommand("MOT_SET_LIMSWITCHPARAMS", mgmsg_MOT_SET_LIMSWITCHPARAMS, b), nil
}
