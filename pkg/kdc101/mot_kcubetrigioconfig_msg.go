package kdc101

const mgmsg_MOT_SET_KCUBETRIGIOCONFIG = 0x0523

type KCubeTrigIOConfig struct {
	Channel       Channel
	Trig1Mode     TriggerMode
	Trig1Polarity TriggerPolarity
	Trig2Mode     TriggerMode
	Trig2Polarity TriggerPolarity
}

func SetKCubeTrigIOConfig(p KCubeTrigIOConfig) (Command, error) {
	modes := []TriggerMode{
		TriggerDisabled, TriggerInGPI, TriggerInRelativeMove, TriggerInAbsoluteMove, TriggerInHome,
		TriggerOutGPO, TriggerOutInMotion, TriggerOutAtMaxVel,
		TriggerOutPosStepFwd, TriggerOutPosStepRev, TriggerOutPosStepBoth,
	}
	err := firstErr(
		oneOf("trigger 1 mode", p.Trig1Mode, modes...),
		oneOf("trigger 1 polarity", p.Trig1Polarity, TriggerActiveHigh, TriggerActiveLow),
		oneOf("trigger 2 mode", p.Trig2Mode, modes...),
		oneOf("trigger 2 polarity", p.Trig2Polarity, TriggerActiveHigh, TriggerActiveLow),
	)
	if err != nil {
		return Command{}, err
	}

	b := appendU16(make([]byte, 0, 18), uint16(p.Channel))
	b = appendU16(b, uint16(p.Trig1Mode))
	b = appendU16(b, uint16(p.Trig1Polarity))
	b = appendU16(b, uint16(p.Trig2Mode))
	b = appendU16(b, uint16(p.Trig2Polarity))
	b = append(b, make([]byte, 8)...)
	return payloadCommand("MOT_SET_KCUBETRIGIOCONFIG", mgmsg_MOT_SET_KCUBETRIGIOCONFIG, b), nil
}
