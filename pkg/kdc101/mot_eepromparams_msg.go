package kdc101

const mgmsg_MOT_SET_EEPROMPARAMS = 0x04B9

// SaveParams persists the parameters written by set so they survive a power cycle.
// set is typically the command returned by one of the Set functions.
func SaveParams(ch Channel, set Command) Command {
	b := appendU16(make([]byte, 0, 4), uint16(ch))
	b = appendU16(b, set.Frame.ID)
	return payloadCommand("MOT_SET_EEPROMPARAMS", mgmsg_MOT_SET_EEPROMPARAMS, b)
}
