package kdc101

const mgmsg_MOD_IDENTIFY = 0x0223

// Identify flashes the front panel LEDs of the controller.
func Identify(ch Channel) Command {
	return headerCommand("MOD_IDENTIFY", mgmsg_MOD_IDENTIFY, byte(ch), 0)
}
