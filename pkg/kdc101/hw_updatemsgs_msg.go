package kdc101

const (
	mgmsg_HW_START_UPDATEMSGS = 0x0011
	mgmsg_HW_STOP_UPDATEMSGS  = 0x0012
)

// StartUpdateMessages makes the controller send unsolicited status updates every
// 100 milliseconds. They arrive on Controller.Events.
func StartUpdateMessages() Command {
	return headerCommand("HW_START_UPDATEMSGS", mgmsg_HW_START_UPDATEMSGS, 0, 0)
}

func StopUpdateMessages() Command {
	return headerCommand("HW_STOP_UPDATEMSGS", mgmsg_HW_STOP_UPDATEMSGS, 0, 0)
}
