package kdc101

const (
	mgmsg_MOT_SUSPEND_ENDOFMOVEMSGS = 0x046B
	mgmsg_MOT_RESUME_ENDOFMOVEMSGS  = 0x046C
)

// SuspendEndOfMoveMessages stops the controller from sending MoveCompleted and
// MoveHomed. Queries waiting for them then time out.
func SuspendEndOfMoveMessages() Command {
	return headerCommand("MOT_SUSPEND_ENDOFMOVEMSGS", mgmsg_MOT_SUSPEND_ENDOFMOVEMSGS, 0, 0)
}

func ResumeEndOfMoveMessages() Command {
	return headerCommand("MOT_RESUME_ENDOFMOVEMSGS", mgmsg_MOT_RESUME_ENDOFMOVEMSGS, 0, 0)
}
