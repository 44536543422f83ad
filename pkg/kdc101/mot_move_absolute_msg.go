package kdc101

const mgmsg_MOT_MOVE_ABSOLUTE = 0x0453

// MoveAbsolute moves to position, in encoder counts from home.
func MoveAbsolute(ch Channel, position int32) Query[MoveCompleted] {
	p := MoveAbsoluteParams{Channel: ch, Position: position}
	cmd := payloadCommand("MOT_MOVE_ABSOLUTE", mgmsg_MOT_MOVE_ABSOLUTE, p.payload())
	return query[MoveCompleted](cmd, mgmsg_MOT_MOVE_COMPLETED)
}

// MoveAbsoluteStored moves to the position last set with SetMoveAbsoluteParams.
func MoveAbsoluteStored(ch Channel) Query[MoveCompleted] {
	cmd := headerCommand("MOT_MOVE_ABSOLUTE", mgmsg_MOT_MOVE_ABSOLUTE, byte(ch), 0)
	return query[MoveCompleted](cmd, mgmsg_MOT_MOVE_COMPLETED)
}
