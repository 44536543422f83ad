package kdc101

const mgmsg_MOT_MOVE_RELATIVE = 0x0448

// MoveRelative moves by distance encoder counts from the current position.
func MoveRelative(ch Channel, distance int32) Query[MoveCompleted] {
	p := MoveRelativeParams{Channel: ch, Distance: distance}
	cmd := payloadCommand("MOT_MOVE_RELATIVE", mgmsg_MOT_MOVE_RELATIVE, p.payload())
	return query[MoveCompleted](cmd, mgmsg_MOT_MOVE_COMPLETED)
}

// MoveRelativeStored moves by the distance last set with SetMoveRelativeParams.
func MoveRelativeStored(ch Channel) Query[MoveCompleted] {
	cmd := headerCommand("MOT_MOVE_RELATIVE", mgmsg_MOT_MOVE_RELATIVE, byte(ch), 0)
	return query[MoveCompleted](cmd, mgmsg_MOT_MOVE_COMPLETED)
}
