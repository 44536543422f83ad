package kdc101

const mgmsg_MOT_MOVE_JOG = 0x046A

// MoveJog jogs one step in dir using the parameters set with SetJogParams. In
// continuous jog mode the move lasts until MoveStop.
func MoveJog(ch Channel, dir Direction) (Query[MoveCompleted], error) {
	if err := oneOf("jog direction", dir, Forward, Backward); err != nil {
		return Query[MoveCompleted]{}, err
	}
	cmd := headerCommand("MOT_MOVE_JOG", mgmsg_MOT_MOVE_JOG, byte(ch), byte(dir))
	return query[MoveCompleted](cmd, mgmsg_MOT_MOVE_COMPLETED), nil
}
