package kdc101

const mgmsg_MOT_MOVE_VELOCITY = 0x0457

// MoveVelocity runs the motor in dir at the maximum velocity until MoveStop. The
// controller sends no completion message.
func MoveVelocity(ch Channel, dir Direction) (Command, error) {
	if err := oneOf("direction", dir, Forward, Backward); err != nil {
		return Command{}, err
	}
	return headerCommand("MOT_MOVE_VELOCITY", mgmsg_MOT_MOVE_VELOCITY, byte(ch), byte(dir)), nil
}
