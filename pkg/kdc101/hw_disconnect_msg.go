package kdc101

const mgmsg_HW_DISCONNECT = 0x0002

// Disconnect tells the controller the host is about to close the connection.
func Disconnect() Command {
	return headerCommand("HW_DISCONNECT", mgmsg_HW_DISCONNECT, 0, 0)
}
