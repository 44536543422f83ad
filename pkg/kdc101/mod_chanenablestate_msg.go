package kdc101

import (
	"github.com/seagrayinc/goapt/internal/apt"
)

const (
	mgmsg_MOD_SET_CHANENABLESTATE = 0x0210
	mgmsg_MOD_REQ_CHANENABLESTATE = 0x0211
	mgmsg_MOD_GET_CHANENABLESTATE = 0x0212
)

func SetChannelEnableState(ch Channel, state EnableState) (Command, error) {
	if err := oneOf("enable state", state, Enabled, Disabled); err != nil {
		return Command{}, err
	}
	return headerCommand("MOD_SET_CHANENABLESTATE", mgmsg_MOD_SET_CHANENABLESTATE, byte(ch), byte(state)), nil
}

func RequestChannelEnableState(ch Channel) Query[ChannelEnableState] {
	cmd := headerCommand("MOD_REQ_CHANENABLESTATE", mgmsg_MOD_REQ_CHANENABLESTATE, byte(ch), 0)
	return query[ChannelEnableState](cmd, mgmsg_MOD_GET_CHANENABLESTATE)
}

type ChannelEnableState struct {
	Channel Channel
	State   EnableState
}

func (ChannelEnableState) MessageID() uint16 { return mgmsg_MOD_GET_CHANENABLESTATE }

func (m ChannelEnableState) frame() apt.Frame {
	return headerFrame(mgmsg_MOD_GET_CHANENABLESTATE, byte(m.Channel), byte(m.State))
}

func parseChannelEnableState(b []byte) (ChannelEnableState, error) {
	m := ChannelEnableState{
		Channel: Channel(b[2]),
		State:   EnableState(b[3]),
	}
	if err := oneOf("enable state", m.State, Enabled, Disabled); err != nil {
		return ChannelEnableState{}, err
	}
	return m, nil
}
