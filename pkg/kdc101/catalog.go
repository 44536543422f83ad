package kdc101

import (
	"github.com/seagrayinc/goapt/internal/apt"
)

// describe adapts a typed parser to the catalog's decode signature.
func describe[T Message](id uint16, name string, length int, parse func([]byte) (T, error)) apt.Descriptor[Message] {
	return apt.Descriptor[Message]{
		ID:     id,
		Name:   name,
		Length: length,
		Decode: func(b []byte) (Message, error) {
			m, err := parse(b)
			if err != nil {
				return nil, err
			}
			return m, nil
		},
	}
}

// Catalog lists every inbound message this package decodes, with its total wire
// length.
var Catalog = apt.MustCatalog(
	describe(mgmsg_MOD_GET_CHANENABLESTATE, "MOD_GET_CHANENABLESTATE", 6, parseChannelEnableState),
	describe(mgmsg_HW_GET_INFO, "HW_GET_INFO", 90, parseHardwareInfo),
	describe(mgmsg_HUB_GET_BAYUSED, "HUB_GET_BAYUSED", 6, parseBayUsed),
	describe(mgmsg_MOT_GET_POSCOUNTER, "MOT_GET_POSCOUNTER", 12, parsePositionCounter),
	describe(mgmsg_MOT_GET_ENCCOUNTER, "MOT_GET_ENCCOUNTER", 12, parseEncoderCounter),
	describe(mgmsg_MOT_GET_VELPARAMS, "MOT_GET_VELPARAMS", 20, parseVelocityParams),
	describe(mgmsg_MOT_GET_JOGPARAMS, "MOT_GET_JOGPARAMS", 28, parseJogParams),
	describe(mgmsg_MOT_GET_GENMOVEPARAMS, "MOT_GET_GENMOVEPARAMS", 12, parseGeneralMoveParams),
	describe(mgmsg_MOT_GET_MOVERELPARAMS, "MOT_GET_MOVERELPARAMS", 12, parseMoveRelativeParams),
	describe(mgmsg_MOT_GET_MOVEABSPARAMS, "MOT_GET_MOVEABSPARAMS", 12, parseMoveAbsoluteParams),
	describe(mgmsg_MOT_GET_HOMEPARAMS, "MOT_GET_HOMEPARAMS", 20, parseHomeParams),
	describe(mgmsg_MOT_MOVE_HOMED, "MOT_MOVE_HOMED", 6, parseMoveHomed),
	describe(mgmsg_MOT_MOVE_COMPLETED, "MOT_MOVE_COMPLETED", 20, parseMoveCompleted),
	describe(mgmsg_MOT_MOVE_STOPPED, "MOT_MOVE_STOPPED", 20, parseMoveStopped),
	describe(mgmsg_MOT_GET_DCPIDPARAMS, "MOT_GET_DCPIDPARAMS", 26, parseDCPIDParams),
	describe(mgmsg_MOT_GET_AVMODES, "MOT_GET_AVMODES", 10, parseAVModes),
	describe(mgmsg_MOT_GET_USTATUSUPDATE, "MOT_GET_USTATUSUPDATE", 20, parseStatusUpdate),
	describe(mgmsg_MOT_GET_STATUSBITS, "MOT_GET_STATUSBITS", 12, parseStatusBits),
)
