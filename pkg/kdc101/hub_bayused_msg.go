package kdc101

import (
	"github.com/seagrayinc/goapt/internal/apt"
)

const (
	mgmsg_HUB_REQ_BAYUSED = 0x0065
	mgmsg_HUB_GET_BAYUSED = 0x0066
)

// BayStandalone is reported by a K-Cube that is not mounted on a hub.
const BayStandalone = -1

func RequestBayUsed() Query[BayUsed] {
	return query[BayUsed](headerCommand("HUB_REQ_BAYUSED", mgmsg_HUB_REQ_BAYUSED, 0, 0), mgmsg_HUB_GET_BAYUSED)
}

// BayUsed reports the hub bay (1 to 6) the controller sits in.
type BayUsed struct {
	Bay int8
}

func (BayUsed) MessageID() uint16 { return mgmsg_HUB_GET_BAYUSED }

func (m BayUsed) frame() apt.Frame {
	return headerFrame(mgmsg_HUB_GET_BAYUSED, byte(m.Bay), 0)
}

func parseBayUsed(b []byte) (BayUsed, error) {
	bay := int8(b[2])
	if bay != BayStandalone {
		if err := within("bay", int64(bay), 1, 6); err != nil {
			return BayUsed{}, err
		}
	}
	return BayUsed{Bay: bay}, nil
}
