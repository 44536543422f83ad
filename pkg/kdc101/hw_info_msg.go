package kdc101

import (
	"fmt"

	"github.com/seagrayinc/goapt/internal/apt"
)

const (
	mgmsg_HW_REQ_INFO = 0x0005
	mgmsg_HW_GET_INFO = 0x0006
)

func RequestInfo() Query[HardwareInfo] {
	return query[HardwareInfo](headerCommand("HW_REQ_INFO", mgmsg_HW_REQ_INFO, 0, 0), mgmsg_HW_GET_INFO)
}

type FirmwareVersion struct {
	Major   uint8
	Interim uint8
	Minor   uint8
}

func (v FirmwareVersion) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Interim, v.Minor)
}

type HardwareInfo struct {
	SerialNumber    uint32
	ModelNumber     string
	Type            uint16
	FirmwareVersion FirmwareVersion
	Notes           string
	HardwareVersion uint16
	ModState        uint16
	Channels        uint16
}

func (HardwareInfo) MessageID() uint16 { return mgmsg_HW_GET_INFO }

func (m HardwareInfo) frame() apt.Frame {
	b := make([]byte, 0, 84)
	b = appendU32(b, m.SerialNumber)
	b = appendFixed(b, m.ModelNumber, 8)
	b = appendU16(b, m.Type)
	b = append(b, m.FirmwareVersion.Minor, m.FirmwareVersion.Interim, m.FirmwareVersion.Major, 0)
	b = appendFixed(b, m.Notes, 48)
	b = append(b, make([]byte, 12)...)
	b = appendU16(b, m.HardwareVersion)
	b = appendU16(b, m.ModState)
	b = appendU16(b, m.Channels)
	return apt.Frame{ID: mgmsg_HW_GET_INFO, Payload: b}
}

func parseHardwareInfo(b []byte) (HardwareInfo, error) {
	// Data packet layout:
	//   0  serial number     u32
	//   4  model number      char[8]
	//   12 type              u16
	//   14 firmware version  minor, interim, major, unused
	//   18 notes             char[48]
	//   66 reserved          12 bytes
	//   78 hardware version  u16
	//   80 mod state         u16
	//   82 channels          u16
	return HardwareInfo{
		SerialNumber: u32(b[0:4]),
		ModelNumber:  cstring(b[4:12]),
		Type:         u16(b[12:14]),
		FirmwareVersion: FirmwareVersion{
			Minor:   b[14],
			Interim: b[15],
			Major:   b[16],
		},
		Notes:           cstring(b[18:66]),
		HardwareVersion: u16(b[78:80]),
		ModState:        u16(b[80:82]),
		Channels:        u16(b[82:84]),
	}, nil
}
