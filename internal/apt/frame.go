// Package apt implements the framing layer of the Thorlabs APT communications
// protocol: a fixed 6-byte header optionally followed by a data packet.
package apt

import (
	"encoding/binary"
	"fmt"
	"strings"
)

const (
	HeaderLen = 6

	// Bit 7 of the destination byte signals that a data packet follows the header.
	PayloadFlag = 0x80

	// Upper bound on a data packet whose length is taken from the header itself. Only
	// used to skip frames the catalog does not know.
	MaxPayloadLen = 512
)

// Source and destination addresses, from the "Source/Destination" table of the
// protocol reference.
const (
	AddressHost       = 0x01
	AddressRack       = 0x11
	AddressBay0       = 0x21
	AddressGenericUSB = 0x50
)

// Frame is one complete wire message. Either Param1/Param2 or Payload carry the
// message data, never both.
type Frame struct {
	ID      uint16
	Param1  byte
	Param2  byte
	Dest    byte
	Source  byte
	Payload []byte
}

// Header is the decoded 6-byte prefix of a frame.
type Header struct {
	ID     uint16
	Param1 byte
	Param2 byte
	Dest   byte
	Source byte
}

// HasPayload reports whether a data packet follows this header.
func (h Header) HasPayload() bool {
	return h.Dest&PayloadFlag != 0
}

// PayloadLen is the data packet length announced by the header. Only meaningful
// when HasPayload is true.
func (h Header) PayloadLen() int {
	return int(binary.LittleEndian.Uint16([]byte{h.Param1, h.Param2}))
}

// ParseHeader reads the header fields from the first HeaderLen bytes of b.
func ParseHeader(b []byte) (Header, error) {
	if len(b) < HeaderLen {
		return Header{}, ErrInsufficientData
	}
	return Header{
		ID:     binary.LittleEndian.Uint16(b[0:2]),
		Param1: b[2],
		Param2: b[3],
		Dest:   b[4],
		Source: b[5],
	}, nil
}

// Encode serializes f into its wire form.
func Encode(f Frame) ([]byte, error) {
	if len(f.Payload) == 0 {
		return []byte{
			byte(f.ID), byte(f.ID >> 8),
			f.Param1, f.Param2,
			f.Dest &^ PayloadFlag, f.Source,
		}, nil
	}

	if f.Param1 != 0 || f.Param2 != 0 {
		return nil, &FormatError{ID: f.ID, Reason: "param1 and param2 must be zero when a data packet is present"}
	}
	if len(f.Payload) > 0xFFFF {
		return nil, &FormatError{ID: f.ID, Reason: "data packet longer than 65535 bytes"}
	}

	b := make([]byte, HeaderLen, HeaderLen+len(f.Payload))
	binary.LittleEndian.PutUint16(b[0:2], f.ID)
	binary.LittleEndian.PutUint16(b[2:4], uint16(len(f.Payload)))
	b[4] = f.Dest | PayloadFlag
	b[5] = f.Source
	return append(b, f.Payload...), nil
}

// FormatBytes renders b as dash separated hex pairs, e.g. "64-04-0e-00-d0-01".
func FormatBytes(b []byte) string {
	var sb strings.Builder
	sb.Grow(len(b) * 3)
	for i, v := range b {
		if i > 0 {
			sb.WriteByte('-')
		}
		fmt.Fprintf(&sb, "%02x", v)
	}
	return sb.String()
}
