// Package kdc101 implements the Thorlabs APT Communications Protocol (Issue 37) for
// the KDC101 K-Cube brushed DC servo controller and compatible single-channel motor
// controllers.
package kdc101

import (
	"bytes"
	"encoding/binary"

	"github.com/seagrayinc/goapt/internal/apt"
)

const (
	// Channel1 is the only channel of a K-Cube controller.
	Channel1 Channel = 1

	// DefaultDestination addresses a USB controller directly.
	DefaultDestination = apt.AddressGenericUSB

	// DefaultSource identifies the host.
	DefaultSource = apt.AddressHost
)

// Channel identifies a motor channel of the controller.
type Channel uint16

// Message is a decoded inbound message. The set of implementations is closed: one
// type per catalog entry.
type Message interface {
	apt.Message

	// frame returns the message in wire form, without addressing.
	frame() apt.Frame
}

// Command is an outbound message that expects no reply.
type Command struct {
	Name  string
	Frame apt.Frame
}

// Query is an outbound message whose reply is correlated by message id.
type Query[T Message] struct {
	Command
	Reply uint16
}

// Marshal encodes m as a frame from source to dest.
func Marshal(m Message, dest, source byte) ([]byte, error) {
	f := m.frame()
	f.Dest = dest
	f.Source = source
	return apt.Encode(f)
}

func headerCommand(name string, id uint16, param1, param2 byte) Command {
	return Command{Name: name, Frame: headerFrame(id, param1, param2)}
}

func payloadCommand(name string, id uint16, payload []byte) Command {
	return Command{Name: name, Frame: apt.Frame{ID: id, Payload: payload}}
}

func query[T Message](cmd Command, reply uint16) Query[T] {
	return Query[T]{Command: cmd, Reply: reply}
}

func headerFrame(id uint16, param1, param2 byte) apt.Frame {
	return apt.Frame{ID: id, Param1: param1, Param2: param2}
}

func appendU16(b []byte, v uint16) []byte {
	return binary.LittleEndian.AppendUint16(b, v)
}

func appendU32(b []byte, v uint32) []byte {
	return binary.LittleEndian.AppendUint32(b, v)
}

func appendI32(b []byte, v int32) []byte {
	return binary.LittleEndian.AppendUint32(b, uint32(v))
}

func u16(b []byte) uint16 {
	return binary.LittleEndian.Uint16(b)
}

func u32(b []byte) uint32 {
	return binary.LittleEndian.Uint32(b)
}

func i32(b []byte) int32 {
	return int32(binary.LittleEndian.Uint32(b))
}

// cstring returns b up to the first NUL.
func cstring(b []byte) string {
	if i := bytes.IndexByte(b, 0); i >= 0 {
		b = b[:i]
	}
	return string(b)
}

// appendFixed appends s truncated or NUL-padded to n bytes.
func appendFixed(b []byte, s string, n int) []byte {
	field := make([]byte, n)
	copy(field, s)
	return append(b, field...)
}
