// Package port provides the byte transport to an APT controller: the FTDI virtual
// COM port on hardware, or an in-memory mock for tests.
package port

import "io"

// Port is an open byte stream to the controller.
type Port interface {
	io.ReadWriteCloser

	// Flush discards any buffered data
	Flush() error
}

// Config holds serial port configuration
type Config struct {
	// Device path (e.g., "/dev/ttyUSB0", "COM3")
	Device string

	// Baud rate, 115200 for every APT controller
	Baud int

	// Read timeout in milliseconds (0 = blocking)
	ReadTimeout int
}

// DefaultReadTimeout bounds each read so the reader notices Close while the
// controller is quiet. A read that times out returns (0, io.EOF).
const DefaultReadTimeout = 100

// DefaultConfig returns the APT serial settings: 115200 baud, 8 data bits, no
// parity, one stop bit, 100ms read timeout.
func DefaultConfig(device string) *Config {
	return &Config{
		Device:      device,
		Baud:        115200,
		ReadTimeout: DefaultReadTimeout,
	}
}
