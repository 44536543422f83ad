package port

import (
	"fmt"
	"time"

	"github.com/tarm/serial"
)

// SerialPort wraps the tarm/serial implementation
type SerialPort struct {
	port *serial.Port
	cfg  *Config
}

// Open opens the controller's serial port and discards anything already queued on
// it.
func Open(cfg *Config) (*SerialPort, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}
	if cfg.Device == "" {
		return nil, fmt.Errorf("no serial device configured")
	}

	serialConfig := &serial.Config{
		Name:        cfg.Device,
		Baud:        cfg.Baud,
		Size:        8,
		Parity:      serial.ParityNone,
		StopBits:    serial.Stop1,
		ReadTimeout: time.Duration(cfg.ReadTimeout) * time.Millisecond,
	}

	p, err := serial.OpenPort(serialConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to open serial port %s: %w", cfg.Device, err)
	}

	sp := &SerialPort{port: p, cfg: cfg}
	if err := sp.Flush(); err != nil {
		_ = p.Close()
		return nil, fmt.Errorf("failed to flush serial port %s: %w", cfg.Device, err)
	}
	return sp, nil
}

func (p *SerialPort) Read(b []byte) (int, error) {
	return p.port.Read(b)
}

func (p *SerialPort) Write(b []byte) (int, error) {
	return p.port.Write(b)
}

func (p *SerialPort) Close() error {
	if p.port != nil {
		return p.port.Close()
	}
	return nil
}

func (p *SerialPort) Flush() error {
	return p.port.Flush()
}

// Device returns the path the port was opened on.
func (p *SerialPort) Device() string {
	return p.cfg.Device
}
