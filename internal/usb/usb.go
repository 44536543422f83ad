// Package usb locates Thorlabs controllers on the USB bus. The controllers enumerate
// as FTDI serial bridges with a Thorlabs product id; the USB serial number equals the
// serial number printed on the unit.
package usb

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/karalabe/usb"
)

const (
	FTDIVID     = 0x0403
	ThorlabsPID = 0xFAF0 // APT DC/stepper controllers (KDC101, TDC001, KST101, ...)
)

// Info describes one attached controller.
type Info struct {
	Path         string
	Serial       string
	Product      string
	Manufacturer string
}

// enumerate is swapped in tests.
var enumerate = func(vendorID, productID uint16) ([]usb.DeviceInfo, error) {
	if !usb.Supported() {
		return nil, fmt.Errorf("usb enumeration not supported on this platform")
	}
	return usb.Enumerate(vendorID, productID)
}

// Enumerate lists attached Thorlabs APT controllers, sorted by serial number.
func Enumerate() ([]Info, error) {
	infos, err := enumerate(FTDIVID, ThorlabsPID)
	if err != nil {
		return nil, fmt.Errorf("usb enumerate: %w", err)
	}

	seen := make(map[string]bool, len(infos))
	out := make([]Info, 0, len(infos))
	for _, d := range infos {
		// one entry per interface; keep the first
		if seen[d.Serial] {
			continue
		}
		seen[d.Serial] = true
		out = append(out, Info{
			Path:         d.Path,
			Serial:       d.Serial,
			Product:      d.Product,
			Manufacturer: d.Manufacturer,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Serial < out[j].Serial })
	return out, nil
}

// Find returns the attached controller with the given serial number.
func Find(serial string) (Info, error) {
	infos, err := Enumerate()
	if err != nil {
		return Info{}, err
	}
	for _, info := range infos {
		if info.Serial == serial {
			return info, nil
		}
	}
	return Info{}, fmt.Errorf("controller %s not found (VID:0x%04X PID:0x%04X); found %d other controllers", serial, FTDIVID, ThorlabsPID, len(infos))
}

// byIDDir holds the udev symlinks that name serial ports after the USB serial
// number.
var byIDDir = "/dev/serial/by-id"

// PortFor resolves the serial device node of the controller with the given serial
// number through the udev by-id links.
func PortFor(serial string) (string, error) {
	if serial == "" {
		return "", fmt.Errorf("empty serial number")
	}
	matches, err := filepath.Glob(filepath.Join(byIDDir, "*"))
	if err != nil {
		return "", fmt.Errorf("list %s: %w", byIDDir, err)
	}
	for _, m := range matches {
		if strings.Contains(filepath.Base(m), "_"+serial+"-") {
			return m, nil
		}
	}
	return "", fmt.Errorf("no serial device for controller %s in %s", serial, byIDDir)
}
