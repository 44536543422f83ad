// Package config loads the aptctl TOML configuration file.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Device   DeviceConfig
	Protocol ProtocolConfig
	Metrics  MetricsConfig
}

type DeviceConfig struct {
	// Port is the serial device path. When empty, Serial is resolved to a port
	// through the USB device list.
	Port   string
	Serial string
	Baud   int
}

type ProtocolConfig struct {
	Destination  byte
	Source       byte
	Channel      uint16
	ReplyTimeout time.Duration
	MaxPending   time.Duration
	PollInterval time.Duration
	KeepAlive    time.Duration
}

type MetricsConfig struct {
	// Addr is the listen address of the Prometheus endpoint. Empty disables it.
	Addr string
}

func Default() Config {
	return Config{
		Device: DeviceConfig{
			Baud: 115200,
		},
		Protocol: ProtocolConfig{
			Destination:  0x50,
			Source:       0x01,
			Channel:      1,
			ReplyTimeout: 60 * time.Second,
			MaxPending:   2 * time.Minute,
			PollInterval: 100 * time.Millisecond,
			KeepAlive:    time.Second,
		},
	}
}

type fileConfig struct {
	Device struct {
		Port   string `toml:"port"`
		Serial string `toml:"serial"`
		Baud   int    `toml:"baud"`
	} `toml:"device"`
	Protocol struct {
		Destination  int      `toml:"destination"`
		Source       int      `toml:"source"`
		Channel      int      `toml:"channel"`
		ReplyTimeout Duration `toml:"reply_timeout"`
		MaxPending   Duration `toml:"max_pending"`
		PollInterval Duration `toml:"poll_interval"`
		KeepAlive    Duration `toml:"keepalive"`
	} `toml:"protocol"`
	Metrics struct {
		Addr string `toml:"addr"`
	} `toml:"metrics"`
}

// Duration is a time.Duration written as a string such as "250ms".
type Duration time.Duration

func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(strings.TrimSpace(string(text)))
	if err != nil {
		return err
	}
	*d = Duration(v)
	return nil
}

// Load reads path over the defaults and validates the result. Keys absent from the
// file keep their default.
func Load(path string) (Config, error) {
	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("load config: unknown key %q", undecoded[0].String())
	}

	cfg := Default()
	if meta.IsDefined("device", "port") {
		cfg.Device.Port = strings.TrimSpace(raw.Device.Port)
	}
	if meta.IsDefined("device", "serial") {
		cfg.Device.Serial = strings.TrimSpace(raw.Device.Serial)
	}
	if meta.IsDefined("device", "baud") {
		cfg.Device.Baud = raw.Device.Baud
	}

	if meta.IsDefined("protocol", "destination") {
		if err := checkByte("protocol.destination", raw.Protocol.Destination); err != nil {
			return Config{}, err
		}
		cfg.Protocol.Destination = byte(raw.Protocol.Destination)
	}
	if meta.IsDefined("protocol", "source") {
		if err := checkByte("protocol.source", raw.Protocol.Source); err != nil {
			return Config{}, err
		}
		cfg.Protocol.Source = byte(raw.Protocol.Source)
	}
	if meta.IsDefined("protocol", "channel") {
		if raw.Protocol.Channel < 1 || raw.Protocol.Channel > 0xFF {
			return Config{}, fmt.Errorf("protocol.channel %d out of range", raw.Protocol.Channel)
		}
		cfg.Protocol.Channel = uint16(raw.Protocol.Channel)
	}
	if meta.IsDefined("protocol", "reply_timeout") {
		cfg.Protocol.ReplyTimeout = time.Duration(raw.Protocol.ReplyTimeout)
	}
	if meta.IsDefined("protocol", "max_pending") {
		cfg.Protocol.MaxPending = time.Duration(raw.Protocol.MaxPending)
	}
	if meta.IsDefined("protocol", "poll_interval") {
		cfg.Protocol.PollInterval = time.Duration(raw.Protocol.PollInterval)
	}
	if meta.IsDefined("protocol", "keepalive") {
		cfg.Protocol.KeepAlive = time.Duration(raw.Protocol.KeepAlive)
	}

	if meta.IsDefined("metrics", "addr") {
		cfg.Metrics.Addr = strings.TrimSpace(raw.Metrics.Addr)
	}

	if err := Validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func Validate(cfg Config) error {
	if cfg.Device.Baud <= 0 {
		return fmt.Errorf("device.baud must be positive")
	}
	if cfg.Protocol.ReplyTimeout <= 0 {
		return fmt.Errorf("protocol.reply_timeout must be positive")
	}
	if cfg.Protocol.PollInterval <= 0 {
		return fmt.Errorf("protocol.poll_interval must be positive")
	}
	if cfg.Protocol.KeepAlive <= 0 || cfg.Protocol.KeepAlive > time.Second {
		return fmt.Errorf("protocol.keepalive must be within (0, 1s]")
	}
	if cfg.Protocol.MaxPending < 0 {
		return fmt.Errorf("protocol.max_pending must not be negative")
	}
	return nil
}

func checkByte(key string, v int) error {
	if v < 0 || v > 0xFF {
		return fmt.Errorf("%s 0x%X does not fit in a byte", key, v)
	}
	return nil
}
