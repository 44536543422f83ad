package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "aptctl.toml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, ""))
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg != Default() {
		t.Fatalf("got %+v, want defaults", cfg)
	}
}

func TestLoadOverrides(t *testing.T) {
	cfg, err := Load(writeConfig(t, `
[device]
serial = " 27000001 "

[protocol]
destination = 0x21
reply_timeout = "90s"
poll_interval = "20ms"

[metrics]
addr = ":9102"
`))
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Device.Serial != "27000001" {
		t.Fatalf("unexpected serial: %q", cfg.Device.Serial)
	}
	if cfg.Device.Port != "" {
		t.Fatalf("unexpected port: %q", cfg.Device.Port)
	}
	if cfg.Device.Baud != 115200 {
		t.Fatalf("unexpected baud: %d", cfg.Device.Baud)
	}
	if cfg.Protocol.Destination != 0x21 {
		t.Fatalf("unexpected destination: 0x%02X", cfg.Protocol.Destination)
	}
	if cfg.Protocol.Source != 0x01 {
		t.Fatalf("unexpected source: 0x%02X", cfg.Protocol.Source)
	}
	if cfg.Protocol.ReplyTimeout != 90*time.Second {
		t.Fatalf("unexpected reply timeout: %v", cfg.Protocol.ReplyTimeout)
	}
	if cfg.Protocol.PollInterval != 20*time.Millisecond {
		t.Fatalf("unexpected poll interval: %v", cfg.Protocol.PollInterval)
	}
	if cfg.Protocol.KeepAlive != time.Second {
		t.Fatalf("unexpected keepalive: %v", cfg.Protocol.KeepAlive)
	}
	if cfg.Metrics.Addr != ":9102" {
		t.Fatalf("unexpected metrics addr: %q", cfg.Metrics.Addr)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"bad duration", "[protocol]\nreply_timeout = \"soon\"\n", "load config"},
		{"unknown key", "[device]\nspeed = 9600\n", "unknown key"},
		{"address too large", "[protocol]\nsource = 0x100\n", "does not fit"},
		{"channel zero", "[protocol]\nchannel = 0\n", "channel"},
		{"slow keepalive", "[protocol]\nkeepalive = \"5s\"\n", "keepalive"},
		{"zero baud", "[device]\nbaud = 0\n", "baud"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body))
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("got %v, want error containing %q", err, tt.want)
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
