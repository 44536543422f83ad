package kdc101

import (
	"reflect"
	"testing"
)

func TestDecodeStatus(t *testing.T) {
	tests := []struct {
		name  string
		word  uint32
		flags StatusFlags
		names []string
	}{
		{
			name:  "none",
			word:  0,
			flags: 0,
		},
		{
			name:  "cw hard limit",
			word:  0x00000001,
			flags: StatusCWHardLimit,
			names: []string{"cw hard limit"},
		},
		{
			name:  "homed and enabled",
			word:  0x80000400,
			flags: StatusHomed | StatusEnabled,
			names: []string{"homed", "enabled"},
		},
		{
			name:  "moving",
			word:  0x00000030,
			flags: StatusInMotionCW | StatusInMotionCCW,
			names: []string{"in motion cw", "in motion ccw"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DecodeStatus(tt.word)
			if got != tt.flags {
				t.Errorf("got %s, want %s", got, tt.flags)
			}
			if !reflect.DeepEqual(got.Names(), tt.names) {
				t.Errorf("got names %v, want %v", got.Names(), tt.names)
			}
		})
	}
}

func TestDecodeStatusAllBits(t *testing.T) {
	s := DecodeStatus(0xFFFFFFFF)
	names := s.Names()
	if len(names) != 32 {
		t.Fatalf("got %d flags, want 32", len(names))
	}
	seen := make(map[string]bool)
	for _, n := range names {
		if seen[n] {
			t.Errorf("duplicate flag name %q", n)
		}
		seen[n] = true
	}
	if !s.Has(StatusHomed | StatusEnabled | StatusCWHardLimit) {
		t.Error("expected every flag set")
	}
}

func TestStatusFlagValues(t *testing.T) {
	if StatusHomed != 0x00000400 {
		t.Errorf("homed is 0x%08X", uint32(StatusHomed))
	}
	if StatusEnabled != 0x80000000 {
		t.Errorf("enabled is 0x%08X", uint32(StatusEnabled))
	}
	if StatusDigitalInput1 != 0x00100000 {
		t.Errorf("digital input 1 is 0x%08X", uint32(StatusDigitalInput1))
	}
	if !DecodeStatus(0x40).Moving() {
		t.Error("jogging cw should count as moving")
	}
	if got := (StatusHomed | StatusEnabled).String(); got != "homed|enabled" {
		t.Errorf("got %q", got)
	}
	if got := StatusFlags(0).String(); got != "none" {
		t.Errorf("got %q", got)
	}
}
