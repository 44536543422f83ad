package apt

import (
	"encoding/hex"
	"errors"
	"reflect"
	"strings"
	"testing"
)

// parseHexString converts a dash-separated hex string to bytes
func parseHexString(s string) []byte {
	b, err := hex.DecodeString(strings.ReplaceAll(s, "-", ""))
	if err != nil {
		panic(err)
	}
	return b
}

func TestEncode(t *testing.T) {
	tests := []struct {
		name  string
		frame Frame
		want  string
	}{
		{
			name:  "header only",
			frame: Frame{ID: 0x0223, Param1: 0x01, Dest: AddressGenericUSB, Source: AddressHost},
			want:  "23-02-01-00-50-01",
		},
		{
			name:  "header only clears the data packet flag",
			frame: Frame{ID: 0x0465, Param1: 0x01, Param2: 0x02, Dest: AddressGenericUSB | PayloadFlag, Source: AddressHost},
			want:  "65-04-01-02-50-01",
		},
		{
			// MOT_MOVE_ABSOLUTE, channel 1, position 100000
			name:  "data packet",
			frame: Frame{ID: 0x0453, Dest: AddressGenericUSB, Source: AddressHost, Payload: parseHexString("01-00-a0-86-01-00")},
			want:  "53-04-06-00-d0-01-01-00-a0-86-01-00",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Encode(tt.frame)
			if err != nil {
				t.Fatalf("Encode failed: %v", err)
			}
			if FormatBytes(got) != tt.want {
				t.Errorf("got %s, want %s", FormatBytes(got), tt.want)
			}
		})
	}
}

func TestEncodeRejectsParamsWithPayload(t *testing.T) {
	_, err := Encode(Frame{ID: 0x0453, Param1: 0x01, Payload: []byte{0x01, 0x00}})
	var fe *FormatError
	if !errors.As(err, &fe) {
		t.Fatalf("expected FormatError, got %v", err)
	}
	if fe.ID != 0x0453 {
		t.Errorf("got id 0x%04X, want 0x0453", fe.ID)
	}
}

func TestParseHeader(t *testing.T) {
	h, err := ParseHeader(parseHexString("64-04-0e-00-81-50"))
	if err != nil {
		t.Fatalf("ParseHeader failed: %v", err)
	}
	want := Header{ID: 0x0464, Param1: 0x0e, Param2: 0x00, Dest: 0x81, Source: 0x50}
	if !reflect.DeepEqual(h, want) {
		t.Errorf("got %+v, want %+v", h, want)
	}
	if !h.HasPayload() {
		t.Error("expected data packet flag")
	}
	if h.PayloadLen() != 14 {
		t.Errorf("got payload length %d, want 14", h.PayloadLen())
	}

	if _, err := ParseHeader([]byte{0x64, 0x04}); !errors.Is(err, ErrInsufficientData) {
		t.Errorf("expected ErrInsufficientData, got %v", err)
	}
}

func TestFormatBytes(t *testing.T) {
	tests := []struct {
		in   []byte
		want string
	}{
		{nil, ""},
		{[]byte{0x0a}, "0a"},
		{[]byte{0x44, 0x04, 0x01, 0x00, 0x81, 0x50}, "44-04-01-00-81-50"},
	}
	for _, tt := range tests {
		if got := FormatBytes(tt.in); got != tt.want {
			t.Errorf("FormatBytes(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
